package errors

import "fmt"

// LayoutInvalid creates an error for an executable outside the content root
func LayoutInvalid(dir string) *HudError {
	return New(ErrCodeLayoutInvalid,
		fmt.Sprintf("exe must be in `custom` or `custom/huds`, found: %s", dir)).
		WithDetail("dir", dir)
}

// MoveFailed creates an error for a failed HUD directory relocation
func MoveFailed(name, from, to string, err error) *HudError {
	return Wrap(err, ErrCodeIOFailed, fmt.Sprintf("failed to move hud '%s'", name)).
		WithDetail("hud", name).
		WithDetail("from", from).
		WithDetail("to", to)
}

// HudNotFound creates an error for an unknown HUD name
func HudNotFound(name string) *HudError {
	return New(ErrCodeHudNotFound, fmt.Sprintf("hud '%s' not found", name)).
		WithDetail("hud", name)
}

// HudAlreadyActive creates an error for re-activating the active HUD
func HudAlreadyActive(name string) *HudError {
	return New(ErrCodeHudAlreadyActive, fmt.Sprintf("hud '%s' is already active", name)).
		WithDetail("hud", name)
}

// NoResults creates an error for a search that matched nothing
func NoResults(query string) *HudError {
	return New(ErrCodeNoResults, "no results").
		WithDetail("query", query)
}

// EncodingInvalid creates an error for a favorites file that is not valid text
func EncodingInvalid(path string) *HudError {
	return New(ErrCodeEncodingInvalid,
		fmt.Sprintf("favorites file is not valid UTF-8: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *HudError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}
