package cli

import (
	"fmt"
	"os"

	"github.com/MrWheatley/hud-manager/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle provides user-friendly error messages based on error type
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeLayoutInvalid:
		fmt.Fprintf(os.Stderr, "❌ Could not find the content root.\n")
		fmt.Fprintf(os.Stderr, "Place the binary inside `custom` or `custom/huds`, or pass --root.\n")
		return err

	case errors.ErrCodeHudNotFound:
		if hudErr, ok := err.(*errors.HudError); ok {
			fmt.Fprintf(os.Stderr, "❌ HUD '%s' not found\n", hudErr.Details["hud"])
			fmt.Fprintf(os.Stderr, "Run 'hud-manager list' to see available HUDs.\n")
		}
		return err

	case errors.ErrCodeHudAlreadyActive:
		if hudErr, ok := err.(*errors.HudError); ok {
			fmt.Fprintf(os.Stderr, "❌ HUD '%s' is already active\n", hudErr.Details["hud"])
		}
		return err

	case errors.ErrCodeIOFailed:
		fmt.Fprintf(os.Stderr, "❌ Filesystem operation failed: %v\n", err)
		fmt.Fprintf(os.Stderr, "The content folder may be out of sync; run 'hud-manager list' to rescan.\n")
		return err

	case errors.ErrCodeNoResults:
		if hudErr, ok := err.(*errors.HudError); ok {
			fmt.Fprintf(os.Stderr, "❌ No HUDs match '%s'\n", hudErr.Details["query"])
		}
		return err

	case errors.ErrCodeEncodingInvalid:
		fmt.Fprintf(os.Stderr, "❌ favorites.txt is not valid UTF-8; favorites are ignored this session.\n")
		return err

	default:
		// Generic error handling
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)

		// If verbose mode, show full error details
		if h.Verbose {
			if hudErr, ok := err.(*errors.HudError); ok {
				fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", hudErr.ToJSON())
			}
		}
		return err
	}
}
