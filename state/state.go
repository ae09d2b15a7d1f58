// Package state persists small key-value records between hud-manager runs,
// such as the previously active HUD.
package state

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/MrWheatley/hud-manager/pkg/paths"
)

// Keys written by hud-manager.
const (
	// KeyLastActive is the name of the most recently activated HUD.
	KeyLastActive = "last_active"

	// KeyPreviousActive is the name of the HUD that was active before the
	// last activation. It backs `activate --previous`.
	KeyPreviousActive = "previous_active"
)

// State holds arbitrary key-value pairs as a generic map.
type State map[string]interface{}

// stateFilePath returns the path to the state file under the XDG state dir.
func stateFilePath() string {
	return filepath.Join(paths.StateDir(), "state.yml")
}

// Load loads the state from the state file.
// Returns an empty state if the file doesn't exist.
func Load() (State, error) {
	data, err := os.ReadFile(stateFilePath())
	if err != nil {
		if os.IsNotExist(err) {
			return make(State), nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}

	var state State
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parse state file: %w", err)
	}

	if state == nil {
		state = make(State)
	}

	return state, nil
}

// Save saves the state to the state file.
func Save(state State) error {
	path := stateFilePath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}

	return nil
}

// Get retrieves a value from the state by key.
// Returns the value and true if found, nil and false otherwise.
func Get(key string) (interface{}, bool, error) {
	state, err := Load()
	if err != nil {
		return nil, false, err
	}

	val, ok := state[key]
	return val, ok, nil
}

// GetString is a convenience function to get a string value from state.
// Returns empty string if the key doesn't exist or the value is not a string.
func GetString(key string) (string, error) {
	val, ok, err := Get(key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}

	str, ok := val.(string)
	if !ok {
		return "", nil
	}

	return str, nil
}

// Set sets a value in the state.
func Set(key string, value interface{}) error {
	state, err := Load()
	if err != nil {
		return err
	}

	state[key] = value
	return Save(state)
}

// Delete removes a key from the state.
func Delete(key string) error {
	state, err := Load()
	if err != nil {
		return err
	}

	delete(state, key)
	return Save(state)
}

// RecordActivation updates the activation history after a successful swap.
// prev may be empty when there was no active HUD before the swap.
func RecordActivation(name, prev string) error {
	st, err := Load()
	if err != nil {
		return err
	}
	st[KeyLastActive] = name
	if prev != "" {
		st[KeyPreviousActive] = prev
	}
	return Save(st)
}
