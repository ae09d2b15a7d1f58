package errors

import (
	"fmt"
	"testing"
)

func TestHudError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeHudNotFound, "hud not found")
	if err.Code != ErrCodeHudNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeHudNotFound, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeIOFailed, "failed to move hud")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodeIOFailed) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeHudNotFound) {
		t.Error("Is should return false for non-matching code")
	}

	// Test WithDetail
	detailed := err.WithDetail("hud", "flawhud").WithDetail("count", 3)
	if detailed.Details["hud"] != "flawhud" {
		t.Error("WithDetail should add details")
	}
}

func TestErrorConstructors(t *testing.T) {
	// Test HudNotFound
	err := HudNotFound("flawhud")
	if err.Code != ErrCodeHudNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeHudNotFound, err.Code)
	}
	if err.Details["hud"] != "flawhud" {
		t.Error("HudNotFound should include hud detail")
	}

	// Test HudAlreadyActive
	err = HudAlreadyActive("budhud")
	if err.Code != ErrCodeHudAlreadyActive {
		t.Errorf("expected code %s, got %s", ErrCodeHudAlreadyActive, err.Code)
	}
	if err.Details["hud"] != "budhud" {
		t.Error("HudAlreadyActive should include hud detail")
	}

	// Test MoveFailed
	cause := fmt.Errorf("permission denied")
	err = MoveFailed("budhud", "/custom/budhud", "/custom/huds/budhud", cause)
	if err.Code != ErrCodeIOFailed {
		t.Errorf("expected code %s, got %s", ErrCodeIOFailed, err.Code)
	}
	if err.Unwrap() != cause {
		t.Error("MoveFailed should wrap the cause")
	}
}

func TestGetCode(t *testing.T) {
	if GetCode(nil) != "" {
		t.Error("GetCode of nil should be empty")
	}

	err := NoResults("zzz")
	if GetCode(err) != ErrCodeNoResults {
		t.Errorf("expected %s, got %s", ErrCodeNoResults, GetCode(err))
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if GetCode(wrapped) != ErrCodeNoResults {
		t.Error("GetCode should unwrap to find the code")
	}
}
