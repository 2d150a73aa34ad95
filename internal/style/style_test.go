package style

import (
	"strings"
	"testing"
)

func TestStyleVariables(t *testing.T) {
	// Test that all style variables render non-empty output
	tests := []struct {
		name   string
		render func(...string) string
	}{
		{"Success", Success.Render},
		{"Error", Error.Render},
		{"Dim", Dim.Render},
		{"Bold", Bold.Render},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.render("test"); result == "" {
				t.Errorf("Style %s.Render() should not return empty string", tt.name)
			}
		})
	}
}

func TestErrorPrefix_NonInteractive(t *testing.T) {
	got := errorPrefix(false)
	if got != "Error:" {
		t.Errorf("errorPrefix(false) = %q, want plain prefix", got)
	}
	if strings.Contains(got, "\x1b[") {
		t.Error("non-interactive prefix should not contain escape codes")
	}
}

func TestErrorPrefix_Interactive(t *testing.T) {
	if got := errorPrefix(true); !strings.Contains(got, "Error:") {
		t.Errorf("errorPrefix(true) = %q, should contain Error:", got)
	}
}
