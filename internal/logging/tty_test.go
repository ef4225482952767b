package logging

import (
	"bytes"
	"testing"
)

func TestColorAllowed(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		isTTY bool
		want  bool
	}{
		{name: "terminal", env: map[string]string{"TERM": "xterm-256color"}, isTTY: true, want: true},
		{name: "NO_COLOR set", env: map[string]string{"NO_COLOR": ""}, isTTY: true, want: false},
		{name: "dumb terminal", env: map[string]string{"TERM": "dumb"}, isTTY: true, want: false},
		{name: "pipe", env: map[string]string{"TERM": "xterm"}, isTTY: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TERM", "")
			t.Setenv("NO_COLOR", "")
			unsetenv(t, "NO_COLOR")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if got := colorAllowed(tt.isTTY); got != tt.want {
				t.Errorf("colorAllowed(%v) = %v, want %v", tt.isTTY, got, tt.want)
			}
		})
	}
}

func TestIsTTY_Buffer(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("a bytes.Buffer is not a terminal")
	}
}
