package editor

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectEditor(t *testing.T) {
	tests := []struct {
		name   string
		editor string
		visual string
		want   string
	}{
		{name: "EDITOR wins", editor: "nvim", visual: "code", want: "nvim"},
		{name: "VISUAL when EDITOR empty", editor: "", visual: "code --wait", want: "code --wait"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EDITOR", tt.editor)
			t.Setenv("VISUAL", tt.visual)
			assert.Equal(t, tt.want, detectEditor())
		})
	}
}

func TestDetectEditor_Fallback(t *testing.T) {
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "")

	want := "vi"
	if _, err := exec.LookPath("nano"); err == nil {
		want = "nano"
	}
	assert.Equal(t, want, detectEditor())
}

func TestCommand_SplitsArguments(t *testing.T) {
	t.Setenv("EDITOR", `code --wait --new-window`)

	cmd, err := Command(t.Context(), "/tmp/signup.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"code", "--wait", "--new-window", "/tmp/signup.yaml"}, cmd.Args)
}

func TestCommand_BadQuoting(t *testing.T) {
	t.Setenv("EDITOR", `vim "unterminated`)

	_, err := Command(t.Context(), "x")
	assert.Error(t, err)
}

func TestOpen_RunsEditor(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the editor")
	}

	dir := t.TempDir()
	script := filepath.Join(dir, "fake-editor.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho 'name: edited' > \"$1\"\n"), 0o755))
	t.Setenv("EDITOR", script)

	target := filepath.Join(dir, "form.yaml")
	require.NoError(t, Open(t.Context(), target, Streams{}))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "name: edited\n", string(data))
}

func TestOpen_EditorFails(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on the false binary")
	}
	if _, err := exec.LookPath("false"); err != nil {
		t.Skip("false not available")
	}
	t.Setenv("EDITOR", "false")

	assert.Error(t, Open(t.Context(), filepath.Join(t.TempDir(), "x.yaml"), Streams{}))
}
