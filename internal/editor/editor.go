// Package editor launches the user's text editor on a form definition.
package editor

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"

	"github.com/thoreinstein/formkit/internal/errors"
)

// Streams are the standard streams handed to the editor process.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Command builds the editor invocation for path. The editor comes from
// $EDITOR, then $VISUAL, then nano, then vi. Editor variables may carry
// arguments, e.g. EDITOR="code --wait".
func Command(ctx context.Context, path string) (*exec.Cmd, error) {
	argv, err := shellquote.Split(detectEditor())
	if err != nil {
		return nil, errors.Wrap(err, "parsing editor command")
	}
	if len(argv) == 0 {
		return nil, errors.New("editor command is empty")
	}
	argv = append(argv, path)
	return exec.CommandContext(ctx, argv[0], argv[1:]...), nil
}

// Open runs the editor on path and waits for it to exit. Nil streams
// default to the process's own.
func Open(ctx context.Context, path string, s Streams) error {
	cmd, err := Command(ctx, path)
	if err != nil {
		return err
	}
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if s.In != nil {
		cmd.Stdin = s.In
	}
	if s.Out != nil {
		cmd.Stdout = s.Out
	}
	if s.Err != nil {
		cmd.Stderr = s.Err
	}

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", cmd.Path)
	}
	return nil
}

func detectEditor() string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}
	return "vi"
}
