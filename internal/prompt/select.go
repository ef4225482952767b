package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/thoreinstein/formkit/internal/errors"
)

// Sentinel errors for menu selection.
var (
	ErrNothingToSelect  = errors.New("nothing to select from")
	ErrInvalidSelection = errors.New("invalid selection")
)

// Selector is a numbered menu for terminals where the fuzzy finder cannot
// run.
type Selector struct {
	reader io.Reader
	writer io.Writer
}

// NewSelector creates a Selector that reads answers from r and prints the
// menu to w.
func NewSelector(r io.Reader, w io.Writer) *Selector {
	return &Selector{reader: r, writer: w}
}

// Select prints options and returns the chosen one. A single option is
// returned without asking and an empty answer picks the first. EOF maps to
// errors.ErrAborted.
func (s *Selector) Select(title string, options []string) (string, error) {
	switch len(options) {
	case 0:
		return "", ErrNothingToSelect
	case 1:
		return options[0], nil
	}

	fmt.Fprintln(s.writer, title)
	for i, o := range options {
		fmt.Fprintf(s.writer, "  [%d] %s\n", i+1, o)
	}
	fmt.Fprint(s.writer, "Select [1]: ")

	input, err := bufio.NewReader(s.reader).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		if errors.Is(err, io.EOF) {
			return "", errors.Wrap(errors.ErrAborted, "selection cancelled")
		}
		return "", errors.Wrap(err, "reading selection")
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return options[0], nil
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		// Accept the option text itself.
		for _, o := range options {
			if o == input {
				return o, nil
			}
		}
		return "", errors.Wrapf(ErrInvalidSelection, "%q is not a number", input)
	}
	if n < 1 || n > len(options) {
		return "", errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", n, len(options))
	}
	return options[n-1], nil
}
