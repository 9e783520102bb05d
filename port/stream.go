package port

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Stream is a Port reading input values line-wise from a reader and
// printing output values to a writer. It backs the interactive console
// port of the intvm driver.
type Stream struct {
	scanner *bufio.Scanner
	w       io.Writer
}

// NewStream creates a stream port over the given reader and writer.
func NewStream(r io.Reader, w io.Writer) *Stream {
	return &Stream{
		scanner: bufio.NewScanner(r),
		w:       w,
	}
}

// In reads the next non-empty line from the reader and parses it as an
// integer. Returns io.EOF when the reader runs dry.
func (p *Stream) In() (int, error) {
	for p.scanner.Scan() {
		line := strings.TrimSpace(p.scanner.Text())
		if line == "" {
			continue
		}

		v, err := strconv.Atoi(line)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid input %q", line)
		}
		return v, nil
	}

	if err := p.scanner.Err(); err != nil {
		return 0, err
	}
	return 0, io.EOF
}

// Out prints value on a line of its own.
func (p *Stream) Out(value int) {
	fmt.Fprintln(p.w, value)
}
