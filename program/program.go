// Package program loads Intcode memory images from their textual,
// comma-separated form.
package program

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse reads a memory image from r: decimal integers separated by
// commas, with optional surrounding whitespace. The image must hold at
// least one cell.
func Parse(r io.Reader) ([]int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading image")
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, errors.New("empty image")
	}

	fields := strings.Split(text, ",")
	image := make([]int, len(fields))

	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.Wrapf(err, "cell %d", i)
		}
		image[i] = v
	}

	return image, nil
}

// LoadFile reads a memory image from the named file.
func LoadFile(path string) ([]int, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	defer fd.Close()

	image, err := Parse(fd)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return image, nil
}
