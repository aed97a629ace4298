package pdftoppm

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-errors/errors"

	"github.com/popware/poppler/command"
)

// DefaultOutputPrefix names the output files when no prefix is set.
const DefaultOutputPrefix = "output"

// FileConverter renders PDF pages to image files on disk. Output files
// are named prefix-N.ext by the tool; Convert returns the written names
// in ascending page order.
type FileConverter struct {
	*Options
	prefix string
}

// NewFileConverter creates a FileConverter with the default output
// prefix.
func NewFileConverter() *FileConverter {
	return &FileConverter{Options: newOptions(), prefix: DefaultOutputPrefix}
}

// OutputPrefix sets the path prefix of the produced files.
func (c *FileConverter) OutputPrefix(path string) *FileConverter {
	if path == "" {
		c.Fail(errors.Errorf("output prefix must not be empty"))
		return c
	}
	c.prefix = path
	return c
}

// Convert runs pdftoppm over the configured page range and returns the
// names of the produced files, one per page, in ascending page order.
func (c *FileConverter) Convert(ctx context.Context) ([]string, error) {
	if err := c.Err(); err != nil {
		return nil, err
	}

	// -progress makes the tool report one "page total filename" line
	// per produced page on stderr.
	args := append(c.Args(), "-progress")
	_, stderr, err := c.runner.Run(ctx, command.ToolPdftoppm, args, c.input, c.prefix)
	if err != nil {
		return nil, err
	}

	return parseProgress(stderr)
}

// parseProgress extracts the filename column of the progress lines in
// emission order, which matches ascending page order.
func parseProgress(stderr string) ([]string, error) {
	var files []string
	for _, line := range strings.Split(stderr, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, " ", 3)
		if len(parts) != 3 {
			continue
		}
		if _, err := strconv.Atoi(parts[0]); err != nil {
			continue
		}
		if _, err := strconv.Atoi(parts[1]); err != nil {
			continue
		}
		files = append(files, parts[2])
	}

	if len(files) == 0 {
		return nil, errors.Errorf("no progress lines found in pdftoppm output")
	}
	return files, nil
}
