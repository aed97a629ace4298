package pdftoppm

import (
	"context"
	"strconv"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-errors/errors"

	"github.com/popware/poppler/command"
)

// StreamConverter renders one page at a time into an in-memory buffer.
// It runs the tool in single-file mode with no output prefix, so the
// image arrives on stdout. Once configured, Convert may be called
// repeatedly and concurrently with different page numbers: every call
// snapshots the argument list and spawns its own process.
type StreamConverter struct {
	*Options
}

// NewStreamConverter creates a StreamConverter.
func NewStreamConverter() *StreamConverter {
	c := &StreamConverter{Options: newOptions()}
	c.Append("-singlefile")
	return c
}

// Convert renders the given page (counted from 1) and returns the image
// bytes with their sniffed mime type.
func (c *StreamConverter) Convert(ctx context.Context, page int) (*StreamResult, error) {
	if err := c.Err(); err != nil {
		return nil, err
	}
	if page < 1 {
		return nil, errors.Errorf("page must be >= 1, got %d", page)
	}

	args := append(c.Args(), "-f", strconv.Itoa(page), "-l", strconv.Itoa(page))
	stdout, _, err := c.runner.Run(ctx, command.ToolPdftoppm, args, c.input)
	if err != nil {
		return nil, err
	}
	if len(stdout) == 0 {
		return nil, errors.Errorf("pdftoppm produced no image data for page %d", page)
	}

	return &StreamResult{
		Data:     stdout,
		MimeType: mimetype.Detect(stdout).String(),
	}, nil
}
