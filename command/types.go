package command

import (
	"errors"
	"fmt"
	"strings"
)

// Tool names understood by the runner.
const (
	// ToolPdftoppm rasterizes PDF pages to images (poppler-utils)
	ToolPdftoppm = "pdftoppm"
	// ToolPdfinfo prints a PDF metadata report (poppler-utils)
	ToolPdfinfo = "pdfinfo"
)

// CodeNoExit is the sentinel exit code for failures that never produced a
// tool-native exit status: missing executable or spawn failure.
const CodeNoExit = -1

// StdinArg is the positional argument telling a poppler tool to read the
// document from standard input.
const StdinArg = "-"

// ErrInputNotSet is returned when an execution is attempted before an
// input source has been configured.
var ErrInputNotSet = errors.New("input not set: call InputFile or InputBytes first")

// Input is the tagged input source of an invocation: either a filesystem
// path or an in-memory buffer. The zero value means "not set".
type Input struct {
	path string
	data []byte
	set  bool
}

// File builds an Input referring to a PDF on disk.
func File(path string) Input {
	return Input{path: path, set: true}
}

// Bytes builds an Input holding an in-memory PDF. The caller keeps
// ownership of the buffer; it is never mutated.
func Bytes(data []byte) Input {
	return Input{data: data, set: true}
}

// IsSet reports whether an input source has been configured.
func (in Input) IsSet() bool {
	return in.set
}

// arg returns the positional argument for this input: the file path, or
// the stdin placeholder for buffered input.
func (in Input) arg() string {
	if in.path != "" {
		return in.path
	}
	return StdinArg
}

// buffer returns the in-memory document and whether one was configured.
func (in Input) buffer() ([]byte, bool) {
	if in.set && in.path == "" {
		return in.data, true
	}
	return nil, false
}

// Error is a structured tool failure: a human-readable message, the
// tool's signed exit code (CodeNoExit when the tool never ran) and the
// accumulated stderr text.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Stderr  string `json:"stderr,omitempty"`
}

func (e *Error) Error() string {
	detail := strings.TrimSpace(e.Stderr)
	if detail == "" {
		return fmt.Sprintf("%s (exit %d)", e.Message, e.Code)
	}
	return fmt.Sprintf("%s (exit %d): %s", e.Message, e.Code, detail)
}
