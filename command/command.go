// Package command holds the argument-building core and the process
// execution engine shared by the pdftoppm and pdfinfo wrappers.
//
// A Builder accumulates an ordered argv from fluent configuration calls
// and records the first validation error instead of panicking; every
// execution entry point returns that error before any process is
// spawned. A Runner turns a frozen argv into a child process, feeds the
// configured input, drains both output streams and maps the exit status
// to a structured Error.
package command

import (
	"github.com/go-errors/errors"
)

// Format is the mutually exclusive output-format choice of the
// conversion tools. At most one may be active per builder; a second
// selection fails at configuration time.
type Format string

// Recognized output formats.
const (
	FormatMono     Format = "mono"
	FormatGray     Format = "gray"
	FormatPNG      Format = "png"
	FormatJPEG     Format = "jpeg"
	FormatJPEGCMYK Format = "jpegcmyk"
	FormatTIFF     Format = "tiff"
)

// Builder accumulates an ordered command-line argument list. Order
// matters: the poppler tools are positionally sensitive. The zero value
// is ready to use.
type Builder struct {
	args   []string
	format Format
	err    error
}

// Append adds tokens to the end of the argument list. Appends after a
// recorded error are kept; the error still wins at execution time.
func (b *Builder) Append(tokens ...string) {
	b.args = append(b.args, tokens...)
}

// Fail records a configuration error. Only the first error is kept.
func (b *Builder) Fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Err returns the first configuration error, nil when the chain is valid.
func (b *Builder) Err() error {
	return b.err
}

// Args returns a defensive copy of the accumulated argument list. The
// copy is the execution snapshot: a builder stays reusable while earlier
// invocations run.
func (b *Builder) Args() []string {
	args := make([]string, len(b.args))
	copy(args, b.args)
	return args
}

// SetFormat selects the output format and appends its tokens. Selecting
// a second format fails regardless of which two formats are involved.
func (b *Builder) SetFormat(format Format, tokens ...string) {
	if b.format != "" {
		b.Fail(errors.Errorf("output format already set to %s, cannot set %s", b.format, format))
		return
	}
	b.format = format
	b.Append(tokens...)
}
