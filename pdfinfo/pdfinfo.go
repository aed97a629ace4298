// Package pdfinfo wraps the poppler pdfinfo utility behind a fluent
// extractor that turns the tool's colon-delimited text report into a
// structured Info record.
//
// Usage:
//
//	info, err := pdfinfo.New().
//		ISODates().
//		InputFile("report.pdf").
//		Extract(ctx)
package pdfinfo

import (
	"context"
	"fmt"
	"strconv"

	goerrors "github.com/go-errors/errors"

	"github.com/popware/poppler/command"
	"github.com/popware/poppler/locator"
)

// pdfinfo exit codes beyond success.
const (
	exitOpenPDF     = 1
	exitOpenOutput  = 2
	exitPermissions = 3
)

type dateFormat string

const (
	datesDefault dateFormat = ""
	datesISO     dateFormat = "iso"
	datesRaw     dateFormat = "raw"
)

// Extractor accumulates pdfinfo configuration. Methods validate at call
// time and return the receiver for chaining; the first invalid call
// surfaces from Extract before any process is spawned.
type Extractor struct {
	command.Builder
	input  command.Input
	runner *command.Runner
	dates  dateFormat
}

// New creates an Extractor.
func New() *Extractor {
	return &Extractor{runner: command.NewRunner(nil)}
}

// InputFile sets the PDF document to inspect to a file on disk.
func (e *Extractor) InputFile(path string) *Extractor {
	if path == "" {
		e.Fail(goerrors.Errorf("input file path must not be empty"))
		return e
	}
	e.input = command.File(path)
	return e
}

// InputBytes sets the PDF document to an in-memory buffer; the tool
// reads it from standard input.
func (e *Extractor) InputBytes(data []byte) *Extractor {
	e.input = command.Bytes(data)
	return e
}

// UseLocator resolves the executable through the given locator instead
// of the process-wide default.
func (e *Extractor) UseLocator(loc *locator.Locator) *Extractor {
	e.runner = command.NewRunner(loc)
	return e
}

// FirstPage sets the first page examined for page sizes, counted from 1.
func (e *Extractor) FirstPage(page int) *Extractor {
	if page < 1 {
		e.Fail(goerrors.Errorf("first page must be >= 1, got %d", page))
		return e
	}
	e.Append("-f", strconv.Itoa(page))
	return e
}

// LastPage sets the last page examined for page sizes, counted from 1.
func (e *Extractor) LastPage(page int) *Extractor {
	if page < 1 {
		e.Fail(goerrors.Errorf("last page must be >= 1, got %d", page))
		return e
	}
	e.Append("-l", strconv.Itoa(page))
	return e
}

// ISODates prints dates in ISO-8601 format. Mutually exclusive with
// RawDates.
func (e *Extractor) ISODates() *Extractor {
	e.setDates(datesISO, "-isodates")
	return e
}

// RawDates prints dates in undecoded PDF form. Mutually exclusive with
// ISODates.
func (e *Extractor) RawDates() *Extractor {
	e.setDates(datesRaw, "-rawdates")
	return e
}

func (e *Extractor) setDates(format dateFormat, token string) {
	if e.dates != datesDefault {
		e.Fail(goerrors.Errorf("date format already set to %s, cannot set %s", e.dates, format))
		return
	}
	e.dates = format
	e.Append(token)
}

// OwnerPassword sets the PDF owner password.
func (e *Extractor) OwnerPassword(password string) *Extractor {
	e.Append("-opw", password)
	return e
}

// UserPassword sets the PDF user password.
func (e *Extractor) UserPassword(password string) *Extractor {
	e.Append("-upw", password)
	return e
}

// Extract runs pdfinfo and parses its report. Tool failures come back as
// *command.Error whose message carries the semantic category of the exit
// code (file open, output, permissions, other).
func (e *Extractor) Extract(ctx context.Context) (*Info, error) {
	if err := e.Err(); err != nil {
		return nil, err
	}

	stdout, _, err := e.runner.Run(ctx, command.ToolPdfinfo, e.Args(), e.input)
	if err != nil {
		return nil, describe(err)
	}

	return parseReport(stdout), nil
}

// describe rewrites a tool failure with the pdfinfo exit code taxonomy.
func describe(err error) error {
	terr, ok := err.(*command.Error)
	if !ok || terr.Code == command.CodeNoExit {
		return err
	}
	terr.Message = fmt.Sprintf("pdfinfo: %s", exitReason(terr.Code))
	return terr
}

func exitReason(code int) string {
	switch code {
	case exitOpenPDF:
		return "error opening a PDF file"
	case exitOpenOutput:
		return "error opening an output file"
	case exitPermissions:
		return "error related to PDF permissions"
	default:
		return "other error"
	}
}
