// Package testpdf generates minimal but well-formed PDF documents for
// tests, so fixtures never need to be checked in as binaries.
package testpdf

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// Bytes returns a well-formed PDF document with the given number of
// letter-sized pages, each carrying a one-line content stream.
func Bytes(pages int) []byte {
	if pages < 1 {
		pages = 1
	}

	var buf bytes.Buffer
	var offsets []int
	object := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := make([]string, pages)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", 3+i)
	}
	object("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	object(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n",
		strings.Join(kids, " "), pages))

	for i := 0; i < pages; i++ {
		object(fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> /Contents %d 0 R >>\nendobj\n",
			3+i, 3+pages+i))
	}
	for i := 0; i < pages; i++ {
		stream := fmt.Sprintf("0 0 0 RG 72 %d m 540 %d l S\n", 700-10*i, 700-10*i)
		object(fmt.Sprintf("%d 0 obj\n<< /Length %d >>\nstream\n%sendstream\nendobj\n",
			3+pages+i, len(stream), stream))
	}

	xref := buf.Len()
	size := len(offsets) + 1
	buf.WriteString(fmt.Sprintf("xref\n0 %d\n", size))
	buf.WriteString("0000000000 65535 f \n")
	for _, offset := range offsets {
		buf.WriteString(fmt.Sprintf("%010d 00000 n \n", offset))
	}
	buf.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", size, xref))
	return buf.Bytes()
}

// Write writes a generated document to path.
func Write(path string, pages int) error {
	return os.WriteFile(path, Bytes(pages), 0644)
}
