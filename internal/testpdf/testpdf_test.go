package testpdf

import (
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratedDocumentsAreReadable(t *testing.T) {
	for _, pages := range []int{1, 3, 5} {
		path := filepath.Join(t.TempDir(), "doc.pdf")
		require.NoError(t, Write(path, pages))

		count, err := api.PageCountFile(path)
		require.NoError(t, err)
		assert.Equal(t, pages, count)
	}
}

func TestBytesClampsPageCount(t *testing.T) {
	assert.Equal(t, Bytes(1), Bytes(0))
	assert.Equal(t, Bytes(1), Bytes(-2))
}
