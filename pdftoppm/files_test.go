package pdftoppm

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/popware/poppler/command"
	"github.com/popware/poppler/locator"
)

// fakePdftoppm installs a shell script as pdftoppm and returns a locator
// pinned to its directory.
func fakePdftoppm(t *testing.T, script string) *locator.Locator {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test uses unix shell fixtures")
	}

	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "pdftoppm"), []byte(script), 0o755)
	require.NoError(t, err)

	loc := locator.New()
	loc.Override(dir)
	return loc
}

func TestParseProgress(t *testing.T) {
	stderr := "Syntax Warning: Invalid Font Weight\n" +
		"1 3 out-1.png\n" +
		"2 3 out-2.png\n" +
		"3 3 out-3.png\n"

	files, err := parseProgress(stderr)
	require.NoError(t, err)
	assert.Equal(t, []string{"out-1.png", "out-2.png", "out-3.png"}, files)
}

func TestParseProgressKeepsFilenameSpaces(t *testing.T) {
	files, err := parseProgress("1 1 /tmp/My Documents/out-1.png\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"/tmp/My Documents/out-1.png"}, files)
}

func TestParseProgressNoLines(t *testing.T) {
	_, err := parseProgress("Syntax Error: could not read page\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no progress lines")
}

func TestConvertCollectsFilesInPageOrder(t *testing.T) {
	loc := fakePdftoppm(t, "#!/bin/sh\n"+
		"printf '1 2 page-1.png\\n' 1>&2\n"+
		"printf '2 2 page-2.png\\n' 1>&2\n"+
		"exit 0\n")

	c := NewFileConverter().OutputPrefix("page")
	c.PNG().InputFile("doc.pdf").UseLocator(loc)

	files, err := c.Convert(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"page-1.png", "page-2.png"}, files)
}

func TestConvertPassesProgressFlagAndPrefix(t *testing.T) {
	// The fake prints its argv as a progress filename so the test can
	// observe the exact invocation.
	loc := fakePdftoppm(t, "#!/bin/sh\nprintf '1 1 %s\\n' \"$*\" 1>&2\n")

	c := NewFileConverter().OutputPrefix("/tmp/out")
	c.PNG().InputFile("doc.pdf").UseLocator(loc)

	files, err := c.Convert(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "-png -progress doc.pdf /tmp/out", files[0])
}

func TestConvertConfigurationErrorBeforeSpawn(t *testing.T) {
	// The fake would report a page if it ran; the validation error must
	// win without spawning it.
	loc := fakePdftoppm(t, "#!/bin/sh\nprintf '1 1 ran.png\\n' 1>&2\n")

	c := NewFileConverter()
	c.FirstPage(0).InputFile("doc.pdf").UseLocator(loc)

	_, err := c.Convert(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first page must be >= 1")
}

func TestConvertWithoutInput(t *testing.T) {
	c := NewFileConverter()
	c.PNG()

	_, err := c.Convert(context.Background())
	assert.True(t, errors.Is(err, command.ErrInputNotSet))
}

func TestConvertToolFailure(t *testing.T) {
	loc := fakePdftoppm(t, "#!/bin/sh\nprintf 'I/O Error: Couldn'\\''t open file\\n' 1>&2\nexit 1\n")

	c := NewFileConverter()
	c.PNG().InputFile("missing.pdf").UseLocator(loc)

	_, err := c.Convert(context.Background())
	require.Error(t, err)

	var terr *command.Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, 1, terr.Code)
	assert.Contains(t, terr.Stderr, "I/O Error")
}

func TestConvertBufferedInputUsesStdinPlaceholder(t *testing.T) {
	loc := fakePdftoppm(t, "#!/bin/sh\nprintf '1 1 %s\\n' \"$*\" 1>&2\n")

	c := NewFileConverter()
	c.InputBytes([]byte("%PDF-1.4")).UseLocator(loc)

	files, err := c.Convert(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "-progress - output", files[0])
}
