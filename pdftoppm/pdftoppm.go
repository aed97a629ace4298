// Package pdftoppm wraps the poppler pdftoppm utility behind two fluent
// converters: FileConverter writes one image file per page to disk,
// StreamConverter renders a single page into an in-memory buffer.
//
// Configuration methods validate their parameters at call time, append
// the matching command-line tokens and return the receiver for chaining.
// The first invalid call is recorded and surfaces from Convert before
// any process is spawned.
//
// Usage:
//
//	c := pdftoppm.NewFileConverter().OutputPrefix("/tmp/report")
//	c.PNG().Resolution(150).InputFile("report.pdf")
//	files, err := c.Convert(ctx)
package pdftoppm

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-errors/errors"

	"github.com/popware/poppler/command"
	"github.com/popware/poppler/locator"
)

// Options is the configuration surface shared by both converters. It is
// embedded; construct converters with NewFileConverter or
// NewStreamConverter instead of using it directly.
type Options struct {
	command.Builder
	input  command.Input
	runner *command.Runner
}

func newOptions() *Options {
	return &Options{runner: command.NewRunner(nil)}
}

// InputFile sets the PDF document to convert to a file on disk.
func (o *Options) InputFile(path string) *Options {
	if path == "" {
		o.Fail(errors.Errorf("input file path must not be empty"))
		return o
	}
	o.input = command.File(path)
	return o
}

// InputBytes sets the PDF document to an in-memory buffer; the tool
// reads it from standard input. The buffer is never mutated.
func (o *Options) InputBytes(data []byte) *Options {
	o.input = command.Bytes(data)
	return o
}

// UseLocator resolves the executable through the given locator instead
// of the process-wide default.
func (o *Options) UseLocator(loc *locator.Locator) *Options {
	o.runner = command.NewRunner(loc)
	return o
}

// FirstPage sets the first page to convert, counted from 1.
func (o *Options) FirstPage(page int) *Options {
	if page < 1 {
		o.Fail(errors.Errorf("first page must be >= 1, got %d", page))
		return o
	}
	o.Append("-f", strconv.Itoa(page))
	return o
}

// LastPage sets the last page to convert, counted from 1.
func (o *Options) LastPage(page int) *Options {
	if page < 1 {
		o.Fail(errors.Errorf("last page must be >= 1, got %d", page))
		return o
	}
	o.Append("-l", strconv.Itoa(page))
	return o
}

// Resolution sets the rendering resolution in DPI for both axes.
func (o *Options) Resolution(dpi int) *Options {
	if dpi <= 0 {
		o.Fail(errors.Errorf("resolution must be > 0, got %d", dpi))
		return o
	}
	o.Append("-r", strconv.Itoa(dpi))
	return o
}

// ResolutionXY sets the rendering resolution in DPI per axis.
func (o *Options) ResolutionXY(x, y int) *Options {
	if x <= 0 || y <= 0 {
		o.Fail(errors.Errorf("resolution must be > 0 on both axes, got %dx%d", x, y))
		return o
	}
	o.Append("-rx", strconv.Itoa(x), "-ry", strconv.Itoa(y))
	return o
}

// ScaleTo scales the long side of each page to the given pixel size.
func (o *Options) ScaleTo(size int) *Options {
	if size <= 0 {
		o.Fail(errors.Errorf("scale size must be > 0, got %d", size))
		return o
	}
	o.Append("-scale-to", strconv.Itoa(size))
	return o
}

// ScaleToXY scales each page to the given pixel dimensions. At least one
// dimension must be positive; pass -1 for the other to keep the aspect
// ratio.
func (o *Options) ScaleToXY(x, y int) *Options {
	if x <= 0 && y <= 0 {
		o.Fail(errors.Errorf("at least one scale dimension must be > 0, got %dx%d", x, y))
		return o
	}
	o.Append("-scale-to-x", strconv.Itoa(x), "-scale-to-y", strconv.Itoa(y))
	return o
}

// Crop renders only the given area, offsets and sizes in pixels.
func (o *Options) Crop(x, y, width, height int) *Options {
	if x < 0 || y < 0 {
		o.Fail(errors.Errorf("crop offsets must be >= 0, got %d,%d", x, y))
		return o
	}
	if width < 0 || height < 0 {
		o.Fail(errors.Errorf("crop dimensions must be >= 0, got %dx%d", width, height))
		return o
	}
	o.Append("-x", strconv.Itoa(x), "-y", strconv.Itoa(y), "-W", strconv.Itoa(width), "-H", strconv.Itoa(height))
	return o
}

// CropSquare crops each page to a square of the given pixel size.
func (o *Options) CropSquare(size int) *Options {
	if size < 0 {
		o.Fail(errors.Errorf("crop square size must be >= 0, got %d", size))
		return o
	}
	o.Append("-sz", strconv.Itoa(size))
	return o
}

// CropBox uses the crop box rather than the media box of each page.
func (o *Options) CropBox() *Options {
	o.Append("-cropbox")
	return o
}

// Mono produces monochrome PBM output.
func (o *Options) Mono() *Options {
	o.SetFormat(command.FormatMono, "-mono")
	return o
}

// Gray produces grayscale PGM output.
func (o *Options) Gray() *Options {
	o.SetFormat(command.FormatGray, "-gray")
	return o
}

// PNG produces PNG output.
func (o *Options) PNG() *Options {
	o.SetFormat(command.FormatPNG, "-png")
	return o
}

// JPEG produces JPEG output, optionally tuned. More than one JPEGOptions
// value is rejected.
func (o *Options) JPEG(opts ...JPEGOptions) *Options {
	if len(opts) > 1 {
		o.Fail(errors.Errorf("at most one JPEGOptions value may be given, got %d", len(opts)))
		return o
	}
	if len(opts) == 0 {
		o.SetFormat(command.FormatJPEG, "-jpeg")
		return o
	}

	opt := opts[0]
	if opt.Quality < 0 || opt.Quality > 100 {
		o.Fail(errors.Errorf("jpeg quality must be within [0, 100], got %d", opt.Quality))
		return o
	}
	tokens := []string{"quality=" + strconv.Itoa(opt.Quality)}
	if opt.Progressive {
		tokens = append(tokens, "progressive=y")
	}
	if opt.Optimize {
		tokens = append(tokens, "optimize=y")
	}
	o.SetFormat(command.FormatJPEG, "-jpeg", "-jpegopt", strings.Join(tokens, ","))
	return o
}

// JPEGCMYK produces CMYK JPEG output.
func (o *Options) JPEGCMYK() *Options {
	o.SetFormat(command.FormatJPEGCMYK, "-jpegcmyk")
	return o
}

// TIFF produces TIFF output with the given compression scheme; pass
// TIFFNone for uncompressed output.
func (o *Options) TIFF(compression TIFFCompression) *Options {
	switch compression {
	case TIFFNone, TIFFPackBits, TIFFJPEG, TIFFLZW, TIFFDeflate:
	default:
		o.Fail(errors.Errorf("unknown tiff compression %q", compression))
		return o
	}
	o.SetFormat(command.FormatTIFF, "-tiff", "-tiffcompression", string(compression))
	return o
}

// DisplayProfile sets the ICC display color profile.
func (o *Options) DisplayProfile(path string) *Options {
	return o.profile("-displayprofile", path)
}

// DefaultGrayProfile sets the ICC profile assumed for DeviceGray colors.
func (o *Options) DefaultGrayProfile(path string) *Options {
	return o.profile("-defaultgrayprofile", path)
}

// DefaultRGBProfile sets the ICC profile assumed for DeviceRGB colors.
func (o *Options) DefaultRGBProfile(path string) *Options {
	return o.profile("-defaultrgbprofile", path)
}

// DefaultCMYKProfile sets the ICC profile assumed for DeviceCMYK colors.
func (o *Options) DefaultCMYKProfile(path string) *Options {
	return o.profile("-defaultcmykprofile", path)
}

func (o *Options) profile(flag, path string) *Options {
	if path == "" {
		o.Fail(errors.Errorf("%s requires a profile path", flag))
		return o
	}
	o.Append(flag, path)
	return o
}

// Separator sets the character between the output prefix and the page
// number; it must be exactly one character.
func (o *Options) Separator(sep string) *Options {
	if utf8.RuneCountInString(sep) != 1 {
		o.Fail(errors.Errorf("page name separator must be exactly one character, got %q", sep))
		return o
	}
	o.Append("-sep", sep)
	return o
}

// ForcePageNumber always appends the page number to the output name,
// even for single-page documents.
func (o *Options) ForcePageNumber() *Options {
	o.Append("-forcenum")
	return o
}

// Overprint enables overprint simulation.
func (o *Options) Overprint() *Options {
	o.Append("-overprint")
	return o
}

// FreeType toggles the FreeType font rasterizer.
func (o *Options) FreeType(enabled bool) *Options {
	o.Append("-freetype", yesNo(enabled))
	return o
}

// ThinLine sets the thin line rendering mode.
func (o *Options) ThinLine(mode ThinLineMode) *Options {
	switch mode {
	case ThinLineNone, ThinLineSolid, ThinLineShape:
	default:
		o.Fail(errors.Errorf("unknown thin line mode %q", mode))
		return o
	}
	o.Append("-thinlinemode", string(mode))
	return o
}

// AntiAliasing toggles font and vector anti-aliasing.
func (o *Options) AntiAliasing(font, vector bool) *Options {
	o.Append("-aa", yesNo(font), "-aaVector", yesNo(vector))
	return o
}

// OwnerPassword sets the PDF owner password.
func (o *Options) OwnerPassword(password string) *Options {
	o.Append("-opw", password)
	return o
}

// UserPassword sets the PDF user password.
func (o *Options) UserPassword(password string) *Options {
	o.Append("-upw", password)
	return o
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
