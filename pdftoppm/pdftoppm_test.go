package pdftoppm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgsAccumulateInCallOrder(t *testing.T) {
	c := NewFileConverter()
	c.PNG().Resolution(150).FirstPage(2).LastPage(4).CropBox()

	require.NoError(t, c.Err())
	assert.Equal(t, []string{"-png", "-r", "150", "-f", "2", "-l", "4", "-cropbox"}, c.Args())
}

func TestStreamConverterForcesSingleFile(t *testing.T) {
	c := NewStreamConverter()
	assert.Equal(t, []string{"-singlefile"}, c.Args())
}

func TestJPEGOptionsTokens(t *testing.T) {
	c := NewStreamConverter()
	c.JPEG(JPEGOptions{Quality: 80, Progressive: true, Optimize: true})

	require.NoError(t, c.Err())
	assert.Equal(t, []string{"-singlefile", "-jpeg", "-jpegopt", "quality=80,progressive=y,optimize=y"}, c.Args())
}

func TestTIFFCompressionToken(t *testing.T) {
	c := NewFileConverter()
	c.TIFF(TIFFLZW)

	require.NoError(t, c.Err())
	assert.Equal(t, []string{"-tiff", "-tiffcompression", "lzw"}, c.Args())
}

func TestRenderingTokens(t *testing.T) {
	c := NewFileConverter()
	c.FreeType(true).ThinLine(ThinLineSolid).AntiAliasing(true, false).
		Overprint().ForcePageNumber().Separator("-").
		OwnerPassword("owner").UserPassword("user")

	require.NoError(t, c.Err())
	assert.Equal(t, []string{
		"-freetype", "yes",
		"-thinlinemode", "solid",
		"-aa", "yes", "-aaVector", "no",
		"-overprint",
		"-forcenum",
		"-sep", "-",
		"-opw", "owner",
		"-upw", "user",
	}, c.Args())
}

func TestValidationFailsAtCallTime(t *testing.T) {
	cases := []struct {
		name      string
		configure func(*Options)
		message   string
	}{
		{"first page zero", func(o *Options) { o.FirstPage(0) }, "first page must be >= 1"},
		{"first page negative", func(o *Options) { o.FirstPage(-3) }, "first page must be >= 1"},
		{"last page zero", func(o *Options) { o.LastPage(0) }, "last page must be >= 1"},
		{"resolution zero", func(o *Options) { o.Resolution(0) }, "resolution must be > 0"},
		{"resolution xy partial", func(o *Options) { o.ResolutionXY(0, 150) }, "resolution must be > 0"},
		{"scale zero", func(o *Options) { o.ScaleTo(0) }, "scale size must be > 0"},
		{"scale xy both unset", func(o *Options) { o.ScaleToXY(0, 0) }, "at least one scale dimension"},
		{"scale xy both negative", func(o *Options) { o.ScaleToXY(-1, -1) }, "at least one scale dimension"},
		{"crop negative offset", func(o *Options) { o.Crop(-1, 0, 10, 10) }, "crop offsets must be >= 0"},
		{"crop negative size", func(o *Options) { o.Crop(0, 0, -10, 10) }, "crop dimensions must be >= 0"},
		{"crop square negative", func(o *Options) { o.CropSquare(-1) }, "crop square size must be >= 0"},
		{"jpeg quality high", func(o *Options) { o.JPEG(JPEGOptions{Quality: 101}) }, "jpeg quality"},
		{"jpeg quality negative", func(o *Options) { o.JPEG(JPEGOptions{Quality: -1}) }, "jpeg quality"},
		{"tiff compression unknown", func(o *Options) { o.TIFF("bogus") }, "unknown tiff compression"},
		{"thin line unknown", func(o *Options) { o.ThinLine("bogus") }, "unknown thin line mode"},
		{"separator empty", func(o *Options) { o.Separator("") }, "exactly one character"},
		{"separator long", func(o *Options) { o.Separator("--") }, "exactly one character"},
		{"profile empty", func(o *Options) { o.DisplayProfile("") }, "requires a profile path"},
		{"input empty", func(o *Options) { o.InputFile("") }, "input file path"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o := newOptions()
			c.configure(o)
			require.Error(t, o.Err())
			assert.Contains(t, o.Err().Error(), c.message)
		})
	}
}

func TestValidBoundaryValuesAccepted(t *testing.T) {
	o := newOptions()
	o.FirstPage(1).LastPage(1).CropSquare(0).Crop(0, 0, 0, 0).
		ScaleToXY(-1, 600).JPEG(JPEGOptions{Quality: 0}).Separator("x")
	assert.NoError(t, o.Err())

	o = newOptions()
	o.JPEG(JPEGOptions{Quality: 100})
	assert.NoError(t, o.Err())
}

func TestSecondFormatAlwaysFails(t *testing.T) {
	setters := map[string]func(*Options){
		"mono":     func(o *Options) { o.Mono() },
		"gray":     func(o *Options) { o.Gray() },
		"png":      func(o *Options) { o.PNG() },
		"jpeg":     func(o *Options) { o.JPEG() },
		"jpegcmyk": func(o *Options) { o.JPEGCMYK() },
		"tiff":     func(o *Options) { o.TIFF(TIFFNone) },
	}

	for firstName, first := range setters {
		for secondName, second := range setters {
			t.Run(firstName+"_then_"+secondName, func(t *testing.T) {
				o := newOptions()
				first(o)
				require.NoError(t, o.Err())

				second(o)
				require.Error(t, o.Err())
				assert.Contains(t, o.Err().Error(), "output format already set")
			})
		}
	}
}

func TestOutputPrefixDefault(t *testing.T) {
	c := NewFileConverter()
	assert.Equal(t, DefaultOutputPrefix, c.prefix)

	c.OutputPrefix("/tmp/pages")
	assert.Equal(t, "/tmp/pages", c.prefix)

	c.OutputPrefix("")
	assert.Error(t, c.Err())
}
