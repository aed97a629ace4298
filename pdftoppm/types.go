package pdftoppm

// TIFFCompression selects the compression scheme of TIFF output.
type TIFFCompression string

// Compression schemes accepted by pdftoppm.
const (
	TIFFNone     TIFFCompression = "none"
	TIFFPackBits TIFFCompression = "packbits"
	TIFFJPEG     TIFFCompression = "jpeg"
	TIFFLZW      TIFFCompression = "lzw"
	TIFFDeflate  TIFFCompression = "deflate"
)

// ThinLineMode selects the thin line rendering mode.
type ThinLineMode string

// Thin line modes accepted by pdftoppm.
const (
	ThinLineNone  ThinLineMode = "none"
	ThinLineSolid ThinLineMode = "solid"
	ThinLineShape ThinLineMode = "shape"
)

// JPEGOptions tune JPEG output. Quality must be within [0, 100].
type JPEGOptions struct {
	Quality     int  `json:"quality"`     // 0-100
	Progressive bool `json:"progressive"` // progressive JPEG
	Optimize    bool `json:"optimize"`    // optimize Huffman tables
}

// StreamResult is a single rendered page held in memory.
type StreamResult struct {
	Data     []byte `json:"-"`
	MimeType string `json:"mime_type"` // sniffed from the image bytes
}
