package pdfinfo

import "time"

// FormType is the kind of interactive form a document carries.
type FormType string

// Form kinds reported by pdfinfo.
const (
	FormAcro FormType = "AcroForm"
	FormXFA  FormType = "XFA"
	FormNone FormType = "none"
)

// PageSize is the page dimensions in points.
type PageSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Info is the structured pdfinfo report. Dates stay the zero time.Time
// when the document does not carry them. Raw holds every key of the
// report verbatim, including ones this struct does not model.
type Info struct {
	Title            string            `json:"title"`
	Subject          string            `json:"subject"`
	Keywords         string            `json:"keywords"`
	Author           string            `json:"author"`
	Creator          string            `json:"creator"`
	Producer         string            `json:"producer"`
	CreationDate     time.Time         `json:"creation_date,omitempty"`
	ModificationDate time.Time         `json:"modification_date,omitempty"`
	CustomMetadata   bool              `json:"custom_metadata"`
	MetadataStream   bool              `json:"metadata_stream"`
	Tagged           bool              `json:"tagged"`
	UserProperties   bool              `json:"user_properties"`
	Suspects         bool              `json:"suspects"`
	JavaScript       bool              `json:"javascript"`
	Encrypted        bool              `json:"encrypted"`
	Optimized        bool              `json:"optimized"`
	Form             FormType          `json:"form"`
	PageCount        int               `json:"page_count"`
	PageSize         PageSize          `json:"page_size"`
	PageRotation     int               `json:"page_rotation"`
	FileSize         int64             `json:"file_size"`
	PDFVersion       string            `json:"pdf_version"`
	Raw              map[string]string `json:"raw,omitempty"`
}
