package pdfinfo

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	pageSizeRE = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*x\s*(\d+(?:\.\d+)?)`)
	digitsRE   = regexp.MustCompile(`[^0-9]`)
)

// Date layouts pdfinfo may print: the locale-free default, the default
// with a timezone, ISO-8601 (-isodates) and the undecoded PDF form
// (-rawdates).
var dateLayouts = []string{
	"Mon Jan _2 15:04:05 2006 MST",
	"Mon Jan _2 15:04:05 2006",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05-07",
	"2006-01-02T15:04:05",
	"D:20060102150405-07'00'",
	"D:20060102150405Z",
	"D:20060102150405",
}

// parseReport converts the pdfinfo text report into an Info record. Each
// line is split at its first colon; both sides are trimmed. Missing keys
// leave the zero value of the matching field.
func parseReport(out []byte) *Info {
	raw := make(map[string]string)
	for _, line := range strings.Split(string(out), "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		raw[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	info := &Info{Raw: raw}
	info.Title = raw["Title"]
	info.Subject = raw["Subject"]
	info.Keywords = raw["Keywords"]
	info.Author = raw["Author"]
	info.Creator = raw["Creator"]
	info.Producer = raw["Producer"]
	info.CreationDate = date(raw["CreationDate"])
	info.ModificationDate = date(raw["ModDate"])
	info.CustomMetadata = yes(raw["Custom Metadata"])
	info.MetadataStream = yes(raw["Metadata Stream"])
	info.Tagged = yes(raw["Tagged"])
	info.UserProperties = yes(raw["UserProperties"])
	info.Suspects = yes(raw["Suspects"])
	info.JavaScript = yes(raw["JavaScript"])
	info.Encrypted = yes(raw["Encrypted"])
	info.Optimized = yes(raw["Optimized"])
	info.Form = form(raw["Form"])
	info.PageCount = integer(raw["Pages"])
	info.PageSize = pageSize(raw["Page size"])
	info.PageRotation = integer(raw["Page rot"])
	info.FileSize = fileSize(raw["File size"])
	info.PDFVersion = raw["PDF version"]
	return info
}

// yes reports whether a raw value means true ("yes", case-insensitive).
func yes(value string) bool {
	return strings.EqualFold(value, "yes")
}

// integer parses a decimal value, 0 when missing or non-numeric.
func integer(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

// fileSize strips non-digit characters (unit suffixes) before parsing.
func fileSize(value string) int64 {
	digits := digitsRE.ReplaceAllString(value, "")
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// pageSize extracts "WIDTH x HEIGHT" numerics, both 0 when no match.
func pageSize(value string) PageSize {
	match := pageSizeRE.FindStringSubmatch(value)
	if match == nil {
		return PageSize{}
	}
	width, _ := strconv.ParseFloat(match[1], 64)
	height, _ := strconv.ParseFloat(match[2], 64)
	return PageSize{Width: int(width), Height: int(height)}
}

func form(value string) FormType {
	switch {
	case strings.EqualFold(value, string(FormAcro)):
		return FormAcro
	case strings.EqualFold(value, string(FormXFA)):
		return FormXFA
	default:
		return FormNone
	}
}

// date parses a pdfinfo date value, zero time when missing or
// unparseable.
func date(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	// Raw PDF dates may carry timezone spellings the layouts above do
	// not cover; fall back to the leading date-time digits.
	if strings.HasPrefix(value, "D:") && len(value) >= 16 {
		if t, err := time.Parse("20060102150405", value[2:16]); err == nil {
			return t
		}
	}
	return time.Time{}
}
