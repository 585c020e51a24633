package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter renders an estimate as JSON with decimals as strings
type JSONFormatter struct {
	Indent string
}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the estimate
func (f *JSONFormatter) Render(w io.Writer, estimate *Estimate) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", f.Indent)
	return enc.Encode(estimate)
}
