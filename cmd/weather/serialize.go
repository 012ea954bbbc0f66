package weather

import (
	"io"
	"strings"
)

// Delimiter separates fields in exported text.
type Delimiter string

const (
	// Comma is used for the CSV file export.
	Comma Delimiter = ","
	// Tab is used for clipboard text so it pastes into spreadsheets as columns.
	Tab Delimiter = "\t"
)

// Header is the fixed export column order.
var Header = []string{
	"Date",
	"Temp_Min_C",
	"Temp_Max_C",
	"Temp_Avg_C",
	"Humidity_%",
	"VPD_kPa",
	"PAR_umol_m2_s",
	"Solar_Rad_W_m2",
	"Pressure_hPa",
	"Wind_km_h",
}

// Serialize renders the header and one line per record joined by "\n", with
// no trailing newline. Fields are not quoted; none of the formats can contain
// either delimiter.
func Serialize(s Series, d Delimiter) string {
	b := &strings.Builder{}
	_ = WriteDelimited(b, s, d)
	return b.String()
}

// WriteDelimited streams the Serialize output to w.
func WriteDelimited(w io.Writer, s Series, d Delimiter) error {
	sep := string(d)
	if _, err := io.WriteString(w, strings.Join(Header, sep)); err != nil {
		return err
	}
	for _, r := range s.Records {
		if _, err := io.WriteString(w, "\n"+strings.Join(r.Fields(), sep)); err != nil {
			return err
		}
	}
	return nil
}
