// Package export encodes tabular projections into downloadable files.
package export

import "adminconsole/internal/listing"

// Target is an encoder together with how its output is served.
type Target struct {
	listing.Encoder
	ContentType string
	Extension   string
}

// Targets returns the encoders for every supported format.
func Targets() map[listing.Format]Target {
	return map[listing.Format]Target{
		listing.FormatSpreadsheet: {
			Encoder:     Spreadsheet{},
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Extension:   "xlsx",
		},
		listing.FormatDocument: {
			Encoder:     Document{},
			ContentType: "application/pdf",
			Extension:   "pdf",
		},
	}
}

// Encoders strips the serving metadata for use in listing.Options.
func Encoders(targets map[listing.Format]Target) map[listing.Format]listing.Encoder {
	out := make(map[listing.Format]listing.Encoder, len(targets))
	for f, t := range targets {
		out[f] = t.Encoder
	}
	return out
}
