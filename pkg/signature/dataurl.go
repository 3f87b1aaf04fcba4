package signature

import (
	"fmt"
	"strings"

	"github.com/vincent-petithory/dataurl"

	"triroars-proposal/pkg/models"
)

// fromDataURL adapts a signature the frontend already exported (a data-URI
// string) to the Capture contract, so the workflow treats browser-captured
// and pad-captured signatures the same way.
type fromDataURL struct {
	raw string
}

// FromDataURL wraps an exported signature data URI. A blank string is an
// empty capture.
func FromDataURL(raw string) Capture {
	return &fromDataURL{raw: strings.TrimSpace(raw)}
}

func (f *fromDataURL) IsEmpty() bool {
	return f.raw == ""
}

func (f *fromDataURL) Export() (models.SignatureImage, error) {
	if f.IsEmpty() {
		return models.SignatureImage{}, ErrEmptyCapture
	}
	du, err := dataurl.DecodeString(f.raw)
	if err != nil {
		return models.SignatureImage{}, fmt.Errorf("error decoding signature data URI: %w", err)
	}
	return models.SignatureImage{DataURL: f.raw, Bytes: du.Data}, nil
}
