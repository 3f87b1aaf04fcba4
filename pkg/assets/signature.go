package assets

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"sync"

	"github.com/vincent-petithory/dataurl"

	"triroars-proposal/pkg/models"
)

// ErrAssetLoad means the fixed developer signature image could not be read.
// A contract send must not proceed without it; the image is never silently
// substituted with a blank one.
var ErrAssetLoad = errors.New("developer signature asset unavailable")

// DeveloperSignature serves the fixed, pre-supplied developer signature
// image. The file is read once on first use and cached for the process
// lifetime.
type DeveloperSignature struct {
	path string

	once sync.Once
	img  models.SignatureImage
	err  error
}

// NewDeveloperSignature creates a loader for the signature image at path.
// The file is not touched until Load is first called.
func NewDeveloperSignature(path string) *DeveloperSignature {
	return &DeveloperSignature{path: path}
}

// Load returns the developer signature as image bytes plus a data URI.
// Every call after the first returns the cached result.
func (d *DeveloperSignature) Load() (models.SignatureImage, error) {
	d.once.Do(func() {
		raw, err := os.ReadFile(d.path)
		if err != nil {
			d.err = fmt.Errorf("%w: %v", ErrAssetLoad, err)
			return
		}
		contentType := mime.TypeByExtension(filepath.Ext(d.path))
		if contentType == "" {
			contentType = "image/jpeg"
		}
		d.img = models.SignatureImage{
			DataURL: dataurl.New(raw, contentType).String(),
			Bytes:   raw,
		}
	})
	return d.img, d.err
}
