package signature

import (
	"bytes"
	"errors"
	"image/png"
	"strings"
	"testing"

	"github.com/vincent-petithory/dataurl"
)

func TestPadEmptyUntilFirstStroke(t *testing.T) {
	pad := NewPad(300, 150)
	if !pad.IsEmpty() {
		t.Fatalf("new pad should be empty")
	}

	pad.AddStroke(Stroke{{X: 10, Y: 10}, {X: 40, Y: 30}})
	if pad.IsEmpty() {
		t.Fatalf("pad with a stroke should not be empty")
	}

	pad.Clear()
	if !pad.IsEmpty() {
		t.Fatalf("cleared pad should be empty again")
	}
}

func TestPadIgnoresEmptyStrokes(t *testing.T) {
	pad := NewPad(300, 150)
	pad.AddStroke(Stroke{})
	if !pad.IsEmpty() {
		t.Fatalf("a zero-point stroke should not count as drawing")
	}
}

func TestExportEmptyFails(t *testing.T) {
	pad := NewPad(300, 150)
	_, err := pad.Export()
	if !errors.Is(err, ErrEmptyCapture) {
		t.Fatalf("expected ErrEmptyCapture, got %v", err)
	}
}

func TestExportProducesPNGDataURI(t *testing.T) {
	pad := NewPad(300, 150)
	pad.AddStroke(Stroke{{X: 5, Y: 5}, {X: 120, Y: 80}, {X: 200, Y: 40}})

	img, err := pad.Export()
	if err != nil {
		t.Fatalf("export err: %v", err)
	}
	if !strings.HasPrefix(img.DataURL, "data:image/png;base64,") {
		t.Fatalf("unexpected data URI prefix: %.40s", img.DataURL)
	}
	decoded, err := png.Decode(bytes.NewReader(img.Bytes))
	if err != nil {
		t.Fatalf("exported bytes are not a PNG: %v", err)
	}
	b := decoded.Bounds()
	if b.Dx() != 300 || b.Dy() != 150 {
		t.Fatalf("unexpected canvas size: %v", b)
	}
}

func TestFromDataURLEmpty(t *testing.T) {
	c := FromDataURL("   ")
	if !c.IsEmpty() {
		t.Fatalf("blank data URI should be an empty capture")
	}
	if _, err := c.Export(); !errors.Is(err, ErrEmptyCapture) {
		t.Fatalf("expected ErrEmptyCapture, got %v", err)
	}
}

func TestFromDataURLRoundTrip(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G', 1, 2, 3}
	uri := dataurl.New(raw, "image/png").String()

	c := FromDataURL(uri)
	if c.IsEmpty() {
		t.Fatalf("non-blank data URI should not be empty")
	}
	img, err := c.Export()
	if err != nil {
		t.Fatalf("export err: %v", err)
	}
	if !bytes.Equal(img.Bytes, raw) {
		t.Fatalf("decoded bytes differ from original")
	}
}

func TestFromDataURLMalformed(t *testing.T) {
	c := FromDataURL("not a data uri")
	if c.IsEmpty() {
		t.Fatalf("malformed input is not an empty capture")
	}
	if _, err := c.Export(); err == nil {
		t.Fatalf("expected decode error")
	}
}
