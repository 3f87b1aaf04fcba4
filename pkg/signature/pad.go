package signature

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/vincent-petithory/dataurl"

	"triroars-proposal/pkg/models"
)

// ErrEmptyCapture is returned when Export is called on a pad with no strokes.
// Callers are expected to check IsEmpty first, so hitting this is a
// programmer error, not user input to surface.
var ErrEmptyCapture = errors.New("signature capture is empty")

// Point is a single sample of freehand pointer input, in pad coordinates.
type Point struct {
	X, Y int
}

// Stroke is one continuous pen-down movement.
type Stroke []Point

// Capture is the contract the approval workflow depends on: emptiness check
// plus export to an image. Satisfied by Pad and by FromDataURL adapters.
type Capture interface {
	IsEmpty() bool
	Export() (models.SignatureImage, error)
}

// Pad records freehand strokes on a fixed-size white canvas.
type Pad struct {
	width   int
	height  int
	strokes []Stroke
}

// NewPad creates an empty pad of the given pixel dimensions.
func NewPad(width, height int) *Pad {
	return &Pad{width: width, height: height}
}

// AddStroke appends one pen-down movement. Strokes with no points are ignored.
func (p *Pad) AddStroke(s Stroke) {
	if len(s) == 0 {
		return
	}
	p.strokes = append(p.strokes, s)
}

// IsEmpty reports whether no stroke has been drawn since creation or the
// last Clear.
func (p *Pad) IsEmpty() bool {
	return len(p.strokes) == 0
}

// Clear resets the pad to its empty state.
func (p *Pad) Clear() {
	p.strokes = nil
}

// Export rasterizes the recorded strokes to a PNG and returns it as a data
// URI plus the raw bytes. Fails with ErrEmptyCapture while the pad is empty.
func (p *Pad) Export() (models.SignatureImage, error) {
	if p.IsEmpty() {
		return models.SignatureImage{}, ErrEmptyCapture
	}

	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	ink := color.RGBA{A: 255}
	for _, s := range p.strokes {
		if len(s) == 1 {
			setInk(img, s[0].X, s[0].Y, ink)
			continue
		}
		for i := 1; i < len(s); i++ {
			drawLine(img, s[i-1], s[i], ink)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return models.SignatureImage{}, err
	}
	raw := buf.Bytes()
	return models.SignatureImage{
		DataURL: dataurl.New(raw, "image/png").String(),
		Bytes:   raw,
	}, nil
}

// drawLine rasterizes the segment between two points (Bresenham).
func drawLine(img *image.RGBA, a, b Point, c color.RGBA) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx := 1
	if a.X > b.X {
		sx = -1
	}
	sy := 1
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy
	x, y := a.X, a.Y
	for {
		setInk(img, x, y, c)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func setInk(img *image.RGBA, x, y int, c color.RGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetRGBA(x, y, c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
