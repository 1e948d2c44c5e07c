package overlay

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/game-result-mcp/internal/document"
	"github.com/ironsheep/game-result-mcp/internal/extract"
	"github.com/ironsheep/game-result-mcp/internal/geometry"
)

// MaxPixels bounds the blank canvas built for documents without a screenshot.
const MaxPixels = 40_000_000

// ErrTooLarge is returned when a blank canvas would exceed MaxPixels.
var ErrTooLarge = errors.New("overlay canvas too large")

var canvasBackground = color.RGBA{32, 32, 32, 255}

// Band is one group of scan positions drawn in a single color.
type Band struct {
	Name      string
	Positions []float64
	// Color is a hex string like "#FF0000". Empty picks one from a palette.
	Color string
}

// Options control what Render draws.
type Options struct {
	Bands []Band
	// FragmentColor outlines every fragment polygon. Empty disables outlines.
	FragmentColor string
	// Labels draws each band's name above its first line.
	Labels bool
}

// DefaultOptions draws the three extraction bands of cfg.
func DefaultOptions(cfg extract.Config) Options {
	return Options{
		Bands: []Band{
			{Name: "ranking", Positions: cfg.RankingBand, Color: "#E6194B"},
			{Name: "score", Positions: cfg.ScoreBand, Color: "#3CB44B"},
			{Name: "order", Positions: cfg.OrderBand, Color: "#4363D8"},
		},
		FragmentColor: "#FFE119",
		Labels:        true,
	}
}

// Result contains the rendered overlay as a base64 PNG
type Result struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Render draws opts onto a copy of base. A nil base renders onto a blank
// canvas as wide as the page and tall enough for every fragment. Document
// coordinates are scaled by the ratio of the image width to the page width.
func Render(base image.Image, doc *document.Document, opts Options) (*image.RGBA, error) {
	fragmentColor, err := parseColor(opts.FragmentColor)
	if err != nil {
		return nil, err
	}
	bandColors := make([]color.RGBA, len(opts.Bands))
	for i, b := range opts.Bands {
		if b.Color == "" {
			bandColors[i] = paletteColor(i, len(opts.Bands))
			continue
		}
		if bandColors[i], err = parseColor(b.Color); err != nil {
			return nil, fmt.Errorf("band %s: %w", b.Name, err)
		}
	}

	var dst *image.RGBA
	if base == nil {
		if dst, err = blankCanvas(doc); err != nil {
			return nil, err
		}
	} else {
		bounds := base.Bounds()
		dst = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(dst, dst.Bounds(), base, bounds.Min, draw.Src)
	}

	width, height := dst.Bounds().Dx(), dst.Bounds().Dy()
	scale := float64(width) / doc.PageWidth()

	if opts.FragmentColor != "" {
		for _, f := range doc.Fragments() {
			drawPolygon(dst, f.Polygon.Scale(scale), fragmentColor)
		}
	}

	for i, b := range opts.Bands {
		first := true
		for _, pos := range b.Positions {
			if math.IsNaN(pos) || pos < 0 || pos > 1 {
				continue
			}
			x := int(math.Round(pos * doc.PageWidth() * scale))
			if x >= width {
				x = width - 1
			}
			drawLine(dst, x, 0, x, height-1, bandColors[i])
			if opts.Labels && first && b.Name != "" {
				drawLabel(dst, x+2, 2, b.Name, color.RGBA{255, 255, 255, 255}, bandColors[i])
			}
			first = false
		}
	}

	return dst, nil
}

// Encode returns img as a base64 PNG.
func Encode(img image.Image) (*Result, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &Result{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// Save writes img to path; the format follows the file extension.
func Save(path string, img image.Image) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save overlay: %w", err)
	}
	return nil
}

func blankCanvas(doc *document.Document) (*image.RGBA, error) {
	maxY := 0.0
	for _, f := range doc.Fragments() {
		for _, v := range f.Polygon {
			maxY = math.Max(maxY, v.Y)
		}
	}
	width := int(math.Ceil(doc.PageWidth()))
	height := int(math.Ceil(maxY)) + 1
	if float64(width)*float64(height) > MaxPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(canvasBackground), image.Point{}, draw.Src)
	return img, nil
}

// parseColor parses a hex color string like "#FF0000". An empty string
// yields the zero color.
func parseColor(hex string) (color.RGBA, error) {
	if hex == "" {
		return color.RGBA{}, nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return toRGBA(c), nil
}

// paletteColor spreads n colors evenly around the hue circle.
func paletteColor(i, n int) color.RGBA {
	return toRGBA(colorful.Hsv(float64(i)*360/float64(n), 0.8, 0.95))
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// drawPolygon outlines p. Edges are clipped to img first, so the work done is
// bounded by the canvas size whatever the coordinates.
func drawPolygon(img *image.RGBA, p geometry.Polygon, c color.RGBA) {
	for i := range p {
		a, b := p[i], p[(i+1)%len(p)]
		x0, y0, x1, y1, ok := clipSegment(img.Bounds(), a.X, a.Y, b.X, b.Y)
		if !ok {
			continue
		}
		drawLine(img,
			int(math.Round(x0)), int(math.Round(y0)),
			int(math.Round(x1)), int(math.Round(y1)), c)
	}
}

// clipSegment clips the segment (x0,y0)-(x1,y1) to the pixels of r using
// Liang-Barsky, reporting false when no part of it lies inside.
func clipSegment(r image.Rectangle, x0, y0, x1, y1 float64) (float64, float64, float64, float64, bool) {
	if r.Empty() {
		return 0, 0, 0, 0, false
	}
	minX, minY := float64(r.Min.X), float64(r.Min.Y)
	maxX, maxY := float64(r.Max.X-1), float64(r.Max.Y-1)
	dx, dy := x1-x0, y1-y0

	t0, t1 := 0.0, 1.0
	for _, edge := range [4][2]float64{
		{-dx, x0 - minX},
		{dx, maxX - x0},
		{-dy, y0 - minY},
		{dy, maxY - y0},
	} {
		p, q := edge[0], edge[1]
		if p == 0 {
			// Parallel to this edge: inside or never.
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, t)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

// drawLine uses Bresenham's algorithm; points outside img are dropped by Set.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		img.SetRGBA(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// drawLabel draws text in basicfont on a filled background whose top-left
// corner is (x, y).
func drawLabel(img *image.RGBA, x, y int, text string, fg, bg color.RGBA) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	box := image.Rect(x-1, y-1, x+width+1, y+face.Height+1)
	draw.Draw(img, box.Intersect(img.Bounds()), image.NewUniform(bg), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y + face.Ascent)},
	}
	d.DrawString(text)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
