// Package canvas is the raster drawing surface banners are painted on.
//
// It wraps a gg context with a primary and a fallback font family. Text
// runs are drawn with the primary family when it has a glyph for every
// rune and with the fallback family otherwise, the way a browser canvas
// walks its font list.
package canvas

import (
	"fmt"
	"image"
	"math"

	"mcbanner/internal/assets"
	"mcbanner/internal/motd"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Fonts configures the faces of a Canvas.
type Fonts struct {
	Primary  *assets.Family
	Fallback *assets.Family
	// Size is the font size in pixels.
	Size float64
	// PrimaryLift raises primary glyphs above the baseline, in pixels.
	PrimaryLift float64
}

type faceSet struct {
	primary      font.Face
	fallback     font.Face
	primaryFont  *sfnt.Font
	fallbackFont *sfnt.Font
}

// Canvas implements motd.Surface on top of gg.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	dc      *gg.Context
	faces   map[motd.Variant]*faceSet
	variant motd.Variant
	buf     sfnt.Buffer
}

// New creates a canvas of the given size with the normal variant active.
func New(width, height int, fonts Fonts) (*Canvas, error) {
	if fonts.Primary == nil || fonts.Fallback == nil {
		return nil, fmt.Errorf("canvas needs a primary and a fallback font family")
	}
	c := &Canvas{
		dc:    gg.NewContext(width, height),
		faces: make(map[motd.Variant]*faceSet, 3),
	}

	lift := fixed.Int26_6(math.Round(fonts.PrimaryLift * 64))
	for _, v := range []motd.Variant{motd.VariantNormal, motd.VariantBold, motd.VariantItalic} {
		pf := variantFont(fonts.Primary, v)
		ff := variantFont(fonts.Fallback, v)

		primary, err := newFace(pf, fonts.Size)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s %s face: %w", fonts.Primary.Name, v, err)
		}
		fallback, err := newFace(ff, fonts.Size)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s %s face: %w", fonts.Fallback.Name, v, err)
		}
		if lift != 0 {
			primary = liftedFace{Face: primary, lift: lift}
		}
		c.faces[v] = &faceSet{primary: primary, fallback: fallback, primaryFont: pf, fallbackFont: ff}
	}
	c.SetFont(motd.VariantNormal)
	return c, nil
}

func variantFont(f *assets.Family, v motd.Variant) *sfnt.Font {
	switch v {
	case motd.VariantBold:
		return f.Bold
	case motd.VariantItalic:
		return f.Italic
	default:
		return f.Regular
	}
}

func newFace(f *sfnt.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Image returns the canvas contents.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.dc.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.dc.Height() }

// SetFillColor sets the color used by FillRect and FillText.
func (c *Canvas) SetFillColor(hex string) {
	c.dc.SetHexColor(hex)
}

// SetFont selects the font variant for following text operations.
func (c *Canvas) SetFont(v motd.Variant) {
	if _, ok := c.faces[v]; !ok {
		v = motd.VariantNormal
	}
	c.variant = v
}

// FillRect fills a rectangle with the current fill color.
func (c *Canvas) FillRect(x, y, w, h float64) {
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Fill()
}

// FillText draws text with its left edge at x and baseline at y.
func (c *Canvas) FillText(text string, x, y float64) {
	for _, r := range c.runs(text) {
		c.dc.SetFontFace(r.face)
		c.dc.DrawString(r.text, x, y)
		x += fixedToFloat(font.MeasureString(r.face, r.text))
	}
}

// FillTextRight draws text with its right edge at x and baseline at y.
func (c *Canvas) FillTextRight(text string, x, y float64) {
	c.FillText(text, x-c.MeasureText(text).Width, y)
}

// MeasureText returns the advance width of text and how far its ink
// reaches below the baseline. Primary glyphs report their lifted
// position, so only fallback glyphs come out close to zero.
func (c *Canvas) MeasureText(text string) motd.Metrics {
	var (
		m       motd.Metrics
		descent = math.Inf(-1)
	)
	for _, r := range c.runs(text) {
		m.Width += fixedToFloat(font.MeasureString(r.face, r.text))
		for _, ch := range r.text {
			bounds, _, ok := r.face.GlyphBounds(ch)
			if !ok {
				continue
			}
			descent = math.Max(descent, fixedToFloat(bounds.Max.Y))
		}
	}
	if !math.IsInf(descent, -1) {
		m.Descent = descent
	}
	return m
}

// DrawImage draws img at its natural size with the top-left corner at x, y.
func (c *Canvas) DrawImage(img image.Image, x, y int) {
	c.dc.DrawImage(img, x, y)
}

// DrawImageScaled draws img scaled to w×h with nearest-neighbour sampling,
// keeping pixel art sharp.
func (c *Canvas) DrawImageScaled(img image.Image, x, y, w, h int) {
	c.dc.DrawImage(imaging.Resize(img, w, h, imaging.NearestNeighbor), x, y)
}

type run struct {
	face font.Face
	text string
}

// runs splits text into consecutive pieces that share a face.
func (c *Canvas) runs(text string) []run {
	fs := c.faces[c.variant]

	var result []run
	for _, ch := range text {
		face := fs.fallback
		if c.covers(fs.primaryFont, ch) || !c.covers(fs.fallbackFont, ch) {
			face = fs.primary
		}
		if n := len(result); n > 0 && result[n-1].face == face {
			result[n-1].text += string(ch)
			continue
		}
		result = append(result, run{face: face, text: string(ch)})
	}
	return result
}

func (c *Canvas) covers(f *sfnt.Font, ch rune) bool {
	idx, err := f.GlyphIndex(&c.buf, ch)
	return err == nil && idx != 0
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// liftedFace draws and measures glyphs of the wrapped face raised by lift.
type liftedFace struct {
	font.Face
	lift fixed.Int26_6
}

func (f liftedFace) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	dot.Y -= f.lift
	return f.Face.Glyph(dot, r)
}

func (f liftedFace) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	bounds, advance, ok := f.Face.GlyphBounds(r)
	bounds.Min.Y -= f.lift
	bounds.Max.Y -= f.lift
	return bounds, advance, ok
}
