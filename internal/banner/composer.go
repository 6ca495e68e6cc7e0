// Package banner composes Minecraft server banners: background, favicon,
// player counts, server name and a MOTD with legacy formatting codes.
package banner

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"strconv"
	"strings"

	"mcbanner/internal/assets"
	"mcbanner/internal/canvas"
	"mcbanner/internal/logger"
	"mcbanner/internal/motd"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Layout, in pixels.
const (
	faviconX    = 24
	faviconY    = 24
	faviconSize = 128

	headerY      = 78
	textX        = 176
	playersRight = 1284
	playersGap   = 3

	motdY          = 133
	motdLineHeight = 50
)

// surface is what the composer draws on. *canvas.Canvas implements it.
type surface interface {
	motd.Surface
	FillTextRight(text string, x, y float64)
	DrawImage(img image.Image, x, y int)
	DrawImageScaled(img image.Image, x, y, w, h int)
	Image() image.Image
}

// Result is the outcome of GenerateAsync.
type Result struct {
	Data     []byte
	MIMEType string
	Err      error
}

// Composer renders banners. It is immutable after construction and safe
// for concurrent use; every call draws on its own surface.
type Composer struct {
	store    *assets.Store
	settings Settings
	tables   *motd.CodeTables
	rand     motd.Rand
	fonts    canvas.Fonts

	newSurface func() (surface, error)
}

// Option configures a Composer.
type Option func(*Composer)

// WithRand sets the random source used for obfuscated text.
func WithRand(r motd.Rand) Option {
	return func(c *Composer) { c.rand = r }
}

// WithCodeTables replaces the default code tables.
func WithCodeTables(t *motd.CodeTables) Option {
	return func(c *Composer) { c.tables = t }
}

// NewComposer creates a composer drawing with the fonts named in settings.
func NewComposer(store *assets.Store, settings Settings, opts ...Option) (*Composer, error) {
	if store == nil {
		return nil, fmt.Errorf("banner composer needs an asset store")
	}
	primary, err := store.Family(settings.PrimaryFont)
	if err != nil {
		return nil, fmt.Errorf("primary font: %w", err)
	}
	fallback, err := store.Family(settings.FallbackFont)
	if err != nil {
		return nil, fmt.Errorf("fallback font: %w", err)
	}

	c := &Composer{
		store:    store,
		settings: settings,
		tables:   motd.Default,
		fonts: canvas.Fonts{
			Primary:     primary,
			Fallback:    fallback,
			Size:        settings.FontSize,
			PrimaryLift: settings.PrimaryLift,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.newSurface = func() (surface, error) {
		return canvas.New(Width, Height, c.fonts)
	}
	return c, nil
}

// Generate renders the banner described by opts and returns it encoded
// as PNG or JPEG. It either returns the whole image or an error.
func (c *Composer) Generate(ctx context.Context, opts Options) ([]byte, error) {
	s, err := c.newSurface()
	if err != nil {
		return nil, err
	}
	if err := c.draw(ctx, s, opts); err != nil {
		return nil, err
	}

	mimeType := outputMIMEType(opts.MIMEType)
	logger.Debug(ctx, "Encoding banner as '{{_Var_}}%s{{|-|}}'.", mimeType)
	res := <-c.encode(s.Image(), mimeType)
	return res.Data, res.Err
}

// GenerateAsync runs Generate on its own goroutine. Exactly one Result is
// delivered on the returned channel.
func (c *Composer) GenerateAsync(ctx context.Context, opts Options) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- Result{MIMEType: outputMIMEType(opts.MIMEType), Err: fmt.Errorf("banner generation panicked: %v", r)}
			}
		}()
		data, err := c.Generate(ctx, opts)
		ch <- Result{Data: data, MIMEType: outputMIMEType(opts.MIMEType), Err: err}
	}()
	return ch
}

func (c *Composer) draw(ctx context.Context, s surface, opts Options) error {
	background, err := c.decodeAsset(assets.ServerBannerBackground)
	if err != nil {
		return err
	}
	favicon, err := c.decodeFavicon(opts.Favicon)
	if err != nil {
		return err
	}

	s.DrawImage(background, 0, 0)
	s.DrawImageScaled(favicon, faviconX, faviconY, faviconSize, faviconSize)
	s.SetFont(motd.VariantNormal)

	c.drawPlayers(s, opts.Players)

	s.SetFillColor(c.tables.MustHex(motd.ColorWhite))
	s.FillText(opts.Name, textX, headerY)

	text := strings.TrimSpace(opts.MOTD)
	if text == "" {
		text = DefaultMOTD
	}
	lines := c.tables.TokenizeLines(text, opts.UseAmpersand)
	logger.Trace(ctx, "Drawing {{_Var_}}%d{{|-|}} MOTD line(s).", len(lines))

	r := motd.NewRenderer(c.tables, c.rand)
	for i, line := range lines {
		r.DrawLine(s, line, textX, float64(motdY+motdLineHeight*i))
	}
	return nil
}

// drawPlayers draws "online/max" right-aligned, max first.
func (c *Composer) drawPlayers(s surface, p Players) {
	gray := c.tables.MustHex(motd.ColorGray)
	x := float64(playersRight)

	maxText := strconv.Itoa(p.Max)
	s.SetFillColor(gray)
	s.FillTextRight(maxText, x, headerY)
	x -= s.MeasureText(maxText).Width + playersGap

	s.SetFillColor(c.tables.MustHex(motd.ColorDarkGray))
	s.FillTextRight("/", x, headerY)
	x -= s.MeasureText("/").Width + playersGap

	s.SetFillColor(gray)
	s.FillTextRight(strconv.Itoa(p.Online), x, headerY)
}

func (c *Composer) decodeAsset(name string) (image.Image, error) {
	data, ok := c.store.Image(name)
	if !ok {
		return nil, &AssetDecodeError{Asset: name, Err: fmt.Errorf("asset not found")}
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, &AssetDecodeError{Asset: name, Err: err}
	}
	return img, nil
}

func (c *Composer) decodeFavicon(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return c.decodeAsset(assets.DefaultServerIcon)
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, &AssetDecodeError{Asset: "favicon", Err: err}
	}
	return img, nil
}

func outputMIMEType(mimeType string) string {
	if mimeType == "" || mimeType == MIMETypePNG {
		return MIMETypePNG
	}
	return MIMETypeJPEG
}
