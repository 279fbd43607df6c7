package viewports

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FontAtlas is the GUI library's rasterized font texture. The renderer reads
// the pixels once, uploads them, reports the texture name back with SetTexID
// and then lets the atlas drop its CPU copy.
type FontAtlas interface {
	// TexDataAsRGBA32 returns tightly packed 8-bit RGBA pixels.
	TexDataAsRGBA32() (pixels []byte, width, height int)
	SetTexID(id uint32)
	TexID() uint32
	ClearTexData()
}

const (
	atlasFirstRune = ' '
	atlasLastRune  = '~'
	atlasColumns   = 16
)

// DefaultFontAtlas rasterizes printable ASCII from basicfont's 7x13 face
// into a grid, plus a solid white block used for untextured shapes.
type DefaultFontAtlas struct {
	face   *basicfont.Face
	cellW  int
	cellH  int
	width  int
	height int

	img   *image.RGBA
	texID uint32
}

// NewDefaultFontAtlas creates an atlas; pixels are produced on first use.
func NewDefaultFontAtlas() *DefaultFontAtlas {
	face := basicfont.Face7x13
	rows := (int(atlasLastRune-atlasFirstRune) + atlasColumns) / atlasColumns
	a := &DefaultFontAtlas{
		face:  face,
		cellW: face.Advance,
		cellH: face.Height,
	}
	a.width = a.cellW * atlasColumns
	// One extra row holds the white block.
	a.height = a.cellH * (rows + 1)
	return a
}

func (a *DefaultFontAtlas) build() {
	img := image.NewRGBA(image.Rect(0, 0, a.width, a.height))
	src := image.NewUniform(color.White)
	for r := atlasFirstRune; r <= atlasLastRune; r++ {
		cell := a.cell(r)
		dot := fixed.P(cell.Min.X, cell.Min.Y+a.face.Ascent)
		dr, mask, maskp, _, ok := a.face.Glyph(dot, r)
		if !ok {
			continue
		}
		draw.DrawMask(img, dr, src, image.Point{}, mask, maskp, draw.Over)
	}
	draw.Draw(img, a.whiteRect(), src, image.Point{}, draw.Src)
	a.img = img
}

func (a *DefaultFontAtlas) cell(r rune) image.Rectangle {
	i := int(r - atlasFirstRune)
	x := (i % atlasColumns) * a.cellW
	y := (i / atlasColumns) * a.cellH
	return image.Rect(x, y, x+a.cellW, y+a.cellH)
}

func (a *DefaultFontAtlas) whiteRect() image.Rectangle {
	y := a.height - a.cellH
	return image.Rect(0, y, a.cellW, a.height)
}

// TexDataAsRGBA32 implements FontAtlas.
func (a *DefaultFontAtlas) TexDataAsRGBA32() ([]byte, int, int) {
	if a.img == nil {
		a.build()
	}
	return a.img.Pix, a.width, a.height
}

// SetTexID implements FontAtlas.
func (a *DefaultFontAtlas) SetTexID(id uint32) { a.texID = id }

// TexID implements FontAtlas.
func (a *DefaultFontAtlas) TexID() uint32 { return a.texID }

// ClearTexData implements FontAtlas.
func (a *DefaultFontAtlas) ClearTexData() { a.img = nil }

// HasTexData reports whether the CPU copy of the pixels is held.
func (a *DefaultFontAtlas) HasTexData() bool { return a.img != nil }

// GlyphSize returns the size of one character cell in pixels.
func (a *DefaultFontAtlas) GlyphSize() Vec2 {
	return Vec2{X: float32(a.cellW), Y: float32(a.cellH)}
}

// Metrics returns the face metrics of the atlas font.
func (a *DefaultFontAtlas) Metrics() font.Metrics {
	return a.face.Metrics()
}

// GlyphUV returns the texture coordinates of r's cell. Runes outside the
// atlas map to '?'.
func (a *DefaultFontAtlas) GlyphUV(r rune) (uv0, uv1 [2]float32) {
	if r < atlasFirstRune || r > atlasLastRune {
		r = '?'
	}
	return a.uv(a.cell(r))
}

// WhitePixelUV returns a coordinate inside the solid white block.
func (a *DefaultFontAtlas) WhitePixelUV() [2]float32 {
	uv0, uv1 := a.uv(a.whiteRect())
	return [2]float32{(uv0[0] + uv1[0]) / 2, (uv0[1] + uv1[1]) / 2}
}

func (a *DefaultFontAtlas) uv(r image.Rectangle) (uv0, uv1 [2]float32) {
	w, h := float32(a.width), float32(a.height)
	return [2]float32{float32(r.Min.X) / w, float32(r.Min.Y) / h},
		[2]float32{float32(r.Max.X) / w, float32(r.Max.Y) / h}
}

// AddText draws s with the default atlas starting at pos.
func (dl *DrawList) AddText(atlas *DefaultFontAtlas, pos Vec2, s string, col uint32) {
	if col&0xFF000000 == 0 || s == "" {
		return
	}
	size := atlas.GlyphSize()
	dl.SetTexture(atlas.TexID())
	x := pos.X
	for _, r := range s {
		uv0, uv1 := atlas.GlyphUV(r)
		dl.AddRectUV(x, pos.Y, size.X, size.Y, uv0, uv1, col)
		x += size.X
	}
}
