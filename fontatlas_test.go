package viewports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFontAtlas_TexData(t *testing.T) {
	a := NewDefaultFontAtlas()
	pixels, w, h := a.TexDataAsRGBA32()
	require.Equal(t, w*h*4, len(pixels))
	assert.Equal(t, 7*atlasColumns, w)
	assert.True(t, a.HasTexData())

	// The white block is opaque white.
	uv := a.WhitePixelUV()
	x, y := int(uv[0]*float32(w)), int(uv[1]*float32(h))
	off := (y*w + x) * 4
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, pixels[off:off+4])

	a.SetTexID(7)
	a.ClearTexData()
	assert.False(t, a.HasTexData())
	assert.Equal(t, uint32(7), a.TexID())
}

func TestDefaultFontAtlas_GlyphUV(t *testing.T) {
	a := NewDefaultFontAtlas()
	uv0, uv1 := a.GlyphUV('A')
	assert.Less(t, uv0[0], uv1[0])
	assert.Less(t, uv0[1], uv1[1])

	q0, q1 := a.GlyphUV('?')
	u0, u1 := a.GlyphUV('é')
	assert.Equal(t, q0, u0, "runes outside the atlas fall back to '?'")
	assert.Equal(t, q1, u1)
}

func TestDrawList_AddText(t *testing.T) {
	a := NewDefaultFontAtlas()
	a.SetTexID(3)
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddText(a, Vec2{X: 10, Y: 20}, "hi", 0xFFFFFFFF)
	dl.Finalize()

	require.Len(t, dl.CmdBuffer, 1)
	assert.Equal(t, uint32(3), dl.CmdBuffer[0].TextureID)
	assert.Len(t, dl.VtxBuffer, 8)
	assert.Equal(t, [2]float32{17, 20}, dl.VtxBuffer[4].Pos, "second glyph advances by one cell")
}
