package opengl

import (
	"bytes"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/viewports"
)

func TestGrowSize(t *testing.T) {
	assert.Equal(t, 10000, growSize(10000, 5000))
	assert.Equal(t, 10000, growSize(10000, 10000))
	assert.Equal(t, 15000, growSize(10000, 12000))
	assert.Equal(t, 40000, growSize(10000, 40000))
}

func TestResourceSet_GrowthIsMonotonic(t *testing.T) {
	f := newFakeGL()
	rs := newResourceSet(f)
	rng := rand.New(rand.NewPCG(1, 2))

	vcap, icap := rs.vertexCap, rs.indexCap
	for range 200 {
		v, i := rng.IntN(100000), rng.IntN(50000)
		rs.resize(v, i)
		require.GreaterOrEqual(t, rs.vertexCap, vcap)
		require.GreaterOrEqual(t, rs.indexCap, icap)
		require.GreaterOrEqual(t, rs.vertexCap, v)
		require.GreaterOrEqual(t, rs.indexCap, i)
		vcap, icap = rs.vertexCap, rs.indexCap
	}
	assert.Equal(t, rs.vertexCap, f.buffers[rs.vertexBuffer])
	assert.Equal(t, rs.indexCap, f.buffers[rs.indexBuffer])
}

func TestNewResourceSet_Layout(t *testing.T) {
	f := newFakeGL()
	f.vao, f.arrayBuf = 7, 8
	rs := newResourceSet(f)

	assert.Equal(t, uint32(7), f.vao, "previous vertex array kept")
	assert.Equal(t, uint32(8), f.arrayBuf, "previous array buffer kept")
	assert.Equal(t, initialVertexBufferSize, f.buffers[rs.vertexBuffer])
	assert.Equal(t, initialIndexBufferSize, f.buffers[rs.indexBuffer])
	assert.Equal(t, map[uint32]int{
		0: viewports.DrawVertPosOffset,
		1: viewports.DrawVertUVOffset,
		2: viewports.DrawVertColOffset,
	}, f.attribs)

	rs.dispose()
	rs.dispose()
	assert.Empty(t, f.vaos)
	assert.Empty(t, f.buffers)
}

func TestMipLevels(t *testing.T) {
	assert.Equal(t, 1, mipLevels(1, 1))
	assert.Equal(t, 1, mipLevels(2, 2))
	assert.Equal(t, 6, mipLevels(112, 91))
	assert.Equal(t, 10, mipLevels(1024, 512))
}

func TestCreateFontTexture(t *testing.T) {
	f := newFakeGL()
	f.activeTex = TEXTURE0 + 2
	f.tex2D[TEXTURE0] = 33
	atlas := viewports.NewDefaultFontAtlas()
	_, w, h := atlas.TexDataAsRGBA32()

	tex := createFontTexture(f, atlas)

	assert.Equal(t, tex, atlas.TexID())
	assert.False(t, atlas.HasTexData(), "CPU pixels released after upload")
	assert.Equal(t, [2]int{w, h}, f.texLevels[tex])
	assert.Equal(t, mipLevels(w, h)-1, f.texParams[TEXTURE_MAX_LEVEL])
	assert.Equal(t, REPEAT, f.texParams[TEXTURE_WRAP_S])
	assert.Equal(t, LINEAR, f.texParams[TEXTURE_MIN_FILTER])
	assert.Equal(t, Enum(TEXTURE0+2), f.activeTex)
	assert.Equal(t, uint32(33), f.tex2D[TEXTURE0])
}

func TestCheckError(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	f := newFakeGL()
	f.errors = []Enum{INVALID_OPERATION, OUT_OF_MEMORY}

	checkError(f, log, "upload")

	assert.Empty(t, f.errors)
	assert.Contains(t, buf.String(), "label=upload")
	assert.Contains(t, buf.String(), "code=INVALID_OPERATION")
	assert.Contains(t, buf.String(), "code=OUT_OF_MEMORY")

	buf.Reset()
	checkError(f, log, "quiet")
	assert.Empty(t, buf.String())
}

func TestCheckError_Bounded(t *testing.T) {
	f := newFakeGL()
	for range 100 {
		f.errors = append(f.errors, INVALID_ENUM)
	}
	checkError(f, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), "lost")
	assert.Len(t, f.errors, 68)
}

func TestErrorName(t *testing.T) {
	assert.Equal(t, "INVALID_VALUE", ErrorName(INVALID_VALUE))
	assert.Equal(t, "UNKNOWN_ERROR", ErrorName(0x1234))
}
