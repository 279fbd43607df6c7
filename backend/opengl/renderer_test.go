package opengl

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/viewports"
)

type target struct {
	pos, size viewports.Vec2
}

func (t target) Pos() viewports.Vec2             { return t.pos }
func (t target) Size() viewports.Vec2            { return t.size }
func (t target) FramebufferSize() viewports.Vec2 { return t.size }

func newTestRenderer(t *testing.T, f *fakeGL, opts ...Option) (*Renderer, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	opts = append([]Option{WithLogger(slog.New(slog.NewTextHandler(&logs, nil)))}, opts...)
	r, err := NewRenderer(f, viewports.NewDefaultFontAtlas(), opts...)
	require.NoError(t, err)
	return r, &logs
}

// quads builds draw data with n quads clipped to clip.
func quads(n int, clip viewports.Vec4, pos, size viewports.Vec2) *viewports.DrawData {
	dl := &viewports.DrawList{}
	dl.Clear()
	dl.SetTexture(9)
	dl.PushClipRect(clip.X, clip.Y, clip.Z, clip.W)
	for i := range n {
		dl.AddRect(float32(i), 0, 1, 1, [2]float32{}, 0xFFFFFFFF)
	}
	dl.Finalize()
	return &viewports.DrawData{
		CmdLists:         []*viewports.DrawList{dl},
		DisplayPos:       pos,
		DisplaySize:      size,
		FramebufferScale: viewports.Vec2{X: 1, Y: 1},
	}
}

func TestNewRenderer(t *testing.T) {
	f := newFakeGL()
	dirty(f)
	before := f.snapshot()
	r, logs := newTestRenderer(t, f)

	assert.True(t, f.textures[r.FontTexture()])
	assert.True(t, f.programs[r.Program()])
	assert.True(t, f.vaos[r.VertexArray()])
	assert.Empty(t, f.shaders, "shader objects are released after linking")
	assert.Equal(t, before, f.snapshot(), "setup leaves bindings as they were")
	assert.Empty(t, logs.String(), "no GL errors during setup")

	flags := r.BackendFlags()
	assert.NotZero(t, flags&viewports.BackendFlagsRendererHasVtxOffset)
	assert.NotZero(t, flags&viewports.BackendFlagsRendererHasViewports)
}

func TestNewRenderer_ShaderCompileFailure(t *testing.T) {
	f := newFakeGL()
	f.failCompile = true

	_, err := NewRenderer(f, viewports.NewDefaultFontAtlas())
	require.ErrorIs(t, err, ErrShaderCompile)
	assert.Contains(t, err.Error(), "syntax error")
	assert.Empty(t, f.shaders)
	assert.Empty(t, f.programs)
	assert.Empty(t, f.vaos, "partial renderer released")
	assert.Empty(t, f.buffers)
	assert.Empty(t, f.textures)
}

func TestNewRenderer_ShaderLinkFailure(t *testing.T) {
	f := newFakeGL()
	f.failLink = true

	_, err := NewRenderer(f, viewports.NewDefaultFontAtlas())
	require.ErrorIs(t, err, ErrShaderLink)
	assert.Contains(t, err.Error(), "missing main")
	assert.Empty(t, f.shaders)
	assert.Empty(t, f.programs)
}

func TestRenderer_NewSharedBorrows(t *testing.T) {
	f := newFakeGL()
	parent, _ := newTestRenderer(t, f)

	s, err := parent.NewShared()
	require.NoError(t, err)
	shared := s.(*Renderer)

	assert.Equal(t, parent.Program(), shared.Program())
	assert.Equal(t, parent.FontTexture(), shared.FontTexture())
	assert.NotEqual(t, parent.VertexArray(), shared.VertexArray())
	assert.Equal(t, parent.BackendFlags(), shared.BackendFlags())

	shared.Dispose()
	shared.Dispose()
	assert.False(t, f.vaos[shared.VertexArray()])
	assert.True(t, f.programs[parent.Program()], "shared dispose keeps the program")
	assert.True(t, f.textures[parent.FontTexture()])

	parent.Dispose()
	assert.Empty(t, f.programs)
	assert.Empty(t, f.textures)
	assert.Empty(t, f.vaos)
	assert.Empty(t, f.buffers)
}

func TestRenderer_Begin(t *testing.T) {
	f := newFakeGL()
	r, _ := newTestRenderer(t, f)

	r.Begin(target{size: viewports.Vec2{X: 640, Y: 480}}, [4]float32{0.1, 0.2, 0.3, 1})
	assert.Equal(t, [4]int32{0, 0, 640, 480}, f.viewport)
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 1}, f.clearColor)
}

func TestRenderer_RenderEmpty(t *testing.T) {
	f := newFakeGL()
	r, _ := newTestRenderer(t, f)
	queries := f.queries

	require.NoError(t, r.Render(nil, target{}))
	require.NoError(t, r.Render(&viewports.DrawData{}, target{}))
	assert.Equal(t, queries, f.queries, "empty draw data touches no GL state")
	assert.Empty(t, f.draws)
}

func TestRenderer_Render(t *testing.T) {
	f := newFakeGL()
	r, logs := newTestRenderer(t, f)
	dirty(f)
	before := f.snapshot()

	win := target{size: viewports.Vec2{X: 800, Y: 600}}
	dd := quads(3, viewports.Vec4{X: 10, Y: 20, Z: 110, W: 220}, win.pos, win.size)
	require.NoError(t, r.Render(dd, win))

	require.Len(t, f.draws, 1)
	d := f.draws[0]
	assert.Equal(t, 18, d.count)
	assert.Equal(t, 0, d.offset)
	assert.Equal(t, 0, d.baseVertex)
	assert.Equal(t, uint32(9), d.texture)
	assert.Equal(t, [4]int32{10, 380, 100, 200}, d.scissor)

	assert.Equal(t, 3*4*viewports.DrawVertSize, f.uploads[ARRAY_BUFFER])
	assert.Equal(t, 3*6*viewports.DrawIdxSize, f.uploads[ELEMENT_ARRAY_BUFFER])
	assert.Equal(t, before, f.snapshot(), "state restored after render")
	assert.Empty(t, logs.String())
}

func TestRenderer_Projection(t *testing.T) {
	f := newFakeGL()
	r, _ := newTestRenderer(t, f)

	win := target{pos: viewports.Vec2{X: 100, Y: 50}, size: viewports.Vec2{X: 800, Y: 600}}
	require.NoError(t, r.Render(quads(1, viewports.Vec4{X: 100, Y: 50, Z: 900, W: 650}, win.pos, win.size), win))

	m := f.projection
	assert.InDelta(t, 2.0/800, m[0], 1e-6)
	assert.InDelta(t, -2.0/600, m[5], 1e-6)
	// Top-left of the window maps to (-1, 1).
	x := m[0]*100 + m[12]
	y := m[5]*50 + m[13]
	assert.InDelta(t, -1, x, 1e-5)
	assert.InDelta(t, 1, y, 1e-5)
}

func TestRenderer_GrowsBuffers(t *testing.T) {
	f := newFakeGL()
	r, logs := newTestRenderer(t, f)
	win := target{size: viewports.Vec2{X: 800, Y: 600}}

	require.NoError(t, r.Render(quads(2000, viewports.Vec4{Z: 800, W: 600}, win.pos, win.size), win))
	v, i := r.BufferCapacity()
	assert.GreaterOrEqual(t, v, 2000*4*viewports.DrawVertSize)
	assert.GreaterOrEqual(t, i, 2000*6*viewports.DrawIdxSize)
	assert.Empty(t, logs.String(), "uploads fit the grown buffers")

	require.NoError(t, r.Render(quads(1, viewports.Vec4{Z: 800, W: 600}, win.pos, win.size), win))
	v2, i2 := r.BufferCapacity()
	assert.Equal(t, v, v2, "buffers never shrink")
	assert.Equal(t, i, i2)
}

func TestRenderer_UserCallback(t *testing.T) {
	f := newFakeGL()
	r, _ := newTestRenderer(t, f)
	dirty(f)
	before := f.snapshot()

	dd := quads(1, viewports.Vec4{Z: 800, W: 600}, viewports.Vec2{}, viewports.Vec2{X: 800, Y: 600})
	dd.CmdLists[0].AddCallback(func(*viewports.DrawList, *viewports.DrawCmd) {})
	dd.CmdLists[0].Finalize()

	err := r.Render(dd, target{size: viewports.Vec2{X: 800, Y: 600}})
	require.ErrorIs(t, err, ErrUserCallback)
	assert.Len(t, f.draws, 1, "commands before the callback are drawn")
	assert.Equal(t, before, f.snapshot(), "state restored on error")
}

func TestRenderer_SkipsEmptyScissor(t *testing.T) {
	f := newFakeGL()
	r, _ := newTestRenderer(t, f)
	win := target{size: viewports.Vec2{X: 800, Y: 600}}

	require.NoError(t, r.Render(quads(1, viewports.Vec4{X: 50, Y: 50, Z: 50, W: 80}, win.pos, win.size), win))
	assert.Empty(t, f.draws)
}

func TestRenderer_WithoutVertexOffset(t *testing.T) {
	f := newFakeGL()
	r, _ := newTestRenderer(t, f, WithoutVertexOffset())
	assert.Zero(t, r.BackendFlags()&viewports.BackendFlagsRendererHasVtxOffset)

	// Two commands split by a texture change, built the way a producer
	// does for a renderer without vertex offsets.
	dl := &viewports.DrawList{}
	dl.Clear()
	dl.SetVtxOffsetEnabled(false)
	dl.SetTexture(1)
	dl.AddRect(0, 0, 1, 1, [2]float32{}, 0xFFFFFFFF)
	dl.SetTexture(2)
	dl.AddRect(1, 0, 1, 1, [2]float32{}, 0xFFFFFFFF)
	dl.Finalize()

	win := target{size: viewports.Vec2{X: 800, Y: 600}}
	dd := &viewports.DrawData{
		CmdLists:         []*viewports.DrawList{dl},
		DisplaySize:      win.size,
		FramebufferScale: viewports.Vec2{X: 1, Y: 1},
	}
	require.NoError(t, r.Render(dd, win))

	require.Len(t, f.draws, 2)
	for _, d := range f.draws {
		assert.Equal(t, -1, d.baseVertex)
	}
	second := f.draws[1]
	assert.Equal(t, uint32(2), second.texture)
	assert.Equal(t, 6*viewports.DrawIdxSize, second.offset)
	first := dl.IdxBuffer[second.offset/viewports.DrawIdxSize]
	assert.Equal(t, viewports.DrawIdx(4), first, "second quad indexes its own vertices")
}

func TestScissorRect(t *testing.T) {
	tests := []struct {
		name      string
		clip      viewports.Vec4
		pos, size viewports.Vec2
		want      [4]int32
	}{
		{
			name: "origin",
			clip: viewports.Vec4{X: 10, Y: 20, Z: 110, W: 220},
			size: viewports.Vec2{X: 800, Y: 600},
			want: [4]int32{10, 380, 100, 200},
		},
		{
			name: "offset window",
			clip: viewports.Vec4{X: 110, Y: 70, Z: 210, W: 170},
			pos:  viewports.Vec2{X: 100, Y: 50},
			size: viewports.Vec2{X: 800, Y: 600},
			want: [4]int32{10, 480, 100, 100},
		},
		{
			name: "inverted",
			clip: viewports.Vec4{X: 10, Y: 10, Z: 5, W: 5},
			size: viewports.Vec2{X: 100, Y: 100},
			want: [4]int32{10, 95, -5, -5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := scissorRect(tt.clip, tt.pos, tt.size)
			assert.Equal(t, tt.want, [4]int32{x, y, w, h})
		})
	}
}
