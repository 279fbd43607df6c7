// Package opengl renders viewport draw data with OpenGL 3.3 core.
//
// All GL calls go through the Functions interface; backend/opengl/gogl
// provides the go-gl implementation.
package opengl

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/viewports"
)

// ErrUserCallback is returned when a draw command carries a user callback,
// which this renderer does not execute.
var ErrUserCallback = errors.New("opengl: draw command user callbacks are not supported")

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger GL errors are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.log = l
		}
	}
}

// WithoutVertexOffset draws with plain DrawElements and stops advertising
// BackendFlagsRendererHasVtxOffset.
func WithoutVertexOffset() Option {
	return func(r *Renderer) { r.flags &^= viewports.BackendFlagsRendererHasVtxOffset }
}

// Renderer draws DrawData into the window whose context is current. The
// main renderer owns the font texture and shader program; renderers made
// with NewShared borrow them and own only their vertex array and buffers.
type Renderer struct {
	f       Functions
	log     *slog.Logger
	profile Profile
	flags   viewports.BackendFlags

	res    *resourceSet
	shared *sharedResources
	main   bool

	disposed bool
}

var _ viewports.Renderer = (*Renderer)(nil)

// NewRenderer creates the main renderer on the current context and uploads
// atlas as the font texture.
func NewRenderer(f Functions, atlas viewports.FontAtlas, opts ...Option) (*Renderer, error) {
	r := &Renderer{
		f:     f,
		log:   slog.Default(),
		flags: viewports.BackendFlagsRendererHasVtxOffset | viewports.BackendFlagsRendererHasViewports,
		main:  true,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.profile = QueryProfile(f)
	r.res = newResourceSet(f)

	shared, err := createSharedResources(f, atlas)
	if err != nil {
		r.res.dispose()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	r.shared = shared
	checkError(f, r.log, "renderer setup")
	return r, nil
}

// NewShared creates a renderer for the current context that borrows the
// font texture and program of r.
func (r *Renderer) NewShared() (viewports.Renderer, error) {
	s := &Renderer{
		f:       r.f,
		log:     r.log,
		flags:   r.flags,
		profile: QueryProfile(r.f),
		shared:  r.shared,
	}
	s.res = newResourceSet(r.f)
	checkError(r.f, r.log, "shared renderer setup")
	return s, nil
}

// BackendFlags implements viewports.Renderer.
func (r *Renderer) BackendFlags() viewports.BackendFlags { return r.flags }

// FontTexture returns the GL name of the shared font texture.
func (r *Renderer) FontTexture() uint32 { return r.shared.fontTexture }

// Program returns the GL name of the shared shader program.
func (r *Renderer) Program() uint32 { return r.shared.program }

// VertexArray returns the GL name of this renderer's vertex array.
func (r *Renderer) VertexArray() uint32 { return r.res.vertexArray }

// BufferCapacity returns the vertex and index buffer sizes in bytes.
func (r *Renderer) BufferCapacity() (vertexBytes, indexBytes int) {
	return r.res.vertexCap, r.res.indexCap
}

// Begin implements viewports.Renderer.
func (r *Renderer) Begin(target viewports.Target, clear [4]float32) {
	fb := target.FramebufferSize()
	r.f.Viewport(0, 0, int32(fb.X), int32(fb.Y))
	r.f.ClearColor(clear[0], clear[1], clear[2], clear[3])
	r.f.Clear(COLOR_BUFFER_BIT | DEPTH_BUFFER_BIT | STENCIL_BUFFER_BIT)
}

// Render implements viewports.Renderer. GL state touched here is restored
// before returning, on success and on error.
func (r *Renderer) Render(dd *viewports.DrawData, target viewports.Target) error {
	if dd.Empty() {
		return nil
	}
	f := r.f

	guard := SaveState(f, r.profile)
	defer guard.Restore()

	vtxBytes, idxBytes := 0, 0
	for _, l := range dd.CmdLists {
		vtxBytes = max(vtxBytes, len(l.VtxBuffer)*viewports.DrawVertSize)
		idxBytes = max(idxBytes, len(l.IdxBuffer)*viewports.DrawIdxSize)
	}
	r.res.resize(vtxBytes, idxBytes)

	pos, size := target.Pos(), target.Size()

	scale := dd.FramebufferScale
	if scale.X == 0 || scale.Y == 0 {
		scale = viewports.Vec2{X: 1, Y: 1}
	}
	dd.ScaleClipRects(scale)

	f.Enable(BLEND)
	f.Enable(SCISSOR_TEST)
	f.BlendEquation(FUNC_ADD)
	f.BlendFunc(SRC_ALPHA, ONE_MINUS_SRC_ALPHA)
	f.Disable(CULL_FACE)
	f.Disable(DEPTH_TEST)

	r.setupProjection(pos, dd.DisplaySize)

	for i, l := range dd.CmdLists {
		if err := r.renderList(i, l, pos, size); err != nil {
			return err
		}
	}

	f.Disable(BLEND)
	f.Disable(SCISSOR_TEST)
	return nil
}

// setupProjection maps the window's client area in screen coordinates to
// clip space, with y pointing down.
func (r *Renderer) setupProjection(pos, display viewports.Vec2) {
	proj := [16]float32(mgl32.Ortho(pos.X, pos.X+display.X, pos.Y+display.Y, pos.Y, -1, 1))
	r.f.UseProgram(r.shared.program)
	r.f.UniformMatrix4fv(r.shared.projLoc, &proj)
	r.f.Uniform1i(r.shared.fontLoc, 0)
	checkError(r.f, r.log, "projection")
}

func (r *Renderer) renderList(index int, l *viewports.DrawList, pos, size viewports.Vec2) error {
	f := r.f
	f.BufferSubData(ARRAY_BUFFER, 0, l.VertexBytes())
	checkError(f, r.log, fmt.Sprintf("vertex upload %d", index))
	f.BufferSubData(ELEMENT_ARRAY_BUFFER, 0, l.IndexBytes())
	checkError(f, r.log, fmt.Sprintf("index upload %d", index))

	for _, cmd := range l.CmdBuffer {
		if cmd.UserCallback != nil {
			return fmt.Errorf("command list %d: %w", index, ErrUserCallback)
		}
		if cmd.ElemCount == 0 {
			continue
		}
		x, y, w, h := scissorRect(cmd.ClipRect, pos, size)
		if w <= 0 || h <= 0 {
			continue
		}

		f.ActiveTexture(TEXTURE0)
		f.BindTexture(TEXTURE_2D, cmd.TextureID)
		f.Scissor(x, y, w, h)

		offset := int(cmd.IdxOffset) * viewports.DrawIdxSize
		if r.flags&viewports.BackendFlagsRendererHasVtxOffset != 0 {
			f.DrawElementsBaseVertex(TRIANGLES, int(cmd.ElemCount), UNSIGNED_SHORT, offset, int(cmd.VtxOffset))
		} else {
			f.DrawElements(TRIANGLES, int(cmd.ElemCount), UNSIGNED_SHORT, offset)
		}
		checkError(f, r.log, "draw")
	}
	return nil
}

// scissorRect converts a clip rectangle in screen coordinates into a GL
// scissor box relative to the window's bottom-left corner.
func scissorRect(clip viewports.Vec4, pos, size viewports.Vec2) (x, y, w, h int32) {
	bottom := int32(pos.Y) + int32(size.Y)
	x = int32(clip.X) - int32(pos.X)
	y = bottom - int32(clip.W)
	w = int32(clip.Z - clip.X)
	h = int32(clip.W - clip.Y)
	return x, y, w, h
}

// Dispose implements viewports.Renderer. The main renderer also deletes the
// shared font texture and program, so it must be disposed last.
func (r *Renderer) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	r.res.dispose()
	if r.main {
		r.shared.dispose(r.f)
	}
}
