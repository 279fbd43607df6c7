// Package scriptgui is a small GUI library that keeps its viewport list and
// draw output under program control. Viewports are added and removed with
// RequestViewport and RemoveViewport, and each frame draws through a
// DrawFunc. It implements viewports.Context for the example and tests.
package scriptgui

import (
	"slices"

	"github.com/go-theft-auto/viewports"
)

// DrawFunc fills the draw list of one viewport for the current frame.
type DrawFunc func(vp *viewports.Viewport, dl *viewports.DrawList)

// Option configures a Context.
type Option func(*Context)

// WithDrawFunc sets the per-viewport draw callback.
func WithDrawFunc(fn DrawFunc) Option {
	return func(c *Context) { c.draw = fn }
}

// WithFontAtlas replaces the default 7x13 atlas.
func WithFontAtlas(atlas viewports.FontAtlas) Option {
	return func(c *Context) { c.atlas = atlas }
}

// WithMainSize sets the initial size of the main viewport.
func WithMainSize(w, h float32) Option {
	return func(c *Context) { c.viewports[0].Size = viewports.Vec2{X: w, Y: h} }
}

// Context is a viewports.Context. It is not safe for concurrent use.
type Context struct {
	io        viewports.IO
	viewports []*viewports.Viewport
	removed   []*viewports.Viewport
	nextID    viewports.ViewportID

	platform  viewports.PlatformIO
	clipboard viewports.ClipboardProvider
	monitors  []viewports.Monitor
	atlas     viewports.FontAtlas
	draw      DrawFunc

	lists []*viewports.DrawList

	// FrameCount is the number of NewFrame calls so far.
	FrameCount int
	// LastKeyEvents and LastChars hold the input consumed by the latest
	// NewFrame.
	LastKeyEvents []viewports.KeyEvent
	LastChars     []rune
}

var _ viewports.Context = (*Context)(nil)

// MainViewportID is the ID of the viewport at index 0.
const MainViewportID viewports.ViewportID = 1

// New creates a context holding only the main viewport.
func New(opts ...Option) *Context {
	c := &Context{
		viewports: []*viewports.Viewport{{ID: MainViewportID}},
		nextID:    MainViewportID + 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.atlas == nil {
		c.atlas = viewports.NewDefaultFontAtlas()
	}
	return c
}

func (c *Context) IO() *viewports.IO                  { return &c.io }
func (c *Context) Viewports() []*viewports.Viewport   { return c.viewports }
func (c *Context) FontAtlas() viewports.FontAtlas     { return c.atlas }
func (c *Context) SetMonitors(ms []viewports.Monitor) { c.monitors = append(c.monitors[:0], ms...) }

// Monitors returns the monitors last set by the platform.
func (c *Context) Monitors() []viewports.Monitor { return c.monitors }

// SetPlatform implements viewports.Context. Nil values detach the platform.
func (c *Context) SetPlatform(platform viewports.PlatformIO, clipboard viewports.ClipboardProvider) {
	c.platform = platform
	c.clipboard = clipboard
}

// Clipboard returns the clipboard provider set by the platform, or nil.
func (c *Context) Clipboard() viewports.ClipboardProvider { return c.clipboard }

// SetDrawFunc replaces the per-viewport draw callback.
func (c *Context) SetDrawFunc(fn DrawFunc) { c.draw = fn }

// MainViewport returns the viewport at index 0.
func (c *Context) MainViewport() *viewports.Viewport { return c.viewports[0] }

// RequestViewport adds a secondary viewport. Its native window is created by
// the next UpdatePlatformWindows.
func (c *Context) RequestViewport(pos, size viewports.Vec2, flags viewports.ViewportFlags) *viewports.Viewport {
	vp := &viewports.Viewport{ID: c.nextID, Pos: pos, Size: size, Flags: flags}
	c.nextID++
	c.viewports = append(c.viewports, vp)
	return vp
}

// RemoveViewport drops a secondary viewport. Its native window is destroyed
// by the next UpdatePlatformWindows. The main viewport cannot be removed.
func (c *Context) RemoveViewport(vp *viewports.Viewport) {
	i := slices.Index(c.viewports, vp)
	if i <= 0 {
		return
	}
	c.viewports = slices.Delete(c.viewports, i, i+1)
	c.removed = append(c.removed, vp)
}

// UpdatePlatformWindows reconciles native windows with the viewport list:
// removed and user-closed viewports lose their window, new ones get one and
// are shown, and move/resize requests refresh the viewport geometry.
func (c *Context) UpdatePlatformWindows() {
	if c.platform == nil {
		return
	}
	for i := len(c.viewports) - 1; i > 0; i-- {
		if vp := c.viewports[i]; vp.PlatformRequestClose {
			c.RemoveViewport(vp)
		}
	}
	for _, vp := range c.removed {
		c.platform.DestroyWindow(vp)
	}
	c.removed = c.removed[:0]

	for _, vp := range c.viewports[1:] {
		if vp.PlatformHandle.IsZero() {
			c.platform.CreateWindow(vp)
			if vp.PlatformHandle.IsZero() {
				continue
			}
			c.platform.ShowWindow(vp)
		}
		if vp.PlatformRequestMove {
			vp.Pos = c.platform.WindowPos(vp)
			vp.PlatformRequestMove = false
		}
		if vp.PlatformRequestResize {
			vp.Size = c.platform.WindowSize(vp)
			vp.PlatformRequestResize = false
		}
	}
}

// NewFrame consumes the queued key events and characters.
func (c *Context) NewFrame() {
	c.FrameCount++
	c.LastKeyEvents = append(c.LastKeyEvents[:0], c.io.KeyEvents()...)
	c.LastChars = append(c.LastChars[:0], c.io.InputCharacters()...)
	c.io.ClearInputEvents()
}

// Render builds DrawData for every viewport. Draw lists from the previous
// frame go back to the pool first.
func (c *Context) Render() {
	for _, dl := range c.lists {
		viewports.ReleaseDrawList(dl)
	}
	c.lists = c.lists[:0]

	for _, vp := range c.viewports {
		dl := viewports.AcquireDrawList()
		dl.SetVtxOffsetEnabled(c.io.BackendFlags&viewports.BackendFlagsRendererHasVtxOffset != 0)
		dl.SetTexture(c.atlas.TexID())
		dl.PushClipRect(vp.Pos.X, vp.Pos.Y, vp.Pos.X+vp.Size.X, vp.Pos.Y+vp.Size.Y)
		if c.draw != nil {
			c.draw(vp, dl)
		}
		dl.Finalize()
		c.lists = append(c.lists, dl)

		vp.DrawData = &viewports.DrawData{
			CmdLists:         []*viewports.DrawList{dl},
			DisplayPos:       vp.Pos,
			DisplaySize:      vp.Size,
			FramebufferScale: c.io.FramebufferScale,
		}
	}
}
