// Package fakewin provides in-memory implementations of the windowing and
// renderer interfaces for tests. A System tracks which Window's context is
// current, so tests can check where GL work would have happened.
package fakewin

import (
	"errors"

	"github.com/go-theft-auto/viewports"
)

// ErrCreate is returned by CreateWindow after FailNext was set.
var ErrCreate = errors.New("fakewin: window creation failed")

// Window is an in-memory native window.
type Window struct {
	sys *System

	// Config is the configuration the window was created with.
	Config viewports.WindowConfig
	// Events holds the current subscriptions; tests call them to simulate
	// OS notifications.
	Events viewports.WindowEvents

	Iconified      bool
	Swaps          int
	Polls          int
	CloseRequested bool
	Destroyed      bool

	pos, size viewports.Vec2
	title     string
	visible   bool
	focused   bool
	input     *viewports.InputState
}

var _ viewports.NativeWindow = (*Window)(nil)

func (w *Window) Pos() viewports.Vec2                        { return w.pos }
func (w *Window) SetPos(pos viewports.Vec2)                  { w.pos = pos }
func (w *Window) Size() viewports.Vec2                       { return w.size }
func (w *Window) SetSize(size viewports.Vec2)                { w.size = size }
func (w *Window) FramebufferSize() viewports.Vec2            { return w.size }
func (w *Window) Title() string                              { return w.title }
func (w *Window) SetTitle(title string)                      { w.title = title }
func (w *Window) Show()                                      { w.visible = true }
func (w *Window) Visible() bool                              { return w.visible }
func (w *Window) Focus()                                     { w.focused = true }
func (w *Window) Focused() bool                              { return w.focused }
func (w *Window) Minimized() bool                            { return w.Iconified }
func (w *Window) ClipboardText() string                      { return w.sys.Clipboard }
func (w *Window) Input() *viewports.InputState               { return w.input }
func (w *Window) SetEventHandlers(ev viewports.WindowEvents) { w.Events = ev }
func (w *Window) ProcessEvents()                             { w.Polls++ }
func (w *Window) MakeContextCurrent()                        { w.sys.Current = w }
func (w *Window) SwapBuffers()                               { w.Swaps++ }
func (w *Window) RequestClose()                              { w.CloseRequested = true }

func (w *Window) SetClipboardText(text string) {
	w.sys.Clipboard = text
	w.sys.ClipboardWriter = w
}

func (w *Window) Destroy() {
	w.Destroyed = true
	if w.sys.Current == w {
		w.sys.Current = nil
	}
}

// System creates Windows on a single 1920x1080 display.
type System struct {
	Displays []viewports.Monitor
	Created  []*Window
	Current  *Window
	// FailNext makes the next CreateWindow return ErrCreate.
	FailNext bool

	Clipboard       string
	ClipboardWriter *Window
}

var _ viewports.WindowSystem = (*System)(nil)

// NewSystem returns a System with one monitor at the origin.
func NewSystem() *System {
	return &System{
		Displays: []viewports.Monitor{{
			MainSize: viewports.Vec2{X: 1920, Y: 1080},
			WorkSize: viewports.Vec2{X: 1920, Y: 1040},
			DpiScale: 1,
		}},
	}
}

// NewWindow makes a window without recording it in Created, as an
// application does for its main window.
func (s *System) NewWindow(pos, size viewports.Vec2) *Window {
	return &Window{sys: s, pos: pos, size: size, input: viewports.NewInputState()}
}

func (s *System) CreateWindow(cfg viewports.WindowConfig) (viewports.NativeWindow, error) {
	if s.FailNext {
		s.FailNext = false
		return nil, ErrCreate
	}
	w := s.NewWindow(cfg.Pos, cfg.Size)
	w.Config = cfg
	w.title = cfg.Title
	w.visible = cfg.Visible
	s.Created = append(s.Created, w)
	return w, nil
}

func (s *System) Monitors() []viewports.Monitor { return s.Displays }

func (s *System) MonitorOf(w viewports.NativeWindow) viewports.Monitor {
	r := viewports.RectOf(w.Pos(), w.Size())
	m, _ := viewports.MonitorAt(s.Displays, r.Center())
	return m
}

// Renderer records what it was asked to draw and where.
type Renderer struct {
	sys    *System
	Parent *Renderer
	// Context is the window current when the renderer was created.
	Context *Window

	Children []*Renderer
	Begins   int
	Rendered []*viewports.DrawData
	Targets  []viewports.Target
	Disposed int
	// DisposedOn is the window current at the last Dispose.
	DisposedOn *Window

	RenderErr error
	SharedErr error
}

var _ viewports.Renderer = (*Renderer)(nil)

// NewRenderer returns a main renderer bound to the current window.
func NewRenderer(sys *System) *Renderer {
	return &Renderer{sys: sys, Context: sys.Current}
}

func (r *Renderer) Begin(viewports.Target, [4]float32) { r.Begins++ }

func (r *Renderer) Render(dd *viewports.DrawData, target viewports.Target) error {
	if r.RenderErr != nil {
		return r.RenderErr
	}
	r.Rendered = append(r.Rendered, dd)
	r.Targets = append(r.Targets, target)
	return nil
}

func (r *Renderer) NewShared() (viewports.Renderer, error) {
	if r.SharedErr != nil {
		return nil, r.SharedErr
	}
	child := &Renderer{sys: r.sys, Parent: r, Context: r.sys.Current}
	r.Children = append(r.Children, child)
	return child, nil
}

func (r *Renderer) BackendFlags() viewports.BackendFlags {
	return viewports.BackendFlagsRendererHasVtxOffset | viewports.BackendFlagsRendererHasViewports
}

func (r *Renderer) Dispose() {
	r.Disposed++
	r.DisposedOn = r.sys.Current
}
