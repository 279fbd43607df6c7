package viewports

import (
	"fmt"
	"log/slog"
)

// WindowsManager is the bridge between the GUI library's viewports and the
// native windows backing them. The GUI library drives it through PlatformIO
// from inside Context.UpdatePlatformWindows.
//
// Every secondary window is reached through a WindowHandle stored in its
// viewport. The main viewport is bound to the application's main window and
// is never created or destroyed here.
type WindowsManager struct {
	ctx      Context
	sys      WindowSystem
	main     Window
	renderer Renderer
	cfg      config
	log      *slog.Logger

	handles handleTable

	onChar   func(r rune)
	onScroll func(xoff, yoff float64)
}

var (
	_ PlatformIO        = (*WindowsManager)(nil)
	_ ClipboardProvider = (*WindowsManager)(nil)
)

// NewWindowsManager creates a bridge for ctx. renderer is the main window's
// renderer; secondary renderers are derived from it with NewShared.
func NewWindowsManager(ctx Context, sys WindowSystem, main Window, renderer Renderer, opts ...Option) *WindowsManager {
	return newWindowsManager(ctx, sys, main, renderer, newConfig(opts))
}

func newWindowsManager(ctx Context, sys WindowSystem, main Window, renderer Renderer, cfg config) *WindowsManager {
	return &WindowsManager{
		ctx:      ctx,
		sys:      sys,
		main:     main,
		renderer: renderer,
		cfg:      cfg,
		log:      cfg.logger,
	}
}

func (m *WindowsManager) isMain(vp *Viewport) bool {
	vps := m.ctx.Viewports()
	return len(vps) > 0 && vps[0] == vp
}

// Len returns the number of live secondary windows.
func (m *WindowsManager) Len() int { return m.handles.len() }

// Window returns the window bound to vp: the main window for the main
// viewport, nil when vp has no live window.
func (m *WindowsManager) Window(vp *Viewport) Window {
	if vp == nil {
		return nil
	}
	if m.isMain(vp) {
		return m.main
	}
	if win, _, ok := m.handles.get(vp.PlatformHandle); ok {
		return win
	}
	return nil
}

// Viewport returns the viewport a handle is bound to.
func (m *WindowsManager) Viewport(h WindowHandle) (*Viewport, bool) {
	_, vp, ok := m.handles.get(h)
	return vp, ok
}

// rendererOf returns the renderer drawing into vp's window.
func (m *WindowsManager) rendererOf(vp *Viewport) Renderer {
	if m.isMain(vp) {
		return m.renderer
	}
	if win, _, ok := m.handles.get(vp.PlatformHandle); ok {
		return win.renderer
	}
	return nil
}

// native resolves vp to a native window, falling back to the main window
// when vp has none.
func (m *WindowsManager) native(vp *Viewport) NativeWindow {
	if vp != nil {
		if win, _, ok := m.handles.get(vp.PlatformHandle); ok {
			return win.native
		}
	}
	return m.main.Native()
}

// CreateWindow implements PlatformIO.
func (m *WindowsManager) CreateWindow(vp *Viewport) {
	if m.isMain(vp) {
		m.log.Debug("ignoring create for main viewport")
		return
	}
	if _, _, ok := m.handles.get(vp.PlatformHandle); ok {
		return
	}
	if m.cfg.maxWindows > 0 && m.handles.len() >= m.cfg.maxWindows {
		m.log.Warn("window limit reached, closing main window", "limit", m.cfg.maxWindows, "viewport", vp.ID)
		m.main.Native().RequestClose()
		return
	}

	native, err := m.sys.CreateWindow(WindowConfig{
		Share:       m.main.Native(),
		Title:       fmt.Sprintf("Viewport %d", vp.ID),
		Pos:         vp.Pos,
		Size:        vp.Size,
		Decorated:   vp.Flags&ViewportFlagsNoDecoration == 0,
		Floating:    vp.Flags&ViewportFlagsTopMost != 0,
		FocusOnShow: vp.Flags&ViewportFlagsNoFocusOnAppearing == 0,
		GLVersion:   m.cfg.glVersion,
	})
	if err != nil {
		m.log.Error("create viewport window", "viewport", vp.ID, "err", err)
		return
	}

	native.MakeContextCurrent()
	renderer, err := m.renderer.NewShared()
	if err != nil {
		m.log.Error("create viewport renderer", "viewport", vp.ID, "err", err)
		native.Destroy()
		m.main.MakeContextCurrent()
		return
	}

	win := &viewportWindow{native: native, renderer: renderer, clear: m.cfg.clearColor}
	win.handle = m.handles.insert(win, vp)
	vp.PlatformHandle = win.handle
	native.SetEventHandlers(m.windowEvents(win.handle))
	// The viewport was spawned by dragging with the left button held in
	// another window; this one never saw the press.
	native.Input().SetSyntheticMouseDown(MouseButtonLeft, true)
	m.main.MakeContextCurrent()

	m.log.Debug("viewport window created", "viewport", vp.ID, "pos", vp.Pos, "size", vp.Size)
	if m.cfg.onWindowCreated != nil {
		m.cfg.onWindowCreated(vp, win)
	}
}

// windowEvents routes native events of the window named h. Request flags
// are set through the handle so events arriving after destroy do nothing.
func (m *WindowsManager) windowEvents(h WindowHandle) WindowEvents {
	request := func(set func(vp *Viewport)) {
		if _, vp, ok := m.handles.get(h); ok {
			set(vp)
		}
	}
	return WindowEvents{
		OnResize: func(int, int) { request(func(vp *Viewport) { vp.PlatformRequestResize = true }) },
		OnMove:   func(int, int) { request(func(vp *Viewport) { vp.PlatformRequestMove = true }) },
		OnClose:  func() { request(func(vp *Viewport) { vp.PlatformRequestClose = true }) },
		OnChar: func(r rune) {
			if m.onChar != nil {
				m.onChar(r)
			}
		},
		OnScroll: func(x, y float64) {
			if m.onScroll != nil {
				m.onScroll(x, y)
			}
		},
	}
}

// DestroyWindow implements PlatformIO. The viewport is unbound before its
// window is disposed; destroying an unbound viewport is a no-op.
func (m *WindowsManager) DestroyWindow(vp *Viewport) {
	if m.isMain(vp) {
		m.log.Debug("ignoring destroy for main viewport")
		return
	}
	h := vp.PlatformHandle
	vp.PlatformHandle = WindowHandle{}
	win, ok := m.handles.remove(h)
	if !ok {
		return
	}
	m.dispose(win, vp)
}

func (m *WindowsManager) dispose(win *viewportWindow, vp *Viewport) {
	win.native.SetEventHandlers(WindowEvents{})
	win.native.MakeContextCurrent()
	win.renderer.Dispose()
	win.native.RequestClose()
	win.native.Destroy()
	m.main.MakeContextCurrent()

	m.log.Debug("viewport window destroyed", "viewport", vp.ID)
	if m.cfg.onWindowDestroy != nil {
		m.cfg.onWindowDestroy(vp)
	}
}

// ShowWindow implements PlatformIO.
func (m *WindowsManager) ShowWindow(vp *Viewport) { m.native(vp).Show() }

// SetWindowPos implements PlatformIO.
func (m *WindowsManager) SetWindowPos(vp *Viewport, pos Vec2) { m.native(vp).SetPos(pos) }

// WindowPos implements PlatformIO.
func (m *WindowsManager) WindowPos(vp *Viewport) Vec2 { return m.native(vp).Pos() }

// SetWindowSize implements PlatformIO.
func (m *WindowsManager) SetWindowSize(vp *Viewport, size Vec2) { m.native(vp).SetSize(size) }

// WindowSize implements PlatformIO.
func (m *WindowsManager) WindowSize(vp *Viewport) Vec2 { return m.native(vp).Size() }

// SetWindowFocus implements PlatformIO.
func (m *WindowsManager) SetWindowFocus(vp *Viewport) { m.native(vp).Focus() }

// WindowFocus implements PlatformIO.
func (m *WindowsManager) WindowFocus(vp *Viewport) bool { return m.native(vp).Focused() }

// WindowMinimized implements PlatformIO.
func (m *WindowsManager) WindowMinimized(vp *Viewport) bool { return m.native(vp).Minimized() }

// SetWindowTitle implements PlatformIO.
func (m *WindowsManager) SetWindowTitle(vp *Viewport, title string) { m.native(vp).SetTitle(title) }

// Dispose destroys every remaining secondary window.
func (m *WindowsManager) Dispose() {
	for _, h := range m.handles.handles() {
		vp, ok := m.Viewport(h)
		if !ok {
			continue
		}
		m.DestroyWindow(vp)
	}
}
