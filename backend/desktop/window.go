package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/viewports"
)

// Window is a GLFW window with its own GL context. Input arrives through
// GLFW callbacks during ProcessEvents and is kept in an InputState.
type Window struct {
	win    *glfw.Window
	input  *viewports.InputState
	events viewports.WindowEvents
}

var _ viewports.NativeWindow = (*Window)(nil)

// Wrap takes over the callbacks of an existing GLFW window, typically the
// application's main window.
func Wrap(win *glfw.Window) *Window {
	w := &Window{
		win:   win,
		input: viewports.NewInputState(),
	}
	win.SetKeyCallback(w.keyCallback)
	win.SetCharCallback(w.charCallback)
	win.SetMouseButtonCallback(w.mouseButtonCallback)
	win.SetScrollCallback(w.scrollCallback)
	win.SetCursorPosCallback(w.cursorPosCallback)
	win.SetSizeCallback(w.sizeCallback)
	win.SetPosCallback(w.posCallback)
	win.SetCloseCallback(w.closeCallback)
	win.SetFocusCallback(w.focusCallback)
	return w
}

// GLFW returns the underlying window.
func (w *Window) GLFW() *glfw.Window { return w.win }

// ShouldClose reports whether the user or RequestClose asked the window to
// close.
func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }

func (w *Window) Pos() viewports.Vec2 {
	x, y := w.win.GetPos()
	return viewports.Vec2{X: float32(x), Y: float32(y)}
}

func (w *Window) SetPos(pos viewports.Vec2) { w.win.SetPos(int(pos.X), int(pos.Y)) }

func (w *Window) Size() viewports.Vec2 {
	width, height := w.win.GetSize()
	return viewports.Vec2{X: float32(width), Y: float32(height)}
}

func (w *Window) SetSize(size viewports.Vec2) { w.win.SetSize(int(size.X), int(size.Y)) }

func (w *Window) FramebufferSize() viewports.Vec2 {
	width, height := w.win.GetFramebufferSize()
	return viewports.Vec2{X: float32(width), Y: float32(height)}
}

func (w *Window) SetTitle(title string) { w.win.SetTitle(title) }

func (w *Window) Show()           { w.win.Show() }
func (w *Window) Visible() bool   { return w.win.GetAttrib(glfw.Visible) == glfw.True }
func (w *Window) Focus()          { w.win.Focus() }
func (w *Window) Focused() bool   { return w.win.GetAttrib(glfw.Focused) == glfw.True }
func (w *Window) Minimized() bool { return w.win.GetAttrib(glfw.Iconified) == glfw.True }

func (w *Window) ClipboardText() string        { return w.win.GetClipboardString() }
func (w *Window) SetClipboardText(text string) { w.win.SetClipboardString(text) }

func (w *Window) Input() *viewports.InputState { return w.input }

func (w *Window) SetEventHandlers(ev viewports.WindowEvents) { w.events = ev }

// ProcessEvents polls GLFW. Events for every window are dispatched, not
// only this one's.
func (w *Window) ProcessEvents() { glfw.PollEvents() }

func (w *Window) MakeContextCurrent() { w.win.MakeContextCurrent() }
func (w *Window) SwapBuffers()        { w.win.SwapBuffers() }

func (w *Window) RequestClose() { w.win.SetShouldClose(true) }

// Destroy drops every callback and destroys the GLFW window.
func (w *Window) Destroy() {
	w.events = viewports.WindowEvents{}
	w.win.SetKeyCallback(nil)
	w.win.SetCharCallback(nil)
	w.win.SetMouseButtonCallback(nil)
	w.win.SetScrollCallback(nil)
	w.win.SetCursorPosCallback(nil)
	w.win.SetSizeCallback(nil)
	w.win.SetPosCallback(nil)
	w.win.SetCloseCallback(nil)
	w.win.SetFocusCallback(nil)
	w.win.Destroy()
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k := translateKey(key)
	if k == viewports.KeyNone {
		return
	}
	switch action {
	case glfw.Press, glfw.Repeat:
		w.input.SetKey(k, true)
	case glfw.Release:
		w.input.SetKey(k, false)
	}
}

func (w *Window) charCallback(_ *glfw.Window, char rune) {
	if w.events.OnChar != nil {
		w.events.OnChar(char)
	}
}

func (w *Window) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b, ok := translateMouseButton(button)
	if !ok {
		return
	}
	switch action {
	case glfw.Press:
		w.input.SetMouseButton(b, true)
	case glfw.Release:
		w.input.SetMouseButton(b, false)
	}
}

func (w *Window) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	if w.events.OnScroll != nil {
		w.events.OnScroll(xoff, yoff)
	}
}

func (w *Window) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	w.input.SetMousePos(float32(xpos), float32(ypos))
}

func (w *Window) sizeCallback(_ *glfw.Window, width, height int) {
	if w.events.OnResize != nil {
		w.events.OnResize(width, height)
	}
}

func (w *Window) posCallback(_ *glfw.Window, x, y int) {
	if w.events.OnMove != nil {
		w.events.OnMove(x, y)
	}
}

func (w *Window) closeCallback(_ *glfw.Window) {
	if w.events.OnClose != nil {
		w.events.OnClose()
	}
}

func (w *Window) focusCallback(_ *glfw.Window, focused bool) {
	if !focused {
		w.input.ReleaseKeys()
	}
}
