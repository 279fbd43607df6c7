package viewports

// WindowEvents are the native window notifications the bridge and the
// Controller subscribe to. Nil fields are ignored.
type WindowEvents struct {
	OnResize func(width, height int)
	OnMove   func(x, y int)
	OnClose  func()
	OnChar   func(r rune)
	OnScroll func(xoff, yoff float64)
}

// NativeWindow is the windowing layer's view of one OS window with its own
// OpenGL context. Positions and sizes are client-area values in screen
// coordinates.
type NativeWindow interface {
	Pos() Vec2
	SetPos(pos Vec2)
	Size() Vec2
	SetSize(size Vec2)
	FramebufferSize() Vec2
	SetTitle(title string)

	Show()
	Visible() bool
	Focus()
	Focused() bool
	Minimized() bool

	ClipboardText() string
	SetClipboardText(text string)

	// Input returns the window's live input state.
	Input() *InputState
	// SetEventHandlers replaces every event subscription of the window.
	SetEventHandlers(ev WindowEvents)
	// ProcessEvents dispatches pending OS events.
	ProcessEvents()

	MakeContextCurrent()
	SwapBuffers()

	// RequestClose marks the window as closing; Destroy releases it.
	RequestClose()
	Destroy()
}

// WindowConfig describes a native window to create.
type WindowConfig struct {
	// Share is the window whose GL context the new context shares objects
	// with. Nil creates an unshared context.
	Share NativeWindow

	Title       string
	Pos         Vec2
	Size        Vec2
	Decorated   bool
	Visible     bool
	Floating    bool
	FocusOnShow bool

	// GLVersion is the requested core profile version, e.g. {3, 3}.
	GLVersion [2]int
}

// WindowSystem creates native windows and reports the attached displays.
type WindowSystem interface {
	CreateWindow(cfg WindowConfig) (NativeWindow, error)
	Monitors() []Monitor
	// MonitorOf returns the monitor the window mostly lies on.
	MonitorOf(w NativeWindow) Monitor
}

// Window is the capability set the Controller drives once per frame for
// every tracked window, main or secondary.
type Window interface {
	Native() NativeWindow
	OnUpdate(dt float32)
	OnDraw(dt float32)
	OnRender(dt float32)
	MakeContextCurrent()
	SwapBuffers()
}

// WindowHooks are the application callbacks of the main window.
type WindowHooks struct {
	Update func(dt float32)
	Draw   func(dt float32)
	Render func(dt float32)
}

type mainWindow struct {
	native NativeWindow
	hooks  WindowHooks
}

// WrapWindow turns an application-owned native window into the main Window.
// Its OnUpdate processes the window's events before calling hooks.Update.
func WrapWindow(native NativeWindow, hooks WindowHooks) Window {
	return &mainWindow{native: native, hooks: hooks}
}

func (w *mainWindow) Native() NativeWindow { return w.native }

func (w *mainWindow) OnUpdate(dt float32) {
	w.native.ProcessEvents()
	if w.hooks.Update != nil {
		w.hooks.Update(dt)
	}
}

func (w *mainWindow) OnDraw(dt float32) {
	if w.hooks.Draw != nil {
		w.hooks.Draw(dt)
	}
}

func (w *mainWindow) OnRender(dt float32) {
	if w.hooks.Render != nil {
		w.hooks.Render(dt)
	}
}

func (w *mainWindow) MakeContextCurrent() { w.native.MakeContextCurrent() }
func (w *mainWindow) SwapBuffers()        { w.native.SwapBuffers() }

// viewportWindow is a native window created for a secondary viewport. It
// owns the window and a renderer bound to the window's context.
type viewportWindow struct {
	native   NativeWindow
	renderer Renderer
	handle   WindowHandle
	clear    [4]float32
}

func (w *viewportWindow) Native() NativeWindow { return w.native }

func (w *viewportWindow) OnUpdate(float32) { w.native.ProcessEvents() }

func (w *viewportWindow) OnDraw(float32) {}

func (w *viewportWindow) OnRender(float32) { w.renderer.Begin(w.native, w.clear) }

func (w *viewportWindow) MakeContextCurrent() { w.native.MakeContextCurrent() }
func (w *viewportWindow) SwapBuffers()        { w.native.SwapBuffers() }
