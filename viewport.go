package viewports

// ViewportID identifies a viewport inside the GUI library.
type ViewportID uint32

// ViewportFlags describe how a viewport wants its native window.
type ViewportFlags uint32

const (
	ViewportFlagsNone               ViewportFlags = 0
	ViewportFlagsNoDecoration       ViewportFlags = 1 << 0
	ViewportFlagsNoFocusOnAppearing ViewportFlags = 1 << 1
	ViewportFlagsTopMost            ViewportFlags = 1 << 2
)

// Viewport is a rectangular region the GUI library wants to present in its
// own native window. Index 0 of Context.Viewports is always the main
// viewport.
type Viewport struct {
	ID    ViewportID
	Pos   Vec2 // client-area position in screen coordinates
	Size  Vec2
	Flags ViewportFlags

	// PlatformHandle names the native window bound to this viewport.
	// The zero value means no window.
	PlatformHandle WindowHandle

	// Set by the platform side when the user moved, resized or closed the
	// window; the GUI library consumes and clears them.
	PlatformRequestMove   bool
	PlatformRequestResize bool
	PlatformRequestClose  bool

	// DrawData is filled by Context.Render and may be nil.
	DrawData *DrawData
}

// BackendFlags advertise platform and renderer capabilities.
type BackendFlags uint32

const (
	BackendFlagsNone                 BackendFlags = 0
	BackendFlagsHasMouseCursors      BackendFlags = 1 << 0
	BackendFlagsHasSetMousePos       BackendFlags = 1 << 1
	BackendFlagsRendererHasVtxOffset BackendFlags = 1 << 2
	BackendFlagsPlatformHasViewports BackendFlags = 1 << 3
	BackendFlagsRendererHasViewports BackendFlags = 1 << 4
)

// ConfigFlags enable GUI library features.
type ConfigFlags uint32

const (
	ConfigFlagsNone            ConfigFlags = 0
	ConfigFlagsDockingEnable   ConfigFlags = 1 << 0
	ConfigFlagsViewportsEnable ConfigFlags = 1 << 1
)

// KeyEvent is a key transition forwarded to the GUI library.
type KeyEvent struct {
	Key  Key
	Down bool
}

// IO is the per-frame state exchanged with the GUI library.
type IO struct {
	DisplaySize      Vec2
	FramebufferScale Vec2
	DeltaTime        float32

	MousePos    Vec2
	MouseDown   [MouseButtonCount]bool
	MouseWheel  float32
	MouseWheelH float32

	KeyCtrl  bool
	KeyShift bool
	KeyAlt   bool
	KeySuper bool

	BackendFlags BackendFlags
	ConfigFlags  ConfigFlags

	keyEvents []KeyEvent
	chars     []rune
}

// AddKeyEvent queues a key transition.
func (io *IO) AddKeyEvent(key Key, down bool) {
	io.keyEvents = append(io.keyEvents, KeyEvent{Key: key, Down: down})
}

// AddInputCharacter queues a typed character.
func (io *IO) AddInputCharacter(r rune) {
	io.chars = append(io.chars, r)
}

// KeyEvents returns the queued key transitions in order.
func (io *IO) KeyEvents() []KeyEvent { return io.keyEvents }

// InputCharacters returns the queued characters in order.
func (io *IO) InputCharacters() []rune { return io.chars }

// ClearInputEvents drops queued key transitions and characters.
func (io *IO) ClearInputEvents() {
	io.keyEvents = io.keyEvents[:0]
	io.chars = io.chars[:0]
}

// Monitor describes one display.
type Monitor struct {
	MainPos  Vec2
	MainSize Vec2
	WorkPos  Vec2 // usable area, excluding task bars and docks
	WorkSize Vec2
	DpiScale float32
}

// Contains reports whether a screen point lies on the monitor.
func (m Monitor) Contains(p Vec2) bool {
	return RectOf(m.MainPos, m.MainSize).Contains(p)
}

// Scale returns DpiScale, treating unset or invalid values as 1.
func (m Monitor) Scale() float32 {
	if !(m.DpiScale > 0) {
		return 1
	}
	return m.DpiScale
}

// MonitorAt returns the monitor containing p, or the first monitor when no
// monitor does. ok is false only when monitors is empty.
func MonitorAt(monitors []Monitor, p Vec2) (Monitor, bool) {
	if len(monitors) == 0 {
		return Monitor{}, false
	}
	for _, m := range monitors {
		if m.Contains(p) {
			return m, true
		}
	}
	return monitors[0], true
}

// PlatformIO is the callback table the GUI library invokes to manage native
// windows for its viewports. All calls happen synchronously inside
// Context.UpdatePlatformWindows on the render thread.
type PlatformIO interface {
	CreateWindow(vp *Viewport)
	DestroyWindow(vp *Viewport)
	ShowWindow(vp *Viewport)
	SetWindowPos(vp *Viewport, pos Vec2)
	WindowPos(vp *Viewport) Vec2
	SetWindowSize(vp *Viewport, size Vec2)
	WindowSize(vp *Viewport) Vec2
	SetWindowFocus(vp *Viewport)
	WindowFocus(vp *Viewport) bool
	WindowMinimized(vp *Viewport) bool
	SetWindowTitle(vp *Viewport, title string)
}

// Context is the part of an immediate-mode GUI library the Controller
// drives. Implementations must not be used from more than one goroutine.
type Context interface {
	IO() *IO
	// Viewports lists live viewports; index 0 is the main viewport.
	Viewports() []*Viewport
	SetPlatform(platform PlatformIO, clipboard ClipboardProvider)
	SetMonitors(monitors []Monitor)
	UpdatePlatformWindows()
	NewFrame()
	Render()
	FontAtlas() FontAtlas
}
