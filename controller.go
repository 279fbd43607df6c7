package viewports

import (
	"fmt"
	"log/slog"
)

// Controller runs one GUI frame across the main window and every viewport
// window. It owns the WindowsManager and forwards merged input to the GUI
// library.
//
// A Controller must be used from the thread that created the windows.
type Controller struct {
	ctx      Context
	sys      WindowSystem
	main     Window
	renderer Renderer
	manager  *WindowsManager
	cfg      config
	log      *slog.Logger

	chars    []rune
	wheel    Vec2 // X horizontal, Y vertical
	lastKeys [KeyCount]bool
	monitors []Monitor
	frame    []frameWindow
}

type frameWindow struct {
	vp       *Viewport
	win      Window
	renderer Renderer
}

// NewController wires ctx to the windowing system. main is the application
// window bound to the main viewport and renderer draws into it; its GL
// context must be current.
func NewController(ctx Context, sys WindowSystem, main Window, renderer Renderer, opts ...Option) (*Controller, error) {
	if sys == nil {
		return nil, ErrNoWindowSystem
	}
	if len(ctx.Viewports()) == 0 {
		return nil, ErrNoMainViewport
	}
	cfg := newConfig(opts)
	c := &Controller{
		ctx:      ctx,
		sys:      sys,
		main:     main,
		renderer: renderer,
		cfg:      cfg,
		log:      cfg.logger,
	}

	io := ctx.IO()
	io.BackendFlags |= renderer.BackendFlags() |
		BackendFlagsHasMouseCursors |
		BackendFlagsHasSetMousePos |
		BackendFlagsPlatformHasViewports
	io.ConfigFlags |= ConfigFlagsDockingEnable | ConfigFlagsViewportsEnable

	c.manager = newWindowsManager(ctx, sys, main, renderer, cfg)
	c.manager.onChar = c.OnTextInput
	c.manager.onScroll = c.OnMouseScroll
	ctx.SetPlatform(c.manager, c.manager)

	main.Native().SetEventHandlers(WindowEvents{
		OnChar:   c.OnTextInput,
		OnScroll: c.OnMouseScroll,
	})

	c.setFrameData(cfg.initialDeltaTime)
	c.updateMonitors()
	return c, nil
}

// Context returns the GUI context the controller drives.
func (c *Controller) Context() Context { return c.ctx }

// WindowsManager returns the viewport bridge.
func (c *Controller) WindowsManager() *WindowsManager { return c.manager }

// OnTextInput queues a typed character for the next frame.
func (c *Controller) OnTextInput(r rune) {
	c.chars = append(c.chars, r)
}

// OnMouseScroll adds wheel movement for the next frame.
func (c *Controller) OnMouseScroll(xoff, yoff float64) {
	c.wheel.X += float32(xoff)
	c.wheel.Y += float32(yoff)
}

// PressedCharacters returns a copy of the characters queued since the last
// frame.
func (c *Controller) PressedCharacters() []rune {
	return append([]rune(nil), c.chars...)
}

// Render runs one frame of dt seconds: platform window reconciliation,
// input, layout, then drawing and presenting every window. A renderer error
// aborts the remaining windows and is returned.
func (c *Controller) Render(dt float32) error {
	c.ctx.UpdatePlatformWindows()

	windows := c.collectWindows()
	for _, fw := range windows {
		mon := c.sys.MonitorOf(fw.win.Native())
		fw.vp.Pos = mon.WorkPos
		fw.vp.Size = mon.WorkSize
		fw.win.OnUpdate(dt)
	}

	c.updateInput(windows)
	c.setFrameData(dt)
	c.updateMonitors()

	c.ctx.NewFrame()
	for _, fw := range windows {
		fw.win.OnDraw(dt)
	}
	c.ctx.Render()

	defer c.main.MakeContextCurrent()
	for _, fw := range windows {
		fw.win.MakeContextCurrent()
		fw.win.OnRender(dt)
		if err := fw.renderer.Render(fw.vp.DrawData, fw.win.Native()); err != nil {
			return fmt.Errorf("render viewport %d: %w", fw.vp.ID, err)
		}
		fw.win.SwapBuffers()
	}
	return nil
}

// collectWindows lists the windows of this frame in viewport order.
func (c *Controller) collectWindows() []frameWindow {
	c.frame = c.frame[:0]
	for i, vp := range c.ctx.Viewports() {
		if i == 0 && c.cfg.excludeMain {
			continue
		}
		win := c.manager.Window(vp)
		if win == nil {
			continue
		}
		c.frame = append(c.frame, frameWindow{vp: vp, win: win, renderer: c.manager.rendererOf(vp)})
	}
	return c.frame
}

// updateInput merges the input of all windows into the GUI library's IO.
func (c *Controller) updateInput(windows []frameWindow) {
	io := c.ctx.IO()

	var (
		mouse                   [MouseButtonCount]bool
		released                [MouseButtonCount]bool
		keys                    [KeyCount]bool
		ctrl, shift, alt, super bool
	)
	for _, fw := range windows {
		in := fw.win.Native().Input()
		for b := range released {
			released[b] = in.TakeMouseRelease(MouseButton(b)) || released[b]
		}
	}
	// A release in any window ends the drag overrides for that button.
	for b, r := range released {
		if !r {
			continue
		}
		for _, fw := range windows {
			fw.win.Native().Input().SetSyntheticMouseDown(MouseButton(b), false)
		}
	}
	for _, fw := range windows {
		in := fw.win.Native().Input()
		for b := range mouse {
			mouse[b] = mouse[b] || in.MouseDown(MouseButton(b))
		}
		for k := KeyNone + 1; k < KeyCount; k++ {
			keys[k] = keys[k] || in.KeyDown(k)
		}
		ctrl = ctrl || in.Ctrl()
		shift = shift || in.Shift()
		alt = alt || in.Alt()
		super = super || in.Super()
	}

	io.MouseDown = mouse
	io.KeyCtrl = ctrl
	io.KeyShift = shift
	io.KeyAlt = alt
	io.KeySuper = super

	for k := KeyNone + 1; k < KeyCount; k++ {
		if keys[k] != c.lastKeys[k] {
			io.AddKeyEvent(k, keys[k])
		}
	}
	c.lastKeys = keys

	main := c.main.Native()
	in := main.Input()
	io.MousePos = main.Pos().Add(Vec2{X: in.MouseX, Y: in.MouseY})

	io.MouseWheel = c.wheel.Y
	io.MouseWheelH = c.wheel.X
	c.wheel = Vec2{}

	for _, r := range c.chars {
		io.AddInputCharacter(r)
	}
	c.chars = c.chars[:0]
}

// setFrameData sets display size, framebuffer scale and delta time from the
// main window and the monitor it is on.
func (c *Controller) setFrameData(dt float32) {
	io := c.ctx.IO()
	main := c.main.Native()
	scale := c.sys.MonitorOf(main).Scale()
	io.DisplaySize = main.Size().Mul(1 / scale)
	io.FramebufferScale = Vec2{X: scale, Y: scale}
	io.DeltaTime = dt
}

// updateMonitors refills the monitor list and hands it to the GUI library.
func (c *Controller) updateMonitors() {
	c.monitors = append(c.monitors[:0], c.sys.Monitors()...)
	c.ctx.SetMonitors(c.monitors)
}

// Dispose destroys every secondary window, then the main renderer. The
// main window itself stays owned by the application.
func (c *Controller) Dispose() {
	c.manager.Dispose()
	c.main.Native().SetEventHandlers(WindowEvents{})
	c.ctx.SetPlatform(nil, nil)
	c.main.MakeContextCurrent()
	c.renderer.Dispose()
}
