// Package desktop implements viewports.WindowSystem on GLFW 3.3.
//
// GLFW must be initialised, and every call made, on the main OS thread.
package desktop

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/chewxy/math32"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/viewports"
)

// ErrForeignWindow is returned when a share window was not created by this
// package.
var ErrForeignWindow = errors.New("desktop: share window is not a GLFW window")

// Option configures a System.
type Option func(*System)

// WithLogger sets the logger window creation is reported to.
func WithLogger(l *slog.Logger) Option {
	return func(s *System) {
		if l != nil {
			s.log = l
		}
	}
}

// System creates GLFW windows and enumerates monitors.
type System struct {
	log *slog.Logger
}

var _ viewports.WindowSystem = (*System)(nil)

// New returns a System. glfw.Init must already have succeeded.
func New(opts ...Option) *System {
	s := &System{log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateWindow implements viewports.WindowSystem. The window is created
// hidden and moved to cfg.Pos before it is shown, if cfg.Visible is set.
func (s *System) CreateWindow(cfg viewports.WindowConfig) (viewports.NativeWindow, error) {
	var share *glfw.Window
	if cfg.Share != nil {
		w, ok := cfg.Share.(*Window)
		if !ok {
			return nil, ErrForeignWindow
		}
		share = w.win
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Decorated, boolHint(cfg.Decorated))
	glfw.WindowHint(glfw.Floating, boolHint(cfg.Floating))
	glfw.WindowHint(glfw.FocusOnShow, boolHint(cfg.FocusOnShow))
	if cfg.GLVersion[0] > 0 {
		glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLVersion[0])
		glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLVersion[1])
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}

	width, height := max(int(cfg.Size.X), 1), max(int(cfg.Size.Y), 1)
	win, err := glfw.CreateWindow(width, height, cfg.Title, nil, share)
	if err != nil {
		return nil, fmt.Errorf("create window %q: %w", cfg.Title, err)
	}
	win.SetPos(int(cfg.Pos.X), int(cfg.Pos.Y))

	w := Wrap(win)
	if cfg.Visible {
		win.Show()
	}
	s.log.Debug("glfw window created", "title", cfg.Title, "width", width, "height", height)
	return w, nil
}

// Monitors implements viewports.WindowSystem. The primary monitor comes
// first.
func (s *System) Monitors() []viewports.Monitor {
	gms := glfw.GetMonitors()
	monitors := make([]viewports.Monitor, 0, len(gms))
	for _, gm := range gms {
		m, ok := monitorInfo(gm)
		if !ok {
			continue
		}
		monitors = append(monitors, m)
	}
	return monitors
}

// MonitorOf implements viewports.WindowSystem using the window's centre.
// It returns a zero Monitor when no monitor is connected.
func (s *System) MonitorOf(w viewports.NativeWindow) viewports.Monitor {
	r := viewports.RectOf(w.Pos(), w.Size())
	m, _ := viewports.MonitorAt(s.Monitors(), r.Center())
	return m
}

func monitorInfo(gm *glfw.Monitor) (viewports.Monitor, bool) {
	mode := gm.GetVideoMode()
	if mode == nil {
		return viewports.Monitor{}, false
	}
	x, y := gm.GetPos()
	wx, wy, ww, wh := gm.GetWorkarea()

	scale, _ := gm.GetContentScale()
	if math32.IsNaN(scale) || scale < 1 {
		scale = 1
	}
	return viewports.Monitor{
		MainPos:  viewports.Vec2{X: float32(x), Y: float32(y)},
		MainSize: viewports.Vec2{X: float32(mode.Width), Y: float32(mode.Height)},
		WorkPos:  viewports.Vec2{X: float32(wx), Y: float32(wy)},
		WorkSize: viewports.Vec2{X: float32(ww), Y: float32(wh)},
		DpiScale: scale,
	}, true
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
