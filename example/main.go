// Example opens a main window and spawns extra viewport windows that share
// its GL context.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Press N to open a viewport window, D to close the newest one and Escape
// to quit. Set VIEWPORTS_DEBUG=1 for window lifecycle logs.
package main

import (
	"fmt"
	"os"
	"runtime"
	"slices"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/viewports"
	"github.com/go-theft-auto/viewports/backend/desktop"
	"github.com/go-theft-auto/viewports/backend/opengl"
	"github.com/go-theft-auto/viewports/backend/opengl/gogl"
	"github.com/go-theft-auto/viewports/internal/scriptgui"
)

const (
	windowWidth  = 1600
	windowHeight = 900
	windowTitle  = "viewports example"
)

var clearColor = [4]float32{0.12, 0.12, 0.14, 1.0}

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	viewports.SetVerbose(os.Getenv("VIEWPORTS_DEBUG") != "")

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	sys := desktop.New()
	native, err := sys.CreateWindow(viewports.WindowConfig{
		Title:       windowTitle,
		Pos:         viewports.Vec2{X: 100, Y: 100},
		Size:        viewports.Vec2{X: windowWidth, Y: windowHeight},
		Decorated:   true,
		Visible:     true,
		FocusOnShow: true,
		GLVersion:   [2]int{3, 3},
	})
	if err != nil {
		return err
	}
	mainWindow := native.(*desktop.Window)
	defer mainWindow.Destroy()

	mainWindow.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	fns, err := gogl.Init()
	if err != nil {
		return err
	}

	ui := scriptgui.New(scriptgui.WithMainSize(windowWidth, windowHeight))
	renderer, err := opengl.NewRenderer(fns, ui.FontAtlas())
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}

	atlas := ui.FontAtlas().(*viewports.DefaultFontAtlas)
	ui.SetDrawFunc(func(vp *viewports.Viewport, dl *viewports.DrawList) {
		drawViewport(atlas, vp, dl)
	})

	win := viewports.WrapWindow(mainWindow, viewports.WindowHooks{
		Render: func(float32) { renderer.Begin(mainWindow, clearColor) },
	})
	ctrl, err := viewports.NewController(ui, sys, win, renderer,
		viewports.WithClearColor(clearColor[0], clearColor[1], clearColor[2], clearColor[3]),
	)
	if err != nil {
		return fmt.Errorf("controller: %w", err)
	}
	defer ctrl.Dispose()

	var spawned []*viewports.Viewport
	last := glfw.GetTime()
	for !mainWindow.ShouldClose() {
		now := glfw.GetTime()
		dt := float32(now - last)
		last = now

		for _, ev := range ui.LastKeyEvents {
			if !ev.Down {
				continue
			}
			switch ev.Key {
			case viewports.KeyN:
				pos := viewports.Vec2{X: float32(100 + 300*len(spawned)), Y: 100}
				spawned = append(spawned, ui.RequestViewport(pos, viewports.Vec2{X: 400, Y: 300}, viewports.ViewportFlagsNone))
			case viewports.KeyD:
				if n := len(spawned); n > 0 {
					ui.RemoveViewport(spawned[n-1])
					spawned = spawned[:n-1]
				}
			case viewports.KeyEscape:
				mainWindow.RequestClose()
			}
		}
		ui.LastKeyEvents = ui.LastKeyEvents[:0]

		// Drops viewports whose window the user closed.
		spawned = slices.DeleteFunc(spawned, func(vp *viewports.Viewport) bool {
			return !slices.Contains(ui.Viewports(), vp)
		})

		if err := ctrl.Render(dt); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}
	}

	return nil
}

func drawViewport(atlas *viewports.DefaultFontAtlas, vp *viewports.Viewport, dl *viewports.DrawList) {
	white := atlas.WhitePixelUV()
	panel := viewports.Rect{X: vp.Pos.X + 20, Y: vp.Pos.Y + 20, W: 260, H: 60}
	dl.AddRect(panel.X, panel.Y, panel.W, panel.H, white, viewports.RGBA(40, 44, 52, 230))
	dl.AddText(atlas, viewports.Vec2{X: panel.X + 10, Y: panel.Y + 10}, fmt.Sprintf("viewport %d", vp.ID), viewports.RGBA(255, 255, 255, 255))
	dl.AddText(atlas, viewports.Vec2{X: panel.X + 10, Y: panel.Y + 30}, fmt.Sprintf("%.0fx%.0f", vp.Size.X, vp.Size.Y), viewports.RGBA(180, 180, 180, 255))
}
