// Command gen renders one frame of the main window and two viewport
// windows, reads back each window's pixels and saves JPEG screenshots to
// doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/viewports"
	"github.com/go-theft-auto/viewports/backend/desktop"
	"github.com/go-theft-auto/viewports/backend/opengl"
	"github.com/go-theft-auto/viewports/backend/opengl/gogl"
	"github.com/go-theft-auto/viewports/internal/scriptgui"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// shot is a secondary viewport to open before capturing.
type shot struct {
	pos  viewports.Vec2
	size viewports.Vec2
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	sys := desktop.New()
	native, err := sys.CreateWindow(viewports.WindowConfig{
		Title:     "screenshot-gen",
		Size:      viewports.Vec2{X: 800, Y: 600},
		Decorated: true,
		GLVersion: [2]int{3, 3},
	})
	if err != nil {
		return err
	}
	defer native.Destroy()
	native.MakeContextCurrent()

	fns, err := gogl.Init()
	if err != nil {
		return err
	}

	ui := scriptgui.New(scriptgui.WithMainSize(800, 600))
	atlas := ui.FontAtlas().(*viewports.DefaultFontAtlas)
	renderer, err := opengl.NewRenderer(fns, atlas)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}

	ui.SetDrawFunc(func(vp *viewports.Viewport, dl *viewports.DrawList) {
		white := atlas.WhitePixelUV()
		dl.AddRect(vp.Pos.X+16, vp.Pos.Y+16, 200, 40, white, viewports.RGBA(40, 44, 52, 230))
		dl.AddText(atlas, viewports.Vec2{X: vp.Pos.X + 24, Y: vp.Pos.Y + 28}, fmt.Sprintf("viewport %d", vp.ID), viewports.RGBA(255, 255, 255, 255))
	})

	win := viewports.WrapWindow(native, viewports.WindowHooks{
		Render: func(float32) { renderer.Begin(native, [4]float32{0.12, 0.12, 0.14, 1}) },
	})
	ctrl, err := viewports.NewController(ui, sys, win, renderer)
	if err != nil {
		return err
	}
	defer ctrl.Dispose()

	shots := []shot{
		{pos: viewports.Vec2{X: 100, Y: 100}, size: viewports.Vec2{X: 400, Y: 300}},
		{pos: viewports.Vec2{X: 400, Y: 300}, size: viewports.Vec2{X: 400, Y: 300}},
	}
	for _, s := range shots {
		ui.RequestViewport(s.pos, s.size, viewports.ViewportFlagsNone)
	}

	// The first frame creates the windows, the second draws into them.
	for range 2 {
		if err := ctrl.Render(1.0 / 60.0); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}
	}

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	manager := ctrl.WindowsManager()
	for _, vp := range ui.Viewports() {
		w := manager.Window(vp)
		if w == nil {
			continue
		}
		name := fmt.Sprintf("viewport-%d", vp.ID)
		if err := capture(w, filepath.Join(outDir, name+".jpg")); err != nil {
			return fmt.Errorf("capture %s: %w", name, err)
		}
		fb := w.Native().FramebufferSize()
		fmt.Printf("  %s.jpg (%.0fx%.0f)\n", name, fb.X, fb.Y)
	}
	native.MakeContextCurrent()

	fmt.Printf("\nGenerated screenshots in %s/\n", outDir)
	return nil
}

// capture reads the front buffer of w, which holds the frame presented by
// the last SwapBuffers.
func capture(w viewports.Window, path string) error {
	w.MakeContextCurrent()
	fb := w.Native().FramebufferSize()
	width, height := int(fb.X), int(fb.Y)

	pixels := make([]byte, width*height*4)
	gl.ReadBuffer(gl.FRONT)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < height/2; y++ {
		top := y * rowLen
		bot := (height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}
