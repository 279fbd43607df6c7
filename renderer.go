package viewports

// Target is the window a renderer draws into.
type Target interface {
	// Pos is the client-area origin in screen coordinates.
	Pos() Vec2
	// Size is the client-area size in screen coordinates.
	Size() Vec2
	FramebufferSize() Vec2
}

// Renderer draws DrawData into the window whose GL context is current.
//
// Implementations:
//   - backend/opengl.Renderer: OpenGL 3.3 core
type Renderer interface {
	// Begin sets the GL viewport to the target framebuffer and clears it.
	Begin(target Target, clear [4]float32)
	// Render draws dd. Nil or empty draw data is a no-op.
	Render(dd *DrawData, target Target) error
	// NewShared creates a renderer for another window on the current
	// context, borrowing the font texture and shader program.
	NewShared() (Renderer, error)
	// BackendFlags reports renderer capabilities to the GUI library.
	BackendFlags() BackendFlags
	// Dispose releases GPU objects. The owning context must be current.
	Dispose()
}
