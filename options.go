package viewports

import "log/slog"

// DefaultMaxWindows is the number of live secondary windows after which a
// further create request closes the main window instead.
const DefaultMaxWindows = 25

// Option configures a Controller and its WindowsManager.
type Option func(*config)

type config struct {
	logger           *slog.Logger
	maxWindows       int
	excludeMain      bool
	clearColor       [4]float32
	glVersion        [2]int
	onWindowCreated  func(vp *Viewport, w Window)
	onWindowDestroy  func(vp *Viewport)
	initialDeltaTime float32
}

func defaultConfig() config {
	return config{
		logger:           defaultLogger,
		maxWindows:       DefaultMaxWindows,
		clearColor:       [4]float32{0, 32.0 / 255, 48.0 / 255, 1},
		glVersion:        [2]int{3, 3},
		initialDeltaTime: 1.0 / 60.0,
	}
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger sets the logger for window lifecycle and error reporting.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMaxWindows sets the live secondary window cap. n <= 0 disables it.
func WithMaxWindows(n int) Option {
	return func(c *config) { c.maxWindows = n }
}

// WithMainWindowExcluded leaves the main window out of the per-frame
// update, input, draw and render passes. Use it when the application renders
// the main window on its own.
func WithMainWindowExcluded() Option {
	return func(c *config) { c.excludeMain = true }
}

// WithClearColor sets the color secondary windows are cleared to.
func WithClearColor(r, g, b, a float32) Option {
	return func(c *config) { c.clearColor = [4]float32{r, g, b, a} }
}

// WithGLVersion sets the GL version requested for secondary windows.
func WithGLVersion(major, minor int) Option {
	return func(c *config) { c.glVersion = [2]int{major, minor} }
}

// WithWindowCreated registers a hook run after a secondary window is bound
// to its viewport.
func WithWindowCreated(fn func(vp *Viewport, w Window)) Option {
	return func(c *config) { c.onWindowCreated = fn }
}

// WithWindowDestroyed registers a hook run after a secondary window is
// disposed. The viewport is already unbound.
func WithWindowDestroyed(fn func(vp *Viewport)) Option {
	return func(c *config) { c.onWindowDestroy = fn }
}
