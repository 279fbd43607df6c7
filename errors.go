package viewports

import "errors"

var (
	// ErrNoMainViewport is returned when the GUI context reports no viewports.
	ErrNoMainViewport = errors.New("viewports: context has no main viewport")
	// ErrNoWindowSystem is returned when NewController gets a nil WindowSystem.
	ErrNoWindowSystem = errors.New("viewports: nil window system")
)
