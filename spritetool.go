// Package spritetool packs a set of equally sized icon images into a single
// grid-arranged sprite sheet and records where each icon was placed.
//
// The typical flow is Discover -> Layout -> EncodeSheet + an emitter from
// the emit package.
package spritetool

import (
	"github.com/akeil/spritetool/internal/logging"
)

// SetLogLevel sets the log level by name
// ("debug", "info", "warning", "error" or "none").
// Unknown names disable logging.
func SetLogLevel(level string) {
	lvl, ok := logging.ParseLevel(level)
	if !ok {
		lvl = logging.LevelNone
	}
	logging.SetLevel(lvl)
}
