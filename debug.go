package glib

import (
	"fmt"
	"os"
)

// debugLogger prints one diagnostic line. Swapped out in tests.
type debugLogger func(format string, args ...any)

func stderrLogger(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[glib] "+format+"\n", args...)
}

// debugMaxActive is the active-particle count above which a debug engine
// warns once per burst; past it an effect is usually leaking particles.
const debugMaxActive = 2000

func (e *Engine) debugBurst(n int, at Vec2) {
	if !e.Debug {
		return
	}
	e.logger("engine %q: burst of %d at (%.1f, %.1f), active %d", e.Name, n, at.X, at.Y, len(e.active))
	if len(e.active) > debugMaxActive {
		e.logger("warning: engine %q has %d active particles (threshold %d)", e.Name, len(e.active), debugMaxActive)
	}
}

func (e *Engine) debugRelease(err error) {
	if e.Debug {
		e.logger("engine %q: release failed: %v", e.Name, err)
	}
}
