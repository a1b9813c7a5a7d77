package errors

import (
	"fmt"
	"os"
)

// LogHandler is a Handler that writes errors to stderr. It is not installed
// by default; hosts that want framework-style logging opt in with
// SetHandler(&LogHandler{}).
type LogHandler struct {
	// Verbose includes the error's full field set, not just its message.
	Verbose bool
}

// HandleNavigationError logs err to stderr.
func (h *LogHandler) HandleNavigationError(err *NavigationError) {
	if err == nil {
		return
	}
	if !h.Verbose {
		fmt.Fprintf(os.Stderr, "[navigation error] %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "[navigation error] kind=%s coordinator=%s route=%q route_type=%s: %v\n",
		err.Kind, err.Coordinator, err.Route, err.RouteType, err)
}
