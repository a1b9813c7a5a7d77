package errors

import (
	"sync"
	"time"
)

// Handler receives errors reported by the navigation engine.
type Handler interface {
	// HandleNavigationError is called when the engine reports a
	// NavigationError.
	HandleNavigationError(err *NavigationError)
}

var (
	// currentHandler is the process-wide error sink. Unlike the surrounding
	// framework's convention of an always-on log handler, this defaults to
	// nil: a host that never calls SetHandler gets silent failures, exactly
	// as a validation-phase rejection that never touches view state should
	// be unobservable unless a host opts in.
	currentHandler Handler
	handlerMu      sync.RWMutex
)

// SetHandler installs h as the process-wide error handler. Pass nil to
// return to the silent default.
func SetHandler(h Handler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	currentHandler = h
}

// Reset clears the installed handler, restoring the silent default. Intended
// for test teardown.
func Reset() {
	SetHandler(nil)
}

func getHandler() Handler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return currentHandler
}

// Report sends err to the installed handler, if any. A nil err is a no-op.
func Report(err *NavigationError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandleNavigationError(err)
	}
}
