// Package errors provides structured error reporting for the navigation
// coordinator engine.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of a NavigationError.
type Kind int

const (
	// KindNavigationFailed indicates no coordinator in the hierarchy could
	// handle a route and no flow orchestrator absorbed it as a flow change.
	KindNavigationFailed Kind = iota
	// KindModalCoordinatorNotConfigured indicates a route resolved to the
	// Modal navigation kind but no matching modal coordinator is registered.
	KindModalCoordinatorNotConfigured
	// KindViewCreationFailed indicates the host's view factory returned no
	// view for a route the engine tried to display.
	KindViewCreationFailed
	// KindCircularReference indicates a coordinator was asked to adopt
	// itself as a child or modal coordinator.
	KindCircularReference
	// KindDuplicateChild indicates a coordinator already present in a
	// parent's children or modalCoordinators was added again.
	KindDuplicateChild
	// KindInvalidTabIndex indicates a tab coordinator was asked to select an
	// out-of-range tab.
	KindInvalidTabIndex
	// KindConfigurationError covers host misconfiguration that the engine
	// can detect but not recover from on its own, such as a tab child with
	// no tab item.
	KindConfigurationError
	// KindInvalidDetourNavigation indicates an attempt to route a detour
	// through navigate; detours are entered only by the explicit
	// presentDetour operation.
	KindInvalidDetourNavigation
)

func (k Kind) String() string {
	switch k {
	case KindNavigationFailed:
		return "navigation-failed"
	case KindModalCoordinatorNotConfigured:
		return "modal-coordinator-not-configured"
	case KindViewCreationFailed:
		return "view-creation-failed"
	case KindCircularReference:
		return "circular-reference"
	case KindDuplicateChild:
		return "duplicate-child"
	case KindInvalidTabIndex:
		return "invalid-tab-index"
	case KindConfigurationError:
		return "configuration-error"
	case KindInvalidDetourNavigation:
		return "invalid-detour-navigation"
	default:
		return "unknown"
	}
}

// ViewKind identifies which overlay slot a ViewCreationFailed error concerns.
type ViewKind int

const (
	ViewRoot ViewKind = iota
	ViewPushed
	ViewModal
	ViewDetour
)

func (v ViewKind) String() string {
	switch v {
	case ViewRoot:
		return "root"
	case ViewPushed:
		return "pushed"
	case ViewModal:
		return "modal"
	case ViewDetour:
		return "detour"
	default:
		return "unknown"
	}
}

// NavigationError is the structured error type reported by the coordinator
// engine. Coordinator and Route identify where the failure occurred; the
// remaining fields are populated only for the Kind values that use them.
type NavigationError struct {
	// Kind categorizes the error.
	Kind Kind
	// Coordinator is the identifier of the coordinator that raised the
	// error: the identifier of the route it currently displays.
	Coordinator string
	// Route is the identifier of the route involved, when applicable.
	Route string
	// RouteType names the concrete route type involved, when known.
	RouteType string
	// Reason carries a free-text explanation for KindNavigationFailed.
	Reason string
	// ViewKind is set for KindViewCreationFailed.
	ViewKind ViewKind
	// Index and ValidCount are set for KindInvalidTabIndex: the rejected
	// index, and the number of tabs actually configured.
	Index      int
	ValidCount int
	// Message carries the description for KindConfigurationError.
	Message string
	// Timestamp is when the error was reported.
	Timestamp time.Time
}

func (e *NavigationError) Error() string {
	switch e.Kind {
	case KindNavigationFailed:
		return fmt.Sprintf("%s: navigation to %q (%s) failed: %s", e.Coordinator, e.Route, e.RouteType, e.Reason)
	case KindModalCoordinatorNotConfigured:
		return fmt.Sprintf("%s: no modal coordinator configured for %q (%s)", e.Coordinator, e.Route, e.RouteType)
	case KindViewCreationFailed:
		return fmt.Sprintf("%s: view factory returned no view for %s route %q (%s)", e.Coordinator, e.ViewKind, e.Route, e.RouteType)
	case KindCircularReference:
		return fmt.Sprintf("%s: cannot adopt itself as a child", e.Coordinator)
	case KindDuplicateChild:
		return fmt.Sprintf("%s: %q is already attached", e.Coordinator, e.Route)
	case KindInvalidTabIndex:
		return fmt.Sprintf("%s: tab index %d out of range [0, %d)", e.Coordinator, e.Index, e.ValidCount)
	case KindConfigurationError:
		return fmt.Sprintf("%s: %s", e.Coordinator, e.Message)
	case KindInvalidDetourNavigation:
		return fmt.Sprintf("%s: %q (%s) must be entered via presentDetour, not navigate", e.Coordinator, e.Route, e.RouteType)
	default:
		return fmt.Sprintf("%s: unknown navigation error", e.Coordinator)
	}
}

// NavigationFailed reports that no coordinator in the hierarchy could handle
// route and no flow orchestrator absorbed it.
func NavigationFailed(coordinator, route, routeType, reason string) *NavigationError {
	return &NavigationError{Kind: KindNavigationFailed, Coordinator: coordinator, Route: route, RouteType: routeType, Reason: reason}
}

// ModalCoordinatorNotConfigured reports that a Modal-kind route has no
// matching registered modal coordinator.
func ModalCoordinatorNotConfigured(coordinator, route, routeType string) *NavigationError {
	return &NavigationError{Kind: KindModalCoordinatorNotConfigured, Coordinator: coordinator, Route: route, RouteType: routeType}
}

// ViewCreationFailed reports that the host's view factory returned no view.
func ViewCreationFailed(coordinator, route, routeType string, kind ViewKind) *NavigationError {
	return &NavigationError{Kind: KindViewCreationFailed, Coordinator: coordinator, Route: route, RouteType: routeType, ViewKind: kind}
}

// CircularReference reports an attempt to adopt a coordinator as its own child.
func CircularReference(coordinator string) *NavigationError {
	return &NavigationError{Kind: KindCircularReference, Coordinator: coordinator}
}

// DuplicateChild reports that a child or modal coordinator was already attached.
func DuplicateChild(coordinator, childRoute string) *NavigationError {
	return &NavigationError{Kind: KindDuplicateChild, Coordinator: coordinator, Route: childRoute}
}

// InvalidTabIndex reports an out-of-range switchToTab call.
func InvalidTabIndex(coordinator string, index, validCount int) *NavigationError {
	return &NavigationError{Kind: KindInvalidTabIndex, Coordinator: coordinator, Index: index, ValidCount: validCount}
}

// ConfigurationError reports a generic host misconfiguration, such as a tab
// coordinator child with no registered tab item.
func ConfigurationError(coordinator, message string) *NavigationError {
	return &NavigationError{Kind: KindConfigurationError, Coordinator: coordinator, Message: message}
}

// InvalidDetourNavigation reports an attempt to route a detour through
// navigate rather than the explicit presentDetour operation.
func InvalidDetourNavigation(coordinator, route, routeType string) *NavigationError {
	return &NavigationError{Kind: KindInvalidDetourNavigation, Coordinator: coordinator, Route: route, RouteType: routeType}
}
