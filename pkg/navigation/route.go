// Package navigation implements the hierarchical navigation coordinator engine
// at the heart of the Drift navigation framework.
//
// The package manages an in-memory tree of [Coordinator] values, each owning a
// [Router] (a small state machine over one route type), and implements a
// universal navigation algorithm that, given any route issued from any node in
// the tree, either atomically transitions the tree to display that route or
// leaves the tree unchanged and reports a typed error.
//
// # Routes
//
// A concrete route type is any comparable value implementing [Route]:
//
//	type AppRoute string
//	func (r AppRoute) Identifier() string { return string(r) }
//
// Coordinators are parameterized over their own route type ([Coordinator][R]),
// but navigation frequently crosses coordinator boundaries (a tab switching to
// a sibling, a modal bubbling to its presenter). Those boundaries are crossed
// with [AnyRoute], the type-erased view of a route that carries only its
// identifier.
//
// # Building a tree
//
// Coordinators are created with [NewCoordinator] and wired together with
// [Coordinator.AddChild], [Coordinator.AddModalCoordinator], and
// [Coordinator.PresentDetour]. Coordinators created with [NewTabCoordinator]
// and [NewFlowOrchestrator] extend the base algorithm with tab-selection and
// flow-swap semantics respectively.
//
// # Navigating
//
//	ok := root.Go(AppRoute("/settings"))
//
// Navigate validates the request across the whole tree before mutating
// anything (see [Coordinator.Navigate]); a validation failure leaves every
// coordinator's state untouched and reports a [errors.NavigationError] to the
// process-wide handler installed with [errors/SetHandler].
package navigation

// AnyRoute is the type-erased view of a [Route], used whenever navigation
// crosses a coordinator boundary into a subtree with a different concrete
// route type. It carries only the information needed for identity comparisons
// and logging: a stable identifier string.
type AnyRoute interface {
	// Identifier returns a stable string identifying this route, used for
	// logging and for equality checks across coordinator type boundaries.
	Identifier() string
}

// Route is implemented by a coordinator's own concrete route type.
//
// Route values are compared with ==, so concrete route types must have a
// comparable underlying representation: a string-backed enum, or a struct of
// comparable fields. This mirrors the "value-type route, equal within one
// concrete variant" model described for the engine: two Push requests for the
// same concrete route are indistinguishable, but routes belonging to
// different coordinators' route types are never compared directly, only
// through their erased [AnyRoute.Identifier].
type Route interface {
	AnyRoute
	comparable
}

// SameRoute reports whether an erased route identifies the same destination
// as a concrete one. Comparison is by identifier, since a and r may not share
// a concrete type.
func SameRoute[R Route](a AnyRoute, r R) bool {
	if a == nil {
		return false
	}
	return a.Identifier() == r.Identifier()
}

// NavigationKind is the sum of ways a route can be applied to a router.
type NavigationKind int

const (
	// KindPush appends the route to the router's stack.
	KindPush NavigationKind = iota
	// KindReplace swaps the current top of stack for the route, so back
	// navigation cannot return to the replaced route.
	KindReplace
	// KindModal presents the route through a modal coordinator.
	KindModal
	// KindTabSwitch selects a tab by index; see Navigation.TabIndex.
	KindTabSwitch
)

func (k NavigationKind) String() string {
	switch k {
	case KindPush:
		return "push"
	case KindReplace:
		return "replace"
	case KindModal:
		return "modal"
	case KindTabSwitch:
		return "tab-switch"
	default:
		return "unknown"
	}
}

// Navigation describes how a host's [Handler] wants a route applied.
// TabIndex is only meaningful when Kind is [KindTabSwitch].
type Navigation struct {
	Kind     NavigationKind
	TabIndex int
}

// Push is shorthand for Navigation{Kind: KindPush}.
func Push() Navigation { return Navigation{Kind: KindPush} }

// Replace is shorthand for Navigation{Kind: KindReplace}.
func Replace() Navigation { return Navigation{Kind: KindReplace} }

// Modal is shorthand for Navigation{Kind: KindModal}.
func Modal() Navigation { return Navigation{Kind: KindModal} }

// TabSwitch is shorthand for Navigation{Kind: KindTabSwitch, TabIndex: i}.
func TabSwitch(i int) Navigation { return Navigation{Kind: KindTabSwitch, TabIndex: i} }

// PresentationContext records how a coordinator is presented by its parent.
// It drives back-button visibility in the view layer only; the engine itself
// branches on it for cleanup and context-aware pop (see Coordinator.Pop).
type PresentationContext int

const (
	// ContextRoot is assigned to a standalone coordinator with no parent.
	ContextRoot PresentationContext = iota
	// ContextTab is assigned to a child attached to a TabCoordinator.
	ContextTab
	// ContextPushed is assigned to a child spliced into the parent's stack.
	ContextPushed
	// ContextModal is assigned to the coordinator behind currentModalCoordinator.
	ContextModal
	// ContextDetour is assigned to the coordinator behind detourCoordinator.
	ContextDetour
)

func (c PresentationContext) String() string {
	switch c {
	case ContextRoot:
		return "root"
	case ContextTab:
		return "tab"
	case ContextPushed:
		return "pushed"
	case ContextModal:
		return "modal"
	case ContextDetour:
		return "detour"
	default:
		return "unknown"
	}
}

// ShouldShowBackButton reports whether a coordinator presented with this
// context should display back navigation affordance in the view layer.
func (c PresentationContext) ShouldShowBackButton() bool {
	switch c {
	case ContextPushed, ContextModal, ContextDetour:
		return true
	default:
		return false
	}
}
