package navigation

// DetentConfig carries opaque modal sizing data. The engine never interprets
// these values; it stores and passes them through so the view layer (which
// renders sheets and detents) can react to changes.
type DetentConfig struct {
	IdealHeight    float64
	MinHeight      float64
	SelectedDetent string
}

// RouteSnapshot is the flattened, erased view of a router's visible routes,
// emitted to subscribers on every accepted mutation. Root is always present;
// Stack is the routes pushed above it, in order.
type RouteSnapshot struct {
	Root  AnyRoute
	Stack []AnyRoute
}

// NavigationState is the per-router snapshot of navigation data: the base
// route, the pushed stack, the active tab, and the overlays (modal, detour,
// pushed children) composed on top.
//
// Invariants maintained by [Router]:
//   - Stack never contains Root.
//   - PushedChildren is a sublist of the owning coordinator's children, in
//     pointer identity.
//   - Presented is non-nil iff the coordinator has a live current modal.
//   - Detour is non-nil iff the coordinator has a live detour coordinator.
type NavigationState[R Route] struct {
	// Root is the base route of this router.
	Root R
	// Stack holds routes pushed on top of Root. The current route is
	// Stack's last element, or Root if Stack is empty.
	Stack []R
	// SelectedTab is the active tab index; meaningful only for coordinators
	// configured as a TabCoordinator.
	SelectedTab int
	// Presented is the modal route displayed by this coordinator's own
	// modal coordinator, if any.
	Presented *R
	// Detour is the initial route of a detour overlay, if any. It is
	// AnyRoute because a detour's coordinator may use a different route
	// type than this router's own R.
	Detour AnyRoute
	// PushedChildren holds non-owning references to coordinators spliced
	// into this router's stack. Each entry also lives in the owning
	// coordinator's children collection.
	PushedChildren []AnyCoordinator
	// ModalDetentConfiguration is opaque UI sizing data, passed through
	// unchanged.
	ModalDetentConfiguration *DetentConfig
}

// Current returns the route currently displayed by this router: the top of
// Stack, or Root if Stack is empty.
func (s NavigationState[R]) Current() R {
	if n := len(s.Stack); n > 0 {
		return s.Stack[n-1]
	}
	return s.Root
}

// IndexOf returns the index of r within Stack, or -1 if absent.
func (s NavigationState[R]) IndexOf(r R) int {
	for i, e := range s.Stack {
		if e == r {
			return i
		}
	}
	return -1
}

// snapshot erases Root and Stack to AnyRoute for observer notification.
func (s NavigationState[R]) snapshot() RouteSnapshot {
	stack := make([]AnyRoute, len(s.Stack))
	for i, r := range s.Stack {
		stack[i] = r
	}
	return RouteSnapshot{Root: s.Root, Stack: stack}
}
