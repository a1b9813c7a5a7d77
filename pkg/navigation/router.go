package navigation

// Router owns one [NavigationState] and exposes the mutation primitives the
// coordinator engine (and, transitively, the host) uses to drive it. Every
// mutation is total: invalid preconditions (such as an unknown popTo target)
// are silently ignored rather than returning an error, and every accepted
// mutation emits exactly one change notification afterward. SelectTab does
// not range-check its index; [Coordinator.SwitchToTab] does.
//
// Router is exclusively owned by one [Coordinator]; nothing else should
// mutate its state directly.
type Router[R Route] struct {
	state NavigationState[R]

	listeners    map[int]func(RouteSnapshot)
	nextListener int
}

// NewRouter creates a Router rooted at the given route.
func NewRouter[R Route](root R) *Router[R] {
	return &Router[R]{
		state:     NavigationState[R]{Root: root},
		listeners: make(map[int]func(RouteSnapshot)),
	}
}

// State returns a copy of the current navigation state. Slice fields are
// shared, not deep-copied; callers must not mutate them.
func (r *Router[R]) State() NavigationState[R] {
	return r.state
}

// Current returns the route currently displayed: the top of the stack, or
// the root if the stack is empty.
func (r *Router[R]) Current() R {
	return r.state.Current()
}

// Subscribe registers fn to be called with a flattened (root, stack)
// snapshot after every accepted mutation. The returned func unsubscribes.
//
// This is the engine's only observation mechanism: there is no global event
// bus. Coordinators do not subscribe to their pushed children's routers
// themselves; a view layer that wants a flattened stack subscribes to each
// pushed child's router.
func (r *Router[R]) Subscribe(fn func(RouteSnapshot)) (unsubscribe func()) {
	id := r.nextListener
	r.nextListener++
	r.listeners[id] = fn
	return func() { delete(r.listeners, id) }
}

func (r *Router[R]) notify() {
	if len(r.listeners) == 0 {
		return
	}
	snap := r.state.snapshot()
	for _, fn := range r.listeners {
		fn(snap)
	}
}

// Push appends r to the stack.
func (rt *Router[R]) Push(r R) {
	rt.state.Stack = append(rt.state.Stack, r)
	rt.notify()
}

// Pop drops the last element of the stack. No-op if the stack is empty.
func (rt *Router[R]) Pop() {
	if len(rt.state.Stack) == 0 {
		return
	}
	rt.state.Stack = rt.state.Stack[:len(rt.state.Stack)-1]
	rt.notify()
}

// PopToRoot clears the stack.
func (rt *Router[R]) PopToRoot() {
	if len(rt.state.Stack) == 0 {
		return
	}
	rt.state.Stack = nil
	rt.notify()
}

// PopTo truncates the stack so r is its new last element. No-op if r does
// not appear in the stack.
func (rt *Router[R]) PopTo(r R) {
	i := rt.state.IndexOf(r)
	if i < 0 {
		return
	}
	if i == len(rt.state.Stack)-1 {
		return
	}
	rt.state.Stack = rt.state.Stack[:i+1]
	rt.notify()
}

// Replace pops the current top of stack, if any, then pushes r, so the
// replaced route cannot be returned to via back navigation.
func (rt *Router[R]) Replace(r R) {
	if len(rt.state.Stack) > 0 {
		rt.state.Stack = rt.state.Stack[:len(rt.state.Stack)-1]
	}
	rt.state.Stack = append(rt.state.Stack, r)
	rt.notify()
}

// SelectTab sets the active tab index.
func (rt *Router[R]) SelectTab(i int) {
	if rt.state.SelectedTab == i {
		return
	}
	rt.state.SelectedTab = i
	rt.notify()
}

// Present sets the modal route and its detent configuration.
func (rt *Router[R]) Present(r R, detents *DetentConfig) {
	v := r
	rt.state.Presented = &v
	rt.state.ModalDetentConfiguration = detents
	rt.notify()
}

// DismissModal clears the presented route and its detent configuration.
func (rt *Router[R]) DismissModal() {
	if rt.state.Presented == nil {
		return
	}
	rt.state.Presented = nil
	rt.state.ModalDetentConfiguration = nil
	rt.notify()
}

// PresentDetour sets the detour's initial route.
func (rt *Router[R]) PresentDetour(r AnyRoute) {
	rt.state.Detour = r
	rt.notify()
}

// DismissDetour clears the detour route.
func (rt *Router[R]) DismissDetour() {
	if rt.state.Detour == nil {
		return
	}
	rt.state.Detour = nil
	rt.notify()
}

// PushChild appends c to the pushed-children list, splicing it into this
// router's stack.
func (rt *Router[R]) PushChild(c AnyCoordinator) {
	rt.state.PushedChildren = append(rt.state.PushedChildren, c)
	rt.notify()
}

// PopChild drops the last pushed child. No-op if there are none.
func (rt *Router[R]) PopChild() {
	n := len(rt.state.PushedChildren)
	if n == 0 {
		return
	}
	rt.state.PushedChildren = rt.state.PushedChildren[:n-1]
	rt.notify()
}

// PopChildIfLast drops the last pushed child only if it is c. Reports
// whether it was dropped.
func (rt *Router[R]) PopChildIfLast(c AnyCoordinator) bool {
	n := len(rt.state.PushedChildren)
	if n == 0 || rt.state.PushedChildren[n-1] != c {
		return false
	}
	rt.state.PushedChildren = rt.state.PushedChildren[:n-1]
	rt.notify()
	return true
}

// SetRoot replaces the root route and clears the stack.
func (rt *Router[R]) SetRoot(r R) {
	rt.state.Root = r
	rt.state.Stack = nil
	rt.notify()
}

// ResetToRoot clears the stack, keeping the current root.
func (rt *Router[R]) ResetToRoot() {
	rt.PopToRoot()
}

// UpdateModalIdealHeight sets the ideal height of the current detent
// configuration, creating one if none exists.
func (rt *Router[R]) UpdateModalIdealHeight(h float64) {
	rt.detents().IdealHeight = h
	rt.notify()
}

// UpdateModalMinHeight sets the minimum height of the current detent
// configuration, creating one if none exists.
func (rt *Router[R]) UpdateModalMinHeight(h float64) {
	rt.detents().MinHeight = h
	rt.notify()
}

// UpdateModalSelectedDetent sets the selected detent name, creating a detent
// configuration if none exists.
func (rt *Router[R]) UpdateModalSelectedDetent(name string) {
	rt.detents().SelectedDetent = name
	rt.notify()
}

func (rt *Router[R]) detents() *DetentConfig {
	if rt.state.ModalDetentConfiguration == nil {
		rt.state.ModalDetentConfiguration = &DetentConfig{}
	}
	return rt.state.ModalDetentConfiguration
}
