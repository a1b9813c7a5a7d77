package navigation

import "github.com/go-drift/flow/pkg/errors"

// AnyCoordinator is the type-erased view of a [Coordinator], used wherever a
// coordinator must be stored or addressed from a subtree with a different
// concrete route type: a parent's children list, its modalCoordinators, its
// detourCoordinator.
type AnyCoordinator interface {
	// Navigate attempts to transition the tree rooted at this coordinator
	// (and, by bubbling, its ancestors) to display route. caller is the
	// coordinator that delegated to this one, or nil for an externally
	// issued call. See the package doc for the two-phase algorithm.
	Navigate(route AnyRoute, caller AnyCoordinator) bool

	// CanNavigate reports whether this coordinator or any of its
	// descendants (children, modal coordinators) could resolve route,
	// without mutating anything.
	CanNavigate(route AnyRoute) bool

	// Pop performs this coordinator's context-aware back navigation.
	Pop()

	// Identifier returns the identifier of this coordinator's currently
	// displayed route, used for logging and for the "already displays this
	// route" shortcuts in presentOwnModal/validateDirectHandling. Matching
	// a modal coordinator against a candidate route uses RootIdentifier
	// instead, since a modal's own stack survives dismissal.
	Identifier() string

	validateNavigationPath(route AnyRoute, caller AnyCoordinator) ValidationResult
	parent() AnyCoordinator
	setParent(AnyCoordinator)
	presentationContext() PresentationContext
	setPresentationContext(PresentationContext)
	shouldCleanStateForBubbling() bool
	cleanStateForBubbling()
	dismissModalIfCurrent(child AnyCoordinator)
	dismissDetourIfCurrent(child AnyCoordinator)
	hasMultipleRoutes() bool
	childCount() int
	popChildIfLast(child AnyCoordinator) bool
	preferredEntryKind(route AnyRoute) NavigationKind
}

// Handler supplies the host-defined behavior a [Coordinator] needs to
// interpret its own route type: how to classify a route, how to build a
// deep-link path to it, and optionally how to size a modal or absorb a flow
// change. Coordinator dispatches to Handler for everything route-specific;
// the coordinator itself only ever deals in tree structure.
//
// Embed [BaseHandler] to pick up no-op defaults for the optional methods.
type Handler[R Route] interface {
	// CanHandle reports whether this coordinator (not its children) can
	// directly display route.
	CanHandle(route R) bool

	// NavigationType classifies how route should be applied: pushed,
	// replacing the top of stack, presented modally, or selecting a tab.
	NavigationType(route R) Navigation

	// NavigationPath returns the sequence of intermediate routes, in
	// display order, that must exist on the stack before route itself for
	// a deep link to route to be coherent. Called only when the stack is
	// currently empty; see the package doc's deep-link construction rules.
	// A nil or empty result means route can be reached directly.
	NavigationPath(route R) []R

	// ModalDetentConfiguration returns the sizing hint to use when
	// presenting route as a modal. Returning nil leaves the host's default
	// in place.
	ModalDetentConfiguration(route R) *DetentConfig

	// CanHandleFlowChange reports whether a root coordinator (one with no
	// parent) wants to absorb route as a flow transition rather than
	// letting it fail. Only consulted when route bubbles all the way to a
	// coordinator with no parent.
	CanHandleFlowChange(route AnyRoute) bool

	// HandleFlowChange performs the absorption reported possible by
	// CanHandleFlowChange.
	HandleFlowChange(route AnyRoute) bool

	// TabItem returns host-defined tab-bar metadata for this coordinator, used only
	// when this coordinator is a child of a tab coordinator. The engine
	// never inspects the returned value.
	TabItem() any
}

// BaseHandler provides no-op defaults for [Handler]'s optional methods.
// Embed it in a host Handler implementation to avoid repeating boilerplate
// for the methods that don't apply.
type BaseHandler[R Route] struct{}

func (BaseHandler[R]) NavigationPath(route R) []R                     { return nil }
func (BaseHandler[R]) ModalDetentConfiguration(route R) *DetentConfig { return nil }
func (BaseHandler[R]) CanHandleFlowChange(route AnyRoute) bool        { return false }
func (BaseHandler[R]) HandleFlowChange(route AnyRoute) bool           { return false }
func (BaseHandler[R]) TabItem() any                                   { return nil }

// tabBehavior marks a Coordinator as a tab host: AddChild defaults new
// children's presentationContext to ContextTab, and navigation tries the
// selected tab before scanning the others.
type tabBehavior struct{}

// flowBehavior marks a Coordinator as a flow orchestrator: it owns
// TransitionToFlow, which atomically swaps its single active child subtree
// (currentFlow, e.g. Login vs MainApp) for a new one.
type flowBehavior struct {
	currentFlow AnyCoordinator
}

// Coordinator owns one [Router][R] and a position in the coordinator tree:
// a parent, zero or more children, zero or more modal coordinators, and at
// most one live detour. It implements the universal navigate algorithm
// described in the package doc, dispatching to a [Handler][R] for anything
// specific to its own route type.
//
// The zero value is not usable; construct with [NewCoordinator],
// [NewTabCoordinator], or [NewFlowOrchestrator].
type Coordinator[R Route] struct {
	handler Handler[R]
	router  *Router[R]
	views   ViewFactory[R]

	parentRef AnyCoordinator
	context   PresentationContext

	children          []AnyCoordinator
	modalCoordinators []*Coordinator[R]
	currentModal      *Coordinator[R]
	detourCoordinator AnyCoordinator

	tabs *tabBehavior
	flow *flowBehavior
}

// NewCoordinator creates a coordinator rooted at root, driven by handler.
// views may be nil; a coordinator with no view factory never resolves
// views, only tracks navigation state.
func NewCoordinator[R Route](root R, handler Handler[R], views ViewFactory[R]) *Coordinator[R] {
	return &Coordinator[R]{
		handler: handler,
		router:  NewRouter(root),
		views:   views,
		context: ContextRoot,
	}
}

// NewTabCoordinator creates a coordinator with tab-selection semantics: its
// children are tabs, addressed by [NavigationState.SelectedTab], and its
// navigate algorithm tries the selected tab before scanning the others.
func NewTabCoordinator[R Route](root R, handler Handler[R], views ViewFactory[R]) *Coordinator[R] {
	c := NewCoordinator(root, handler, views)
	c.tabs = &tabBehavior{}
	return c
}

// NewFlowOrchestrator creates a coordinator whose children represent the
// stages of one flow at a time and can be swapped wholesale with
// [Coordinator.TransitionToFlow].
func NewFlowOrchestrator[R Route](root R, handler Handler[R], views ViewFactory[R]) *Coordinator[R] {
	c := NewCoordinator(root, handler, views)
	c.flow = &flowBehavior{}
	return c
}

// SwitchToTab selects tab i by index, validating it against the number of
// attached children and reporting InvalidTabIndex without changing state if
// it is out of range. It is a no-op, with the same validation, on a
// coordinator that is not a tab coordinator.
func (c *Coordinator[R]) SwitchToTab(i int) {
	if i < 0 || i >= len(c.children) {
		errors.Report(errors.InvalidTabIndex(c.Identifier(), i, len(c.children)))
		return
	}
	if c.tabs == nil {
		return
	}
	c.router.SelectTab(i)
}

// Router returns the coordinator's own router, for read access to its
// navigation state and for subscribing to its changes.
func (c *Coordinator[R]) Router() *Router[R] { return c.router }

// Identifier implements AnyCoordinator.
func (c *Coordinator[R]) Identifier() string { return c.router.Current().Identifier() }

// RootIdentifier returns the identifier of this coordinator's root route,
// independent of whatever is currently pushed on top of it. Modal-candidate
// matching uses this instead of Identifier, since a modal coordinator's own
// stack is not cleared on dismissal and Identifier would otherwise reflect
// whatever route the modal last pushed rather than the route it was
// registered under.
func (c *Coordinator[R]) RootIdentifier() string { return c.router.State().Root.Identifier() }

func (c *Coordinator[R]) parent() AnyCoordinator     { return c.parentRef }
func (c *Coordinator[R]) setParent(p AnyCoordinator) { c.parentRef = p }
func (c *Coordinator[R]) childCount() int            { return len(c.children) }

func (c *Coordinator[R]) presentationContext() PresentationContext     { return c.context }
func (c *Coordinator[R]) setPresentationContext(p PresentationContext) { c.context = p }

// Parent returns the coordinator that owns this one as a child, modal, or
// detour, or nil for a root coordinator.
func (c *Coordinator[R]) Parent() AnyCoordinator { return c.parentRef }

// PresentationContext reports how this coordinator is presented by its
// parent. Root coordinators report ContextRoot.
func (c *Coordinator[R]) PresentationContext() PresentationContext { return c.context }

func (c *Coordinator[R]) hasMultipleRoutes() bool {
	return len(c.router.State().Stack) > 0
}

// Children returns this coordinator's attached children, in registration
// (for a tab coordinator, tab) order. The returned slice must not be
// mutated.
func (c *Coordinator[R]) Children() []AnyCoordinator { return c.children }

// CurrentModal returns the coordinator currently presented as a modal, or
// nil.
func (c *Coordinator[R]) CurrentModal() *Coordinator[R] { return c.currentModal }

// Detour returns the coordinator currently presented as a detour, or nil.
func (c *Coordinator[R]) Detour() AnyCoordinator { return c.detourCoordinator }

// Go is the typed, host-facing entry point for navigation: it wraps
// [Coordinator.Navigate] so hosts never have to erase their own route value
// by hand.
func (c *Coordinator[R]) Go(route R) bool {
	return c.Navigate(route, nil)
}

// AddChild attaches child to this coordinator's children. If this
// coordinator is a tab coordinator, child's presentationContext defaults to
// ContextTab and its index among children becomes its tab index; otherwise
// it defaults to ContextPushed, for children later spliced into the stack by
// navigate's child-delegation step.
func (c *Coordinator[R]) AddChild(child AnyCoordinator) {
	if sameCoordinator(child, c) {
		errors.Report(errors.CircularReference(c.Identifier()))
		return
	}
	for _, existing := range c.children {
		if sameCoordinator(existing, child) {
			errors.Report(errors.DuplicateChild(c.Identifier(), child.Identifier()))
			return
		}
	}
	ctx := ContextPushed
	if c.tabs != nil {
		ctx = ContextTab
	}
	child.setParent(c)
	child.setPresentationContext(ctx)
	c.children = append(c.children, child)
}

// RemoveChild detaches child from this coordinator's children and, if it was
// spliced into the router's stack as a pushed child, unsplices it too.
func (c *Coordinator[R]) RemoveChild(child AnyCoordinator) {
	for i, existing := range c.children {
		if sameCoordinator(existing, child) {
			c.children = append(c.children[:i:i], c.children[i+1:]...)
			child.setParent(nil)
			pushed := c.router.state.PushedChildren
			for j, pc := range pushed {
				if sameCoordinator(pc, child) {
					c.router.state.PushedChildren = append(pushed[:j:j], pushed[j+1:]...)
					c.router.notify()
					break
				}
			}
			return
		}
	}
}

// AddModalCoordinator registers modal as a candidate overlay: navigate's
// direct-handling and child-delegation steps may present it when a route's
// Handler.NavigationType resolves to Modal and modal's router root matches.
func (c *Coordinator[R]) AddModalCoordinator(modal *Coordinator[R]) {
	if modal == c {
		errors.Report(errors.CircularReference(c.Identifier()))
		return
	}
	for _, existing := range c.modalCoordinators {
		if existing == modal {
			errors.Report(errors.DuplicateChild(c.Identifier(), modal.Identifier()))
			return
		}
	}
	modal.setParent(c)
	modal.setPresentationContext(ContextModal)
	c.modalCoordinators = append(c.modalCoordinators, modal)
}

// RemoveModalCoordinator unregisters modal. If it is the currently presented
// modal, it is dismissed first.
func (c *Coordinator[R]) RemoveModalCoordinator(modal *Coordinator[R]) {
	if c.currentModal == modal {
		c.dismissCurrentModal()
	}
	for i, existing := range c.modalCoordinators {
		if existing == modal {
			c.modalCoordinators = append(c.modalCoordinators[:i:i], c.modalCoordinators[i+1:]...)
			modal.setParent(nil)
			return
		}
	}
}

// PresentDetour attaches child as a one-shot overlay outside the normal tree
// shape, bypassing the handler/modal-coordinator machinery entirely. A
// detour is never reached by navigate; it is only entered through this call
// and left through [Coordinator.DismissDetour] or through the detour
// coordinator's own [Coordinator.Pop] when it has nothing left to pop.
func (c *Coordinator[R]) PresentDetour(child AnyCoordinator, initialRoute AnyRoute) {
	if sameCoordinator(child, c) {
		errors.Report(errors.CircularReference(c.Identifier()))
		return
	}
	child.setParent(c)
	child.setPresentationContext(ContextDetour)
	c.detourCoordinator = child
	c.router.PresentDetour(initialRoute)
}

// DismissDetour ends the current detour, if any.
func (c *Coordinator[R]) DismissDetour() {
	if c.detourCoordinator != nil {
		c.detourCoordinator.setParent(nil)
		c.detourCoordinator = nil
	}
	c.router.DismissDetour()
}

func (c *Coordinator[R]) dismissCurrentModal() {
	if c.currentModal == nil {
		return
	}
	c.currentModal = nil
	c.router.DismissModal()
}

func (c *Coordinator[R]) dismissModalIfCurrent(child AnyCoordinator) {
	if m, ok := child.(*Coordinator[R]); ok && c.currentModal == m {
		c.dismissCurrentModal()
	}
}

func (c *Coordinator[R]) dismissDetourIfCurrent(child AnyCoordinator) {
	if c.detourCoordinator == child {
		c.DismissDetour()
	}
}

// CanNavigate implements AnyCoordinator: it reports whether this coordinator,
// any of its children, or any of its modal coordinators could resolve route.
func (c *Coordinator[R]) CanNavigate(route AnyRoute) bool {
	if r, ok := c.asOwn(route); ok && c.handler.CanHandle(r) {
		return true
	}
	for _, child := range c.children {
		if child.CanNavigate(route) {
			return true
		}
	}
	for _, modal := range c.modalCoordinators {
		if modal.CanNavigate(route) {
			return true
		}
	}
	return false
}

func (c *Coordinator[R]) asOwn(route AnyRoute) (R, bool) {
	r, ok := route.(R)
	return r, ok
}

func (c *Coordinator[R]) popChildIfLast(child AnyCoordinator) bool {
	return c.router.PopChildIfLast(child)
}

// preferredEntryKind reports how a parent coordinator should bring this one
// up when it is not yet a pushed child: the handler's own classification of
// route if this coordinator directly handles it, or Push as the default for
// reaching into a descendant's subtree.
func (c *Coordinator[R]) preferredEntryKind(route AnyRoute) NavigationKind {
	if r, ok := c.asOwn(route); ok && c.handler.CanHandle(r) {
		return c.handler.NavigationType(r).Kind
	}
	return KindPush
}

func sameCoordinator(a, b AnyCoordinator) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a == b
}

// modalMatching returns the registered modal coordinator whose router root
// identifies route, or nil.
func (c *Coordinator[R]) modalMatching(route AnyRoute) *Coordinator[R] {
	for _, modal := range c.modalCoordinators {
		if modal.RootIdentifier() == route.Identifier() {
			return modal
		}
	}
	return nil
}

// presentModal installs modal as the current modal, presenting displayRoute
// (modal's own root type) with the detent configuration the handler
// requests for it.
func (c *Coordinator[R]) presentModal(modal *Coordinator[R], displayRoute R) {
	c.currentModal = modal
	c.router.Present(displayRoute, c.handler.ModalDetentConfiguration(displayRoute))
}
