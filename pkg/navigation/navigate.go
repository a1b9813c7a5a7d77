package navigation

import "github.com/go-drift/flow/pkg/errors"

// Navigate implements AnyCoordinator and is the single entry point for the
// engine's universal navigation algorithm described in the package doc.
//
// When caller is nil, this is an externally issued call: Navigate first runs
// the whole algorithm read-only (Phase 1, validateNavigationPath) and, only
// if that succeeds, runs it again with side effects (Phase 2, execute). When
// caller is non-nil, this is a recursive delegation from inside Phase 2
// itself, already covered by the original call's validation, so Navigate
// goes straight to execute.
func (c *Coordinator[R]) Navigate(route AnyRoute, caller AnyCoordinator) bool {
	if caller == nil {
		result := c.validateNavigationPath(route, nil)
		if !result.Ok() {
			errors.Report(result.Err())
			return false
		}
	}
	return c.execute(route, caller)
}

// execute is Phase 2 of navigate: the same control flow as
// validateNavigationPath, but mutating the tree as it goes. Each numbered
// step below corresponds to the identically numbered step there.
func (c *Coordinator[R]) execute(route AnyRoute, caller AnyCoordinator) bool {
	// 1. Smart navigation.
	if r, ok := c.asOwn(route); ok && c.smartNavigationTarget(r) {
		c.performSmartNavigation(r)
		c.applyCompensatingDismissal(caller)
		return true
	}

	// 2. Modal delegation.
	if c.currentModal != nil && !sameCoordinator(c.currentModal, caller) {
		modal := c.currentModal
		if modal.Navigate(route, c) {
			return true
		}
		c.dismissCurrentModal()
	}

	// 3. Detour delegation.
	if c.detourCoordinator != nil && !sameCoordinator(c.detourCoordinator, caller) {
		detour := c.detourCoordinator
		if detour.Navigate(route, c) {
			return true
		}
		c.DismissDetour()
	}

	// 4. Direct handling.
	if r, ok := c.asOwn(route); ok && c.handler.CanHandle(r) {
		c.executeDirect(r)
		return true
	}

	// 5. Delegate to children.
	var delegated bool
	if c.tabs != nil {
		delegated = c.delegateToChildrenAsTabs(route, caller)
	} else {
		delegated = c.delegateToChildren(route, caller)
	}
	if delegated {
		return true
	}

	// 6. Bubble to parent.
	if c.parentRef == nil {
		if c.handler.CanHandleFlowChange(route) {
			return c.handler.HandleFlowChange(route)
		}
		errors.Report(errors.NavigationFailed(c.Identifier(), route.Identifier(), routeTypeName(route),
			"no coordinator in the hierarchy can handle it, and no flow change was offered"))
		return false
	}
	if c.shouldCleanStateForBubbling() {
		c.cleanStateForBubbling()
	}
	return c.parentRef.Navigate(route, c)
}

// performSmartNavigation moves this coordinator's own stack to display route
// without creating a new stack entry for it: a no-op if it's already
// current, a PopToRoot if it's the root, or a PopTo if it's already on the
// stack.
func (c *Coordinator[R]) performSmartNavigation(route R) {
	state := c.router.State()
	switch {
	case state.Current() == route:
		return
	case state.Root == route:
		c.router.PopToRoot()
	default:
		c.router.PopTo(route)
	}
}

// applyCompensatingDismissal runs after a successful smart navigation to
// undo whatever overlay or pushed-child relationship the caller used to
// reach this coordinator, now that it is no longer needed: the first
// matching case wins.
func (c *Coordinator[R]) applyCompensatingDismissal(caller AnyCoordinator) {
	switch {
	case caller == nil:
		return
	case c.router.PopChildIfLast(caller):
	case sameCoordinator(caller, c.currentModal):
		c.dismissCurrentModal()
	case sameCoordinator(caller, c.detourCoordinator):
		c.DismissDetour()
	case c.context == ContextPushed && c.parentRef != nil:
		c.parentRef.popChildIfLast(c)
	}
}

// executeDirect applies route to this coordinator's own router, according
// to the kind the handler classifies it as.
func (c *Coordinator[R]) executeDirect(route R) {
	nav := c.handler.NavigationType(route)
	switch nav.Kind {
	case KindPush:
		c.buildDeepLinkPath(route)
		c.router.Push(route)
	case KindReplace:
		c.buildDeepLinkPath(route)
		c.router.Replace(route)
	case KindTabSwitch:
		c.router.SelectTab(nav.TabIndex)
	case KindModal:
		c.presentOwnModal(route)
	}
}

// presentOwnModal shows route through one of this coordinator's registered
// modal coordinators, reusing the current one if it already displays route.
func (c *Coordinator[R]) presentOwnModal(route R) {
	if c.currentModal != nil && c.currentModal.Identifier() == route.Identifier() {
		c.currentModal.Navigate(route, c)
		return
	}
	modal := c.modalMatching(route)
	if modal == nil {
		errors.Report(errors.ModalCoordinatorNotConfigured(c.Identifier(), route.Identifier(), routeTypeName(route)))
		return
	}
	c.presentModal(modal, route)
	modal.Navigate(route, c)
}

// delegateToChildren is the non-tab child-delegation step: each child is
// tried in registration order, then each registered modal coordinator is
// tried as a deep-link target in its own right.
func (c *Coordinator[R]) delegateToChildren(route AnyRoute, caller AnyCoordinator) bool {
	for _, child := range c.children {
		if sameCoordinator(child, caller) || !child.CanNavigate(route) {
			continue
		}
		return c.bringUpChild(child, route)
	}
	for _, modal := range c.modalCoordinators {
		if sameCoordinator(modal, caller) || !modal.CanNavigate(route) {
			continue
		}
		return c.presentModalForDescendant(modal, route)
	}
	return false
}

// delegateToChildrenAsTabs is the TabCoordinator override of child
// delegation: the selected tab is tried first so switching away from
// it is never implicit, then the remaining tabs are scanned in order,
// switching to the first one that can resolve route.
//
// Unlike delegateToChildren, a tab is never spliced into pushedChildren: tab
// selection is its own dimension of NavigationState (SelectedTab), distinct
// from the pushed-child stack, so bringing a tab's content into view never
// touches this coordinator's own stack.
func (c *Coordinator[R]) delegateToChildrenAsTabs(route AnyRoute, caller AnyCoordinator) bool {
	selected := c.router.State().SelectedTab
	if selected >= 0 && selected < len(c.children) {
		child := c.children[selected]
		if !sameCoordinator(child, caller) && child.CanNavigate(route) {
			if child.Navigate(route, c) {
				return true
			}
		}
	}
	for i, child := range c.children {
		if i == selected || sameCoordinator(child, caller) || !child.CanNavigate(route) {
			continue
		}
		c.router.SelectTab(i)
		return child.Navigate(route, c)
	}
	return false
}

// bringUpChild delegates route to child, splicing it into this
// coordinator's stack first if it is not already a pushed child and its
// preferred entry kind is not a tab switch.
func (c *Coordinator[R]) bringUpChild(child AnyCoordinator, route AnyRoute) bool {
	if !c.isPushedChild(child) {
		if kind := child.preferredEntryKind(route); kind != KindTabSwitch {
			c.router.PushChild(child)
			child.setParent(c)
			child.setPresentationContext(ContextPushed)
		}
	}
	return child.Navigate(route, c)
}

// presentModalForDescendant presents modal at its own current route so a
// deep link that targets something inside its subtree (not just its root)
// can be delegated onward.
func (c *Coordinator[R]) presentModalForDescendant(modal *Coordinator[R], route AnyRoute) bool {
	c.presentModal(modal, modal.router.Current())
	return modal.Navigate(route, c)
}

func (c *Coordinator[R]) isPushedChild(child AnyCoordinator) bool {
	for _, pc := range c.router.State().PushedChildren {
		if sameCoordinator(pc, child) {
			return true
		}
	}
	return false
}

// shouldCleanStateForBubbling reports whether this coordinator is carrying
// overlay or navigation state that must be torn down before a route it
// cannot handle is offered to its parent. A tab coordinator only ever clears
// its current modal: its stack, pushed children, and detour belong to
// whichever tab is selected, not to the tab coordinator itself, so bubbling
// past it must leave them alone.
func (c *Coordinator[R]) shouldCleanStateForBubbling() bool {
	if c.tabs != nil {
		return c.currentModal != nil
	}
	state := c.router.State()
	return state.Detour != nil || c.currentModal != nil || len(state.Stack) > 0 || len(state.PushedChildren) > 0
}

func (c *Coordinator[R]) cleanStateForBubbling() {
	if c.tabs != nil {
		c.dismissCurrentModal()
		return
	}
	c.DismissDetour()
	c.dismissCurrentModal()
	c.router.PopToRoot()
	for len(c.router.State().PushedChildren) > 0 {
		c.router.PopChild()
	}
}

// Pop performs context-aware back navigation: a pushed child with
// more than one route of its own is popped internally; an exhausted pushed
// child is dropped entirely; and, once this coordinator's own stack and
// pushed children are exhausted, a modal or detour coordinator asks its
// presenter to dismiss it instead of popping nothing.
func (c *Coordinator[R]) Pop() {
	pushed := c.router.State().PushedChildren
	if n := len(pushed); n > 0 {
		last := pushed[n-1]
		if last.hasMultipleRoutes() {
			last.Pop()
		} else {
			c.router.PopChild()
		}
		return
	}
	if len(c.router.State().Stack) == 0 {
		switch c.context {
		case ContextModal:
			if c.parentRef != nil {
				c.parentRef.dismissModalIfCurrent(c)
			}
			return
		case ContextDetour:
			if c.parentRef != nil {
				c.parentRef.dismissDetourIfCurrent(c)
			}
			return
		}
	}
	c.router.Pop()
}

// PopTo truncates this coordinator's own stack so r is its new last element.
// No-op if r is not on the stack.
func (c *Coordinator[R]) PopTo(r R) {
	c.router.PopTo(r)
}

// PopToRoot clears this coordinator's own stack, returning it to its root
// route. Overlays and pushed children are left alone; use Navigate or the
// dismissal operations to tear those down.
func (c *Coordinator[R]) PopToRoot() {
	c.router.PopToRoot()
}

// TransitionToFlow atomically swaps this flow orchestrator's single active
// subtree (e.g. Login vs MainApp) for newFlow, rooted at newRoot: the
// previous flow, if any, is detached; newFlow is attached and becomes the
// current flow; and TransitionToNewFlow resets this coordinator's own router
// to newRoot. It reports a ConfigurationError and does nothing if this
// coordinator was not created with NewFlowOrchestrator.
func (c *Coordinator[R]) TransitionToFlow(newFlow AnyCoordinator, newRoot R) {
	if c.flow == nil {
		errors.Report(errors.ConfigurationError(c.Identifier(), "TransitionToFlow called on a coordinator that is not a flow orchestrator"))
		return
	}
	if c.flow.currentFlow != nil {
		c.RemoveChild(c.flow.currentFlow)
	}
	c.AddChild(newFlow)
	c.flow.currentFlow = newFlow
	c.TransitionToNewFlow(newRoot)
}

// TransitionToNewFlow resets this coordinator's own router to newRoot,
// dismissing any modal or detour it is presenting. It is the public
// operation TransitionToFlow calls on itself once the new flow's subtree is
// already attached; a host may also call it directly on a plain Coordinator
// that is not a flow orchestrator, to rebase its own stack without involving
// child swapping at all.
func (c *Coordinator[R]) TransitionToNewFlow(newRoot R) {
	c.DismissDetour()
	c.dismissCurrentModal()
	c.router.SetRoot(newRoot)
}

// CurrentFlow returns the flow orchestrator's active child subtree, or nil
// if none has been set or this coordinator is not a flow orchestrator.
func (c *Coordinator[R]) CurrentFlow() AnyCoordinator {
	if c.flow == nil {
		return nil
	}
	return c.flow.currentFlow
}
