package navigation

import "github.com/go-drift/flow/pkg/errors"

// ValidationResult is the outcome of Phase 1 of the navigate algorithm: a
// dry run that walks the same coordinator tree the execution phase would,
// without mutating anything, and either succeeds or carries the error the
// execution phase would have reported.
type ValidationResult struct {
	err *errors.NavigationError
}

// ValidationSuccess reports that the navigation path was found to be valid.
func ValidationSuccess() ValidationResult { return ValidationResult{} }

// ValidationFailure reports that the navigation path could not be resolved,
// for the reason carried by err.
func ValidationFailure(err *errors.NavigationError) ValidationResult {
	return ValidationResult{err: err}
}

// Ok reports whether validation succeeded.
func (v ValidationResult) Ok() bool { return v.err == nil }

// Err returns the failure reason, or nil on success.
func (v ValidationResult) Err() *errors.NavigationError { return v.err }

// validateNavigationPath implements Phase 1 of navigate: the same control
// flow as execute, but read-only throughout. It is entered only from an
// externally issued Navigate call (caller == nil) and recurses through the
// tree from there; every step below mirrors its executing counterpart in
// navigate.go. One difference: modal and detour delegation (steps 2 and 3)
// are skipped here whenever caller is one of this coordinator's children,
// its current modal, or its detour, whereas execute skips them only when
// caller is that modal or detour itself.
func (c *Coordinator[R]) validateNavigationPath(route AnyRoute, caller AnyCoordinator) ValidationResult {
	// 1. Smart navigation: already at route, or route already lives on the
	// stack, or route is the root.
	if r, ok := c.asOwn(route); ok && c.smartNavigationTarget(r) {
		return ValidationSuccess()
	}

	delegatedFromOutside := !c.isOwnOverlayOrChild(caller)

	// 2. Modal delegation.
	if delegatedFromOutside && c.currentModal != nil {
		if res := c.currentModal.validateNavigationPath(route, c); res.Ok() {
			return res
		}
	}

	// 3. Detour delegation.
	if delegatedFromOutside && c.detourCoordinator != nil {
		if res := c.detourCoordinator.validateNavigationPath(route, c); res.Ok() {
			return res
		}
	}

	// 4. Direct handling.
	if r, ok := c.asOwn(route); ok && c.handler.CanHandle(r) {
		return c.validateDirectHandling(r)
	}

	// 5. Child delegation.
	for _, child := range c.children {
		if sameCoordinator(child, caller) || !child.CanNavigate(route) {
			continue
		}
		if res := child.validateNavigationPath(route, c); res.Ok() {
			return res
		}
	}
	for _, modal := range c.modalCoordinators {
		if sameCoordinator(modal, caller) {
			continue
		}
		if modal.CanNavigate(route) {
			return ValidationSuccess()
		}
	}

	// 6. Bubble to parent.
	if c.parentRef == nil {
		if c.handler.CanHandleFlowChange(route) {
			return ValidationSuccess()
		}
		return ValidationFailure(errors.NavigationFailed(c.Identifier(), route.Identifier(), routeTypeName(route),
			"no coordinator in the hierarchy can handle it, and no flow change was offered"))
	}
	return c.parentRef.validateNavigationPath(route, c)
}

// validateDirectHandling mirrors the Modal-kind branch of direct execution:
// a Push, Replace, or TabSwitch route is always reachable once CanHandle
// agrees; a Modal route additionally needs a matching, configured modal
// coordinator.
func (c *Coordinator[R]) validateDirectHandling(route R) ValidationResult {
	nav := c.handler.NavigationType(route)
	if nav.Kind != KindModal {
		return ValidationSuccess()
	}
	if c.currentModal != nil && c.currentModal.Identifier() == route.Identifier() {
		return ValidationSuccess()
	}
	if c.modalMatching(route) != nil {
		return ValidationSuccess()
	}
	return ValidationFailure(errors.ModalCoordinatorNotConfigured(c.Identifier(), route.Identifier(), routeTypeName(route)))
}

// isOwnOverlayOrChild reports whether candidate is one of this coordinator's
// children, its current modal, or its detour — the condition under which
// modal/detour delegation is skipped, since the call is already coming from
// inside one of them.
func (c *Coordinator[R]) isOwnOverlayOrChild(candidate AnyCoordinator) bool {
	if candidate == nil {
		return false
	}
	if sameCoordinator(candidate, c.detourCoordinator) {
		return true
	}
	if c.currentModal != nil && sameCoordinator(candidate, c.currentModal) {
		return true
	}
	for _, child := range c.children {
		if sameCoordinator(candidate, child) {
			return true
		}
	}
	return false
}

// smartNavigationTarget reports whether route is already displayed by this
// coordinator: the current route, the root, or anywhere on the stack.
func (c *Coordinator[R]) smartNavigationTarget(route R) bool {
	state := c.router.State()
	if state.Current() == route {
		return true
	}
	if state.Root == route {
		return true
	}
	return state.IndexOf(route) >= 0
}

func routeTypeName(route AnyRoute) string {
	return typeName(route)
}
