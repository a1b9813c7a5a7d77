package navigation

import "github.com/go-drift/flow/pkg/errors"

// OpaqueView is whatever the host's view layer produces for a route. The
// engine never inspects it; it only stores and forwards the value a
// [ViewFactory] returns.
type OpaqueView any

// ViewContext describes where in the tree a route is being resolved, for
// hosts whose view factory needs to render a pushed screen differently from
// a modal sheet or a detour overlay.
type ViewContext struct {
	PresentationContext PresentationContext
	Coordinator         AnyCoordinator
}

// ViewFactory builds the host's view for a route. It is the engine's only
// dependency on the view layer; everything else about rendering, widgets,
// and animation is out of scope for this package.
type ViewFactory[R Route] interface {
	// BuildView returns the view for route, or nil if it has none.
	BuildView(route R, ctx ViewContext) OpaqueView
}

// ResolveView asks this coordinator's view factory to build a view for
// route, reporting a ViewCreationFailed error if the factory is configured
// but returns nil. A coordinator with no view factory always returns nil
// without reporting anything: it is tracking navigation state only.
func (c *Coordinator[R]) ResolveView(route R, kind errors.ViewKind) OpaqueView {
	if c.views == nil {
		return nil
	}
	view := c.views.BuildView(route, ViewContext{PresentationContext: c.context, Coordinator: c})
	if view == nil {
		errors.Report(errors.ViewCreationFailed(c.Identifier(), route.Identifier(), routeTypeName(route), kind))
	}
	return view
}
