package navigation_test

import (
	"github.com/go-drift/flow/pkg/navigation"
)

// mtRoute, ulRoute, t5Route, apRoute, and loRoute are distinct route types
// standing in for the "different coordinator subtrees use different concrete
// route types" model described in the package doc: a test that crosses a
// coordinator boundary (tab to modal, modal to sibling tab, flow to flow)
// exercises AnyRoute erasure exactly the way a host with a real MainTabRoute
// and a real UnlockRoute would.
type mtRoute string

func (r mtRoute) Identifier() string { return string(r) }

type ulRoute string

func (r ulRoute) Identifier() string { return string(r) }

type t5Route string

func (r t5Route) Identifier() string { return string(r) }

type apRoute string

func (r apRoute) Identifier() string { return string(r) }

type loRoute string

func (r loRoute) Identifier() string { return string(r) }

type xRoute string

func (r xRoute) Identifier() string { return string(r) }

// tb1Route, tb3Route, and tb4Route stand in for three plain tabs that never
// need more than a root route of their own, rounding a tab coordinator out
// to five tabs for the deep-link scenarios.
type tb1Route string

func (r tb1Route) Identifier() string { return string(r) }

type tb3Route string

func (r tb3Route) Identifier() string { return string(r) }

type tb4Route string

func (r tb4Route) Identifier() string { return string(r) }

// fnHandler is a navigation.Handler built from closures, so each test can
// describe only the classification rules it actually exercises instead of
// hand-writing a named type per fixture.
type fnHandler[R navigation.Route] struct {
	navigation.BaseHandler[R]
	handles     map[R]navigation.Navigation
	path        map[R][]R
	flowChanges func(navigation.AnyRoute) bool
	handleFlow  func(navigation.AnyRoute) bool
}

func (h fnHandler[R]) CanHandle(r R) bool {
	_, ok := h.handles[r]
	return ok
}

func (h fnHandler[R]) NavigationType(r R) navigation.Navigation {
	return h.handles[r]
}

func (h fnHandler[R]) NavigationPath(r R) []R {
	return h.path[r]
}

func (h fnHandler[R]) CanHandleFlowChange(route navigation.AnyRoute) bool {
	if h.flowChanges == nil {
		return false
	}
	return h.flowChanges(route)
}

func (h fnHandler[R]) HandleFlowChange(route navigation.AnyRoute) bool {
	if h.handleFlow == nil {
		return false
	}
	return h.handleFlow(route)
}

// leafHandler handles nothing directly: a coordinator built with it only
// ever resolves via smart navigation to its own root.
func leafHandler[R navigation.Route]() fnHandler[R] {
	return fnHandler[R]{}
}
