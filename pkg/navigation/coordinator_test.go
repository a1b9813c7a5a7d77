package navigation_test

import (
	"testing"

	navErrors "github.com/go-drift/flow/pkg/errors"
	"github.com/go-drift/flow/pkg/navigation"
)

// collector installs itself as the process-wide error handler for the
// duration of a test and records every reported error.
type collector struct {
	errs []*navErrors.NavigationError
}

func (c *collector) HandleNavigationError(err *navErrors.NavigationError) {
	c.errs = append(c.errs, err)
}

func withCollector(t *testing.T) *collector {
	t.Helper()
	c := &collector{}
	navErrors.SetHandler(c)
	t.Cleanup(navErrors.Reset)
	return c
}

func TestAddChildRejectsSelfAndDuplicates(t *testing.T) {
	c := withCollector(t)
	root := navigation.NewCoordinator(mtRoute("root"), leafHandler[mtRoute](), nil)

	root.AddChild(root)
	if len(c.errs) != 1 || c.errs[0].Kind != navErrors.KindCircularReference {
		t.Fatalf("expected one CircularReference error, got %v", c.errs)
	}

	child := navigation.NewCoordinator(ulRoute("child"), leafHandler[ulRoute](), nil)
	root.AddChild(child)
	root.AddChild(child)
	if len(c.errs) != 2 || c.errs[1].Kind != navErrors.KindDuplicateChild {
		t.Fatalf("expected a second DuplicateChild error, got %v", c.errs)
	}
	if len(root.Children()) != 1 {
		t.Fatalf("duplicate add must not double-attach: children = %v", root.Children())
	}
}

func TestRemoveChildUnsplicesPushedChild(t *testing.T) {
	root := navigation.NewCoordinator(mtRoute("root"), leafHandler[mtRoute](), nil)
	child := navigation.NewCoordinator(ulRoute("child"), leafHandler[ulRoute](), nil)
	root.AddChild(child)
	root.Router().PushChild(child)

	if len(root.Router().State().PushedChildren) != 1 {
		t.Fatalf("setup: expected child to be pushed")
	}

	root.RemoveChild(child)
	if len(root.Children()) != 0 {
		t.Fatalf("RemoveChild: children = %v, want empty", root.Children())
	}
	if len(root.Router().State().PushedChildren) != 0 {
		t.Fatalf("RemoveChild: pushedChildren = %v, want empty", root.Router().State().PushedChildren)
	}
	if child.Parent() != nil {
		t.Fatalf("RemoveChild: child.Parent() = %v, want nil", child.Parent())
	}
}

func TestModalCoordinatorLifecycle(t *testing.T) {
	root := navigation.NewCoordinator(mtRoute("root"), leafHandler[mtRoute](), nil)
	modal := navigation.NewCoordinator(mtRoute("sheet"), leafHandler[mtRoute](), nil)

	root.AddModalCoordinator(modal)
	if root.CurrentModal() != nil {
		t.Fatalf("registering a modal coordinator must not present it")
	}

	ok := root.Go(mtRoute("root")) // smart nav to root's own current route: no-op true
	if !ok {
		t.Fatal("navigating to the current route should report true")
	}

	root.RemoveModalCoordinator(modal)
	if modal.Parent() != nil {
		t.Fatalf("RemoveModalCoordinator: modal.Parent() = %v, want nil", modal.Parent())
	}
}

func TestPresentAndDismissDetour(t *testing.T) {
	root := navigation.NewCoordinator(mtRoute("root"), leafHandler[mtRoute](), nil)
	detour := navigation.NewCoordinator(t5Route("batteryStatus"), leafHandler[t5Route](), nil)

	root.PresentDetour(detour, t5Route("batteryStatus"))
	if root.Detour() != detour {
		t.Fatalf("Detour() = %v, want %v", root.Detour(), detour)
	}
	if detour.PresentationContext() != navigation.ContextDetour {
		t.Fatalf("detour.PresentationContext() = %v, want ContextDetour", detour.PresentationContext())
	}
	if root.Router().State().Detour == nil {
		t.Fatal("router state Detour not set")
	}

	root.DismissDetour()
	if root.Detour() != nil {
		t.Fatalf("after DismissDetour: Detour() = %v, want nil", root.Detour())
	}
	if detour.Parent() != nil {
		t.Fatalf("after DismissDetour: detour.Parent() = %v, want nil", detour.Parent())
	}
}

func TestSwitchToTabBoundsChecking(t *testing.T) {
	c := withCollector(t)
	tabRoot := navigation.NewTabCoordinator(mtRoute("tabRoot"), leafHandler[mtRoute](), nil)
	for i := 0; i < 3; i++ {
		tabRoot.AddChild(navigation.NewCoordinator(ulRoute("tab"), leafHandler[ulRoute](), nil))
	}

	tabRoot.SwitchToTab(1)
	if tabRoot.Router().State().SelectedTab != 1 {
		t.Fatalf("SelectedTab = %d, want 1", tabRoot.Router().State().SelectedTab)
	}
	if len(c.errs) != 0 {
		t.Fatalf("valid SwitchToTab must not report an error, got %v", c.errs)
	}

	tabRoot.SwitchToTab(5)
	if len(c.errs) != 1 || c.errs[0].Kind != navErrors.KindInvalidTabIndex {
		t.Fatalf("expected one InvalidTabIndex error, got %v", c.errs)
	}
	if tabRoot.Router().State().SelectedTab != 1 {
		t.Fatalf("out-of-range SwitchToTab must not change state: SelectedTab = %d", tabRoot.Router().State().SelectedTab)
	}
}

func TestPopToAndPopToRoot(t *testing.T) {
	root := navigation.NewCoordinator(mtRoute("root"), fnHandler[mtRoute]{
		handles: map[mtRoute]navigation.Navigation{
			"a": navigation.Push(),
			"b": navigation.Push(),
			"c": navigation.Push(),
		},
	}, nil)
	root.Go(mtRoute("a"))
	root.Go(mtRoute("b"))
	root.Go(mtRoute("c"))

	root.PopTo(mtRoute("b"))
	if got := root.Router().Current(); got != "b" {
		t.Fatalf("after PopTo(b): Current() = %q, want b", got)
	}

	root.PopTo(mtRoute("never-pushed"))
	if got := root.Router().Current(); got != "b" {
		t.Fatalf("PopTo of an unknown route must be a no-op: Current() = %q", got)
	}

	root.PopToRoot()
	if len(root.Router().State().Stack) != 0 {
		t.Fatalf("after PopToRoot: stack = %v, want empty", root.Router().State().Stack)
	}
}

func TestCanNavigateIsRecursiveAndReadOnly(t *testing.T) {
	root := navigation.NewCoordinator(mtRoute("root"), leafHandler[mtRoute](), nil)
	child := navigation.NewCoordinator(ulRoute("child"), fnHandler[ulRoute]{
		handles: map[ulRoute]navigation.Navigation{"deep": navigation.Push()},
	}, nil)
	root.AddChild(child)

	if !root.CanNavigate(ulRoute("deep")) {
		t.Fatal("CanNavigate should find a route handled by a descendant")
	}
	if root.CanNavigate(xRoute("nope")) {
		t.Fatal("CanNavigate should report false for a route nothing can handle")
	}
	if len(root.Router().State().Stack) != 0 || len(child.Router().State().Stack) != 0 {
		t.Fatal("CanNavigate must not mutate any state")
	}
}

func TestPresentationContextShouldShowBackButton(t *testing.T) {
	cases := []struct {
		ctx  navigation.PresentationContext
		want bool
	}{
		{navigation.ContextRoot, false},
		{navigation.ContextTab, false},
		{navigation.ContextPushed, true},
		{navigation.ContextModal, true},
		{navigation.ContextDetour, true},
	}
	for _, tc := range cases {
		if got := tc.ctx.ShouldShowBackButton(); got != tc.want {
			t.Errorf("%v.ShouldShowBackButton() = %v, want %v", tc.ctx, got, tc.want)
		}
	}
}
