package navigation_test

import (
	"testing"

	navErrors "github.com/go-drift/flow/pkg/errors"
	"github.com/go-drift/flow/pkg/navigation"
	"github.com/google/go-cmp/cmp"
)

// tb2Route is Tab2's own route type: Tab2 is a plain pushed-child container
// whose content (Unlock) is a separate coordinator, never Tab2 itself.
type tb2Route string

func (r tb2Route) Identifier() string { return string(r) }

// buildMainTabTree assembles MainTab{tab1..tab5}, where tab2 hosts an Unlock
// child coordinator with a registered success modal: the tree shape shared
// by the end-to-end scenario tests in this file.
func buildMainTabTree() (mainTab *navigation.Coordinator[mtRoute], tab2 *navigation.Coordinator[tb2Route], unlock *navigation.Coordinator[ulRoute], successModal *navigation.Coordinator[ulRoute], tab5 *navigation.Coordinator[t5Route]) {
	root := navigation.NewTabCoordinator(mtRoute("mainTab"), fnHandler[mtRoute]{
		handles: map[mtRoute]navigation.Navigation{
			"tab1": navigation.TabSwitch(0),
			"tab2": navigation.TabSwitch(1),
			"tab3": navigation.TabSwitch(2),
			"tab4": navigation.TabSwitch(3),
			"tab5": navigation.TabSwitch(4),
		},
	}, nil)
	tab1 := navigation.NewCoordinator(tb1Route("tab1"), leafHandler[tb1Route](), nil)
	tab2c := navigation.NewCoordinator(tb2Route("tab2root"), leafHandler[tb2Route](), nil)
	unlockC := navigation.NewCoordinator(ulRoute("startUnlock"), fnHandler[ulRoute]{
		handles: map[ulRoute]navigation.Navigation{
			"loading": navigation.Push(),
			"failure": navigation.Push(),
			"success": navigation.Modal(),
		},
	}, nil)
	successModalC := navigation.NewCoordinator(ulRoute("success"), leafHandler[ulRoute](), nil)
	unlockC.AddModalCoordinator(successModalC)
	tab2c.AddChild(unlockC)
	tab3 := navigation.NewCoordinator(tb3Route("tab3"), leafHandler[tb3Route](), nil)
	tab4 := navigation.NewCoordinator(tb4Route("tab4"), leafHandler[tb4Route](), nil)
	tab5c := navigation.NewCoordinator(t5Route("tab5root"), leafHandler[t5Route](), nil)

	root.AddChild(tab1)
	root.AddChild(tab2c)
	root.AddChild(tab3)
	root.AddChild(tab4)
	root.AddChild(tab5c)

	return root, tab2c, unlockC, successModalC, tab5c
}

// Scenario 1: deep link into tab + modal from an unrelated tab.
func TestScenarioDeepLinkIntoTabAndModal(t *testing.T) {
	mainTab, tab2, unlock, successModal, _ := buildMainTabTree()

	if !mainTab.Navigate(ulRoute("success"), nil) {
		t.Fatal("expected navigate(UnlockRoute.success) to succeed")
	}
	if got := mainTab.Router().State().SelectedTab; got != 1 {
		t.Fatalf("SelectedTab = %d, want 1", got)
	}
	if pushed := tab2.Router().State().PushedChildren; len(pushed) != 1 || pushed[0] != navigation.AnyCoordinator(unlock) {
		t.Fatalf("tab2.pushedChildren = %v, want [Unlock]", pushed)
	}
	if len(unlock.Router().State().Stack) != 0 {
		t.Fatalf("Unlock.router.stack = %v, want empty", unlock.Router().State().Stack)
	}
	if unlock.CurrentModal() != successModal {
		t.Fatalf("Unlock.currentModalCoordinator = %v, want %v", unlock.CurrentModal(), successModal)
	}
	if presented := unlock.Router().State().Presented; presented == nil || *presented != "success" {
		t.Fatalf("Unlock.router.state.presented = %v, want success", presented)
	}
}

// Scenario 2: cross-type smart back issued from inside the presented modal.
func TestScenarioCrossTypeSmartBackFromModal(t *testing.T) {
	mainTab, tab2, unlock, successModal, _ := buildMainTabTree()
	mainTab.Navigate(ulRoute("success"), nil)

	if !successModal.Navigate(mtRoute("tab3"), nil) {
		t.Fatal("expected navigate(MainTabRoute.tab3) from the modal to succeed")
	}
	if unlock.CurrentModal() != nil {
		t.Fatal("expected the modal to be dismissed")
	}
	if len(tab2.Router().State().PushedChildren) != 0 {
		t.Fatalf("tab2.pushedChildren = %v, want cleared", tab2.Router().State().PushedChildren)
	}
	if len(tab2.Router().State().Stack) != 0 {
		t.Fatalf("tab2.stack = %v, want empty", tab2.Router().State().Stack)
	}
	if got := mainTab.Router().State().SelectedTab; got != 2 {
		t.Fatalf("SelectedTab = %d, want 2", got)
	}
}

// Scenario 3: a detour preserves the presenting coordinator's own stack.
func TestScenarioDetourPreservesContext(t *testing.T) {
	mainTab, _, unlock, _, tab5 := buildMainTabTree()
	mainTab.Navigate(ulRoute("loading"), nil) // deep link into tab2, selecting it
	unlock.Go(ulRoute("failure"))

	want := []ulRoute{"loading", "failure"}
	if diff := cmp.Diff(want, unlock.Router().State().Stack); diff != "" {
		t.Fatalf("setup: unlock stack mismatch (-want +got):\n%s", diff)
	}

	unlock.PresentDetour(tab5, t5Route("batteryStatus"))
	if diff := cmp.Diff(want, unlock.Router().State().Stack); diff != "" {
		t.Fatalf("after presentDetour, unlock stack mismatch (-want +got):\n%s", diff)
	}
	if got := unlock.Router().State().Detour; got == nil || got.Identifier() != "batteryStatus" {
		t.Fatalf("unlock.router.detour = %v, want batteryStatus", got)
	}
	if got := mainTab.Router().State().SelectedTab; got != 1 {
		t.Fatalf("SelectedTab = %d, want 1 (unaffected by the detour)", got)
	}

	unlock.DismissDetour()
	if diff := cmp.Diff(want, unlock.Router().State().Stack); diff != "" {
		t.Fatalf("after dismissDetour, unlock stack mismatch (-want +got):\n%s", diff)
	}
	if unlock.Router().State().Detour != nil {
		t.Fatal("expected the detour to be cleared")
	}
}

// Scenario 4: validation atomicity for a route nothing in the tree handles.
func TestScenarioValidationAtomicity(t *testing.T) {
	c := &collector{}
	navErrors.SetHandler(c)
	t.Cleanup(navErrors.Reset)

	mainTab, _, unlock, _, tab5 := buildMainTabTree()
	mainTab.Navigate(ulRoute("loading"), nil)
	unlock.Go(ulRoute("failure"))
	unlock.PresentDetour(tab5, t5Route("batteryStatus"))
	unlock.DismissDetour()

	before := append([]ulRoute(nil), unlock.Router().State().Stack...)

	if unlock.Navigate(xRoute("x"), nil) {
		t.Fatal("navigating to an unhandled route must report false")
	}
	if len(c.errs) != 1 || c.errs[0].Kind != navErrors.KindNavigationFailed {
		t.Fatalf("expected one NavigationFailed error, got %v", c.errs)
	}
	if diff := cmp.Diff(before, unlock.Router().State().Stack); diff != "" {
		t.Fatalf("unlock stack must be unchanged (-want +got):\n%s", diff)
	}
	if unlock.CurrentModal() != nil {
		t.Fatal("no modal should appear after a failed validation")
	}
	if unlock.Router().State().Detour != nil {
		t.Fatal("no detour should appear after a failed validation")
	}
}

// Scenario 5: FlowOrchestrator logout/login cycle swaps the active flow and
// never reuses an instance across transitions.
func TestScenarioFlowOrchestratorLogoutCycle(t *testing.T) {
	var app *navigation.Coordinator[apRoute]
	var logins []*navigation.Coordinator[loRoute]

	appHandler := fnHandler[apRoute]{
		flowChanges: func(r navigation.AnyRoute) bool {
			return r.Identifier() == "tabRoot" || r.Identifier() == "login"
		},
		handleFlow: func(r navigation.AnyRoute) bool {
			switch r.Identifier() {
			case "tabRoot":
				mainTab := navigation.NewTabCoordinator(mtRoute("mainTab"), leafHandler[mtRoute](), nil)
				app.TransitionToFlow(mainTab, apRoute("tabRoot"))
				return true
			case "login":
				login := navigation.NewCoordinator(loRoute("login"), leafHandler[loRoute](), nil)
				logins = append(logins, login)
				app.TransitionToFlow(login, apRoute("login"))
				return true
			}
			return false
		},
	}
	app = navigation.NewFlowOrchestrator(apRoute("bootstrap"), appHandler, nil)

	bootstrapLogin := navigation.NewCoordinator(loRoute("login"), leafHandler[loRoute](), nil)
	logins = append(logins, bootstrapLogin)
	app.TransitionToFlow(bootstrapLogin, apRoute("login"))

	if !bootstrapLogin.Navigate(apRoute("tabRoot"), nil) {
		t.Fatal("expected Login's navigate(AppRoute.tabRoot) to succeed")
	}
	if bootstrapLogin.Parent() != nil {
		t.Fatal("the previous Login must be detached from the tree")
	}
	mainTab1, ok := app.CurrentFlow().(*navigation.Coordinator[mtRoute])
	if !ok {
		t.Fatal("expected CurrentFlow to be the new MainTab")
	}
	if app.Router().State().Root != "tabRoot" {
		t.Fatalf("App.router.root = %v, want tabRoot", app.Router().State().Root)
	}
	if len(app.Router().State().Stack) != 0 {
		t.Fatalf("App.router.stack = %v, want empty", app.Router().State().Stack)
	}

	if !mainTab1.Navigate(apRoute("login"), nil) {
		t.Fatal("expected navigate(AppRoute.login) to succeed")
	}
	if len(logins) != 2 {
		t.Fatalf("expected a second Login instance to be built, got %d", len(logins))
	}
	if logins[0] == logins[1] {
		t.Fatal("the new Login instance must differ from the previous one")
	}
	if app.CurrentFlow() != logins[1] {
		t.Fatalf("CurrentFlow = %v, want the newest Login instance", app.CurrentFlow())
	}
	if mainTab1.Parent() != nil {
		t.Fatal("the previous MainTab must be detached from the tree")
	}
}

// Scenario 6: a Replace navigation prevents back navigation to the replaced route.
func TestScenarioReplacePreventsBack(t *testing.T) {
	root := navigation.NewCoordinator(mtRoute("root"), fnHandler[mtRoute]{
		handles: map[mtRoute]navigation.Navigation{
			"a": navigation.Push(),
			"b": navigation.Replace(),
		},
	}, nil)
	root.Go(mtRoute("a"))
	if !root.Go(mtRoute("b")) {
		t.Fatal("expected the replace navigation to succeed")
	}
	if diff := cmp.Diff([]mtRoute{"b"}, root.Router().State().Stack); diff != "" {
		t.Fatalf("stack mismatch (-want +got):\n%s", diff)
	}
	root.Pop()
	if len(root.Router().State().Stack) != 0 {
		t.Fatalf("stack after pop = %v, want empty (not [a])", root.Router().State().Stack)
	}
}
