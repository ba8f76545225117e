package app

import (
	"testing"

	"fitrack/internal/types"
)

func TestNavigatorPushesAndPops(t *testing.T) {
	nav := NewNavigator(types.HomeRoute{})
	nav.Navigate(types.WorkoutRoute{ID: "0"})
	nav.Navigate(types.FitRoute{})
	if nav.Depth() != 3 || nav.CurrentName() != types.RouteFit {
		t.Fatalf("unexpected stack: depth=%d current=%s", nav.Depth(), nav.CurrentName())
	}
	popped, ok := nav.Back()
	if !ok || popped.RouteName() != types.RouteFit {
		t.Fatalf("expected fit route popped, got %v ok=%v", popped, ok)
	}
	if nav.CurrentName() != types.RouteWorkout {
		t.Fatalf("expected workout on top, got %s", nav.CurrentName())
	}
}

func TestNavigatorBackAtRootIsNoop(t *testing.T) {
	nav := NewNavigator(nil)
	if _, ok := nav.Back(); ok {
		t.Fatalf("expected back at root to be ignored")
	}
	if nav.Depth() != 1 || nav.CurrentName() != types.RouteHome {
		t.Fatalf("expected home root, got depth=%d current=%s", nav.Depth(), nav.CurrentName())
	}
}

func TestNavigatorNavigateToExistingRoutePopsBack(t *testing.T) {
	nav := NewNavigator(types.HomeRoute{})
	nav.Navigate(types.WorkoutRoute{ID: "0"})
	nav.Navigate(types.FitRoute{})
	nav.Navigate(types.RestRoute{})

	popped := nav.Navigate(types.HomeRoute{})
	if len(popped) != 3 {
		t.Fatalf("expected three popped routes, got %d", len(popped))
	}
	if popped[0].RouteName() != types.RouteRest {
		t.Fatalf("expected topmost popped first, got %s", popped[0].RouteName())
	}
	if nav.Depth() != 1 || nav.CurrentName() != types.RouteHome {
		t.Fatalf("expected home only, got depth=%d", nav.Depth())
	}
}

func TestNavigatorReplacesParamsOfExistingRoute(t *testing.T) {
	nav := NewNavigator(types.HomeRoute{})
	nav.Navigate(types.WorkoutRoute{ID: "0"})
	nav.Navigate(types.FitRoute{})
	nav.Navigate(types.WorkoutRoute{ID: "2"})

	route, ok := nav.Current().(types.WorkoutRoute)
	if !ok || route.ID != "2" {
		t.Fatalf("expected workout route with new id, got %#v", nav.Current())
	}
	if nav.Contains(types.RouteFit) {
		t.Fatalf("expected fit route to be popped")
	}
}
