package app

import "fitrack/internal/types"

// Navigator is a stack of routes with native-stack semantics: navigating to
// a route already on the stack pops back to it and replaces its params.
type Navigator struct {
	stack []types.Route
}

func NewNavigator(root types.Route) *Navigator {
	if root == nil {
		root = types.HomeRoute{}
	}
	return &Navigator{stack: []types.Route{root}}
}

func (n *Navigator) Current() types.Route {
	return n.stack[len(n.stack)-1]
}

func (n *Navigator) CurrentName() types.RouteName {
	return n.Current().RouteName()
}

func (n *Navigator) Depth() int {
	return len(n.stack)
}

// Navigate goes to route and returns the routes that were popped off the
// stack to get there, topmost first.
func (n *Navigator) Navigate(route types.Route) []types.Route {
	if route == nil {
		return nil
	}
	for i := len(n.stack) - 1; i >= 0; i-- {
		if n.stack[i].RouteName() != route.RouteName() {
			continue
		}
		popped := n.popTo(i)
		n.stack[i] = route
		return popped
	}
	n.stack = append(n.stack, route)
	return nil
}

// Back pops the top route. It is a no-op on the root.
func (n *Navigator) Back() (types.Route, bool) {
	if len(n.stack) <= 1 {
		return nil, false
	}
	top := n.Current()
	n.stack = n.stack[:len(n.stack)-1]
	return top, true
}

func (n *Navigator) Contains(name types.RouteName) bool {
	for _, route := range n.stack {
		if route.RouteName() == name {
			return true
		}
	}
	return false
}

func (n *Navigator) popTo(i int) []types.Route {
	var popped []types.Route
	for j := len(n.stack) - 1; j > i; j-- {
		popped = append(popped, n.stack[j])
	}
	n.stack = n.stack[:i+1]
	return popped
}
