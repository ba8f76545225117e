package types

type RouteName string

const (
	RouteHome    RouteName = "Home"
	RouteWorkout RouteName = "Workout"
	RouteFit     RouteName = "Fit"
	RouteRest    RouteName = "Rest"
)

// Route is a navigation destination together with its params.
type Route interface {
	RouteName() RouteName
}

type HomeRoute struct{}

type WorkoutRoute struct {
	Image     string     `json:"image"`
	Exercises []Exercise `json:"exercises"`
	ID        string     `json:"id"`
}

type FitRoute struct {
	Exercises []Exercise `json:"exercises"`
}

// RestRoute always means "resume the most recent session flow".
type RestRoute struct{}

func (HomeRoute) RouteName() RouteName    { return RouteHome }
func (WorkoutRoute) RouteName() RouteName { return RouteWorkout }
func (FitRoute) RouteName() RouteName     { return RouteFit }
func (RestRoute) RouteName() RouteName    { return RouteRest }
