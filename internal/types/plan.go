package types

type Exercise struct {
	ID    string `json:"id" toml:"id" yaml:"id"`
	Image string `json:"image" toml:"image" yaml:"image"`
	Name  string `json:"name" toml:"name" yaml:"name"`
	Sets  int    `json:"sets" toml:"sets" yaml:"sets"`
}

// Plan is one workout in the catalog. Plans are read-only once loaded.
type Plan struct {
	ID          string     `json:"id" toml:"id" yaml:"id"`
	Image       string     `json:"image" toml:"image" yaml:"image"`
	Name        string     `json:"name" toml:"name" yaml:"name"`
	Description string     `json:"description" toml:"description" yaml:"description"`
	Exercises   []Exercise `json:"exercises" toml:"exercises" yaml:"exercises"`
}

// ExerciseList returns a copy of the plan's exercises so callers cannot
// mutate catalog data through route params.
func (p Plan) ExerciseList() []Exercise {
	return CloneExercises(p.Exercises)
}

func CloneExercises(exercises []Exercise) []Exercise {
	if exercises == nil {
		return nil
	}
	return append([]Exercise(nil), exercises...)
}
