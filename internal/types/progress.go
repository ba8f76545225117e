package types

// Progress is a point-in-time view of the shared progress counters.
type Progress struct {
	Completed []string `json:"completed"`
	Workouts  int      `json:"workouts"`
	Minutes   float64  `json:"minutes"`
	Calories  float64  `json:"calories"`
}

func (p Progress) IsCompleted(name string) bool {
	for _, completed := range p.Completed {
		if completed == name {
			return true
		}
	}
	return false
}
