package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"fitrack/internal/catalog"
	"fitrack/internal/config"
	"fitrack/internal/progress"
	"fitrack/internal/session"
	"fitrack/internal/types"
)

type configLoader func() (config.Config, error)

func printPlans(output io.Writer, plans []types.Plan) {
	writer := tabwriter.NewWriter(output, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tEXERCISES\tIMAGE")
	for _, plan := range plans {
		image := plan.Image
		if image == "" {
			image = "-"
		}
		fmt.Fprintf(writer, "%s\t%s\t%d\t%s\n", plan.ID, plan.Name, len(plan.Exercises), image)
	}
	_ = writer.Flush()
}

func printExercises(output io.Writer, exercises []types.Exercise) {
	writer := tabwriter.NewWriter(output, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "#\tNAME\tSETS")
	for i, exercise := range exercises {
		fmt.Fprintf(writer, "%d\t%s\tx%d\n", i+1, exercise.Name, exercise.Sets)
	}
	_ = writer.Flush()
}

// loadCatalog prefers an explicit --catalog flag over the configured path.
func loadCatalog(cfg config.Config, override string) (*catalog.Catalog, error) {
	path := strings.TrimSpace(override)
	if path == "" {
		resolved, err := cfg.CatalogPath()
		if err != nil {
			return nil, err
		}
		path = resolved
	}
	return catalog.Load(path)
}

func newProgressStore(cfg config.Config) (*progress.Store, error) {
	scope, err := progress.ParseCounterScope(cfg.CounterScope())
	if err != nil {
		return nil, err
	}
	return progress.NewStore(progress.Options{
		MinutesPerExercise:  cfg.MinutesPerExercise(),
		CaloriesPerExercise: cfg.CaloriesPerExercise(),
		Scope:               scope,
	}), nil
}

func sessionTiming(cfg config.Config) session.Timing {
	return session.Timing{
		TransitionDelay: cfg.TransitionDelay(),
		RestDuration:    cfg.RestDuration(),
		RestTick:        session.DefaultRestTick,
	}
}

func exitOnErr(label string, err error, stderr io.Writer) {
	if err == nil {
		return
	}
	fmt.Fprintf(stderr, "%s error: %v\n", label, err)
	os.Exit(1)
}
