package main

import (
	"flag"
	"io"
)

type PlansCommand struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig configLoader
}

func NewPlansCommand(stdout, stderr io.Writer, loadConfig configLoader) *PlansCommand {
	return &PlansCommand{
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: loadConfig,
	}
}

func (c *PlansCommand) Run(args []string) error {
	fs := flag.NewFlagSet("plans", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	catalogPath := fs.String("catalog", "", "catalog file (.toml, .yaml, .yml)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	plans, err := loadCatalog(cfg, *catalogPath)
	if err != nil {
		return err
	}
	printPlans(c.stdout, plans.Plans())
	return nil
}
