package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"fitrack/internal/types"
)

const (
	showFormatText = "text"
	showFormatJSON = "json"
	showFormatYAML = "yaml"
)

type ShowCommand struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig configLoader
}

func NewShowCommand(stdout, stderr io.Writer, loadConfig configLoader) *ShowCommand {
	return &ShowCommand{
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: loadConfig,
	}
}

func (c *ShowCommand) Run(args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	catalogPath := fs.String("catalog", "", "catalog file (.toml, .yaml, .yml)")
	format := fs.String("format", showFormatText, "output format: text|json|yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("plan id is required")
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	plans, err := loadCatalog(cfg, *catalogPath)
	if err != nil {
		return err
	}
	plan, err := plans.Plan(fs.Arg(0))
	if err != nil {
		return err
	}

	switch strings.ToLower(strings.TrimSpace(*format)) {
	case "", showFormatText:
		writePlanText(c.stdout, plan)
		return nil
	case showFormatJSON:
		encoder := json.NewEncoder(c.stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(plan)
	case showFormatYAML:
		encoder := yaml.NewEncoder(c.stdout)
		encoder.SetIndent(2)
		if err := encoder.Encode(plan); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return errors.New("invalid format: must be text, json or yaml")
	}
}

func writePlanText(out io.Writer, plan types.Plan) {
	fmt.Fprintf(out, "%s (%s)\n", plan.Name, plan.ID)
	if description := strings.TrimSpace(plan.Description); description != "" {
		fmt.Fprintf(out, "\n%s\n", description)
	}
	fmt.Fprintln(out)
	printExercises(out, plan.Exercises)
}
