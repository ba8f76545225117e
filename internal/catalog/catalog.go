package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"fitrack/internal/types"
)

//go:embed default_catalog.toml
var defaultCatalogTOML []byte

var (
	ErrPlanNotFound      = errors.New("plan not found")
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

// Catalog is the ordered, read-only list of plans the app offers.
type Catalog struct {
	plans []types.Plan
	index map[string]int
}

type catalogFile struct {
	Plans []types.Plan `toml:"plans" yaml:"plans"`
}

func New(plans []types.Plan) (*Catalog, error) {
	c := &Catalog{
		plans: make([]types.Plan, 0, len(plans)),
		index: make(map[string]int, len(plans)),
	}
	for i, plan := range plans {
		plan.ID = strings.TrimSpace(plan.ID)
		if plan.ID == "" {
			return nil, fmt.Errorf("plan %d: id is required", i)
		}
		if _, dup := c.index[plan.ID]; dup {
			return nil, fmt.Errorf("plan %q: duplicate id", plan.ID)
		}
		for j, exercise := range plan.Exercises {
			if strings.TrimSpace(exercise.Name) == "" {
				return nil, fmt.Errorf("plan %q exercise %d: name is required", plan.ID, j)
			}
			if exercise.Sets < 0 {
				return nil, fmt.Errorf("plan %q exercise %q: sets must not be negative", plan.ID, exercise.Name)
			}
		}
		plan.Exercises = types.CloneExercises(plan.Exercises)
		c.index[plan.ID] = len(c.plans)
		c.plans = append(c.plans, plan)
	}
	return c, nil
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalogTOML, "toml")
}

// Load reads a catalog file. The format follows the extension: .toml,
// .yaml or .yml. An empty path loads the built-in catalog.
func Load(path string) (*Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	c, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

func Parse(data []byte, format string) (*Catalog, error) {
	var file catalogFile
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return New(file.Plans)
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.plans)
}

// Plans returns a copy of the plans in catalog order.
func (c *Catalog) Plans() []types.Plan {
	if c == nil {
		return nil
	}
	out := make([]types.Plan, 0, len(c.plans))
	for _, plan := range c.plans {
		plan.Exercises = plan.ExerciseList()
		out = append(out, plan)
	}
	return out
}

func (c *Catalog) At(i int) (types.Plan, bool) {
	if c == nil || i < 0 || i >= len(c.plans) {
		return types.Plan{}, false
	}
	plan := c.plans[i]
	plan.Exercises = plan.ExerciseList()
	return plan, true
}

func (c *Catalog) Plan(id string) (types.Plan, error) {
	if c == nil {
		return types.Plan{}, ErrPlanNotFound
	}
	i, ok := c.index[strings.TrimSpace(id)]
	if !ok {
		return types.Plan{}, fmt.Errorf("%w: %q", ErrPlanNotFound, id)
	}
	plan, _ := c.At(i)
	return plan, nil
}
