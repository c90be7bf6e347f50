package app

import (
	"encoding/json"
	"flag"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters shared by the front ends.
type Config struct {
	Sim    string            `json:"sim"`
	Scale  int               `json:"scale"`
	TPS    int               `json:"tps"`
	Seed   int64             `json:"seed"`
	Paused bool              `json:"paused"`
	Log    string            `json:"log"`
	Params map[string]string `json:"params"`

	// File names a JSON file holding defaults for the other fields.
	File string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:    "wireworld",
		Scale:  8,
		TPS:    10,
		Seed:   1,
		Log:    "<root>=WARNING",
		Params: map[string]string{},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.StringVar(&c.Log, "log", c.Log, "logging configuration, e.g. <root>=DEBUG")
	fs.StringVar(&c.File, "config", c.File, "JSON file with default settings")
	fs.Var((*KVList)(&c.Params), "set", "simulation setting in key=value form (repeatable)")
}

// LoadFile overlays the JSON settings stored in filename onto c.
func (c *Config) LoadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %+v", filename)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %+v", filename)
	}
	if c.Params == nil {
		c.Params = map[string]string{}
	}
	return nil
}

// Validate reports settings no front end can run with.
func (c *Config) Validate() error {
	switch {
	case c.Sim == "":
		return errors.New("no simulation selected")
	case c.Scale < 1:
		return errors.Errorf("scale must be at least 1, got %d", c.Scale)
	case c.TPS < 1:
		return errors.Errorf("tps must be at least 1, got %d", c.TPS)
	}
	return nil
}

// Parse binds a fresh Config to fs and parses args. When -config names a
// file its settings are loaded first and flags given on the command line
// take precedence over them.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	c := NewConfig()
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.File != "" {
		merged := NewConfig()
		if err := merged.LoadFile(c.File); err != nil {
			return nil, err
		}
		merged.File = c.File
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "sim":
				merged.Sim = c.Sim
			case "scale":
				merged.Scale = c.Scale
			case "tps":
				merged.TPS = c.TPS
			case "seed":
				merged.Seed = c.Seed
			case "paused":
				merged.Paused = c.Paused
			case "log":
				merged.Log = c.Log
			case "set":
				for k, v := range c.Params {
					merged.Params[k] = v
				}
			}
		})
		c = merged
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// KVList is a repeatable flag collecting key=value settings.
type KVList map[string]string

func (l *KVList) String() string {
	if l == nil {
		return ""
	}
	pairs := make([]string, 0, len(*l))
	for k, v := range *l {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

func (l *KVList) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return errors.Errorf("expected key=value, got %q", value)
	}
	if *l == nil {
		*l = map[string]string{}
	}
	(*l)[key] = strings.TrimSpace(val)
	return nil
}
