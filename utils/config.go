package utils

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/errors"
)

const (
	// GridWidth and GridHeight are the fixed board dimensions used by the game
	GridWidth  = 25
	GridHeight = 25
)

// Config holds the configuration for the game
type Config struct {
	Seed        int64  `json:"seed"`        // 0 seeds from entropy
	ConfigFile  string `json:"-"`           // optional JSON file overriding the defaults
	LogFile     string `json:"log_file"`    // log destination while the screen is active
	Menu        bool   `json:"menu"`        // show the command menu under the grid
	Generations int    `json:"generations"` // >0 prints that many generations to stdout and exits
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Seed: 0,
		Menu: true,
	}
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random population (0 picks one)")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "optional JSON config file")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "write logs to this file")
	fs.BoolVar(&c.Menu, "menu", c.Menu, "show the command menu")
	fs.IntVar(&c.Generations, "generations", c.Generations, "print this many generations to stdout and exit")
}

// LoadConfig loads configuration from JSON file on top of base
func LoadConfig(filename string, base Config) (Config, error) {
	config := base

	data, err := os.ReadFile(filename)
	if err != nil {
		return base, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return base, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}
	config.ConfigFile = filename

	return config, nil
}
