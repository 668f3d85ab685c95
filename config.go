package bounce

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vova616/bounce/internal/log"
)

// Config holds engine and host defaults. Every field is optional in YAML.
type Config struct {
	// Restitution for pairs without an explicit entry.
	DefaultRestitution float64 `yaml:"default_restitution"`
	// Mass given to discs created through the space.
	DefaultMass float64 `yaml:"default_mass"`
	// Radius the host uses when it adds a disc without asking the user.
	DefaultRadius float64 `yaml:"default_radius"`
	// Milliseconds of wall time per simulation time unit.
	TimeScale float64 `yaml:"time_scale"`
	LogLevel  string  `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		DefaultRestitution: DefaultRestitution,
		DefaultMass:        DefaultMass,
		DefaultRadius:      50,
		TimeScale:          10,
		LogLevel:           "info",
	}
}

// LoadConfig decodes YAML on top of DefaultConfig. An empty document yields
// the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

func (c Config) Validate() error {
	if math.IsNaN(c.DefaultRestitution) || math.IsInf(c.DefaultRestitution, 0) {
		return fmt.Errorf("%w: default_restitution %v", ErrInvalidConfig, c.DefaultRestitution)
	}
	if !isPositiveFinite(c.DefaultMass) {
		return fmt.Errorf("%w: default_mass %v", ErrInvalidConfig, c.DefaultMass)
	}
	if !isPositiveFinite(c.DefaultRadius) {
		return fmt.Errorf("%w: default_radius %v", ErrInvalidConfig, c.DefaultRadius)
	}
	if !isPositiveFinite(c.TimeScale) {
		return fmt.Errorf("%w: time_scale %v", ErrInvalidConfig, c.TimeScale)
	}
	if _, ok := log.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// Level returns the parsed log level.
func (c Config) Level() log.Level {
	level, _ := log.ParseLevel(c.LogLevel)
	return level
}

func isPositiveFinite(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}
