package distribute

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/distribute/strategy"
)

// Config is the flat, serializable description of a distribution.
//
// The zero value selects MethodBestEffort with SortRetainOrder and is not yet
// valid: best-effort needs a group count. Only the fields relevant to the
// chosen method may be set:
//
//	method       groupCount  minGroupSize     maxGroupSize
//	best_effort  required    must be 0        must be 0
//	even         required    must be 0        must be 0
//	sequential   must be 0   optional, inert  required
//	partial      must be 0   optional (1)     required, >= minGroupSize
//
// Methods and sorting methods are written by name in YAML:
//
//	method: partial
//	sorting: natural_order
//	maxGroupSize: 25
//	minGroupSize: 5
type Config struct {
	// Method selects the distribution strategy.
	Method Method `yaml:"method"`

	// Sorting selects the order elements are put in before partitioning.
	// SortCustom requires a comparator, which cannot be expressed in YAML and
	// is passed to PlanFromConfig.
	Sorting SortingMethod `yaml:"sorting"`

	// GroupCount is the number of groups for best_effort and even.
	GroupCount int `yaml:"groupCount"`

	// MinGroupSize is the minimum group size for partial.
	// Accepted without effect for sequential.
	MinGroupSize int `yaml:"minGroupSize"`

	// MaxGroupSize is the group capacity for sequential and partial.
	MaxGroupSize int `yaml:"maxGroupSize"`
}

// DefaultConfig returns a Config with default values.
//
// Defaults: MethodBestEffort, SortRetainOrder, no sizes. Callers still have
// to supply the size parameter of the chosen method.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		Method:  MethodBestEffort,
		Sorting: SortRetainOrder,
	}
}

// SetDefaults fills defaults that depend on the chosen method.
//
// For MethodPartial an unset MinGroupSize becomes 1. Other fields are left
// untouched so that Validate still reports missing required values.
//
// Parameters:
//   - cfg: Configuration to update in place
func SetDefaults(cfg *Config) {
	if cfg.Method == MethodPartial && cfg.MinGroupSize == 0 {
		cfg.MinGroupSize = 1
	}
}

// Validate checks configuration constraints and returns an error for invalid values.
//
// Returns:
//   - error: Wraps ErrInvalidArgument or ErrUnsupportedStrategy, nil if valid
func (cfg *Config) Validate() error {
	_, err := cfg.Strategy()

	return err
}

// Strategy converts the flat configuration into its typed strategy.
//
// Returns:
//   - strategy.Strategy: Validated strategy for cfg.Method
//   - error: Wraps ErrInvalidArgument or ErrUnsupportedStrategy
func (cfg *Config) Strategy() (strategy.Strategy, error) {
	if !cfg.Sorting.IsValid() {
		return nil, fmt.Errorf("%w: unknown sorting method %s", ErrInvalidArgument, cfg.Sorting)
	}

	return strategy.FromMethod(cfg.Method, cfg.GroupCount, cfg.MinGroupSize, cfg.MaxGroupSize)
}

// ParseConfig decodes a YAML document into a validated Config.
//
// Unknown fields are rejected. An empty document yields ErrInvalidArgument
// because no method parameters are present.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - Config: Decoded configuration with method defaults applied
//   - error: Decoding or validation error
func ParseConfig(data []byte) (Config, error) {
	return LoadConfig(bytes.NewReader(data))
}

// LoadConfig reads a YAML document from r into a validated Config.
//
// Parameters:
//   - r: Source of the YAML document (e.g., an *os.File)
//
// Returns:
//   - Config: Decoded configuration with method defaults applied
//   - error: Decoding or validation error
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		if errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrUnsupportedStrategy) {
			return Config{}, err
		}

		return Config{}, fmt.Errorf("%w: decode config: %w", ErrInvalidArgument, err)
	}

	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
