package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

// Algorithm names accepted by --algo and the config file.
const (
	algoBFS      = "bfs"
	algoDijkstra = "dijkstra"
	algoBoth     = "both"
)

// Output formats accepted by --format and the config file.
const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// ErrInvalidConfig reports a config file that fails validation.
var ErrInvalidConfig = errors.New("cli: invalid config")

// Config holds defaults read from --config.
type Config struct {
	Algorithm string   `toml:"algorithm" validate:"oneof=bfs dijkstra both"`
	MaxCost   *float64 `toml:"max_cost" validate:"omitempty,gte=0"`
	Format    string   `toml:"format" validate:"oneof=dot svg"`
}

// DefaultConfig runs both strategies without a cost limit and renders DOT.
func DefaultConfig() Config {
	return Config{Algorithm: algoBoth, Format: formatDOT}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig reads path over DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: %s: unknown key %s", ErrInvalidConfig, path, undecoded[0])
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var result *multierror.Error
	for _, fe := range verrs {
		result = multierror.Append(result, fmt.Errorf("%w: %s", ErrInvalidConfig, formatFieldError(fe)))
	}

	return result.ErrorOrNil()
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be ≥ %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
