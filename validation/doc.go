// Package validation checks configuration structs and command arguments.
//
// Struct validation uses go-playground/validator tags and reports failures
// as INVALID_CONFIG errors:
//
//	type Config struct {
//	    Epsilon float64 `mapstructure:"epsilon" validate:"gt=0,lt=1"`
//	}
//	err := validation.Struct(cfg)
//
// Programmatic validation collects argument problems and reports them as
// a single INVALID_ARGUMENT error:
//
//	err := validation.New().
//	    Finite("x", x).
//	    NonNegative("x", x).
//	    Err()
package validation
