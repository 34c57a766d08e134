package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/Bipul-Dubey/house-price-predictor/shared/constants"
	"github.com/Bipul-Dubey/house-price-predictor/shared/db"
)

type Config struct {
	Variant   constants.VariantEnum `env:"VARIANT" validate:"required,oneof=open secure"`
	Port      string                `env:"PORT" validate:"required,numeric"`
	ModelPath string                `env:"MODEL_PATH" validate:"required"`
	APIKey    string                `env:"API_KEY" validate:"required_if=Variant secure"`
	LogLevel  string                `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	GinMode   string                `env:"GIN_MODE" validate:"oneof=debug release test"`

	PredictionLogEnabled bool `env:"PREDICTION_LOG_ENABLED"`
	DB                   db.Config
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report env variable names instead of Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("env"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

// Load reads .env (if present) and the process environment for the given
// variant. A missing API_KEY for the secure variant is an error.
func Load(variant constants.VariantEnum) (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{
		Variant:              variant,
		Port:                 db.GetEnv("PORT", "8000"),
		ModelPath:            db.GetEnv("MODEL_PATH", "final_regression_pipeline.json"),
		APIKey:               os.Getenv("API_KEY"),
		LogLevel:             strings.ToLower(db.GetEnv("LOG_LEVEL", "info")),
		GinMode:              db.GetEnv("GIN_MODE", "release"),
		PredictionLogEnabled: db.GetEnvBool("PREDICTION_LOG_ENABLED", false),
		DB:                   db.ConfigFromEnv(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required", "required_if":
			msgs = append(msgs, fmt.Sprintf("missing required env %s", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("invalid value %q for env %s (%s=%s)", fmt.Sprint(fe.Value()), fe.Field(), fe.Tag(), fe.Param()))
		}
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

// loadDotEnv loads ENV_FILE, or .env when unset. A missing default .env is
// not an error; a missing explicit ENV_FILE is.
func loadDotEnv() error {
	path, explicit := os.LookupEnv("ENV_FILE")
	if !explicit || path == "" {
		path = ".env"
		explicit = false
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load env file %s: %w", path, err)
}
