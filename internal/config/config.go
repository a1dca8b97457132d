package config

import (
	"errors"

	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the server reads from the environment.
type Config struct {
	MongoURI      string `envconfig:"MONGO_URI" required:"true"`
	MongoDatabase string `envconfig:"MONGO_DATABASE" default:"doctors_portal"`
	Port          string `envconfig:"PORT" default:"5000"`

	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	StripeSecretKey string `envconfig:"STRIPE_SECRET_KEY"`

	SendGridAPIKey string `envconfig:"SENDGRID_API_KEY"`
	EmailFrom      string `envconfig:"EMAIL_FROM"`
	EmailFromName  string `envconfig:"EMAIL_FROM_NAME" default:"Doctors Portal"`

	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
}

func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return c, err
	}
	// envconfig's required tag accepts a variable that is set but
	// empty; fail fast here instead of surfacing later as an opaque
	// mongo or JWT error.
	if c.MongoURI == "" {
		return c, errors.New("MONGO_URI must not be empty")
	}
	if c.JWTSecret == "" {
		return c, errors.New("JWT_SECRET must not be empty")
	}
	return c, nil
}
