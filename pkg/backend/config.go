package backend

import "time"

// Config points the client at the hosted backend. Email and Password are
// the service account used by the storefront and the seeder.
type Config struct {
	URL            string        `env:"BACKEND_URL"`
	APIKey         string        `env:"BACKEND_API_KEY"`
	Email          string        `env:"BACKEND_EMAIL"`
	Password       string        `env:"BACKEND_PASSWORD"`
	Timeout        time.Duration `env:"BACKEND_TIMEOUT" envDefault:"10s"`
	SignInAttempts int           `env:"BACKEND_SIGNIN_ATTEMPTS" envDefault:"3"`
	SignInDelay    time.Duration `env:"BACKEND_SIGNIN_DELAY" envDefault:"2s"`
}

// Enabled reports whether a backend URL is configured.
func (c Config) Enabled() bool { return c.URL != "" }
