package config

// App holds process-wide settings shared by every binary.
type App struct {
	Name string `env:"APP_NAME" envDefault:"nudo"`
	Env  string `env:"APP_ENV" envDefault:"development"`
}
