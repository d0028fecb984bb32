package email

// Config holds the email settings. Without Postmark tokens the service falls
// back to DevSender, which writes messages under DevDir.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	PostmarkBaseURL      string `env:"POSTMARK_BASE_URL"`
	SenderEmail          string `env:"SENDER_EMAIL" envDefault:"hola@nudo.studio"`
	SupportEmail         string `env:"SUPPORT_EMAIL" envDefault:"soporte@nudo.studio"`
	StudioEmail          string `env:"STUDIO_EMAIL" envDefault:"taller@nudo.studio"`
	DevDir               string `env:"EMAIL_DEV_DIR" envDefault:".mail"`
}

// UsePostmark reports whether both Postmark tokens are configured.
func (c Config) UsePostmark() bool {
	return c.PostmarkServerToken != "" && c.PostmarkAccountToken != ""
}
