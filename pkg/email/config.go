package email

// Driver selects the outbound mail implementation.
type Driver string

const (
	DriverSMTP     Driver = "smtp"
	DriverPostmark Driver = "postmark"
	DriverDev      Driver = "dev"
)

// Config holds email service configuration. Only the fields of the selected
// driver are validated.
type Config struct {
	Driver       Driver `env:"MAIL_DRIVER" envDefault:"dev"`
	SenderEmail  string `env:"MAIL_FROM_ADDRESS" envDefault:"no-reply@petpal.local"`
	SupportEmail string `env:"MAIL_SUPPORT_ADDRESS"`

	SMTPHost     string `env:"MAIL_HOST"`
	SMTPPort     int    `env:"MAIL_PORT" envDefault:"587"`
	SMTPUsername string `env:"MAIL_USERNAME"`
	SMTPPassword string `env:"MAIL_PASSWORD"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`

	DevDir string `env:"MAIL_DEV_DIR" envDefault:"./tmp/emails"`
}

// NewFromConfig builds the sender selected by cfg.Driver.
func NewFromConfig(cfg Config) (EmailSender, error) {
	switch cfg.Driver {
	case DriverSMTP:
		return NewSMTPSender(cfg)
	case DriverPostmark:
		return NewPostmarkClient(cfg)
	case DriverDev, "":
		return NewDevSender(cfg.DevDir), nil
	default:
		return nil, ErrUnknownDriver
	}
}
