package mailer

// Config holds configuration for the SMTP reporter.
type Config struct {
	// Host is the SMTP server host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the SMTP server port.
	Port int `mapstructure:"port" default:"587"`
	// Username authenticates against the SMTP server. Empty disables auth.
	Username string `mapstructure:"username" default:""`
	// Password is the SMTP password.
	Password string `mapstructure:"password" default:""`
	// From is the sender address on outgoing notifications.
	From string `mapstructure:"from" default:"rates@localhost"`
	// FromName is the sender display name.
	FromName string `mapstructure:"from_name" default:"Vendor Rates"`
}
