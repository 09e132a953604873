package mail

// SMTPSettings mirrors config.SMTPConfig so the adapter does not import the
// config package.
type SMTPSettings struct {
	Host          string
	Port          int
	User          string
	Password      string
	TLSSkipVerify bool
}
