package email

// Mailer sends a single email. Implementations are expected to be safe for
// concurrent use; retry policy belongs to the caller.
type Mailer interface {
	SendPlain(to []string, subject, body string) error
}
