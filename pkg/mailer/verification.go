package mailer

import (
	"context"
	"fmt"
)

// VerificationSender sends the account-verification email. VerifyURL
// is the front-end address the token is appended to; when Enabled is
// false sends are skipped, which leaves accounts unverified (dev only).
type VerificationSender struct {
	Client    *Mailgun
	VerifyURL string
	Enabled   bool
}

func NewVerificationSender(client *Mailgun, verifyURL string, enabled bool) *VerificationSender {
	return &VerificationSender{Client: client, VerifyURL: verifyURL, Enabled: enabled}
}

// SendVerification mails the verification link for token to the given
// address. The link is the only place the token leaves the server
// besides the users row.
func (s *VerificationSender) SendVerification(ctx context.Context, to, token string) error {
	if !s.Enabled {
		return nil
	}
	link := s.VerifyURL + "?token=" + token
	subject := "Verify your Yatra account"
	text := fmt.Sprintf("Welcome to Yatra!\n\nPlease confirm your email address by opening the link below. The link is valid for 24 hours.\n\n%s\n\nIf you did not create an account you can ignore this message.", link)
	html := fmt.Sprintf(`<p>Welcome to Yatra!</p><p>Please confirm your email address by clicking the link below. The link is valid for 24 hours.</p><p><a href="%s">Verify my email</a></p><p>If you did not create an account you can ignore this message.</p>`, link)
	return s.Client.Send(ctx, to, subject, text, html)
}
