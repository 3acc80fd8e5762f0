package mail

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Miraines/ContactNest/contacts-service/internal/infra/config"
	"gopkg.in/gomail.v2"
)

// SMTPSender delivers the verification and reset mails over SMTP. Links in
// the mail body point at the frontend, which calls back into the API with
// the embedded token and email.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
	origin string
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
		origin: cfg.FrontendOrigin,
	}
}

func (s *SMTPSender) SendVerificationEmail(ctx context.Context, name, email, token string) error {
	link := fmt.Sprintf("%s/user/verify-email?token=%s&email=%s",
		s.origin, url.QueryEscape(token), url.QueryEscape(email))

	body := fmt.Sprintf(`<h4>Hello %s,</h4>
<p>Thank you for signing up! Please confirm your email address by following the link below:</p>
<p><a href="%s">Verify Email</a></p>
<p>If you did not request this email, please ignore it.</p>`, name, link)

	return s.send(ctx, email, "Email Verification", body)
}

func (s *SMTPSender) SendResetPasswordEmail(ctx context.Context, name, email, token string) error {
	link := fmt.Sprintf("%s/user/reset-password?token=%s&email=%s",
		s.origin, url.QueryEscape(token), url.QueryEscape(email))

	body := fmt.Sprintf(`<h4>Hello %s,</h4>
<p>We received a request to reset your password. Follow the link below to proceed:</p>
<p><a href="%s">Reset Password</a></p>
<p>If you did not request a password reset, you can safely ignore this email.</p>`, name, link)

	return s.send(ctx, email, "Reset Your Password", body)
}

// send respects the caller's deadline even though the SMTP dialer itself
// has no context support.
func (s *SMTPSender) send(ctx context.Context, to, subject, html string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	done := make(chan error, 1)
	go func() { done <- s.dialer.DialAndSend(m) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
