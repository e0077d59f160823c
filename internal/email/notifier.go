package email

import (
	"context"
	"fmt"

	"inforreel_backend/internal/models"
)

const (
	TemplateOTPVerification  = "otp_verification"
	TemplateOTPPasswordReset = "otp_password_reset"
)

// Notifier реализует Sender: рендерит письмо с кодом и отдает провайдеру
type Notifier struct {
	provider Provider
	renderer TemplateRenderer
}

func NewNotifier(provider Provider, renderer TemplateRenderer) *Notifier {
	return &Notifier{provider: provider, renderer: renderer}
}

func (n *Notifier) SendOTP(ctx context.Context, to string, msg OTPMessage) error {
	templateName, subject := TemplateOTPVerification, "Your OTP for Email Verification"
	if msg.Purpose == models.OTPPurposePasswordReset {
		templateName, subject = TemplateOTPPasswordReset, "Your OTP for Password Reset"
	}

	seconds := int(msg.TTL.Seconds())
	html, err := n.renderer.Render(templateName, TemplateData{
		"Name":       msg.Name,
		"Code":       msg.Code,
		"TTLSeconds": seconds,
	})
	if err != nil {
		return err
	}

	return n.provider.Send(ctx, &Email{
		To:       []string{to},
		Subject:  subject,
		Body:     fmt.Sprintf("Your OTP is %s. It will expire in %d seconds.", msg.Code, seconds),
		HTMLBody: html,
	})
}
