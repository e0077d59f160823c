package helpers

import (
	"context"
	"strings"
	"sync"

	"inforreel_backend/internal/email"
	"inforreel_backend/internal/models"
)

// SentOTP - перехваченное письмо с кодом
type SentOTP struct {
	To      string
	Message email.OTPMessage
}

// MailCatcher реализует email.Sender и хранит отправленные коды в памяти
type MailCatcher struct {
	mu   sync.Mutex
	sent []SentOTP
	fail error
}

func NewMailCatcher() *MailCatcher {
	return &MailCatcher{}
}

func (m *MailCatcher) SendOTP(ctx context.Context, to string, msg email.OTPMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fail != nil {
		return m.fail
	}
	m.sent = append(m.sent, SentOTP{To: to, Message: msg})
	return nil
}

// FailWith заставляет все следующие отправки возвращать err (nil снимает)
func (m *MailCatcher) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail = err
}

// LastCode - последний код указанной цели для адреса
func (m *MailCatcher) LastCode(to string, purpose models.OTPPurpose) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := len(m.sent) - 1; i >= 0; i-- {
		s := m.sent[i]
		if strings.EqualFold(s.To, to) && s.Message.Purpose == purpose {
			return s.Message.Code, true
		}
	}
	return "", false
}

func (m *MailCatcher) Sent() []SentOTP {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SentOTP(nil), m.sent...)
}
