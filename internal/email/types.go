package email

import (
	"time"

	"inforreel_backend/internal/models"
)

// Email представляет структуру email сообщения
type Email struct {
	From     string
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData представляет данные для шаблонов писем
type TemplateData map[string]interface{}

// OTPMessage - письмо с одноразовым кодом
type OTPMessage struct {
	Purpose models.OTPPurpose
	Name    string
	Code    string
	TTL     time.Duration
}
