package email

import "context"

// Provider определяет интерфейс транспорта email
type Provider interface {
	// Send отправляет email сообщение
	Send(ctx context.Context, email *Email) error

	// Validate проверяет конфигурацию провайдера
	Validate() error
}

// Sender - то, что нужно сервисам: доставить код пользователю
type Sender interface {
	SendOTP(ctx context.Context, to string, msg OTPMessage) error
}

// TemplateRenderer определяет интерфейс для рендеринга шаблонов
type TemplateRenderer interface {
	// Render рендерит шаблон с данными
	Render(templateName string, data TemplateData) (string, error)
}
