package email

import (
	"context"
	"strings"

	"inforreel_backend/internal/logger"
)

// LogProvider вместо отправки пишет письмо в лог (локальная разработка).
// Тело письма пишется только при verbose, иначе код не попадает в логи.
type LogProvider struct {
	verbose bool
}

func NewLogProvider(verbose bool) *LogProvider {
	return &LogProvider{verbose: verbose}
}

func (p *LogProvider) Send(ctx context.Context, email *Email) error {
	args := []any{
		"to", strings.Join(email.To, ","),
		"subject", email.Subject,
	}
	if p.verbose {
		args = append(args, "body", email.Body)
	}
	logger.CtxInfo(ctx, "email delivered to log", args...)
	return nil
}

func (p *LogProvider) Validate() error {
	return nil
}
