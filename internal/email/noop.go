package email

import "castlink_backend/internal/logger"

// NoopProvider используется когда отправка email выключена в конфигурации.
// Все вызовы логируются и завершаются успешно.
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

func (p *NoopProvider) Send(msg *Message) error {
	logger.Debug("email sending disabled, dropping message", "subject", msg.Subject)
	return nil
}

func (p *NoopProvider) SendTicketReceived(to, title string) error {
	logger.Debug("email sending disabled, dropping ticket ack", "to", to, "title", title)
	return nil
}

func (p *NoopProvider) Validate() error {
	return nil
}
