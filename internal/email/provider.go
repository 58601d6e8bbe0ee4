package email

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет простое email сообщение
	Send(msg *Message) error

	// SendTicketReceived отправляет подтверждение приёма тикета поддержки
	SendTicketReceived(to, title string) error

	// Validate проверяет конфигурацию провайдера
	Validate() error
}
