package email

import (
	"fmt"
	"net/smtp"

	"github.com/example/coffee-pos/internal/domain/order"
)

// Service sends receipt emails over SMTP.
type Service struct {
	host string
	port string
	from string
}

// NewService creates a new email service.
func NewService(host, port, from string) *Service {
	return &Service{
		host: host,
		port: port,
		from: from,
	}
}

// SendReceipt sends the receipt for a placed order.
func (s *Service) SendReceipt(to string, placed order.Placed) error {
	shortID := placed.OrderID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}
	subject := fmt.Sprintf("Receipt for order %s", shortID)
	body := BuildReceiptBody(placed)
	return s.send(to, subject, body)
}

func (s *Service) send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		s.from, to, subject, body)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	return smtp.SendMail(addr, nil, s.from, []string{to}, []byte(msg))
}
