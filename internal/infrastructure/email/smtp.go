package email

import (
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/prism-finance/prism/internal/domain/notification"
	"github.com/prism-finance/prism/internal/domain/shared/events"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for email links (e.g., "http://localhost:8080")
}

// Sender delivers built messages. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPEmailService mails every notification.created event to its recipient.
type SMTPEmailService struct {
	config SMTPConfig
	sender Sender
	logger logger.Interface
}

func NewSMTPEmailService(config SMTPConfig, logger logger.Interface) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	return NewSMTPEmailServiceWithSender(config, dialer, logger)
}

func NewSMTPEmailServiceWithSender(config SMTPConfig, sender Sender, logger logger.Interface) *SMTPEmailService {
	return &SMTPEmailService{
		config: config,
		sender: sender,
		logger: logger,
	}
}

// Handler returns the event handler to subscribe on the dispatcher.
func (s *SMTPEmailService) Handler() events.EventHandler {
	return events.NewSimpleEventHandler(notification.EventTypeCreated, s.handle)
}

func (s *SMTPEmailService) handle(event events.DomainEvent) error {
	evt, ok := event.(notification.CreatedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload %T", event)
	}
	if evt.RecipientEmail == "" {
		s.logger.Debugw("skipping notification email, recipient has no address", "user_id", evt.UserID)
		return nil
	}
	return s.SendNotificationEmail(evt)
}

func (s *SMTPEmailService) SendNotificationEmail(evt notification.CreatedEvent) error {
	link := s.targetURL(evt.TargetType, evt.TargetID)

	var htmlBody strings.Builder
	htmlBody.WriteString("<html><body>\n")
	if evt.RecipientName != "" {
		fmt.Fprintf(&htmlBody, "<p>Hello %s,</p>\n", html.EscapeString(evt.RecipientName))
	}
	fmt.Fprintf(&htmlBody, "<h2>%s</h2>\n", html.EscapeString(evt.Title))
	fmt.Fprintf(&htmlBody, "<p>%s</p>\n", html.EscapeString(evt.Message))
	if link != "" {
		fmt.Fprintf(&htmlBody, "<p><a href=\"%s\">Open in Prism</a></p>\n", html.EscapeString(link))
	}
	htmlBody.WriteString("</body></html>")

	plainBody := evt.Title + "\n\n" + evt.Message + "\n"
	if link != "" {
		plainBody += "\n" + link + "\n"
	}

	if err := s.sendEmail(evt.RecipientEmail, evt.Title, htmlBody.String(), plainBody); err != nil {
		s.logger.Warnw("failed to send notification email",
			"notification_id", evt.NotificationID,
			"user_id", evt.UserID,
			"error", err,
		)
		return err
	}

	s.logger.Debugw("notification email sent", "notification_id", evt.NotificationID, "user_id", evt.UserID)
	return nil
}

func (s *SMTPEmailService) targetURL(targetType, targetID string) string {
	if s.config.BaseURL == "" || targetID == "" {
		return ""
	}
	base := strings.TrimRight(s.config.BaseURL, "/")
	switch targetType {
	case "contract":
		return base + "/contracts/" + targetID
	case "document":
		return base + "/documents/" + targetID
	default:
		return ""
	}
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	if s.config.FromName != "" {
		m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	} else {
		m.SetHeader("From", s.config.FromAddress)
	}
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
