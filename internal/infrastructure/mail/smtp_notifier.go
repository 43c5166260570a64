package mail

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	gomail "github.com/wneessen/go-mail"

	"github.com/ChumaGrandmaster/chuma-grandmaster-webapp/internal/domain/entities"
	"github.com/ChumaGrandmaster/chuma-grandmaster-webapp/internal/usecase/interfaces"
)

var ErrMissingSMTPHost = errors.New("missing SMTP_HOST")

// SMTPNotifier emails the operator about new quote requests via an
// external relay. Delivery is best-effort; a failed send is logged and
// lost. Auth failures and connection failures are distinguished in the
// log only, the caller sees a single error either way.
//
// Supported env vars:
//   - SMTP_HOST (required unless NOTIFIER_MOCK=true)
//   - SMTP_PORT (default: 587)
//   - SMTP_USERNAME / SMTP_PASSWORD (optional; enables PLAIN auth)
//   - NOTIFY_FROM (default: noreply@localhost)
//   - NOTIFY_TO (default: same as SMTP_USERNAME)
//   - NOTIFIER_MOCK (log the rendered message instead of sending)
type SMTPNotifier struct {
	host     string
	port     int
	username string
	password string
	from     string
	to       string
	mockMode bool
}

var _ interfaces.INotifier = (*SMTPNotifier)(nil)

func NewSMTPNotifierFromEnv() (*SMTPNotifier, error) {
	if isNotifierMockEnabled() {
		log.Printf("[mail][notifier] mock mode enabled")
		return &SMTPNotifier{mockMode: true}, nil
	}

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil, ErrMissingSMTPHost
	}

	port := 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("SMTP_PORT: %w", err)
		}
		port = p
	}

	username := os.Getenv("SMTP_USERNAME")
	n := &SMTPNotifier{
		host:     host,
		port:     port,
		username: username,
		password: os.Getenv("SMTP_PASSWORD"),
		from:     getenvDefault("NOTIFY_FROM", "noreply@localhost"),
		to:       getenvDefault("NOTIFY_TO", username),
	}
	if n.to == "" {
		return nil, errors.New("missing NOTIFY_TO")
	}
	log.Printf("[mail][notifier] SMTP notifier initialized host=%s port=%d to=%s", host, port, n.to)
	return n, nil
}

func (n *SMTPNotifier) NotifyNewQuote(ctx context.Context, q entities.QuoteRequest) error {
	subject := "New quote request from " + q.Name
	body := renderQuoteBody(q)

	if n.mockMode {
		log.Printf("[mail][notifier] mock send subject=%q\n%s", subject, body)
		return nil
	}

	msg := gomail.NewMsg()
	if err := msg.From(n.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(n.to); err != nil {
		return fmt.Errorf("invalid operator address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	opts := []gomail.Option{gomail.WithPort(n.port)}
	if n.username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(n.username),
			gomail.WithPassword(n.password),
		)
	}
	client, err := gomail.NewClient(n.host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Printf("[mail][notifier] %s failure quote_id=%s err=%v", classifyMailError(err), q.ID, err)
		return err
	}
	log.Printf("[mail][notifier] sent quote_id=%s to=%s", q.ID, n.to)
	return nil
}

// classifyMailError tags the failure for diagnostics. Retry behavior is
// identical in every case: there is none.
func classifyMailError(err error) string {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "auth"):
		return "auth"
	case strings.Contains(msg, "dial"), strings.Contains(msg, "connection"):
		return "connection"
	default:
		return "send"
	}
}

// renderQuoteBody builds the plain-text notification from the entity's
// canonical label maps.
func renderQuoteBody(q entities.QuoteRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A new quote request was submitted.\n\n")
	fmt.Fprintf(&b, "Name:     %s\n", q.Name)
	fmt.Fprintf(&b, "Email:    %s\n", q.Email)
	fmt.Fprintf(&b, "Phone:    %s\n", q.Phone)
	if q.Company != "" {
		fmt.Fprintf(&b, "Company:  %s\n", q.Company)
	}
	fmt.Fprintf(&b, "Project:  %s\n", labelOr(entities.ProjectTypeLabels, q.ProjectType))
	fmt.Fprintf(&b, "Budget:   %s\n", labelOr(entities.BudgetLabels, q.Budget))
	fmt.Fprintf(&b, "Timeline: %s\n", labelOr(entities.TimelineLabels, q.Timeline))
	fmt.Fprintf(&b, "\n%s\n", q.Description)
	fmt.Fprintf(&b, "\nSubmitted at %s (id %s)\n", q.CreatedAt.Format("2006-01-02 15:04:05 MST"), q.ID)
	return b.String()
}

func labelOr(set map[string]string, key string) string {
	if l, ok := set[key]; ok {
		return l
	}
	return key
}

func isNotifierMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("NOTIFIER_MOCK")))
	return v == "1" || v == "true" || v == "yes"
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
