package email

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"

	"github.com/gridironpool/gridiron-pool/internal/platform/logging"
	"github.com/gridironpool/gridiron-pool/internal/platform/resilience"
	"github.com/gridironpool/gridiron-pool/internal/usecase"
)

// SMTPSender delivers league mail through a plain SMTP relay.
type SMTPSender struct {
	addr           string
	from           string
	auth           smtp.Auth
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	sendMail       func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

type SMTPConfig struct {
	Host           string
	Port           int
	Username       string
	Password       string
	From           string
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "localhost"
	}
	port := cfg.Port
	if port <= 0 {
		port = 587
	}

	var auth smtp.Auth
	if strings.TrimSpace(cfg.Username) != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, host)
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &SMTPSender{
		addr:           net.JoinHostPort(host, strconv.Itoa(port)),
		from:           strings.TrimSpace(cfg.From),
		auth:           auth,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
		sendMail:       smtp.SendMail,
	}
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	to = strings.TrimSpace(to)
	if to == "" {
		return fmt.Errorf("%w: recipient address is required", usecase.ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.circuitEnabled {
		if err := s.breaker.Allow(); err != nil {
			s.logger.WarnContext(ctx, "smtp circuit breaker rejected request", "state", s.breaker.State())
			return fmt.Errorf("%w: mail relay is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	msg := buildMessage(s.from, to, subject, htmlBody)
	err := s.sendMail(s.addr, s.auth, s.from, []string{to}, msg)
	if s.circuitEnabled {
		if err != nil {
			s.breaker.RecordFailure()
		} else {
			s.breaker.RecordSuccess()
		}
	}
	if err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	return nil
}

func buildMessage(from, to, subject, htmlBody string) []byte {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.WriteString("From: ")
	buf.WriteString(from)
	buf.WriteString("\r\nTo: ")
	buf.WriteString(to)
	buf.WriteString("\r\nSubject: ")
	buf.WriteString(sanitizeHeader(subject))
	buf.WriteString("\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n")
	buf.WriteString(htmlBody)

	return append([]byte(nil), buf.Bytes()...)
}

// sanitizeHeader strips CRLF so user-supplied subjects cannot inject headers.
func sanitizeHeader(v string) string {
	v = strings.ReplaceAll(v, "\r", " ")
	v = strings.ReplaceAll(v, "\n", " ")
	return strings.TrimSpace(v)
}
