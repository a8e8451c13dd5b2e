package email

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/gridironpool/gridiron-pool/internal/platform/resilience"
	"github.com/gridironpool/gridiron-pool/internal/usecase"
)

func TestSMTPSender_BuildsHTMLMessage(t *testing.T) {
	t.Parallel()

	sender := NewSMTPSender(SMTPConfig{
		Host:           "mail.example.com",
		Port:           2525,
		From:           "pool@example.com",
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: false},
	})

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	sender.sendMail = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr = addr
		gotFrom = from
		gotTo = to
		gotMsg = msg
		return nil
	}

	err := sender.Send(context.Background(), "member@example.com", "Week 3 \r\nupdate", "<p>hello</p>")
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}

	if gotAddr != "mail.example.com:2525" {
		t.Fatalf("unexpected addr: %s", gotAddr)
	}
	if gotFrom != "pool@example.com" {
		t.Fatalf("unexpected from: %s", gotFrom)
	}
	if len(gotTo) != 1 || gotTo[0] != "member@example.com" {
		t.Fatalf("unexpected recipients: %v", gotTo)
	}

	msg := string(gotMsg)
	if !strings.Contains(msg, "Subject: Week 3  update\r\n") {
		t.Fatalf("expected sanitized subject header, got:\n%s", msg)
	}
	if !strings.Contains(msg, "Content-Type: text/html") {
		t.Fatalf("expected html content type, got:\n%s", msg)
	}
	if !strings.HasSuffix(msg, "<p>hello</p>") {
		t.Fatalf("expected body at end of message, got:\n%s", msg)
	}
}

func TestSMTPSender_RequiresRecipient(t *testing.T) {
	t.Parallel()

	sender := NewSMTPSender(SMTPConfig{
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: false},
	})
	sender.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("send should not be reached")
		return nil
	}

	err := sender.Send(context.Background(), "  ", "subject", "body")
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSMTPSender_CircuitOpensAfterFailures(t *testing.T) {
	t.Parallel()

	sender := NewSMTPSender(SMTPConfig{
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})
	sender.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("relay refused")
	}

	for i := 0; i < 2; i++ {
		if err := sender.Send(context.Background(), "member@example.com", "s", "b"); err == nil {
			t.Fatalf("expected failure on attempt %d", i+1)
		}
	}

	err := sender.Send(context.Background(), "member@example.com", "s", "b")
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable once circuit opened, got %v", err)
	}
}
