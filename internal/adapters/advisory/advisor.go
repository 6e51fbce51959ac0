// Package advisory talks to the generative-AI model that comments on a company's ledger.
// Calls are retried with exponential backoff and guarded by a circuit breaker so a failing
// provider is not hammered by every insight request.
package advisory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/cenkalti/backoff/v4"
	"github.com/openai/openai-go"
	"github.com/sony/gobreaker"
)

const systemPrompt = `You are an experienced management accountant reviewing a small company's books.
You receive a JSON document with a ledger summary and a profit and loss statement.
Amounts are decimal strings in the company's base currency.
Write a short commentary (at most 8 bullet points) covering profitability, unusual balances
and anything that needs the owner's attention. Do not invent figures that are not in the data.

Ledger data:
%s`

// completer sends a prompt to a model and returns its text output.
type completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Config tunes the retry and breaker behaviour.
type Config struct {
	MaxRetries     int
	InitialBackoff time.Duration
	// BreakerFailures is the number of consecutive failures that opens the breaker.
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

// DefaultConfig returns the settings used in production.
func DefaultConfig(maxRetries int) Config {
	return Config{
		MaxRetries:      maxRetries,
		InitialBackoff:  500 * time.Millisecond,
		BreakerFailures: 5,
		BreakerTimeout:  30 * time.Second,
	}
}

// Advisor implements portssvc.Advisor.
type Advisor struct {
	completer completer
	breaker   *gobreaker.CircuitBreaker
	cfg       Config
	logger    *slog.Logger
}

var _ portssvc.Advisor = (*Advisor)(nil)

func newAdvisor(c completer, cfg Config, logger *slog.Logger) *Advisor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.BreakerFailures == 0 {
		cfg.BreakerFailures = 5
	}
	a := &Advisor{completer: c, cfg: cfg, logger: logger}
	a.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "advisory",
		Timeout: cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		// A caller giving up is not a provider failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				slog.String("breaker", name), slog.String("from", from.String()), slog.String("to", to.String()))
		},
	})
	return a
}

// NewOpenAIAdvisor creates an advisor backed by the OpenAI Responses API.
func NewOpenAIAdvisor(apiKey, model string, cfg Config, logger *slog.Logger) *Advisor {
	return newAdvisor(newOpenAICompleter(apiKey, model), cfg, logger)
}

// Advise asks the model for commentary on contextBlob. Every failure is reported as unavailable.
func (a *Advisor) Advise(ctx context.Context, contextBlob string) (string, error) {
	prompt := fmt.Sprintf(systemPrompt, contextBlob)

	result, err := a.breaker.Execute(func() (interface{}, error) {
		return a.completeWithRetry(ctx, prompt)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			a.logger.WarnContext(ctx, "Advisory request rejected by circuit breaker", slog.String("state", a.breaker.State().String()))
		}
		return "", apperrors.Unavailable("advisory service", err)
	}
	return result.(string), nil
}

func (a *Advisor) completeWithRetry(ctx context.Context, prompt string) (string, error) {
	policy := backoff.NewExponentialBackOff()
	if a.cfg.InitialBackoff > 0 {
		policy.InitialInterval = a.cfg.InitialBackoff
	}
	retries := a.cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}
	b := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(retries)), ctx)

	var text string
	attempt := 0
	op := func() error {
		attempt++
		out, err := a.completer.Complete(ctx, prompt)
		if err != nil {
			if !retryable(err) {
				return backoff.Permanent(err)
			}
			a.logger.DebugContext(ctx, "Advisory attempt failed", slog.Int("attempt", attempt), slog.String("error", err.Error()))
			return err
		}
		if out == "" {
			return backoff.Permanent(errors.New("empty response content"))
		}
		text = out
		return nil
	}
	if err := backoff.Retry(op, b); err != nil {
		return "", err
	}
	return text, nil
}

// retryable reports whether a failed call may succeed if repeated.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= http.StatusInternalServerError
	}
	return true
}
