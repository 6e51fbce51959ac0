package advisory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedCompleter returns the scripted errors in order, then text.
type scriptedCompleter struct {
	errs    []error
	text    string
	calls   int
	prompts []string
}

func (c *scriptedCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	c.calls++
	c.prompts = append(c.prompts, prompt)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if c.calls <= len(c.errs) {
		return "", c.errs[c.calls-1]
	}
	return c.text, nil
}

func testConfig(retries int) Config {
	return Config{MaxRetries: retries, InitialBackoff: time.Millisecond, BreakerFailures: 3, BreakerTimeout: time.Minute}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAdvise_Success(t *testing.T) {
	c := &scriptedCompleter{text: "Revenue is healthy."}
	a := newAdvisor(c, testConfig(2), quietLogger())

	text, err := a.Advise(context.Background(), `{"totalRevenue":"500"}`)
	require.NoError(t, err)
	assert.Equal(t, "Revenue is healthy.", text)
	assert.Equal(t, 1, c.calls)
	assert.Contains(t, c.prompts[0], `{"totalRevenue":"500"}`)
}

func TestAdvise_RetriesTransientFailures(t *testing.T) {
	c := &scriptedCompleter{errs: []error{errors.New("connection reset"), errors.New("502")}, text: "ok"}
	a := newAdvisor(c, testConfig(2), quietLogger())

	text, err := a.Advise(context.Background(), "{}")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, 3, c.calls)
}

func TestAdvise_GivesUpAfterMaxRetries(t *testing.T) {
	boom := errors.New("connection reset")
	c := &scriptedCompleter{errs: []error{boom, boom, boom, boom}, text: "never"}
	a := newAdvisor(c, testConfig(1), quietLogger())

	_, err := a.Advise(context.Background(), "{}")
	assert.ErrorIs(t, err, apperrors.ErrUnavailable)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, c.calls)
}

func TestAdvise_EmptyOutputIsNotRetried(t *testing.T) {
	c := &scriptedCompleter{}
	a := newAdvisor(c, testConfig(3), quietLogger())

	_, err := a.Advise(context.Background(), "{}")
	assert.ErrorIs(t, err, apperrors.ErrUnavailable)
	assert.Equal(t, 1, c.calls)
}

func TestAdvise_CanceledContextIsNotRetried(t *testing.T) {
	c := &scriptedCompleter{text: "never"}
	a := newAdvisor(c, testConfig(3), quietLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Advise(ctx, "{}")
	assert.ErrorIs(t, err, apperrors.ErrUnavailable)
	assert.Equal(t, 1, c.calls)
	assert.Equal(t, gobreaker.StateClosed, a.breaker.State())
}

func TestAdvise_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	boom := errors.New("provider down")
	c := &scriptedCompleter{errs: []error{boom, boom, boom, boom, boom}, text: "never"}
	a := newAdvisor(c, testConfig(0), quietLogger())

	for i := 0; i < 3; i++ {
		_, err := a.Advise(context.Background(), "{}")
		require.ErrorIs(t, err, boom)
	}
	assert.Equal(t, gobreaker.StateOpen, a.breaker.State())

	_, err := a.Advise(context.Background(), "{}")
	assert.ErrorIs(t, err, apperrors.ErrUnavailable)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 3, c.calls)
}

func TestRetryable(t *testing.T) {
	assert.False(t, retryable(context.Canceled))
	assert.False(t, retryable(context.DeadlineExceeded))
	assert.True(t, retryable(errors.New("connection reset")))
}
