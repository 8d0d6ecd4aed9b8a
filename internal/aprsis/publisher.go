package aprsis

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Sender delivers one payload line in a single APRS-IS exchange.
type Sender interface {
	Send(ctx context.Context, line string) error
}

// RetryPolicy bounds how many delivery attempts are made and how long
// to wait between them. It carries no state across Publish calls.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
}

// Publisher wraps a Sender with a bounded retry-with-delay policy.
// Network errors are retried up to the policy limit; anything else
// fails the publish immediately so bugs are not masked by the loop.
type Publisher struct {
	sender Sender
	clock  clockwork.Clock
	logger *zap.SugaredLogger
}

func NewPublisher(sender Sender, clock clockwork.Clock, logger *zap.SugaredLogger) *Publisher {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Publisher{
		sender: sender,
		clock:  clock,
		logger: logger,
	}
}

// Publish sends line through the Sender, retrying per policy. The
// error returned after exhaustion is the last network error seen.
func (p *Publisher) Publish(ctx context.Context, line string, policy RetryPolicy) error {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}

	attempt := 0
	operation := func() error {
		attempt++
		p.logger.Infof("sending APRS packet (attempt %d/%d)", attempt, policy.MaxAttempts)

		err := p.sender.Send(ctx, line)
		if err == nil {
			return nil
		}

		if !IsNetworkError(err) {
			p.logger.Errorf("unexpected error sending APRS packet: %v", err)
			return backoff.Permanent(err)
		}

		p.logger.Errorf("network error on attempt %d: %v", attempt, err)
		return err
	}

	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(policy.Delay), uint64(policy.MaxAttempts-1)),
		ctx,
	)

	if err := backoff.RetryNotifyWithTimer(operation, b, nil, newClockTimer(p.clock)); err != nil {
		p.logger.Errorf("failed to send APRS packet after %d attempts", attempt)
		return err
	}

	p.logger.Info("successfully sent APRS packet")
	return nil
}

// clockTimer adapts a clockwork.Clock to the backoff timer interface
// so tests can drive the retry delay with a fake clock.
type clockTimer struct {
	clock clockwork.Clock
	timer clockwork.Timer
}

func newClockTimer(c clockwork.Clock) *clockTimer {
	return &clockTimer{clock: c}
}

func (t *clockTimer) Start(d time.Duration) {
	if t.timer == nil {
		t.timer = t.clock.NewTimer(d)
		return
	}
	t.timer.Reset(d)
}

func (t *clockTimer) C() <-chan time.Time {
	return t.timer.Chan()
}

func (t *clockTimer) Stop() {
	if t.timer != nil {
		t.timer.Stop()
	}
}
