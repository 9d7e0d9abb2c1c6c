// Package notify implements the asynchronous email notification dispatcher.
// Jobs are enqueued fire-and-forget: the caller never waits for delivery,
// and delivery failures never surface to the caller.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ferdiebergado/rehistro/internal/config"
	"github.com/ferdiebergado/rehistro/internal/platform/email"
	"github.com/sethvargo/go-retry"
)

var (
	ErrQueueFull = errors.New("notify: queue is full")
	ErrClosed    = errors.New("notify: dispatcher is closed")
)

// Dispatcher enqueues the two fixed notification emails. Both methods
// return an error only when the job cannot be accepted; delivery itself is
// at-least-once attempted with bounded retries and never reported back.
type Dispatcher interface {
	SendVerification(to, code string) error
	SendConfirmation(to string) error
}

type job struct {
	to      string
	subject string
	body    string
}

var _ Dispatcher = &EmailDispatcher{}

type EmailDispatcher struct {
	mailer      email.Mailer
	jobs        chan job
	wg          sync.WaitGroup
	mu          sync.RWMutex
	closed      bool
	codeTTL     time.Duration
	maxRetries  uint64
	retryDelay  time.Duration
	sendTimeout time.Duration
}

func NewEmailDispatcher(mailer email.Mailer, cfg *config.Notify, codeTTL time.Duration) *EmailDispatcher {
	d := &EmailDispatcher{
		mailer:      mailer,
		jobs:        make(chan job, cfg.QueueSize),
		codeTTL:     codeTTL,
		maxRetries:  cfg.MaxRetries,
		retryDelay:  cfg.RetryDelay.Duration,
		sendTimeout: cfg.SendTimeout.Duration,
	}

	for range cfg.Workers {
		d.wg.Add(1)
		go d.worker()
	}

	return d
}

func (d *EmailDispatcher) SendVerification(to, code string) error {
	subject := fmt.Sprintf("Your verification code: %s", code)
	body := fmt.Sprintf(
		"Please use this code to verify your registration: %s. This code is valid for %s.",
		code, d.codeTTL,
	)
	return d.enqueue(job{to: to, subject: subject, body: body})
}

func (d *EmailDispatcher) SendConfirmation(to string) error {
	const (
		subject = "Your account has been activated."
		body    = "Your account has been successfully activated. Thank you for joining us!"
	)
	return d.enqueue(job{to: to, subject: subject, body: body})
}

// enqueue holds the read lock across the channel send so Close cannot
// close the channel while a send is in flight.
func (d *EmailDispatcher) enqueue(j job) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return ErrClosed
	}

	select {
	case d.jobs <- j:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting jobs and waits for the workers to drain the queue.
func (d *EmailDispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.jobs)
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *EmailDispatcher) worker() {
	defer d.wg.Done()
	for j := range d.jobs {
		d.deliver(j)
	}
}

func (d *EmailDispatcher) deliver(j job) {
	backoff := retry.WithMaxRetries(d.maxRetries, retry.NewConstant(d.retryDelay))
	err := retry.Do(context.Background(), backoff, func(_ context.Context) error {
		if err := d.attempt(j); err != nil {
			slog.Warn("email send failed", "subject", j.subject, "reason", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		// Exhausted retries. The job is dropped; the account state is
		// already committed and must not depend on deliverability.
		slog.Error("email dropped after retries", "subject", j.subject, "reason", err)
	}
}

// attempt runs a single send with a hard time limit.
func (d *EmailDispatcher) attempt(j job) error {
	done := make(chan error, 1)
	go func() {
		done <- d.mailer.SendPlain([]string{j.to}, j.subject, j.body)
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(d.sendTimeout):
		return fmt.Errorf("send timed out after %s", d.sendTimeout)
	}
}
