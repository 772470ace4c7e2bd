/*
 * MIT License
 *
 * Copyright (c) 2022-2025  Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package config

import (
	"errors"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/tochemey/serialactor/actor"
	gerrors "github.com/tochemey/serialactor/errors"
	"github.com/tochemey/serialactor/internal/validation"
	"github.com/tochemey/serialactor/log"
)

var (
	ErrNameRequired            = errors.New("service name is required")
	ErrInvalidMailboxCapacity  = errors.New("mailbox capacity must be zero or at least two")
	ErrInvalidPaymentAttempts  = errors.New("payment attempts must be at least one")
	ErrInvalidRetryBackoff     = errors.New("retry backoff must be positive and initial delay must not exceed max delay")
	ErrInvalidSimulatedLatency = errors.New("simulated latency must not be negative")
)

// Config represents the fulfillment service configuration
type Config struct {
	// Specifies the service name. It names the actor in logs and metrics
	Name string
	// Specifies the logger to use in the service
	Logger log.Logger
	// Specifies the capacity of the actor mailbox. Zero means unbounded,
	// which is the default. A bounded mailbox holds at least two messages
	// and its capacity is rounded up to the next power of two
	MailboxCapacity int
	// Specifies how many times a payment is attempted before the order
	// fails. The default value is 3
	PaymentAttempts int
	// Specifies the first backoff between payment attempts.
	// The default value is 10ms
	RetryInitialDelay time.Duration
	// Specifies the maximum backoff between payment attempts.
	// The default value is 1s
	RetryMaxDelay time.Duration
	// Specifies the upper bound of the latency simulated by each workflow
	// step. Zero disables it, which is the default
	SimulatedLatency time.Duration
	// Specifies the meter provider. The global one is used when nil
	MeterProvider metric.MeterProvider
}

// New creates an instance of Config
func New(name string, options ...Option) (*Config, error) {
	config := &Config{
		Name:              name,
		Logger:            log.DefaultLogger,
		PaymentAttempts:   3,
		RetryInitialDelay: 10 * time.Millisecond,
		RetryMaxDelay:     time.Second,
	}

	// apply the various options
	for _, opt := range options {
		opt.Apply(config)
	}

	if err := config.Validate(); err != nil {
		return nil, gerrors.NewConfigurationError(err)
	}
	return config, nil
}

// Validate checks the configuration and reports every violation
func (c *Config) Validate() error {
	return validation.New(validation.AllErrors()).
		AddAssertion(c.Name != "", ErrNameRequired).
		AddAssertion(c.Logger != nil, gerrors.ErrUndefinedLogger).
		AddAssertion(c.MailboxCapacity == 0 || c.MailboxCapacity >= actor.MinMailboxCapacity, ErrInvalidMailboxCapacity).
		AddAssertion(c.PaymentAttempts >= 1, ErrInvalidPaymentAttempts).
		AddAssertion(c.RetryInitialDelay > 0 && c.RetryInitialDelay <= c.RetryMaxDelay, ErrInvalidRetryBackoff).
		AddAssertion(c.SimulatedLatency >= 0, ErrInvalidSimulatedLatency).
		Validate()
}
