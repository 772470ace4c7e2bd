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

package actor

import (
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/multierr"

	gerrors "github.com/tochemey/serialactor/errors"
	"github.com/tochemey/serialactor/internal/validation"
	"github.com/tochemey/serialactor/log"
)

// Option is the interface that applies an Actor option.
type Option interface {
	// Apply sets the Option value of an actor config.
	Apply(cfg *config)
}

var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(cfg *config)

// Apply applies the option
func (f OptionFunc) Apply(cfg *config) {
	f(cfg)
}

// config gathers the settings of an actor before it is built
type config struct {
	name          string
	logger        log.Logger
	mailbox       Mailbox
	meterProvider metric.MeterProvider
	violations    error
}

func newConfig() *config {
	return &config{
		logger: log.DefaultLogger,
	}
}

// Validate reports every invalid setting
func (c *config) Validate() error {
	return validation.New(validation.AllErrors()).
		AddAssertion(c.logger != nil, gerrors.ErrUndefinedLogger).
		AddValidator(validation.Func(func() error { return c.violations })).
		Validate()
}

// WithName sets the actor name used in logs and metrics.
// The default name is the actor ID.
func WithName(name string) Option {
	return OptionFunc(func(cfg *config) {
		cfg.name = name
	})
}

// WithLogger sets the actor logger
func WithLogger(logger log.Logger) Option {
	return OptionFunc(func(cfg *config) {
		cfg.logger = logger
	})
}

// WithMailbox sets a custom mailbox. The default is an UnboundedMailbox.
func WithMailbox(mailbox Mailbox) Option {
	return OptionFunc(func(cfg *config) {
		if mailbox == nil {
			cfg.violations = multierr.Append(cfg.violations, gerrors.ErrUndefinedMailbox)
			return
		}
		cfg.mailbox = mailbox
	})
}

// WithMailboxCapacity bounds the mailbox. Once full, Send fails with
// ErrMailboxFull instead of queueing. The capacity must be at least
// MinMailboxCapacity and is rounded up to the next power of two.
func WithMailboxCapacity(capacity int) Option {
	return OptionFunc(func(cfg *config) {
		if capacity < MinMailboxCapacity {
			cfg.violations = multierr.Append(cfg.violations, gerrors.ErrInvalidMailboxCapacity)
			return
		}
		cfg.mailbox = NewBoundedMailbox(capacity)
	})
}

// WithMeterProvider sets the OpenTelemetry MeterProvider used for the actor
// instruments. The default is the global MeterProvider.
func WithMeterProvider(provider metric.MeterProvider) Option {
	return OptionFunc(func(cfg *config) {
		cfg.meterProvider = provider
	})
}
