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
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/tochemey/serialactor/log"
)

// Option is the interface that applies a configuration option.
type Option interface {
	// Apply sets the Option value of a config.
	Apply(config *Config)
}

var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(config *Config)

// Apply applies the configuration option
func (f OptionFunc) Apply(c *Config) {
	f(c)
}

// WithLogger sets the logger
func WithLogger(logger log.Logger) Option {
	return OptionFunc(func(config *Config) {
		config.Logger = logger
	})
}

// WithMailboxCapacity bounds the actor mailbox
func WithMailboxCapacity(capacity int) Option {
	return OptionFunc(func(config *Config) {
		config.MailboxCapacity = capacity
	})
}

// WithPaymentRetries sets the payment attempts and the backoff bounds
func WithPaymentRetries(attempts int, initialDelay, maxDelay time.Duration) Option {
	return OptionFunc(func(config *Config) {
		config.PaymentAttempts = attempts
		config.RetryInitialDelay = initialDelay
		config.RetryMaxDelay = maxDelay
	})
}

// WithSimulatedLatency sets the upper bound of each workflow step latency
func WithSimulatedLatency(latency time.Duration) Option {
	return OptionFunc(func(config *Config) {
		config.SimulatedLatency = latency
	})
}

// WithMeterProvider sets the meter provider
func WithMeterProvider(provider metric.MeterProvider) Option {
	return OptionFunc(func(config *Config) {
		config.MeterProvider = provider
	})
}
