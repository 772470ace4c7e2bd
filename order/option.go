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

package order

import (
	"time"

	"github.com/tochemey/serialactor/log"
)

// Option is the interface that applies a Workflow option.
type Option interface {
	// Apply sets the Option value of a Workflow.
	Apply(*Workflow)
}

var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(*Workflow)

// Apply applies the Workflow's option
func (f OptionFunc) Apply(w *Workflow) {
	f(w)
}

// WithAvailabilityChecker sets the availability step
func WithAvailabilityChecker(checker AvailabilityChecker) Option {
	return OptionFunc(func(w *Workflow) {
		w.checker = checker
	})
}

// WithPaymentProcessor sets the payment step
func WithPaymentProcessor(payments PaymentProcessor) Option {
	return OptionFunc(func(w *Workflow) {
		w.payments = payments
	})
}

// WithShipper sets the shipping step
func WithShipper(shipper Shipper) Option {
	return OptionFunc(func(w *Workflow) {
		w.shipper = shipper
	})
}

// WithNotifier sets the confirmation step
func WithNotifier(notifier Notifier) Option {
	return OptionFunc(func(w *Workflow) {
		w.notifier = notifier
	})
}

// WithDelayer sets the latency of the simulated collaborators. It has no
// effect on collaborators set through other options.
func WithDelayer(delayer Delayer) Option {
	return OptionFunc(func(w *Workflow) {
		if delayer != nil {
			w.delayer = delayer
		}
	})
}

// WithLogger sets the logger
func WithLogger(logger log.Logger) Option {
	return OptionFunc(func(w *Workflow) {
		if logger != nil {
			w.logger = logger
		}
	})
}

// WithPaymentRetries sets the number of payment attempts and the backoff
// bounds between them. Attempts below one are ignored.
func WithPaymentRetries(attempts int, initialDelay, maxDelay time.Duration) Option {
	return OptionFunc(func(w *Workflow) {
		if attempts < 1 {
			return
		}
		w.paymentAttempts = attempts
		w.retryInitialDelay = initialDelay
		w.retryMaxDelay = maxDelay
	})
}
