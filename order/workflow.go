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
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	goset "github.com/deckarep/golang-set/v2"
	"github.com/flowchartsman/retry"

	"github.com/tochemey/serialactor/log"
)

const (
	// DefaultPaymentAttempts is the number of times a payment is tried
	DefaultPaymentAttempts = 1
	// DefaultRetryInitialDelay is the first backoff between payment attempts
	DefaultRetryInitialDelay = 10 * time.Millisecond
	// DefaultRetryMaxDelay caps the backoff between payment attempts
	DefaultRetryMaxDelay = time.Second
)

// Workflow fulfills orders against a stock: check availability, take the
// payment, ship the goods and confirm by email.
//
// Buy is an actor.Behavior. Run through an actor, the check and the
// shipment of an order are never interleaved with another order, so the
// stock cannot be oversold.
type Workflow struct {
	checker  AvailabilityChecker
	payments PaymentProcessor
	shipper  Shipper
	notifier Notifier
	delayer  Delayer
	logger   log.Logger

	paymentAttempts   int
	retryInitialDelay time.Duration
	retryMaxDelay     time.Duration

	fulfilled goset.Set[string]
	rejected  goset.Set[string]
}

// NewWorkflow creates a Workflow. Collaborators that are not set through
// options are the simulated ones, without delay unless WithDelayer is given.
func NewWorkflow(opts ...Option) *Workflow {
	w := &Workflow{
		delayer:           NoDelay{},
		logger:            log.DefaultLogger,
		paymentAttempts:   DefaultPaymentAttempts,
		retryInitialDelay: DefaultRetryInitialDelay,
		retryMaxDelay:     DefaultRetryMaxDelay,
		fulfilled:         goset.NewSet[string](),
		rejected:          goset.NewSet[string](),
	}

	for _, opt := range opts {
		opt.Apply(w)
	}

	if w.checker == nil {
		w.checker = &StockChecker{Delayer: w.delayer}
	}
	if w.payments == nil {
		w.payments = &SimulatedPayments{Delayer: w.delayer, Logger: w.logger}
	}
	if w.shipper == nil {
		w.shipper = &StockShipper{Delayer: w.delayer}
	}
	if w.notifier == nil {
		w.notifier = &LogNotifier{Delayer: w.delayer, Logger: w.logger}
	}
	return w
}

// Buy fulfills a single order.
//
// It fails with ErrInvalidOrder when the order is malformed and with
// ErrOrderAlreadyFulfilled when its ID went through before. When the stock
// does not cover the order, the order is recorded as rejected and Buy
// returns nil without taking the payment. Collaborator errors are returned
// wrapped with the failing step.
func (w *Workflow) Buy(ctx context.Context, order *Order, stock Stock) error {
	return w.buy(ctx, order, stock, noLock{})
}

// Fulfilled returns the IDs of the fulfilled orders
func (w *Workflow) Fulfilled() []string {
	return w.fulfilled.ToSlice()
}

// Rejected returns the IDs of the orders rejected for insufficient stock
func (w *Workflow) Rejected() []string {
	return w.rejected.ToSlice()
}

// IsFulfilled reports whether the given order ID has been fulfilled
func (w *Workflow) IsFulfilled(orderID string) bool {
	return w.fulfilled.Contains(orderID)
}

// buy runs the workflow steps. stockLock guards each step that touches the
// stock, one step at a time.
func (w *Workflow) buy(ctx context.Context, order *Order, stock Stock, stockLock sync.Locker) error {
	if order == nil {
		return ErrInvalidOrder
	}

	if err := order.Validate(); err != nil {
		return err
	}

	if w.fulfilled.Contains(order.ID) {
		return ErrOrderAlreadyFulfilled
	}

	logger := w.logger.With("order", order.ID)

	stockLock.Lock()
	available, err := w.checker.CheckAvailability(ctx, order.Items, stock)
	stockLock.Unlock()
	if err != nil {
		return fmt.Errorf("check availability: %w", err)
	}

	if !available {
		w.rejected.Add(order.ID)
		logger.Info("order rejected: insufficient stock")
		return nil
	}

	if err := w.pay(ctx, order.Payment); err != nil {
		return fmt.Errorf("process payment: %w", err)
	}

	stockLock.Lock()
	err = w.shipper.ShipGoods(ctx, order.Items, stock)
	stockLock.Unlock()
	if err != nil {
		return fmt.Errorf("ship goods: %w", err)
	}

	if err := w.notifier.SendConfirmation(ctx, order.UserEmail); err != nil {
		return fmt.Errorf("send confirmation: %w", err)
	}

	w.fulfilled.Add(order.ID)
	logger.Infof("order fulfilled, total %.2f", order.Total())
	return nil
}

// pay processes the payment, retrying with backoff until it succeeds, the
// attempts are exhausted or the payment is declined
func (w *Workflow) pay(ctx context.Context, payment PaymentDetails) error {
	retrier := retry.NewRetrier(w.paymentAttempts, w.retryInitialDelay, w.retryMaxDelay)
	return retrier.RunContext(ctx, func(ctx context.Context) error {
		err := w.payments.ProcessPayment(ctx, payment)
		if errors.Is(err, ErrPaymentDeclined) {
			return retry.Stop(err)
		}
		return err
	})
}

// noLock is the sync.Locker used when the caller already serializes Buy
type noLock struct{}

func (noLock) Lock()   {}
func (noLock) Unlock() {}
