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
	"fmt"

	"github.com/tochemey/serialactor/log"
)

// AvailabilityChecker tells whether the stock covers every item
type AvailabilityChecker interface {
	// CheckAvailability returns false when an item requests more than the
	// stock holds. Insufficient stock is not an error.
	CheckAvailability(ctx context.Context, items []Item, stock Stock) (bool, error)
}

// PaymentProcessor charges the payment instrument of an order
type PaymentProcessor interface {
	// ProcessPayment returns an error wrapping ErrPaymentDeclined when the
	// payment must not be retried
	ProcessPayment(ctx context.Context, payment PaymentDetails) error
}

// Shipper ships the items of an order
type Shipper interface {
	// ShipGoods decrements the stock in place
	ShipGoods(ctx context.Context, items []Item, stock Stock) error
}

// Notifier tells the customer the order went through
type Notifier interface {
	SendConfirmation(ctx context.Context, email string) error
}

// StockChecker reads the stock after a simulated lookup delay
type StockChecker struct {
	Delayer Delayer
}

// SimulatedPayments accepts every payment after a simulated delay
type SimulatedPayments struct {
	Delayer Delayer
	Logger  log.Logger
}

// StockShipper removes the shipped quantities from the stock
type StockShipper struct {
	Delayer Delayer
}

// LogNotifier logs the confirmation instead of sending an email
type LogNotifier struct {
	Delayer Delayer
	Logger  log.Logger
}

// enforce compilation error
var (
	_ AvailabilityChecker = (*StockChecker)(nil)
	_ PaymentProcessor    = (*SimulatedPayments)(nil)
	_ Shipper             = (*StockShipper)(nil)
	_ Notifier            = (*LogNotifier)(nil)
)

// CheckAvailability implements AvailabilityChecker.
// An item absent from the stock is unavailable.
func (c *StockChecker) CheckAvailability(ctx context.Context, items []Item, stock Stock) (bool, error) {
	for _, item := range items {
		if item.Quantity > stock[item.ID] {
			return false, nil
		}
	}
	if err := delay(ctx, c.Delayer); err != nil {
		return false, err
	}
	return true, nil
}

// ProcessPayment implements PaymentProcessor
func (p *SimulatedPayments) ProcessPayment(ctx context.Context, payment PaymentDetails) error {
	if payment.Card == "" {
		return fmt.Errorf("%w: no card", ErrPaymentDeclined)
	}
	orDiscard(p.Logger).Infof("processing payment with card %s", payment.Masked())
	return delay(ctx, p.Delayer)
}

// ShipGoods implements Shipper
func (s *StockShipper) ShipGoods(ctx context.Context, items []Item, stock Stock) error {
	for _, item := range items {
		stock[item.ID] -= item.Quantity
	}
	return delay(ctx, s.Delayer)
}

// SendConfirmation implements Notifier
func (n *LogNotifier) SendConfirmation(ctx context.Context, email string) error {
	orDiscard(n.Logger).Infof("sending confirmation email to %s", email)
	return delay(ctx, n.Delayer)
}

func delay(ctx context.Context, delayer Delayer) error {
	if delayer == nil {
		return ctx.Err()
	}
	return delayer.Delay(ctx)
}

func orDiscard(logger log.Logger) log.Logger {
	if logger == nil {
		return log.DiscardLogger
	}
	return logger
}
