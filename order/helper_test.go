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
	"testing"
	"time"

	"go.uber.org/atomic"
	"go.uber.org/goleak"

	"github.com/tochemey/serialactor/testkit"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var errTransient = errors.New("payment gateway unavailable")

const paperID = "1722"

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// paperOrder orders the given quantity of A4 paper. n tells the orders
// apart in the collaborator records.
func paperOrder(n, quantity int) *Order {
	return NewOrder(
		fmt.Sprintf("customer%d@example.com", n),
		PaymentDetails{Card: fmt.Sprintf("**** **** **** 123%d", n)},
		Item{ID: paperID, Name: "A4 Paper; 500 sheets; 75 Gsm", Price: 52, Quantity: quantity},
	)
}

// spyPayments records every card it is asked to charge
type spyPayments struct {
	mu    sync.Mutex
	cards []string
	calls atomic.Int64

	// barrier, when set, holds every payment until all parties arrived
	barrier *testkit.Barrier
	// transientFailures is the number of leading calls failing with errTransient
	transientFailures int64
	// err, when set, is returned by every call
	err error
}

func (p *spyPayments) ProcessPayment(ctx context.Context, payment PaymentDetails) error {
	call := p.calls.Inc()
	p.mu.Lock()
	p.cards = append(p.cards, payment.Card)
	p.mu.Unlock()

	if p.barrier != nil {
		if err := p.barrier.Await(ctx); err != nil {
			return err
		}
	}
	if call <= p.transientFailures {
		return errTransient
	}
	return p.err
}

func (p *spyPayments) Cards() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.cards...)
}

// spyShipper ships through StockShipper and records the shipped quantities
type spyShipper struct {
	StockShipper
	shipped atomic.Int64
	err     error
}

func (s *spyShipper) ShipGoods(ctx context.Context, items []Item, stock Stock) error {
	if s.err != nil {
		return s.err
	}
	for _, item := range items {
		s.shipped.Add(int64(item.Quantity))
	}
	return s.StockShipper.ShipGoods(ctx, items, stock)
}

// spyNotifier records every confirmation email
type spyNotifier struct {
	mu     sync.Mutex
	emails []string
}

func (n *spyNotifier) SendConfirmation(_ context.Context, email string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.emails = append(n.emails, email)
	return nil
}

func (n *spyNotifier) Emails() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.emails...)
}
