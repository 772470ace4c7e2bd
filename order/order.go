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
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/google/uuid"

	"github.com/tochemey/serialactor/internal/validation"
)

var (
	// ErrInvalidOrder is returned when an order is nil or malformed
	ErrInvalidOrder = errors.New("invalid order")
	// ErrOrderAlreadyFulfilled is returned when an order ID has already been fulfilled
	ErrOrderAlreadyFulfilled = errors.New("order already fulfilled")
	// ErrPaymentDeclined marks a payment failure that must not be retried
	ErrPaymentDeclined = errors.New("payment declined")
)

// Item is a line of an order
type Item struct {
	ID       string
	Name     string
	Price    float64
	Quantity int
}

// PaymentDetails holds the payment instrument of an order
type PaymentDetails struct {
	Card string
}

// Masked returns the card number with every digit but the last four hidden
func (p PaymentDetails) Masked() string {
	digits := strings.ReplaceAll(p.Card, " ", "")
	if len(digits) <= 4 {
		return digits
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// Order is a purchase request
type Order struct {
	ID        string
	Items     []Item
	Payment   PaymentDetails
	UserEmail string
}

// enforce compilation error
var _ validation.Validator = (*Order)(nil)

// NewOrder creates an order with a fresh ID
func NewOrder(email string, payment PaymentDetails, items ...Item) *Order {
	return &Order{
		ID:        uuid.NewString(),
		Items:     items,
		Payment:   payment,
		UserEmail: email,
	}
}

// Total returns the amount due for the order
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Validate checks the order is well-formed. Every violation is reported and
// the returned error matches ErrInvalidOrder.
func (o *Order) Validate() error {
	chain := validation.New(validation.AllErrors()).
		AddAssertion(strings.TrimSpace(o.ID) != "", errors.New("order ID is required")).
		AddAssertion(len(o.Items) > 0, errors.New("order has no items")).
		AddAssertion(strings.TrimSpace(o.UserEmail) != "", errors.New("user email is required"))

	for index, item := range o.Items {
		chain.AddAssertion(item.ID != "", fmt.Errorf("item %d: ID is required", index)).
			AddAssertion(item.Quantity > 0, fmt.Errorf("item %d: quantity must be positive", index)).
			AddAssertion(item.Price >= 0, fmt.Errorf("item %d: price must not be negative", index))
	}

	if err := chain.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}
	return nil
}

// Stock maps an item ID to the quantity on hand
type Stock map[string]int

// Clone returns a copy of the stock
func (s Stock) Clone() Stock {
	if s == nil {
		return Stock{}
	}
	return maps.Clone(s)
}
