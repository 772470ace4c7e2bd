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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder(t *testing.T) {
	t.Run("NewOrder assigns a unique ID", func(t *testing.T) {
		first := paperOrder(1, 1)
		second := paperOrder(1, 1)
		assert.NotEmpty(t, first.ID)
		assert.NotEqual(t, first.ID, second.ID)
		assert.NoError(t, first.Validate())
	})
	t.Run("Validate reports every violation", func(t *testing.T) {
		order := &Order{Items: []Item{{Quantity: -1, Price: -2}}}
		err := order.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidOrder)
		for _, msg := range []string{
			"order ID is required",
			"user email is required",
			"item 0: ID is required",
			"item 0: quantity must be positive",
			"item 0: price must not be negative",
		} {
			assert.Contains(t, err.Error(), msg)
		}
	})
	t.Run("Total", func(t *testing.T) {
		order := NewOrder("customer@example.com", PaymentDetails{Card: "4111"},
			Item{ID: "1", Price: 52, Quantity: 3},
			Item{ID: "2", Price: 1.5, Quantity: 2})
		assert.InDelta(t, 159.0, order.Total(), 1e-9)
	})
	t.Run("Masked", func(t *testing.T) {
		assert.Equal(t, "************1234", PaymentDetails{Card: "4111 1111 1111 1234"}.Masked())
		assert.Equal(t, "123", PaymentDetails{Card: "123"}.Masked())
	})
	t.Run("Clone", func(t *testing.T) {
		stock := Stock{paperID: 5}
		clone := stock.Clone()
		clone[paperID] = 0
		assert.Equal(t, 5, stock[paperID])

		var empty Stock
		assert.NotNil(t, empty.Clone())
	})
}

func TestDelay(t *testing.T) {
	t.Run("RandomDelay waits less than Max", func(t *testing.T) {
		start := time.Now()
		require.NoError(t, RandomDelay{Max: 20 * time.Millisecond}.Delay(context.Background()))
		assert.Less(t, time.Since(start), time.Second)
	})
	t.Run("RandomDelay stops with the context", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		assert.ErrorIs(t, RandomDelay{Max: time.Hour}.Delay(ctx), context.DeadlineExceeded)
	})
	t.Run("RandomDelay without Max", func(t *testing.T) {
		assert.NoError(t, RandomDelay{}.Delay(context.Background()))
	})
	t.Run("NoDelay", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		assert.NoError(t, NoDelay{}.Delay(ctx))
		cancel()
		assert.ErrorIs(t, NoDelay{}.Delay(ctx), context.Canceled)
	})
}
