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
	"sync"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// RunUnserialized runs Buy for every order at once against the same stock,
// without an actor in front of the workflow.
//
// Each stock read and write is guarded, so the map is never accessed
// concurrently, but nothing keeps an order's availability check and its
// shipment together. Two orders can both see enough stock and both ship,
// leaving the stock negative. It exists to show what the actor prevents.
//
// The returned error combines the errors of every failed order.
func RunUnserialized(ctx context.Context, workflow *Workflow, stock Stock, orders ...*Order) error {
	var (
		stockLock sync.Mutex
		errs      = make([]error, len(orders))
		group     errgroup.Group
	)

	for index, order := range orders {
		group.Go(func() error {
			errs[index] = workflow.buy(ctx, order, stock, &stockLock)
			return nil
		})
	}

	_ = group.Wait()
	return multierr.Combine(errs...)
}
