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

	"github.com/tochemey/serialactor/actor"
	"github.com/tochemey/serialactor/config"
	gerrors "github.com/tochemey/serialactor/errors"
	"github.com/tochemey/serialactor/future"
)

// request is a message handled by the service actor
type request interface {
	handle(ctx context.Context, workflow *Workflow, stock Stock) error
}

// placeOrder runs the workflow for one order
type placeOrder struct {
	order *Order
}

func (r *placeOrder) handle(ctx context.Context, workflow *Workflow, stock Stock) error {
	return workflow.Buy(ctx, r.order, stock)
}

// readStock copies the stock into reply
type readStock struct {
	reply Stock
}

func (r *readStock) handle(_ context.Context, _ *Workflow, stock Stock) error {
	r.reply = stock.Clone()
	return nil
}

// Service fulfills orders one at a time through an actor that owns the
// stock. Orders can be placed from any number of goroutines.
type Service struct {
	workflow *Workflow
	actor    *actor.Actor[request, Stock]
}

// NewService creates a Service owning a copy of the given stock
func NewService(stock Stock, cfg *config.Config, opts ...Option) (*Service, error) {
	if cfg == nil {
		var err error
		if cfg, err = config.New("fulfillment"); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, gerrors.NewConfigurationError(err)
	}

	workflowOpts := []Option{
		WithLogger(cfg.Logger),
		WithDelayer(RandomDelay{Max: cfg.SimulatedLatency}),
		WithPaymentRetries(cfg.PaymentAttempts, cfg.RetryInitialDelay, cfg.RetryMaxDelay),
	}
	workflow := NewWorkflow(append(workflowOpts, opts...)...)

	actorOpts := []actor.Option{
		actor.WithName(cfg.Name),
		actor.WithLogger(cfg.Logger),
		actor.WithMeterProvider(cfg.MeterProvider),
	}
	if cfg.MailboxCapacity > 0 {
		actorOpts = append(actorOpts, actor.WithMailboxCapacity(cfg.MailboxCapacity))
	}

	behavior := func(ctx context.Context, req request, stock Stock) error {
		if req == nil {
			return fmt.Errorf("%w: empty request", ErrInvalidOrder)
		}
		return req.handle(ctx, workflow, stock)
	}

	pid, err := actor.New[request, Stock](behavior, stock.Clone(), actorOpts...)
	if err != nil {
		return nil, err
	}

	return &Service{
		workflow: workflow,
		actor:    pid,
	}, nil
}

// Place queues the order. The returned future settles once the order has
// been fulfilled or rejected, and fails when the workflow fails.
func (s *Service) Place(ctx context.Context, order *Order) future.Future {
	return s.actor.Send(ctx, &placeOrder{order: order})
}

// Stock returns a copy of the stock as of every order placed before the call
func (s *Service) Stock(ctx context.Context) (Stock, error) {
	req := &readStock{}
	if err := s.actor.SendSync(ctx, req); err != nil {
		return nil, err
	}
	return req.reply, nil
}

// Workflow returns the workflow run by the service
func (s *Service) Workflow() *Workflow {
	return s.workflow
}

// Metric returns a snapshot of the service actor activity
func (s *Service) Metric() *actor.Metric {
	return s.actor.Metric()
}

// Stop waits for the queued orders and refuses new ones
func (s *Service) Stop(ctx context.Context) error {
	return s.actor.Stop(ctx)
}
