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

package metric

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ActorMetric defines the actor instrumentation
type ActorMetric struct {
	// Specifies the total number of messages processed
	processedCount metric.Int64Counter
	// Specifies the total number of messages whose behavior failed
	failureCount metric.Int64Counter
	// Specifies the processing duration of a message in milliseconds
	receivedDuration metric.Float64Histogram
	// Specifies the number of messages waiting in the mailbox
	mailboxSize metric.Int64UpDownCounter

	attributes metric.MeasurementOption
}

// NewActorMetric creates an instance of ActorMetric. Every measurement is
// tagged with the actor name.
func NewActorMetric(meter metric.Meter, actorName string) (*ActorMetric, error) {
	actorMetric := &ActorMetric{
		attributes: metric.WithAttributes(attribute.String("actor.name", actorName)),
	}

	var err error
	if actorMetric.processedCount, err = meter.Int64Counter(
		"actor_processed_count",
		metric.WithDescription("Total number of messages processed"),
	); err != nil {
		return nil, fmt.Errorf("failed to create processedCount instrument, %w", err)
	}

	if actorMetric.failureCount, err = meter.Int64Counter(
		"actor_failure_count",
		metric.WithDescription("Total number of messages whose behavior failed"),
	); err != nil {
		return nil, fmt.Errorf("failed to create failureCount instrument, %w", err)
	}

	if actorMetric.receivedDuration, err = meter.Float64Histogram(
		"actor_received_duration",
		metric.WithDescription("The latency of the messages processed in milliseconds"),
		metric.WithUnit("ms"),
	); err != nil {
		return nil, fmt.Errorf("failed to create receivedDuration instrument, %w", err)
	}

	if actorMetric.mailboxSize, err = meter.Int64UpDownCounter(
		"actor_mailbox_size",
		metric.WithDescription("Number of messages waiting in the mailbox"),
	); err != nil {
		return nil, fmt.Errorf("failed to create mailboxSize instrument, %w", err)
	}

	return actorMetric, nil
}

// RecordEnqueued accounts for a message entering the mailbox
func (x *ActorMetric) RecordEnqueued(ctx context.Context) {
	x.mailboxSize.Add(ctx, 1, x.attributes)
}

// RecordProcessed accounts for a message leaving the mailbox and being handled
func (x *ActorMetric) RecordProcessed(ctx context.Context, duration time.Duration, failed bool) {
	x.mailboxSize.Add(ctx, -1, x.attributes)
	x.processedCount.Add(ctx, 1, x.attributes)
	x.receivedDuration.Record(ctx, float64(duration)/float64(time.Millisecond), x.attributes)
	if failed {
		x.failureCount.Add(ctx, 1, x.attributes)
	}
}
