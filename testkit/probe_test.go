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

package testkit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestProbe(t *testing.T) {
	t.Run("With values recorded in order", func(t *testing.T) {
		probe := NewProbe[int](t, WithTimeout(time.Second))
		go func() {
			for i := 1; i <= 3; i++ {
				probe.Record(i)
			}
		}()

		probe.ExpectValue(1)
		probe.ExpectValue(2)
		assert.Equal(t, 3, probe.ExpectAnyValue())
		probe.ExpectNoValue(20 * time.Millisecond)
		assert.Equal(t, []int{1, 2, 3}, probe.Values())
		assert.Equal(t, 3, probe.Len())
	})
	t.Run("Values returns a copy", func(t *testing.T) {
		probe := NewProbe[string](t)
		probe.Record("a")
		values := probe.Values()
		values[0] = "b"
		assert.Equal(t, []string{"a"}, probe.Values())
	})
}

func TestTracker(t *testing.T) {
	t.Run("With overlapping entries", func(t *testing.T) {
		tracker := NewTracker()
		barrier := NewBarrier(4)
		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				leave := tracker.Enter()
				defer leave()
				assert.NoError(t, barrier.Await(context.Background()))
			}()
		}
		wg.Wait()

		assert.EqualValues(t, 4, tracker.Peak())
		assert.EqualValues(t, 0, tracker.Current())
		assert.EqualValues(t, 4, tracker.Entries())
	})
	t.Run("With sequential entries", func(t *testing.T) {
		tracker := NewTracker()
		for i := 0; i < 10; i++ {
			leave := tracker.Enter()
			leave()
		}
		assert.EqualValues(t, 1, tracker.Peak())
		assert.EqualValues(t, 10, tracker.Entries())
	})
}

func TestGate(t *testing.T) {
	t.Run("With gate opened after arrival", func(t *testing.T) {
		gate := NewGate()
		passed := make(chan error, 1)
		go func() { passed <- gate.Pass(context.Background()) }()

		<-gate.Arrived()
		select {
		case <-passed:
			t.Fatal("gate let a goroutine through while closed")
		case <-time.After(20 * time.Millisecond):
		}

		gate.Open()
		require.NoError(t, <-passed)
		// an open gate does not hold anyone
		require.NoError(t, gate.Pass(context.Background()))
		gate.Open()
	})
	t.Run("With context canceled", func(t *testing.T) {
		gate := NewGate()
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		require.ErrorIs(t, gate.Pass(ctx), context.DeadlineExceeded)
	})
}

func TestBarrier(t *testing.T) {
	barrier := NewBarrier(2)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, barrier.Await(ctx), context.DeadlineExceeded)

	// the second party releases the barrier for everyone
	require.NoError(t, barrier.Await(context.Background()))
	require.NoError(t, barrier.Await(context.Background()))
}
