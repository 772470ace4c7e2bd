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

package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestErrors(t *testing.T) {
	t.Run("ConfigurationError", func(t *testing.T) {
		err := NewConfigurationError(multierr.Combine(ErrUndefinedBehavior, ErrUndefinedState))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
		assert.ErrorIs(t, err, ErrUndefinedBehavior)
		assert.ErrorIs(t, err, ErrUndefinedState)
		assert.NotErrorIs(t, err, ErrMailboxFull)
		assert.EqualError(t, err, "invalid configuration: behavior is not defined; initial state is not defined")
	})
	t.Run("BehaviorError", func(t *testing.T) {
		cause := errors.New("card declined")
		err := NewBehaviorError(2, cause)
		require.EqualError(t, err, "behavior failed for message 2: card declined")
		assert.ErrorIs(t, err, cause)
		assert.EqualValues(t, 2, err.Sequence())

		var target *BehaviorError
		require.ErrorAs(t, error(err), &target)
		assert.Same(t, err, target)
	})
	t.Run("PanicError", func(t *testing.T) {
		cause := errors.New("nil stock")
		err := NewBehaviorError(1, NewPanicError(cause))
		assert.ErrorIs(t, err, cause)

		var panicErr *PanicError
		require.ErrorAs(t, err, &panicErr)
		assert.EqualError(t, panicErr, "panic: nil stock")
	})
}
