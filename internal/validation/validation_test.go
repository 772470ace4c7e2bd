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

package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errMissingID    = errors.New("missing id")
	errMissingItems = errors.New("missing items")
)

func TestChain(t *testing.T) {
	t.Run("With all errors", func(t *testing.T) {
		chain := New(AllErrors()).
			AddAssertion(false, errMissingID).
			AddAssertion(true, errors.New("never")).
			AddValidator(Func(func() error { return errMissingItems }))

		err := chain.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, errMissingID)
		assert.ErrorIs(t, err, errMissingItems)
		assert.EqualError(t, err, "missing id; missing items")

		// validating twice does not accumulate twice
		assert.EqualError(t, chain.Validate(), "missing id; missing items")
	})
	t.Run("With fail fast", func(t *testing.T) {
		err := New(FailFast()).
			AddAssertion(false, errMissingID).
			AddAssertion(false, errMissingItems).
			Validate()
		require.ErrorIs(t, err, errMissingID)
		assert.NotErrorIs(t, err, errMissingItems)
	})
	t.Run("With no violations", func(t *testing.T) {
		require.NoError(t, New().AddAssertion(true, errMissingID).Validate())
		require.NoError(t, New().Validate())
	})
}
