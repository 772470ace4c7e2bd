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
	"fmt"
)

var (
	// ErrInvalidConfiguration is matched by every ConfigurationError.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrUndefinedBehavior is returned when an actor is created without a behavior.
	ErrUndefinedBehavior = errors.New("behavior is not defined")

	// ErrUndefinedState is returned when an actor is created with a nil initial state.
	ErrUndefinedState = errors.New("initial state is not defined")

	// ErrUndefinedMailbox is returned when a nil mailbox is handed to an actor.
	ErrUndefinedMailbox = errors.New("mailbox is not defined")

	// ErrUndefinedLogger is returned when a nil logger is handed to an actor.
	ErrUndefinedLogger = errors.New("logger is not defined")

	// ErrInvalidMailboxCapacity is returned when a bounded mailbox capacity is below two.
	ErrInvalidMailboxCapacity = errors.New("mailbox capacity must be at least two")

	// ErrActorStopped is returned when a message is sent to an actor that has been stopped.
	ErrActorStopped = errors.New("actor is not alive")

	// ErrInvalidMessage is returned when a mailbox hands back a message the
	// behavior cannot accept.
	ErrInvalidMessage = errors.New("invalid message")

	// ErrMailboxFull is returned by a bounded mailbox that cannot accept more messages.
	// It is the backpressure signal of the actor.
	ErrMailboxFull = errors.New("mailbox is full")
)

// ConfigurationError reports one or more invalid settings detected while
// constructing an actor. It is raised synchronously and is fatal for the
// construction attempt.
type ConfigurationError struct {
	err error
}

// enforce compilation error
var _ error = (*ConfigurationError)(nil)

// NewConfigurationError creates an instance of ConfigurationError
func NewConfigurationError(err error) *ConfigurationError {
	return &ConfigurationError{err: err}
}

// Error implements the standard error interface
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %v", ErrInvalidConfiguration.Error(), e.err)
}

// Is makes every ConfigurationError match ErrInvalidConfiguration
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

func (e *ConfigurationError) Unwrap() error {
	return e.err
}

// BehaviorError is the failure of a behavior for one specific message.
// It only ever reaches the sender of that message.
type BehaviorError struct {
	sequence uint64
	err      error
}

// enforce compilation error
var _ error = (*BehaviorError)(nil)

// NewBehaviorError creates an instance of BehaviorError for the message
// enqueued with the given sequence number
func NewBehaviorError(sequence uint64, err error) *BehaviorError {
	return &BehaviorError{sequence: sequence, err: err}
}

// Sequence returns the sequence number of the failed message
func (e *BehaviorError) Sequence() uint64 {
	return e.sequence
}

// Error implements the standard error interface
func (e *BehaviorError) Error() string {
	return fmt.Sprintf("behavior failed for message %d: %v", e.sequence, e.err)
}

func (e *BehaviorError) Unwrap() error {
	return e.err
}

// PanicError defines the panic error
// wrapping the underlying error
type PanicError struct {
	err error
}

// enforce compilation error
var _ error = (*PanicError)(nil)

// NewPanicError creates an instance of PanicError
func NewPanicError(err error) *PanicError {
	return &PanicError{err}
}

// Error implements the standard error interface
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.err)
}

func (e *PanicError) Unwrap() error {
	return e.err
}
