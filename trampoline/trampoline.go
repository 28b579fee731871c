package trampoline

import (
	"context"

	"github.com/kbukum/numkit/errors"
)

// checkEvery is how many bounces RunContext performs between context checks.
const checkEvery = 1024

// Step is one link of a trampolined computation: either a final value or a
// thunk producing the next link.
type Step[T any] struct {
	value T
	next  func() Step[T]
	done  bool
}

// Done marks termination and carries the final result.
func Done[T any](value T) Step[T] {
	return Step[T]{value: value, done: true}
}

// Continue defers the rest of the computation to thunk.
func Continue[T any](thunk func() Step[T]) Step[T] {
	return Step[T]{next: thunk}
}

// IsDone reports whether the step is terminal.
func (s Step[T]) IsDone() bool { return s.done }

// Value returns the result of a terminal step, or the zero value otherwise.
func (s Step[T]) Value() T { return s.value }

// Next returns the thunk of a pending step, or nil for a terminal one.
func (s Step[T]) Next() func() Step[T] { return s.next }

// Run evaluates the chain starting at start until a terminal step appears.
// There is no bound on the number of bounces.
func Run[T any](start func() Step[T]) T {
	producer := start
	for {
		step := producer()
		if step.done {
			return step.value
		}
		producer = step.next
	}
}

// RunContext is Run with cancellation: ctx is checked every few bounces and a
// CANCELLED error is returned once it is done.
func RunContext[T any](ctx context.Context, start func() Step[T]) (T, error) {
	producer := start
	for bounces := 0; ; bounces++ {
		if bounces%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				var zero T
				return zero, errors.Cancelled("trampoline", err).WithDetail("bounces", bounces)
			}
		}
		step := producer()
		if step.done {
			return step.value, nil
		}
		producer = step.next
	}
}
