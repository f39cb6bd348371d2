package reservation

import (
	"context"
	"errors"
	"fmt"
)

// Dispatcher delivers a payload to the restaurant's inbox.
// Implementations do not retry.
type Dispatcher interface {
	Send(ctx context.Context, p Payload) (Ack, error)
}

// Ack is what the transport reported back on success.
type Ack struct {
	Dispatcher string `json:"dispatcher"`
	Status     int    `json:"status,omitempty"`
	Text       string `json:"text,omitempty"`
}

// DispatchError wraps a transport failure with the dispatcher that hit it.
// Permanent marks failures that sending the same payload again cannot fix.
type DispatchError struct {
	Dispatcher string
	Permanent  bool
	Err        error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s dispatch failed: %v", e.Dispatcher, e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }

// IsPermanent reports whether err carries a permanent DispatchError.
func IsPermanent(err error) bool {
	var de *DispatchError
	return errors.As(err, &de) && de.Permanent
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(ctx context.Context, p Payload) (Ack, error)

func (f DispatcherFunc) Send(ctx context.Context, p Payload) (Ack, error) {
	return f(ctx, p)
}
