package service

import "context"

// EmailDispatcher delivers a plain-text message. Delivery is synchronous and never retried.
type EmailDispatcher interface {
	Send(ctx context.Context, to, subject, body string) error
}
