package services

import "context"

// Mailer sends plain-text mail on behalf of the application.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
