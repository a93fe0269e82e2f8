package output

import "context"

// Notifier is the outbound notification channel. Delivery is best-effort;
// callers never roll back committed state on a send failure.
type Notifier interface {
	// SendDirect delivers text to a single recipient.
	SendDirect(ctx context.Context, recipient, text string) error
	// Publish posts text to the community channel and returns a reference
	// to the published message.
	Publish(ctx context.Context, text string) (ref string, err error)
	// PublishPoll posts a poll with a fixed option set to the community channel.
	PublishPoll(ctx context.Context, question string, options []string) error
}
