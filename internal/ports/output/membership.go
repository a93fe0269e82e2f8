package output

import "context"

// MembershipGate answers whether an identity belongs to the community.
// A negative answer is an authorization failure, not a system error.
type MembershipGate interface {
	IsMember(ctx context.Context, identity string) (bool, error)
}
