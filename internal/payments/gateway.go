package payments

import "context"

// Gateway is the common contract for payment providers.
type Gateway interface {
	CreateSession(ctx context.Context, order Order) (*Session, error)
}
