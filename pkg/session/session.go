package session

import (
	"context"
	"time"

	"excursion-booking/internal/entity"
)

// Store keeps the logged-in principal server side, keyed by an opaque
// token handed to the client in a cookie. Get returns (nil, nil) for an
// unknown or expired token.
type Store interface {
	Create(ctx context.Context, principal *entity.Principal) (string, error)
	Get(ctx context.Context, token string) (*entity.Principal, error)
	Delete(ctx context.Context, token string) error
}

const tokenTTLDefault = 24 * time.Hour

func normalizeTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return tokenTTLDefault
	}
	return ttl
}
