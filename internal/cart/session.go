package cart

import (
	"context"
	"encoding/gob"

	"github.com/alexedwards/scs/v2"
)

const sessionKey = "cart"

func init() {
	// scs gob-encodes session values; decimal.Decimal rides along via
	// its BinaryMarshaler implementation.
	gob.Register(Cart{})
}

// Store is the session-scoped persistence for one shopper's cart. The
// session identity travels inside ctx, so there is no process-wide cart
// state and no cross-session sharing.
type Store interface {
	Load(ctx context.Context) Cart
	Save(ctx context.Context, c Cart) error
	Clear(ctx context.Context) error
}

type sessionStore struct {
	sessions *scs.SessionManager
}

func NewSessionStore(sessions *scs.SessionManager) Store {
	return &sessionStore{sessions: sessions}
}

// Load returns the session cart, or an empty one when the shopper has
// not added anything yet.
func (s *sessionStore) Load(ctx context.Context) Cart {
	c, ok := s.sessions.Get(ctx, sessionKey).(Cart)
	if !ok {
		return Cart{}
	}
	return c
}

func (s *sessionStore) Save(ctx context.Context, c Cart) error {
	s.sessions.Put(ctx, sessionKey, c)
	return nil
}

func (s *sessionStore) Clear(ctx context.Context) error {
	s.sessions.Remove(ctx, sessionKey)
	return nil
}
