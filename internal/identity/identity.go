// Package identity carries the authenticated caller through a context.
package identity

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-contract/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-contract/internal/entity"
)

type callerKey struct{}

// WithPlayer - returns a copy of ctx authenticated as id.
func WithPlayer(ctx context.Context, id entity.PlayerID) context.Context {
	return context.WithValue(ctx, callerKey{}, id)
}

// ContextProvider resolves the caller set by WithPlayer.
type ContextProvider struct{}

func NewContextProvider() *ContextProvider {
	return &ContextProvider{}
}

func (that *ContextProvider) Caller(ctx context.Context) (entity.PlayerID, error) {
	id, ok := ctx.Value(callerKey{}).(entity.PlayerID)
	if !ok || id == "" {
		return "", apperror.ErrUnauthenticated
	}

	return id, nil
}
