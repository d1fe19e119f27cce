// Package billing settles the deposit a player attaches to a new session against the storage it allocates.
package billing

import (
	"context"
	"fmt"
	"log/slog"
	"math/bits"
	"sync"

	"github.com/rocketscienceinc/tictactoe-contract/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-contract/internal/entity"
)

// minRefund - refunds of this amount or less are kept.
const minRefund = 1

type DepositBiller struct {
	logger   *slog.Logger
	byteCost uint64

	mu     sync.Mutex
	ledger map[entity.PlayerID]uint64
}

func NewDepositBiller(logger *slog.Logger, byteCost uint64) *DepositBiller {
	return &DepositBiller{
		logger:   logger.With("component", "billing"),
		byteCost: byteCost,
		ledger:   make(map[entity.PlayerID]uint64),
	}
}

// Quote - returns the part of deposit left over once stateBytes are paid for.
func (that *DepositBiller) Quote(_ context.Context, payer entity.PlayerID, stateBytes int64, deposit uint64) (uint64, error) {
	if stateBytes < 0 {
		return 0, fmt.Errorf("invalid state size %d", stateBytes)
	}

	hi, required := bits.Mul64(uint64(stateBytes), that.byteCost)
	if hi != 0 || deposit < required {
		return 0, fmt.Errorf("%w: %s attached %d, storage costs %d",
			apperror.ErrInsufficientDeposit, payer, deposit, required)
	}

	refund := deposit - required
	if refund <= minRefund {
		return 0, nil
	}

	return refund, nil
}

// Refund - credits amount back to payer.
func (that *DepositBiller) Refund(ctx context.Context, payer entity.PlayerID, amount uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to refund: %w", err)
	}

	that.mu.Lock()
	that.ledger[payer] += amount
	that.mu.Unlock()

	that.logger.Info("excess deposit refunded", "method", "Refund", "player", payer, "amount", amount)

	return nil
}

// Refunded - total amount refunded to player so far.
func (that *DepositBiller) Refunded(player entity.PlayerID) uint64 {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.ledger[player]
}
