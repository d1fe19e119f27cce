package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-contract/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-contract/internal/entity"
	"github.com/rocketscienceinc/tictactoe-contract/internal/repository"
	"github.com/rocketscienceinc/tictactoe-contract/internal/tictactoe"
)

type sessionIndex interface {
	GetSessionKey(ctx context.Context, id entity.PlayerID) (entity.SessionKey, error)
}

type sessionRepo interface {
	GetSession(ctx context.Context, key entity.SessionKey) (*entity.Session, error)
}

type committer interface {
	Commit(ctx context.Context, changes *repository.Changeset) error
}

// storageBiller settles the deposit attached to a session start against the state it allocates.
type storageBiller interface {
	Quote(ctx context.Context, payer entity.PlayerID, stateBytes int64, deposit uint64) (uint64, error)
	Refund(ctx context.Context, payer entity.PlayerID, amount uint64) error
}

// Started - result of a session start. StateBytes is the size of the newly written state.
type Started struct {
	Key        entity.SessionKey
	StateBytes int64
	Refund     uint64
}

type MoveResult struct {
	Outcome  entity.MoveOutcome
	Mover    entity.PlayerID
	Opponent entity.PlayerID
	// Session is the state right after the move, also for sessions that were torn down.
	Session *entity.Session
}

type MatchRegistry struct {
	logger *slog.Logger

	// one call at a time, every call commits a single changeset
	mu sync.Mutex

	sessionIndex sessionIndex
	sessionRepo  sessionRepo
	committer    committer
	stats        *StatsTracker
	biller       storageBiller
}

// NewMatchRegistry - biller may be nil, then session starts are free.
func NewMatchRegistry(
	logger *slog.Logger,
	sessionIndex sessionIndex,
	sessionRepo sessionRepo,
	committer committer,
	stats *StatsTracker,
	biller storageBiller,
) *MatchRegistry {
	return &MatchRegistry{
		logger: logger.With("component", "match_registry"),

		sessionIndex: sessionIndex,
		sessionRepo:  sessionRepo,
		committer:    committer,
		stats:        stats,
		biller:       biller,
	}
}

func (that *MatchRegistry) StartSession(
	ctx context.Context,
	initiator, opponent entity.PlayerID,
	deposit uint64,
) (*Started, error) {
	log := that.logger.With("method", "StartSession")

	that.mu.Lock()
	defer that.mu.Unlock()

	if initiator == "" || opponent == "" {
		return nil, apperror.ErrInvalidPlayer
	}

	if initiator == opponent {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSelfChallenge, initiator)
	}

	for _, player := range []entity.PlayerID{initiator, opponent} {
		inSession, err := that.hasSession(ctx, player)
		if err != nil {
			return nil, err
		}

		if inSession {
			return nil, fmt.Errorf("%w: %s is currently in a game", apperror.ErrAlreadyInSession, player)
		}
	}

	session := entity.NewSession(initiator, opponent)

	changes := repository.NewChangeset()
	changes.PutSession(session)
	changes.BindPlayer(initiator, session.Key)
	changes.BindPlayer(opponent, session.Key)

	if err := that.stats.Ensure(ctx, changes, initiator, opponent); err != nil {
		return nil, fmt.Errorf("failed to prepare stats: %w", err)
	}

	stateBytes, err := changes.Size()
	if err != nil {
		return nil, fmt.Errorf("failed to measure state: %w", err)
	}

	var refund uint64
	if that.biller != nil {
		refund, err = that.biller.Quote(ctx, initiator, stateBytes, deposit)
		if err != nil {
			return nil, fmt.Errorf("failed to settle storage: %w", err)
		}
	}

	if err = that.committer.Commit(ctx, changes); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if refund > 0 {
		if err = that.biller.Refund(ctx, initiator, refund); err != nil {
			log.Error("failed to refund excess deposit", "player", initiator, "amount", refund, "error", err)
			refund = 0
		}
	}

	log.Info("session created",
		"session", session.Key, "x", initiator, "o", opponent, "state_bytes", stateBytes, "refund", refund)

	return &Started{
		Key:        session.Key,
		StateBytes: stateBytes,
		Refund:     refund,
	}, nil
}

func (that *MatchRegistry) SubmitMove(ctx context.Context, caller entity.PlayerID, row, col int) (*MoveResult, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, err := that.activeSession(ctx, caller)
	if err != nil {
		return nil, err
	}

	if outcome, forced := tictactoe.ForcedOutcome(session); forced {
		return that.forceResolve(ctx, session, caller, outcome)
	}

	outcome, err := tictactoe.ApplyMove(session, caller, row, col)
	if err != nil {
		return nil, err
	}

	result := &MoveResult{
		Outcome:  outcome,
		Mover:    caller,
		Opponent: session.Opponent(caller),
		Session:  session,
	}

	changes := repository.NewChangeset()
	if !outcome.IsTerminal() {
		changes.PutSession(session)

		if err = that.committer.Commit(ctx, changes); err != nil {
			return nil, fmt.Errorf("failed update session: %w", err)
		}

		return result, nil
	}

	changes.DropSession(session.Key)
	for _, player := range session.Participants() {
		changes.UnbindPlayer(player)
	}

	if err = that.stats.Record(ctx, changes, entity.Resolution{
		Outcome:  outcome,
		Mover:    caller,
		Opponent: result.Opponent,
	}); err != nil {
		return nil, fmt.Errorf("failed to record stats: %w", err)
	}

	if err = that.committer.Commit(ctx, changes); err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	that.logger.Info("session "+outcome.Kind.String(),
		"method", "SubmitMove", "session", session.Key, "mover", caller, "opponent", result.Opponent,
		"turns_played", session.TurnsPlayed)

	return result, nil
}

func (that *MatchRegistry) ViewSession(ctx context.Context, caller entity.PlayerID) (*entity.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.activeSession(ctx, caller)
}

// forceResolve settles a move against a session that is already terminal. No board slot is used.
// The session record stays while the opponent is still bound to it.
func (that *MatchRegistry) forceResolve(
	ctx context.Context,
	session *entity.Session,
	caller entity.PlayerID,
	outcome entity.MoveOutcome,
) (*MoveResult, error) {
	opponent := session.Opponent(caller)

	changes := repository.NewChangeset()
	changes.UnbindPlayer(caller)

	opponentBound, err := that.boundTo(ctx, opponent, session.Key)
	if err != nil {
		return nil, err
	}

	if !opponentBound {
		changes.DropSession(session.Key)
	}

	if err = that.stats.Record(ctx, changes, entity.Resolution{
		Outcome:  outcome,
		Mover:    caller,
		Opponent: opponent,
	}); err != nil {
		return nil, fmt.Errorf("failed to record stats: %w", err)
	}

	if err = that.committer.Commit(ctx, changes); err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	that.logger.Info("session force-resolved",
		"method", "SubmitMove", "session", session.Key, "player", caller, "outcome", outcome.Kind.String())

	return &MoveResult{
		Outcome:  outcome,
		Mover:    caller,
		Opponent: opponent,
		Session:  session,
	}, nil
}

func (that *MatchRegistry) activeSession(ctx context.Context, caller entity.PlayerID) (*entity.Session, error) {
	key, err := that.sessionIndex.GetSessionKey(ctx, caller)
	if errors.Is(err, repository.ErrSessionKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrNoActiveSession, caller)
	}

	if err != nil {
		return nil, fmt.Errorf("failed get session key: %w", err)
	}

	session, err := that.sessionRepo.GetSession(ctx, key)
	if errors.Is(err, repository.ErrSessionNotFound) {
		that.logger.Warn("player bound to a missing session", "method", "activeSession", "player", caller, "session", key)
		return nil, fmt.Errorf("%w: %s", apperror.ErrNoActiveSession, caller)
	}

	if err != nil {
		return nil, fmt.Errorf("failed get session: %w", err)
	}

	return session, nil
}

func (that *MatchRegistry) hasSession(ctx context.Context, player entity.PlayerID) (bool, error) {
	_, err := that.sessionIndex.GetSessionKey(ctx, player)
	if errors.Is(err, repository.ErrSessionKeyNotFound) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed get session key: %w", err)
	}

	return true, nil
}

func (that *MatchRegistry) boundTo(ctx context.Context, player entity.PlayerID, key entity.SessionKey) (bool, error) {
	if player == "" {
		return false, nil
	}

	bound, err := that.sessionIndex.GetSessionKey(ctx, player)
	if errors.Is(err, repository.ErrSessionKeyNotFound) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed get session key: %w", err)
	}

	return bound == key, nil
}
