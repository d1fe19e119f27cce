// Package console drives the game over a line protocol, one command per line.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-contract/internal/entity"
	"github.com/rocketscienceinc/tictactoe-contract/internal/identity"
	"github.com/rocketscienceinc/tictactoe-contract/internal/usecase"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage")
)

type gameService interface {
	StartSession(ctx context.Context, opponent entity.PlayerID, deposit uint64) (*usecase.Started, error)
	SubmitMove(ctx context.Context, row, col int) (*usecase.MoveResult, error)
	ViewSession(ctx context.Context) (*entity.Session, error)
	ViewStats(ctx context.Context, player entity.PlayerID) (entity.Stats, error)
}

type handler func(ctx context.Context, conn *conn, args []string) error

// conn - state of one console, the logged in player.
type conn struct {
	player entity.PlayerID
	out    *termenv.Output
}

type Server struct {
	logger   *slog.Logger
	games    gameService
	handlers map[string]handler
}

func New(logger *slog.Logger, games gameService) *Server {
	server := &Server{
		logger:   logger.With("component", "console"),
		games:    games,
		handlers: make(map[string]handler),
	}

	server.handlers["login"] = server.handleLogin
	server.handlers["start"] = server.handleStart
	server.handlers["move"] = server.handleMove
	server.handlers["view"] = server.handleView
	server.handlers["stats"] = server.handleStats
	server.handlers["help"] = server.handleHelp

	return server
}

// Serve - reads commands from in until EOF, quit or ctx is done.
func (that *Server) Serve(ctx context.Context, in io.Reader, out *termenv.Output) error {
	log := that.logger.With("method", "Serve")

	session := &conn{out: out}
	scanner := bufio.NewScanner(in)

	that.prompt(session)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			that.prompt(session)
			continue
		}

		command, args := strings.ToLower(fields[0]), fields[1:]
		if command == "quit" || command == "exit" {
			log.Info("console closed", "player", session.player)
			return nil
		}

		if err := that.dispatch(ctx, session, command, args); err != nil {
			that.writeError(session, err)
		}

		that.prompt(session)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read command: %w", err)
	}

	return nil
}

func (that *Server) dispatch(ctx context.Context, conn *conn, command string, args []string) error {
	log := that.logger.With("method", "dispatch", "request_id", uuid.NewString(), "command", command)

	handle, ok := that.handlers[command]
	if !ok {
		log.Warn("unknown command")
		return fmt.Errorf("%w %q, try help", ErrUnknownCommand, command)
	}

	if conn.player != "" {
		ctx = identity.WithPlayer(ctx, conn.player)
	}

	if err := handle(ctx, conn, args); err != nil {
		log.Error("error processing command", "player", conn.player, "error", err)
		return err
	}

	log.Debug("command processed", "player", conn.player)

	return nil
}

func (that *Server) prompt(conn *conn) {
	name := "guest"
	if conn.player != "" {
		name = string(conn.player)
	}

	fmt.Fprint(conn.out, conn.out.String(name+"> ").Bold().String())
}

func (that *Server) writeError(conn *conn, err error) {
	fmt.Fprintln(conn.out, conn.out.String("error: "+err.Error()).Foreground(conn.out.Color("1")).String())
}
