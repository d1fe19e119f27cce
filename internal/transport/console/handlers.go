package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-contract/internal/entity"
	"github.com/rocketscienceinc/tictactoe-contract/internal/service"
)

const helpText = `commands:
  login <player>             act as player
  start <opponent> [deposit] challenge opponent, you play X
  move <row> <col>           mark a cell, rows and columns go from 1 to 3
  view                       show your board
  stats [player]             show wins, ties and losses
  quit                       leave`

func (that *Server) handleLogin(_ context.Context, conn *conn, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: login <player>", ErrUsage)
	}

	conn.player = entity.PlayerID(args[0])
	fmt.Fprintf(conn.out, "logged in as %s\n", conn.player)

	return nil
}

func (that *Server) handleStart(ctx context.Context, conn *conn, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: start <opponent> [deposit]", ErrUsage)
	}

	var deposit uint64
	if len(args) == 2 {
		parsed, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: deposit must be a whole number", ErrUsage)
		}
		deposit = parsed
	}

	started, err := that.games.StartSession(ctx, entity.PlayerID(args[0]), deposit)
	if err != nil {
		return err
	}

	fmt.Fprintf(conn.out, "game %s started against %s, you play X\n", shortKey(started.Key), args[0])
	if started.Refund > 0 {
		fmt.Fprintf(conn.out, "storage used %d bytes, refunded %d\n", started.StateBytes, started.Refund)
	}

	return nil
}

func (that *Server) handleMove(ctx context.Context, conn *conn, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: move <row> <col>", ErrUsage)
	}

	row, errRow := strconv.Atoi(args[0])
	col, errCol := strconv.Atoi(args[1])
	if errRow != nil || errCol != nil {
		return fmt.Errorf("%w: row and col must be numbers", ErrUsage)
	}

	result, err := that.games.SubmitMove(ctx, row, col)
	if err != nil {
		return err
	}

	if result.Outcome.Kind != entity.ForcedLoss && result.Outcome.Kind != entity.ForcedTie {
		that.writeBoard(conn, result.Session)
	}

	switch message := service.OutcomeMessage(result.Outcome.Kind); {
	case message != "":
		fmt.Fprintln(conn.out, conn.out.String(message).Bold().String())
	default:
		fmt.Fprintf(conn.out, "waiting for %s\n", result.Opponent)
	}

	return nil
}

func (that *Server) handleView(ctx context.Context, conn *conn, _ []string) error {
	session, err := that.games.ViewSession(ctx)
	if err != nil {
		return err
	}

	that.writeBoard(conn, session)
	fmt.Fprintf(conn.out, "%s to move\n", session.PlayerFor(session.Turn))

	return nil
}

func (that *Server) handleStats(ctx context.Context, conn *conn, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: stats [player]", ErrUsage)
	}

	player := conn.player
	if len(args) == 1 {
		player = entity.PlayerID(args[0])
	}

	stats, err := that.games.ViewStats(ctx, player)
	if err != nil {
		return err
	}

	fmt.Fprintln(conn.out, stats.Describe(player))

	return nil
}

func (that *Server) handleHelp(_ context.Context, conn *conn, _ []string) error {
	fmt.Fprintln(conn.out, helpText)

	return nil
}

func (that *Server) writeBoard(conn *conn, session *entity.Session) {
	board := session.Board.RenderWith(func(cell entity.Cell) string {
		switch cell {
		case entity.X:
			return conn.out.String(cell.String()).Foreground(conn.out.Color("4")).String()
		case entity.O:
			return conn.out.String(cell.String()).Foreground(conn.out.Color("3")).String()
		default:
			return cell.String()
		}
	})

	fmt.Fprintln(conn.out, board)
}

func shortKey(key entity.SessionKey) string {
	if len(key) > 8 {
		return string(key[:8])
	}

	return string(key)
}
