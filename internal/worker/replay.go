package worker

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/game"
)

// ParseJobs reads batch lines of the form "FEN|move move ...". Blank
// lines and lines starting with '#' are skipped. A line without '|' is a
// FEN with no moves.
func ParseJobs(r io.Reader) ([]WorkItem, error) {
	var items []WorkItem
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fen, moves, _ := strings.Cut(text, "|")
		fen = strings.TrimSpace(fen)
		if fen == "" {
			return nil, fmt.Errorf("line %d: missing FEN: %w", line, errors.ErrInvalidFEN)
		}
		items = append(items, WorkItem{
			Index: len(items),
			FEN:   fen,
			Moves: strings.Fields(moves),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read batch: %w", err)
	}
	return items, nil
}

// Replayer builds the ProcessFunc that plays each item in a fresh session.
type Replayer struct {
	Engine       *engine.Engine
	IllegalMoves game.IllegalMovePolicy
	Logger       *zap.Logger
}

// Process replays one item.
func (r *Replayer) Process(item WorkItem) ProcessResult {
	s, err := game.New(item.FEN,
		game.WithEngine(r.Engine),
		game.WithIllegalMoves(r.IllegalMoves),
		game.WithLogger(r.Logger))
	if err != nil {
		return ProcessResult{Index: item.Index, Err: err}
	}

	err = s.PlayAll(item.Moves)
	return ProcessResult{
		Index:     item.Index,
		SessionID: s.ID().String(),
		Board:     s.Board(),
		Placement: s.Placement(),
		Ply:       s.Ply(),
		Skipped:   s.Skipped(),
		Err:       err,
	}
}
