// chesscore decodes a position, plays UCI moves on it and prints the board
// before and after.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/game"
	"github.com/lgbarn/chesscore-go/internal/hashing"
	"github.com/lgbarn/chesscore-go/internal/obslog"
	"github.com/lgbarn/chesscore-go/internal/output"
	"github.com/lgbarn/chesscore-go/internal/render"
	"github.com/lgbarn/chesscore-go/internal/worker"
)

const programVersion = "0.1.0"

// Exit codes.
const (
	exitOK     = 0
	exitMove   = 1
	exitConfig = 2
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(exitOK)
	}
	if *version {
		fmt.Printf("chesscore version %s\n", programVersion)
		os.Exit(exitOK)
	}

	cfg, err := config.Load(*configFile)
	if err == nil {
		err = applyFlags(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitConfig)
	}

	logger, closeLog, err := obslog.New(cfg.Log.Options())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitConfig)
	}
	obslog.SetLogger(logger)

	eng := engine.New(append(cfg.EngineOptions(), engine.WithLogger(logger))...)

	var code int
	if *batchFile != "" {
		code = runBatchFile(cfg, eng, *batchFile, os.Stdout)
	} else {
		code = runSingle(cfg, eng, flag.Args(), newRenderer(), os.Stdout, os.Stderr)
	}
	if err := closeLog(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: close log: %v\n", err)
	}
	os.Exit(code)
}

func newRenderer() render.Renderer {
	var opts []render.Option
	if *coords {
		opts = append(opts, render.WithCoordinates())
	}
	if *colour {
		return render.NewColour(opts...)
	}
	return render.NewText(opts...)
}

// runSingle plays moves on one session, printing the board before the
// first move and after the last one that was applied.
func runSingle(cfg *config.Config, eng *engine.Engine, moves []string, r render.Renderer, stdout, stderr io.Writer) int {
	s, err := game.New(cfg.StartFEN,
		game.WithEngine(eng),
		game.WithIllegalMoves(cfg.IllegalMoves),
		game.WithLogger(obslog.L()))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitConfig
	}

	printBoard(r, stdout, s.Board())
	playErr := s.PlayAll(moves)
	if len(moves) > 0 {
		fmt.Fprintln(stdout)
		printBoard(r, stdout, s.Board())
	}
	for _, m := range s.Skipped() {
		fmt.Fprintf(stderr, "Skipped illegal move %s\n", m)
	}
	if playErr != nil {
		fmt.Fprintf(stderr, "Error: %v\n", playErr)
		return exitMove
	}
	return exitOK
}

func printBoard(r render.Renderer, w io.Writer, b *chess.Board) {
	if err := r.Render(w, b); err != nil {
		obslog.L().Warn("render failed", zap.Error(err))
	}
}

func runBatchFile(cfg *config.Config, eng *engine.Engine, path string, stdout io.Writer) int {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening batch file %s: %v\n", path, err)
		return exitConfig
	}
	defer f.Close()
	return runBatch(cfg, eng, f, stdout, os.Stderr)
}

// runBatch replays every job in r and writes one result per job in input
// order.
func runBatch(cfg *config.Config, eng *engine.Engine, r io.Reader, stdout, stderr io.Writer) int {
	items, err := worker.ParseJobs(r)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitConfig
	}

	replayer := &worker.Replayer{
		Engine:       eng,
		IllegalMoves: cfg.IllegalMoves,
		Logger:       obslog.L(),
	}
	poolOpts := []worker.PoolOption{
		worker.WithWorkers(cfg.Workers),
		worker.WithBufferSize(cfg.Workers * 2),
	}
	if *failFast {
		poolOpts = append(poolOpts, worker.WithFailFast())
	}
	pool := worker.NewPool(replayer.Process, poolOpts...)
	results := pool.Run(items)

	var detector *hashing.DuplicateDetector
	if *dedupe {
		detector = hashing.NewDuplicateDetector(false, 0)
	}

	var out output.ResultWriter = output.NewTextWriter(stdout)
	if *jsonOutput {
		out = output.NewJSONWriter(stdout)
	}

	code := exitOK
	for _, res := range output.Annotate(results, detector) {
		if res.Err != nil {
			code = exitMove
		}
		if err := out.WriteResult(res); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitConfig
		}
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitConfig
	}
	if pool.IsStopped() {
		fmt.Fprintf(stderr, "Stopped after first failure: %d of %d jobs replayed\n", len(results), len(items))
	}
	obslog.L().Info("batch finished",
		zap.Int("jobs", len(items)),
		zap.Int("replayed", len(results)),
		zap.Int("workers", pool.NumWorkers()),
		zap.Bool("stopped", pool.IsStopped()))
	return code
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chesscore [options] [moves...]\n\n")
	fmt.Fprintf(os.Stderr, "Plays UCI moves (e.g. e2e4 g1f3) on a position and prints the board.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMove generators (-rules):\n")
	fmt.Fprintf(os.Stderr, "  bounded  Edge-checked moves for every piece (default)\n")
	fmt.Fprintf(os.Stderr, "  legacy   Raw knight and king offsets, placeholder for other pieces\n")
	fmt.Fprintf(os.Stderr, "\nEnvironment: CHESS_START_FEN, CHESS_RULES, CHESS_FEN_POLICY,\n")
	fmt.Fprintf(os.Stderr, "CHESS_ILLEGAL_MOVES, CHESS_WORKERS, LOG_LEVEL, LOG_FORMAT, LOG_FILE\n")
}
