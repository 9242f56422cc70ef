package obslog

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/chesscore-go/internal/testutil"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		" error ": zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"chatty":  zapcore.InfoLevel,
	}
	for in, want := range tests {
		testutil.AssertEqual(t, ParseLevel(in), want, "ParseLevel(%q)", in)
	}
}

func TestNormalizeFormat(t *testing.T) {
	testutil.AssertEqual(t, NormalizeFormat("JSON"), "json")
	testutil.AssertEqual(t, NormalizeFormat("console"), "console")
	testutil.AssertEqual(t, NormalizeFormat("xml"), "legacy")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, closeLog, err := New(Options{Level: "debug", Format: "json", Output: &buf})
	testutil.AssertNoError(t, err)
	defer closeLog()

	logger.Debug("move applied", zap.String("move", "e2e4"))
	testutil.AssertNoError(t, logger.Sync())

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	testutil.AssertEqual(t, entry["msg"], "move applied")
	testutil.AssertEqual(t, entry["move"], "e2e4")
	testutil.AssertEqual(t, entry["level"], "debug")
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, closeLog, err := New(Options{Level: "warn", Format: "console", Output: &buf})
	testutil.AssertNoError(t, err)
	defer closeLog()

	logger.Info("hidden")
	logger.Warn("shown")
	_ = logger.Sync()

	testutil.AssertFalse(t, strings.Contains(buf.String(), "hidden"))
	testutil.AssertContains(t, buf.String(), "shown")
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "chesscore.log")
	var buf bytes.Buffer
	logger, closeLog, err := New(Options{Format: "legacy", File: path, Output: &buf})
	testutil.AssertNoError(t, err)

	logger.Info("board decoded")
	testutil.AssertNoError(t, closeLog())

	data, err := os.ReadFile(path)
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, string(data), "board decoded")
	testutil.AssertContains(t, buf.String(), " | ")

	// The file is closed, so a second close reports it.
	if err := closeLog(); err == nil {
		t.Error("second close of the log file returned nil")
	}
}

func TestNew_CloseWithoutFile(t *testing.T) {
	var buf bytes.Buffer
	_, closeLog, err := New(Options{Output: &buf})
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, closeLog())
}

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	logger := zap.NewExample()
	SetLogger(logger)
	if L() != logger {
		t.Error("L() did not return the logger passed to SetLogger")
	}
	SetLogger(nil)
	if L() == nil {
		t.Error("SetLogger(nil) left a nil global logger")
	}
}
