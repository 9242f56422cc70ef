package output

import (
	"github.com/lgbarn/chesscore-go/internal/hashing"
	"github.com/lgbarn/chesscore-go/internal/worker"
)

// JSONResult is one replayed job in JSON form.
type JSONResult struct {
	Job       int      `json:"job"`
	Session   string   `json:"session,omitempty"`
	Placement string   `json:"placement,omitempty"`
	Ply       int      `json:"ply"`
	Skipped   []string `json:"skipped,omitempty"`
	Duplicate bool     `json:"duplicate,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// JSONOutput holds every job for array output.
type JSONOutput struct {
	Results []*JSONResult `json:"results"`
}

// ResultToJSON converts a replay result. Jobs are numbered from 1.
func ResultToJSON(r Result) *JSONResult {
	jr := &JSONResult{
		Job:       r.Index + 1,
		Session:   r.SessionID,
		Placement: r.Placement,
		Ply:       r.Ply,
		Skipped:   r.Skipped,
		Duplicate: r.Duplicate,
	}
	if r.Err != nil {
		jr.Error = r.Err.Error()
	}
	return jr
}

// Result is a replay result annotated for output.
type Result struct {
	worker.ProcessResult
	Duplicate bool // final position already reached by an earlier job
}

// Annotate wraps results in input order. When detector is non-nil, a
// result whose final position an earlier result already reached is marked
// as a duplicate.
func Annotate(results []worker.ProcessResult, detector *hashing.DuplicateDetector) []Result {
	out := make([]Result, len(results))
	for i, r := range results {
		out[i] = Result{ProcessResult: r}
		if detector != nil && r.Err == nil {
			out[i].Duplicate = detector.CheckAndAdd(r.Board, r.Ply)
		}
	}
	return out
}
