package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-puzzles-go/internal/engine"
	"github.com/lgbarn/chess-puzzles-go/internal/processing"
)

// JSONSolve represents a solve result in JSON format.
type JSONSolve struct {
	FEN      string   `json:"fen"`
	Module   string   `json:"module"`
	Status   string   `json:"status"`
	Solved   bool     `json:"solved"`
	Message  string   `json:"message"`
	Path     []string `json:"path"`
	FinalFEN string   `json:"finalFEN"`
	Explored int      `json:"explored"`
}

// JSONVerification represents a verified puzzle in JSON format.
type JSONVerification struct {
	ID          string   `json:"id"`
	FEN         string   `json:"fen"`
	Module      string   `json:"module"`
	Verdict     string   `json:"verdict"`
	TargetMoves int      `json:"targetMoves,omitempty"`
	Path        []string `json:"path,omitempty"`
	Explored    int      `json:"explored,omitempty"`
	Cached      bool     `json:"cached,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// JSONBoard represents a board query in JSON format.
type JSONBoard struct {
	FEN       string   `json:"fen"`
	Module    string   `json:"module"`
	Square    string   `json:"square,omitempty"`
	Legal     []string `json:"legal"`
	Allowed   []string `json:"allowed"`
	Attacked  []string `json:"attacked"`
	InCheck   bool     `json:"inCheck"`
	Goal      bool     `json:"goal"`
	HasPieces bool     `json:"hasPieces"`
}

// JSONSummary counts verifications.
type JSONSummary struct {
	Total     int            `json:"total"`
	Failed    int            `json:"failed"`
	Cached    int            `json:"cached"`
	ByVerdict map[string]int `json:"byVerdict"`
}

// JSONOutput holds everything a batch JSON writer buffered.
type JSONOutput struct {
	Solves        []*JSONSolve        `json:"solves,omitempty"`
	Verifications []*JSONVerification `json:"verifications,omitempty"`
	Boards        []*JSONBoard        `json:"boards,omitempty"`
	Summary       *JSONSummary        `json:"summary,omitempty"`
}

// SolveToJSON converts a solve report to JSON form.
func SolveToJSON(r SolveReport) *JSONSolve {
	return &JSONSolve{
		FEN:      engine.EncodeFEN(r.Start, r.Mover),
		Module:   r.Module.String(),
		Status:   r.Outcome.Status.String(),
		Solved:   r.Outcome.Solved,
		Message:  r.Outcome.Message,
		Path:     engine.EncodeMoves(r.Outcome.Path),
		FinalFEN: engine.EncodeFEN(r.Outcome.Final, r.Mover),
		Explored: r.Outcome.Explored,
	}
}

// VerificationToJSON converts a verification to JSON form.
func VerificationToJSON(v processing.Verification) *JSONVerification {
	jv := &JSONVerification{
		ID:          v.Puzzle.ID,
		FEN:         v.Puzzle.FEN,
		Module:      v.Puzzle.Module.String(),
		Verdict:     v.Verdict.String(),
		TargetMoves: v.Puzzle.TargetMoves,
		Path:        engine.EncodeMoves(v.Outcome.Path),
		Explored:    v.Outcome.Explored,
		Cached:      v.Cached,
	}
	if v.Err != nil {
		jv.Error = v.Err.Error()
	}
	return jv
}

// BoardToJSON converts a board report to JSON form.
func BoardToJSON(r BoardReport) *JSONBoard {
	jb := &JSONBoard{
		FEN:       engine.EncodeFEN(r.Position, r.Mover),
		Module:    r.Module.String(),
		Legal:     engine.EncodeMoves(r.Chess),
		Allowed:   engine.EncodeMoves(r.Allowed),
		Attacked:  squareNames(r.Attacked),
		InCheck:   r.InCheck,
		Goal:      r.Goal,
		HasPieces: r.HasPieces,
	}
	if r.Square != nil {
		jb.Square = r.Square.String()
	}
	return jb
}

func summaryToJSON(s Summary) *JSONSummary {
	js := &JSONSummary{
		Total:     s.Total,
		Failed:    s.Failed,
		Cached:    s.Cached,
		ByVerdict: make(map[string]int),
	}
	for v, n := range s.ByVerdict {
		js.ByVerdict[v.String()] = n
	}
	return js
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as one document on Flush or Close.
type JSONWriter struct {
	w       io.Writer
	output  JSONOutput
	summary Summary
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a batching JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each report
// immediately as its own document.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteSolve buffers a solve report (or writes it immediately in single mode).
func (jw *JSONWriter) WriteSolve(r SolveReport) error {
	if jw.single {
		return jw.encode(SolveToJSON(r))
	}
	jw.output.Solves = append(jw.output.Solves, SolveToJSON(r))
	return nil
}

// WriteVerification buffers a verification (or writes it immediately in single mode).
func (jw *JSONWriter) WriteVerification(v processing.Verification) error {
	jw.summary.Add(v)
	if jw.single {
		return jw.encode(VerificationToJSON(v))
	}
	jw.output.Verifications = append(jw.output.Verifications, VerificationToJSON(v))
	return nil
}

// WriteBoard buffers a board report (or writes it immediately in single mode).
func (jw *JSONWriter) WriteBoard(r BoardReport) error {
	if jw.single {
		return jw.encode(BoardToJSON(r))
	}
	jw.output.Boards = append(jw.output.Boards, BoardToJSON(r))
	return nil
}

// Flush writes all buffered reports as one JSON document. In single mode
// only the verification summary remains to be written.
func (jw *JSONWriter) Flush() error {
	var summary *JSONSummary
	if jw.summary.Total > 0 {
		summary = summaryToJSON(jw.summary)
	}

	var err error
	switch {
	case jw.single && summary != nil:
		err = jw.encode(summary)
	case !jw.single && (len(jw.output.Solves) > 0 || len(jw.output.Verifications) > 0 || len(jw.output.Boards) > 0):
		jw.output.Summary = summary
		err = jw.encode(&jw.output)
	}

	// Clear buffer after writing
	jw.output = JSONOutput{}
	jw.summary = Summary{}
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
