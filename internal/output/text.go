package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-puzzles-go/internal/chess"
	"github.com/lgbarn/chess-puzzles-go/internal/engine"
	"github.com/lgbarn/chess-puzzles-go/internal/processing"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	indent        string
}

// NewOutputWriter creates a new output writer. Continuation lines start
// with indent.
func NewOutputWriter(w io.Writer, maxLineLength int, indent string) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
		indent:        indent,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			fmt.Fprint(o.w, o.indent)
			o.lineLength = len(o.indent)
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteNoSpace writes without adding a leading space.
func (o *OutputWriter) WriteNoSpace(s string) {
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// DefaultLineLength is the wrap column for move lists.
const DefaultLineLength = 80

// TextWriter writes human-readable reports. Verifications are written as
// they arrive; Flush writes the summary.
type TextWriter struct {
	w       io.Writer
	summary Summary
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteSolve writes the outcome, the move path and the final position.
func (tw *TextWriter) WriteSolve(r SolveReport) error {
	ow := NewOutputWriter(tw.w, DefaultLineLength, "      ")
	ow.WriteNoSpace(fmt.Sprintf("%s: %s", r.Module, r.Outcome.Message))
	ow.NewLine()
	ow.WriteNoSpace("start:")
	ow.Write(engine.EncodeFEN(r.Start, r.Mover))
	ow.NewLine()
	if r.Outcome.Solved {
		ow.WriteNoSpace("path:")
		if len(r.Outcome.Path) == 0 {
			ow.Write("(already solved)")
		}
		for i, move := range r.Outcome.Path {
			ow.Write(fmt.Sprintf("%d.%s", i+1, move))
		}
		ow.NewLine()
		ow.WriteNoSpace("final:")
		ow.Write(engine.EncodeFEN(r.Outcome.Final, r.Mover))
		ow.NewLine()
	}
	ow.WriteNoSpace(fmt.Sprintf("explored %d positions", r.Outcome.Explored))
	ow.NewLine()
	return nil
}

// WriteVerification writes one line per puzzle.
func (tw *TextWriter) WriteVerification(v processing.Verification) error {
	tw.summary.Add(v)

	var detail string
	switch v.Verdict {
	case processing.VerdictOK:
		detail = fmt.Sprintf("%d moves", len(v.Outcome.Path))
	case processing.VerdictTargetMismatch:
		detail = fmt.Sprintf("%d moves, target %d", len(v.Outcome.Path), v.Puzzle.TargetMoves)
	case processing.VerdictInvalid, processing.VerdictDuplicate:
		if v.Err != nil {
			detail = v.Err.Error()
		}
	default:
		detail = v.Outcome.Message
	}
	if v.Cached {
		detail += " (cached)"
	}
	_, err := fmt.Fprintf(tw.w, "%-16s %-13s %-16s %s\n", v.Puzzle.ID, v.Puzzle.Module, v.Verdict, detail)
	return err
}

// WriteBoard writes a diagram followed by the move and attack lists.
func (tw *TextWriter) WriteBoard(r BoardReport) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "board: %s\n", engine.EncodeBoard(r.Position))
	sb.WriteString(RenderBoard(r.Position, r.Attacked))
	fmt.Fprintf(&sb, "%s to move, module %s\n", r.Mover, r.Module)
	if r.InCheck {
		sb.WriteString("king is in check\n")
	}
	if r.Goal {
		sb.WriteString("goal reached\n")
	}
	if !r.HasPieces {
		sb.WriteString("no pieces to move\n")
	}
	if _, err := io.WriteString(tw.w, sb.String()); err != nil {
		return err
	}

	ow := NewOutputWriter(tw.w, DefaultLineLength, "         ")
	writeList := func(label string, items []string) {
		ow.WriteNoSpace(label)
		if len(items) == 0 {
			ow.Write("none")
		}
		for _, item := range items {
			ow.Write(item)
		}
		ow.NewLine()
	}
	writeList("legal:  ", engine.EncodeMoves(r.Chess))
	writeList("allowed:", engine.EncodeMoves(r.Allowed))
	writeList("attacked:", squareNames(r.Attacked))
	return nil
}

// Flush writes the verification summary, if any verifications were written.
func (tw *TextWriter) Flush() error {
	if tw.summary.Total == 0 {
		return nil
	}
	var parts []string
	for v := processing.VerdictOK; v <= processing.VerdictInvalid; v++ {
		if n := tw.summary.ByVerdict[v]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, v))
		}
	}
	_, err := fmt.Fprintf(tw.w, "%d puzzles: %s; %d failed, %d from cache\n",
		tw.summary.Total, strings.Join(parts, ", "), tw.summary.Failed, tw.summary.Cached)
	tw.summary = Summary{}
	return err
}

// Close flushes the text writer.
func (tw *TextWriter) Close() error {
	return tw.Flush()
}

// RenderBoard draws the position rank 8 first. Empty squares are '.', or
// 'x' when they are in marked.
func RenderBoard(pos chess.Position, marked chess.SquareSet) string {
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		sb.WriteByte(byte(chess.RankBase + rank))
		sb.WriteByte(' ')
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.MustSquare(file, rank)
			switch piece, ok := pos.PieceAt(sq); {
			case ok:
				sb.WriteByte(piece.Letter())
			case marked.Has(sq):
				sb.WriteByte('x')
			default:
				sb.WriteByte('.')
			}
			if file < chess.BoardSize-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

func squareNames(set chess.SquareSet) []string {
	squares := set.Squares()
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	return names
}
