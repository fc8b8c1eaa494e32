package puzzle

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-puzzles-go/internal/errors"
)

// maxLineSize bounds a single JSON line.
const maxLineSize = 1024 * 1024

// Source supplies puzzles.
type Source interface {
	Puzzles() ([]Puzzle, error)
}

// FileSource reads puzzles from a JSON-lines file.
type FileSource struct {
	Path string
}

// Puzzles implements Source.
func (s FileSource) Puzzles() ([]Puzzle, error) {
	return LoadFile(s.Path)
}

// ReaderSource reads puzzles from an io.Reader once.
type ReaderSource struct {
	Reader io.Reader
}

// Puzzles implements Source.
func (s ReaderSource) Puzzles() ([]Puzzle, error) {
	return Load(s.Reader)
}

// LoadFile reads a JSON-lines puzzle file. Errors carry the file name.
func LoadFile(path string) ([]Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	puzzles, err := Load(f)
	var perr *errors.PuzzleError
	if errors.As(err, &perr) {
		perr.File = filepath.Base(path)
	}
	return puzzles, err
}

// Load reads one JSON puzzle per line. Blank lines and lines starting with
// '#' are skipped. Puzzles without an id get a random one. Loading stops
// at the first invalid line with a *errors.PuzzleError naming it.
func Load(r io.Reader) ([]Puzzle, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var puzzles []Puzzle
	seen := make(map[string]int)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		p, err := decodeLine(line)
		if err != nil {
			return puzzles, &errors.PuzzleError{Err: err, ID: p.ID, Line: lineNum}
		}
		if p.ID == "" {
			p.ID = uuid.New().String()
		}
		if first, dup := seen[p.ID]; dup {
			return puzzles, &errors.PuzzleError{
				Err:  errors.Wrapf(errors.ErrDuplicatePuzzle, "id first used on line %d", first),
				ID:   p.ID,
				Line: lineNum,
			}
		}
		if err := p.Validate(); err != nil {
			return puzzles, &errors.PuzzleError{Err: err, ID: p.ID, Line: lineNum}
		}

		seen[p.ID] = lineNum
		puzzles = append(puzzles, p)
	}
	if err := scanner.Err(); err != nil {
		return puzzles, &errors.PuzzleError{Err: err, Line: lineNum + 1}
	}
	return puzzles, nil
}

func decodeLine(line string) (Puzzle, error) {
	var p Puzzle
	dec := json.NewDecoder(bytes.NewReader([]byte(line)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, errors.ErrUnknownModule) {
			return p, err
		}
		return p, errors.Wrap(errors.ErrInvalidPuzzle, err.Error())
	}
	return p, nil
}
