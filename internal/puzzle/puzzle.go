// Package puzzle loads and validates puzzle definitions.
package puzzle

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lgbarn/chess-puzzles-go/internal/chess"
	"github.com/lgbarn/chess-puzzles-go/internal/engine"
	"github.com/lgbarn/chess-puzzles-go/internal/errors"
	"github.com/lgbarn/chess-puzzles-go/internal/rules"
)

var validate = validator.New()

// Puzzle is one training puzzle: a start position, the module whose rules
// apply, and optionally the expected optimal solution length.
type Puzzle struct {
	ID          string       `json:"id,omitempty" validate:"omitempty,max=64"`
	FEN         string       `json:"fen" validate:"required"`
	Module      rules.Module `json:"module" validate:"required"`
	TargetMoves int          `json:"target_moves,omitempty" validate:"omitempty,min=1,max=64"`
	Description string       `json:"description,omitempty" validate:"omitempty,max=500"`
}

// Validate checks field constraints and that the position decodes.
// Field failures wrap ErrInvalidPuzzle; a bad position wraps
// ErrMalformedNotation.
func (p Puzzle) Validate() error {
	if errs := validate.Struct(p); errs != nil {
		verrs, ok := errs.(validator.ValidationErrors)
		if !ok {
			return errors.Wrap(errors.ErrInvalidPuzzle, errs.Error())
		}
		return errors.Wrap(errors.ErrInvalidPuzzle, describe(verrs))
	}
	if _, err := rules.ForModule(p.Module); err != nil {
		return err
	}
	if _, _, err := engine.DecodeFEN(p.FEN); err != nil {
		return err
	}
	return nil
}

// describe renders validation failures as one line.
func describe(errs validator.ValidationErrors) string {
	var details strings.Builder
	for _, err := range errs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch err.Tag() {
		case "required":
			details.WriteString(fmt.Sprintf("%s is required", err.Field()))
		case "min":
			details.WriteString(fmt.Sprintf("%s must be at least %s", err.Field(), err.Param()))
		case "max":
			if err.Kind() == reflect.String {
				details.WriteString(fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param()))
			} else {
				details.WriteString(fmt.Sprintf("%s must be at most %s", err.Field(), err.Param()))
			}
		default:
			details.WriteString(fmt.Sprintf("%s failed %s validation", err.Field(), err.Tag()))
		}
	}
	return details.String()
}

// Start decodes the start position and side to move.
func (p Puzzle) Start() (chess.Position, chess.Colour, error) {
	return engine.DecodeFEN(p.FEN)
}

// Strategy returns the rule strategy for the puzzle's module.
func (p Puzzle) Strategy() (rules.Strategy, error) {
	return rules.ForModule(p.Module)
}

// String returns the id and module, e.g. "p-12 (capture)".
func (p Puzzle) String() string {
	return fmt.Sprintf("%s (%s)", p.ID, p.Module)
}
