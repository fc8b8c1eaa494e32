// Package rules defines the per-module puzzle rules: which chess-legal moves
// a module allows and when its goal is reached.
package rules

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-puzzles-go/internal/errors"
)

// Module identifies one of the puzzle variants.
type Module int

const (
	// ModuleCapture: every move must capture; clear the board of enemy pieces.
	ModuleCapture Module = iota + 1
	// ModuleSafeCapture: never stop on an attacked square; clear the board.
	ModuleSafeCapture
	// ModuleKingHunt: never stop on an attacked square; capture the king.
	ModuleKingHunt
)

var moduleNames = map[Module]string{
	ModuleCapture:     "capture",
	ModuleSafeCapture: "safe-capture",
	ModuleKingHunt:    "king-hunt",
}

// String returns the module's name as used in puzzle files.
func (m Module) String() string {
	if name, ok := moduleNames[m]; ok {
		return name
	}
	return fmt.Sprintf("module(%d)", int(m))
}

// ParseModule accepts a module name or its number ("1", "2", "3").
func ParseModule(text string) (Module, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	for m, name := range moduleNames {
		if text == name || text == fmt.Sprintf("%d", int(m)) {
			return m, nil
		}
	}
	return 0, errors.Wrapf(errors.ErrUnknownModule, "%q", text)
}

// ForModule returns the strategy implementing a module.
func ForModule(m Module) (Strategy, error) {
	switch m {
	case ModuleCapture:
		return CaptureOnly{}, nil
	case ModuleSafeCapture:
		return SafeSquares{Goal: EliminateAll}, nil
	case ModuleKingHunt:
		return SafeSquares{Goal: EliminateKing}, nil
	}
	return nil, errors.Wrapf(errors.ErrUnknownModule, "%d", int(m))
}

// Modules lists every known module in order.
func Modules() []Module {
	return []Module{ModuleCapture, ModuleSafeCapture, ModuleKingHunt}
}

// MarshalJSON encodes the module by name.
func (m Module) MarshalJSON() ([]byte, error) {
	if _, ok := moduleNames[m]; !ok {
		return nil, errors.Wrapf(errors.ErrUnknownModule, "%d", int(m))
	}
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts a module name or number, quoted or bare.
func (m *Module) UnmarshalJSON(data []byte) error {
	text := string(data)
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = unquoted
	}
	parsed, err := ParseModule(text)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
