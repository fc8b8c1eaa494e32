package rules

import (
	"encoding/json"
	"testing"

	"github.com/lgbarn/chess-puzzles-go/internal/errors"
	"github.com/lgbarn/chess-puzzles-go/internal/testutil"
)

func TestParseModule(t *testing.T) {
	tests := []struct {
		text string
		want Module
	}{
		{"capture", ModuleCapture},
		{"1", ModuleCapture},
		{"Safe-Capture", ModuleSafeCapture},
		{"2", ModuleSafeCapture},
		{" king-hunt ", ModuleKingHunt},
		{"3", ModuleKingHunt},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseModule(tt.text)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
			testutil.AssertEqual(t, got.String(), moduleNames[tt.want])
		})
	}
}

func TestParseModule_Unknown(t *testing.T) {
	for _, text := range []string{"", "4", "checkmate"} {
		_, err := ParseModule(text)
		testutil.AssertErrorIs(t, err, errors.ErrUnknownModule, "ParseModule(%q)", text)
	}
}

func TestForModule(t *testing.T) {
	for _, m := range Modules() {
		s, err := ForModule(m)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, s.Module(), m)
	}

	_, err := ForModule(Module(99))
	testutil.AssertErrorIs(t, err, errors.ErrUnknownModule)
	testutil.AssertEqual(t, Module(99).String(), "module(99)")
}

func TestModule_JSON(t *testing.T) {
	data, err := json.Marshal(ModuleKingHunt)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, string(data), `"king-hunt"`)

	for _, input := range []string{`"safe-capture"`, `2`, `"2"`} {
		var m Module
		testutil.AssertNoError(t, json.Unmarshal([]byte(input), &m), "Unmarshal(%s)", input)
		testutil.AssertEqual(t, m, ModuleSafeCapture)
	}

	var m Module
	testutil.AssertErrorIs(t, json.Unmarshal([]byte(`"mate-in-2"`), &m), errors.ErrUnknownModule)

	_, err = json.Marshal(Module(0))
	testutil.AssertTrue(t, err != nil, "marshal of zero module should fail")
}
