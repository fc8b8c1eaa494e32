package rules

import (
	"testing"

	"github.com/lgbarn/chess-puzzles-go/internal/chess"
	"github.com/lgbarn/chess-puzzles-go/internal/engine"
	"github.com/lgbarn/chess-puzzles-go/internal/testutil"
)

func TestCaptureOnly_SingleCapture(t *testing.T) {
	pos, colour := testutil.MustDecode(t, "8/8/8/3p4/4P3/8/8/8 w")
	s := CaptureOnly{}

	testutil.AssertMoves(t, s.LegalMoves(pos, colour), []string{"e4d5"})
	testutil.AssertTrue(t, s.IsMoveValid(pos, testutil.MustMove(t, "e4d5")), "capture e4d5")
	testutil.AssertFalse(t, s.IsMoveValid(pos, testutil.MustMove(t, "e4e5")), "quiet push e4e5")
	testutil.AssertFalse(t, s.IsGoal(pos, colour), "goal before capture")

	next, _ := pos.ApplyMove(testutil.Sq("e4"), testutil.Sq("d5"))
	testutil.AssertTrue(t, s.IsGoal(next, colour), "goal after capture")
}

func TestCaptureOnly_RequiresChessLegality(t *testing.T) {
	// The rook on e2 is pinned; capturing on a2 would expose the king.
	pos, colour := testutil.MustDecode(t, "4r3/8/8/8/8/8/p3R3/4K3 w")
	s := CaptureOnly{}

	testutil.AssertFalse(t, s.IsMoveValid(pos, testutil.MustMove(t, "e2a2")), "pinned capture")
	testutil.AssertMoves(t, s.LegalMoves(pos, colour), []string{"e2e8"})
}

func TestCaptureOnly_OwnPieceIsNotCapture(t *testing.T) {
	pos, _ := testutil.MustDecode(t, "8/8/8/8/8/8/8/R3N3 w")
	testutil.AssertFalse(t, CaptureOnly{}.IsMoveValid(pos, testutil.MustMove(t, "a1e1")))
}

func TestSafeSquares_RejectsDefendedCapture(t *testing.T) {
	// Rook a1 can capture the knight on a5, but the bishop on c7 defends a5.
	pos, colour := testutil.MustDecode(t, "8/2b5/8/n7/8/8/8/R7 w")
	capture := testutil.MustMove(t, "a1a5")

	testutil.AssertTrue(t, engine.IsLegalMove(pos, capture.From, capture.To), "capture is chess-legal")
	for _, s := range []Strategy{SafeSquares{Goal: EliminateAll}, SafeSquares{Goal: EliminateKing}} {
		testutil.AssertFalse(t, s.IsMoveValid(pos, capture), "%v accepted a defended capture", s.Module())
		for _, m := range s.LegalMoves(pos, colour) {
			if m == capture {
				t.Errorf("%v enumerated the defended capture", s.Module())
			}
		}
	}
}

func TestSafeSquares_ChecksDestination(t *testing.T) {
	pos, _ := testutil.MustDecode(t, "3r4/8/8/8/8/4N3/8/8 w")
	s := SafeSquares{}

	testutil.AssertFalse(t, s.IsMoveValid(pos, testutil.MustMove(t, "e3d5")), "d5 is on the rook's file")
	testutil.AssertTrue(t, s.IsMoveValid(pos, testutil.MustMove(t, "e3f5")), "f5 is safe")
}

func TestSafeSquares_PawnAttacksOnlyDiagonally(t *testing.T) {
	// The black pawn on b2 attacks a1 and c1, not a2.
	pos, _ := testutil.MustDecode(t, "8/8/8/8/8/8/1p6/R7 w")
	testutil.AssertTrue(t, SafeSquares{}.IsMoveValid(pos, testutil.MustMove(t, "a1a2")))
}

func TestSafeSquares_CapturedAttackerNoLongerCounts(t *testing.T) {
	pos, _ := testutil.MustDecode(t, "8/8/8/8/8/8/8/Rr6 w")
	testutil.AssertTrue(t, SafeSquares{}.IsMoveValid(pos, testutil.MustMove(t, "a1b1")), "capturing the lone attacker")
}

func TestSafeSquares_Goals(t *testing.T) {
	kingless, _ := testutil.MustDecode(t, "8/8/8/8/8/8/1p6/R7 w")
	withKing, _ := testutil.MustDecode(t, "7k/8/8/8/8/8/8/R7 w")
	empty, _ := testutil.MustDecode(t, "8/8/8/8/8/8/8/R7 w")

	all := SafeSquares{Goal: EliminateAll}
	king := SafeSquares{Goal: EliminateKing}

	testutil.AssertFalse(t, all.IsGoal(kingless, chess.White), "pawn remains")
	testutil.AssertTrue(t, king.IsGoal(kingless, chess.White), "no king to hunt")
	testutil.AssertFalse(t, king.IsGoal(withKing, chess.White), "king still present")
	testutil.AssertTrue(t, all.IsGoal(empty, chess.White), "board cleared")
}

func TestIsSquareSafe(t *testing.T) {
	pos, _ := testutil.MustDecode(t, "8/8/8/3p4/8/8/8/8 w")
	testutil.AssertFalse(t, IsSquareSafe(pos, testutil.Sq("e4"), chess.White))
	testutil.AssertTrue(t, IsSquareSafe(pos, testutil.Sq("d4"), chess.White))
}

// TestStrategies_NeverWidenLegality checks every enumerated move against
// chess legality on a busy position.
func TestStrategies_NeverWidenLegality(t *testing.T) {
	pos, colour := testutil.MustDecode(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w")
	for _, m := range Modules() {
		s, err := ForModule(m)
		testutil.AssertNoError(t, err)
		for _, move := range s.LegalMoves(pos, colour) {
			if !engine.IsLegalMove(pos, move.From, move.To) {
				t.Errorf("%v enumerated chess-illegal move %v", m, move)
			}
			if !s.IsMoveValid(pos, move) {
				t.Errorf("%v enumerated %v but IsMoveValid rejects it", m, move)
			}
		}
	}
}
