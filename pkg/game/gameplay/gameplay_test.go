package gameplay

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"wumpushunt/pkg/engine/grid"
	"wumpushunt/pkg/engine/input"
	"wumpushunt/pkg/game/state"
	"wumpushunt/pkg/game/world"
)

var testEpoch = time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

// makeSession builds a session around a hand-placed world: wumpus and gold
// parked in the far corner, no pits. Tests reposition pieces as needed and
// recompute hazards afterwards.
func makeSession(t *testing.T, size int) *state.Session {
	t.Helper()
	s := &state.Session{Rng: rand.New(rand.NewSource(1))}
	w := world.New(size, s.Rng)
	w.WumpusPos = grid.Point{Col: size - 1, Row: 0}
	w.GoldPos = grid.Point{Col: size - 1, Row: 1}
	w.RecomputeHazards()
	s.World = w
	return s
}

func TestMoveAdvancesAgent(t *testing.T) {
	s := makeSession(t, 6)
	Move(s, grid.East)
	if s.World.AgentPos != (grid.Point{Col: 1, Row: 5}) {
		t.Errorf("agent at %v, want {1 5}", s.World.AgentPos)
	}
	if s.World.MoveCount != 1 {
		t.Errorf("move count = %d, want 1", s.World.MoveCount)
	}

	// Off the south edge: silent no-op.
	Move(s, grid.South)
	if s.World.AgentPos != (grid.Point{Col: 1, Row: 5}) || s.World.MoveCount != 1 {
		t.Error("wall move must leave position and counters unchanged")
	}
}

func TestPitLossStopsTheGame(t *testing.T) {
	s := makeSession(t, 6)
	s.World.Pits.Put(grid.Point{Col: 2, Row: 5})
	s.World.RecomputeHazards()

	Move(s, grid.East)
	Move(s, grid.East) // lands in the pit
	w := s.World
	if !w.GameOver || w.Won {
		t.Fatalf("game state = (over=%v won=%v), want a loss", w.GameOver, w.Won)
	}
	if len(w.GameOverMessage) != 2 || !strings.Contains(w.GameOverMessage[0], "pit") {
		t.Errorf("loss message = %q, want two lines mentioning the pit", w.GameOverMessage)
	}

	// No further moves are processed once the game is over.
	pos, moves := w.AgentPos, w.MoveCount
	Move(s, grid.North)
	if w.AgentPos != pos || w.MoveCount != moves {
		t.Error("moves after game over must be ignored")
	}
}

func TestEatenByWumpus(t *testing.T) {
	s := makeSession(t, 6)
	s.World.WumpusPos = grid.Point{Col: 1, Row: 5}
	s.World.RecomputeHazards()

	Move(s, grid.East)
	if !s.World.GameOver || s.World.Won {
		t.Fatal("walking into the live wumpus must lose the game")
	}
	if !strings.Contains(s.World.GameOverMessage[0], "wumpus") {
		t.Errorf("loss message = %q, want a wumpus mention", s.World.GameOverMessage[0])
	}
}

func TestWalkingOverDeadWumpusIsSafe(t *testing.T) {
	s := makeSession(t, 6)
	s.World.WumpusPos = grid.Point{Col: 1, Row: 5}
	s.World.RecomputeHazards()
	Shoot(s) // adjacent, kills it

	Move(s, grid.East)
	if s.World.GameOver {
		t.Error("a dead wumpus's cell must be safe to enter")
	}
}

func TestGoldPickupThenWin(t *testing.T) {
	s := makeSession(t, 6)
	s.World.GoldPos = grid.Point{Col: 1, Row: 5}

	Move(s, grid.East)
	w := s.World
	if w.GameOver {
		t.Fatal("picking up the gold must not end the game")
	}
	if !w.HasGold {
		t.Fatal("agent must hold the gold after entering its cell")
	}
	found := false
	for _, m := range s.Messages {
		if strings.Contains(m, "gold") {
			found = true
		}
	}
	if !found {
		t.Error("gold pickup must add a status message")
	}

	Move(s, grid.West) // back on the start cell, carrying gold
	if !w.GameOver || !w.Won {
		t.Fatalf("game state = (over=%v won=%v), want a win", w.GameOver, w.Won)
	}
	if len(w.GameOverMessage) != 2 || !strings.Contains(w.GameOverMessage[0], "escaped") {
		t.Errorf("win message = %q, want two lines announcing the escape", w.GameOverMessage)
	}
	if !w.ContinueOffered() {
		t.Error("a win below the size cap must offer level continuation")
	}
}

func TestStartCellWithoutGoldIsNotAWin(t *testing.T) {
	s := makeSession(t, 6)
	Move(s, grid.East)
	Move(s, grid.West)
	if s.World.GameOver {
		t.Error("returning empty-handed must not end the game")
	}
}

func TestWumpusMovesEveryThirdPlayerMove(t *testing.T) {
	s := makeSession(t, 6)
	// Corner wumpus with a single legal candidate, so the cadence move is
	// deterministic.
	s.World.WumpusPos = grid.Point{Col: 5, Row: 0}
	s.World.Pits.Put(grid.Point{Col: 4, Row: 0})
	s.World.RecomputeHazards()

	corner := grid.Point{Col: 5, Row: 0}
	Move(s, grid.East)
	Move(s, grid.West)
	if s.World.WumpusPos != corner {
		t.Fatalf("wumpus moved after %d player moves, want it parked until the third", s.World.PlayerMoveCount)
	}
	Move(s, grid.East)
	if s.World.WumpusPos != (grid.Point{Col: 5, Row: 1}) {
		t.Errorf("after the third move the wumpus is at %v, want {5 1}", s.World.WumpusPos)
	}
}

func TestShootWithoutArrowIsIgnored(t *testing.T) {
	s := makeSession(t, 6)
	s.World.HasArrow = false
	before := len(s.Messages)
	Shoot(s)
	if len(s.Messages) != before {
		t.Error("shooting with no arrow must produce no message")
	}
	if s.World.GameOver {
		t.Error("shooting with no arrow must not affect the game")
	}
}

func TestScoutThroughController(t *testing.T) {
	s := makeSession(t, 6)
	ActivateScout(s, testEpoch)
	if !s.World.Scout.Active {
		t.Fatal("first scout activation must succeed")
	}

	// Inside the reuse gate: ignored, no message.
	before := len(s.Messages)
	ActivateScout(s, testEpoch.Add(3*time.Second))
	if len(s.Messages) != before {
		t.Error("gated scout request must stay silent")
	}

	Tick(s, testEpoch.Add(world.ScoutActiveWindow))
	if s.World.Scout.Active {
		t.Error("tick past the window must deactivate the scout")
	}
}

func TestContinueIsNoOpUnlessOffered(t *testing.T) {
	s := makeSession(t, 6)
	w := s.World
	ContinueNextLevel(s)
	if s.World != w {
		t.Error("continue with a live game must change nothing")
	}

	w.SetGameOver(false, "You fell into a pit!", restartPrompt)
	ContinueNextLevel(s)
	if s.World != w {
		t.Error("continue after a loss must change nothing")
	}
}

func TestContinueGrowsTheGrid(t *testing.T) {
	s := makeSession(t, 6)
	s.World.SetGameOver(true, "You escaped with the gold in 8 moves!", restartPrompt)

	ContinueNextLevel(s)
	if s.World.GridSize != 7 {
		t.Fatalf("grid size after continue = %d, want 7", s.World.GridSize)
	}
	if s.World.GameOver {
		t.Error("the continued level must start live")
	}
	if s.World.AgentPos != s.World.Start() {
		t.Error("the continued level must start the agent on the start cell")
	}
}

func TestContinueStopsAtMaxSize(t *testing.T) {
	s := makeSession(t, world.MaxGridSize)
	s.World.SetGameOver(true, "You escaped with the gold in 30 moves!", restartPrompt)

	w := s.World
	ContinueNextLevel(s)
	if s.World != w {
		t.Error("no continuation exists past the maximum grid size")
	}
}

func TestNewGameResetsToBaseSize(t *testing.T) {
	s := makeSession(t, 9)
	s.World.SetGameOver(false, "The wumpus ate you!", restartPrompt)

	NewGame(s)
	if s.World.GridSize != world.BaseGridSize {
		t.Errorf("grid size after new game = %d, want %d", s.World.GridSize, world.BaseGridSize)
	}
	if s.World.GameOver {
		t.Error("a new game must start live")
	}
}

func TestProcessIntentDispatch(t *testing.T) {
	s := makeSession(t, 6)

	ProcessIntent(s, input.Intent{Action: input.ActionMoveEast}, testEpoch)
	if s.World.AgentPos != (grid.Point{Col: 1, Row: 5}) {
		t.Errorf("move intent: agent at %v, want {1 5}", s.World.AgentPos)
	}

	target := grid.Point{Col: 3, Row: 3}
	ProcessIntent(s, input.Intent{Action: input.ActionMark, Target: target, HasTarget: true}, testEpoch)
	if !s.World.Marked.Has(target) {
		t.Error("mark intent must flag the target cell")
	}
	ProcessIntent(s, input.Intent{Action: input.ActionMark, Target: target, HasTarget: true}, testEpoch)
	if s.World.Marked.Has(target) {
		t.Error("marking the same cell again must clear the flag")
	}

	ProcessIntent(s, input.Intent{Action: input.ActionShoot}, testEpoch)
	if s.World.HasArrow {
		t.Error("shoot intent must spend the arrow")
	}

	pos := s.World.AgentPos
	ProcessIntent(s, input.Intent{Action: input.ActionNone}, testEpoch)
	if s.World.AgentPos != pos {
		t.Error("a none intent must change nothing")
	}
}

func TestBuildSessionStartsPlayable(t *testing.T) {
	s := BuildSession()
	if s.World == nil {
		t.Fatal("BuildSession must generate a world")
	}
	if s.World.GridSize != world.BaseGridSize {
		t.Errorf("first level size = %d, want %d", s.World.GridSize, world.BaseGridSize)
	}
	if s.World.GameOver {
		t.Error("first level must start live")
	}
	if len(s.Messages) == 0 {
		t.Error("the welcome messages are missing")
	}
}
