// internal/system/progression_test.go
package system

import (
	"testing"

	"cat-burrow-defense/internal/component"
	"cat-burrow-defense/internal/config"
	"cat-burrow-defense/internal/defs"
	"cat-burrow-defense/internal/event"
)

func TestWaveCompletionBonus(t *testing.T) {
	st := straightState()
	st.Wave = 3
	st.WaveActive = true
	st.SpawnRemaining = 0
	dispatcher := event.NewDispatcher()
	spawn := NewSpawnSystem(st, newTestRng(), dispatcher)
	ps := NewProgressionSystem(st, spawn, dispatcher)

	before := st.Kibbles
	ps.Update()
	if st.WaveActive {
		t.Fatalf("wave must complete with no rats left")
	}
	want := before + config.WaveBonusBase + 3*config.WaveBonusPerWave
	if st.Kibbles != want {
		t.Fatalf("completion bonus: want %d got %d", want, st.Kibbles)
	}
}

func TestWaveNotDoneWhileRatsRemain(t *testing.T) {
	st := straightState()
	st.Wave = 1
	st.WaveActive = true
	st.SpawnRemaining = 0
	st.Enemies = []component.Enemy{{HP: 5, MaxHP: 5}}
	dispatcher := event.NewDispatcher()
	ps := NewProgressionSystem(st, NewSpawnSystem(st, newTestRng(), dispatcher), dispatcher)

	ps.Update()
	if !st.WaveActive {
		t.Fatalf("wave must stay active while rats are on the field")
	}
}

func TestMilestoneAdvancesMap(t *testing.T) {
	st := straightState()
	st.Wave = config.MapMilestoneWaves
	st.WaveActive = true
	st.SpawnRemaining = 0
	st.Towers = []component.Tower{defs.NewTower(component.KindScout, 2, 2)}
	st.Lives = 3
	st.Kibbles = 500
	dispatcher := event.NewDispatcher()
	ps := NewProgressionSystem(st, NewSpawnSystem(st, newTestRng(), dispatcher), dispatcher)

	ps.Update()
	if st.MapIndex != 1 {
		t.Fatalf("wave 10 must advance the map, index=%d", st.MapIndex)
	}
	if len(st.Towers) != 0 {
		t.Fatalf("cats do not carry across maps")
	}
	if st.Lives != config.StartingLives {
		t.Fatalf("lives reset on a new map, got %d", st.Lives)
	}
	// The completion bonus lands first, then the balance carries over.
	want := 500 + config.WaveBonusBase + config.MapMilestoneWaves*config.WaveBonusPerWave
	if st.Kibbles != want {
		t.Fatalf("kibbles persist across maps: want %d got %d", want, st.Kibbles)
	}
	if len(st.Path) == 0 {
		t.Fatalf("new map path must be rebuilt")
	}
}

func TestMapWrapsAfterLast(t *testing.T) {
	st := straightState()
	st.MapIndex = defs.MapCount() - 1
	dispatcher := event.NewDispatcher()
	ps := NewProgressionSystem(st, NewSpawnSystem(st, newTestRng(), dispatcher), dispatcher)

	ps.AdvanceMap()
	if st.MapIndex != 0 {
		t.Fatalf("map index must wrap to 0, got %d", st.MapIndex)
	}
}

func TestAutoWavesChainImmediately(t *testing.T) {
	st := straightState()
	st.Wave = 1
	st.WaveActive = true
	st.SpawnRemaining = 0
	st.AutoWaves = true
	dispatcher := event.NewDispatcher()
	ps := NewProgressionSystem(st, NewSpawnSystem(st, newTestRng(), dispatcher), dispatcher)

	ps.Update()
	if !st.WaveActive || st.Wave != 2 {
		t.Fatalf("auto-wave must start the next wave: active=%v wave=%d", st.WaveActive, st.Wave)
	}
}

func TestCleanupDropsDeadRats(t *testing.T) {
	st := straightState()
	st.Enemies = []component.Enemy{
		{HP: 5, MaxHP: 5, PathProgress: 1},
		{HP: 0, MaxHP: 5, PathProgress: 2},
		{HP: -2, MaxHP: 5, PathProgress: 3},
	}
	Cleanup(st)
	if len(st.Enemies) != 1 || st.Enemies[0].PathProgress != 1 {
		t.Fatalf("only the live rat survives cleanup: %+v", st.Enemies)
	}
}

func TestGameOverLatches(t *testing.T) {
	st := straightState()
	st.Lives = 0
	st.AutoWaves = true
	dispatcher := event.NewDispatcher()
	fired := 0
	dispatcher.Subscribe(event.GameOver, listenerFunc(func(event.Event) { fired++ }))
	ps := NewProgressionSystem(st, NewSpawnSystem(st, newTestRng(), dispatcher), dispatcher)

	ps.CheckGameOver()
	if !st.GameOver || st.AutoWaves {
		t.Fatalf("game over must latch and clear auto-wave")
	}
	ps.CheckGameOver()
	if fired != 1 {
		t.Fatalf("game over must dispatch once, got %d", fired)
	}
}
