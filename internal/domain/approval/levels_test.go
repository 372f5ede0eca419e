package approval

import "testing"

func TestLevelForAmount(t *testing.T) {
	cases := []struct {
		name     string
		adjusted float64
		want     Level
	}{
		{"zero needs no review", 0, LevelAutomatic},
		{"negative needs no review", -50, LevelAutomatic},
		{"at automatic ceiling", 1_000, LevelAutomatic},
		{"just over automatic", 1_000.01, LevelSupervisor},
		{"at supervisor ceiling", 10_000, LevelSupervisor},
		{"mid manager band", 30_000, LevelManager},
		{"at manager ceiling", 50_000, LevelManager},
		{"director band", 99_999.99, LevelDirector},
		{"cfo band", 250_000, LevelCFO},
		{"above every threshold", 1_000_000, LevelCEO},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LevelForAmount(tc.adjusted); got != tc.want {
				t.Fatalf("LevelForAmount(%v)=%s want=%s", tc.adjusted, got, tc.want)
			}
		})
	}
}

func TestChain(t *testing.T) {
	if got := Chain(LevelAutomatic); got != nil {
		t.Fatalf("AUTOMATIC chain should be empty, got %v", got)
	}

	got := Chain(LevelDirector)
	want := []Level{LevelSupervisor, LevelManager, LevelDirector}
	if len(got) != len(want) {
		t.Fatalf("chain length=%d want=%d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("chain[%d]=%s want=%s", i, got[i], want[i])
		}
	}

	// CEO requires the whole hierarchy.
	if got := Chain(LevelCEO); len(got) != 5 || got[4] != LevelCEO {
		t.Fatalf("CEO chain unexpected: %v", got)
	}
}

func TestLevelValid(t *testing.T) {
	if !LevelCFO.Valid() {
		t.Fatalf("CFO should be valid")
	}
	if Level("INTERN").Valid() {
		t.Fatalf("unknown level should be invalid")
	}
}
