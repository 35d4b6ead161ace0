package modplay

import (
	"strings"
	"testing"
)

func TestPlayers(t *testing.T) {
	players := Players()
	if len(players) == 0 || players[0].ID != DefaultPlayer {
		t.Fatalf("the default player is not listed first: %+v", players)
	}
	for _, p := range players {
		m := newTestModule(t, 1, 6, []string{"C-3 01"})
		s := newTestStream(t, m, LoadModuleConfig{Player: p.ID})
		s.PlayFrame()
		if have := s.ChannelState(0).Period; have != 214 {
			t.Errorf("%s: period %d, want 214", p.ID, have)
		}
	}

	m := newTestModule(t, 1, 6, []string{"C-3 01"})
	err := NewStream().LoadModule(m, LoadModuleConfig{Player: "ft2"})
	if err == nil || !strings.Contains(err.Error(), "unknown player") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNoiseTrackerPlayer(t *testing.T) {
	tests := []struct {
		name    string
		player  string
		speed   int
		rows    []string
		periods []int
	}{
		{
			name:    "fine portamento",
			player:  "pt21a",
			speed:   2,
			rows:    []string{"C-3 01 .. E14"},
			periods: []int{210, 210},
		},
		{
			// Extended commands other than E0x are ignored.
			name:    "fine portamento",
			player:  "nt11",
			speed:   2,
			rows:    []string{"C-3 01 .. E14"},
			periods: []int{214, 214},
		},
		{
			name:    "vibrato",
			player:  "pt21a",
			speed:   3,
			rows:    []string{"C-3 01 .. 48F"},
			periods: []int{214, 214, 214 + (180*15)>>7},
		},
		{
			name:    "vibrato",
			player:  "nt11",
			speed:   3,
			rows:    []string{"C-3 01 .. 48F"},
			periods: []int{214, 214, 214 + (180*15)>>6},
		},
		{
			// 5xy is ignored, so the note is triggered.
			name:    "tone portamento and volume slide",
			player:  "nt11",
			speed:   3,
			rows:    []string{"C-3 01", "C-2 .. .. 508"},
			periods: []int{214, 214, 214, 428, 428, 428},
		},
	}

	for _, test := range tests {
		t.Run(test.player+"/"+test.name, func(t *testing.T) {
			m := newTestModule(t, 1, test.speed, test.rows)
			s := newTestStream(t, m, LoadModuleConfig{Player: test.player})
			for tick, period := range test.periods {
				s.PlayFrame()
				if have := s.ChannelState(0).Period; have != period {
					t.Errorf("tick %d: period %d, want %d", tick, have, period)
				}
			}
		})
	}
}

func TestNoiseTrackerTransport(t *testing.T) {
	m := newTestModule(t, 1, 1,
		testRows(8, map[int]string{1: "... .. .. D04"}),
		testRows(8, map[int]string{0: "... .. .. F7D"}))
	s := newTestStream(t, m, LoadModuleConfig{Player: "nt11"})

	s.PlayFrame()
	s.PlayFrame()
	s.PlayFrame()
	// D04 breaks to the first row.
	if s.Position() != 1 || s.Row() != 0 {
		t.Fatalf("have position %d row %d, want 1 and 0", s.Position(), s.Row())
	}
	// F7D sets the speed to 0x1D instead of the tempo.
	info := s.Snapshot()
	if info.Speed != 0x1d || info.Tempo != 125 {
		t.Fatalf("have speed %d tempo %d, want 29 and 125", info.Speed, info.Tempo)
	}
}
