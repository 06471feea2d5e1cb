package game

import (
	"math"
	"testing"
)

func newPlaying(t *testing.T) *GameSession {
	t.Helper()
	s := NewGameSession(1)
	s.StartGame()
	if s.State != StatePlay {
		t.Fatalf("state after StartGame = %v, want PLAY", s.State)
	}
	return s
}

func TestStartGameResets(t *testing.T) {
	s := newPlaying(t)
	if s.Player.X != 150 || s.Player.Y != 300 || s.Player.Radius != StartRadius {
		t.Fatalf("player = %+v, want (150, 300) r=20", s.Player.Circle)
	}
	if s.Bot.X != 450 || s.Bot.Y != 300 || s.Bot.Radius != StartRadius {
		t.Fatalf("bot = %+v, want (450, 300) r=20", s.Bot.Circle)
	}
	if len(s.Dots) != DotCount {
		t.Fatalf("dots = %d, want %d", len(s.Dots), DotCount)
	}

	s.Score = Scoreboard{Player: 4, Bot: 9}
	s.Player.Grow(10)
	s.StartGame()
	if s.Score != (Scoreboard{}) {
		t.Fatalf("score after restart = %+v, want zero", s.Score)
	}
	if s.Player.Radius != StartRadius {
		t.Fatalf("player radius after restart = %v, want %v", s.Player.Radius, StartRadius)
	}
}

func TestNoTransitionRightAfterReset(t *testing.T) {
	s := newPlaying(t)
	s.Dots = nil
	for i := 0; i < 10; i++ {
		s.Update(InputState{})
	}
	if s.State != StatePlay {
		t.Fatalf("state = %v after idle ticks, want PLAY", s.State)
	}
}

func TestPlayerHasPriorityOnSharedDot(t *testing.T) {
	s := newPlaying(t)
	s.Player.X, s.Player.Y = 300, 300
	s.Bot.X, s.Bot.Y = 330, 300
	s.Dots = []Dot{{X: 315, Y: 300, Radius: 5}}

	s.Update(InputState{})

	if s.Score.Player != 1 || s.Score.Bot != 0 {
		t.Fatalf("score = %+v, want player 1 bot 0", s.Score)
	}
	if math.Abs(s.Player.Radius-(StartRadius+GrowPerEat)) > eps {
		t.Fatalf("player radius = %v, want %v", s.Player.Radius, StartRadius+GrowPerEat)
	}
	if s.Bot.Radius != StartRadius {
		t.Fatalf("bot radius = %v, want unchanged %v", s.Bot.Radius, StartRadius)
	}
	if len(s.Dots) != 1 {
		t.Fatalf("dots = %d, want 1", len(s.Dots))
	}
}

func TestBotEatsDotPlayerMisses(t *testing.T) {
	s := newPlaying(t)
	eaten := Dot{X: 460, Y: 300, Radius: 5}
	s.Dots = []Dot{eaten}

	s.Update(InputState{})

	if s.Score.Bot != 1 || s.Score.Player != 0 {
		t.Fatalf("score = %+v, want player 0 bot 1", s.Score)
	}
	if math.Abs(s.Bot.Radius-(StartRadius+GrowPerEat)) > eps {
		t.Fatalf("bot radius = %v, want %v", s.Bot.Radius, StartRadius+GrowPerEat)
	}
	if s.Dots[0] == eaten {
		t.Fatalf("eaten dot was not replaced")
	}
}

func TestEatingKeepsDotCount(t *testing.T) {
	s := newPlaying(t)
	for i := range s.Dots {
		s.Dots[i] = Dot{X: s.Player.X, Y: s.Player.Y, Radius: 4}
	}
	s.Update(InputState{})
	if s.Score.Player != DotCount {
		t.Fatalf("player score = %d, want %d", s.Score.Player, DotCount)
	}
	if len(s.Dots) != DotCount {
		t.Fatalf("dots = %d, want %d", len(s.Dots), DotCount)
	}
}

func TestCollisionOutcome(t *testing.T) {
	cases := []struct {
		name      string
		playerR   float64
		botR      float64
		wantState GameState
	}{
		{"bigger player wins", 30, 20, StateWin},
		{"bigger bot wins", 20, 30, StateLose},
		{"equal radii is a no-op", 25, 25, StatePlay},
	}
	for _, tc := range cases {
		s := newPlaying(t)
		s.Dots = nil
		s.Player.X, s.Player.Y, s.Player.Radius = 300, 300, tc.playerR
		s.Bot.X, s.Bot.Y, s.Bot.Radius = 305, 300, tc.botR
		s.Update(InputState{})
		if s.State != tc.wantState {
			t.Errorf("%s: state = %v, want %v", tc.name, s.State, tc.wantState)
		}
	}
}

func TestUpdateOutsidePlayIsNoop(t *testing.T) {
	s := newPlaying(t)
	s.Dots = nil
	s.Player.Radius = 40
	s.Bot.X, s.Bot.Y = s.Player.X, s.Player.Y
	s.Update(InputState{})
	if s.State != StateWin {
		t.Fatalf("state = %v, want WIN", s.State)
	}
	x := s.Player.X
	s.Update(InputState{Right: true})
	if s.Player.X != x || s.State != StateWin {
		t.Fatalf("update ran outside PLAY")
	}
}

func TestClickTransitions(t *testing.T) {
	s := NewGameSession(7)

	if s.Click(5, 5) {
		t.Fatalf("click on empty space should not hit a button")
	}
	if !s.Click(HelpButton.X, HelpButton.Y) || s.State != StateHelp {
		t.Fatalf("HELP click: state = %v, want HELP", s.State)
	}
	if !s.Click(BackButton.X, BackButton.Y) || s.State != StateMenu {
		t.Fatalf("BACK click: state = %v, want MENU", s.State)
	}
	if !s.Click(PlayButton.X+30, PlayButton.Y) || s.State != StatePlay {
		t.Fatalf("PLAY click: state = %v, want PLAY", s.State)
	}
	// No buttons during play, even where MENU would be.
	if s.Click(MenuButton.X, MenuButton.Y) || s.State != StatePlay {
		t.Fatalf("click during play changed state to %v", s.State)
	}

	s.State = StateLose
	if !s.Click(MenuButton.X, MenuButton.Y) || s.State != StateMenu {
		t.Fatalf("MENU click: state = %v, want MENU", s.State)
	}
}

func TestSessionEmitsEvents(t *testing.T) {
	s := NewGameSession(3)
	var got []Event
	s.Events.SubscribeAll(func(e Event) { got = append(got, e) })

	s.StartGame()
	s.Dots = []Dot{{X: s.Player.X, Y: s.Player.Y, Radius: 4}}
	s.Update(InputState{})

	want := []EventType{EventGameStarted, EventStateChanged, EventDotEaten}
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d: %+v", len(got), len(want), got)
	}
	for i, e := range got {
		if e.Type != want[i] {
			t.Errorf("event %d = %v, want %v", i, e.Type, want[i])
		}
	}
	if got[2].Eater != EaterPlayer || got[2].Score != 1 {
		t.Errorf("eat event = %+v, want player with score 1", got[2])
	}
}

func TestDrawOrderPutsBiggerOnTop(t *testing.T) {
	s := newPlaying(t)
	if order := s.DrawOrder(); order[1] != &s.Bot.Circle {
		t.Fatalf("equal radii: bot should be drawn last")
	}
	s.Player.Grow(1)
	if order := s.DrawOrder(); order[1] != &s.Player.Circle {
		t.Fatalf("bigger player should be drawn last")
	}
}
