package game

type GameState int

const (
	StateMenu GameState = iota
	StateHelp
	StatePlay // main gameplay
	StateWin  // player swallowed the bot
	StateLose // bot swallowed the player
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "MENU"
	case StateHelp:
		return "HELP"
	case StatePlay:
		return "PLAY"
	case StateWin:
		return "WIN"
	case StateLose:
		return "LOSE"
	}
	return "UNKNOWN"
}

// Scoreboard counts dots eaten this round.
type Scoreboard struct {
	Player int
	Bot    int
}

// GameSession is the whole application state. Only the loop mutates it;
// the renderer reads it.
type GameSession struct {
	State  GameState
	Player *Player
	Bot    *Bot
	Dots   []Dot
	Score  Scoreboard

	Width, Height float64

	rng    *Rand
	Events *EventBus
}

func NewGameSession(seed uint64) *GameSession {
	return &GameSession{
		State:  StateMenu,
		Width:  ArenaWidth,
		Height: ArenaHeight,
		rng:    NewRand(seed),
		Events: NewEventBus(),
	}
}

// StartGame resets entities, dots and scores and begins a round.
func (s *GameSession) StartGame() {
	s.Player = NewPlayer(s.Width/4, s.Height/2)
	s.Bot = NewBot(3*s.Width/4, s.Height/2)
	s.Dots = SpawnDots(s.rng, DotCount, s.Width, s.Height)
	s.Score = Scoreboard{}
	s.Events.Emit(Event{Type: EventGameStarted, X: s.Player.X, Y: s.Player.Y})
	s.setState(StatePlay)
}

func (s *GameSession) setState(next GameState) {
	if s.State == next {
		return
	}
	s.State = next
	s.Events.Emit(Event{Type: EventStateChanged, State: next})
}

// Click handles a primary click at (x, y) against the active screen's
// buttons. It reports whether a button was hit.
func (s *GameSession) Click(x, y float64) bool {
	switch s.State {
	case StateMenu:
		if PlayButton.Contains(x, y) {
			s.StartGame()
			return true
		}
		if HelpButton.Contains(x, y) {
			s.setState(StateHelp)
			return true
		}
	case StateHelp:
		if BackButton.Contains(x, y) {
			s.setState(StateMenu)
			return true
		}
	case StateWin, StateLose:
		if MenuButton.Contains(x, y) {
			s.setState(StateMenu)
			return true
		}
	}
	return false
}

// Update advances the simulation by one tick. It is a no-op outside PLAY.
func (s *GameSession) Update(in InputState) {
	if s.State != StatePlay {
		return
	}
	s.Player.Update(in, s.Width, s.Height)
	s.Bot.Update(s.Dots, s.Width, s.Height)
	s.eatDots()

	switch Resolve(s.Player.Circle, s.Bot.Circle) {
	case OutcomeWin:
		s.endRound(StateWin)
	case OutcomeLose:
		s.endRound(StateLose)
	}
}

// eatDots makes a single pass over the dots. The player has priority: a dot
// the player eats is replaced before the bot gets to test it.
func (s *GameSession) eatDots() {
	for i := range s.Dots {
		d := s.Dots[i]
		if s.Player.Eats(d) {
			s.Player.Grow(GrowPerEat)
			s.Score.Player++
			s.Dots[i] = RandomDot(s.rng, s.Width, s.Height)
			s.Events.Emit(Event{Type: EventDotEaten, X: d.X, Y: d.Y, Eater: EaterPlayer, Score: s.Score.Player})
			continue
		}
		if s.Bot.Eats(d) {
			s.Bot.Grow(GrowPerEat)
			s.Score.Bot++
			s.Dots[i] = RandomDot(s.rng, s.Width, s.Height)
			s.Events.Emit(Event{Type: EventDotEaten, X: d.X, Y: d.Y, Eater: EaterBot, Score: s.Score.Bot})
		}
	}
}

func (s *GameSession) endRound(next GameState) {
	s.Events.Emit(Event{Type: EventRoundOver, X: s.Bot.X, Y: s.Bot.Y, State: next})
	s.setState(next)
}

// DrawOrder returns the entities back to front: the bigger one is drawn last.
func (s *GameSession) DrawOrder() [2]*Circle {
	if s.Player.Radius > s.Bot.Radius {
		return [2]*Circle{&s.Bot.Circle, &s.Player.Circle}
	}
	return [2]*Circle{&s.Player.Circle, &s.Bot.Circle}
}
