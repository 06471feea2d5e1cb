package game

import "time"

// Arena dimensions (logical canvas units).
const (
	ArenaWidth  = 600
	ArenaHeight = 600
)

// Window defaults.
const (
	WindowWidth  = ArenaWidth
	WindowHeight = ArenaHeight
	WindowTitle  = "AgarIO"
)

// Simulation timing.
const (
	TickRate      = 60
	TickDuration  = time.Second / TickRate
	MaxFrameDelta = 250 * time.Millisecond
)

// Dots.
const (
	DotCount     = 30
	DotMargin    = 18.0
	DotMinRadius = 4.0
	DotRadiusVar = 3.5 // radius in [4.0, 7.5)
	DotColorMin  = 60
	DotColorVar  = 160
)

// Entities.
const (
	StartRadius  = 20.0
	GrowPerEat   = 0.75
	MoveEpsilon  = 0.0001
	OutlineInset = 3.0
	DotInset     = 1.0
)

// Player speed: max(PlayerMinSpeed, PlayerBaseSpeed - (r-StartRadius)/PlayerSpeedFalloff).
const (
	PlayerBaseSpeed    = 4.0
	PlayerMinSpeed     = 1.0
	PlayerSpeedFalloff = 20.0
)

// Bot speed: max(BotMinSpeed, BotSpeedFactor*(BotBaseSpeed - (r-StartRadius)/BotSpeedFalloff)).
const (
	BotBaseSpeed    = 3.5
	BotMinSpeed     = 0.7
	BotSpeedFactor  = 0.8 // ~80% of the player's top speed
	BotSpeedFalloff = 22.0
)

// Buttons.
const (
	ButtonRadius    = 60.0
	ButtonSpread    = 120.0
	ButtonBottomGap = 100.0
)
