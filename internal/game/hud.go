package game

import "fmt"

// Fixed screen copy.
const (
	TitleText = "AGAR.IO"
	HelpTitle = "HOW TO PLAY"
	WinText   = "YOU WIN!"
	LoseText  = "YOU LOSE!"
)

var HelpLines = []string{
	"Use arrow keys or WASD to move. Eat dots to grow.",
	"The bot will go toward and eat the nearest dot.",
	"The bigger circle eats the smaller one when they overlap.",
}

// Labels returns the HUD strings shown during play.
func (s Scoreboard) Labels() (player, bot string) {
	return fmt.Sprintf("Player: %d", s.Player), fmt.Sprintf("Bot: %d", s.Bot)
}
