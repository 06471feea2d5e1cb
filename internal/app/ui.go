package app

import (
	"agario/internal/game"
)

// Text scales, in multiples of the 7x13 bitmap face.
const (
	titleScale  = 6.0
	headScale   = 3.0
	bodyScale   = 1.25
	hudScale    = 2.0
	resultScale = 4.0
	buttonScale = 2.0
	hudMargin   = 10.0
)

// RenderScreen draws the active screen. Each draw routine owns only its
// own visuals and treats the session as read-only.
func RenderScreen(r *Renderer, s *game.GameSession, in game.InputState) {
	switch s.State {
	case game.StateMenu:
		drawMenu(r, in)
	case game.StateHelp:
		drawHelp(r, in)
	case game.StatePlay:
		drawPlay(r, s)
	case game.StateWin:
		drawResult(r, s.State, game.WinText, game.Palette.Heading, in)
	case game.StateLose:
		drawResult(r, s.State, game.LoseText, game.Palette.LoseText, in)
	}
	r.EndFrame()
}

func drawButtons(r *Renderer, state game.GameState, in game.InputState) {
	for _, b := range game.ButtonsFor(state) {
		fill := b.Fill(in.MouseX, in.MouseY)
		r.DrawCircle(b.X, b.Y, b.Radius, b.Color.Darker().Darker())
		r.DrawCircle(b.X, b.Y, b.Radius-game.OutlineInset, fill)
		r.CenterString(b.Label, b.X, b.Y, buttonScale, game.Palette.ButtonText)
	}
}

func drawMenu(r *Renderer, in game.InputState) {
	r.CenterString(game.TitleText, game.ArenaWidth/2, 120, titleScale, game.Palette.Title)
	drawButtons(r, game.StateMenu, in)
}

func drawHelp(r *Renderer, in game.InputState) {
	r.CenterString(game.HelpTitle, game.ArenaWidth/2, 90, headScale, game.Palette.Heading)
	y := 160.0
	for _, line := range game.HelpLines {
		r.CenterString(line, game.ArenaWidth/2, y, bodyScale, game.Palette.Heading)
		y += 30
	}
	drawButtons(r, game.StateHelp, in)
}

func drawPlay(r *Renderer, s *game.GameSession) {
	for _, d := range s.Dots {
		r.DrawRing(d.X, d.Y, d.Radius, game.DotInset, d.Color)
	}
	for _, c := range s.DrawOrder() {
		r.DrawRing(c.X, c.Y, c.Radius, game.OutlineInset, c.Color)
	}

	player, bot := s.Score.Labels()
	r.DrawString(player, hudMargin, hudMargin, hudScale, game.Palette.Text)
	w, _ := r.TextSize(bot, hudScale)
	r.DrawString(bot, game.ArenaWidth-w-hudMargin, hudMargin, hudScale, game.Palette.Text)
}

func drawResult(r *Renderer, state game.GameState, msg string, col game.RGB, in game.InputState) {
	r.CenterString(msg, game.ArenaWidth/2, game.ArenaHeight/2-40, resultScale, col)
	drawButtons(r, state, in)
}
