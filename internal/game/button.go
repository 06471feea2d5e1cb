package game

// Button is a circular, labelled click target.
type Button struct {
	X, Y   float64
	Radius float64
	Label  string
	Color  RGB
}

// Contains is the circular hit test used for both clicks and hover.
func (b Button) Contains(x, y float64) bool {
	dx := x - b.X
	dy := y - b.Y
	return dx*dx+dy*dy <= b.Radius*b.Radius
}

// Fill returns the body colour, darkened while the pointer hovers over it.
func (b Button) Fill(mouseX, mouseY float64) RGB {
	if b.Contains(mouseX, mouseY) {
		return b.Color.Darker()
	}
	return b.Color
}

var (
	PlayButton = Button{X: ArenaWidth/2 - ButtonSpread, Y: ArenaHeight / 2, Radius: ButtonRadius, Label: "PLAY", Color: Palette.WinButton}
	HelpButton = Button{X: ArenaWidth/2 + ButtonSpread, Y: ArenaHeight / 2, Radius: ButtonRadius, Label: "HELP", Color: Palette.WinButton}
	BackButton = Button{X: ArenaWidth / 2, Y: ArenaHeight - ButtonBottomGap, Radius: ButtonRadius, Label: "BACK", Color: Palette.WinButton}
	MenuButton = Button{X: ArenaWidth / 2, Y: ArenaHeight - ButtonBottomGap, Radius: ButtonRadius, Label: "MENU", Color: Palette.WinButton}
)

// ButtonsFor lists the clickable controls of a screen.
func ButtonsFor(s GameState) []Button {
	switch s {
	case StateMenu:
		return []Button{PlayButton, HelpButton}
	case StateHelp:
		return []Button{BackButton}
	case StateWin:
		return []Button{MenuButton}
	case StateLose:
		lose := MenuButton
		lose.Color = Palette.LoseText
		return []Button{lose}
	}
	return nil
}
