package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Darker returns the colour scaled to 70%.
func (c RGB) Darker() RGB {
	return RGB{
		R: uint8(uint16(c.R) * 7 / 10),
		G: uint8(uint16(c.G) * 7 / 10),
		B: uint8(uint16(c.B) * 7 / 10),
	}
}

// Floats returns the colour as normalized GL components.
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

var Palette = struct {
	Background RGB
	Title      RGB
	Heading    RGB
	Text       RGB
	Player     RGB
	Bot        RGB
	WinButton  RGB
	LoseText   RGB
	ButtonText RGB
}{
	Background: RGB{R: 0, G: 0, B: 0},
	Title:      RGB{R: 0, G: 220, B: 0},
	Heading:    RGB{R: 0, G: 200, B: 0},
	Text:       RGB{R: 255, G: 255, B: 255},
	Player:     RGB{R: 0, G: 255, B: 0},
	Bot:        RGB{R: 255, G: 0, B: 0},
	WinButton:  RGB{R: 0, G: 200, B: 0},
	LoseText:   RGB{R: 220, G: 0, B: 0},
	ButtonText: RGB{R: 0, G: 0, B: 0},
}
