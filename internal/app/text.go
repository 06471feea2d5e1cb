package app

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"agario/internal/game"
)

// Font atlas layout: printable ASCII in a 16-column grid.
const (
	fontFirst = 32
	fontLast  = 126
	fontCols  = 16
)

type fontAtlas struct {
	img          *image.RGBA
	cellW, cellH int
}

// buildFontAtlas rasterizes the fixed-width face into a white-on-clear
// image, one glyph per cell.
func buildFontAtlas(face *basicfont.Face) *fontAtlas {
	cellW, cellH := face.Advance, face.Height
	rows := (fontLast - fontFirst + fontCols) / fontCols
	img := image.NewRGBA(image.Rect(0, 0, cellW*fontCols, cellH*rows))

	d := &font.Drawer{Dst: img, Src: image.White, Face: face}
	for ch := fontFirst; ch <= fontLast; ch++ {
		i := ch - fontFirst
		x := (i % fontCols) * cellW
		y := (i / fontCols) * cellH
		d.Dot = fixed.P(x, y+face.Ascent)
		d.DrawString(string(rune(ch)))
	}
	return &fontAtlas{img: img, cellW: cellW, cellH: cellH}
}

// InitFont builds the glyph atlas and sets up the text rendering pipeline.
func (r *Renderer) InitFont() error {
	r.atlas = buildFontAtlas(basicfont.Face7x13)
	b := r.atlas.img.Bounds()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(r.atlas.img.Pix))
	r.fontTex = tex

	prog, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		return fmt.Errorf("text program: %w", err)
	}
	r.textProg = prog
	gl.UseProgram(prog)
	r.textURes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.textUFontTex = gl.GetUniformLocation(prog, gl.Str("uFontTex\x00"))
	gl.Uniform1i(r.textUFontTex, 0)

	r.textVAO, r.textVBO = newBatchBuffers()
	gl.BindVertexArray(0)
	return nil
}

// DrawChar queues a single character as a textured quad in canvas space.
func (r *Renderer) DrawChar(ch rune, sx, sy, scale float32, col game.RGB) {
	if ch < fontFirst || ch > fontLast {
		return
	}
	a := r.atlas
	i := int(ch) - fontFirst
	aw := float32(a.img.Bounds().Dx())
	ah := float32(a.img.Bounds().Dy())
	cx := (i % fontCols) * a.cellW
	cy := (i / fontCols) * a.cellH

	u0 := float32(cx) / aw
	v0 := float32(cy) / ah
	u1 := float32(cx+a.cellW) / aw
	v1 := float32(cy+a.cellH) / ah

	w := float32(a.cellW) * scale
	h := float32(a.cellH) * scale
	cr, cg, cb := col.Floats()

	r.textBuf = append(r.textBuf,
		sx, sy, u0, v0, cr, cg, cb, 1,
		sx+w, sy, u1, v0, cr, cg, cb, 1,
		sx, sy+h, u0, v1, cr, cg, cb, 1,
		sx+w, sy, u1, v0, cr, cg, cb, 1,
		sx+w, sy+h, u1, v1, cr, cg, cb, 1,
		sx, sy+h, u0, v1, cr, cg, cb, 1,
	)
}

// DrawString queues a single line of text with its top-left at (sx, sy).
func (r *Renderer) DrawString(text string, sx, sy float64, scale float32, col game.RGB) {
	advance := float32(r.atlas.cellW) * scale
	x := float32(sx)
	for _, ch := range text {
		r.DrawChar(ch, x, float32(sy), scale, col)
		x += advance
	}
}

// CenterString queues text centred on (cx, cy).
func (r *Renderer) CenterString(text string, cx, cy float64, scale float32, col game.RGB) {
	w, h := r.TextSize(text, scale)
	r.DrawString(text, cx-w/2, cy-h/2, scale, col)
}

// TextSize returns the canvas size of a single line at the given scale.
func (r *Renderer) TextSize(text string, scale float32) (w, h float64) {
	n := 0
	for range text {
		n++
	}
	return float64(float32(n*r.atlas.cellW) * scale), float64(float32(r.atlas.cellH) * scale)
}

// FlushText draws all buffered text quads and clears the buffer.
func (r *Renderer) FlushText() {
	if len(r.textBuf) == 0 {
		return
	}
	gl.UseProgram(r.textProg)
	gl.Uniform2f(r.textURes, game.ArenaWidth, game.ArenaHeight)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	flushBatch(r.textVAO, r.textVBO, r.textBuf)
	r.textBuf = r.textBuf[:0]
}
