package app

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"agario/internal/game"
)

// Vertex layout shared by the circle and text pipelines: 8 floats.
const (
	floatsPerVertex = 8
	vertexStride    = floatsPerVertex * 4
	maxBatchVerts   = 6 * 512
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer batches circles and glyphs in canvas coordinates and flushes
// them once per frame. The canvas is always ArenaWidth x ArenaHeight; the
// viewport stretches it over the framebuffer.
type Renderer struct {
	circleProg uint32
	circleVAO  uint32
	circleVBO  uint32
	circleURes int32
	circleBuf  []float32

	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32
	atlas        *fontAtlas
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(circleVertSrc, circleFragSrc)
	if err != nil {
		return nil, fmt.Errorf("circle program: %w", err)
	}
	r := &Renderer{circleProg: prog}
	r.circleVAO, r.circleVBO = newBatchBuffers()

	gl.UseProgram(prog)
	r.circleURes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

// newBatchBuffers creates a streaming VAO/VBO with the 2+2+4 float layout.
func newBatchBuffers() (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	gl.BufferData(gl.ARRAY_BUFFER, maxBatchVerts*vertexStride, nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, vertexStride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aLocal / aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, vertexStride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, vertexStride, glOffset(4*4))
	return vao, vbo
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.circleVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.circleVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.circleProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

// BeginFrame clears to the background colour and resets the batches.
func (r *Renderer) BeginFrame(fbW, fbH int) {
	bg := game.Palette.Background
	cr, cg, cb := bg.Floats()
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(cr, cg, cb, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.circleBuf = r.circleBuf[:0]
	r.textBuf = r.textBuf[:0]
}

// DrawCircle queues a filled disc centred at (x, y).
func (r *Renderer) DrawCircle(x, y, radius float64, col game.RGB) {
	if radius <= 0 {
		return
	}
	cr, cg, cb := col.Floats()
	x0, y0 := float32(x-radius), float32(y-radius)
	x1, y1 := float32(x+radius), float32(y+radius)

	// Two triangles: TL, TR, BL then TR, BR, BL.
	r.circleBuf = append(r.circleBuf,
		x0, y0, -1, -1, cr, cg, cb, 1,
		x1, y0, 1, -1, cr, cg, cb, 1,
		x0, y1, -1, 1, cr, cg, cb, 1,
		x1, y0, 1, -1, cr, cg, cb, 1,
		x1, y1, 1, 1, cr, cg, cb, 1,
		x0, y1, -1, 1, cr, cg, cb, 1,
	)
}

// DrawRing draws the darker outline disc with an inset body on top.
func (r *Renderer) DrawRing(x, y, radius, inset float64, col game.RGB) {
	r.DrawCircle(x, y, radius, col.Darker())
	r.DrawCircle(x, y, radius-inset, col)
}

// FlushCircles draws all queued circles in submission order.
func (r *Renderer) FlushCircles() {
	if len(r.circleBuf) == 0 {
		return
	}
	gl.UseProgram(r.circleProg)
	gl.Uniform2f(r.circleURes, game.ArenaWidth, game.ArenaHeight)
	flushBatch(r.circleVAO, r.circleVBO, r.circleBuf)
	r.circleBuf = r.circleBuf[:0]
}

// flushBatch uploads buf in chunks that fit the preallocated VBO.
func flushBatch(vao, vbo uint32, buf []float32) {
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	const chunk = maxBatchVerts * floatsPerVertex
	for len(buf) > 0 {
		n := len(buf)
		if n > chunk {
			n = chunk
		}
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, n*4, gl.Ptr(buf[:n]))
		gl.DrawArrays(gl.TRIANGLES, 0, int32(n/floatsPerVertex))
		buf = buf[n:]
	}

	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}

// EndFrame flushes circles first so text always lands on top.
func (r *Renderer) EndFrame() {
	r.FlushCircles()
	r.FlushText()
}
