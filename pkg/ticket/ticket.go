// Package ticket renders drink vouchers as fixed-size PNG images suitable
// for download or on-screen display at the stand.
package ticket

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Canvas geometry. Matches the 300x450 voucher layout used at the stand.
const (
	Width  = 300
	Height = 450
)

// footerLines is the fixed disclaimer printed at the bottom of every ticket.
var footerLines = []string{
	"VALIDO APENAS NA DATA DE EMISSAO",
	"DURANTE A DURACAO DO EVENTO",
	"NAO HA REEMBOLSO APOS EMISSAO",
}

// Data holds the four fields the core supplies for one ticket.
type Data struct {
	StandName     string
	Flavor        string
	SaleShortID   string
	PaymentMethod string
}

// Render draws the ticket and returns it PNG-encoded.
func Render(d Data) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	black := color.RGBA{A: 255}
	drawBorder(img, 5, 5, Width-5, Height-5, 3, black)

	face := basicfont.Face7x13

	drawCentered(img, face, d.StandName, 40, black)
	fillRect(img, 50, 58, 250, 60, black)

	drawCentered(img, face, strings.ToUpper(d.Flavor), 180, black)
	drawCentered(img, face, fmt.Sprintf("ID: %s", d.SaleShortID), 230, black)
	drawCentered(img, face, fmt.Sprintf("PAGTO: %s", strings.ToUpper(d.PaymentMethod)), 260, black)

	y := 350
	for _, line := range footerLines {
		drawCentered(img, face, line, y, black)
		y += 20
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("ticket: failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// drawCentered draws s horizontally centered with the text baseline at y.
func drawCentered(img *image.RGBA, face font.Face, s string, y int, c color.Color) {
	width := font.MeasureString(face, s).Ceil()
	x := (Width - width) / 2
	if x < 0 {
		x = 0
	}
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	drawer.DrawString(s)
}

// drawBorder draws a rectangular frame of the given stroke width.
func drawBorder(img *image.RGBA, x0, y0, x1, y1, stroke int, c color.Color) {
	fillRect(img, x0, y0, x1, y0+stroke, c)         // top
	fillRect(img, x0, y1-stroke, x1, y1, c)         // bottom
	fillRect(img, x0, y0, x0+stroke, y1, c)         // left
	fillRect(img, x1-stroke, y0, x1, y1, c)         // right
}

// fillRect fills the rectangle [x0,y0)-(x1,y1) with c.
func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	draw.Draw(img, image.Rect(x0, y0, x1, y1), image.NewUniform(c), image.Point{}, draw.Src)
}
