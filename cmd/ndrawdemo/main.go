// Command ndrawdemo demonstrates the ndraw native drawing layer using
// the software driver.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/ndraw/ndraw"
	"github.com/ndraw/ndraw/backend"
	_ "github.com/ndraw/ndraw/backend/software"
)

func main() {
	var (
		width  = flag.Int("width", 800, "image width")
		height = flag.Int("height", 600, "image height")
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	tok, err := backend.Startup()
	if err != nil {
		log.Fatalf("Startup failed: %v", err)
	}
	defer tok.Shutdown()

	img := image.NewRGBA(image.Rect(0, 0, *width, *height))
	g, err := tok.NewGraphics(img)
	if err != nil {
		log.Fatalf("NewGraphics failed: %v", err)
	}
	defer g.Close()

	drawBackground(tok, g, *width, *height)
	drawShapes(tok, g)

	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

func drawBackground(tok *ndraw.Token, g *ndraw.Graphics, w, h int) {
	top := ndraw.RGB(26, 51, 102)
	bottom := ndraw.RGB(128, 128, 153)

	steps := 100
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps)
		brush, err := tok.NewBrush(top.Lerp(bottom, t))
		if err != nil {
			log.Fatalf("NewBrush failed: %v", err)
		}
		y := h * i / steps
		band := h/steps + 1
		if err := g.FillRectangle(brush, 0, y, uint32(w), uint32(band)); err != nil {
			log.Printf("FillRectangle: %v", err)
		}
		brush.Close()
	}
}

func drawShapes(tok *ndraw.Token, g *ndraw.Graphics) {
	pen, err := tok.NewPen(ndraw.White, 3)
	if err != nil {
		log.Fatalf("NewPen failed: %v", err)
	}
	defer pen.Close()

	red, _ := tok.NewBrush(ndraw.RGBA(255, 80, 80, 200))
	green, _ := tok.NewBrush(ndraw.RGBA(80, 255, 80, 200))
	blue, _ := tok.NewBrush(ndraw.RGBA(80, 80, 255, 200))
	defer red.Close()
	defer green.Close()
	defer blue.Close()

	// Overlapping translucent ellipses
	_ = g.FillEllipse(red, 90, 90, 120, 120)
	_ = g.FillEllipse(green, 140, 90, 120, 120)
	_ = g.FillEllipse(blue, 115, 140, 120, 120)

	// Stroked primitives
	_ = g.DrawRectangle(pen, 320, 80, 180, 120)
	_ = g.DrawEllipse(pen, 340, 100, 140, 80)
	_ = g.DrawLine(pen, 320, 80, 500, 200)

	// Pie chart
	slices := []ndraw.Arc{
		{Bounds: ndraw.Rt(320, 260, 200, 200), Start: 0, End: 130},
		{Bounds: ndraw.Rt(320, 260, 200, 200), Start: 130, End: 220},
		{Bounds: ndraw.Rt(320, 260, 200, 200), Start: 220, End: 360},
	}
	for i, s := range slices {
		brush := []*ndraw.Brush{red, green, blue}[i]
		if err := g.FillArc(brush, s.Bounds.X, s.Bounds.Y,
			s.Bounds.Width, s.Bounds.Height, s.Start, s.End); err != nil {
			log.Printf("FillArc: %v", err)
		}
	}
	_ = g.DrawArcs(pen, slices)

	// Batch strokes
	_ = g.DrawLines(pen, []ndraw.Point{
		ndraw.Pt(80, 400), ndraw.Pt(240, 400),
		ndraw.Pt(80, 430), ndraw.Pt(240, 430),
		ndraw.Pt(80, 460), ndraw.Pt(240, 460),
	})
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
