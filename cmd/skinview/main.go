package main

import (
	"flag"
	"image/color"
	"log"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pixfab/skinforge"
	"github.com/pixfab/skinforge/themes"
)

var (
	variant    = flag.String("variant", "default", "theme variant to preview")
	paletteStr = flag.String("palette", "#3B82F6,#1E40AF,#FBBF24,#F5C6A0,#6B3F1D",
		"comma-separated primary,secondary,accent,skin,hair colors")
)

// Checkerboard shades drawn behind transparent pixels.
var (
	checkerLight = color.RGBA{R: 52, G: 52, B: 52, A: 255}
	checkerDark  = color.RGBA{R: 36, G: 36, B: 36, A: 255}
)

func main() {
	flag.Parse()
	log.SetFlags(0)

	buf, err := render()
	if err != nil {
		log.Println("Failed to render skin:", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Println("Failed to open terminal screen:", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		log.Println("Failed to initialize terminal screen:", err)
		os.Exit(1)
	}
	defer screen.Fini()

	draw(screen, buf)

	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventKey:
			return
		case *tcell.EventResize:
			screen.Sync()
			draw(screen, buf)
		}
	}
}

func render() (*skinforge.Buffer, error) {
	parts := strings.Split(*paletteStr, ",")
	if len(parts) != 5 {
		log.Println("Palette must be 5 comma-separated colors: primary,secondary,accent,skin,hair.")
		os.Exit(1)
	}

	pal, err := skinforge.HexPalette{
		Primary:   strings.TrimSpace(parts[0]),
		Secondary: strings.TrimSpace(parts[1]),
		Accent:    strings.TrimSpace(parts[2]),
		Skin:      strings.TrimSpace(parts[3]),
		Hair:      strings.TrimSpace(parts[4]),
	}.Parse()
	if err != nil {
		return nil, err
	}

	return themes.DefaultRegistry().Generate(*variant, pal)
}

// draw paints the 64x64 skin as half-block cells, two pixels per terminal
// row: the upper pixel becomes the glyph foreground, the lower the
// background.
func draw(screen tcell.Screen, buf *skinforge.Buffer) {
	screen.Clear()

	bounds := buf.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			upper := cellColor(buf.At(x, y), x, y)
			lower := cellColor(buf.At(x, y+1), x, y+1)

			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(upper.R), int32(upper.G), int32(upper.B))).
				Background(tcell.NewRGBColor(int32(lower.R), int32(lower.G), int32(lower.B)))
			screen.SetContent(x, y/2, '▀', nil, style)
		}
	}

	screen.Show()
}

func cellColor(c color.RGBA, x, y int) color.RGBA {
	if c.A != 0 {
		return c
	}
	if (x+y)%2 == 0 {
		return checkerLight
	}
	return checkerDark
}
