package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pixfab/skinforge"
	"github.com/pixfab/skinforge/themes"
)

var (
	variant    = flag.String("variant", "default", "theme variant to render")
	paletteStr = flag.String("palette", "#3B82F6,#1E40AF,#FBBF24,#F5C6A0,#6B3F1D",
		"comma-separated primary,secondary,accent,skin,hair colors")
	outputPath = flag.String("o", "skin.png", "output file, or output directory with -all")
	scale      = flag.Int("scale", 1, "integer upscale factor for the output image")
	format     = flag.String("format", "png", "output format (png or bmp)")
	all        = flag.Bool("all", false, "render every variant into the output directory")
	list       = flag.Bool("list", false, "list the available variants and exit")
)

func main() {
	flag.Parse()
	log.SetFlags(0)

	reg := themes.DefaultRegistry()

	if *list {
		for _, id := range reg.IDs() {
			t, _ := reg.Lookup(id)
			log.Printf("%-10s %s", id, t.Description())
		}
		return
	}

	if *scale < 1 || *scale > 64 {
		log.Println("Scale must be between 1 and 64.")
		os.Exit(1)
	}

	if *format != "png" && *format != "bmp" {
		log.Println("Format must be png or bmp.")
		os.Exit(1)
	}

	pal, err := parsePaletteFlag(*paletteStr)
	if err != nil {
		log.Println("Invalid palette:", err)
		os.Exit(1)
	}

	start := time.Now()

	if *all {
		renderAll(reg, pal)
	} else {
		buf, err := reg.Generate(*variant, pal)
		if err != nil {
			log.Println("Failed to render skin:", err)
			os.Exit(1)
		}
		writeSkin(buf, *outputPath)
	}

	log.Println("Done! That took " + time.Since(start).String() + ".")
}

func parsePaletteFlag(s string) (skinforge.Palette, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 5 {
		log.Println("Palette must be 5 comma-separated colors: primary,secondary,accent,skin,hair.")
		os.Exit(1)
	}

	hexPal := skinforge.HexPalette{
		Primary:   strings.TrimSpace(parts[0]),
		Secondary: strings.TrimSpace(parts[1]),
		Accent:    strings.TrimSpace(parts[2]),
		Skin:      strings.TrimSpace(parts[3]),
		Hair:      strings.TrimSpace(parts[4]),
	}
	return hexPal.Parse()
}

func renderAll(reg *skinforge.Registry, pal skinforge.Palette) {
	skins, err := skinforge.RenderAll(reg, pal)
	if err != nil {
		log.Println("Failed to render skins:", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outputPath, 0755); err != nil {
		log.Println("Failed to create output directory:", err)
		os.Exit(1)
	}

	for id, buf := range skins {
		writeSkin(buf, filepath.Join(*outputPath, id+"."+*format))
	}
	log.Printf("Rendered %d variants to %s.", len(skins), *outputPath)
}

func writeSkin(buf *skinforge.Buffer, path string) {
	out, err := os.Create(path)
	if err != nil {
		log.Println("Failed to create output file:", err)
		os.Exit(1)
	}
	defer out.Close()

	if *format == "bmp" {
		err = buf.EncodeBMP(out, *scale)
	} else {
		err = buf.EncodePNG(out, *scale)
	}
	if err != nil {
		log.Println("Failed to encode output image:", err)
		os.Exit(1)
	}
}
