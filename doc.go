// Package skinforge generates textured pixel-art character skins onto a
// fixed 64x64 surface.
//
// The package is layered bottom-up: color math (RGB, Darken, Lighten),
// raster primitives on Buffer (fills, lines, gradients, patterns, flood
// fill, blur, pixelate), region decorators (Shade, Highlight, Texture), and
// the Theme contract that paints a complete skin from a Palette into the six
// fixed body-part rectangles of the UV layout. Concrete theme variants live
// in the themes subpackage; an HTTP/websocket preview service and CLIs are
// built on top under preview and cmd.
//
// Nothing here locks: a Buffer has exactly one writer at a time, and
// concurrent renders each use their own Buffer.
package skinforge
