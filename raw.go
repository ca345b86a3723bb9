package skinforge

import (
	"bufio"
	"encoding/binary"
	"io"
)

// Frame is the raw export form of a finished skin: a small header followed
// by row-major RGBA bytes, for hosts that consume pixel data directly
// instead of an encoded image.
type Frame struct {
	Width  int
	Height int
	Pix    []byte
}

// Frame snapshots the buffer into its raw export form. The pixel slice is a
// copy; later drawing does not affect it.
func (b *Buffer) Frame() *Frame {
	bounds := b.img.Bounds()
	f := &Frame{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pix:    make([]byte, len(b.img.Pix)),
	}
	copy(f.Pix, b.img.Pix)
	return f
}

// WriteTo writes the frame as big-endian uint16 width and height followed by
// the pixel bytes.
func (f *Frame) WriteTo(w io.Writer) error {
	wr := bufio.NewWriter(w)

	binary.Write(wr, binary.BigEndian, uint16(f.Width))
	binary.Write(wr, binary.BigEndian, uint16(f.Height))
	wr.Write(f.Pix)

	return wr.Flush()
}
