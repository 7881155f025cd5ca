package wad

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
)

type encoder struct {
	w io.Writer

	// The whole file is assembled here first so the directory offset can
	// be patched in before anything is written out
	buf bytes.Buffer
}

// Scan the image in row-major order building the fixed 256 entry palette;
// distinct colors in first-seen order, padded with opaque black, with the
// transparency key always last. The returned map finds the index for an
// exact color match.
func buildPalette(m *image.Paletted) ([]color.NRGBA, map[color.NRGBA]byte) {
	b := m.Bounds()

	lookup := make(map[color.NRGBA]byte)
	palette := make([]color.NRGBA, 0, paletteSize)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			if _, ok := lookup[c]; ok {
				continue
			}
			if len(palette) == MaxColors {
				// Quantizer contract violated; excess colors
				// fall back to the transparency key when
				// indexing
				continue
			}
			lookup[c] = byte(len(palette))
			palette = append(palette, c)
		}
	}

	for len(palette) < MaxColors {
		palette = append(palette, paddingColor)
	}

	return append(palette, transparentKey), lookup
}

func indexPixels(m *image.Paletted, lookup map[color.NRGBA]byte) []byte {
	b := m.Bounds()

	buf := make([]byte, 0, b.Dx()*b.Dy())

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			if c.A <= alphaThreshold {
				buf = append(buf, TransparentIndex)
				continue
			}
			i, ok := lookup[c]
			if !ok {
				// No exact match, render transparent rather
				// than fail
				i = TransparentIndex
			}
			buf = append(buf, i)
		}
	}

	return buf
}

// Point-sample the base index buffer at the given stride
func decimate(base []byte, w, h, step int) []byte {
	buf := make([]byte, 0, ((h+step-1)/step)*((w+step-1)/step))

	for y := 0; y < h; y += step {
		for x := 0; x < w; x += step {
			if i := y*w + x; i < len(base) {
				buf = append(buf, base[i])
			} else {
				buf = append(buf, TransparentIndex)
			}
		}
	}

	return buf
}

func putUint32(b *bytes.Buffer, v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.Write(tmp[:])
}

func (e *encoder) encode(m *image.Paletted) error {
	b := m.Bounds()
	w, h := b.Dx(), b.Dy()

	palette, lookup := buildPalette(m)
	base := indexPixels(m, lookup)

	mips := make([][]byte, numMips)
	for level := range mips {
		mips[level] = decimate(base, w, h, 1<<uint(level))
	}

	var name [nameLen]byte
	copy(name[:], textureName)

	buf := &e.buf

	buf.WriteString(magic)
	putUint32(buf, 1)
	putUint32(buf, 0) // directory offset, patched below

	buf.Write(name[:])
	putUint32(buf, uint32(w))
	putUint32(buf, uint32(h))

	// Mip offsets are relative to the start of the lump
	offset := uint32(texHeaderSize)
	for _, mip := range mips {
		putUint32(buf, offset)
		offset += uint32(len(mip))
	}

	for _, mip := range mips {
		buf.Write(mip)
	}

	// Color count, always 256, plus two padding bytes
	buf.Write([]byte{0x00, 0x01, 0x00, 0x00})

	for _, c := range palette {
		buf.Write([]byte{c.R, c.G, c.B})
	}

	for buf.Len()%4 != 0 {
		buf.WriteByte(0x00)
	}

	size := uint32(buf.Len() - texHeaderSize)
	dirOffset := uint32(buf.Len())

	putUint32(buf, texOffset)
	putUint32(buf, size) // size on disk
	putUint32(buf, size) // uncompressed size
	buf.Write([]byte{typeMipTex, 0x00, 0x00, 0x00})
	buf.Write(name[:])

	binary.LittleEndian.PutUint32(buf.Bytes()[8:12], dirOffset)

	_, err := e.w.Write(buf.Bytes())
	return err
}

// Encode writes the Image m to w as a single-texture WAD3 archive.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return errors.New("wad: image is empty")
	}
	if b.Dx()%Align != 0 || b.Dy()%Align != 0 {
		return errors.New("wad: image dimensions must be multiples of 16")
	}

	pm, _ := m.(*image.Paletted)
	if pm == nil || len(pm.Palette) == 0 || len(pm.Palette) > MaxColors {
		q := quantize.MedianCutQuantizer{AddTransparent: true}
		pm = image.NewPaletted(b, q.Quantize(make(color.Palette, 0, MaxColors), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
	}

	// Adjust image so that top-left corner is at (0, 0)
	if pm.Rect.Min != (image.Point{}) {
		dup := *pm
		dup.Rect = dup.Rect.Sub(dup.Rect.Min)
		pm = &dup
	}

	e := encoder{w: w}

	return e.encode(pm)
}
