package wad

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"io"
	"io/ioutil"
)

var (
	errNotEnough     = errors.New("wad: not enough data")
	errBadMagic      = errors.New("wad: bad magic")
	errLumpCount     = errors.New("wad: expected a single lump")
	errBadOffset     = errors.New("wad: invalid directory offset")
	errBadDimensions = errors.New("wad: invalid texture dimensions")
)

type decoder struct {
	width, height int

	palette color.Palette
	image   *image.Paletted
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	// The directory lives at the end of the file so it all has to be
	// read up front
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return err
	}

	if len(data) < headerSize+texHeaderSize+dirEntrySize {
		return errNotEnough
	}

	if string(data[0:4]) != magic {
		return errBadMagic
	}
	if binary.LittleEndian.Uint32(data[4:8]) != 1 {
		return errLumpCount
	}
	if offset := binary.LittleEndian.Uint32(data[8:12]); int(offset)+dirEntrySize > len(data) {
		return errBadOffset
	}

	tex := data[texOffset:]

	d.width = int(binary.LittleEndian.Uint32(tex[nameLen : nameLen+4]))
	d.height = int(binary.LittleEndian.Uint32(tex[nameLen+4 : nameLen+8]))

	if d.width <= 0 || d.height <= 0 || d.width%Align != 0 || d.height%Align != 0 {
		return errBadDimensions
	}

	// Locate the palette from the extent of the smallest mip level
	last := int(binary.LittleEndian.Uint32(tex[nameLen+8+(numMips-1)*4 : nameLen+8+numMips*4]))
	step := 1 << uint(numMips-1)
	palOffset := last + (d.height/step)*(d.width/step) + 4

	if palOffset+paletteSize*3 > len(tex) {
		return errNotEnough
	}

	d.palette = make(color.Palette, paletteSize)
	for i := range d.palette {
		d.palette[i] = color.NRGBA{
			tex[palOffset+i*3],
			tex[palOffset+i*3+1],
			tex[palOffset+i*3+2],
			0xff,
		}
	}

	if configOnly {
		return nil
	}

	first := int(binary.LittleEndian.Uint32(tex[nameLen+8 : nameLen+12]))
	if first+d.width*d.height > len(tex) {
		return errNotEnough
	}

	d.image = image.NewPaletted(image.Rect(0, 0, d.width, d.height), d.palette)
	copy(d.image.Pix, tex[first:first+d.width*d.height])

	return nil
}

// Decode reads a WAD3 archive from r and returns the full resolution
// texture as an image.Image.
func Decode(r io.Reader) (image.Image, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions of the texture in a
// WAD3 archive without decoding the pixel data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: d.palette,
		Width:      d.width,
		Height:     d.height,
	}, nil
}
