/*
Package wad implements an encoder and decoder for single-texture WAD3
archives as used by GoldSrc engine games for spray decals.

The file starts with a 12 byte header; the magic "WAD3", a lump count which
is always one, and the absolute offset of the directory. The texture lump
follows immediately; a 16 byte null-padded name, the width and height, and
four mip level offsets relative to the start of the lump. The four mip
levels are stored largest first, each pixel a single palette index, with
each level half the resolution of the previous one. After the smallest mip
level comes a two byte color count, always 256, two padding bytes, and the
palette as 256 RGB triples. The file is padded to a multiple of four bytes
and ends with a single 32 byte directory entry pointing back at the lump.

Palette index 255 is reserved as the transparency key and always holds the
color blue, (0, 0, 255). Texture dimensions must be multiples of 16 so that
every mip level divides evenly.
*/
package wad

import "image/color"

// Align is the alignment every texture dimension must satisfy.
const Align = 16

// MaxColors is the number of palette slots available to opaque colors; the
// remaining slot is the transparency key.
const MaxColors = paletteSize - 1

// TransparentIndex is the palette slot reserved for the transparency key.
const TransparentIndex = 255

const (
	magic       = "WAD3"
	textureName = "{LOGO"

	nameLen     = 16
	numMips     = 4
	paletteSize = 256

	// A pixel is transparent if its alpha is at or below this
	alphaThreshold = 128

	headerSize    = 12
	texHeaderSize = nameLen + 8 + numMips*4
	dirEntrySize  = 32

	// Offset of the texture lump within the file, stored verbatim in the
	// directory entry
	texOffset = headerSize

	typeMipTex = 0x43
)

var (
	transparentKey = color.NRGBA{0x00, 0x00, 0xff, 0xff}
	paddingColor   = color.NRGBA{0x00, 0x00, 0x00, 0xff}
)
