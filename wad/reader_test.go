package wad

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	m := checkerboard(32, 16)

	buf := new(bytes.Buffer)
	require.Nil(t, Encode(buf, m))

	decoded, err := Decode(buf)
	require.Nil(t, err)

	pm, ok := decoded.(*image.Paletted)
	require.True(t, ok)

	assert.Equal(t, 32, pm.Bounds().Dx())
	assert.Equal(t, 16, pm.Bounds().Dy())

	for y := 0; y < 16; y++ {
		for x := 0; x < 32; x++ {
			assert.Equal(t, uint8((x+y)%2), pm.ColorIndexAt(x, y))
		}
	}

	require.Len(t, pm.Palette, 256)
	assert.Equal(t, color.NRGBA{0xff, 0x00, 0x00, 0xff}, pm.Palette[0])
	assert.Equal(t, color.NRGBA{0x00, 0x00, 0xff, 0xff}, pm.Palette[255])
}

func TestDecodeConfig(t *testing.T) {
	buf := new(bytes.Buffer)
	require.Nil(t, Encode(buf, checkerboard(96, 64)))

	config, err := DecodeConfig(buf)
	require.Nil(t, err)

	assert.Equal(t, 96, config.Width)
	assert.Equal(t, 64, config.Height)

	palette, ok := config.ColorModel.(color.Palette)
	require.True(t, ok)
	assert.Len(t, palette, 256)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(bytes.NewReader(nil))
	assert.Equal(t, errNotEnough, err)

	_, err = Decode(bytes.NewReader(make([]byte, 128)))
	assert.Equal(t, errBadMagic, err)

	b := make([]byte, 128)
	copy(b, magic)
	binary.LittleEndian.PutUint32(b[4:8], 2)
	_, err = Decode(bytes.NewReader(b))
	assert.Equal(t, errLumpCount, err)

	binary.LittleEndian.PutUint32(b[4:8], 1)
	binary.LittleEndian.PutUint32(b[8:12], 1024)
	_, err = Decode(bytes.NewReader(b))
	assert.Equal(t, errBadOffset, err)

	binary.LittleEndian.PutUint32(b[8:12], 96)
	_, err = Decode(bytes.NewReader(b))
	assert.Equal(t, errBadDimensions, err)
}

func TestDecodeTruncated(t *testing.T) {
	buf := new(bytes.Buffer)
	require.Nil(t, Encode(buf, checkerboard(32, 16)))

	b := buf.Bytes()

	// Lie about the dimensions so the pixel data overruns the file
	binary.LittleEndian.PutUint32(b[28:32], 256)
	binary.LittleEndian.PutUint32(b[32:36], 256)

	_, err := Decode(bytes.NewReader(b))
	assert.Equal(t, errNotEnough, err)
}
