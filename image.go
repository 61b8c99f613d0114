package ktx2cube

import (
	"encoding/binary"
	"fmt"

	"github.com/x448/float16"
)

// SourceImage is an uncompressed cubemap with a full mip chain stored in a
// single contiguous buffer.
//
// The buffer layout is face-major, mip-minor: face 0's complete mip chain
// (level 0 down to level MipLevels-1, dimensions floor-halved per level)
// precedes face 1's chain, and so on for all six faces. Texels are RGBA
// with little-endian 16-bit float channels.
type SourceImage struct {
	Width      uint32
	Height     uint32
	MipLevels  uint32
	Compressed bool
	Data       []byte
}

// NewSourceImage validates the dimensions, mip chain and buffer size and
// returns the cubemap ready for encoding.
func NewSourceImage(width, height, mipLevels int, data []byte) (*SourceImage, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if mipLevels < 1 {
		return nil, fmt.Errorf("%w: %d", ErrNoMipLevels, mipLevels)
	}
	if maxLevels := MipLevelCount(width, height); mipLevels > maxLevels {
		return nil, fmt.Errorf("%w: %d levels for %dx%d (max %d)", ErrTooManyMipLevels, mipLevels, width, height, maxLevels)
	}

	w32, err := u32FromInt(width)
	if err != nil {
		return nil, err
	}
	h32, err := u32FromInt(height)
	if err != nil {
		return nil, err
	}
	m32, err := u32FromInt(mipLevels)
	if err != nil {
		return nil, err
	}

	if expected := layoutSize(width, height, mipLevels); len(data) != expected {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrSourceSizeMismatch, expected, len(data))
	}

	return &SourceImage{Width: w32, Height: h32, MipLevels: m32, Data: data}, nil
}

// extractRegion returns the byte range of one (mip, face) slice within the
// face-major/mip-minor buffer. Each face's chain restarts the halving
// sequence from the base dimensions.
func (img *SourceImage) extractRegion(mipLevel, face uint32) (offset, length int, err error) {
	if mipLevel >= img.MipLevels {
		return 0, 0, fmt.Errorf("%w: level %d of %d", ErrMipLevelOutOfRange, mipLevel, img.MipLevels)
	}
	if face >= FaceCount {
		return 0, 0, fmt.Errorf("%w: face %d", ErrFaceOutOfRange, face)
	}

	offset = int(face) * faceChainSize(int(img.Width), int(img.Height), int(img.MipLevels))

	w := int(img.Width)
	h := int(img.Height)
	for l := uint32(0); l < mipLevel; l++ {
		offset += w * h * BytesPerTexel
		w /= 2
		h /= 2
	}
	length = w * h * BytesPerTexel

	if offset+length > len(img.Data) {
		return 0, 0, fmt.Errorf("%w: region [%d:%d] of %d bytes", ErrSourceTruncated, offset, offset+length, len(img.Data))
	}

	return offset, length, nil
}

// packRegion appends one (mip, face) slice to dst as packed RGB9E5 words.
// Half floats are decoded by value, never reinterpreted in place; the
// alpha channel is dropped.
func (img *SourceImage) packRegion(dst []byte, mipLevel, face uint32) ([]byte, error) {
	offset, length, err := img.extractRegion(mipLevel, face)
	if err != nil {
		return nil, err
	}

	region := img.Data[offset : offset+length]
	for i := 0; i+BytesPerTexel <= len(region); i += BytesPerTexel {
		r := float16.Frombits(binary.LittleEndian.Uint16(region[i:])).Float32()
		g := float16.Frombits(binary.LittleEndian.Uint16(region[i+2:])).Float32()
		b := float16.Frombits(binary.LittleEndian.Uint16(region[i+4:])).Float32()
		dst = binary.LittleEndian.AppendUint32(dst, PackRGB9E5(r, g, b))
	}

	return dst, nil
}
