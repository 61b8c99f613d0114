package ktx2cube

const (
	// FaceCount is the number of faces in a cubemap.
	FaceCount = 6
	// BytesPerTexel is the source texel size: four 16-bit float channels.
	BytesPerTexel = 8
)

// MipLevelCount calculates the number of mip levels in a full chain for the
// given base dimensions. The chain stops before either dimension would
// vanish, so every level has a non-zero size.
func MipLevelCount(width, height int) int {
	count := 1
	for width > 1 && height > 1 {
		width /= 2
		height /= 2
		count++
	}

	return count
}

// mipByteLength returns the RGBA16F byte length of one face at the given
// mip level. Dimensions are floor-halved per level with no clamp; the
// caller must not request levels past the valid chain.
func mipByteLength(width, height int, level uint32) int {
	for l := uint32(0); l < level; l++ {
		width /= 2
		height /= 2
	}

	return width * height * BytesPerTexel
}

// faceChainSize returns the byte size of one face's complete mip chain.
func faceChainSize(width, height, mipLevels int) int {
	size := 0
	for i := 0; i < mipLevels; i++ {
		size += width * height * BytesPerTexel
		width /= 2
		height /= 2
	}

	return size
}

// layoutSize returns the total source buffer size for all six face chains.
func layoutSize(width, height, mipLevels int) int {
	return FaceCount * faceChainSize(width, height, mipLevels)
}
