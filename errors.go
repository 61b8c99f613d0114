package ktx2cube

import "errors"

var (
	// ErrSizeOverflow indicates a size or dimension exceeds supported limits.
	ErrSizeOverflow = errors.New("size overflow")
	// ErrInvalidDimensions indicates non-positive base dimensions.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrNoMipLevels indicates a mip level count below one.
	ErrNoMipLevels = errors.New("no mip levels")
	// ErrTooManyMipLevels indicates the mip chain outruns the base dimensions.
	ErrTooManyMipLevels = errors.New("too many mip levels")
	// ErrSourceSizeMismatch indicates the source buffer does not match the layout size.
	ErrSourceSizeMismatch = errors.New("source buffer size mismatch")
	// ErrCompressedSource indicates a block-compressed source format.
	ErrCompressedSource = errors.New("compressed source format not supported")
	// ErrMipLevelOutOfRange indicates a mip level request beyond the chain.
	ErrMipLevelOutOfRange = errors.New("mip level out of range")
	// ErrFaceOutOfRange indicates a cube face index beyond five.
	ErrFaceOutOfRange = errors.New("cube face out of range")
	// ErrSourceTruncated indicates a region reaching past the source buffer.
	ErrSourceTruncated = errors.New("source buffer truncated")
	// ErrUnknownScheme indicates an unrecognized supercompression scheme.
	ErrUnknownScheme = errors.New("unknown supercompression scheme")
	// ErrCompressLevel indicates level payload compression failed.
	ErrCompressLevel = errors.New("compress level failed")
	// ErrCreateFile indicates output file creation failed.
	ErrCreateFile = errors.New("create file failed")
	// ErrCloseFile indicates closing the output file failed.
	ErrCloseFile = errors.New("close file failed")
	// ErrPublishFile indicates renaming the temporary output into place failed.
	ErrPublishFile = errors.New("publish file failed")
	// ErrWriteHeader indicates KTX2 header write failed.
	ErrWriteHeader = errors.New("writing KTX2 header failed")
	// ErrWriteLevelIndex indicates level index write failed.
	ErrWriteLevelIndex = errors.New("writing level index failed")
	// ErrWriteDFD indicates data format descriptor write failed.
	ErrWriteDFD = errors.New("writing data format descriptor failed")
	// ErrWriteLevelData indicates level payload write failed.
	ErrWriteLevelData = errors.New("writing level data failed")
)
