package ktx2cube

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

const (
	// vkFormatE5B9G9R9 is VK_FORMAT_E5B9G9R9_UFLOAT_PACK32.
	vkFormatE5B9G9R9 = 123
	// ktx2TypeSize is the byte size of the packed texel word.
	ktx2TypeSize = 4

	ktx2HeaderSize     = 80
	ktx2LevelIndexSize = 24
)

// ktx2Magic is the 12-byte KTX 2.0 file identifier.
var ktx2Magic = [12]byte{0xAB, 0x4B, 0x54, 0x58, 0x20, 0x32, 0x30, 0xBB, 0x0D, 0x0A, 0x1A, 0x0A}

// Supercompression selects the KTX2 supercompression scheme applied to
// each mip level payload.
type Supercompression int

const (
	// SupercompressionZstandard compresses each level with Zstandard.
	// This is the default.
	SupercompressionZstandard Supercompression = iota
	// SupercompressionZlib compresses each level with ZLIB.
	SupercompressionZlib
	// SupercompressionNone stores level payloads uncompressed.
	SupercompressionNone
)

// schemeID maps the scheme to its KTX2 header identifier.
func (s Supercompression) schemeID() (uint32, error) {
	switch s {
	case SupercompressionNone:
		return 0, nil
	case SupercompressionZstandard:
		return 2, nil
	case SupercompressionZlib:
		return 3, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownScheme, s)
	}
}

// WriteOptions configures KTX2 output. The zero value is valid and means
// Zstandard supercompression at the codec's default level.
type WriteOptions struct {
	// Scheme selects the supercompression applied per mip level.
	Scheme Supercompression
	// Level is the compression level for the selected codec.
	// Zero means the codec default.
	Level int
}

// writerLevel is one mip level payload staged for the level index.
type writerLevel struct {
	uncompressedLength int
	data               []byte
}

// Write writes img to path as a KTX2 file with the default configuration.
func Write(img *SourceImage, path string) error {
	return WriteWithOptions(img, path, nil)
}

// WriteWithOptions writes img to path as a KTX2 file.
//
// The file is written to a temporary sibling and renamed into place on
// success, so a failed conversion never leaves a partial file at path.
// options may be nil, which means to use the default configuration.
func WriteWithOptions(img *SourceImage, path string, opts *WriteOptions) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrCreateFile, tmp, err)
	}

	if err := Encode(f, img, opts); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %q: %v", ErrCloseFile, tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %q: %v", ErrPublishFile, path, err)
	}

	return nil
}

// Encode writes img to w as a complete KTX2 stream: header, level index,
// data format descriptor, then the level payloads largest mip first.
//
// options may be nil, which means to use the default configuration.
func Encode(w io.Writer, img *SourceImage, opts *WriteOptions) error {
	if img.Compressed {
		return ErrCompressedSource
	}
	if img.MipLevels < 1 {
		return fmt.Errorf("%w: %d", ErrNoMipLevels, img.MipLevels)
	}

	scheme := SupercompressionZstandard
	level := 0
	if opts != nil {
		scheme = opts.Scheme
		level = opts.Level
	}
	schemeID, err := scheme.schemeID()
	if err != nil {
		return err
	}

	var zstdEnc *zstd.Encoder
	if scheme == SupercompressionZstandard {
		// Single-goroutine encoder so identical input always yields
		// identical bytes.
		zstdEnc, err = zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstdEncoderLevel(level)),
			zstd.WithEncoderConcurrency(1))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrCompressLevel, err)
		}
		defer func() { _ = zstdEnc.Close() }()
	}

	levels := make([]writerLevel, 0, img.MipLevels)
	for m := uint32(0); m < img.MipLevels; m++ {
		// Packed words are half the size of the RGBA16F source texels.
		raw := make([]byte, 0, FaceCount*mipByteLength(int(img.Width), int(img.Height), m)/2)
		for f := uint32(0); f < FaceCount; f++ {
			raw, err = img.packRegion(raw, m, f)
			if err != nil {
				return err
			}
		}

		data, err := compressLevel(zstdEnc, scheme, level, raw)
		if err != nil {
			return fmt.Errorf("%w: level %d: %v", ErrCompressLevel, m, err)
		}
		levels = append(levels, writerLevel{uncompressedLength: len(raw), data: data})
	}

	return writeContainer(w, img, schemeID, rgb9e5DFD(), levels)
}

// compressLevel produces one level payload under the selected scheme.
func compressLevel(zstdEnc *zstd.Encoder, scheme Supercompression, level int, raw []byte) ([]byte, error) {
	switch scheme {
	case SupercompressionZstandard:
		return zstdEnc.EncodeAll(raw, nil), nil
	case SupercompressionZlib:
		var buf bytes.Buffer
		zw, err := zlib.NewWriterLevel(&buf, zlibLevel(level))
		if err != nil {
			return nil, err
		}
		if _, err := zw.Write(raw); err != nil {
			_ = zw.Close()
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return raw, nil
	}
}

func zstdEncoderLevel(level int) zstd.EncoderLevel {
	if level == 0 {
		return zstd.SpeedDefault
	}

	return zstd.EncoderLevelFromZstd(level)
}

func zlibLevel(level int) int {
	if level == 0 {
		return zlib.DefaultCompression
	}

	return level
}

// writeContainer serializes the header, level index, DFD and payloads.
// Payload offsets run sequentially from the end of the DFD in index order.
func writeContainer(w io.Writer, img *SourceImage, schemeID uint32, dfd []byte, levels []writerLevel) error {
	dfdOffset := ktx2HeaderSize + len(levels)*ktx2LevelIndexSize

	header := make([]byte, 0, ktx2HeaderSize)
	header = append(header, ktx2Magic[:]...)
	header = binary.LittleEndian.AppendUint32(header, vkFormatE5B9G9R9)
	header = binary.LittleEndian.AppendUint32(header, ktx2TypeSize)
	header = binary.LittleEndian.AppendUint32(header, img.Width)
	header = binary.LittleEndian.AppendUint32(header, img.Height)
	header = binary.LittleEndian.AppendUint32(header, 0) // pixelDepth: must be 0 for cube maps
	header = binary.LittleEndian.AppendUint32(header, 0) // layerCount: non-array
	header = binary.LittleEndian.AppendUint32(header, FaceCount)
	header = binary.LittleEndian.AppendUint32(header, img.MipLevels)
	header = binary.LittleEndian.AppendUint32(header, schemeID)
	header = binary.LittleEndian.AppendUint32(header, uint32(dfdOffset))
	header = binary.LittleEndian.AppendUint32(header, uint32(len(dfd)))
	header = binary.LittleEndian.AppendUint32(header, 0) // kvdByteOffset: no key/value data
	header = binary.LittleEndian.AppendUint32(header, 0) // kvdByteLength
	header = binary.LittleEndian.AppendUint64(header, 0) // sgdByteOffset: no global data
	header = binary.LittleEndian.AppendUint64(header, 0) // sgdByteLength

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHeader, err)
	}

	index := make([]byte, 0, len(levels)*ktx2LevelIndexSize)
	offset := uint64(dfdOffset + len(dfd))
	for _, lv := range levels {
		index = binary.LittleEndian.AppendUint64(index, offset)
		index = binary.LittleEndian.AppendUint64(index, uint64(len(lv.data)))
		index = binary.LittleEndian.AppendUint64(index, uint64(lv.uncompressedLength))
		offset += uint64(len(lv.data))
	}
	if _, err := w.Write(index); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteLevelIndex, err)
	}

	if _, err := w.Write(dfd); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDFD, err)
	}

	for m, lv := range levels {
		if _, err := w.Write(lv.data); err != nil {
			return fmt.Errorf("%w: level %d: %v", ErrWriteLevelData, m, err)
		}
	}

	return nil
}
