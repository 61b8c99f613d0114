package ktx2cube

import (
	"errors"
	"testing"
)

func TestExtractRegionOffsets(t *testing.T) {
	t.Parallel()

	// 4x4 base, 3 levels: per-face chain is 128+32+8 = 168 bytes.
	img, err := NewSourceImage(4, 4, 3, make([]byte, 6*168))
	if err != nil {
		t.Fatalf("NewSourceImage: %v", err)
	}

	tests := []struct {
		name       string
		mipLevel   uint32
		face       uint32
		wantOffset int
		wantLength int
	}{
		{name: "face0-level0", mipLevel: 0, face: 0, wantOffset: 0, wantLength: 128},
		{name: "face0-level1", mipLevel: 1, face: 0, wantOffset: 128, wantLength: 32},
		{name: "face0-level2", mipLevel: 2, face: 0, wantOffset: 160, wantLength: 8},
		{name: "face1-level0", mipLevel: 0, face: 1, wantOffset: 168, wantLength: 128},
		{name: "face1-level1", mipLevel: 1, face: 1, wantOffset: 296, wantLength: 32},
		{name: "face1-level2", mipLevel: 2, face: 1, wantOffset: 328, wantLength: 8},
		{name: "face5-level2", mipLevel: 2, face: 5, wantOffset: 5*168 + 160, wantLength: 8},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			offset, length, err := img.extractRegion(tc.mipLevel, tc.face)
			if err != nil {
				t.Fatalf("extractRegion(%d, %d): %v", tc.mipLevel, tc.face, err)
			}
			if offset != tc.wantOffset || length != tc.wantLength {
				t.Fatalf("extractRegion(%d, %d) = (%d, %d), want (%d, %d)",
					tc.mipLevel, tc.face, offset, length, tc.wantOffset, tc.wantLength)
			}
		})
	}
}

func TestExtractRegionOutOfRange(t *testing.T) {
	t.Parallel()

	img, err := NewSourceImage(4, 4, 3, make([]byte, layoutSize(4, 4, 3)))
	if err != nil {
		t.Fatalf("NewSourceImage: %v", err)
	}

	if _, _, err := img.extractRegion(3, 0); !errors.Is(err, ErrMipLevelOutOfRange) {
		t.Fatalf("expected ErrMipLevelOutOfRange, got %v", err)
	}
	if _, _, err := img.extractRegion(0, 6); !errors.Is(err, ErrFaceOutOfRange) {
		t.Fatalf("expected ErrFaceOutOfRange, got %v", err)
	}
}

func TestExtractRegionTruncatedBuffer(t *testing.T) {
	t.Parallel()

	// Built directly so the short buffer bypasses constructor validation.
	img := &SourceImage{Width: 4, Height: 4, MipLevels: 3, Data: make([]byte, 100)}

	if _, _, err := img.extractRegion(1, 0); !errors.Is(err, ErrSourceTruncated) {
		t.Fatalf("expected ErrSourceTruncated, got %v", err)
	}
}

func TestNewSourceImageValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		width     int
		height    int
		mipLevels int
		dataLen   int
		wantErr   error
	}{
		{name: "zero-width", width: 0, height: 4, mipLevels: 1, dataLen: 0, wantErr: ErrInvalidDimensions},
		{name: "zero-mips", width: 4, height: 4, mipLevels: 0, dataLen: 0, wantErr: ErrNoMipLevels},
		{name: "chain-too-long", width: 4, height: 4, mipLevels: 4, dataLen: 1008, wantErr: ErrTooManyMipLevels},
		{name: "short-buffer", width: 4, height: 4, mipLevels: 3, dataLen: 1000, wantErr: ErrSourceSizeMismatch},
		{name: "long-buffer", width: 4, height: 4, mipLevels: 3, dataLen: 1016, wantErr: ErrSourceSizeMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewSourceImage(tc.width, tc.height, tc.mipLevels, make([]byte, tc.dataLen))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestNewSourceImageValid(t *testing.T) {
	t.Parallel()

	img, err := NewSourceImage(4, 4, 3, make([]byte, 1008))
	if err != nil {
		t.Fatalf("NewSourceImage: %v", err)
	}
	if img.Width != 4 || img.Height != 4 || img.MipLevels != 3 {
		t.Fatalf("unexpected descriptor: %dx%d mips=%d", img.Width, img.Height, img.MipLevels)
	}
}
