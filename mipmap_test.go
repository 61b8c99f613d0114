package ktx2cube

import "testing"

func TestMipLevelCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		width  int
		height int
		want   int
	}{
		{name: "1x1", width: 1, height: 1, want: 1},
		{name: "2x2", width: 2, height: 2, want: 2},
		{name: "4x4", width: 4, height: 4, want: 3},
		{name: "256x256", width: 256, height: 256, want: 9},
		{name: "4x2-stops-early", width: 4, height: 2, want: 2},
		{name: "512x256", width: 512, height: 256, want: 9},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := MipLevelCount(tc.width, tc.height); got != tc.want {
				t.Fatalf("MipLevelCount(%d, %d) = %d, want %d", tc.width, tc.height, got, tc.want)
			}
		})
	}
}

func TestLayoutSizes(t *testing.T) {
	t.Parallel()

	if got := faceChainSize(4, 4, 3); got != 168 {
		t.Fatalf("faceChainSize(4,4,3) = %d, want 168", got)
	}
	if got := layoutSize(4, 4, 3); got != 1008 {
		t.Fatalf("layoutSize(4,4,3) = %d, want 1008", got)
	}
	if got := mipByteLength(4, 4, 2); got != 8 {
		t.Fatalf("mipByteLength(4,4,2) = %d, want 8", got)
	}
	if got := mipByteLength(4, 4, 0); got != 128 {
		t.Fatalf("mipByteLength(4,4,0) = %d, want 128", got)
	}
}

func TestU32FromInt(t *testing.T) {
	t.Parallel()

	if _, err := u32FromInt(-1); err == nil {
		t.Fatalf("expected error for negative input")
	}
	got, err := u32FromInt(42)
	if err != nil || got != 42 {
		t.Fatalf("u32FromInt(42) = (%d, %v)", got, err)
	}
}
