package stamps

import (
	"errors"
	"testing"
)

func TestTile(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		tw, th int
	}{
		{"exact", 9, 9, 3, 3},
		{"remainder dropped", 10, 11, 3, 3},
		{"rectangular", 300, 61, 100, 20},
		{"minimum", 3, 3, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles, err := Tile(gradientFrame(tt.w, tt.h))
			if err != nil {
				t.Fatalf("Tile failed: %v", err)
			}
			for i, tile := range tiles {
				if tile.W != tt.tw || tile.H != tt.th {
					t.Errorf("tile %d: got %dx%d, want %dx%d", i, tile.W, tile.H, tt.tw, tt.th)
				}
			}
		})
	}
}

func TestTile_RowMajorOrder(t *testing.T) {
	f := gradientFrame(6, 6)
	tiles, err := Tile(f)
	if err != nil {
		t.Fatalf("Tile failed: %v", err)
	}

	// Each tile's origin is the source sample at (col*2, row*2).
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			got := tiles[row*3+col].At(0, 0)
			want := f.At(col*2, row*2)
			if got != want {
				t.Errorf("tile (%d,%d) origin: got %v, want %v", row, col, got, want)
			}
		}
	}
}

func TestTile_TooSmall(t *testing.T) {
	var tooSmall *StampTooSmallError

	for _, dims := range [][2]int{{2, 9}, {9, 2}, {1, 1}} {
		_, err := Tile(gradientFrame(dims[0], dims[1]))
		if !errors.As(err, &tooSmall) {
			t.Errorf("Tile(%dx%d) error = %v, want StampTooSmallError", dims[0], dims[1], err)
		}
	}
}
