package topdown

import (
	"bytes"
	"image/png"
	"testing"
)

func TestFromBytes(t *testing.T) {
	m, err := FromBytes([]byte{CellFree, CellObstacle, CellStart, CellGoal, CellShortestPath, CellActualPath}, 2, 3)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if m.At(0, 1) != CellObstacle {
		t.Fatalf("At(0,1): got %d", m.At(0, 1))
	}
	if m.At(1, 2) != CellActualPath {
		t.Fatalf("At(1,2): got %d", m.At(1, 2))
	}
}

func TestFromBytesSizeMismatch(t *testing.T) {
	if _, err := FromBytes(make([]byte, 5), 2, 3); err == nil {
		t.Fatal("expected error for size mismatch")
	}
}

func TestFromBytesInvalidDims(t *testing.T) {
	if _, err := FromBytes(nil, 0, 3); err == nil {
		t.Fatal("expected error for zero height")
	}
	if _, err := FromBytes(nil, 2, -1); err == nil {
		t.Fatal("expected error for negative width")
	}
}

func TestEncodePNG(t *testing.T) {
	cells := make([]byte, 4*5)
	cells[0] = CellStart
	cells[19] = CellGoal
	m, err := FromBytes(cells, 4, 5)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}

	var buf bytes.Buffer
	if err := m.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode written png: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 5 || b.Dy() != 4 {
		t.Fatalf("wrong image size: %dx%d", b.Dx(), b.Dy())
	}
}
