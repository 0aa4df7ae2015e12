package topdown

// #region imports
import (
	"fmt"
	"image"
	"image/png"
	"io"
)

// #endregion imports

// #region palette
// Cell palette values produced by the service-side rasterizer.
const (
	CellFree uint8 = iota
	CellObstacle
	CellStart
	CellGoal
	CellShortestPath
	CellActualPath
)

// grayLevels maps palette values to grayscale for PNG export. Unknown values
// fall back to mid-gray.
var grayLevels = map[uint8]uint8{
	CellFree:         255,
	CellObstacle:     0,
	CellStart:        60,
	CellGoal:         100,
	CellShortestPath: 180,
	CellActualPath:   140,
}

// #endregion palette

// #region map
// Map is a rasterized bird's-eye view of one episode: start and goal
// positions, the shortest path, and the path the agent actually took. Cells
// are row-major.
type Map struct {
	Height int
	Width  int
	Cells  []uint8
}

// FromBytes validates raw cell data against the given dimensions.
func FromBytes(cells []byte, height, width int) (*Map, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("top-down map: invalid dimensions %dx%d", height, width)
	}
	if len(cells) != height*width {
		return nil, fmt.Errorf("top-down map: %d cells for %dx%d grid", len(cells), height, width)
	}
	return &Map{Height: height, Width: width, Cells: cells}, nil
}

// At returns the palette value at (row, col).
func (m *Map) At(row, col int) uint8 {
	return m.Cells[row*m.Width+col]
}

// EncodePNG writes the map as a grayscale PNG. Rasterization happens in the
// simulator service; this only persists the grid it sent back.
func (m *Map) EncodePNG(w io.Writer) error {
	img := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	for i, c := range m.Cells {
		level, ok := grayLevels[c]
		if !ok {
			level = 128
		}
		img.Pix[i] = level
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode top-down map: %w", err)
	}
	return nil
}

// #endregion map
