package route

import "fmt"

// Mark is a visualization annotation of one cell.
type Mark uint8

const (
	// None leaves the pixel untouched.
	None Mark = iota
	// Explored marks a cell the search touched but did not use.
	Explored
	// Path marks a cell on the final route (destination included, start excluded).
	Path
	// Start marks the start cell; it is never overwritten.
	Start
)

// String returns the lower-case name of m.
func (m Mark) String() string {
	switch m {
	case None:
		return "none"
	case Explored:
		return "explored"
	case Path:
		return "path"
	case Start:
		return "start"
	default:
		return fmt.Sprintf("Mark(%d)", uint8(m))
	}
}

// Marks is a row-major Width×Height layer of Mark values.
type Marks struct {
	Width, Height int
	cells         []Mark
}

// NewMarks allocates an all-None layer.
func NewMarks(w, h int) *Marks {
	return &Marks{Width: w, Height: h, cells: make([]Mark, w*h)}
}

// Set records m at row-major index i. A Start mark is sticky: it is never
// replaced. Path replaces Explored; Explored never replaces Path.
func (ms *Marks) Set(i int, m Mark) {
	switch cur := ms.cells[i]; {
	case cur == Start:
		return
	case cur == Path && m == Explored:
		return
	}
	ms.cells[i] = m
}

// At returns the mark at row-major index i.
func (ms *Marks) At(i int) Mark {
	return ms.cells[i]
}

// Count returns how many cells carry m.
func (ms *Marks) Count(m Mark) int {
	n := 0
	for _, c := range ms.cells {
		if c == m {
			n++
		}
	}

	return n
}

// Len returns Width*Height.
func (ms *Marks) Len() int {
	return len(ms.cells)
}
