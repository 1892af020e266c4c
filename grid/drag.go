package grid

import (
	"sync"

	"github.com/samber/mo"
)

// Point is a pointer position in screen cells.
type Point struct {
	X, Y int
}

// Rect is the on-screen bounding box of a tile. Right and Bottom are exclusive.
type Rect struct {
	Left, Top, Right, Bottom int
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Monitor exposes the state of an ongoing drag gesture.
type Monitor interface {
	// PointerPosition is absent before the first pointer movement.
	PointerPosition() mo.Option[Point]
	// DraggedIndex is the current position of the dragged tile, or -1 when idle.
	DraggedIndex() int
	IsPointerOverTarget() bool
}

// Drag tracks a single drag gesture and reorders the grid as the pointer
// crosses the vertical midpoint of neighbouring tiles. The dragged tile is
// tracked by id; removing it ends the gesture.
type Drag struct {
	mu      sync.Mutex
	grid    *Grid
	id      mo.Option[string]
	pointer mo.Option[Point]
	over    bool
}

var _ Monitor = (*Drag)(nil)

func NewDrag(g *Grid) *Drag {
	return &Drag{grid: g, id: mo.None[string](), pointer: mo.None[Point]()}
}

// Begin starts dragging the tile at index. An out of range index starts nothing.
func (d *Drag) Begin(index int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.id = mo.None[string]()
	if entries := d.grid.Entries(); index >= 0 && index < len(entries) {
		d.id = mo.Some(entries[index].ID)
	}
	d.pointer = mo.None[Point]()
	d.over = false
}

// Dragging reports whether a gesture is in progress.
func (d *Drag) Dragging() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.draggedIndex() >= 0
}

// Move records the pointer position.
func (d *Drag) Move(p Point) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pointer = mo.Some(p)
}

// Hover is called while the pointer is over the tile at hoverIndex. The dragged
// tile moves only once the pointer passes the hovered tile's midpoint: below it
// when dragging down, above it when dragging up. It reports whether a reorder happened.
func (d *Drag) Hover(hoverIndex int, bounds Rect) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.pointer.Get()
	d.over = ok && bounds.Contains(p)

	drag := d.draggedIndex()
	if drag < 0 || !ok || drag == hoverIndex {
		return false
	}

	middle := (bounds.Bottom - bounds.Top) / 2
	y := p.Y - bounds.Top

	if drag < hoverIndex && y < middle {
		return false
	}
	if drag > hoverIndex && y > middle {
		return false
	}

	d.grid.Reorder(drag, hoverIndex)
	return true
}

// Drop ends the gesture. The order was already updated during Hover.
func (d *Drag) Drop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.id = mo.None[string]()
	d.pointer = mo.None[Point]()
	d.over = false
}

func (d *Drag) PointerPosition() mo.Option[Point] {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pointer
}

func (d *Drag) DraggedIndex() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.draggedIndex()
}

func (d *Drag) draggedIndex() int {
	id, ok := d.id.Get()
	if !ok {
		return -1
	}
	return d.grid.IndexOf(id)
}

func (d *Drag) IsPointerOverTarget() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.over
}
