package cell

import "fmt"

// Cell is a tree node owning a payload Slice and up to MaxRefs child cells.
type Cell struct {
	data   *Slice
	refs   []*Cell
	parent *Cell
}

// NewCell returns a cell with no refs that takes ownership of data.
// A nil data is treated as an empty payload.
func NewCell(data *Slice) *Cell {
	if data == nil {
		data = EmptySlice()
	}
	return &Cell{data: data}
}

// Data returns the payload owned by c. The zero Cell has an empty payload.
func (c *Cell) Data() *Slice {
	if c.data == nil {
		c.data = EmptySlice()
	}
	return c.data
}

// BeginParse returns a copy of the payload for reading. Loads on the returned
// slice do not affect c.
func (c *Cell) BeginParse() *Slice {
	if c.data == nil {
		return EmptySlice()
	}
	return c.data.Clone()
}

// RefCount returns the number of child cells.
func (c *Cell) RefCount() uint8 { return uint8(len(c.refs)) }

// AddRef appends child as the next ref and takes ownership of it.
//
// A cell has at most one parent: a child already held by any cell, including
// c, fails with ErrSharedRef. c itself and its ancestors fail with
// ErrCyclicRef.
func (c *Cell) AddRef(child *Cell) error {
	if child == nil {
		return ErrNilRef
	}
	if len(c.refs) >= MaxRefs {
		return ErrTooManyRefs
	}
	for a := c; a != nil; a = a.parent {
		if a == child {
			return ErrCyclicRef
		}
	}
	if child.parent != nil {
		return ErrSharedRef
	}
	child.parent = c
	c.refs = append(c.refs, child)
	return nil
}

// HasParent reports whether c is held as a ref by another cell.
func (c *Cell) HasParent() bool { return c.parent != nil }

// Refs returns the child cells in insertion order. The returned slice is
// capped, so appending to it never changes c.
func (c *Cell) Refs() []*Cell {
	return c.refs[:len(c.refs):len(c.refs)]
}

// Ref returns the child at index i.
func (c *Cell) Ref(i int) (*Cell, error) {
	if i < 0 || i >= len(c.refs) {
		return nil, fmt.Errorf("ref %d of %d: %w", i, len(c.refs), ErrRefIndex)
	}
	return c.refs[i], nil
}

type levelItem struct {
	c     *Cell
	level int
}

// Level returns the depth of the tree rooted at c, counting c itself as 1.
func (c *Cell) Level() int {
	deepest := 0
	queue := []levelItem{{c, 1}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if item.level > deepest {
			deepest = item.level
		}
		for _, r := range item.c.refs {
			queue = append(queue, levelItem{r, item.level + 1})
		}
	}
	return deepest
}

// Walk visits c and its descendants depth first, parents before children.
// depth is 1 for c. Walk stops at the first error fn returns.
func (c *Cell) Walk(fn func(depth int, c *Cell) error) error {
	return c.walk(1, fn)
}

func (c *Cell) walk(depth int, fn func(depth int, c *Cell) error) error {
	if err := fn(depth, c); err != nil {
		return err
	}
	for _, r := range c.refs {
		if err := r.walk(depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}
