package cell

/*

# Cell primitives

This package provides the in-memory building blocks of the cell data model: a
tree of nodes, each holding up to 1023 bits of payload and up to 4 child
references. Trees of cells are what a Bag of Cells (BOC) container
serializes; the container format itself lives outside this package (see the
`boc` package for the header constants).

It follows the "functional primitives" style of our other bit level packages:

- small, composable functions
- explicit bit layouts
- sentinel errors; only the index accessors `At` and `Bit` panic, like slice indexing

## Bit numbering

All bit sequences are packed MSB-first: bit 0 is the most significant bit of
byte 0, bit 8 the most significant bit of byte 1, and so on. Trailing bits of
the last byte are always zero.

	byte 0                          byte 1
	+---+---+---+---+---+---+---+---+---+---+---
	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 | 8 | 9 | ...
	+---+---+---+---+---+---+---+---+---+---+---

The same order is used when StoreIntAsBits reads raw bytes and when Int257 is
packed: bit 0 of an Int257 is its two's complement sign bit.

## Slice

A Slice is a bounded bit cursor. It has no stored read position; instead
reads come in two forms:

- PreloadX reads from the front and leaves the slice untouched
- LoadX reads from the front and drops what it read

Both forms share a single bound check, so a failed load never consumes
anything. Stores append to the end and are all-or-nothing: a store that would
push the slice past MaxBits fails with ErrCapacityExceeded and writes nothing.

## Cell

A Cell owns one Slice and up to MaxRefs child cells. Refs are kept in
insertion order and addressed by index. Every cell has at most one parent:
AddRef refuses a child some cell already holds, and refuses the receiver or
any of its ancestors. The structure therefore stays a tree, and Level and
Walk visit each descendant exactly once.

*/
