package main

import (
	"fmt"
	"log/slog"

	"github.com/forestrie/go-cells/cell"

	"github.com/urfave/cli/v2"
	"github.com/xlab/treeprint"
)

var cmdTree = &cli.Command{
	Name:  "tree",
	Usage: "build a complete tree of cells and print its shape",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "depth",
			Usage: "number of levels, counting the root",
			Value: 3,
		},
		&cli.IntFlag{
			Name:  "fanout",
			Usage: "refs per non-leaf cell (at most 4)",
			Value: 2,
		},
		&cli.UintFlag{
			Name:  "payload-bits",
			Usage: "bits stored in each cell",
			Value: 8,
		},
	},
	Action: runTree,
}

func runTree(cctx *cli.Context) error {
	w := cctx.App.Writer
	depth := cctx.Int("depth")
	if depth < 1 {
		return fmt.Errorf("--depth must be at least 1")
	}
	payload := cctx.Uint("payload-bits")
	if payload > cell.MaxBits {
		return fmt.Errorf("--payload-bits %d: %w", payload, cell.ErrCapacityExceeded)
	}

	var seq uint64
	root, err := buildTree(depth, cctx.Int("fanout"), uint16(payload), &seq)
	if err != nil {
		return err
	}

	tree := treeprint.NewWithRoot(displayCell(root))
	addRefs(tree, root)
	fmt.Fprintln(w, tree.String())

	var cells, bits int
	if err := root.Walk(func(_ int, c *cell.Cell) error {
		cells++
		bits += int(c.Data().Len())
		return nil
	}); err != nil {
		return err
	}
	slog.Info("built tree", "cells", cells, "bits", bits)
	fmt.Fprintf(w, "level: %d\n", root.Level())
	fmt.Fprintf(w, "cells: %d\n", cells)
	fmt.Fprintf(w, "bits: %d\n", bits)
	return nil
}

// buildTree numbers cells in creation order, storing the sequence number in
// the low bits of each payload.
func buildTree(depth, fanout int, payload uint16, seq *uint64) (*cell.Cell, error) {
	s := cell.EmptySlice()
	n := payload
	if n > cell.UintMaxBits {
		if err := s.StoreUint(0, n-cell.UintMaxBits); err != nil {
			return nil, err
		}
		n = cell.UintMaxBits
	}
	v := *seq
	if n < cell.UintMaxBits {
		v &= (1 << n) - 1
	}
	if err := s.StoreUint(v, n); err != nil {
		return nil, err
	}
	*seq++

	c := cell.NewCell(s)
	if depth <= 1 {
		return c, nil
	}
	for i := 0; i < fanout; i++ {
		child, err := buildTree(depth-1, fanout, payload, seq)
		if err != nil {
			return nil, err
		}
		if err := c.AddRef(child); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func addRefs(tree treeprint.Tree, c *cell.Cell) {
	for _, r := range c.Refs() {
		if r.RefCount() == 0 {
			tree.AddNode(displayCell(r))
			continue
		}
		addRefs(tree.AddBranch(displayCell(r)), r)
	}
}

func displayCell(c *cell.Cell) string {
	return fmt.Sprintf("[%d bits, %d refs] %s", c.Data().Len(), c.RefCount(), c.Data())
}
