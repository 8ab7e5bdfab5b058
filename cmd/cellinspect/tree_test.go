package main

import (
	"testing"

	"github.com/forestrie/go-cells/cell"
	"github.com/stretchr/testify/require"
	"github.com/xlab/treeprint"
)

func TestBuildTree(t *testing.T) {
	var seq uint64
	root, err := buildTree(3, 2, 8, &seq)
	require.NoError(t, err)
	require.Equal(t, uint64(7), seq)
	require.Equal(t, 3, root.Level())
	require.Equal(t, uint8(2), root.RefCount())
	require.Equal(t, "00000000", root.Data().String())

	second, err := root.Ref(0)
	require.NoError(t, err)
	require.Equal(t, "00000001", second.Data().String())

	tree := treeprint.NewWithRoot(displayCell(root))
	addRefs(tree, root)
	require.Contains(t, tree.String(), "[8 bits, 0 refs] 00000010")
}

func TestBuildTreeWidePayload(t *testing.T) {
	var seq uint64
	root, err := buildTree(1, 0, 100, &seq)
	require.NoError(t, err)
	require.Equal(t, uint16(100), root.Data().Len())
}

func TestBuildTreeRejectsWideFanout(t *testing.T) {
	var seq uint64
	_, err := buildTree(2, cell.MaxRefs+1, 8, &seq)
	require.ErrorIs(t, err, cell.ErrTooManyRefs)
}
