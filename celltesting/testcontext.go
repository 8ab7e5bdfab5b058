package celltesting

import (
	"math/rand"
	"testing"

	"github.com/forestrie/go-cells/cell"
	"github.com/stretchr/testify/require"
)

// TestContext carries a seeded RNG and the test it reports failures to.
type TestContext struct {
	T    *testing.T
	Rand *rand.Rand
	cfg  TestConfig
}

// TestConfig controls the data a TestContext generates.
type TestConfig struct {
	// We seed the RNG with Seed. It is normal to force it to some fixed value
	// so that the generated data is the same from run to run.
	Seed int64
	// MaxRefs caps the fan-out of generated trees. Zero means cell.MaxRefs.
	MaxRefs int
}

// NewTestContext seeds a TestContext from cfg and logs the seed so a failing
// run can be replayed.
func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	if cfg.MaxRefs <= 0 || cfg.MaxRefs > cell.MaxRefs {
		cfg.MaxRefs = cell.MaxRefs
	}
	t.Logf("celltesting seed: %d", cfg.Seed)
	return TestContext{
		T:    t,
		Rand: rand.New(rand.NewSource(cfg.Seed)),
		cfg:  cfg,
	}
}

// RandomBits returns n random bits.
func (c *TestContext) RandomBits(n int) cell.BitString {
	data := make([]byte, (n+7)/8)
	_, _ = c.Rand.Read(data)
	b, err := cell.NewBitString(data, n)
	require.NoError(c.T, err)
	return b
}

// RandomSlice returns a slice of random length in [0, maxBits].
func (c *TestContext) RandomSlice(maxBits int) *cell.Slice {
	if maxBits > cell.MaxBits {
		maxBits = cell.MaxBits
	}
	s, err := cell.NewSlice(c.RandomBits(c.Rand.Intn(maxBits + 1)))
	require.NoError(c.T, err)
	return s
}

// RandomInt257 returns a uniformly random Int257.
func (c *TestContext) RandomInt257() cell.Int257 {
	v, err := cell.Int257FromBits(c.RandomBits(cell.IntBits))
	require.NoError(c.T, err)
	return v
}

// CompleteTree returns a tree where every cell above the leaves has exactly
// fanout refs. depth counts the root, so its Level is depth.
func (c *TestContext) CompleteTree(depth, fanout int) *cell.Cell {
	root := cell.NewCell(c.RandomSlice(cell.MaxBits))
	if depth <= 1 {
		return root
	}
	for i := 0; i < fanout; i++ {
		require.NoError(c.T, root.AddRef(c.CompleteTree(depth-1, fanout)))
	}
	return root
}

// RandomTree returns a tree with Level at most maxDepth and a random number
// of refs per cell. It also returns the tree's Level computed independently
// of cell.Level.
func (c *TestContext) RandomTree(maxDepth int) (*cell.Cell, int) {
	root := cell.NewCell(c.RandomSlice(cell.MaxBits))
	if maxDepth <= 1 {
		return root, 1
	}
	deepest := 1
	for i := c.Rand.Intn(c.cfg.MaxRefs + 1); i > 0; i-- {
		child, level := c.RandomTree(maxDepth - 1)
		require.NoError(c.T, root.AddRef(child))
		if level+1 > deepest {
			deepest = level + 1
		}
	}
	return root, deepest
}
