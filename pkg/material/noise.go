package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// latticeSize is the number of lattice values; a power of two so the XOR of
// three permuted indices stays in range
const latticeSize = 256

// DefaultNoiseScale is the lattice cells per world unit
const DefaultNoiseScale = 4.0

// LatticeNoise is a hash-based value noise: integer lattice coordinates are
// hashed through three permutation tables into a table of random values.
// There is no interpolation between lattice points.
type LatticeNoise struct {
	Scale  float64
	values [latticeSize]float64
	permX  [latticeSize]int
	permY  [latticeSize]int
	permZ  [latticeSize]int
}

// NewLatticeNoise builds the value and permutation tables from random
func NewLatticeNoise(random *rand.Rand) *LatticeNoise {
	return NewScaledLatticeNoise(random, DefaultNoiseScale)
}

// NewScaledLatticeNoise builds a lattice noise with a custom frequency
func NewScaledLatticeNoise(random *rand.Rand, scale float64) *LatticeNoise {
	n := &LatticeNoise{Scale: scale}
	for i := range n.values {
		n.values[i] = random.Float64()
	}
	copy(n.permX[:], random.Perm(latticeSize))
	copy(n.permY[:], random.Perm(latticeSize))
	copy(n.permZ[:], random.Perm(latticeSize))
	return n
}

// Value returns the noise value in [0,1) for the lattice cell containing p
func (n *LatticeNoise) Value(p core.Vec3) float64 {
	ix := n.cell(p.X)
	iy := n.cell(p.Y)
	iz := n.cell(p.Z)
	return n.values[n.permX[ix]^n.permY[iy]^n.permZ[iz]]
}

func (n *LatticeNoise) cell(coord float64) int {
	scaled := n.Scale * math.Abs(coord)
	// Coordinates beyond the integer range wrap to cell 0
	if scaled >= math.MaxInt64 || math.IsNaN(scaled) {
		return 0
	}
	return int(uint64(scaled) % latticeSize)
}
