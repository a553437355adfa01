package structure

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimezhu/chrom3d/linalg"
)

//testStructure : structure over chr22:1000-9000 at 1kb with points at
//the given locus numbers, indexed.
func testStructure(t *testing.T, nums ...int) *Structure {
	t.Helper()
	chrom := NewChrom(1000, 9000, 1000, "chr22", -1)
	s := New(chrom, chrom.Length(), 0)
	for _, num := range nums {
		s.SetPoint(&Point{Num: num, Chrom: chrom})
	}
	s.IndexPoints()
	return s
}

func TestIndexPoints(t *testing.T) {
	s := testStructure(t, 7, 0, 4)
	pts := s.Points()
	require.Len(t, pts, 3)
	for i, p := range pts {
		assert.Equal(t, i, p.Index)
	}
	assert.Equal(t, []int{0, 4, 7}, s.PointNums())

	//idempotent
	s.IndexPoints()
	for i, p := range s.Points() {
		assert.Equal(t, i, p.Index)
	}
}

func TestIndex(t *testing.T) {
	s := testStructure(t, 0, 4)

	i, ok := s.Index(1000)
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	i, ok = s.Index(5000)
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = s.Index(2000) //empty locus
	assert.False(t, ok)

	_, ok = s.Index(100000) //out of range
	assert.False(t, ok)
}

func TestGenCoords(t *testing.T) {
	s := testStructure(t, 0, 4, 7)
	assert.Equal(t, []int{1000, 5000, 8000}, s.GenCoords())
}

func TestSetCoords(t *testing.T) {
	s := testStructure(t, 0, 4)
	s.SetCoords([][3]float64{{1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, [][3]float64{{1, 2, 3}, {4, 5, 6}}, s.Coords())
}

func TestTransform(t *testing.T) {
	t.Run("defaults are identity", func(t *testing.T) {
		s := testStructure(t, 0, 4)
		s.SetCoords([][3]float64{{1, 2, 3}, {4, 5, 6}})
		s.Transform(nil, nil)
		assert.Equal(t, [][3]float64{{1, 2, 3}, {4, 5, 6}}, s.Coords())
	})

	t.Run("translation", func(t *testing.T) {
		s := testStructure(t, 0, 4)
		s.SetCoords([][3]float64{{1, 2, 3}, {4, 5, 6}})
		s.Transform(nil, []float64{1, -1, 0.5})
		assert.Equal(t, [][3]float64{{2, 1, 3.5}, {5, 4, 6.5}}, s.Coords())
	})

	t.Run("rotation", func(t *testing.T) {
		s := testStructure(t, 0, 4)
		s.SetCoords([][3]float64{{1, 0, 0}, {0, 1, 0}})
		s.Transform(linalg.RotZ(math.Pi/2), nil)
		coords := s.Coords()
		assert.InDelta(t, 0, coords[0][0], 1e-12)
		assert.InDelta(t, 1, coords[0][1], 1e-12)
		assert.InDelta(t, -1, coords[1][0], 1e-12)
		assert.InDelta(t, 0, coords[1][1], 1e-12)
	})

	t.Run("preserves indices and emptiness", func(t *testing.T) {
		s := testStructure(t, 0, 4, 7)
		s.Transform(linalg.RotX(1), []float64{1, 2, 3})
		assert.Equal(t, []int{0, 4, 7}, s.PointNums())
		for i, p := range s.Points() {
			assert.Equal(t, i, p.Index)
		}
		assert.Nil(t, s.At(2))
	})
}

func TestRescale(t *testing.T) {
	s := testStructure(t, 0, 4, 7)
	s.SetCoords([][3]float64{{3, 0, 0}, {0, 4, 0}, {0, 0, 12}})
	s.Rescale()
	assert.InDelta(t, 1, linalg.RadiusOfGyration(s.Coords()), 1e-12)
}

func TestSetStructures(t *testing.T) {
	chrom := NewChrom(1000, 9000, 1000, "chr22", -1)
	parent := New(chrom, 0, 0)

	subA := New(chrom, 4, 0)
	subA.SetPoint(&Point{Num: 1, Chrom: chrom})
	subA.IndexPoints()
	subB := New(chrom, 4, 4)
	subB.SetPoint(&Point{Num: 6, Chrom: chrom})
	subB.IndexPoints()

	parent.SetStructures([]*Structure{subA, subB})
	require.Len(t, parent.Slots(), 7)
	assert.Equal(t, []int{1, 6}, parent.PointNums())

	//points are shared by reference between parent and child
	parent.At(6).Pos = [3]float64{9, 9, 9}
	assert.Equal(t, [3]float64{9, 9, 9}, subB.At(6).Pos)
}

func TestCreateSubstructure(t *testing.T) {
	chrom := NewChrom(1000, 9000, 1000, "chr22", -1)
	parent := New(chrom, chrom.Length(), 0)
	pts := []*Point{{Num: 4, Chrom: chrom}, nil, {Num: 6, Chrom: chrom}}
	sub := parent.CreateSubstructure(pts, 4)
	require.Len(t, parent.Structures(), 1)
	assert.Equal(t, 4, sub.Offset)
	assert.Equal(t, 0, sub.At(4).Index)
	assert.Equal(t, 1, sub.At(6).Index)
}
