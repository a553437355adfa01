package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighToLow(t *testing.T) {
	chrom := NewChrom(0, 7000, 1000, "chr22", -1)
	high := New(chrom, chrom.Length(), 0)
	high.SetPoint(&Point{Num: 0, Chrom: chrom, Pos: [3]float64{1, 1, 1}})
	high.SetPoint(&Point{Num: 1, Chrom: chrom, Pos: [3]float64{3, 3, 3}})
	high.SetPoint(&Point{Num: 5, Chrom: chrom, Pos: [3]float64{6, 0, -2}})
	high.IndexPoints()

	low := HighToLow(high, 2)

	assert.Equal(t, 2000, low.Chrom.Res)
	assert.Equal(t, 0, low.Offset)

	//bucket {0,1} averaged
	p := low.At(0)
	require.NotNil(t, p)
	assert.Equal(t, [3]float64{2, 2, 2}, p.Pos)
	assert.Equal(t, 0, p.Index)

	//bucket with a single contributor keeps its position
	p = low.At(2)
	require.NotNil(t, p)
	assert.Equal(t, [3]float64{6, 0, -2}, p.Pos)
	assert.Equal(t, 1, p.Index)

	//all-empty buckets stay empty
	assert.Nil(t, low.At(1))
	assert.Equal(t, []int{0, 2}, low.PointNums())
}

func TestHighToLowOffset(t *testing.T) {
	chrom := NewChrom(0, 15000, 1000, "chr22", -1)
	high := New(chrom, 8, 8) //substructure over the upper half
	high.SetPoint(&Point{Num: 9, Chrom: chrom, Pos: [3]float64{1, 2, 3}})
	high.SetPoint(&Point{Num: 12, Chrom: chrom, Pos: [3]float64{4, 5, 6}})
	high.IndexPoints()

	low := HighToLow(high, 2)
	assert.Equal(t, 4, low.Offset)
	assert.Equal(t, []int{4, 6}, low.PointNums())
	assert.Equal(t, [3]float64{1, 2, 3}, low.At(4).Pos)
	assert.Equal(t, [3]float64{4, 5, 6}, low.At(6).Pos)
}
