package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatFromBed(t *testing.T) {
	path := writeBed(t,
		"chr22\t1000\t2000\t.\t5000\t.\t3.0",
	)
	s, err := StructureFromBed(path, nil)
	require.NoError(t, err)

	mat, err := MatFromBed(path, s)
	require.NoError(t, err)

	r, c := mat.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 3.0, mat.At(0, 1))
	assert.Equal(t, 3.0, mat.At(1, 0))
	assert.Equal(t, 0.0, mat.At(0, 0))
	assert.Equal(t, 0.0, mat.At(1, 1))
}

func TestMatFromBedAccumulatesAndSymmetrizes(t *testing.T) {
	path := writeBed(t,
		"chr22\t1000\t2000\t.\t5000\t.\t3.0",
		"chr22\t5000\t6000\t.\t1000\t.\t2.0", //same pair, reversed
		"chr22\t1000\t2000\t.\t9000\t.\t1.0",
		"chr22\t5000\t6000\t.\t9000\t.\t4.0",
	)
	s, err := StructureFromBed(path, nil)
	require.NoError(t, err)
	require.Len(t, s.Points(), 3)

	mat, err := MatFromBed(path, s)
	require.NoError(t, err)

	assert.Equal(t, 5.0, mat.At(0, 1)) //3.0 + 2.0, no double counting
	r, c := mat.Dims()
	for i := 0; i < r; i++ {
		assert.Equal(t, 0.0, mat.At(i, i))
		for j := 0; j < c; j++ {
			assert.Equal(t, mat.At(j, i), mat.At(i, j))
		}
	}
}

func TestMatFromBedSkipsUnmappedLoci(t *testing.T) {
	structurePath := writeBed(t,
		"chr22\t1000\t2000\t.\t5000\t.\t3.0",
	)
	s, err := StructureFromBed(structurePath, nil)
	require.NoError(t, err)

	//same pair plus a record outside the structure's point set
	matPath := writeBed(t,
		"chr22\t1000\t2000\t.\t5000\t.\t3.0",
		"chr22\t1000\t2000\t.\t4000\t.\t7.0",
	)
	mat, err := MatFromBed(matPath, s)
	require.NoError(t, err)
	assert.Equal(t, 3.0, mat.At(0, 1))
}

func TestMatFromBedDegenerateRow(t *testing.T) {
	structurePath := writeBed(t,
		"chr22\t1000\t2000\t.\t5000\t.\t3.0",
		"chr22\t1000\t2000\t.\t9000\t.\t1.0",
	)
	s, err := StructureFromBed(structurePath, nil)
	require.NoError(t, err)
	require.Len(t, s.Points(), 3)

	//locus 9000 retains no contacts in this list
	matPath := writeBed(t,
		"chr22\t1000\t2000\t.\t5000\t.\t3.0",
	)
	_, err = MatFromBed(matPath, s)
	var derr *DegenerateRowError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, []int{9000}, derr.GenCoords)
}

func TestNormalizedDistMat(t *testing.T) {
	path := writeBed(t,
		"chr22\t1000\t2000\t.\t5000\t.\t3.0",
		"chr22\t1000\t2000\t.\t9000\t.\t1.0",
		"chr22\t5000\t6000\t.\t9000\t.\t2.0",
	)
	s, err := StructureFromBed(path, nil)
	require.NoError(t, err)

	dists, err := NormalizedDistMat(path, s, 4)
	require.NoError(t, err)

	r, c := dists.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 3, c)

	//symmetric, non-negative, mean 1
	sum := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.Equal(t, dists.At(j, i), dists.At(i, j))
			assert.GreaterOrEqual(t, dists.At(i, j), 0.0)
			sum += dists.At(i, j)
		}
	}
	assert.InDelta(t, 1, sum/float64(r*c), 1e-12)

	//higher contact weight means smaller distance
	assert.Less(t, dists.At(0, 1), dists.At(1, 2))
	assert.Less(t, dists.At(1, 2), dists.At(0, 2))
}
