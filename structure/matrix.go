package structure

import (
	"strconv"

	"github.com/gonum/matrix/mat64"

	"github.com/nimezhu/chrom3d/linalg"
)

//MatFromBed : projects a contact list onto a structure's indexed points
//as a dense symmetric k x k matrix, k the number of non-empty points.
//Records whose loci do not both map to indexed points are skipped, as
//are records collapsing onto a single index, so the diagonal is never
//accumulated. A zero-sum row is a *DegenerateRowError.
func MatFromBed(uri string, s *Structure) (*mat64.Dense, error) {
	k := len(s.Points())
	mat := mat64.NewDense(k, k, make([]float64, k*k))
	err := eachRecord(uri, func(line int, fields []string) error {
		pos1, err := atoiField(fields, 1, line)
		if err != nil {
			return err
		}
		pos2, err := atoiField(fields, 4, line)
		if err != nil {
			return err
		}
		if len(fields) < 7 {
			return &ParseError{line, errMissingFields}
		}
		weight, err := strconv.ParseFloat(fields[6], 64)
		if err != nil {
			return &ParseError{line, err}
		}
		idx1, ok1 := s.Index(pos1)
		idx2, ok2 := s.Index(pos2)
		if !ok1 || !ok2 || idx1 == idx2 {
			return nil
		}
		row, col := idx1, idx2
		if col > row {
			row, col = col, row
		}
		mat.Set(row, col, mat.At(row, col)+weight)
		return nil
	})
	if err != nil {
		return nil, err
	}
	linalg.MakeSymmetric(mat)
	var degenerate []int
	gen := s.GenCoords()
	for i := 0; i < k; i++ {
		sum := 0.0
		for j := 0; j < k; j++ {
			sum += mat.At(i, j)
		}
		if sum == 0 {
			degenerate = append(degenerate, gen[i])
		}
	}
	if len(degenerate) > 0 {
		return nil, &DegenerateRowError{GenCoords: degenerate}
	}
	return mat, nil
}

//NormalizedDistMat : standard processing for creating a distance matrix
//from a contact list: contacts to distances with the given conversion
//exponent, re-symmetrized, then normalized to global mean 1.
func NormalizedDistMat(uri string, s *Structure, alpha float64) (*mat64.Dense, error) {
	contacts, err := MatFromBed(uri, s)
	if err != nil {
		return nil, err
	}
	dists := linalg.ContactToDist(contacts, alpha)
	linalg.MakeSymmetric(dists)
	mean := linalg.Mean(dists)
	if mean != 0 {
		dists.Scale(1/mean, dists)
	}
	return dists, nil
}
