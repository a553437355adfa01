package structure

import "sort"

//MakeCompatible : reconciles structures over the same resolution onto
//their consensus coordinate set, the genomic coordinates at which every
//structure has a point. Each structure is rewritten in place: a new
//chromosome spanning the consensus, a fresh slot array, and points
//carried over by position with indices following consensus order.
//Non-consensus points are dropped. Returns ErrNoConsensus when the
//consensus set is empty.
func MakeCompatible(structures []*Structure) error {
	counts := make(map[int]int)
	for _, s := range structures {
		for _, genCoord := range s.GenCoords() {
			counts[genCoord]++
		}
	}
	consensus := make([]int, 0, len(counts))
	for genCoord, n := range counts {
		if n == len(structures) {
			consensus = append(consensus, genCoord)
		}
	}
	if len(consensus) == 0 {
		return ErrNoConsensus
	}
	sort.Ints(consensus)

	for _, s := range structures {
		chrom := NewChrom(consensus[0], consensus[len(consensus)-1]+s.Chrom.Res, s.Chrom.Res, s.Chrom.Name, s.Chrom.Size)
		points := make([]*Point, chrom.Length())
		for i, genCoord := range consensus {
			oldNum, _ := s.Chrom.PointNumber(genCoord)
			newNum, _ := chrom.PointNumber(genCoord)
			old := s.points[oldNum-s.Offset]
			points[newNum] = &Point{Pos: old.Pos, Num: newNum, Chrom: chrom, Index: i}
		}
		s.points = points
		s.Chrom = chrom
		s.Offset = 0
		s.structures = nil
	}
	return nil
}
