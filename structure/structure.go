package structure

import (
	"github.com/gonum/matrix/mat64"

	"github.com/nimezhu/chrom3d/linalg"
)

/* Structure : sparse ordered collection of points over a contiguous
 * genomic range, optionally composed from substructures. Slot i is nil
 * (empty locus) or holds the point numbered i+Offset. When composed, the
 * parent's slots alias the children's Point values, so a mutation through
 * either side is visible to both.
 */
type Structure struct {
	points     []*Point
	structures []*Structure
	Chrom      *Chrom
	Offset     int //point number of slot 0 (for substructures only)
}

//New : empty structure with n slots.
func New(chrom *Chrom, n int, offset int) *Structure {
	return &Structure{points: make([]*Point, n), Chrom: chrom, Offset: offset}
}

//Slots : raw slot array, nil entries included. Shared, not copied.
func (s *Structure) Slots() []*Point {
	return s.points
}

//Points : non-empty points in slot order.
func (s *Structure) Points() []*Point {
	pts := make([]*Point, 0, len(s.points))
	for _, p := range s.points {
		if p != nil {
			pts = append(pts, p)
		}
	}
	return pts
}

//PointNums : locus numbers of the non-empty points.
func (s *Structure) PointNums() []int {
	nums := make([]int, 0, len(s.points))
	for _, p := range s.points {
		if p != nil {
			nums = append(nums, p.Num)
		}
	}
	return nums
}

//Coords : positions of the non-empty points.
func (s *Structure) Coords() [][3]float64 {
	coords := make([][3]float64, 0, len(s.points))
	for _, p := range s.points {
		if p != nil {
			coords = append(coords, p.Pos)
		}
	}
	return coords
}

//SetCoords : overwrites the non-empty points' positions in slot order.
func (s *Structure) SetCoords(coords [][3]float64) {
	i := 0
	for _, p := range s.points {
		if p != nil && i < len(coords) {
			p.Pos = coords[i]
			i++
		}
	}
}

//GenCoords : non-empty genomic coordinates of the structure.
func (s *Structure) GenCoords() []int {
	coords := make([]int, 0, len(s.points))
	for _, p := range s.points {
		if p != nil {
			coords = append(coords, s.Chrom.GenCoord(p.Num))
		}
	}
	return coords
}

//At : point at a locus number, nil if empty or out of range.
func (s *Structure) At(num int) *Point {
	i := num - s.Offset
	if i < 0 || i >= len(s.points) {
		return nil
	}
	return s.points[i]
}

//SetPoint : places a point into the slot for its locus number.
func (s *Structure) SetPoint(p *Point) {
	s.points[p.Num-s.Offset] = p
}

//Index : converts a genomic coordinate into the dense index of its
//point. The second return is false for out-of-range or empty loci.
func (s *Structure) Index(genCoord int) (int, bool) {
	num, ok := s.Chrom.PointNumber(genCoord)
	if !ok {
		return 0, false
	}
	p := s.At(num)
	if p == nil {
		return 0, false
	}
	return p.Index, true
}

//Structures : substructures this structure was composed from.
func (s *Structure) Structures() []*Structure {
	return s.structures
}

//SetStructures : composes this structure from substructures. The slot
//array is rebuilt as their union by point number, sharing the child
//Point values by reference.
func (s *Structure) SetStructures(subs []*Structure) {
	s.structures = subs
	maxNum := 0
	for _, sub := range subs {
		for _, num := range sub.PointNums() {
			if num > maxNum {
				maxNum = num
			}
		}
	}
	s.points = make([]*Point, maxNum+1)
	for _, sub := range subs {
		for _, p := range sub.Points() {
			s.points[p.Num] = p
		}
	}
}

//CreateSubstructure : creates an indexed substructure over the given
//slots and appends it to this structure.
func (s *Structure) CreateSubstructure(points []*Point, offset int) *Structure {
	sub := &Structure{points: points, Chrom: s.Chrom, Offset: offset}
	sub.IndexPoints()
	s.structures = append(s.structures, sub)
	return sub
}

//IndexPoints : assigns dense 0..k-1 indices to the non-empty points in
//slot order. Idempotent; required after every change to the non-empty
//set.
func (s *Structure) IndexPoints() {
	i := 0
	for _, p := range s.points {
		if p != nil {
			p.Index = i
			i++
		}
	}
}

//Transform : applies pos' = r*pos + t to every non-empty point. A nil
//rotation means identity, a nil translation means zero; ordering,
//indices and emptiness are untouched.
func (s *Structure) Transform(r *mat64.Dense, t []float64) {
	if r == nil {
		r = linalg.Identity3()
	}
	if t == nil {
		t = make([]float64, 3)
	}
	for _, p := range s.points {
		if p == nil {
			continue
		}
		var pos [3]float64
		for i := 0; i < 3; i++ {
			pos[i] = r.At(i, 0)*p.Pos[0] + r.At(i, 1)*p.Pos[1] + r.At(i, 2)*p.Pos[2] + t[i]
		}
		p.Pos = pos
	}
}

//Rescale : normalizes the structure to radius of gyration 1.
func (s *Structure) Rescale() {
	rg := linalg.RadiusOfGyration(s.Coords())
	if rg == 0 {
		return
	}
	for _, p := range s.points {
		if p != nil {
			p.Pos[0] /= rg
			p.Pos[1] /= rg
			p.Pos[2] /= rg
		}
	}
}
