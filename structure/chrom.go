package structure

//Chrom : basic information on a chromosome's coordinate space, inferred
//from a contact list or read back from a serialized structure file.
type Chrom struct {
	MinPos int    //minimum genomic coordinate
	MaxPos int    //maximum genomic coordinate
	Res    int    //resolution (bp)
	Name   string //e.g. "chr22"
	Size   int    //records in the source file, -1 if unknown
}

func NewChrom(minPos int, maxPos int, res int, name string, size int) *Chrom {
	return &Chrom{minPos, maxPos, res, name, size}
}

//Length : number of possible loci slots.
func (c *Chrom) Length() int {
	return (c.MaxPos-c.MinPos)/c.Res + 1
}

//PointNumber : converts a genomic coordinate into a point number.
//The second return is false outside [MinPos, MaxPos].
func (c *Chrom) PointNumber(genCoord int) (int, bool) {
	if genCoord < c.MinPos || genCoord > c.MaxPos {
		return 0, false
	}
	return (genCoord - c.MinPos) / c.Res, true
}

//GenCoord : genomic coordinate of a point number, the inverse of
//PointNumber on bin starts.
func (c *Chrom) GenCoord(num int) int {
	return c.MinPos + c.Res*num
}

//ReduceRes : creates a low resolution version of this chromosome.
//Bounds are re-aligned to the coarser grid, MinPos down and MaxPos up.
func (c *Chrom) ReduceRes(ratio int) *Chrom {
	lowRes := c.Res * ratio
	lowMin := (c.MinPos / lowRes) * lowRes
	lowMax := ((c.MaxPos + lowRes - 1) / lowRes) * lowRes
	return &Chrom{lowMin, lowMax, lowRes, c.Name, c.Size}
}
