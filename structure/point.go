package structure

//Point : a single locus realized in 3-D space.
type Point struct {
	Pos   [3]float64
	Num   int    //locus number within the chromosome, not necessarily sequential
	Chrom *Chrom //chromosome parameters the position is expressed in
	Index int    //dense sequential position, assigned by IndexPoints
}
