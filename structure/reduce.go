package structure

//HighToLow : reduces the resolution of a structure by an integer ratio.
//High-resolution points are bucketed by (num-offset)/ratio; every
//occupied bucket becomes one low-resolution point at the coordinate-wise
//mean of its contributors, and empty buckets stay empty.
func HighToLow(high *Structure, ratio int) *Structure {
	lowChrom := high.Chrom.ReduceRes(ratio)
	lowN := (len(high.points)+ratio-1)/ratio + 1
	low := New(lowChrom, lowN, high.Offset/ratio)

	buckets := make([][]*Point, lowN)
	for _, p := range high.Points() {
		highNum := p.Num - high.Offset
		buckets[highNum/ratio] = append(buckets[highNum/ratio], p)
	}

	index := 0
	for i, merge := range buckets {
		if len(merge) == 0 {
			continue
		}
		var mean [3]float64
		for _, p := range merge {
			mean[0] += p.Pos[0]
			mean[1] += p.Pos[1]
			mean[2] += p.Pos[2]
		}
		n := float64(len(merge))
		mean[0] /= n
		mean[1] /= n
		mean[2] /= n
		low.points[i] = &Point{Pos: mean, Num: i + low.Offset, Chrom: lowChrom, Index: index}
		index++
	}
	return low
}
