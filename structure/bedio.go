package structure

import (
	"bufio"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nimezhu/netio"
	"github.com/sirupsen/logrus"

	"github.com/nimezhu/chrom3d/tracker"
)

/* Contact list records are whitespace separated, positional:
 *	field 0	chromosome name (first record only)
 *	field 1	first locus genomic position
 *	field 2	first locus bin end (first record only, infers resolution)
 *	field 4	second locus genomic position
 *	field 6	contact weight
 */

//eachRecord : scans a contact list at a local path or URI, calling fn
//with the 1-based line number and fields of every non-blank record.
func eachRecord(uri string, fn func(line int, fields []string) error) error {
	f, err := netio.NewReadSeeker(uri)
	if err != nil {
		return err
	}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if err := fn(line, fields); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func atoiField(fields []string, i int, line int) (int, error) {
	if i >= len(fields) {
		return 0, &ParseError{line, errMissingFields}
	}
	v, err := strconv.Atoi(fields[i])
	if err != nil {
		return 0, &ParseError{line, err}
	}
	return v, nil
}

//ChromFromBed : initializes chromosome parameters by scanning an
//intrachromosomal contact list. The name and resolution come from the
//first record, the bounds from a running min/max over both loci of
//every record, rounded out to resolution multiples.
func ChromFromBed(uri string) (*Chrom, error) {
	logrus.Infof("scanning %s", uri)
	minPos := math.MaxInt
	maxPos := 0
	res := 0
	name := ""
	count := 0
	err := eachRecord(uri, func(line int, fields []string) error {
		pos1, err := atoiField(fields, 1, line)
		if err != nil {
			return err
		}
		pos2, err := atoiField(fields, 4, line)
		if err != nil {
			return err
		}
		if count == 0 {
			name = fields[0]
			binEnd, err := atoiField(fields, 2, line)
			if err != nil {
				return err
			}
			res = binEnd - pos1
			if res <= 0 {
				return &ParseError{line, fmt.Errorf("non-positive resolution %d", res)}
			}
		}
		for _, pos := range []int{pos1, pos2} {
			if pos < minPos {
				minPos = pos
			}
			if pos > maxPos {
				maxPos = pos
			}
		}
		count++
		return nil
	})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("structure: empty contact list %s", uri)
	}
	minPos = (minPos / res) * res
	maxPos = ((maxPos + res - 1) / res) * res
	return NewChrom(minPos, maxPos, res, name, count), nil
}

//StructureFromBed : initializes a structure over a chromosome's whole
//range from an intrachromosomal contact list. A nil chrom is derived
//from the list itself.
func StructureFromBed(uri string, chrom *Chrom) (*Structure, error) {
	var err error
	if chrom == nil {
		chrom, err = ChromFromBed(uri)
		if err != nil {
			return nil, err
		}
	}
	return SubstructureFromBed(uri, chrom, chrom.MinPos, chrom.MaxPos, 0)
}

//SubstructureFromBed : initializes a structure over the subrange
//[start, end], instantiating only loci that appear in a valid non-self
//in-range contact. offset must be the point number of start's locus.
func SubstructureFromBed(uri string, chrom *Chrom, start int, end int, offset int) (*Structure, error) {
	s := New(chrom, (end-start)/chrom.Res+1, offset)
	trk := tracker.New("identifying loci", chrom.Size)
	err := eachRecord(uri, func(line int, fields []string) error {
		defer trk.Increment()
		pos1, err := atoiField(fields, 1, line)
		if err != nil {
			return err
		}
		pos2, err := atoiField(fields, 4, line)
		if err != nil {
			return err
		}
		if pos1 < start || pos1 > end || pos2 < start || pos2 > end {
			return nil
		}
		num1, ok1 := chrom.PointNumber(pos1)
		num2, ok2 := chrom.PointNumber(pos2)
		if !ok1 || !ok2 {
			return nil
		}
		if num1 == num2 { //non-self-interacting
			return nil
		}
		if s.At(num1) == nil {
			s.SetPoint(&Point{Num: num1, Chrom: chrom})
		}
		if s.At(num2) == nil {
			s.SetPoint(&Point{Num: num2, Chrom: chrom})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	trk.Done()
	s.IndexPoints()
	return s, nil
}
