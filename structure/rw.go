package structure

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nimezhu/netio"
)

/* Serialized structure format, one locus slot per line:
 *	line 1	chromosome name
 *	line 2	resolution
 *	line 3	minimum genomic position
 *	line 4+	"<num>\t<x>\t<y>\t<z>", or "<num>\tnan\tnan\tnan" for
 *		empty slots; nums are sequential from the structure's offset
 */

//Write : serializes the structure, empty slots included.
func (s *Structure) Write(w io.Writer) error {
	out := bufio.NewWriter(w)
	fmt.Fprintln(out, s.Chrom.Name)
	fmt.Fprintln(out, s.Chrom.Res)
	fmt.Fprintln(out, s.Chrom.MinPos)
	num := s.Offset
	for _, p := range s.points {
		if p == nil {
			fmt.Fprintf(out, "%d\tnan\tnan\tnan\n", num)
		} else {
			fmt.Fprintf(out, "%d\t%s\t%s\t%s\n", num,
				strconv.FormatFloat(p.Pos[0], 'g', -1, 64),
				strconv.FormatFloat(p.Pos[1], 'g', -1, 64),
				strconv.FormatFloat(p.Pos[2], 'g', -1, 64))
		}
		num++
	}
	return out.Flush()
}

//WriteFile : serializes the structure to a file.
func (s *Structure) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

//ReadStructure : deserializes a structure. The chromosome's maximum
//position is reconstructed from the last locus number, and the offset
//from the first.
func ReadStructure(r io.Reader) (*Structure, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	header := make([]string, 0, 3)
	for len(header) < 3 && scanner.Scan() {
		header = append(header, strings.TrimSpace(scanner.Text()))
	}
	if len(header) < 3 {
		return nil, fmt.Errorf("structure: truncated header")
	}
	res, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, fmt.Errorf("structure: bad resolution: %v", err)
	}
	minPos, err := strconv.Atoi(header[2])
	if err != nil {
		return nil, fmt.Errorf("structure: bad minimum position: %v", err)
	}
	chrom := NewChrom(minPos, minPos, res, header[0], -1)
	s := &Structure{Chrom: chrom}
	first := true
	index := 0
	num := 0
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			break
		}
		if len(fields) < 4 {
			return nil, fmt.Errorf("structure: short point record %q", scanner.Text())
		}
		num, err = strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("structure: bad point number: %v", err)
		}
		if first {
			s.Offset = num
			first = false
		}
		if fields[1] == "nan" {
			s.points = append(s.points, nil)
			continue
		}
		var pos [3]float64
		for i := 0; i < 3; i++ {
			pos[i], err = strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("structure: bad coordinate: %v", err)
			}
		}
		s.points = append(s.points, &Point{Pos: pos, Num: num, Chrom: chrom, Index: index})
		index++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	chrom.MaxPos = chrom.MinPos + chrom.Res*num //max pos is last point num
	return s, nil
}

//FromFile : reads a serialized structure from a local path or URI.
func FromFile(uri string) (*Structure, error) {
	f, err := netio.NewReadSeeker(uri)
	if err != nil {
		return nil, err
	}
	return ReadStructure(f)
}
