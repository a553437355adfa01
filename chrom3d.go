package chrom3d

import (
	"bufio"
	"errors"
	"strconv"
	"strings"

	"github.com/nimezhu/netio"

	"github.com/nimezhu/chrom3d/structure"
)

/* Magic : guesses the format of a file by its leading lines.
 *	"bed"		whitespace contact list (>= 7 fields per record)
 *	"structure"	serialized structure file
 *	"unknown"	anything else
 */
func Magic(uri string) (string, error) {
	f, err := netio.NewReadSeeker(uri)
	if err != nil {
		return "unknown", err
	}
	scanner := bufio.NewScanner(f)
	lines := make([]string, 0, 3)
	for len(lines) < 3 && scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return "unknown", err
	}
	if len(lines) == 0 {
		return "unknown", errors.New("empty file")
	}
	if len(strings.Fields(lines[0])) >= 7 {
		return "bed", nil
	}
	if len(lines) == 3 && len(strings.Fields(lines[0])) == 1 {
		if _, err := strconv.Atoi(strings.TrimSpace(lines[1])); err == nil {
			if _, err := strconv.Atoi(strings.TrimSpace(lines[2])); err == nil {
				return "structure", nil
			}
		}
	}
	return "unknown", nil
}

//Load : loads a structure from either supported format. Contact lists
//derive their chromosome parameters from the list itself.
func Load(uri string) (*structure.Structure, error) {
	kind, err := Magic(uri)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "bed":
		return structure.StructureFromBed(uri, nil)
	case "structure":
		return structure.FromFile(uri)
	}
	return nil, errors.New("chrom3d: unrecognized file format")
}
