package structure

import (
	"errors"
	"fmt"
)

//ErrNoConsensus : no genomic coordinate is shared by every structure of
//a collection given to MakeCompatible.
var ErrNoConsensus = errors.New("structure: no genomic coordinate shared by all structures")

var errMissingFields = errors.New("missing fields")

//ParseError : a contact-list record that could not be parsed. Fatal,
//there is no partial-record recovery.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("structure: contact list line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

//DegenerateRowError : a contact matrix row summed to zero, meaning a
//locus retained no contacts. This indicates a structure/matrix mismatch
//in the data, so the whole run halts rather than recovering per row.
type DegenerateRowError struct {
	GenCoords []int //genomic coordinates of the zero-sum rows
}

func (e *DegenerateRowError) Error() string {
	return fmt.Sprintf("structure: zero contact sum at genomic coordinates %v", e.GenCoords)
}
