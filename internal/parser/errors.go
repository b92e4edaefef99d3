package parser

import (
	"errors"
	"fmt"
)

// ErrMalformedHeader is returned when the metadata block at the top of the
// file is incomplete, unmarked, or names an unusable set of series columns.
var ErrMalformedHeader = errors.New("malformed header")

// RowShapeError reports a data row whose column count does not match the
// header row. Line is the 1-based line number in the source file.
type RowShapeError struct {
	Line int
	Got  int
	Want int
}

func (e *RowShapeError) Error() string {
	return fmt.Sprintf("line %d: row has %d columns, header declares %d", e.Line, e.Got, e.Want)
}

// NumericParseError reports a token in a data row that is not a number.
// Line is the 1-based line number in the source file, Column the 1-based
// field index within the row.
type NumericParseError struct {
	Line   int
	Column int
	Token  string
}

func (e *NumericParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %q is not a number", e.Line, e.Column, e.Token)
}
