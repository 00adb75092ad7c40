package loader

import (
	"errors"
	"fmt"

	"github.com/mason-leap-lab/distributions/common/logger"
)

var (
	ErrDataFormat        = errors.New("invalid data format")
	ErrUnsupportedSource = errors.New("unsupported data source")
	ErrBlankLine         = errors.New("blank line")
	ErrNonFinite         = errors.New("not a finite number")
)

// DataFormatError Error on parsing a line of data.
type DataFormatError struct {
	Line int
	Text string
	Err  error
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("line %d: %q is not a number: %v", e.Line, logger.SafeString(e.Text, 32), e.Err)
}

func (e *DataFormatError) Unwrap() error {
	return e.Err
}

func (e *DataFormatError) Is(target error) bool {
	return target == ErrDataFormat
}
