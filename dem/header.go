package dem

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultNoDataValue is used when the header has no NODATA_value line.
const DefaultNoDataValue float32 = -9999.0

// Header holds the values of a hdr file.
type Header struct {
	Rows, Cols  uint64
	RowsSet     bool
	ColsSet     bool
	CellSize    float64
	XLowerLeft  float64
	YLowerLeft  float64
	NoDataValue float32
}

// NewHeader returns a header with all defaults applied.
func NewHeader() Header {
	return Header{NoDataValue: DefaultNoDataValue}
}

// ParseHeader reads a hdr file. Lines hold a key and a value separated by
// whitespace, unknown keys and surplus tokens are ignored.
func ParseHeader(reader io.Reader) (Header, error) {
	header := NewHeader()

	scanner := bufio.NewScanner(reader)
	scanner.Split(scanLines)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if err := parseHeaderLine(fields, &header); err != nil {
			return header, fmt.Errorf("line %d: %w", lineNumber, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return header, fmt.Errorf("%w: %v", ErrMemberUnreadable, err)
	}

	return header, nil
}

func parseHeaderLine(fields []string, header *Header) error {
	key := fields[0]

	var value string
	hasValue := len(fields) > 1
	if hasValue {
		value = fields[1]
	}

	switch key {
	case "nrows":
		i, err := parseShape(key, value, hasValue)
		if err != nil {
			return err
		}
		header.Rows = i
		header.RowsSet = true
	case "ncols":
		i, err := parseShape(key, value, hasValue)
		if err != nil {
			return err
		}
		header.Cols = i
		header.ColsSet = true
	case "cellsize":
		header.CellSize = parseGeometry(value)
	case "xllcorner":
		header.XLowerLeft = parseGeometry(value)
	case "yllcorner":
		header.YLowerLeft = parseGeometry(value)
	case "NODATA_value":
		if !hasValue {
			return fmt.Errorf("%w: %s has no value", ErrHeaderMalformed, key)
		}
		f, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return fmt.Errorf("%w: %s %q is no number", ErrHeaderMalformed, key, value)
		}
		header.NoDataValue = float32(f)
	}

	return nil
}

func parseShape(key, value string, hasValue bool) (uint64, error) {
	if !hasValue {
		return 0, fmt.Errorf("%w: %s has no value", ErrHeaderMalformed, key)
	}
	i, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is no unsigned integer", ErrHeaderMalformed, key, value)
	}
	return i, nil
}

// geometry keys fall back to 0 if the value is missing or broken
func parseGeometry(value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}

// scanLines is bufio.ScanLines with support for lone CR line endings.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// CR, maybe followed by LF
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// need one more byte to tell CR from CRLF
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}

	return 0, nil, nil
}
