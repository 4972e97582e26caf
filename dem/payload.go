package dem

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// maxPreallocation caps the capacity taken from a size hint so a bogus
// member size can't trigger a huge allocation.
const maxPreallocation = 1 << 24

// Payload holds the decoded cells of a flt file.
type Payload struct {
	Points    []float32
	MinHeight float32
	MaxHeight float32
}

// ParsePayload decodes a stream of little-endian float32 values until EOF.
// sizeHint is the expected stream length in bytes, or a value <= 0 if unknown.
func ParsePayload(reader io.Reader, sizeHint int64) (Payload, error) {
	payload := Payload{
		MinHeight: float32(math.Inf(1)),
		MaxHeight: float32(math.Inf(-1)),
	}

	if sizeHint > 0 {
		n := sizeHint / 4
		if n > maxPreallocation {
			n = maxPreallocation
		}
		payload.Points = make([]float32, 0, n)
	}

	buffered := bufio.NewReaderSize(reader, 64*1024)
	var buf [4]byte

	for {
		n, err := io.ReadFull(buffered, buf[:])
		if err == io.EOF {
			break
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return Payload{}, fmt.Errorf("%w: %d trailing bytes after %d values", ErrPayloadTruncated, n, len(payload.Points))
		}
		if err != nil {
			return Payload{}, fmt.Errorf("%w: %v", ErrMemberUnreadable, err)
		}

		f := math.Float32frombits(binary.LittleEndian.Uint32(buf[:]))

		if f < payload.MinHeight {
			payload.MinHeight = f
		}
		if f > payload.MaxHeight {
			payload.MaxHeight = f
		}

		payload.Points = append(payload.Points, f)
	}

	return payload, nil
}

// IndexOf returns the index of the first point equal to value or -1.
// A NaN value is never found.
func (payload Payload) IndexOf(value float32) int {
	for i, p := range payload.Points {
		if p == value {
			return i
		}
	}
	return -1
}
