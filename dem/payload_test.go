package dem

import (
	"bytes"
	"encoding/hex"
	"math"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePayload(t *testing.T) {
	data, err := hex.DecodeString("0000803F000000400000404000008040")
	require.NoError(t, err)

	payload, err := ParsePayload(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	assert.Equal(t, []float32{1, 2, 3, 4}, payload.Points)
	assert.Equal(t, float32(1), payload.MinHeight)
	assert.Equal(t, float32(4), payload.MaxHeight)
	assert.Equal(t, 4, cap(payload.Points))
}

func TestParsePayload_Aggregates(t *testing.T) {
	values := []float32{12.5, -3, 0, 800.25, -3, 7}

	payload, err := ParsePayload(iotest.HalfReader(bytes.NewReader(floatsLE(values...))), 0)
	require.NoError(t, err)

	assert.Equal(t, values, payload.Points)
	assert.Equal(t, float32(-3), payload.MinHeight)
	assert.Equal(t, float32(800.25), payload.MaxHeight)
}

func TestParsePayload_Empty(t *testing.T) {
	payload, err := ParsePayload(bytes.NewReader(nil), 0)
	require.NoError(t, err)

	assert.Empty(t, payload.Points)
	assert.True(t, math.IsInf(float64(payload.MinHeight), 1))
	assert.True(t, math.IsInf(float64(payload.MaxHeight), -1))
}

func TestParsePayload_Truncated(t *testing.T) {
	for trailing := 1; trailing <= 3; trailing++ {
		data := append(floatsLE(1, 2, 3), make([]byte, trailing)...)

		_, err := ParsePayload(iotest.OneByteReader(bytes.NewReader(data)), int64(len(data)))
		assert.ErrorIs(t, err, ErrPayloadTruncated)
	}
}

func TestParsePayload_ReadError(t *testing.T) {
	reader := iotest.TimeoutReader(bytes.NewReader(floatsLE(1, 2, 3)))

	_, err := ParsePayload(iotest.OneByteReader(reader), 0)
	assert.ErrorIs(t, err, ErrMemberUnreadable)
}

func TestParsePayload_HugeSizeHint(t *testing.T) {
	payload, err := ParsePayload(bytes.NewReader(floatsLE(5)), math.MaxInt64)
	require.NoError(t, err)

	assert.Equal(t, []float32{5}, payload.Points)
}

func TestPayloadIndexOf(t *testing.T) {
	payload := Payload{Points: []float32{1, -9999, 3, -9999, float32(math.NaN())}}

	assert.Equal(t, 1, payload.IndexOf(-9999))
	assert.Equal(t, -1, payload.IndexOf(42))
	assert.Equal(t, -1, payload.IndexOf(float32(math.NaN())))
}
