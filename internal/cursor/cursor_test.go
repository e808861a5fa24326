package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	for _, id := range []string{"1", "abc123", "b7b0cb5a-7a61-4b8e-9c1d-2f57e3a1f001"} {
		decoded, err := Decode(Encode(id))
		require.NoError(t, err)
		assert.Equal(t, id, decoded)
	}
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode("not_base64")
	assert.Error(t, err)
}
