package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/xsss/shamir"
)

func testShare() shamir.Share {
	return shamir.Share{X: 9, Y: []byte{0xde, 0xad, 0xbe, 0xef}}
}

func TestRoundTripAllFormats(t *testing.T) {
	th := 3
	id := 1
	env := Envelope{Threshold: &th, ID: &id}

	for _, format := range []Format{JSON, Hex, Base64, Raw} {
		t.Run(string(format), func(t *testing.T) {
			encoded, err := Encode(format, testShare(), env)
			require.NoError(t, err)

			decoded, gotEnv, err := Decode(format, encoded)
			require.NoError(t, err)
			assert.Equal(t, testShare().X, decoded.X)
			assert.Equal(t, testShare().Y, decoded.Y)

			if format == JSON || format == Hex {
				require.NotNil(t, gotEnv.Threshold)
				assert.Equal(t, th, *gotEnv.Threshold)
				require.NotNil(t, gotEnv.ID)
				assert.Equal(t, id, *gotEnv.ID)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, JSON, f)

	_, err = ParseFormat("xml")
	require.Error(t, err)
}

func TestDecodeRawTooShort(t *testing.T) {
	_, _, err := Decode(Raw, []byte{1})
	require.Error(t, err)
}
