package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlateShrinker(t *testing.T) {
	data := `{"players":["Alice","Bob"],"deck":[` + strings.Repeat(`{"suitIndex":0,"rank":1},`, 40) + `{"suitIndex":0,"rank":1}]}`

	payload, err := FlateShrinker(data)
	require.NoError(t, err)
	assert.NotEmpty(t, payload)
	assert.Less(t, len(payload), len(data))
	assert.NotContains(t, payload, "=")
	assert.NotContains(t, payload, "+")
	assert.NotContains(t, payload, "/")

	expanded, err := Expand(payload)
	require.NoError(t, err)
	assert.Equal(t, data, expanded)
}

func TestExpandErrors(t *testing.T) {
	_, err := Expand("not base64!")
	assert.ErrorContains(t, err, "invalid payload encoding")

	_, err = Expand("AAAA")
	assert.ErrorContains(t, err, "failed to decompress payload")
}
