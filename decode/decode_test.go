// SPDX-License-Identifier: MIT
package decode_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/witness-solver/board"
	"github.com/katalvlaran/witness-solver/decode"
)

const sampleJSON = `{
  "width": 1, "height": 1, "pillar": false,
  "grid": [
    [{"start": true}, {}, {}],
    [{}, {"type": "square", "color": 2}, {}],
    [{}, {}, {"end": "right"}]
  ]
}`

func TestDecodeJSON(t *testing.T) {
	p, err := decode.Decode(strings.NewReader(sampleJSON))
	require.NoError(t, err)
	require.Equal(t, 1, p.W)
	require.Equal(t, 1, p.H)

	starts := p.StartPositions()
	require.Len(t, starts, 1)
	assert.Equal(t, board.Pos{X: 0, Y: 0}, starts[0])

	square, ok := p.GetCell(1, 1)
	require.True(t, ok)
	assert.Equal(t, board.SymbolSquare, square.Type)
	assert.Equal(t, 2, square.Color)

	end, ok := p.GetCell(2, 2)
	require.True(t, ok)
	assert.Equal(t, board.EndRight, end.End)
}

func TestDecodeYAML(t *testing.T) {
	sampleYAML := `
width: 1
height: 1
pillar: false
grid:
  - - start: true
    - {}
    - {}
  - - {}
    - type: square
      color: 2
    - {}
  - - {}
    - {}
    - end: right
`
	p, err := decode.Decode(strings.NewReader(sampleYAML), decode.WithYAML())
	require.NoError(t, err)

	square, ok := p.GetCell(1, 1)
	require.True(t, ok)
	assert.Equal(t, board.SymbolSquare, square.Type)
}

func TestDecodeNegaColorString(t *testing.T) {
	payload := `{
	  "grid": [
	    [{}, {}, {}],
	    [{}, {"type": "nega", "color": "white"}, {}],
	    [{}, {}, {}]
	  ]
	}`
	p, err := decode.Decode(strings.NewReader(payload))
	require.NoError(t, err)

	nega, ok := p.GetCell(1, 1)
	require.True(t, ok)
	assert.Equal(t, board.SymbolNega, nega.Type)
	assert.Equal(t, 2, nega.Color)
}

func TestDecodeUnknownColorString(t *testing.T) {
	payload := `{
	  "grid": [
	    [{}, {}, {}],
	    [{}, {"type": "nega", "color": "purple"}, {}],
	    [{}, {}, {}]
	  ]
	}`
	_, err := decode.Decode(strings.NewReader(payload))
	assert.True(t, errors.Is(err, decode.ErrUnknownColor))
}

func TestDecodeMalformedGrid(t *testing.T) {
	_, err := decode.Decode(strings.NewReader(`{"grid": []}`))
	assert.True(t, errors.Is(err, decode.ErrMalformedGrid))
}

func TestDecodeInconsistentRows(t *testing.T) {
	_, err := decode.Decode(strings.NewReader(`{"grid": [[{},{}],[{}]]}`))
	assert.True(t, errors.Is(err, decode.ErrInconsistentRows))
}

func TestDecodeInvalidDimensions(t *testing.T) {
	_, err := decode.Decode(strings.NewReader(`{"grid": [[{}]]}`))
	assert.True(t, errors.Is(err, decode.ErrInvalidDimensions))
}

func TestDecodeUnknownSymbolType(t *testing.T) {
	payload := `{
	  "grid": [
	    [{}, {}, {}],
	    [{}, {"type": "hexagon"}, {}],
	    [{}, {}, {}]
	  ]
	}`
	_, err := decode.Decode(strings.NewReader(payload))
	assert.True(t, errors.Is(err, decode.ErrUnknownSymbolType))
}

func TestDecodeUnknownEndDirection(t *testing.T) {
	payload := `{
	  "grid": [
	    [{"end": "north"}, {}, {}],
	    [{}, {}, {}],
	    [{}, {}, {}]
	  ]
	}`
	_, err := decode.Decode(strings.NewReader(payload))
	assert.True(t, errors.Is(err, decode.ErrUnknownEndDirection))
}

func TestDecodeMalformedJSONPayload(t *testing.T) {
	_, err := decode.Decode(strings.NewReader(`not json`))
	assert.Error(t, err)
}
