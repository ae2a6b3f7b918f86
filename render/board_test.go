// SPDX-License-Identifier: MIT
package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/witness-solver/board"
	"github.com/katalvlaran/witness-solver/render"
)

func TestBoardRendersStartAndSquare(t *testing.T) {
	p, err := board.NewPuzzle(1, 1, false)
	require.NoError(t, err)
	require.NoError(t, p.SetCellField(0, 0, "start", true))
	require.NoError(t, p.SetCellField(1, 1, "type", board.SymbolSquare))
	require.NoError(t, p.SetCellField(1, 1, "color", 2))

	var out strings.Builder
	require.NoError(t, render.Board(&out, p))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, p.B+1) // ruler + one row per y

	assert.True(t, strings.HasPrefix(lines[1], "0  S "), "start glyph expected on first data row")
	assert.Contains(t, out.String(), "s2")
}

func TestBoardRendersLineOverGap(t *testing.T) {
	p, err := board.NewPuzzle(1, 1, false)
	require.NoError(t, err)
	require.NoError(t, p.SetCellField(1, 0, "gap", board.GapFull))
	require.NoError(t, p.SetCellField(1, 0, "line", board.LineBlack))

	var out strings.Builder
	require.NoError(t, render.Board(&out, p))

	assert.Contains(t, out.String(), "█", "a drawn line takes precedence over a gap glyph")
}
