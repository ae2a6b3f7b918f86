// SPDX-License-Identifier: MIT
package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/witness-solver/board"
)

// Board writes an ASCII dump of p to w: a column ruler, then one row per y
// with a row ruler and one glyph per cell. Glyph precedence matches the
// reference implementation: start, then endpoint, then dot, then drawn
// line, then gap, then symbol.
// Complexity: O(A*B).
func Board(w io.Writer, p *board.Puzzle) error {
	if _, err := fmt.Fprint(w, "   "); err != nil {
		return err
	}
	for x := 0; x < p.A; x++ {
		if _, err := fmt.Fprintf(w, "%d ", x%10); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	for y := 0; y < p.B; y++ {
		if _, err := fmt.Fprintf(w, "%d  ", y%10); err != nil {
			return err
		}
		for x := 0; x < p.A; x++ {
			cell, _ := p.GetCell(x, y)
			if _, err := fmt.Fprint(w, glyph(cell)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}

func glyph(cell *board.Cell) string {
	switch {
	case cell.Start:
		return "S "
	case cell.End != board.EndNone:
		return "E "
	case cell.Dot != board.DotNone:
		return "• "
	case cell.Line != board.LineNone:
		return "█ "
	case cell.Gap != board.GapNone:
		return "─ "
	case cell.Type == board.SymbolSquare:
		return fmt.Sprintf("s%d", cell.Color)
	case cell.Type == board.SymbolStar:
		return fmt.Sprintf("*%d", cell.Color)
	case cell.Type == board.SymbolTriangle:
		return fmt.Sprintf("%d ", cell.Count)
	case cell.Type == board.SymbolNega:
		return "! "
	case cell.Type == board.SymbolPoly:
		return "P "
	case cell.Type == board.SymbolYlop:
		return "Y "
	default:
		return "  "
	}
}
