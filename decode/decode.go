// SPDX-License-Identifier: MIT
package decode

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/witness-solver/board"
	"github.com/katalvlaran/witness-solver/poly"
)

// rawCell mirrors one sparse cell object in the wire grid. Zero values are
// indistinguishable from "field absent", matching the reference's
// cell.contains("key") sparse-write semantics: decode only ever sets a
// board field when the corresponding JSON/YAML key is non-zero-ish. The one
// exception is color, which is applied whenever the key is present,
// including an explicit zero; a zero count is not applied.
type rawCell struct {
	Start bool   `json:"start,omitempty" yaml:"start,omitempty"`
	End   string `json:"end,omitempty" yaml:"end,omitempty"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
	// Color is integer for square/star, but may also arrive as the string
	// "white"/"black" for nega cells, per the wire format; decoded loosely
	// into interface{} and resolved by parseColor.
	Color     interface{} `json:"color,omitempty" yaml:"color,omitempty"`
	Count     int         `json:"count,omitempty" yaml:"count,omitempty"`
	Polyshape uint32      `json:"polyshape,omitempty" yaml:"polyshape,omitempty"`
	Line      int         `json:"line,omitempty" yaml:"line,omitempty"`
	Gap       int         `json:"gap,omitempty" yaml:"gap,omitempty"`
	Dot       int         `json:"dot,omitempty" yaml:"dot,omitempty"`
}

// Canonical nega colors, matching the reference implementation's
// NEGA_BLACK/NEGA_WHITE constants (original_source/puzzle.hpp).
const (
	negaBlack = 1
	negaWhite = 2
)

// parseColor resolves a rawCell.Color value (absent, a JSON/YAML number, or
// the strings "white"/"black") to the canonical int board.Cell.Color
// expects. ok is false when raw is nil (field absent).
func parseColor(raw interface{}) (color int, ok bool, err error) {
	switch v := raw.(type) {
	case nil:
		return 0, false, nil
	case float64:
		return int(v), true, nil
	case int:
		return v, true, nil
	case string:
		switch v {
		case "white":
			return negaWhite, true, nil
		case "black":
			return negaBlack, true, nil
		default:
			return 0, false, ErrUnknownColor
		}
	default:
		return 0, false, ErrUnknownColor
	}
}

// rawPuzzle mirrors the wire payload: width/height are advisory (the actual
// grid dimensions are re-derived from len(Grid) and len(Grid[0]), per the
// reference implementation); Grid is column-major, Grid[x][y].
type rawPuzzle struct {
	Width  int         `json:"width" yaml:"width"`
	Height int         `json:"height" yaml:"height"`
	Pillar bool        `json:"pillar" yaml:"pillar"`
	Grid   [][]rawCell `json:"grid" yaml:"grid"`
}

var endDirections = map[string]board.EndDir{
	"top":    board.EndTop,
	"bottom": board.EndBottom,
	"left":   board.EndLeft,
	"right":  board.EndRight,
}

var symbolTypes = map[string]board.SymbolType{
	"square":   board.SymbolSquare,
	"star":     board.SymbolStar,
	"triangle": board.SymbolTriangle,
	"nega":     board.SymbolNega,
	"poly":     board.SymbolPoly,
	"ylop":     board.SymbolYlop,
}

// Decode reads a board.Puzzle from r. By default it expects JSON;
// WithYAML switches to YAML.
// Complexity: O(A*B).
func Decode(r io.Reader, opts ...Option) (*board.Puzzle, error) {
	cfg := newConfig(opts...)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decode: read payload: %w", err)
	}

	var raw rawPuzzle
	if cfg.yaml {
		err = yaml.Unmarshal(data, &raw)
	} else {
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("decode: parse payload: %w", err)
	}

	return buildPuzzle(raw)
}

func buildPuzzle(raw rawPuzzle) (*board.Puzzle, error) {
	if len(raw.Grid) == 0 || len(raw.Grid[0]) == 0 {
		return nil, ErrMalformedGrid
	}

	actualWidth, actualHeight := len(raw.Grid), len(raw.Grid[0])
	for x, row := range raw.Grid {
		if len(row) != actualHeight {
			return nil, decodeErrorf(ErrInconsistentRows, fmt.Sprintf("column %d", x))
		}
	}

	w, h := (actualWidth-1)/2, (actualHeight-1)/2
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}

	p, err := board.NewPuzzle(w, h, raw.Pillar)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	for x := 0; x < actualWidth; x++ {
		for y := 0; y < actualHeight; y++ {
			if err := applyCell(p, x, y, raw.Grid[x][y]); err != nil {
				return nil, decodeErrorf(err, fmt.Sprintf("cell (%d,%d)", x, y))
			}
		}
	}

	return p, nil
}

func applyCell(p *board.Puzzle, x, y int, rc rawCell) error {
	pos := board.Pos{X: x, Y: y}

	if pos.IsContent() {
		if rc.Type != "" {
			symbol, ok := symbolTypes[rc.Type]
			if !ok {
				return ErrUnknownSymbolType
			}
			if err := p.SetCellField(x, y, "type", symbol); err != nil {
				return err
			}
		}
		if color, ok, err := parseColor(rc.Color); err != nil {
			return err
		} else if ok {
			if err := p.SetCellField(x, y, "color", color); err != nil {
				return err
			}
		}
		if rc.Count != 0 {
			if err := p.SetCellField(x, y, "count", rc.Count); err != nil {
				return err
			}
		}
		if rc.Polyshape != 0 {
			if err := p.SetCellField(x, y, "polyshape", poly.Shape(rc.Polyshape)); err != nil {
				return err
			}
		}

		return nil
	}

	if rc.Start {
		if err := p.SetCellField(x, y, "start", true); err != nil {
			return err
		}
	}
	if rc.End != "" {
		dir, ok := endDirections[rc.End]
		if !ok {
			return ErrUnknownEndDirection
		}
		if err := p.SetCellField(x, y, "end", dir); err != nil {
			return err
		}
	}
	if rc.Line != 0 {
		if err := p.SetCellField(x, y, "line", board.LineColor(rc.Line)); err != nil {
			return err
		}
	}
	if rc.Gap != 0 {
		if err := p.SetCellField(x, y, "gap", board.GapKind(rc.Gap)); err != nil {
			return err
		}
	}
	if rc.Dot != 0 {
		if err := p.SetCellField(x, y, "dot", board.DotColor(rc.Dot)); err != nil {
			return err
		}
	}

	return nil
}
