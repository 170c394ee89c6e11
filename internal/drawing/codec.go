package drawing

import (
	"encoding/json"
	"fmt"

	"schematic-tracer/pkg/geometry"
)

// wireCommand is the JSON form of a Command: a one-letter opcode plus the
// points the opcode needs, in drawing order.
type wireCommand struct {
	Op     string           `json:"op"`
	Points []geometry.Point `json:"points,omitempty"`
}

const (
	opMove  = "m"
	opLine  = "l"
	opCurve = "c"
	opClose = "h"
	opRect  = "re"
)

// MarshalJSON encodes the command sequence as tagged opcode records.
func (p Primitive) MarshalJSON() ([]byte, error) {
	cmds := make([]wireCommand, 0, len(p.Commands))
	for _, cmd := range p.Commands {
		switch c := cmd.(type) {
		case MoveTo:
			cmds = append(cmds, wireCommand{Op: opMove, Points: []geometry.Point{c.P}})
		case LineTo:
			cmds = append(cmds, wireCommand{Op: opLine, Points: []geometry.Point{c.From, c.To}})
		case CurveTo:
			cmds = append(cmds, wireCommand{Op: opCurve, Points: []geometry.Point{c.C1, c.C2, c.End}})
		case ClosePath:
			cmds = append(cmds, wireCommand{Op: opClose})
		case RectShape:
			cmds = append(cmds, wireCommand{Op: opRect, Points: []geometry.Point{c.Min, c.Max}})
		}
	}
	return json.Marshal(struct {
		Commands []wireCommand `json:"commands"`
		Closed   bool          `json:"closed"`
		Filled   bool          `json:"filled"`
		FillHex  string        `json:"fill_hex,omitempty"`
	}{cmds, p.Closed, p.Filled, p.FillHex})
}

// UnmarshalJSON decodes tagged opcode records back into Commands.
func (p *Primitive) UnmarshalJSON(data []byte) error {
	var raw struct {
		Commands []wireCommand `json:"commands"`
		Closed   bool          `json:"closed"`
		Filled   bool          `json:"filled"`
		FillHex  string        `json:"fill_hex"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.Closed = raw.Closed
	p.Filled = raw.Filled
	p.FillHex = raw.FillHex
	p.Commands = make([]Command, 0, len(raw.Commands))

	for i, wc := range raw.Commands {
		cmd, err := decodeCommand(wc)
		if err != nil {
			return fmt.Errorf("command %d: %w", i, err)
		}
		p.Commands = append(p.Commands, cmd)
	}
	return nil
}

func decodeCommand(wc wireCommand) (Command, error) {
	need := func(n int) error {
		if len(wc.Points) < n {
			return fmt.Errorf("op %q needs %d points, got %d", wc.Op, n, len(wc.Points))
		}
		return nil
	}

	switch wc.Op {
	case opMove:
		if err := need(1); err != nil {
			return nil, err
		}
		return MoveTo{P: wc.Points[0]}, nil
	case opLine:
		if err := need(2); err != nil {
			return nil, err
		}
		return LineTo{From: wc.Points[0], To: wc.Points[1]}, nil
	case opCurve:
		if err := need(3); err != nil {
			return nil, err
		}
		return CurveTo{C1: wc.Points[0], C2: wc.Points[1], End: wc.Points[2]}, nil
	case opClose:
		return ClosePath{}, nil
	case opRect:
		if err := need(2); err != nil {
			return nil, err
		}
		return RectShape{Min: wc.Points[0], Max: wc.Points[1]}, nil
	default:
		return nil, fmt.Errorf("unknown op %q", wc.Op)
	}
}
