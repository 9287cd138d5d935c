package atlas

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/akeil/spritetool"
)

// Index is the content of a JSON module written by emit.JSON.
type Index struct {
	Generated  string
	Sheet      string
	Placements []spritetool.Placement
}

type rawIndex struct {
	Generated string          `json:"generated"`
	Sheet     string          `json:"sheet"`
	Icons     json.RawMessage `json:"icons"`
}

type rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ReadIndex parses a JSON index.
// Placements are returned in the order in which they appear in the document.
func ReadIndex(r io.Reader) (*Index, error) {
	var raw rawIndex
	err := json.NewDecoder(r).Decode(&raw)
	if err != nil {
		return nil, err
	}
	if raw.Icons == nil {
		return nil, fmt.Errorf("unexpected JSON - missing 'icons' member")
	}

	placements, err := readIcons(raw.Icons)
	if err != nil {
		return nil, err
	}

	return &Index{
		Generated:  raw.Generated,
		Sheet:      raw.Sheet,
		Placements: placements,
	}, nil
}

// readIcons walks the "icons" object token by token to keep the key order.
func readIcons(data []byte) ([]spritetool.Placement, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	t, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := t.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("unexpected JSON - 'icons' is not an object")
	}

	placements := make([]spritetool.Placement, 0)
	for dec.More() {
		t, err = dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := t.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected JSON - invalid key %v", t)
		}

		var r rect
		err = dec.Decode(&r)
		if err != nil {
			return nil, spritetool.Wrap(err, "invalid entry for %q", name)
		}

		placements = append(placements, spritetool.Placement{
			Name:   name,
			X:      r.X,
			Y:      r.Y,
			Width:  r.Width,
			Height: r.Height,
		})
	}

	return placements, nil
}
