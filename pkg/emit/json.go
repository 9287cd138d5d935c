package emit

import (
	"io"
	"time"

	"github.com/akeil/spritetool"
)

// JSON writes a JSON document with the lookup table under "icons".
//
// Keys appear in record order, which a plain map would not preserve.
type JSON struct {
	Options
}

func (j *JSON) Ext() string {
	return ".json"
}

func (j *JSON) Emit(w io.Writer, records []spritetool.Placement) error {
	ew := &errWriter{w: w}

	ew.printf("{\n")
	ew.printf("  \"generator\": %v,\n", quoteJSON(generator))
	ew.printf("  \"generated\": %v,\n", quoteJSON(j.now().UTC().Format(time.RFC3339)))
	if j.Sheet != "" {
		ew.printf("  \"sheet\": %v,\n", quoteJSON(j.Sheet))
	}
	ew.printf("  \"icons\": {")
	for i, r := range records {
		if i > 0 {
			ew.printf(",")
		}
		ew.printf("\n    %v: {\"x\": %d, \"y\": %d, \"width\": %d, \"height\": %d}",
			quoteJSON(r.Name), r.X, r.Y, r.Width, r.Height)
	}
	if len(records) > 0 {
		ew.printf("\n  ")
	}
	ew.printf("}\n}\n")

	return ew.err
}
