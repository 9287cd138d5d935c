package emit

import (
	"io"

	"github.com/akeil/spritetool"
)

// TypeScript writes an ES module exporting the lookup table as a constant.
type TypeScript struct {
	Options
}

func (t *TypeScript) Ext() string {
	return ".ts"
}

func (t *TypeScript) Emit(w io.Writer, records []spritetool.Placement) error {
	ew := &errWriter{w: w}
	table := t.table()

	ew.printf("// module generated by %v :: generated at %v\n", generator, t.now().Format(tsFormat))
	if t.Sheet != "" {
		ew.printf("// sheet: %v\n", commentText(t.Sheet))
	}
	ew.printf("\nexport interface IconRect {\n  x: number;\n  y: number;\n  width: number;\n  height: number;\n}\n\n")
	ew.printf("export const %v: Record<string, IconRect> = {\n", table)
	for _, r := range records {
		ew.printf("  %v: { x: %d, y: %d, width: %d, height: %d },\n",
			quoteJSON(r.Name), r.X, r.Y, r.Width, r.Height)
	}
	ew.printf("};\n\nexport default %v;\n", table)

	return ew.err
}
