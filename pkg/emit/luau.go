package emit

import (
	"io"
	"strings"

	"github.com/akeil/spritetool"
)

// Luau writes a Luau (or Lua) module:
//
//	--[[ module generated by spritetool :: generated at 2021-01-02 15:04:05 ]]
//
//	local Icons = {}
//	Icons['a'] = { x = 0, y = 0, width = 16, height = 16 }
//
//	return Icons
type Luau struct {
	Options
}

func (l *Luau) Ext() string {
	return ".luau"
}

func (l *Luau) Emit(w io.Writer, records []spritetool.Placement) error {
	ew := &errWriter{w: w}
	table := l.table()

	ew.printf("--[[ module generated by %v :: generated at %v ]]\n\n", generator, l.now().Format(tsFormat))
	if l.Sheet != "" {
		ew.printf("-- sheet: %v\n", commentText(l.Sheet))
	}
	ew.printf("local %v = {}\n", table)
	for _, r := range records {
		ew.printf("%v[%v] = { x = %d, y = %d, width = %d, height = %d }\n",
			table, quoteLua(r.Name), r.X, r.Y, r.Width, r.Height)
	}
	ew.printf("\nreturn %v\n", table)

	return ew.err
}

var luaEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\x00", `\0`,
)

// quoteLua returns s as a single-quoted Lua string literal.
func quoteLua(s string) string {
	return "'" + luaEscaper.Replace(s) + "'"
}
