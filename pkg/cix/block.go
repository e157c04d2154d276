package cix

import (
	"fmt"
	"strconv"
	"strings"
)

// Num renders a float the way the controller expects: minimal decimal digits,
// but integral values keep a trailing ".0" (e.g. 438 → "438.0", 6.35 →
// "6.35"). This matches the sheets the machines already accept.
func Num(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func itoa(v int) string { return strconv.Itoa(v) }

// writer accumulates document lines. The final document joins lines with
// newlines, so blank separator lines are explicit entries.
type writer struct {
	lines []string
}

func (w *writer) line(format string, args ...any) {
	if len(args) == 0 {
		w.lines = append(w.lines, format)
		return
	}
	w.lines = append(w.lines, fmt.Sprintf(format, args...))
}

// blank appends an empty separator line.
func (w *writer) blank() { w.lines = append(w.lines, "") }

// beginMacro opens a MACRO block of the given kind (GEOTEXT, ROUTG, ENDPATH, BG).
func (w *writer) beginMacro(name string) {
	w.line("BEGIN MACRO")
	w.line("\tNAME=%s", name)
}

// endMacro closes the current MACRO block and emits the separator line.
func (w *writer) endMacro() {
	w.line("END MACRO")
	w.blank()
}

// param emits a bare-valued macro parameter.
func (w *writer) param(name, value string) {
	w.line("\tPARAM,NAME=%s,VALUE=%s", name, value)
}

// paramStr emits a double-quoted macro parameter.
func (w *writer) paramStr(name, value string) {
	w.line("\tPARAM,NAME=%s,VALUE=%q", name, value)
}

// paramNum emits a numeric macro parameter using Num formatting.
func (w *writer) paramNum(name string, v float64) {
	w.param(name, Num(v))
}

// paramInt emits an integer macro parameter.
func (w *writer) paramInt(name string, v int) {
	w.param(name, strconv.Itoa(v))
}

// String returns the accumulated document text.
func (w *writer) String() string {
	return strings.Join(w.lines, "\n")
}
