package tooling

import (
	"encoding/xml"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/tmelzer/cixforge/pkg/errors"
)

var spindleIDPattern = regexp.MustCompile(`(\d+)`)

// diameterPattern extracts a bit diameter in millimeters from a Child
// attribute value. Patterns are tried in order; the first match wins.
type diameterPattern struct {
	re    *regexp.Regexp
	parse func(m []string) float64
}

// The chain order matters: the fractional-inch pattern must run before the
// trailing decimal-millimeter pattern would get a chance to misread other
// encodings, and the final decimal pattern is kept for explicit decimal
// variants like "D6.35MM70" even though the first pattern already covers
// them. Do not reorder.
var diameterPatterns = []diameterPattern{
	{
		re:    regexp.MustCompile(`D(\d+(?:\.\d+)?)MM`),
		parse: func(m []string) float64 { v, _ := strconv.ParseFloat(m[1], 64); return v },
	},
	{
		re: regexp.MustCompile(`D(\d+)_(\d+)IN`),
		parse: func(m []string) float64 {
			num, _ := strconv.ParseFloat(m[1], 64)
			den, _ := strconv.ParseFloat(m[2], 64)
			return num / den * 25.4
		},
	},
	{
		re:    regexp.MustCompile(`D(\d+\.\d+)MM`),
		parse: func(m []string) float64 { v, _ := strconv.ParseFloat(m[1], 64); return v },
	},
}

// extractSpindleID pulls the numeric spindle id out of a Name attribute like
// "T1" or "TP12". The first run of digits wins. Returns false if the name
// carries no digits.
func extractSpindleID(name string) (int, bool) {
	m := spindleIDPattern.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return id, true
}

// extractDiameter decodes the bit diameter in millimeters from a Child
// attribute like "D10MM70" or "D1_4IN70". Returns false when no pattern
// matches; such elements are skipped by the catalog loader.
func extractDiameter(child string) (float64, bool) {
	for _, p := range diameterPatterns {
		if m := p.re.FindStringSubmatch(child); m != nil {
			return p.parse(m), true
		}
	}
	return 0, false
}

// spindleElement is a Spindle element as found anywhere in the catalog tree.
type spindleElement struct {
	Name  string
	Child string
}

// LoadTable parses the tool catalog at path into a Table.
//
// Spindle elements are matched at any nesting depth. An element contributes a
// tool only when both the spindle id and the diameter can be extracted;
// otherwise it is skipped silently. A later element reusing a spindle id
// overwrites the earlier entry (document order wins).
//
// Errors carry the CATALOG_NOT_FOUND, CATALOG_MALFORMED, or CATALOG_ERROR
// codes from the errors package.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeCatalogNotFound, "tool catalog not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeCatalog, err, "open tool catalog %s", path)
	}
	defer f.Close()

	elems, err := scanSpindles(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCatalogMalformed, err, "parse tool catalog %s", path)
	}

	tools := make(map[int]Tool, len(elems))
	for _, e := range elems {
		id, ok := extractSpindleID(e.Name)
		if !ok {
			continue
		}
		dia, ok := extractDiameter(e.Child)
		if !ok {
			continue
		}
		tools[id] = Tool{
			SpindleID:   id,
			Diameter:    dia,
			Description: e.Child + " (" + e.Name + ")",
		}
	}

	return &Table{path: path, tools: tools}, nil
}

// scanSpindles streams the XML document and collects every Spindle element
// with its Name and Child attributes, in document order.
func scanSpindles(r io.Reader) ([]spindleElement, error) {
	dec := xml.NewDecoder(r)

	var elems []spindleElement
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return elems, nil
		}
		if err != nil {
			return nil, err
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Spindle" {
			continue
		}

		var e spindleElement
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "Name":
				e.Name = attr.Value
			case "Child":
				e.Child = attr.Value
			}
		}
		if e.Name != "" && e.Child != "" {
			elems = append(elems, e)
		}
	}
}
