package tooling

import "fmt"

// Tool is a drill bit mounted on a machine spindle. Tools are immutable once
// parsed from a catalog.
type Tool struct {
	SpindleID   int     // spindle position on the machine, unique per catalog
	Diameter    float64 // bit diameter in millimeters
	Description string  // free text, e.g. "D10MM70 (T1)"
}

// String returns a short human-readable representation.
func (t Tool) String() string {
	return fmt.Sprintf("Tool(ID=%d, D=%gmm, %s)", t.SpindleID, t.Diameter, t.Description)
}
