package cli

import (
	"io"
	"os"
	"strings"
	"testing"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything it printed.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()
	w.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(out)
}

func TestPrintHelpers(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
		icon string
		want string
	}{
		{"success", func() { printSuccess("generated %s", "out.cix") }, iconSuccess, "generated out.cix"},
		{"error", func() { printError("catalog %s missing", "r2.xml") }, iconError, "catalog r2.xml missing"},
		{"warning", func() { printWarning("%d catalog(s) failed", 2) }, iconWarning, "2 catalog(s) failed"},
		{"info", func() { printInfo("Scanning %s for tool catalogs", "tooling/") }, iconInfo, "Scanning tooling/ for tool catalogs"},
		{"detail", func() { printDetail("%d tools", 28) }, "", "28 tools"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureStdout(t, tt.fn)
			if !strings.Contains(out, tt.want) {
				t.Errorf("output = %q, missing %q", out, tt.want)
			}
			if tt.icon != "" && !strings.Contains(out, tt.icon) {
				t.Errorf("output = %q, missing icon %q", out, tt.icon)
			}
		})
	}
}
