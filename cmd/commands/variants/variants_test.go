package variants

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"nathanbeddoewebdev/padron/internal/app"
	"nathanbeddoewebdev/padron/internal/config"
	"nathanbeddoewebdev/padron/internal/variant"

	"github.com/spf13/cobra"
)

func execVariants(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.SetPath(filepath.Join(t.TempDir(), "config.json"))
	t.Cleanup(config.ResetPath)
	variant.Reset()
	variant.RegisterBuiltins()
	t.Cleanup(variant.Reset)

	root := &cobra.Command{Use: "padron", SilenceUsage: true}
	app.AddPersistentFlags(root)
	root.AddCommand(NewCommand())

	var outBuf bytes.Buffer
	root.SetOut(&outBuf)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"variants"}, args...))
	err := root.Execute()
	return outBuf.String(), err
}

func TestVariants_Table(t *testing.T) {
	out, err := execVariants(t)
	if err != nil {
		t.Fatalf("variants failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[1], "*") || !strings.Contains(lines[1], "comisiones") {
		t.Errorf("expected comisiones marked active, got %q", lines[1])
	}
	if !strings.Contains(lines[2], "libreta") || !strings.Contains(lines[2], "Alumnos.xlsx") {
		t.Errorf("unexpected libreta row %q", lines[2])
	}
}

func TestVariants_JSONMarksFlagVariant(t *testing.T) {
	out, err := execVariants(t, "--variant", "libreta", "-o", "json")
	if err != nil {
		t.Fatalf("variants failed: %v", err)
	}

	var got []variantJSON
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(got))
	}
	for _, v := range got {
		if v.Active != (v.Name == "libreta") {
			t.Errorf("variant %q active=%v", v.Name, v.Active)
		}
	}
}

func TestVariants_InvalidOutput(t *testing.T) {
	if _, err := execVariants(t, "-o", "xml"); err == nil {
		t.Error("expected error for invalid output format")
	}
}
