package commands

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const menuJSON = `[
  {"name": "Rajasthani Thali", "items": ["Dal Baati", "churma"], "price": 250, "isVeg": true},
  {"name": "Hyderabadi Thali", "items": ["biryani"], "price": 320, "isVeg": false},
  {"name": "Mystery Thali", "price": "market"}
]`

func writeMenu(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.json")
	if err := os.WriteFile(path, []byte(menuJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	log.SetOutput(io.Discard)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDescribeText(t *testing.T) {
	out, err := run(t, "describe", "--file", writeMenu(t), "--format", "text")
	if err != nil {
		t.Fatalf("describe failed: %v", err)
	}
	want := "RAJASTHANI THALI (Veg) - Items: Dal Baati, churma - Rs.250.00\n" +
		"HYDERABADI THALI (Non-Veg) - Items: biryani - Rs.320.00\n" +
		"\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestStatsJSON(t *testing.T) {
	out, err := run(t, "stats", "-f", writeMenu(t))
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	want := `{"totalThalis":3,"vegCount":1,"nonVegCount":1,"avgPrice":"190.00","cheapest":250,"costliest":320,"names":["Rajasthani Thali","Hyderabadi Thali","Mystery Thali"]}` + "\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestStatsText(t *testing.T) {
	out, err := run(t, "stats", "-f", writeMenu(t), "--format", "text")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if !strings.Contains(out, "Thalis: 3 (1 veg, 1 non-veg)") || !strings.Contains(out, "Costliest: Rs.320") {
		t.Errorf("unexpected summary: %q", out)
	}
}

func TestSearchCSV(t *testing.T) {
	out, err := run(t, "search", "DAL", "-f", writeMenu(t), "--format", "csv")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	want := "name,items,price,isVeg\nRajasthani Thali,Dal Baati;churma,250,true\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestSearchNoMatchJSON(t *testing.T) {
	out, err := run(t, "search", "pizza", "-f", writeMenu(t))
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if out != "[]\n" {
		t.Errorf("got %q, want %q", out, "[]\n")
	}
}

func TestReceiptText(t *testing.T) {
	out, err := run(t, "receipt", "ravi", "-f", writeMenu(t), "--format", "text")
	if err != nil {
		t.Fatalf("receipt failed: %v", err)
	}
	want := "THALI RECEIPT\n---\nCustomer: RAVI\n" +
		"- Rajasthani Thali x Rs.250\n" +
		"- Hyderabadi Thali x Rs.320\n" +
		"- Mystery Thali x Rs.market\n" +
		"---\nTotal: Rs.570\nItems: 3\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestOutFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "stats.json")
	out, err := run(t, "stats", "-f", writeMenu(t), "--out", outPath, "--format", "pretty")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if out != "" {
		t.Errorf("stdout should be empty, got %q", out)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"avgPrice": "190.00"`) {
		t.Errorf("unexpected file content: %s", data)
	}
}

func TestMissingFile(t *testing.T) {
	if _, err := run(t, "stats"); err == nil {
		t.Error("expected error without --file")
	}
	if _, err := run(t, "stats", "-f", filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := run(t, "stats", "-f", writeMenu(t), "--input-format", "toml"); err == nil {
		t.Error("expected error for unknown input format")
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if out != "thali "+version+"\n" {
		t.Errorf("got %q", out)
	}
}
