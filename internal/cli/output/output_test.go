package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"", FormatTable, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"yml", FormatYAML, false},
		{" json ", FormatJSON, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseFormat(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPrintTable(t *testing.T) {
	table := NewTable("USERNAME", "CREATED")
	table.AddRow("admin", "2026-01-02")
	table.AddRow("auditor", "2026-03-14")

	var buf bytes.Buffer
	if err := PrintTable(&buf, table); err != nil {
		t.Fatalf("PrintTable failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"USERNAME", "admin", "auditor", "2026-03-14"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestPrinterJSONFallback(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatTable)

	// Not a TableRenderer, so the printer falls back to JSON.
	if err := p.Print(map[string]string{"key": "value"}); err != nil {
		t.Fatalf("Print failed: %v", err)
	}

	var decoded map[string]string
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded["key"] != "value" {
		t.Errorf("unexpected output: %v", decoded)
	}
}

func TestPrinterYAML(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatYAML)

	if err := p.Print(map[string]int{"count": 3}); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	if !strings.Contains(buf.String(), "count: 3") {
		t.Errorf("unexpected YAML output: %s", buf.String())
	}
}
