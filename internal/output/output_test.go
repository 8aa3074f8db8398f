package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type sample struct {
	Label string `yaml:"label" json:"label"`
	Score int    `yaml:"score" json:"score"`
}

func TestFprintYAML(t *testing.T) {
	OutputFormat = FormatYAML
	defer func() { OutputFormat = FormatYAML }()

	var buf bytes.Buffer
	if err := Fprint(&buf, sample{Label: "Save", Score: 80}); err != nil {
		t.Fatal(err)
	}

	var decoded sample
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, buf.String())
	}
	if decoded.Label != "Save" || decoded.Score != 80 {
		t.Errorf("round trip lost data: %+v", decoded)
	}
}

func TestFprintJSONCompact(t *testing.T) {
	OutputFormat = FormatJSON
	PrettyOutput = false
	defer func() { OutputFormat = FormatYAML }()

	var buf bytes.Buffer
	if err := Fprint(&buf, sample{Label: "Save", Score: 80}); err != nil {
		t.Fatal(err)
	}

	out := strings.TrimRight(buf.String(), "\n")
	if strings.Contains(out, "\n") {
		t.Errorf("compact JSON should be single-line, got:\n%s", out)
	}
	var decoded sample
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
}

func TestFprintJSONPretty(t *testing.T) {
	OutputFormat = FormatJSON
	PrettyOutput = true
	defer func() {
		OutputFormat = FormatYAML
		PrettyOutput = false
	}()

	var buf bytes.Buffer
	if err := Fprint(&buf, sample{Label: "Save", Score: 80}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Errorf("pretty JSON should be indented, got:\n%s", buf.String())
	}
}

func TestFprintUnsupportedFormat(t *testing.T) {
	OutputFormat = Format("csv")
	defer func() { OutputFormat = FormatYAML }()

	var buf bytes.Buffer
	if err := Fprint(&buf, sample{}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
