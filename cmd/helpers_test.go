package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseScreen(t *testing.T) {
	tests := []struct {
		spec    string
		want    [2]int
		wantErr bool
	}{
		{"", [2]int{}, false},
		{"1440x900", [2]int{1440, 900}, false},
		{"1024x768", [2]int{1024, 768}, false},
		{"1440", [2]int{}, true},
		{"0x900", [2]int{}, true},
		{"wide x tall", [2]int{}, true},
	}
	for _, tt := range tests {
		got, err := parseScreen(tt.spec)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseScreen(%q) err = %v, wantErr %v", tt.spec, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("parseScreen(%q) = %v, want %v", tt.spec, got, tt.want)
		}
	}
}

func TestLoadCandidatesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidates.yaml")
	data := "- text: Save\n  bounds: [10, 20, 80, 30]\n- text: Cancel\n  bounds: [100, 20, 80, 30]\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	candidates, err := loadCandidates(path)
	if err != nil {
		t.Fatalf("loadCandidates: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("got %d candidates, want 2", len(candidates))
	}
	if candidates[0].Text != "Save" || candidates[0].Bounds != [4]int{10, 20, 80, 30} {
		t.Errorf("first candidate = %+v", candidates[0])
	}
}

func TestLoadCandidatesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidates.json")
	data := `[{"text":"Save","bounds":[10,20,80,30]}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	candidates, err := loadCandidates(path)
	if err != nil {
		t.Fatalf("loadCandidates: %v", err)
	}
	if len(candidates) != 1 || candidates[0].Text != "Save" {
		t.Errorf("candidates = %+v", candidates)
	}
}

func TestLoadCandidatesMissingFile(t *testing.T) {
	if _, err := loadCandidates(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestStringParam(t *testing.T) {
	params := map[string]interface{}{"command": "click save", "semantic": true}
	if got := stringParam(params, "command", ""); got != "click save" {
		t.Errorf("stringParam = %q", got)
	}
	if got := stringParam(params, "missing", "fallback"); got != "fallback" {
		t.Errorf("stringParam default = %q", got)
	}
	if !boolParam(params, "semantic", false) {
		t.Error("boolParam did not read true")
	}
	if boolParam(params, "missing", false) {
		t.Error("boolParam default should be false")
	}
}
