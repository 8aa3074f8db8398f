package match

import (
	"testing"

	"github.com/voxctl/voxctl/internal/perception"
)

func candidates(texts ...string) []perception.Candidate {
	out := make([]perception.Candidate, len(texts))
	for i, t := range texts {
		out[i] = perception.Candidate{Text: t, Bounds: [4]int{0, i * 30, 100, 20}}
	}
	return out
}

func TestResolve_TierScoreOrdering(t *testing.T) {
	cfg := DefaultConfig()
	for _, table := range []TierScores{cfg.Semantic, cfg.Fallback} {
		if !(table.Exact > table.Prefix && table.Prefix > table.Suffix && table.Suffix > table.Substring) {
			t.Fatalf("tier scores not strictly ordered: %+v", table)
		}
	}
}

func TestResolve_ExactCaseFolded(t *testing.T) {
	res := Resolve(Request{Label: "plan"}, candidates("Plan"), DefaultConfig())
	if !res.Found {
		t.Fatal("expected exact case-insensitive match to be found")
	}
	if res.Tier != "exact" {
		t.Fatalf("expected exact tier, got %s", res.Tier)
	}
	if res.Score < DefaultConfig().AcceptThreshold {
		t.Fatalf("score %d below acceptance threshold", res.Score)
	}
}

func TestResolve_ShortLabelContainmentSuppressed(t *testing.T) {
	// "plan" inside "explanation" must score below the acceptance
	// threshold, in both trust tables.
	for _, semantic := range []bool{true, false} {
		res := Resolve(Request{Label: "plan", Semantic: semantic}, candidates("explanation"), DefaultConfig())
		if res.Found {
			t.Fatalf("semantic=%v: expected not-found, got %+v", semantic, res)
		}
	}
}

func TestResolve_WordBoundaryBeatsContainment(t *testing.T) {
	res := Resolve(Request{Label: "plan"}, candidates("explanation", "plan b"), DefaultConfig())
	if !res.Found {
		t.Fatal("expected a match")
	}
	if res.Candidate.Text != "plan b" {
		t.Fatalf("expected word-boundary candidate, got %q", res.Candidate.Text)
	}
	if res.Tier != "exact" {
		t.Fatalf("expected exact tier for whole-word hit, got %s", res.Tier)
	}
}

func TestResolve_EmptyCandidatesNotFound(t *testing.T) {
	res := Resolve(Request{Label: "save"}, nil, DefaultConfig())
	if res.Found {
		t.Fatal("empty candidate set must never yield a match")
	}
}

func TestResolve_NoBestAvailableBelowThreshold(t *testing.T) {
	// Only low-quality containment matches exist; resolver must return
	// not-found instead of the least-bad candidate.
	res := Resolve(Request{Label: "plan"}, candidates("explanation", "misplanned"), DefaultConfig())
	if res.Found {
		t.Fatalf("expected not-found, got %q score=%d", res.Candidate.Text, res.Score)
	}
}

func TestResolve_SemanticTableOutscoresFallback(t *testing.T) {
	cands := candidates("Save document")
	sem := Resolve(Request{Label: "save", Semantic: true}, cands, DefaultConfig())
	heu := Resolve(Request{Label: "save"}, cands, DefaultConfig())
	if !sem.Found || !heu.Found {
		t.Fatal("both resolutions should find the candidate")
	}
	if sem.Score <= heu.Score {
		t.Fatalf("semantic score %d should exceed fallback score %d", sem.Score, heu.Score)
	}
}

func TestResolve_TieBreakPrefersHigherTier(t *testing.T) {
	// A substring match that outscores an exact match by less than the
	// closeness window must still lose to the exact tier.
	cfg := DefaultConfig()
	cfg.Fallback = TierScores{Exact: 40, Prefix: 38, Suffix: 36, Substring: 45}
	cfg.ClosenessWindow = 10
	cands := candidates("xxpanelxx", "panel")
	res := Resolve(Request{Label: "panel"}, cands, cfg)
	if !res.Found {
		t.Fatal("expected a match")
	}
	if res.Candidate.Text != "panel" {
		t.Fatalf("tie-break should prefer exact tier, got %q (tier %s)", res.Candidate.Text, res.Tier)
	}
	if res.Tier != "exact" {
		t.Fatalf("expected exact tier to win, got %s", res.Tier)
	}

	// Outside the window the raw score stands.
	cfg.ClosenessWindow = 3
	res = Resolve(Request{Label: "panel"}, cands, cfg)
	if res.Candidate.Text != "xxpanelxx" {
		t.Fatalf("outside the window the higher score should win, got %q", res.Candidate.Text)
	}
}

func TestResolve_PluralBonus(t *testing.T) {
	cfg := DefaultConfig()
	res := Resolve(Request{Label: "downloads"}, candidates("Download"), cfg)
	if !res.Found {
		t.Fatal("plural label should match singular candidate")
	}
	if res.Score != cfg.Fallback.Exact+cfg.PluralBonus {
		t.Fatalf("expected exact+plural score %d, got %d", cfg.Fallback.Exact+cfg.PluralBonus, res.Score)
	}
}

func TestResolve_DirectionalQualifier(t *testing.T) {
	cfg := DefaultConfig()
	cands := []perception.Candidate{
		{Text: "OK", Bounds: [4]int{10, 10, 60, 20}},   // top of screen
		{Text: "OK", Bounds: [4]int{10, 740, 60, 20}},  // bottom of screen
	}
	res := Resolve(Request{Label: "bottom OK", Screen: [2]int{1024, 768}}, cands, cfg)
	if !res.Found {
		t.Fatal("expected a match")
	}
	if res.Index != 1 {
		t.Fatalf("directional qualifier should pick the bottom candidate, got index %d", res.Index)
	}
}

func TestResolve_PrefixAndSuffixTiers(t *testing.T) {
	res := Resolve(Request{Label: "sett"}, candidates("settings"), DefaultConfig())
	if !res.Found || res.Tier != "starts-with" {
		t.Fatalf("expected starts-with, got found=%v tier=%s", res.Found, res.Tier)
	}

	res = Resolve(Request{Label: "ttings"}, candidates("settings"), DefaultConfig())
	if !res.Found || res.Tier != "ends-with" {
		t.Fatalf("expected ends-with, got found=%v tier=%s", res.Found, res.Tier)
	}
}
