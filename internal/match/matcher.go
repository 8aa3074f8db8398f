// Package match scores on-screen candidates against a target label and
// picks the best one, or reports not-found. This is the disambiguation core:
// tiered relation classification, two trust-dependent score tables, a
// short-label containment penalty, plural and positional bonuses, and a
// tier-aware tie-break.
package match

import (
	"strings"

	"github.com/voxctl/voxctl/internal/perception"
)

// Tier is a discrete match-quality category. Higher values outrank lower
// ones regardless of raw score when scores are close.
type Tier int

const (
	TierNone Tier = iota
	TierSubstring
	TierSuffix
	TierPrefix
	TierExact
)

func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierPrefix:
		return "starts-with"
	case TierSuffix:
		return "ends-with"
	case TierSubstring:
		return "substring"
	default:
		return "none"
	}
}

// Request is one resolution call.
type Request struct {
	// Label is the target text to resolve. Case is folded for matching but
	// the label is otherwise opaque.
	Label string
	// Semantic selects the higher-trust score table when the label came
	// from the semantic service rather than the heuristic extractor.
	Semantic bool
	// Screen is the [width, height] of the screen in the candidate
	// coordinate space. Zero disables directional bonuses.
	Screen [2]int
}

// Result is the outcome of one resolution call. A zero Result means
// not-found; Found is only set when the score clears the acceptance
// threshold.
type Result struct {
	Candidate perception.Candidate `yaml:"candidate"       json:"candidate"`
	Index     int                  `yaml:"index"           json:"index"`
	Score     int                  `yaml:"score"           json:"score"`
	Tier      string               `yaml:"tier"            json:"tier"`
	Found     bool                 `yaml:"found"           json:"found"`
}

// Resolve scores every candidate against the request label and returns the
// winner. An empty candidate set or no candidate clearing the acceptance
// threshold yields Found=false, never a below-threshold "best available".
func Resolve(req Request, candidates []perception.Candidate, cfg Config) Result {
	if len(candidates) == 0 {
		return Result{}
	}

	direction, label := splitDirection(caseFold(req.Label))
	if label == "" {
		return Result{}
	}
	table := cfg.scores(req.Semantic)

	type scored struct {
		index int
		score int
		tier  Tier
	}
	var results []scored

	for i, cand := range candidates {
		text := caseFold(cand.Text)
		if text == "" {
			continue
		}
		tier, plural := classify(label, text)
		if tier == TierNone {
			continue
		}

		score := baseScore(table, tier)
		if tier == TierSubstring &&
			len(label) < cfg.ShortLabelLen &&
			len(text) > cfg.LongCandidateRatio*len(label) {
			// Suppresses accidents like "plan" inside "explanation".
			score -= cfg.ContainmentPenalty
		}
		if plural {
			score += cfg.PluralBonus
		}
		if direction != "" {
			score += positionBonus(cand, direction, req.Screen, cfg.PositionBonus)
		}

		results = append(results, scored{index: i, score: score, tier: tier})
	}
	if len(results) == 0 {
		return Result{}
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.score > best.score {
			best = r
		}
	}

	// Tie-break: within the closeness window of the best score, a
	// higher-priority tier wins even at a marginally lower raw score.
	winner := best
	for _, r := range results {
		if best.score-r.score >= cfg.ClosenessWindow {
			continue
		}
		if r.tier > winner.tier || (r.tier == winner.tier && r.score > winner.score) {
			winner = r
		}
	}

	if winner.score < cfg.AcceptThreshold {
		return Result{}
	}
	return Result{
		Candidate: candidates[winner.index],
		Index:     winner.index,
		Score:     winner.score,
		Tier:      winner.tier.String(),
		Found:     true,
	}
}

func caseFold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// classify assigns the first satisfied tier, in priority order, and reports
// whether label and candidate differ only by a trailing plural suffix.
func classify(label, text string) (Tier, bool) {
	if text == label {
		return TierExact, false
	}
	if pluralEquivalent(label, text) {
		return TierExact, true
	}
	if containsWord(text, label) {
		return TierExact, false
	}
	if strings.HasPrefix(text, label) {
		return TierPrefix, false
	}
	if strings.HasSuffix(text, label) {
		return TierSuffix, false
	}
	if strings.Contains(text, label) {
		return TierSubstring, false
	}
	return TierNone, false
}

// pluralEquivalent reports whether a and b are the same word up to a
// trailing "s"/"es" plural suffix, in either direction.
func pluralEquivalent(a, b string) bool {
	return singularOf(a, b) || singularOf(b, a)
}

func singularOf(short, long string) bool {
	if len(long) <= len(short) {
		return false
	}
	return long == short+"s" || long == short+"es"
}

// containsWord reports whether needle appears in haystack delimited by word
// boundaries, so label "plan" matches candidate "plan b" at the exact tier
// but not "explanation".
func containsWord(haystack, needle string) bool {
	idx := 0
	for {
		pos := strings.Index(haystack[idx:], needle)
		if pos < 0 {
			return false
		}
		start := idx + pos
		end := start + len(needle)
		beforeOK := start == 0 || !isWordChar(haystack[start-1])
		afterOK := end == len(haystack) || !isWordChar(haystack[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b >= 'A' && b <= 'Z'
}

func baseScore(table TierScores, tier Tier) int {
	switch tier {
	case TierExact:
		return table.Exact
	case TierPrefix:
		return table.Prefix
	case TierSuffix:
		return table.Suffix
	default:
		return table.Substring
	}
}

// directionWords maps qualifier tokens, English and Spanish, to a canonical
// screen direction.
var directionWords = map[string]string{
	"top": "top", "upper": "top", "superior": "top", "arriba": "top",
	"bottom": "bottom", "lower": "bottom", "inferior": "bottom", "abajo": "bottom",
	"left": "left", "izquierda": "left", "izquierdo": "left",
	"right": "right", "derecha": "right", "derecho": "right",
}

// splitDirection strips a directional qualifier from the label and returns
// it separately ("top save button" -> "top", "save button").
func splitDirection(label string) (string, string) {
	fields := strings.Fields(label)
	direction := ""
	var kept []string
	for _, f := range fields {
		if d, ok := directionWords[strings.Trim(f, ".,")]; ok && direction == "" && len(fields) > 1 {
			direction = d
			continue
		}
		kept = append(kept, f)
	}
	return direction, strings.Join(kept, " ")
}

// positionBonus scales the configured maximum by how deep the candidate's
// center sits inside the half of the screen named by direction.
func positionBonus(cand perception.Candidate, direction string, screen [2]int, max int) int {
	w, h := screen[0], screen[1]
	if w <= 0 || h <= 0 {
		return 0
	}
	cx, cy := cand.Center()

	var depth float64
	switch direction {
	case "top":
		depth = ratioInHalf(float64(h)/2-float64(cy), float64(h)/2)
	case "bottom":
		depth = ratioInHalf(float64(cy)-float64(h)/2, float64(h)/2)
	case "left":
		depth = ratioInHalf(float64(w)/2-float64(cx), float64(w)/2)
	case "right":
		depth = ratioInHalf(float64(cx)-float64(w)/2, float64(w)/2)
	}
	return int(depth * float64(max))
}

func ratioInHalf(dist, half float64) float64 {
	if dist <= 0 || half <= 0 {
		return 0
	}
	if dist > half {
		return 1
	}
	return dist / half
}
