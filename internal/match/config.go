package match

// TierScores is the base score for each match tier.
type TierScores struct {
	Exact     int `yaml:"exact"     json:"exact"`
	Prefix    int `yaml:"prefix"    json:"prefix"`
	Suffix    int `yaml:"suffix"    json:"suffix"`
	Substring int `yaml:"substring" json:"substring"`
}

// Config holds the scoring constants. The values were tuned empirically;
// they are configuration, not derived quantities, and the defaults are the
// ones the resolver's behavioral tests pin down.
type Config struct {
	// AcceptThreshold is the minimum score for a match to count as found.
	AcceptThreshold int `yaml:"accept_threshold" json:"accept_threshold"`
	// ClosenessWindow is the score distance within which a higher-priority
	// tier wins over a higher raw score.
	ClosenessWindow int `yaml:"closeness_window" json:"closeness_window"`
	// PluralBonus rewards labels differing from a candidate only by a
	// trailing plural suffix.
	PluralBonus int `yaml:"plural_bonus" json:"plural_bonus"`
	// PositionBonus is the maximum bonus for a directional qualifier whose
	// screen region contains the candidate.
	PositionBonus int `yaml:"position_bonus" json:"position_bonus"`
	// ShortLabelLen and LongCandidateRatio gate the containment penalty:
	// a substring match of a label shorter than ShortLabelLen inside a
	// candidate more than LongCandidateRatio times its length is suppressed.
	ShortLabelLen      int `yaml:"short_label_len" json:"short_label_len"`
	LongCandidateRatio int `yaml:"long_candidate_ratio" json:"long_candidate_ratio"`
	// ContainmentPenalty is subtracted when the gate above trips. It must
	// be large enough to push any substring score below AcceptThreshold.
	ContainmentPenalty int `yaml:"containment_penalty" json:"containment_penalty"`

	// Semantic is the score table for labels produced by the semantic
	// service; Fallback is the lower-trust table for heuristic labels.
	Semantic TierScores `yaml:"semantic" json:"semantic"`
	Fallback TierScores `yaml:"fallback" json:"fallback"`
}

// DefaultConfig returns the tuned constants.
func DefaultConfig() Config {
	return Config{
		AcceptThreshold:    25,
		ClosenessWindow:    10,
		PluralBonus:        5,
		PositionBonus:      15,
		ShortLabelLen:      5,
		LongCandidateRatio: 2,
		ContainmentPenalty: 60,
		Semantic:           TierScores{Exact: 100, Prefix: 80, Suffix: 70, Substring: 50},
		Fallback:           TierScores{Exact: 80, Prefix: 60, Suffix: 50, Substring: 30},
	}
}

// scores selects the table for a label provenance.
func (c Config) scores(semantic bool) TierScores {
	if semantic {
		return c.Semantic
	}
	return c.Fallback
}
