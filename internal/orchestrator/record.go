package orchestrator

import "github.com/voxctl/voxctl/internal/command"

// Step outcome statuses.
const (
	StatusSuccess   = "success"
	StatusSkipped   = "skipped"
	StatusError     = "error"
	StatusCancelled = "cancelled"
)

// Record captures the outcome of one step. A command of N steps always
// yields exactly N records, in step order, whatever happens along the way.
type Record struct {
	Step   int    `yaml:"step" json:"step"`
	Text   string `yaml:"text" json:"text"`
	Kind   string `yaml:"kind" json:"kind"`
	Status string `yaml:"status" json:"status"`
	Reason string `yaml:"reason,omitempty" json:"reason,omitempty"`
}

func newRecord(st command.Step, status, reason string) Record {
	return Record{
		Step:   st.Ordinal,
		Text:   st.Text,
		Kind:   string(st.Kind),
		Status: status,
		Reason: reason,
	}
}

// Succeeded reports whether every record in rs completed successfully.
func Succeeded(rs []Record) bool {
	for _, r := range rs {
		if r.Status != StatusSuccess {
			return false
		}
	}
	return true
}
