package domain

// ChecklistPhase orders checklist items around the filing event.
type ChecklistPhase string

const (
	PhasePreFiling    ChecklistPhase = "pre_filing"
	PhaseDuringFiling ChecklistPhase = "during_filing"
	PhasePostFiling   ChecklistPhase = "post_filing"
)

// ChecklistItem is one advisory task with a completion state derived from
// the input record.
type ChecklistItem struct {
	Title     string         `json:"title"`
	Detail    string         `json:"detail,omitempty"`
	Phase     ChecklistPhase `json:"phase"`
	Completed bool           `json:"completed"`
}

// DocumentRequirement is one entry of the categorized required-document list.
type DocumentRequirement struct {
	Category  string   `json:"category"`
	Documents []string `json:"documents"`
}

// PracticalChecklist is the advisory output for heirs preparing a business
// inheritance filing. Purely derived from the input, never stored.
type PracticalChecklist struct {
	PreFiling    []ChecklistItem       `json:"preFiling"`
	DuringFiling []ChecklistItem       `json:"duringFiling"`
	PostFiling   []ChecklistItem       `json:"postFiling"`
	Documents    []DocumentRequirement `json:"documents"`
}

// CompletionCount reports how many items are already satisfied across all
// three phases.
func (pc *PracticalChecklist) CompletionCount() (done, total int) {
	for _, items := range [][]ChecklistItem{pc.PreFiling, pc.DuringFiling, pc.PostFiling} {
		for _, it := range items {
			total++
			if it.Completed {
				done++
			}
		}
	}
	return done, total
}
