package model

// PlanAction describes what happens to a file when a plan is applied.
type PlanAction string

// Plan action constants.
const (
	ActionMove     PlanAction = "MOVE"
	ActionSkip     PlanAction = "SKIP"
	ActionExcluded PlanAction = "EXCLUDED"
	ActionFailed   PlanAction = "FAILED"
)

// PlanItem is one planned per-file action. Destination is set only for
// MOVE items, and destinations within a single Plan are pairwise distinct.
type PlanItem struct {
	Source      string
	Name        string
	Action      PlanAction
	Category    string
	Destination string
	Reason      string
}

// Plan is the full ordered sequence of per-file actions for one run,
// computed before any filesystem mutation.
type Plan struct {
	TargetDir string
	Items     []PlanItem
}

// Moves returns the MOVE items of the plan, in plan order.
func (p Plan) Moves() []PlanItem {
	var moves []PlanItem
	for _, item := range p.Items {
		if item.Action == ActionMove {
			moves = append(moves, item)
		}
	}
	return moves
}

// Count returns how many items carry the given action.
func (p Plan) Count(action PlanAction) int {
	n := 0
	for _, item := range p.Items {
		if item.Action == action {
			n++
		}
	}
	return n
}
