package ratedto

const (
	RefreshOutcomeRefreshed = "refreshed"
	RefreshOutcomeFailed    = "failed"
)

type PairOutcome struct {
	From    string
	To      string
	Outcome string
	Error   string
}

// RefreshReport lists the per-pair outcomes of one refreshAll run. A failed
// pair never aborts the rest.
type RefreshReport struct {
	Refreshed int
	Failed    int
	Outcomes  []PairOutcome
}
