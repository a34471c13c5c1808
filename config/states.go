package config

// VariantID selects a fighter's behavior set.
type VariantID int

const (
	VariantBase VariantID = iota
	VariantHeavy
	VariantArcher
)

// AllVariants is the menu cycle order.
var AllVariants = []VariantID{VariantBase, VariantHeavy, VariantArcher}

func (v VariantID) String() string {
	switch v {
	case VariantHeavy:
		return "Heavy"
	case VariantArcher:
		return "Archer"
	}
	return "Base"
}

// MatchStateID tracks match flow.
type MatchStateID int

const (
	MatchStateCountdown MatchStateID = iota
	MatchStatePlaying
	MatchStateFinished
)
