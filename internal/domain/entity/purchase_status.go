package entity

// PurchaseStatus is the lifecycle status of a purchase.
type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "PENDING"
	PurchaseStatusCompleted PurchaseStatus = "COMPLETED"
	PurchaseStatusCancelled PurchaseStatus = "CANCELLED"
	PurchaseStatusRefunded  PurchaseStatus = "REFUNDED"
)

// purchaseTransitions enumerates the legal status edges. CANCELLED and
// REFUNDED are terminal; anything not listed here is rejected.
var purchaseTransitions = map[PurchaseStatus][]PurchaseStatus{
	PurchaseStatusPending:   {PurchaseStatusCompleted, PurchaseStatusCancelled},
	PurchaseStatusCompleted: {PurchaseStatusRefunded},
	PurchaseStatusCancelled: {},
	PurchaseStatusRefunded:  {},
}

// Valid reports whether s is a known purchase status.
func (s PurchaseStatus) Valid() bool {
	_, ok := purchaseTransitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is a legal edge in
// the purchase state machine.
func (s PurchaseStatus) CanTransitionTo(next PurchaseStatus) bool {
	for _, allowed := range purchaseTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// String implements fmt.Stringer.
func (s PurchaseStatus) String() string {
	return string(s)
}
