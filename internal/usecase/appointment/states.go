package appointment

// State tracks a booking request through the orchestrator. Transitions are
// strictly forward: validating → checking_availability → creating_event →
// done | failed.
type State string

const (
	StateValidating           State = "validating"
	StateCheckingAvailability State = "checking_availability"
	StateCreatingEvent        State = "creating_event"
	StateDone                 State = "done"
	StateFailed               State = "failed"
)
