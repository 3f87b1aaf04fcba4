package services

// State is the workflow's UI-facing lifecycle. Transient per submission;
// never persisted.
//
//	Idle → Validating → Sending → Succeeded | Failed
//
// Failed returns to Idle on the next submission attempt; there is no
// automatic retry.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateSending
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSending:
		return "sending"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// FailureKind classifies why a submission failed, so the HTTP layer can map
// validation problems to 400 and delivery problems to 500.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureValidation
	FailureTransport
	FailureInternal
)

// Result is the outcome of one submission: the terminal state, a localized
// user-facing message, and the underlying error for operator logs. The raw
// error is never shown to the end user.
type Result struct {
	State   State
	Kind    FailureKind
	Message string
	Err     error
}

// Succeeded reports whether the submission reached StateSucceeded.
func (r Result) Succeeded() bool {
	return r.State == StateSucceeded
}

func failed(kind FailureKind, message string, err error) Result {
	return Result{State: StateFailed, Kind: kind, Message: message, Err: err}
}

func succeeded(message string) Result {
	return Result{State: StateSucceeded, Message: message}
}

// fieldCheck is one entry of an ordered short-circuit validator: checks run
// front to back and the first failing check's message is surfaced alone.
type fieldCheck struct {
	ok      func() bool
	message string
}

func runChecks(checks []fieldCheck) (string, bool) {
	for _, c := range checks {
		if !c.ok() {
			return c.message, false
		}
	}
	return "", true
}
