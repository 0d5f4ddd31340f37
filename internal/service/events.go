package service

// Authentication event names reported to an AuthEventRecorder.
const (
	EventRegister       = "register"
	EventLogin          = "login"
	EventChangePassword = "change_password"
)

// Outcomes reported to an AuthEventRecorder.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// AuthEventRecorder receives one call per completed authentication attempt.
type AuthEventRecorder interface {
	RecordAuthEvent(event, outcome string)
}

type nopRecorder struct{}

func (nopRecorder) RecordAuthEvent(string, string) {}

// outcomeOf maps an operation result to an outcome label. Classified
// client errors count as rejections; anything else is an error.
func outcomeOf(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	if isClientError(err) {
		return OutcomeRejected
	}
	return OutcomeError
}
