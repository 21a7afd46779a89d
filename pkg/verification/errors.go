package verification

// InvalidInputError reports a required input that is missing, empty or
// malformed. It is raised before any network or crypto work; seeing one
// means a caller bug, not a verification failure.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// ProcessError wraps any failure inside the verification pipeline (key
// resolution, digest construction, signature decoding) so callers see
// either a boolean result or a single process failure, never a partially
// completed state. The original cause is reachable through Unwrap.
type ProcessError struct {
	Cause error
}

func (e *ProcessError) Error() string {
	return "verification process failed: " + e.Cause.Error()
}

func (e *ProcessError) Unwrap() error { return e.Cause }
