package domain

// RunSummary is the one record produced per invocation. It is mirrored to
// stdout, optionally serialized to a file, and decides the exit status.
type RunSummary struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
	Cause   Cause  `json:"cause,omitempty"`
}

// SuccessSummary builds the summary for a completed run.
func SuccessSummary(message string) RunSummary {
	return RunSummary{Message: message, Success: true}
}

// FailureSummary builds the summary for a failed run from the terminal error.
func FailureSummary(err error) RunSummary {
	return RunSummary{Message: err.Error(), Success: false, Cause: CauseOf(err)}
}
