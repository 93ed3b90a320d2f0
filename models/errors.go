package models

// ValidationError reports input data that violates the profile or
// availability shape contract. It is raised synchronously and never retried;
// callers decide whether to surface it or skip the offending record.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation: " + e.Reason
	}
	return "validation: " + e.Field + ": " + e.Reason
}
