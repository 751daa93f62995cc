package model

// BatchError records a single user's failure during a batch run
type BatchError struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

// BatchRunResult aggregates the outcome of one weekly generation run.
// It is returned to the trigger caller and logged, never persisted.
type BatchRunResult struct {
	TotalUsers                    int          `json:"totalUsers"`
	Successful                    int          `json:"successful"`
	SkippedInsufficientEntries    int          `json:"skippedInsufficientEntries"`
	SkippedInsufficientEngagement int          `json:"skippedInsufficientEngagement"`
	Failed                        int          `json:"failed"`
	Errors                        []BatchError `json:"errors"`
}
