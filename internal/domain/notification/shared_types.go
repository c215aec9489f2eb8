package notification

// Kind tells which de-duplication memory a message belongs to.
type Kind string

const (
	KindInfo   Kind = "INFO"   // startup announcement
	KindStatus Kind = "STATUS" // homework status change
	KindError  Kind = "ERROR"  // poll cycle failure
)

// Result is the outcome of a single delivery attempt.
type Result string

const (
	ResultSent   Result = "SENT"
	ResultFailed Result = "FAILED"
)
