package homework

// Status is the review state reported by the API for a single homework.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// Homework is one tracked item of the status API response.
type Homework struct {
	Name       string // homework_name
	LessonName string // lesson_name, optional
	Status     Status
}

// StatusResponse is a validated answer of the status API.
type StatusResponse struct {
	Homeworks   []Homework
	CurrentDate int64 // cursor for the next request
}

// Verdict returns the canned operator sentence for a known status.
func (s Status) Verdict() (string, bool) {
	v, ok := verdicts[s]
	return v, ok
}

var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}
