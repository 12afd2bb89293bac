package core

// Status is the outcome of a command whose reply only signals success.
type Status bool

const (
	StatusFailure Status = false
	StatusSuccess Status = true
)

func (s Status) String() string {
	if s {
		return "SUCCESS"
	}
	return "FAILURE"
}
