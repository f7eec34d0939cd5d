package catalog

// Status is the state of a query as seen by a view.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// Result carries one query outcome. Data is set only for StatusSuccess and
// Err only for StatusError.
type Result[T any] struct {
	Status Status
	Data   T
	Err    error
	Cached bool
}

// ServiceError represents a catalog service error
type ServiceError struct {
	Op  string
	Key string
	Err error
}

func (e *ServiceError) Error() string {
	return "catalog " + e.Op + " " + e.Key + ": " + e.Err.Error()
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
