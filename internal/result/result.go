// Package result defines the closed set of outcome codes shared by every
// write operation in the system, plus small typed envelopes around them.
//
// Expected business outcomes (not found, duplicate, broken relation) are
// reported through a Status instead of an error. Errors are reserved for
// infrastructure faults such as an unreachable store.
package result

// Status is the outcome code of a store operation.
type Status int

const (
	Completed Status = iota
	NotFound
	RelatedEntityDoesNotExists
	EntityAlreadyExists
	RelationDoesNotExist
	UnexpectedError
	PhotoFailedToDelete
	PhotoFailedToSave
)

// String returns the canonical name of the status.
func (s Status) String() string {
	switch s {
	case Completed:
		return "Completed"
	case NotFound:
		return "NotFound"
	case RelatedEntityDoesNotExists:
		return "RelatedEntityDoesNotExists"
	case EntityAlreadyExists:
		return "EntityAlreadyExists"
	case RelationDoesNotExist:
		return "RelationDoesNotExist"
	case UnexpectedError:
		return "UnexpectedError"
	case PhotoFailedToDelete:
		return "PhotoFailedToDelete"
	case PhotoFailedToSave:
		return "PhotoFailedToSave"
	default:
		return "Unknown"
	}
}

// Result pairs a Status with an optional payload.
// The payload is meaningful only when the status is Completed.
type Result[T any] struct {
	Status Status
	Value  T
}

// Ok wraps a payload in a Completed result.
func Ok[T any](v T) Result[T] {
	return Result[T]{Status: Completed, Value: v}
}

// Fail builds a result carrying only a failure status.
func Fail[T any](s Status) Result[T] {
	return Result[T]{Status: s}
}

// IsCompleted reports whether the operation succeeded and the payload is set.
func (r Result[T]) IsCompleted() bool {
	return r.Status == Completed
}
