package dispatcher

import "fmt"

// Status is the terminal state of an invocation.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// FaultKind classifies invocation-time failures.
type FaultKind string

const (
	KindNotFound      FaultKind = "not_found"
	KindValidation    FaultKind = "validation"
	KindSerialization FaultKind = "serialization"
	KindTimeout       FaultKind = "timeout"
	KindCallableFault FaultKind = "callable_fault"
	KindCanceled      FaultKind = "canceled"
)

// Fault carries the classified failure of an error envelope.
type Fault struct {
	Kind    FaultKind `json:"kind"`
	Message string    `json:"message"`
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// Result is the uniform envelope returned for every invocation. Payload is
// always representable as JSON when Status is success.
type Result struct {
	Status  Status      `json:"status"`
	Payload interface{} `json:"payload,omitempty"`
	Fault   *Fault      `json:"error,omitempty"`
}

// Success wraps a payload into a success envelope.
func Success(payload interface{}) Result {
	return Result{Status: StatusSuccess, Payload: payload}
}

// Failure builds an error envelope of the given kind.
func Failure(kind FaultKind, format string, args ...interface{}) Result {
	return Result{Status: StatusError, Fault: &Fault{Kind: kind, Message: fmt.Sprintf(format, args...)}}
}

// Err exposes the envelope fault as a plain error, nil on success.
func (r Result) Err() error {
	if r.Fault == nil {
		return nil
	}
	return r.Fault
}
