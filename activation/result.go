package activation

import (
	"fmt"
	"time"
)

// Status is the activation progress reported by a successful activation call.
type Status string

const (
	StatusProgress           Status = "PROGRESS"
	StatusSuccess            Status = "SUCCESS"
	StatusTimeout            Status = "TIMEOUT"
	StatusEligibilityExpired Status = "ELIGIBILITY_EXPIRED"
	StatusExists             Status = "EXISTS"
	StatusError              Status = "ERROR"
)

// Kind tags the variant of a Result.
type Kind int

const (
	KindRequest Kind = iota
	KindSuccess
	KindFailure
)

func (k Kind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindSuccess:
		return "success"
	case KindFailure:
		return "failure"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Bonus is the activated bonus as returned by the backend.
type Bonus struct {
	ID                  string
	Code                string
	ApplicantFiscalCode string
	Status              string
	MaxAmount           int64 // euro cents
	MaxTaxBenefit       int64 // euro cents
	CreatedAt           time.Time
}

// Result is the outcome of one activation task. Failures of the task itself
// are carried as KindFailure, never as a Go error.
type Result struct {
	Kind   Kind
	Status Status
	Bonus  *Bonus
	Err    string
}

func InProgress() Result {
	return Result{Kind: KindRequest, Status: StatusProgress}
}

func Success(status Status, bonus *Bonus) Result {
	return Result{Kind: KindSuccess, Status: status, Bonus: bonus}
}

func Failure(err error) Result {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return Result{Kind: KindFailure, Status: StatusError, Err: msg}
}

func (r Result) IsSuccess() bool { return r.Kind == KindSuccess }

func (r Result) String() string {
	if r.Kind == KindFailure {
		return fmt.Sprintf("%s(%s)", r.Kind, r.Err)
	}
	return fmt.Sprintf("%s(%s)", r.Kind, r.Status)
}
