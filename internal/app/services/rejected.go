package services

import (
	"fmt"
	"time"
)

// RejectReason classifies why a submission was refused.
type RejectReason string

const (
	// ReasonCooldown means the address submitted too recently.
	ReasonCooldown RejectReason = "cooldown"
	// ReasonValidation means a field failed its validation rule.
	ReasonValidation RejectReason = "validation"
	// ReasonDecode means the uploaded image could not be decoded.
	ReasonDecode RejectReason = "decode"
)

// Rejected is the recoverable, user-facing refusal of a submission.
// It is not a system error and is never logged as one.
type Rejected struct {
	Reason RejectReason
	// Field and Rule are set for validation rejections.
	Field string
	Rule  string
	// RetryAfter is set for cooldown rejections.
	RetryAfter time.Duration
}

func (e *Rejected) Error() string {
	switch e.Reason {
	case ReasonCooldown:
		return fmt.Sprintf("rejected: cooldown, retry after %s", e.RetryAfter)
	case ReasonValidation:
		return fmt.Sprintf("rejected: validation failed on %s (%s)", e.Field, e.Rule)
	default:
		return fmt.Sprintf("rejected: %s", e.Reason)
	}
}
