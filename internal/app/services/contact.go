package services

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/casualdesk/website/internal/app/ports"
)

// ContactCooldown is the minimum time between two contact submissions from
// the same address.
const ContactCooldown = 5 * time.Minute

const (
	contactNameMin    = 4
	contactNameMax    = 256
	contactEmailMin   = 6
	contactEmailMax   = 256
	contactMessageMin = 5
	contactMessageMax = 2048
)

// ContactService validates and persists contact form submissions.
type ContactService struct {
	store ports.SubmissionStore
	locks *keyedMutex
}

// NewContactService constructs a ContactService over the given store.
func NewContactService(store ports.SubmissionStore) *ContactService {
	return &ContactService{store: store, locks: newKeyedMutex()}
}

// Submit stores a contact submission for the given client address. It returns
// a *Rejected error when the address is still in cooldown or a field fails
// validation; any other error is a persistence failure.
func (s *ContactService) Submit(ctx context.Context, address, name, email, message string, now time.Time) (ports.ContactSubmission, error) {
	unlock := s.locks.lock(address)
	defer unlock()

	last, err := s.store.LastContactByAddress(ctx, address)
	if err != nil {
		return ports.ContactSubmission{}, fmt.Errorf("load last contact submission: %w", err)
	}
	if !MayProceed(lastCreatedAt(last), ContactCooldown, now) {
		return ports.ContactSubmission{}, &Rejected{
			Reason:     ReasonCooldown,
			RetryAfter: ContactCooldown - now.Sub(last.CreatedAt),
		}
	}

	if err := validateContact(name, email, message); err != nil {
		return ports.ContactSubmission{}, err
	}

	created, err := s.store.InsertContact(ctx, ports.ContactSubmission{
		Name:      name,
		Address:   address,
		Email:     email,
		Message:   message,
		CreatedAt: now,
	})
	if err != nil {
		return ports.ContactSubmission{}, fmt.Errorf("insert contact submission: %w", err)
	}
	return created, nil
}

func lastCreatedAt(s *ports.ContactSubmission) *time.Time {
	if s == nil {
		return nil
	}
	return &s.CreatedAt
}

// validateContact checks fields in declaration order and reports the first
// failure only.
func validateContact(name, email, message string) error {
	if n := utf8.RuneCountInString(name); n < contactNameMin {
		return &Rejected{Reason: ReasonValidation, Field: "name", Rule: "min"}
	} else if n > contactNameMax {
		return &Rejected{Reason: ReasonValidation, Field: "name", Rule: "max"}
	}

	if n := utf8.RuneCountInString(email); n < contactEmailMin {
		return &Rejected{Reason: ReasonValidation, Field: "email", Rule: "min"}
	} else if n > contactEmailMax {
		return &Rejected{Reason: ReasonValidation, Field: "email", Rule: "max"}
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return &Rejected{Reason: ReasonValidation, Field: "email", Rule: "format"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return &Rejected{Reason: ReasonValidation, Field: "email", Rule: "format"}
	}

	if n := utf8.RuneCountInString(message); n < contactMessageMin {
		return &Rejected{Reason: ReasonValidation, Field: "message", Rule: "min"}
	} else if n > contactMessageMax {
		return &Rejected{Reason: ReasonValidation, Field: "message", Rule: "max"}
	}

	return nil
}
