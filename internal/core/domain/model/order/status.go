package order

import (
	"fmt"
	"strings"

	"penguinadmin/internal/pkg/errs"
)

// Status is the lifecycle label of an active order.
//
//	new ──> preparing ──> en_route ──> (finalized: order removed)
//
// ChangeStatus accepts any of the three labels as the next status; ordering
// between them is not enforced.
type Status string

const (
	New       Status = "new"
	Preparing Status = "preparing"
	EnRoute   Status = "en_route"
)

// Statuses lists the valid labels in workflow order.
func Statuses() []Status {
	return []Status{New, Preparing, EnRoute}
}

// ParseStatus converts a submitted label into a Status.
func ParseStatus(label string) (Status, error) {
	s := Status(strings.TrimSpace(label))
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

func (s Status) Validate() error {
	switch s {
	case New, Preparing, EnRoute:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}

// Title is the human label shown in the admin views.
func (s Status) Title() string {
	switch s {
	case New:
		return "New"
	case Preparing:
		return "Preparing"
	case EnRoute:
		return "En route"
	default:
		return "Unknown"
	}
}
