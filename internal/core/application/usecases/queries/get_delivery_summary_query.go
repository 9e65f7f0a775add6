package queries

import (
	"errors"
	"fmt"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/pkg/errs"
	"penguinadmin/internal/pkg/guard"
)

var ErrGetDeliverySummaryQueryIsNotConstructed = errors.New(
	"GetDeliverySummaryQuery must be created via NewGetDeliverySummaryQuery constructor",
)

// Granularity selects which denormalized date field deliveries are grouped by.
type Granularity string

const (
	ByDay   Granularity = "day"
	ByMonth Granularity = "month"
	ByYear  Granularity = "year"
)

// GetDeliverySummaryQuery aggregates the delivery archive per period.
//
// Example:
//
//	query, _ := NewGetDeliverySummaryQuery("month")
//	rows, _ := handler.Handle(ctx, query)
//	// rows[0].Period == "2025-11"
type GetDeliverySummaryQuery struct { //nolint:recvcheck //using for validation
	granularity Granularity

	guard guard.ConstructorGuard
}

// NewGetDeliverySummaryQuery defaults an empty granularity to ByDay.
func NewGetDeliverySummaryQuery(granularity string) (GetDeliverySummaryQuery, error) {
	g := Granularity(granularity)
	switch g {
	case "":
		g = ByDay
	case ByDay, ByMonth, ByYear:
	default:
		return GetDeliverySummaryQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"granularity", fmt.Errorf("%q is not one of day, month, year", granularity),
		)
	}
	return GetDeliverySummaryQuery{granularity: g, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliverySummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliverySummaryQueryIsNotConstructed)
}

func (q GetDeliverySummaryQuery) Granularity() Granularity {
	return q.granularity
}

// DeliverySummaryRow is one period of the summary, newest period first.
type DeliverySummaryRow struct {
	Period     string       `json:"period"`
	Deliveries int64        `json:"deliveries"`
	Units      int64        `json:"units"`
	Revenue    kernel.Money `json:"-"`
}
