package queries

import (
	"context"

	"penguinadmin/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var periodColumns = map[Granularity]string{
	ByDay:   "d.day",
	ByMonth: "d.month",
	ByYear:  "d.year::text",
}

type GetDeliverySummaryQueryHandler struct {
	db *gorm.DB
}

func NewGetDeliverySummaryQueryHandler(db *gorm.DB) GetDeliverySummaryQueryHandler {
	return GetDeliverySummaryQueryHandler{db: db}
}

func (h GetDeliverySummaryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliverySummaryQuery,
) ([]DeliverySummaryRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	period := periodColumns[query.Granularity()]
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			` + period + ` AS period,
			COUNT(*) AS deliveries,
			COALESCE(SUM(u.units), 0) AS units,
			COALESCE(SUM(d.total), 0) AS revenue
		FROM deliveries d
		LEFT JOIN (
			SELECT delivery_id, SUM(qty) AS units
			FROM delivery_items
			GROUP BY delivery_id
		) u ON u.delivery_id = d.id
		GROUP BY 1
		ORDER BY 1 DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := make([]DeliverySummaryRow, 0)
	for rows.Next() {
		var row DeliverySummaryRow
		var revenue decimal.Decimal

		if err = rows.Scan(&row.Period, &row.Deliveries, &row.Units, &revenue); err != nil {
			return nil, err
		}
		if row.Revenue, err = kernel.NewMoney(revenue); err != nil {
			return nil, err
		}
		summary = append(summary, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summary, nil
}
