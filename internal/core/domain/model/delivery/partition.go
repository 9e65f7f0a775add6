package delivery

import "time"

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

// DatePartition is the denormalized calendar bucket of a delivery,
// always derived from the UTC date.
type DatePartition struct {
	Day   string
	Month string
	Year  int
}

// PartitionOf derives the buckets for t. Month is a prefix of Day and Year is
// the leading four digits of both.
func PartitionOf(t time.Time) DatePartition {
	utc := t.UTC()
	return DatePartition{
		Day:   utc.Format(dayLayout),
		Month: utc.Format(monthLayout),
		Year:  utc.Year(),
	}
}
