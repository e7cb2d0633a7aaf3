package letters

import (
	"math"
	"time"
)

// DeliveredAt reports whether the letter is readable at the given time.
// A letter is delivered once the clock reaches ScheduledDate, or earlier if
// the stored flag was forced.
func (l *Letter) DeliveredAt(now time.Time) bool {
	return l.IsDelivered || !now.Before(l.ScheduledDate)
}

// ProgressAt returns the percentage [0,100] of elapsed time between
// CreatedAt and ScheduledDate as of now.
//
// Once now reaches ScheduledDate the result is exactly 100. A schedule at
// or before creation has no meaningful window; it counts as immediately
// delivered and also yields 100.
func (l *Letter) ProgressAt(now time.Time) float64 {
	if !now.Before(l.ScheduledDate) {
		return 100
	}

	total := l.ScheduledDate.Sub(l.CreatedAt)
	if total <= 0 {
		return 100
	}

	elapsed := now.Sub(l.CreatedAt)
	p := float64(elapsed) / float64(total) * 100

	return math.Min(math.Max(p, 0), 100)
}

// DaysUntilDeliveryAt returns the number of whole days (rounded up) until
// ScheduledDate. Zero or negative means the letter is deliverable now.
func (l *Letter) DaysUntilDeliveryAt(now time.Time) int {
	diff := l.ScheduledDate.Sub(now)
	return int(math.Ceil(float64(diff) / float64(24*time.Hour)))
}

// refreshDerived recomputes the cached derived fields as of now. The
// delivered flag only ever widens.
func (l *Letter) refreshDerived(now time.Time) {
	if l.DeliveredAt(now) {
		l.IsDelivered = true
	}
	l.Progress = l.ProgressAt(now)
}
