package model

import "time"

const (
	day  = 24 * time.Hour
	week = 7 * day
)

// SystemSettings mirrors the singleton system_settings row.
type SystemSettings struct {
	DailySubmissionLimit  int
	WeeklySubmissionLimit int
}

func (s SystemSettings) QuotaPolicy() QuotaPolicy {
	return QuotaPolicy{
		DailyLimit:  max(s.DailySubmissionLimit, 0),
		WeeklyLimit: max(s.WeeklySubmissionLimit, 0),
	}
}

type QuotaPeriod int

const (
	QuotaPeriodNone QuotaPeriod = iota
	QuotaPeriodDaily
	QuotaPeriodWeekly
)

func (p QuotaPeriod) String() string {
	switch p {
	case QuotaPeriodDaily:
		return "DAILY"
	case QuotaPeriodWeekly:
		return "WEEKLY"
	default:
		return "NONE"
	}
}

func (p QuotaPeriod) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// QuotaPolicy decides which submission window a withdrawn song is refunded
// against.
//
// A non-zero daily limit takes precedence: when both limits are set only
// the daily window is consulted.
type QuotaPolicy struct {
	DailyLimit  int
	WeeklyLimit int
}

func (q QuotaPolicy) Period() QuotaPeriod {
	switch {
	case q.DailyLimit > 0:
		return QuotaPeriodDaily
	case q.WeeklyLimit > 0:
		return QuotaPeriodWeekly
	default:
		return QuotaPeriodNone
	}
}

// Window returns the half-open [start, end) interval containing now for the
// active period, evaluated in now's location. ok is false when no limit is
// configured.
func (q QuotaPolicy) Window(now time.Time) (start, end time.Time, ok bool) {
	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	switch q.Period() {
	case QuotaPeriodDaily:
		return midnight, midnight.Add(day), true
	case QuotaPeriodWeekly:
		// weeks start on Monday
		back := int(now.Weekday()) - 1
		if now.Weekday() == time.Sunday {
			back = 6
		}
		start = time.Date(y, m, d-back, 0, 0, 0, 0, now.Location())
		return start, start.Add(week), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// RefundEligible reports whether a submission made at createdAt falls in the
// quota window that contains now.
func (q QuotaPolicy) RefundEligible(createdAt, now time.Time) bool {
	start, end, ok := q.Window(now)
	if !ok {
		return false
	}
	return !createdAt.Before(start) && createdAt.Before(end)
}
