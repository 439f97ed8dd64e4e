package seximal

import "time"

// Unit sizes, in snaps.
const (
	SnapsPerMoment = 6
	SnapsPerLull   = 36 * SnapsPerMoment // 216
	SnapsPerSpan   = 6 * SnapsPerLull    // 1296
	SnapsPerLapse  = 36 * SnapsPerLull   // 7776
	SnapsPerDay    = 36 * SnapsPerLapse  // 279936
)

// snapNanos is the exact length of one snap expressed as a ratio of
// nanoseconds: 25_000_000_000/81 ns (25/81 of a second). Kept as a
// numerator/denominator pair so conversion stays in integer arithmetic.
const (
	snapNumer = 25_000_000_000
	snapDenom = 81
)

// Snap approximates the length of one snap as a time.Duration
// (truncated to whole nanoseconds). Use FromDuration for conversion;
// this constant is only suitable for display and scheduling.
const Snap = snapNumer * time.Nanosecond / snapDenom

// Ticks counts whole snaps elapsed since midnight, in [0, SnapsPerDay).
type Ticks int

// FromDuration converts a duration since midnight to a snap count.
// The count is floored (sub-snap precision truncates) and wrapped modulo
// one day, so exactly 24h maps back to zero.
func FromDuration(d time.Duration) Ticks {
	snaps := d.Nanoseconds() * snapDenom / snapNumer
	snaps %= SnapsPerDay
	if snaps < 0 {
		snaps += SnapsPerDay
	}
	return Ticks(snaps)
}

// FromClock converts a broken-down time of day to a snap count. The
// fractional second is truncated to whole nanoseconds before conversion.
// Callers are expected to pass validated values (hour 0-23, min and sec
// 0-59, 0 <= frac < 1); out-of-range input wraps like FromDuration.
func FromClock(hour, min, sec int, frac float64) Ticks {
	d := time.Duration(hour)*time.Hour +
		time.Duration(min)*time.Minute +
		time.Duration(sec)*time.Second +
		time.Duration(frac*float64(time.Second))
	return FromDuration(d)
}

// Span returns the span index, floor(ticks/1296), in [0, 215].
func (t Ticks) Span() int { return int(t) / SnapsPerSpan }

// Breakdown is the decomposition of a snap count into the unit
// hierarchy. Lapse, Lull and Moment are in [0, 35], Snap in [0, 5], and
// Lapse*7776 + Lull*216 + Moment*6 + Snap reassembles the count.
type Breakdown struct {
	Lapse  int
	Lull   int
	Moment int
	Snap   int
}

// Breakdown decomposes the snap count into lapses, lulls, moments and
// snaps.
func (t Ticks) Breakdown() Breakdown {
	n := int(t)
	return Breakdown{
		Lapse:  n / SnapsPerLapse,
		Lull:   n / SnapsPerLull % 36,
		Moment: n / SnapsPerMoment % 36,
		Snap:   n % SnapsPerMoment,
	}
}

// Ticks reassembles the snap count from its decomposition.
func (b Breakdown) Ticks() Ticks {
	return Ticks(b.Lapse*SnapsPerLapse + b.Lull*SnapsPerLull + b.Moment*SnapsPerMoment + b.Snap)
}

// String renders the breakdown in extended snapshot form.
func (b Breakdown) String() string {
	return b.Ticks().Render(FormExtended)
}
