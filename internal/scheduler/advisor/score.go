package advisor

import (
	"time"

	"github.com/masddffee/FocusFlow-app-sub005/internal/domain"
	"github.com/masddffee/FocusFlow-app-sub005/internal/timeutil"
)

// TimeBand names a preferred time-of-day band for rescheduled work.
type TimeBand string

// The available bands. BandAny disables the band bonus entirely.
const (
	BandAny       TimeBand = "any"
	BandMorning   TimeBand = "morning"
	BandAfternoon TimeBand = "afternoon"
	BandEvening   TimeBand = "evening"
)

// ContainsHour reports whether the given start hour falls inside the band.
// Morning covers 05-11, afternoon 12-16, evening 17-21.
func (b TimeBand) ContainsHour(hour int) bool {
	switch b {
	case BandMorning:
		return hour >= 5 && hour < 12
	case BandAfternoon:
		return hour >= 12 && hour < 17
	case BandEvening:
		return hour >= 17 && hour < 22
	default:
		return false
	}
}

// Valid reports whether the band is one of the defined values. The empty
// string is accepted and treated as BandAny.
func (b TimeBand) Valid() bool {
	switch b {
	case "", BandAny, BandMorning, BandAfternoon, BandEvening:
		return true
	default:
		return false
	}
}

// Weights are the tunable scoring constants for candidate slots. They are
// policy values, not fixed laws: callers load them from configuration and
// may adjust them independently of the search itself.
type Weights struct {
	// Base is the starting score of every candidate.
	Base float64

	// PerDayPenalty is subtracted once per day between today and the
	// candidate date, so sooner slots score higher.
	PerDayPenalty float64

	// PreferredBandBonus is added when the candidate starts inside the
	// caller's preferred time band.
	PreferredBandBonus float64

	// OffHoursPenalty is subtracted when the candidate starts before
	// DayStartHour or at/after DayEndHour.
	OffHoursPenalty float64

	// PriorityWeight scales the item's computed priority into the score.
	PriorityWeight float64

	// DayStartHour and DayEndHour bound the sociable scheduling hours.
	DayStartHour int
	DayEndHour   int
}

// DefaultWeights returns the standard scoring constants.
func DefaultWeights() Weights {
	return Weights{
		Base:               100,
		PerDayPenalty:      5,
		PreferredBandBonus: 20,
		OffHoursPenalty:    30,
		PriorityWeight:     0.1,
		DayStartHour:       7,
		DayEndHour:         22,
	}
}

// normalized fills zero-valued weights from the defaults so a partially
// configured struct still scores sensibly.
func (w Weights) normalized() Weights {
	def := DefaultWeights()
	if w.Base == 0 {
		w.Base = def.Base
	}
	if w.PerDayPenalty == 0 {
		w.PerDayPenalty = def.PerDayPenalty
	}
	if w.PreferredBandBonus == 0 {
		w.PreferredBandBonus = def.PreferredBandBonus
	}
	if w.OffHoursPenalty == 0 {
		w.OffHoursPenalty = def.OffHoursPenalty
	}
	if w.PriorityWeight == 0 {
		w.PriorityWeight = def.PriorityWeight
	}
	if w.DayStartHour == 0 {
		w.DayStartHour = def.DayStartHour
	}
	if w.DayEndHour == 0 {
		w.DayEndHour = def.DayEndHour
	}
	return w
}

// scoreCandidate rates one candidate slot. Sooner days score higher, the
// preferred band earns a bonus, antisocial start hours take a penalty, and
// the item's priority contributes a small weighted term.
func scoreCandidate(c candidate, priority float64, band TimeBand, w Weights) float64 {
	score := w.Base

	score -= w.PerDayPenalty * float64(c.daysFromToday)

	hour := c.interval.StartMinute / 60
	if band.ContainsHour(hour) {
		score += w.PreferredBandBonus
	}
	if hour < w.DayStartHour || hour >= w.DayEndHour {
		score -= w.OffHoursPenalty
	}

	score += w.PriorityWeight * priority

	return score
}

// taskPriority derives a priority value from deadline proximity and
// difficulty. Either contribution can be switched off through the options.
func taskPriority(item *domain.WorkItem, today time.Time, opts Options) float64 {
	var priority float64

	if opts.WeightDifficulty {
		switch item.Difficulty {
		case domain.DifficultyHard:
			priority += 30
		case domain.DifficultyEasy:
			priority += 10
		default:
			priority += 20
		}
	}

	if opts.WeightUrgency && item.DueDate != nil {
		days := timeutil.DaysBetween(today, *item.DueDate)
		if days < 0 {
			days = 0
		}
		// Closer deadlines add up to 50, fading to nothing ten days out.
		if boost := 50 - 5*days; boost > 0 {
			priority += float64(boost)
		}
	}

	return priority
}
