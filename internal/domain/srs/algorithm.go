package srs

import (
	"math"
	"time"

	"github.com/masddffee/FocusFlow-app-sub005/internal/domain"
	"github.com/masddffee/FocusFlow-app-sub005/internal/timeutil"
)

// calculateNewEaseFactor determines the new ease factor from a review grade.
//
// The ease factor represents how quickly the item's review interval grows -
// higher values mean easier recall and faster-growing intervals. The update
// follows the SM-2 adjustment curve: a perfect grade (5) nudges the factor
// up by 0.1, a grade of 4 leaves it unchanged, and every grade below that
// pulls it down progressively harder. The result never drops below
// params.MinEaseFactor.
func calculateNewEaseFactor(currentEF float64, quality int, params *Params) float64 {
	q := float64(quality)
	newEF := currentEF + (0.1 - (5-q)*(0.08+(5-q)*0.02))

	if newEF < params.MinEaseFactor {
		newEF = params.MinEaseFactor
	}

	return newEF
}

// calculateNewInterval determines the next review interval in days.
//
// Failed recall (quality < 3) always resets the interval to the minimum.
// The first successful repetition repeats after params.FirstIntervalDays,
// the second after params.SecondIntervalDays, and every later one grows the
// current interval by the pre-review ease factor. The result is clamped to
// [params.MinIntervalDays, params.MaxIntervalDays].
//
// newRepetitions is the repetition count after the review has been applied
// (0 on failure, incremented on success).
func calculateNewInterval(
	currentInterval int,
	newRepetitions int,
	easeFactor float64,
	quality int,
	params *Params,
) int {
	var interval int
	switch {
	case quality < PassingQuality:
		interval = params.MinIntervalDays
	case newRepetitions == 1:
		interval = params.FirstIntervalDays
	case newRepetitions == 2:
		interval = params.SecondIntervalDays
	default:
		interval = int(math.Round(float64(currentInterval) * easeFactor))
	}

	if interval < params.MinIntervalDays {
		interval = params.MinIntervalDays
	}
	if interval > params.MaxIntervalDays {
		interval = params.MaxIntervalDays
	}

	return interval
}

// calculateNextRecord creates a new ReviewRecord with updated values based
// on a review grade.
//
// This follows the immutable update pattern: the input record is never
// modified, a fully populated copy is returned instead. The ease factor is
// updated for every review, including failed ones, while a failed review
// additionally resets the repetition count and interval. The next due date
// is the review date plus the new interval.
func calculateNextRecord(
	record *domain.ReviewRecord,
	quality int,
	today time.Time,
	params *Params,
) *domain.ReviewRecord {
	newRecord := &domain.ReviewRecord{
		ItemID:          record.ItemID,
		EaseFactor:      record.EaseFactor,
		IntervalDays:    record.IntervalDays,
		Repetitions:     record.Repetitions,
		NextDueDate:     record.NextDueDate,
		TemplateCounter: record.TemplateCounter,
	}

	if quality < PassingQuality {
		newRecord.Repetitions = 0
	} else {
		newRecord.Repetitions = record.Repetitions + 1
	}

	// The interval grows by the pre-review ease factor; the ease update
	// below only influences reviews after this one.
	newRecord.IntervalDays = calculateNewInterval(
		record.IntervalDays,
		newRecord.Repetitions,
		record.EaseFactor,
		quality,
		params,
	)

	newRecord.EaseFactor = calculateNewEaseFactor(record.EaseFactor, quality, params)

	newRecord.NextDueDate = timeutil.AddDays(today, newRecord.IntervalDays)

	grade := quality
	newRecord.LastQuality = &grade

	return newRecord
}
