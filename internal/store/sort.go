package store

import (
	"sort"

	"github.com/masddffee/FocusFlow-app-sub005/internal/domain"
)

func sortByStart(assignments []domain.ScheduledAssignment) {
	sort.Slice(assignments, func(i, j int) bool {
		return assignments[i].Interval.StartMinute < assignments[j].Interval.StartMinute
	})
}

func sortByDate(assignments []domain.ScheduledAssignment) {
	sort.Slice(assignments, func(i, j int) bool {
		if !assignments[i].Date.Equal(assignments[j].Date) {
			return assignments[i].Date.Before(assignments[j].Date)
		}
		return assignments[i].Interval.StartMinute < assignments[j].Interval.StartMinute
	})
}
