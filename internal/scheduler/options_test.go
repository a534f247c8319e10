package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUrgencyPolicyStartOffset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, UrgencyEmergency.StartOffsetDays())
	assert.Equal(t, 1, UrgencyGeneral.StartOffsetDays())
	assert.Equal(t, 2, UrgencyLongTerm.StartOffsetDays())
	// Empty policy behaves as general.
	assert.Equal(t, 1, UrgencyPolicy("").StartOffsetDays())
}

func TestUrgencyPolicyValid(t *testing.T) {
	t.Parallel()

	assert.True(t, UrgencyPolicy("").Valid())
	assert.True(t, UrgencyEmergency.Valid())
	assert.True(t, UrgencyGeneral.Valid())
	assert.True(t, UrgencyLongTerm.Valid())
	assert.False(t, UrgencyPolicy("someday").Valid())
}

func TestOptionsValidate(t *testing.T) {
	t.Parallel()

	opts := Options{StartDate: sunday, HorizonDays: 30}
	assert.NoError(t, opts.Validate())

	opts = Options{StartDate: sunday, HorizonDays: MaxHorizonDays}
	assert.NoError(t, opts.Validate())

	opts = Options{StartDate: sunday, HorizonDays: -3}
	assert.ErrorIs(t, opts.Validate(), ErrHorizonRange)
}
