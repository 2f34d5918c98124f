package amc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepakk/fieldcare/internal/model"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func yearContract() *model.Contract {
	return &model.Contract{
		StartDate:         date(2024, time.January, 1),
		EndDate:           date(2025, time.January, 1),
		IntervalMonths:    3,
		TotalServices:     4,
		ServicesCompleted: 0,
		IsActive:          true,
	}
}

func TestProcessServiceCompletion_FirstService(t *testing.T) {
	contract := yearContract()

	updated, err := ProcessServiceCompletion(contract, date(2024, time.January, 15))
	require.NoError(t, err)

	assert.Equal(t, 1, updated.ServicesCompleted)
	require.NotNil(t, updated.LastServiceDate)
	assert.Equal(t, date(2024, time.January, 15), *updated.LastServiceDate)
	require.NotNil(t, updated.NextServiceDate)
	assert.Equal(t, date(2024, time.April, 15), *updated.NextServiceDate)
	assert.Equal(t, date(2025, time.January, 1), updated.EndDate)
	assert.True(t, updated.IsActive)

	// input is untouched
	assert.Equal(t, 0, contract.ServicesCompleted)
	assert.Nil(t, contract.LastServiceDate)
}

func TestProcessServiceCompletion_EndDateInvariant(t *testing.T) {
	contract := yearContract()
	completions := []time.Time{
		date(2024, time.January, 15),
		date(2024, time.April, 2),
		date(2024, time.July, 20),
		date(2024, time.December, 31),
	}

	current := contract
	for _, completion := range completions {
		updated, err := ProcessServiceCompletion(current, completion)
		require.NoError(t, err)
		assert.Equal(t, contract.EndDate, updated.EndDate, "end date must never move")
		current = updated
	}
	assert.Equal(t, 4, current.ServicesCompleted)
}

func TestProcessServiceCompletion_NextDateAfterCompletion(t *testing.T) {
	completions := []time.Time{
		date(2024, time.January, 31),
		date(2024, time.November, 30),
		date(2024, time.February, 29),
	}
	for _, completion := range completions {
		updated, err := ProcessServiceCompletion(yearContract(), completion)
		require.NoError(t, err)
		assert.True(t, updated.NextServiceDate.After(completion),
			"next service %v must be after completion %v", updated.NextServiceDate, completion)
	}
}

func TestProcessServiceCompletion_NilContract(t *testing.T) {
	_, err := ProcessServiceCompletion(nil, date(2024, time.January, 1))
	assert.ErrorIs(t, err, ErrInvalidContract)
}

func TestProcessEarlyCompletion(t *testing.T) {
	tests := []struct {
		name      string
		completed time.Time
		scheduled time.Time
		wantEarly bool
	}{
		{"before schedule", date(2024, time.April, 10), date(2024, time.April, 15), true},
		{"on schedule", date(2024, time.April, 15), date(2024, time.April, 15), false},
		{"after schedule", date(2024, time.April, 20), date(2024, time.April, 15), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated, early, err := ProcessEarlyCompletion(yearContract(), tt.completed, tt.scheduled)
			require.NoError(t, err)
			assert.Equal(t, tt.wantEarly, early)
			// cadence always restarts from the actual completion
			assert.Equal(t, AddMonths(tt.completed, 3), *updated.NextServiceDate)
		})
	}
}

func TestNextServiceDate(t *testing.T) {
	assert.Nil(t, NextServiceDate(nil, 3))

	next := NextServiceDate(datePtr(2024, time.January, 15), 3)
	require.NotNil(t, next)
	assert.Equal(t, date(2024, time.April, 15), *next)

	// zero interval falls back to the default quarterly cadence
	next = NextServiceDate(datePtr(2024, time.January, 15), 0)
	require.NotNil(t, next)
	assert.Equal(t, date(2024, time.April, 15), *next)
}

func TestShouldShowServiceReminder(t *testing.T) {
	base := func() *model.Contract {
		c := yearContract()
		c.ServicesCompleted = 1
		c.LastServiceDate = datePtr(2024, time.January, 15)
		c.NextServiceDate = datePtr(2024, time.April, 15)
		return c
	}

	tests := []struct {
		name   string
		mutate func(*model.Contract)
		today  time.Time
		want   bool
	}{
		{"due today", func(c *model.Contract) {}, date(2024, time.April, 15), true},
		{"overdue", func(c *model.Contract) {}, date(2024, time.May, 1), true},
		{"not due yet", func(c *model.Contract) {}, date(2024, time.April, 14), false},
		{"inactive", func(c *model.Contract) { c.IsActive = false }, date(2024, time.April, 15), false},
		{"no next date", func(c *model.Contract) { c.NextServiceDate = nil }, date(2024, time.April, 15), false},
		{"past end date", func(c *model.Contract) {}, date(2025, time.January, 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contract := base()
			tt.mutate(contract)
			assert.Equal(t, tt.want, ShouldShowServiceReminder(contract, tt.today))
		})
	}

	assert.False(t, ShouldShowServiceReminder(nil, date(2024, time.April, 15)))
}

func TestShouldShowRenewalReminder(t *testing.T) {
	t.Run("expired reports negative days left", func(t *testing.T) {
		contract := yearContract()
		reminder := ShouldShowRenewalReminder(contract, date(2025, time.January, 11))
		assert.True(t, reminder.ShouldShow)
		assert.Equal(t, ReasonExpired, reminder.Reason)
		assert.Equal(t, -10, reminder.DaysLeft)
	})

	t.Run("exhausted services win over expiry window", func(t *testing.T) {
		contract := yearContract()
		contract.ServicesCompleted = 4
		reminder := ShouldShowRenewalReminder(contract, date(2024, time.June, 1))
		assert.True(t, reminder.ShouldShow)
		assert.Equal(t, ReasonServicesExhausted, reminder.Reason)
		assert.Equal(t, 214, reminder.DaysLeft)
	})

	t.Run("expiring soon inside 30 days", func(t *testing.T) {
		contract := yearContract()
		reminder := ShouldShowRenewalReminder(contract, date(2024, time.December, 15))
		assert.True(t, reminder.ShouldShow)
		assert.Equal(t, ReasonExpiringSoon, reminder.Reason)
		assert.Equal(t, 17, reminder.DaysLeft)
	})

	t.Run("expired beats exhausted", func(t *testing.T) {
		contract := yearContract()
		contract.ServicesCompleted = 4
		reminder := ShouldShowRenewalReminder(contract, date(2025, time.February, 1))
		assert.Equal(t, ReasonExpired, reminder.Reason)
	})

	t.Run("mid-term contract stays quiet", func(t *testing.T) {
		contract := yearContract()
		reminder := ShouldShowRenewalReminder(contract, date(2024, time.June, 1))
		assert.False(t, reminder.ShouldShow)
	})

	t.Run("nil contract", func(t *testing.T) {
		assert.False(t, ShouldShowRenewalReminder(nil, date(2024, time.June, 1)).ShouldShow)
	})
}

func TestCheckAndDeactivate(t *testing.T) {
	t.Run("exhaustion deactivates", func(t *testing.T) {
		contract := yearContract()
		contract.ServicesCompleted = 3

		updated, err := ProcessServiceCompletion(contract, date(2024, time.October, 1))
		require.NoError(t, err)
		assert.Equal(t, 4, updated.ServicesCompleted)
		assert.True(t, updated.IsActive)

		updated = CheckAndDeactivate(updated, date(2024, time.October, 2))
		assert.False(t, updated.IsActive)
	})

	t.Run("expiry overrides unused services", func(t *testing.T) {
		contract := yearContract()
		contract.ServicesCompleted = 1
		contract.EndDate = date(2024, time.June, 1)

		updated := CheckAndDeactivate(contract, date(2024, time.June, 2))
		assert.False(t, updated.IsActive)
	})

	t.Run("mid-term contract untouched", func(t *testing.T) {
		contract := yearContract()
		contract.ServicesCompleted = 2

		updated := CheckAndDeactivate(contract, date(2024, time.June, 1))
		assert.True(t, updated.IsActive)
		assert.Equal(t, *contract, *updated)
	})

	t.Run("idempotent", func(t *testing.T) {
		contract := yearContract()
		contract.ServicesCompleted = 4
		today := date(2024, time.October, 2)

		once := CheckAndDeactivate(contract, today)
		twice := CheckAndDeactivate(once, today)
		assert.Equal(t, *once, *twice)
	})

	t.Run("nil contract", func(t *testing.T) {
		assert.Nil(t, CheckAndDeactivate(nil, date(2024, time.October, 2)))
	})
}

func TestValidate(t *testing.T) {
	t.Run("valid contract", func(t *testing.T) {
		result := Validate(yearContract())
		assert.True(t, result.Valid)
		assert.Empty(t, result.Errors)
		assert.Empty(t, result.Warnings)
	})

	t.Run("nil contract", func(t *testing.T) {
		result := Validate(nil)
		assert.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
	})

	t.Run("missing fields", func(t *testing.T) {
		result := Validate(&model.Contract{})
		assert.False(t, result.Valid)
		assert.Len(t, result.Errors, 4)
	})

	t.Run("inverted dates", func(t *testing.T) {
		contract := yearContract()
		contract.StartDate, contract.EndDate = contract.EndDate, contract.StartDate
		result := Validate(contract)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "start date cannot be after end date")
	})

	t.Run("counter overflow is a warning, not an error", func(t *testing.T) {
		contract := yearContract()
		contract.ServicesCompleted = 5
		result := Validate(contract)
		assert.True(t, result.Valid)
		require.Len(t, result.Warnings, 1)
	})

	t.Run("next before last is a warning", func(t *testing.T) {
		contract := yearContract()
		contract.LastServiceDate = datePtr(2024, time.April, 15)
		contract.NextServiceDate = datePtr(2024, time.April, 15)
		result := Validate(contract)
		assert.True(t, result.Valid)
		require.Len(t, result.Warnings, 1)
	})
}

func TestStatus(t *testing.T) {
	contract := yearContract()
	contract.ServicesCompleted = 1
	contract.LastServiceDate = datePtr(2024, time.January, 15)
	contract.NextServiceDate = datePtr(2024, time.April, 15)

	status := Status(contract, date(2024, time.April, 20))
	require.NotNil(t, status)
	assert.True(t, status.IsActive)
	assert.False(t, status.IsExpired)
	assert.Equal(t, 3, status.ServicesRemaining)
	assert.True(t, status.ReminderDue)
	assert.False(t, status.RenewalNeeded)
	assert.Equal(t, 256, status.DaysUntilExpiry)

	assert.Nil(t, Status(nil, date(2024, time.April, 20)))
}

func TestScheduleVisits(t *testing.T) {
	dates := ScheduleVisits(date(2024, time.January, 1), 3, 4)
	require.Len(t, dates, 4)
	assert.Equal(t, date(2024, time.April, 1), dates[0])
	assert.Equal(t, date(2024, time.July, 1), dates[1])
	assert.Equal(t, date(2024, time.October, 1), dates[2])
	assert.Equal(t, date(2025, time.January, 1), dates[3])

	// defaults kick in for zero values
	dates = ScheduleVisits(date(2024, time.January, 1), 0, 0)
	require.Len(t, dates, 4)
	assert.Equal(t, date(2025, time.January, 1), dates[3])
}
