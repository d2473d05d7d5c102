package schedule_test

import (
	"errors"
	"testing"
	"time"

	"github.com/muhammadheryan/snackstore/application/schedule"
	"github.com/muhammadheryan/snackstore/constant"
	"github.com/muhammadheryan/snackstore/model"
	cerr "github.com/muhammadheryan/snackstore/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, time.October, 17, 16, 30, 0, 0, time.UTC)

func scheduleDetails(t *testing.T, err error) []string {
	t.Helper()
	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce), "error type = %T", err)
	require.Equal(t, constant.ErrorTypeCode[constant.ErrInvalidSchedule], ce.ErrorCode())
	return ce.Details()
}

func TestWindow(t *testing.T) {
	w := schedule.NewWindow(today, 1, 30)

	assert.Equal(t, "2026-10-18", w.First.Format(time.DateOnly))
	assert.Equal(t, "2026-11-16", w.Last.Format(time.DateOnly))

	dates := w.Dates()
	require.Len(t, dates, 30)
	assert.Equal(t, "2026-10-18", dates[0])
	assert.Equal(t, "2026-11-16", dates[29])

	tests := []struct {
		date string
		want bool
	}{
		{"2026-10-17", false},
		{"2026-10-18", true},
		{"2026-11-01", true},
		{"2026-11-16", true},
		{"2026-11-17", false},
		{"17/10/2026", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, w.Contains(tt.date), "Contains(%q)", tt.date)
	}
}

func TestWizard_StepValidation(t *testing.T) {
	tests := []struct {
		name     string
		prepare  func(w *schedule.Wizard)
		wantStep int
		wantMsg  string
	}{
		{
			name:     "missing date blocks step one",
			prepare:  func(w *schedule.Wizard) {},
			wantStep: constant.WizardStepDate,
			wantMsg:  constant.ScheduleMissingDate,
		},
		{
			name:     "date outside window",
			prepare:  func(w *schedule.Wizard) { w.SetDate("2026-10-17") },
			wantStep: constant.WizardStepDate,
			wantMsg:  "La fecha debe estar entre 2026-10-18 y 2026-11-16",
		},
		{
			name: "unknown time slot",
			prepare: func(w *schedule.Wizard) {
				w.SetDate("2026-10-20")
				w.SetTimeSlot("midnight")
			},
			wantStep: constant.WizardStepTimeSlot,
			wantMsg:  constant.ScheduleMissingTimeSlot,
		},
		{
			name: "missing zone",
			prepare: func(w *schedule.Wizard) {
				w.SetDate("2026-10-20")
				w.SetTimeSlot("morning")
			},
			wantStep: constant.WizardStepZone,
			wantMsg:  constant.ScheduleMissingZone,
		},
		{
			name: "blank address",
			prepare: func(w *schedule.Wizard) {
				w.SetDate("2026-10-20")
				w.SetTimeSlot("morning")
				w.SetZone("callao")
				w.SetAddress("   ")
			},
			wantStep: constant.WizardStepAddress,
			wantMsg:  constant.ScheduleMissingAddress,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			w := schedule.NewWizard(nil, schedule.NewWindow(today, 1, 30))
			tt.prepare(w)

			var err error
			for w.Step() < constant.WizardStepConfirm {
				if err = w.Next(); err != nil {
					break
				}
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantStep, w.Step())
			assert.Equal(t, []string{tt.wantMsg}, scheduleDetails(t, err))
		})
	}
}

func TestWizard_Confirm(t *testing.T) {
	w := schedule.NewWizard(nil, schedule.NewWindow(today, 1, 30))
	w.SetDate("2026-10-25")
	w.SetTimeSlot("afternoon")
	w.SetZone("lima-norte")
	w.SetAddress("  Av. Túpac Amaru 1234, Comas  ")
	w.SetNotes(" tocar timbre ")

	_, err := w.Confirm(func(model.DeliverySchedule) { t.Fatal("apply called before the last step") })
	assert.Equal(t, []string{constant.ScheduleIncomplete}, scheduleDetails(t, err))

	for w.Step() < constant.WizardStepConfirm {
		require.NoError(t, w.Next())
	}
	// Next on the last step stays put.
	require.NoError(t, w.Next())
	assert.Equal(t, constant.WizardStepConfirm, w.Step())

	var applied model.DeliverySchedule
	got, err := w.Confirm(func(sc model.DeliverySchedule) { applied = sc })
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "2026-10-25", got.Date)
	assert.Equal(t, "Tarde (12:00 - 17:00)", got.TimeSlot)
	assert.Equal(t, "lima-norte", got.ZoneID)
	assert.Equal(t, "Av. Túpac Amaru 1234, Comas", got.Address)
	assert.Equal(t, "tocar timbre", got.Notes)
	assert.Equal(t, got, applied)
	assert.Equal(t, constant.WizardStepDate, w.Step())
}

func TestWizard_ConfirmRevalidates(t *testing.T) {
	w := schedule.NewWizard(nil, schedule.NewWindow(today, 1, 30))
	w.SetDate("2026-10-25")
	w.SetTimeSlot("morning")
	w.SetZone("callao")
	w.SetAddress("Jr. Callao 100")
	for w.Step() < constant.WizardStepConfirm {
		require.NoError(t, w.Next())
	}

	w.SetAddress("")
	_, err := w.Confirm(func(model.DeliverySchedule) { t.Fatal("apply called with a blank address") })
	assert.Equal(t, []string{constant.ScheduleIncomplete}, scheduleDetails(t, err))
	assert.Equal(t, constant.WizardStepConfirm, w.Step())
}

func TestWizard_EditExisting(t *testing.T) {
	existing := &model.DeliverySchedule{
		ID:       "sched-1",
		Date:     "2026-10-20",
		TimeSlot: "Noche (17:00 - 20:00)",
		ZoneID:   "lima-sur",
		Address:  "Calle Los Pinos 45",
	}
	w := schedule.NewWizard(existing, schedule.NewWindow(today, 1, 30))

	w.Previous()
	assert.Equal(t, constant.WizardStepDate, w.Step())

	for w.Step() < constant.WizardStepConfirm {
		require.NoError(t, w.Next())
	}
	w.Previous()
	assert.Equal(t, constant.WizardStepAddress, w.Step())
	require.NoError(t, w.Next())

	got, err := w.Confirm(func(model.DeliverySchedule) {})
	require.NoError(t, err)
	assert.Equal(t, "sched-1", got.ID)
	assert.Equal(t, "Noche (17:00 - 20:00)", got.TimeSlot)
	assert.Equal(t, "lima-sur", got.ZoneID)
}
