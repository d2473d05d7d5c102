package schedule

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/snackstore/constant"
	"github.com/muhammadheryan/snackstore/model"
	"github.com/muhammadheryan/snackstore/utils/errors"
)

var timeSlots = []model.TimeSlot{
	{ID: "morning", Label: "Mañana (8:00 - 12:00)"},
	{ID: "afternoon", Label: "Tarde (12:00 - 17:00)"},
	{ID: "evening", Label: "Noche (17:00 - 20:00)"},
}

var deliveryZones = []model.DeliveryZone{
	{ID: "lima-centro", Name: "Lima Centro"},
	{ID: "lima-norte", Name: "Lima Norte"},
	{ID: "lima-sur", Name: "Lima Sur"},
	{ID: "lima-este", Name: "Lima Este"},
	{ID: "callao", Name: "Callao"},
	{ID: "provincias", Name: "Provincias"},
}

// Window is the inclusive range of bookable delivery days.
type Window struct {
	First time.Time
	Last  time.Time
}

// NewWindow spans startDay..endDay days after now, truncated to whole days.
func NewWindow(now time.Time, startDay, endDay int) Window {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return Window{
		First: today.AddDate(0, 0, startDay),
		Last:  today.AddDate(0, 0, endDay),
	}
}

func (w Window) Contains(date string) bool {
	d, err := time.ParseInLocation(time.DateOnly, date, w.First.Location())
	if err != nil {
		return false
	}
	return !d.Before(w.First) && !d.After(w.Last)
}

func (w Window) Dates() []string {
	dates := make([]string, 0)
	for d := w.First; !d.After(w.Last); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(time.DateOnly))
	}
	return dates
}

func findSlot(match func(model.TimeSlot) bool) (model.TimeSlot, bool) {
	idx := slices.IndexFunc(timeSlots, match)
	if idx < 0 {
		return model.TimeSlot{}, false
	}
	return timeSlots[idx], true
}

func knownZone(zoneID string) bool {
	return slices.ContainsFunc(deliveryZones, func(z model.DeliveryZone) bool { return z.ID == zoneID })
}

// Wizard walks date, time slot, zone, address and confirmation in order.
// Next refuses to leave a step whose field is missing or invalid.
type Wizard struct {
	step       int
	id         string
	date       string
	timeSlotID string
	zoneID     string
	address    string
	notes      string
	window     Window
}

// NewWizard starts at the first step, pre-filled from an existing schedule when given.
func NewWizard(existing *model.DeliverySchedule, window Window) *Wizard {
	w := &Wizard{step: constant.WizardStepDate, window: window}
	if existing != nil {
		w.id = existing.ID
		w.date = existing.Date
		if slot, ok := findSlot(func(s model.TimeSlot) bool { return s.Label == existing.TimeSlot }); ok {
			w.timeSlotID = slot.ID
		}
		w.zoneID = existing.ZoneID
		w.address = existing.Address
		w.notes = existing.Notes
	}
	return w
}

func (w *Wizard) Step() int { return w.step }

func (w *Wizard) SetDate(date string)       { w.date = date }
func (w *Wizard) SetTimeSlot(slotID string) { w.timeSlotID = slotID }
func (w *Wizard) SetZone(zoneID string)     { w.zoneID = zoneID }
func (w *Wizard) SetAddress(address string) { w.address = address }
func (w *Wizard) SetNotes(notes string)     { w.notes = notes }

func (w *Wizard) Next() error {
	if err := w.validateStep(w.step); err != nil {
		return err
	}
	if w.step < constant.WizardStepConfirm {
		w.step++
	}
	return nil
}

func (w *Wizard) Previous() {
	if w.step > constant.WizardStepDate {
		w.step--
	}
}

func (w *Wizard) validateStep(step int) error {
	switch step {
	case constant.WizardStepDate:
		if w.date == "" {
			return invalidSchedule(constant.ScheduleMissingDate)
		}
		if !w.window.Contains(w.date) {
			return invalidSchedule(fmt.Sprintf(constant.ScheduleDateOutOfWindow,
				w.window.First.Format(time.DateOnly), w.window.Last.Format(time.DateOnly)))
		}
	case constant.WizardStepTimeSlot:
		if _, ok := findSlot(func(s model.TimeSlot) bool { return s.ID == w.timeSlotID }); !ok {
			return invalidSchedule(constant.ScheduleMissingTimeSlot)
		}
	case constant.WizardStepZone:
		if !knownZone(w.zoneID) {
			return invalidSchedule(constant.ScheduleMissingZone)
		}
	case constant.WizardStepAddress:
		if strings.TrimSpace(w.address) == "" {
			return invalidSchedule(constant.ScheduleMissingAddress)
		}
	}
	return nil
}

// Confirm builds the schedule from the last step, hands it to apply and
// rewinds the wizard to the first step.
func (w *Wizard) Confirm(apply func(model.DeliverySchedule)) (model.DeliverySchedule, error) {
	if w.step != constant.WizardStepConfirm {
		return model.DeliverySchedule{}, invalidSchedule(constant.ScheduleIncomplete)
	}
	for step := constant.WizardStepDate; step < constant.WizardStepConfirm; step++ {
		if w.validateStep(step) != nil {
			return model.DeliverySchedule{}, invalidSchedule(constant.ScheduleIncomplete)
		}
	}

	slot, _ := findSlot(func(s model.TimeSlot) bool { return s.ID == w.timeSlotID })
	id := w.id
	if id == "" {
		id = uuid.NewString()
	}
	schedule := model.DeliverySchedule{
		ID:       id,
		Date:     w.date,
		TimeSlot: slot.Label,
		ZoneID:   w.zoneID,
		Address:  strings.TrimSpace(w.address),
		Notes:    strings.TrimSpace(w.notes),
	}
	apply(schedule)
	w.step = constant.WizardStepDate
	return schedule, nil
}

func invalidSchedule(msg string) error {
	return errors.SetCustomErrorWithDetails(constant.ErrInvalidSchedule, []string{msg})
}
