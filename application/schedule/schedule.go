package schedule

import (
	"context"
	"slices"
	"time"

	"github.com/muhammadheryan/snackstore/application/cart"
	"github.com/muhammadheryan/snackstore/cmd/config"
	"github.com/muhammadheryan/snackstore/constant"
	"github.com/muhammadheryan/snackstore/model"
	"github.com/muhammadheryan/snackstore/utils/errors"
	"github.com/muhammadheryan/snackstore/utils/logger"
	"go.uber.org/zap"
)

type SchedulerApp interface {
	TimeSlots() []model.TimeSlot
	Zones() []model.DeliveryZone
	AvailableDates(now time.Time) []string
	Options() model.ScheduleOptionsResponse
	Schedule(ctx context.Context, userID uint64, req *model.ScheduleRequest) (*model.DeliverySchedule, error)
	ClearSchedule(ctx context.Context, userID uint64) error
}

type schedulerAppImpl struct {
	config config.CartConfig
	carts  cart.Carts
	now    func() time.Time
}

func NewSchedulerApp(cfg config.CartConfig, carts cart.Carts) SchedulerApp {
	return &schedulerAppImpl{config: cfg, carts: carts, now: time.Now}
}

func (s *schedulerAppImpl) TimeSlots() []model.TimeSlot {
	return slices.Clone(timeSlots)
}

func (s *schedulerAppImpl) Zones() []model.DeliveryZone {
	return slices.Clone(deliveryZones)
}

func (s *schedulerAppImpl) AvailableDates(now time.Time) []string {
	return s.window(now).Dates()
}

func (s *schedulerAppImpl) Options() model.ScheduleOptionsResponse {
	return model.ScheduleOptionsResponse{
		Dates:     s.AvailableDates(s.now()),
		TimeSlots: s.TimeSlots(),
		Zones:     s.Zones(),
	}
}

// Schedule drives a wizard through every step with the request's fields and
// stores the confirmed schedule on the merchant's cart. The first failing step's error is returned.
func (s *schedulerAppImpl) Schedule(ctx context.Context, userID uint64, req *model.ScheduleRequest) (*model.DeliverySchedule, error) {
	cartApp, err := s.carts.Get(ctx, userID)
	if err != nil {
		logger.Error("[Schedule] err carts.Get", zap.Uint64("user_id", userID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	w := NewWizard(cartApp.DeliverySchedule(), s.window(s.now()))
	w.SetDate(req.Date)
	w.SetTimeSlot(req.TimeSlotID)
	w.SetZone(req.ZoneID)
	w.SetAddress(req.Address)
	w.SetNotes(req.Notes)

	for w.Step() < constant.WizardStepConfirm {
		if err := w.Next(); err != nil {
			logger.Info("[Schedule] step rejected", zap.Int("step", w.Step()), zap.String("error", err.Error()))
			return nil, err
		}
	}

	schedule, err := w.Confirm(func(sc model.DeliverySchedule) {
		cartApp.SetDeliverySchedule(ctx, sc)
	})
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (s *schedulerAppImpl) ClearSchedule(ctx context.Context, userID uint64) error {
	cartApp, err := s.carts.Get(ctx, userID)
	if err != nil {
		logger.Error("[ClearSchedule] err carts.Get", zap.Uint64("user_id", userID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	cartApp.ClearDeliverySchedule(ctx)
	return nil
}

func (s *schedulerAppImpl) window(now time.Time) Window {
	return NewWindow(now, s.config.ScheduleWindowStartDay, s.config.ScheduleWindowEndDay)
}
