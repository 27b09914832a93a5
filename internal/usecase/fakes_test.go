package usecase

import (
	"context"

	"railway-booking/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTestLogger() *zap.Logger {
	return zap.NewNop()
}

// ==================== fake repositories ====================

type fakeTrainRepo struct {
	byID     map[uuid.UUID]*entity.Train
	byNumber map[string]*entity.Train
	byRoute  []*entity.Train
	routeErr error
}

func newFakeTrainRepo(trains ...*entity.Train) *fakeTrainRepo {
	f := &fakeTrainRepo{
		byID:     make(map[uuid.UUID]*entity.Train),
		byNumber: make(map[string]*entity.Train),
	}
	for _, train := range trains {
		f.byID[train.ID] = train
		f.byNumber[train.TrainNumber] = train
		f.byRoute = append(f.byRoute, train)
	}
	return f
}

func (f *fakeTrainRepo) FindByRoute(_ context.Context, _, _ string) ([]*entity.Train, error) {
	if f.routeErr != nil {
		return nil, f.routeErr
	}
	return f.byRoute, nil
}

func (f *fakeTrainRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Train, error) {
	return f.byID[id], nil
}

func (f *fakeTrainRepo) FindByNumber(_ context.Context, number string) (*entity.Train, error) {
	return f.byNumber[number], nil
}

type fakeBookingRepo struct {
	created    []*entity.Booking
	attempts   []string // every PNR the service tried to insert
	createErrs []error  // consumed in order; nil means success
	byPNR      map[string]*entity.Booking
	byUser     []*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{byPNR: make(map[string]*entity.Booking)}
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	f.attempts = append(f.attempts, booking.PNR)
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return err
		}
	}
	f.created = append(f.created, booking)
	f.byPNR[booking.PNR] = booking
	return nil
}

func (f *fakeBookingRepo) FindByPNR(_ context.Context, pnr string) (*entity.Booking, error) {
	return f.byPNR[pnr], nil
}

func (f *fakeBookingRepo) FindByUserID(_ context.Context, _ uuid.UUID) ([]*entity.Booking, error) {
	return f.byUser, nil
}

type fakeStatusRepo struct {
	latest *entity.TrainStatus
	err    error
}

func (f *fakeStatusRepo) FindLatestByTrainID(_ context.Context, _ uuid.UUID) (*entity.TrainStatus, error) {
	return f.latest, f.err
}

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*entity.Profile
}

func (f *fakeProfileRepo) FindByID(_ context.Context, userID uuid.UUID) (*entity.Profile, error) {
	return f.profiles[userID], nil
}

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
	revoked  []string
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	return f.sessions[token], nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	f.revoked = append(f.revoked, token)
	return nil
}
