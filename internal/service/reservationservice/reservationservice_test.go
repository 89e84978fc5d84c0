package reservationservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/marinaclub/boatshare/internal/domain"
	"github.com/marinaclub/boatshare/internal/pg"
	"github.com/marinaclub/boatshare/internal/service/quotaservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

// fixedNow keeps day arithmetic deterministic: "today" is 2026-06-10.
var fixedNow = time.Date(2026, time.June, 10, 15, 0, 0, 0, time.UTC)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

type mocks struct {
	reservations *MockReservationRepo
	quotas       *MockQuotaLedger
	users        *MockUserRepo
	boats        *MockBoatRepo
	txManager    *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		reservations: NewMockReservationRepo(ctrl),
		quotas:       NewMockQuotaLedger(ctrl),
		users:        NewMockUserRepo(ctrl),
		boats:        NewMockBoatRepo(ctrl),
		txManager:    pg.NewMockTXManager(ctrl),
	}
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()

	service := New(m.reservations, m.quotas, m.users, m.boats, m.txManager)
	service.now = func() time.Time { return fixedNow }
	service.loc = time.UTC
	return service, m
}

func TestInitialStatus(t *testing.T) {
	tests := []struct {
		name      string
		kind      domain.Kind
		isPrimary bool
		days      int
		expected  domain.Status
	}{
		{name: "Contingency confirms immediately", kind: domain.KindContingency, isPrimary: true, days: 0, expected: domain.StatusConfirmed},
		{name: "Contingency confirms even when queued", kind: domain.KindContingency, isPrimary: false, days: 0, expected: domain.StatusConfirmed},
		{name: "Queued reservation stays pending", kind: domain.KindStandard, isPrimary: false, days: 2, expected: domain.StatusPending},
		{name: "Primary inside window is unconfirmed", kind: domain.KindStandard, isPrimary: true, days: 7, expected: domain.StatusUnconfirmed},
		{name: "Primary for today is unconfirmed", kind: domain.KindSubstitution, isPrimary: true, days: 0, expected: domain.StatusUnconfirmed},
		{name: "Primary outside window is pending", kind: domain.KindStandard, isPrimary: true, days: 8, expected: domain.StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, initialStatus(tt.kind, tt.isPrimary, tt.days))
		})
	}
}

func TestCreate(t *testing.T) {
	user := &domain.User{ID: "user-a", StandardQuota: 1}
	boat := &domain.Boat{ID: "boat-1", Name: "Vento Sul"}

	tests := []struct {
		name           string
		date           time.Time
		kind           domain.Kind
		prepareMock    func(m *mocks)
		expectedStatus domain.Status
		expectedErr    error
	}{
		{
			name: "Primary more than seven days out starts pending",
			date: day("2026-06-30"),
			kind: domain.KindStandard,
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByID(gomock.Any(), "user-a").Return(user, nil)
				m.boats.EXPECT().FindByID(gomock.Any(), "boat-1").Return(boat, nil)
				m.quotas.EXPECT().Deduct(gomock.Any(), "user-a", domain.KindStandard).Return(nil)
				m.reservations.EXPECT().ListByBoatAndDate(gomock.Any(), "boat-1", day("2026-06-30")).Return(nil, nil)
				m.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: domain.StatusPending,
		},
		{
			name: "Primary inside the window starts unconfirmed",
			date: day("2026-06-14"),
			kind: domain.KindStandard,
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByID(gomock.Any(), "user-a").Return(user, nil)
				m.boats.EXPECT().FindByID(gomock.Any(), "boat-1").Return(boat, nil)
				m.quotas.EXPECT().Deduct(gomock.Any(), "user-a", domain.KindStandard).Return(nil)
				m.reservations.EXPECT().ListByBoatAndDate(gomock.Any(), "boat-1", day("2026-06-14")).Return(nil, nil)
				m.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: domain.StatusUnconfirmed,
		},
		{
			name: "Behind an existing primary starts pending even inside the window",
			date: day("2026-06-14"),
			kind: domain.KindStandard,
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByID(gomock.Any(), "user-a").Return(user, nil)
				m.boats.EXPECT().FindByID(gomock.Any(), "boat-1").Return(boat, nil)
				m.quotas.EXPECT().Deduct(gomock.Any(), "user-a", domain.KindStandard).Return(nil)
				m.reservations.EXPECT().ListByBoatAndDate(gomock.Any(), "boat-1", day("2026-06-14")).
					Return([]domain.Reservation{{ID: "existing", Status: domain.StatusUnconfirmed}}, nil)
				m.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: domain.StatusPending,
		},
		{
			name: "Contingency for today confirms immediately",
			date: day("2026-06-10"),
			kind: domain.KindContingency,
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByID(gomock.Any(), "user-a").Return(user, nil)
				m.boats.EXPECT().FindByID(gomock.Any(), "boat-1").Return(boat, nil)
				m.quotas.EXPECT().Deduct(gomock.Any(), "user-a", domain.KindContingency).Return(nil)
				m.reservations.EXPECT().ListByBoatAndDate(gomock.Any(), "boat-1", day("2026-06-10")).Return(nil, nil)
				m.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: domain.StatusConfirmed,
		},
		{
			name: "Insufficient quota rolls back, nothing persisted",
			date: day("2026-06-30"),
			kind: domain.KindStandard,
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByID(gomock.Any(), "user-a").Return(user, nil)
				m.boats.EXPECT().FindByID(gomock.Any(), "boat-1").Return(boat, nil)
				m.quotas.EXPECT().Deduct(gomock.Any(), "user-a", domain.KindStandard).
					Return(quotaservice.ErrInsufficientQuota)
			},
			expectedErr: quotaservice.ErrInsufficientQuota,
		},
		{
			name:        "Past date rejected before any side effect",
			date:        day("2026-06-09"),
			kind:        domain.KindStandard,
			prepareMock: func(m *mocks) {},
			expectedErr: ErrDateInPast,
		},
		{
			name: "Unknown user",
			date: day("2026-06-30"),
			kind: domain.KindStandard,
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByID(gomock.Any(), "user-a").Return(nil, nil)
			},
			expectedErr: ErrUserNotFound,
		},
		{
			name: "Unknown boat",
			date: day("2026-06-30"),
			kind: domain.KindStandard,
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByID(gomock.Any(), "user-a").Return(user, nil)
				m.boats.EXPECT().FindByID(gomock.Any(), "boat-1").Return(nil, nil)
			},
			expectedErr: ErrBoatNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			reservation, err := service.Create(context.Background(), "user-a", "boat-1", tt.date, tt.kind, "")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, reservation)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, reservation.ID)
			assert.Equal(t, tt.expectedStatus, reservation.Status)
			assert.Equal(t, tt.kind, reservation.Kind)
		})
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name        string
		callerID    string
		isAdmin     bool
		prepareMock func(m *mocks)
		expectedErr error
	}{
		{
			name:     "Owner confirms an unconfirmed reservation",
			callerID: "user-a",
			prepareMock: func(m *mocks) {
				m.reservations.EXPECT().FindByID(gomock.Any(), "res-1").
					Return(&domain.Reservation{ID: "res-1", UserID: "user-a", Status: domain.StatusUnconfirmed}, nil)
				m.reservations.EXPECT().UpdateStatus(gomock.Any(), "res-1", domain.StatusUnconfirmed, domain.StatusConfirmed).Return(true, nil)
			},
		},
		{
			name:     "Admin can confirm on behalf of the owner",
			callerID: "admin-1",
			isAdmin:  true,
			prepareMock: func(m *mocks) {
				m.reservations.EXPECT().FindByID(gomock.Any(), "res-1").
					Return(&domain.Reservation{ID: "res-1", UserID: "user-a", Status: domain.StatusUnconfirmed}, nil)
				m.reservations.EXPECT().UpdateStatus(gomock.Any(), "res-1", domain.StatusUnconfirmed, domain.StatusConfirmed).Return(true, nil)
			},
		},
		{
			name:     "Reservation archived between read and write stays archived",
			callerID: "user-a",
			prepareMock: func(m *mocks) {
				// The read sees Unconfirmed but the sweep moves the row to
				// Legacy before the write lands; the compare-and-set loses
				// the claim and nothing is overwritten.
				m.reservations.EXPECT().FindByID(gomock.Any(), "res-1").
					Return(&domain.Reservation{ID: "res-1", UserID: "user-a", Status: domain.StatusUnconfirmed}, nil)
				m.reservations.EXPECT().UpdateStatus(gomock.Any(), "res-1", domain.StatusUnconfirmed, domain.StatusConfirmed).Return(false, nil)
			},
			expectedErr: ErrNotUnconfirmed,
		},
		{
			name:     "Unknown reservation",
			callerID: "user-a",
			prepareMock: func(m *mocks) {
				m.reservations.EXPECT().FindByID(gomock.Any(), "res-1").Return(nil, nil)
			},
			expectedErr: ErrNotFound,
		},
		{
			name:     "Another member cannot confirm",
			callerID: "user-b",
			prepareMock: func(m *mocks) {
				m.reservations.EXPECT().FindByID(gomock.Any(), "res-1").
					Return(&domain.Reservation{ID: "res-1", UserID: "user-a", Status: domain.StatusUnconfirmed}, nil)
			},
			expectedErr: ErrForbidden,
		},
		{
			name:     "Pending reservation cannot be confirmed",
			callerID: "user-a",
			prepareMock: func(m *mocks) {
				m.reservations.EXPECT().FindByID(gomock.Any(), "res-1").
					Return(&domain.Reservation{ID: "res-1", UserID: "user-a", Status: domain.StatusPending}, nil)
			},
			expectedErr: ErrNotUnconfirmed,
		},
		{
			name:     "Confirming twice is rejected",
			callerID: "user-a",
			prepareMock: func(m *mocks) {
				m.reservations.EXPECT().FindByID(gomock.Any(), "res-1").
					Return(&domain.Reservation{ID: "res-1", UserID: "user-a", Status: domain.StatusConfirmed}, nil)
			},
			expectedErr: ErrNotUnconfirmed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			reservation, err := service.Confirm(context.Background(), "res-1", tt.callerID, tt.isAdmin)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.StatusConfirmed, reservation.Status)
		})
	}
}

func TestDelete(t *testing.T) {
	pendingPrimary := &domain.Reservation{
		ID: "res-a", UserID: "user-a", BoatID: "boat-1",
		Date: day("2026-06-14"), Kind: domain.KindStandard, Status: domain.StatusPending,
	}

	tests := []struct {
		name        string
		callerID    string
		isAdmin     bool
		prepareMock func(m *mocks)
		expectedErr error
	}{
		{
			name:     "Deleting the primary promotes the next in queue inside the window",
			callerID: "user-a",
			prepareMock: func(m *mocks) {
				m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), "res-a").Return(pendingPrimary, nil)
				m.quotas.EXPECT().Restore(gomock.Any(), "user-a", domain.KindStandard).Return(nil)
				m.reservations.EXPECT().Delete(gomock.Any(), "res-a").Return(nil)
				m.reservations.EXPECT().ListByBoatAndDate(gomock.Any(), "boat-1", day("2026-06-14")).
					Return([]domain.Reservation{{ID: "res-b", UserID: "user-b", Date: day("2026-06-14"), Status: domain.StatusPending}}, nil)
				m.reservations.EXPECT().UpdateStatus(gomock.Any(), "res-b", domain.StatusPending, domain.StatusUnconfirmed).Return(true, nil)
			},
		},
		{
			name:     "New primary outside the window stays pending",
			callerID: "user-a",
			prepareMock: func(m *mocks) {
				outside := &domain.Reservation{
					ID: "res-a", UserID: "user-a", BoatID: "boat-1",
					Date: day("2026-06-30"), Kind: domain.KindStandard, Status: domain.StatusPending,
				}
				m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), "res-a").Return(outside, nil)
				m.quotas.EXPECT().Restore(gomock.Any(), "user-a", domain.KindStandard).Return(nil)
				m.reservations.EXPECT().Delete(gomock.Any(), "res-a").Return(nil)
				m.reservations.EXPECT().ListByBoatAndDate(gomock.Any(), "boat-1", day("2026-06-30")).
					Return([]domain.Reservation{{ID: "res-b", UserID: "user-b", Date: day("2026-06-30"), Status: domain.StatusPending}}, nil)
			},
		},
		{
			name:     "Quota is not restored twice",
			callerID: "user-a",
			prepareMock: func(m *mocks) {
				restored := &domain.Reservation{
					ID: "res-a", UserID: "user-a", BoatID: "boat-1",
					Date: day("2026-06-14"), Kind: domain.KindStandard,
					Status: domain.StatusCancelled, QuotaRestored: true,
				}
				m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), "res-a").Return(restored, nil)
				m.reservations.EXPECT().Delete(gomock.Any(), "res-a").Return(nil)
				m.reservations.EXPECT().ListByBoatAndDate(gomock.Any(), "boat-1", day("2026-06-14")).Return(nil, nil)
			},
		},
		{
			name:     "Confirmed reservations cannot be deleted",
			callerID: "user-a",
			prepareMock: func(m *mocks) {
				confirmed := &domain.Reservation{ID: "res-a", UserID: "user-a", Status: domain.StatusConfirmed}
				m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), "res-a").Return(confirmed, nil)
			},
			expectedErr: ErrCannotDeleteConfirmed,
		},
		{
			name:     "Legacy reservations are immutable",
			callerID: "user-a",
			prepareMock: func(m *mocks) {
				legacy := &domain.Reservation{ID: "res-a", UserID: "user-a", Status: domain.StatusLegacy}
				m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), "res-a").Return(legacy, nil)
			},
			expectedErr: ErrCannotDeleteLegacy,
		},
		{
			name:     "Unknown reservation",
			callerID: "user-a",
			prepareMock: func(m *mocks) {
				m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), "res-a").Return(nil, nil)
			},
			expectedErr: ErrNotFound,
		},
		{
			name:     "Another member cannot delete",
			callerID: "user-b",
			prepareMock: func(m *mocks) {
				m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), "res-a").Return(pendingPrimary, nil)
			},
			expectedErr: ErrForbidden,
		},
		{
			name:     "Admin can delete another member's reservation",
			callerID: "admin-1",
			isAdmin:  true,
			prepareMock: func(m *mocks) {
				m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), "res-a").Return(pendingPrimary, nil)
				m.quotas.EXPECT().Restore(gomock.Any(), "user-a", domain.KindStandard).Return(nil)
				m.reservations.EXPECT().Delete(gomock.Any(), "res-a").Return(nil)
				m.reservations.EXPECT().ListByBoatAndDate(gomock.Any(), "boat-1", day("2026-06-14")).Return(nil, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			err := service.Delete(context.Background(), "res-a", tt.callerID, tt.isAdmin)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCancel(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(m *mocks)
		expectedErr error
	}{
		{
			name: "Cancels a confirmed reservation and promotes the queue",
			prepareMock: func(m *mocks) {
				confirmed := &domain.Reservation{
					ID: "res-a", UserID: "user-a", BoatID: "boat-1",
					Date: day("2026-06-12"), Kind: domain.KindStandard, Status: domain.StatusConfirmed,
				}
				m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), "res-a").Return(confirmed, nil)
				m.reservations.EXPECT().MarkRestored(gomock.Any(), "res-a").Return(true, nil)
				m.quotas.EXPECT().Restore(gomock.Any(), "user-a", domain.KindStandard).Return(nil)
				m.reservations.EXPECT().UpdateStatus(gomock.Any(), "res-a", domain.StatusConfirmed, domain.StatusCancelled).Return(true, nil)
				m.reservations.EXPECT().ListByBoatAndDate(gomock.Any(), "boat-1", day("2026-06-12")).
					Return([]domain.Reservation{{ID: "res-b", Date: day("2026-06-12"), Status: domain.StatusPending}}, nil)
				m.reservations.EXPECT().UpdateStatus(gomock.Any(), "res-b", domain.StatusPending, domain.StatusUnconfirmed).Return(true, nil)
			},
		},
		{
			name: "Lost restore claim skips the ledger",
			prepareMock: func(m *mocks) {
				confirmed := &domain.Reservation{
					ID: "res-a", UserID: "user-a", BoatID: "boat-1",
					Date: day("2026-06-12"), Kind: domain.KindStandard, Status: domain.StatusConfirmed,
				}
				m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), "res-a").Return(confirmed, nil)
				m.reservations.EXPECT().MarkRestored(gomock.Any(), "res-a").Return(false, nil)
				m.reservations.EXPECT().UpdateStatus(gomock.Any(), "res-a", domain.StatusConfirmed, domain.StatusCancelled).Return(true, nil)
				m.reservations.EXPECT().ListByBoatAndDate(gomock.Any(), "boat-1", day("2026-06-12")).Return(nil, nil)
			},
		},
		{
			name: "Cancelling a terminal reservation is rejected",
			prepareMock: func(m *mocks) {
				m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), "res-a").
					Return(&domain.Reservation{ID: "res-a", Status: domain.StatusLegacy}, nil)
			},
			expectedErr: ErrAlreadyFinalized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			err := service.Cancel(context.Background(), "res-a")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRunArchivalSweep(t *testing.T) {
	t.Run("Archives expired reservations and restores quota once each", func(t *testing.T) {
		service, m := NewMock(t)

		expired := []domain.Reservation{
			{ID: "old-1", UserID: "user-a", Kind: domain.KindStandard, Date: day("2026-06-01"), Status: domain.StatusConfirmed},
			{ID: "old-2", UserID: "user-b", Kind: domain.KindContingency, Date: day("2026-06-05"), Status: domain.StatusPending},
		}
		m.reservations.EXPECT().FindExpired(gomock.Any(), day("2026-06-10")).Return(expired, nil)
		m.reservations.EXPECT().Archive(gomock.Any(), "old-1").Return(true, nil)
		m.quotas.EXPECT().Restore(gomock.Any(), "user-a", domain.KindStandard).Return(nil)
		m.reservations.EXPECT().Archive(gomock.Any(), "old-2").Return(true, nil)
		m.quotas.EXPECT().Restore(gomock.Any(), "user-b", domain.KindContingency).Return(nil)
		m.reservations.EXPECT().ListActiveFrom(gomock.Any(), day("2026-06-10")).Return(nil, nil)

		count, err := service.RunArchivalSweep(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("Promotes only the primary reservation inside the window", func(t *testing.T) {
		service, m := NewMock(t)

		m.reservations.EXPECT().FindExpired(gomock.Any(), day("2026-06-10")).Return(nil, nil)
		active := []domain.Reservation{
			// boat-1 / 06-12: pending primary inside window, queued stays put
			{ID: "p-1", BoatID: "boat-1", Date: day("2026-06-12"), Status: domain.StatusPending},
			{ID: "q-1", BoatID: "boat-1", Date: day("2026-06-12"), Status: domain.StatusPending},
			// boat-1 / 06-30: outside window
			{ID: "p-2", BoatID: "boat-1", Date: day("2026-06-30"), Status: domain.StatusPending},
			// boat-2 / 06-12: already unconfirmed
			{ID: "p-3", BoatID: "boat-2", Date: day("2026-06-12"), Status: domain.StatusUnconfirmed},
		}
		m.reservations.EXPECT().ListActiveFrom(gomock.Any(), day("2026-06-10")).Return(active, nil)
		m.reservations.EXPECT().UpdateStatus(gomock.Any(), "p-1", domain.StatusPending, domain.StatusUnconfirmed).Return(true, nil)

		count, err := service.RunArchivalSweep(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Promotion lost to a concurrent transition is not counted", func(t *testing.T) {
		service, m := NewMock(t)

		m.reservations.EXPECT().FindExpired(gomock.Any(), day("2026-06-10")).Return(nil, nil)
		active := []domain.Reservation{
			{ID: "p-1", BoatID: "boat-1", Date: day("2026-06-12"), Status: domain.StatusPending},
		}
		m.reservations.EXPECT().ListActiveFrom(gomock.Any(), day("2026-06-10")).Return(active, nil)
		// Cancelled between the list read and the write: zero rows affected.
		m.reservations.EXPECT().UpdateStatus(gomock.Any(), "p-1", domain.StatusPending, domain.StatusUnconfirmed).Return(false, nil)

		count, err := service.RunArchivalSweep(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("A failing record is skipped, the rest of the batch continues", func(t *testing.T) {
		service, m := NewMock(t)

		expired := []domain.Reservation{
			{ID: "old-1", UserID: "user-a", Kind: domain.KindStandard, Date: day("2026-06-01"), Status: domain.StatusPending},
			{ID: "old-2", UserID: "user-b", Kind: domain.KindStandard, Date: day("2026-06-02"), Status: domain.StatusPending},
		}
		m.reservations.EXPECT().FindExpired(gomock.Any(), day("2026-06-10")).Return(expired, nil)
		m.reservations.EXPECT().Archive(gomock.Any(), "old-1").Return(false, errors.New("deadlock"))
		m.reservations.EXPECT().Archive(gomock.Any(), "old-2").Return(true, nil)
		m.quotas.EXPECT().Restore(gomock.Any(), "user-b", domain.KindStandard).Return(nil)
		m.reservations.EXPECT().ListActiveFrom(gomock.Any(), day("2026-06-10")).Return(nil, nil)

		count, err := service.RunArchivalSweep(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Second immediate run applies no further transitions", func(t *testing.T) {
		service, m := NewMock(t)

		// Everything already archived or promoted: the claim guard returns
		// false and no promotable rows remain.
		expired := []domain.Reservation{
			{ID: "old-1", UserID: "user-a", Kind: domain.KindStandard, Date: day("2026-06-01"), Status: domain.StatusPending},
		}
		m.reservations.EXPECT().FindExpired(gomock.Any(), day("2026-06-10")).Return(expired, nil)
		m.reservations.EXPECT().Archive(gomock.Any(), "old-1").Return(false, nil)
		active := []domain.Reservation{
			{ID: "p-1", BoatID: "boat-1", Date: day("2026-06-12"), Status: domain.StatusUnconfirmed},
		}
		m.reservations.EXPECT().ListActiveFrom(gomock.Any(), day("2026-06-10")).Return(active, nil)

		count, err := service.RunArchivalSweep(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestDaysUntil(t *testing.T) {
	service, _ := NewMock(t)

	assert.Equal(t, 0, service.daysUntil(day("2026-06-10")))
	assert.Equal(t, 7, service.daysUntil(day("2026-06-17")))
	assert.Equal(t, 8, service.daysUntil(day("2026-06-18")))
	assert.Equal(t, -1, service.daysUntil(day("2026-06-09")))
}
