package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/shift-notify-bot/internal/domain"
	"github.com/diegoclair/shift-notify-bot/internal/domain/contract"
	"github.com/diegoclair/shift-notify-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// fixedNow is 2024-03-09 10:00 in Europe/Kyiv
var fixedNow = time.Date(2024, 3, 9, 8, 0, 0, 0, time.UTC)

const fixedDispatchID = "7d3c1f5e-2b0a-4a3e-9d51-0c9b8f6a1e42"

type allMocks struct {
	mockDataManager    *mocks.MockDataManager
	mockDepartmentRepo *mocks.MockDepartmentRepo
	mockEmployeeRepo   *mocks.MockEmployeeRepo
	mockUserRepo       *mocks.MockUserRepo
	mockSlackClient    *mocks.MockSlackClient
	mockInbox          *mocks.MockInbox
	mockMailer         *mocks.MockMailer
	mockEmailLayout    *mocks.MockEmailLayout
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	departmentRepo := mocks.NewMockDepartmentRepo(ctrl)
	dm.EXPECT().Department().Return(departmentRepo).AnyTimes()

	employeeRepo := mocks.NewMockEmployeeRepo(ctrl)
	dm.EXPECT().Employee().Return(employeeRepo).AnyTimes()

	userRepo := mocks.NewMockUserRepo(ctrl)
	dm.EXPECT().User().Return(userRepo).AnyTimes()

	// transactions run against the same mocked repositories
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	m = allMocks{
		mockDataManager:    dm,
		mockDepartmentRepo: departmentRepo,
		mockEmployeeRepo:   employeeRepo,
		mockUserRepo:       userRepo,
		mockSlackClient:    mocks.NewMockSlackClient(ctrl),
		mockInbox:          mocks.NewMockInbox(ctrl),
		mockMailer:         mocks.NewMockMailer(ctrl),
		mockEmailLayout:    mocks.NewMockEmailLayout(ctrl),
	}

	// validate service creation
	instance := NewInstance(Dependencies{
		DataManager: dm,
		SlackClient: m.mockSlackClient,
		Inbox:       m.mockInbox,
		Mailer:      m.mockMailer,
		EmailLayout: m.mockEmailLayout,
	}, Options{})
	require.NotNil(t, instance.Shift)
	require.NotNil(t, instance.Directory)
	require.Equal(t, domain.DeliveryAbort, instance.Shift.policy)

	return
}

func newTestShiftService(m allMocks, policy domain.DeliveryPolicy) *shiftService {
	return &shiftService{
		dm:         m.mockDataManager,
		inbox:      m.mockInbox,
		mailer:     m.mockMailer,
		layout:     m.mockEmailLayout,
		log:        zap.NewNop(),
		fallbackTZ: domain.DefaultTimezone,
		policy:     policy,
		now:        func() time.Time { return fixedNow },
		newID:      func() string { return fixedDispatchID },
	}
}

func newTestDirectoryService(m allMocks) *directoryService {
	return newDirectory(m.mockDataManager, m.mockSlackClient, zap.NewNop())
}
