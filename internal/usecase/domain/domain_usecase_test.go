package domain

import (
	"context"
	"testing"
	"time"

	"github.com/GEK100/blocker-management-system-2024-sub001/config"
	"github.com/GEK100/blocker-management-system-2024-sub001/internal/entities"
	"github.com/GEK100/blocker-management-system-2024-sub001/internal/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) CreateBlocker(ctx context.Context, b entities.Blocker) (*entities.Blocker, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Blocker), args.Error(1)
}

func (m *repoMock) UpdateBlockerStatus(ctx context.Context, blockerID string, status entities.BlockerStatus, at time.Time) (*entities.Blocker, error) {
	args := m.Called(ctx, blockerID, status, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Blocker), args.Error(1)
}

func (m *repoMock) GetBlocker(ctx context.Context, blockerID string) (*entities.Blocker, error) {
	args := m.Called(ctx, blockerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Blocker), args.Error(1)
}

func (m *repoMock) ListBlockers(ctx context.Context, filter entities.BlockerFilter) ([]entities.Blocker, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Blocker), args.Error(1)
}

func (m *repoMock) ListActors(ctx context.Context) ([]entities.Actor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Actor), args.Error(1)
}

func (m *repoMock) GetProject(ctx context.Context, projectID string) (*entities.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *repoMock) ListProjects(ctx context.Context) ([]entities.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Project), args.Error(1)
}

func testConfig() config.AnalyticsConfig {
	return config.AnalyticsConfig{
		DefaultWindowDays:           30,
		DefaultTopN:                 10,
		DefaultLongestN:             5,
		VolumeSharePercent:          30,
		VolumeSevereCount:           10,
		SlowResolutionDays:          5,
		SlowResolutionSevereDays:    10,
		UnderperformanceSevereCount: 2,
	}
}

func newTestUsecase(repo *repoMock) *Usecase {
	uc := New(zap.NewNop().Sugar(), context.Background(), repo, time.Second, testConfig())
	uc.now = func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) }
	return uc
}

func TestUsecase_BuildReportDefaultsAndDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)
	now := uc.now()

	done := now.Add(-time.Hour)
	blockers := []entities.Blocker{{
		ID:              "b1",
		Category:        "Electrical",
		Status:          entities.StatusVerifiedComplete,
		CreatedAt:       now.Add(-48 * time.Hour),
		CompletedAt:     &done,
		AssignedActorID: "a1",
		ProjectID:       "p1",
	}}

	repo.On("ListBlockers", mock.Anything, mock.MatchedBy(func(f entities.BlockerFilter) bool {
		return f.ProjectID == "p1" && f.From != nil
	})).Return(blockers, nil)
	repo.On("ListProjects", mock.Anything).Return([]entities.Project{{ID: "p1", Name: "Tower", Location: "Site A"}}, nil)
	repo.On("ListActors", mock.Anything).Return([]entities.Actor{{ID: "a1", DisplayName: "Alice"}}, nil)

	report, err := uc.BuildReport(context.Background(), entities.ReportQuery{ProjectID: "p1"})
	require.NoError(t, err)
	require.Equal(t, 30, report.WindowDays)
	require.Equal(t, 1, report.Total)
	require.Equal(t, "Electrical", report.ByCategory[0].Key)
	require.Equal(t, "Site A", report.ByLocation[0].Key)
	require.Len(t, report.Trend, 30)
	repo.AssertExpectations(t)
}

func TestUsecase_BuildReportRejectsUnknownUnit(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.BuildReport(context.Background(), entities.ReportQuery{TrendUnit: "month"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "ListBlockers", mock.Anything, mock.Anything)
}

func TestUsecase_ActorPerformanceValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.ActorPerformance(context.Background(), "", 0)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestUsecase_ActorPerformanceUnknownActor(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("ListBlockers", mock.Anything, mock.Anything).Return([]entities.Blocker{}, nil)
	repo.On("ListProjects", mock.Anything).Return([]entities.Project{}, nil)
	repo.On("ListActors", mock.Anything).Return([]entities.Actor{}, nil)

	_, err := uc.ActorPerformance(context.Background(), "ghost", 0)
	require.ErrorIs(t, err, entities.ErrActorNotFound)
}

func TestUsecase_CompareTeamUnknownTeam(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("ListBlockers", mock.Anything, mock.Anything).Return([]entities.Blocker{}, nil)
	repo.On("ListProjects", mock.Anything).Return([]entities.Project{}, nil)
	repo.On("ListActors", mock.Anything).Return([]entities.Actor{{ID: "a1", DisplayName: "Alice", TeamID: "t1"}}, nil)

	_, err := uc.CompareTeam(context.Background(), "t9", 0)
	require.ErrorIs(t, err, entities.ErrTeamNotFound)
}

func TestUsecase_CompareTeamMetrics(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)
	now := uc.now()

	done := now.Add(-time.Hour)
	blockers := []entities.Blocker{
		{ID: "b1", Status: entities.StatusVerifiedComplete, CreatedAt: now.Add(-24 * time.Hour), CompletedAt: &done, AssignedActorID: "a1", ProjectID: "p1"},
		{ID: "b2", Status: entities.StatusPending, CreatedAt: now.Add(-24 * time.Hour), AssignedActorID: "a2", ProjectID: "p1"},
	}

	repo.On("ListBlockers", mock.Anything, mock.Anything).Return(blockers, nil)
	repo.On("ListProjects", mock.Anything).Return([]entities.Project{}, nil)
	repo.On("ListActors", mock.Anything).Return([]entities.Actor{
		{ID: "a1", DisplayName: "Alice", TeamID: "t1"},
		{ID: "a2", DisplayName: "Bob", TeamID: "t2"},
	}, nil)

	metrics, err := uc.CompareTeam(context.Background(), "t1", 0)
	require.NoError(t, err)
	require.Len(t, metrics, 3)
	require.Equal(t, "completion_rate", metrics[0].Metric)
	require.Equal(t, entities.DirectionImproving, metrics[0].Direction)
}

func TestUsecase_ReportBlockerValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.ReportBlocker(context.Background(), entities.Blocker{})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateBlocker", mock.Anything, mock.Anything)
}

func TestUsecase_ReportBlockerDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	expected := &entities.Blocker{ID: "b1", ProjectID: "p1", Status: entities.StatusPending}
	repo.On("GetProject", mock.Anything, "p1").Return(&entities.Project{ID: "p1"}, nil)
	repo.On("CreateBlocker", mock.Anything, mock.MatchedBy(func(b entities.Blocker) bool {
		return b.ProjectID == "p1" && !b.CreatedAt.IsZero()
	})).Return(expected, nil)

	b, err := uc.ReportBlocker(context.Background(), entities.Blocker{ProjectID: "p1"})
	require.NoError(t, err)
	require.Equal(t, expected, b)
	repo.AssertExpectations(t)
}

func TestUsecase_ReportBlockerUnknownProject(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("GetProject", mock.Anything, "ghost").Return(nil, entities.ErrProjectNotFound)

	_, err := uc.ReportBlocker(context.Background(), entities.Blocker{ProjectID: "ghost"})
	require.ErrorIs(t, err, entities.ErrProjectNotFound)
}

func TestUsecase_AdvanceBlockerValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.AdvanceBlocker(context.Background(), "", entities.StatusCompleted)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.AdvanceBlocker(context.Background(), "b1", entities.BlockerStatus("done"))
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestUsecase_WeeklyResponse(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)
	now := uc.now()

	createdAt := now.Add(-72 * time.Hour)
	blockers := []entities.Blocker{{
		ID:        "b1",
		Status:    entities.StatusInProgress,
		CreatedAt: createdAt,
		ProjectID: "p1",
		StatusHistory: []entities.StatusChange{
			{Status: entities.StatusAssigned, At: createdAt.Add(2 * time.Hour)},
		},
	}}

	repo.On("ListBlockers", mock.Anything, mock.Anything).Return(blockers, nil)
	repo.On("ListProjects", mock.Anything).Return([]entities.Project{}, nil)
	repo.On("ListActors", mock.Anything).Return([]entities.Actor{}, nil)

	weeks, err := uc.WeeklyResponse(context.Background(), "", 0)
	require.NoError(t, err)
	require.Len(t, weeks, 1)
	require.InDelta(t, 2.0, weeks[0].AvgResponseHours, 1e-9)
}
