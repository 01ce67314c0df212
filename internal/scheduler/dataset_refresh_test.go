package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mmisra/sales-dashboard-api/internal/config"
	"github.com/mmisra/sales-dashboard-api/internal/domain"
	"github.com/mmisra/sales-dashboard-api/internal/usecases/dashboarding/mocks"
)

func refreshConfig(enabled bool) *config.Config {
	cfg := &config.Config{}
	cfg.DatasetRefresh.CronSchedule = "*/5 * * * *"
	cfg.DatasetRefresh.Enabled = enabled
	return cfg
}

func TestRefreshDataset(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockDatasetProvider(ctrl)
	provider.EXPECT().Table(gomock.Any()).Return(&domain.SalesTable{}, nil)
	provider.EXPECT().Status().Return(&domain.DatasetStatus{Path: "sales_data.csv"})

	service := NewDatasetRefreshService(provider, refreshConfig(true))

	err := service.RefreshDataset(context.Background())

	require.NoError(t, err)

	status := service.GetStatus()
	assert.Equal(t, false, status["refresh_running"])
	assert.NotZero(t, status["last_refresh_completed_at"])
}

func TestRefreshDataset_LoadErrorIsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockDatasetProvider(ctrl)
	provider.EXPECT().Table(gomock.Any()).Return(nil, assert.AnError)

	service := NewDatasetRefreshService(provider, refreshConfig(true))

	err := service.RefreshDataset(context.Background())

	assert.ErrorIs(t, err, assert.AnError)
}

func TestStart_DisabledByConfiguration(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockDatasetProvider(ctrl)

	service := NewDatasetRefreshService(provider, refreshConfig(false))

	err := service.Start(context.Background())

	require.NoError(t, err)

	status := service.GetStatus()
	assert.Equal(t, false, status["refresh_enabled"])
}

func TestGetStatus_ExposesConfiguredSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockDatasetProvider(ctrl)

	service := NewDatasetRefreshService(provider, refreshConfig(true))

	status := service.GetStatus()

	assert.Equal(t, "*/5 * * * *", status["refresh_cron"])
	assert.Equal(t, true, status["refresh_enabled"])
	assert.Equal(t, false, status["refresh_running"])
}
