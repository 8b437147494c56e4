package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/domain"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/picklist"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/repository/postgres"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/service"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/testutil"
)

func pickListFixtures(t *testing.T) (*service.PickListService, *testutil.TestDB) {
	t.Helper()

	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	files, err := picklist.NewFileStore(t.TempDir())
	require.NoError(t, err)

	return service.NewPickListService(files, repos.PickList), testDB
}

func sampleTiers() domain.TierLists {
	return domain.TierLists{
		{},
		{254, 1678},
		{2073, 973},
		{8033},
		{9999},
	}
}

func TestPickListService_SaveAndPoll(t *testing.T) {
	svc, _ := pickListFixtures(t)
	ctx := context.Background()

	timestamp, err := svc.Save(ctx, "2025cc", sampleTiers(), false)
	require.NoError(t, err)
	require.Positive(t, timestamp)

	// A stale client gets the full payload.
	result, err := svc.Poll(ctx, "2025cc", timestamp-1)
	require.NoError(t, err)
	assert.Equal(t, service.PollUpdated, result.Status)
	assert.Equal(t, timestamp, result.Timestamp)
	assert.Equal(t, sampleTiers(), result.Data)

	// A current client gets no payload.
	result, err = svc.Poll(ctx, "2025cc", timestamp)
	require.NoError(t, err)
	assert.Equal(t, service.PollNoChange, result.Status)
	assert.Equal(t, timestamp, result.Timestamp)
	assert.Nil(t, result.Data)
}

func TestPickListService_PollNoData(t *testing.T) {
	svc, _ := pickListFixtures(t)

	result, err := svc.Poll(context.Background(), "2025cc", 0)
	require.NoError(t, err)

	assert.Equal(t, service.PollNoData, result.Status)
	assert.Zero(t, result.Timestamp)
}

func TestPickListService_SaveToDB(t *testing.T) {
	svc, testDB := pickListFixtures(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	_, err := svc.Save(ctx, "2025cc", sampleTiers(), true)
	require.NoError(t, err)

	entry, err := repos.PickList.GetByEvent(ctx, "2025cc")
	require.NoError(t, err)
	assert.JSONEq(t, `[254,1678]`, string(entry.FirstPick))
	assert.JSONEq(t, `[]`, string(entry.NoPick))

	// Saving again replaces the row for the same event.
	updated := sampleTiers()
	updated[1] = []int{1323}
	_, err = svc.Save(ctx, "2025cc", updated, true)
	require.NoError(t, err)

	entry, err = repos.PickList.GetByEvent(ctx, "2025cc")
	require.NoError(t, err)
	assert.JSONEq(t, `[1323]`, string(entry.FirstPick))

	var count int64
	require.NoError(t, testDB.DB.Model(&domain.PickListEntry{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestPickListService_SaveFileOnly(t *testing.T) {
	svc, testDB := pickListFixtures(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	_, err := svc.Save(ctx, "2025cc", sampleTiers(), false)
	require.NoError(t, err)

	_, err = repos.PickList.GetByEvent(ctx, "2025cc")
	assert.ErrorIs(t, err, domain.ErrPickListNotFound)
}

func TestPickListService_RejectsWrongTierCount(t *testing.T) {
	svc, _ := pickListFixtures(t)

	_, err := svc.Save(context.Background(), "2025cc", domain.TierLists{{254}}, false)
	assert.ErrorIs(t, err, domain.ErrInvalidTierLists)

	result, pollErr := svc.Poll(context.Background(), "2025cc", 0)
	require.NoError(t, pollErr)
	assert.Equal(t, service.PollNoData, result.Status)
}
