package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/domain"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/repository/postgres"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/service"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/testutil"
)

func TestIngestService_Ingest(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ingest := service.NewIngestService(repos.MatchRecord)
	ctx := context.Background()

	processed, err := ingest.Ingest(ctx, []map[string]any{
		testutil.NewScanBuilder().WithTeam(2073).WithMatch(1).Build(),
		testutil.NewScanBuilder().WithTeam(254).WithMatch(1).Build(),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, processed)

	// Team rows are created on first scan.
	team, err := repos.Team.GetByNumber(ctx, 2073, "2025test")
	require.NoError(t, err)
	assert.False(t, team.PitScoutStatus)

	record, err := repos.MatchRecord.GetByMatch(ctx, 2073, "2025test", 1)
	require.NoError(t, err)
	assert.Equal(t, domain.QuantifierQualification, record.Quantifier)
	assert.Equal(t, "Test Scout", record.ScoutName)
	assert.Equal(t, 1, record.AutoL1)
}

func TestIngestService_ResubmitOverwrites(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ingest := service.NewIngestService(repos.MatchRecord)
	ctx := context.Background()

	first := testutil.NewScanBuilder().WithTeam(2073).WithMatch(3).
		With("teleL1", 2).With("comment", "first pass").Build()
	second := testutil.NewScanBuilder().WithTeam(2073).WithMatch(3).
		With("teleL1", 6).With("comment", "rescan after review").Build()

	_, err := ingest.Ingest(ctx, []map[string]any{first})
	require.NoError(t, err)
	_, err = ingest.Ingest(ctx, []map[string]any{second})
	require.NoError(t, err)

	// Exactly one row per (team, comp, match) key, holding the second
	// submission's values.
	var count int64
	require.NoError(t, testDB.DB.Model(&domain.MatchRecord{}).
		Where("team_number = ? AND comp_code = ? AND match_number = ?", 2073, "2025test", 3).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)

	record, err := repos.MatchRecord.GetByMatch(ctx, 2073, "2025test", 3)
	require.NoError(t, err)
	assert.Equal(t, 6, record.TeleL1)
	assert.Equal(t, "rescan after review", record.Comment)
}

func TestIngestService_PartialBatchSkip(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ingest := service.NewIngestService(repos.MatchRecord)
	ctx := context.Background()

	batch := []map[string]any{
		testutil.NewScanBuilder().WithTeam(111).WithMatch(1).Build(),
		testutil.NewScanBuilder().WithMatch(2).Without("teamNumber").Build(),
		testutil.NewScanBuilder().WithTeam(333).WithMatch(3).Build(),
	}

	processed, err := ingest.Ingest(ctx, batch)
	require.NoError(t, err)

	// The unusable middle record is skipped; its siblings still commit.
	assert.Equal(t, 2, processed)

	_, err = repos.MatchRecord.GetByMatch(ctx, 111, "2025test", 1)
	assert.NoError(t, err)
	_, err = repos.MatchRecord.GetByMatch(ctx, 333, "2025test", 3)
	assert.NoError(t, err)
}

func TestIngestService_EmptyAfterSkips(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ingest := service.NewIngestService(repos.MatchRecord)

	processed, err := ingest.Ingest(context.Background(), []map[string]any{
		testutil.NewScanBuilder().Without("teamNumber").Build(),
	})
	require.NoError(t, err)
	assert.Zero(t, processed)
}

func TestIngestService_DoesNotOverwritePitData(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ingest := service.NewIngestService(repos.MatchRecord)
	ctx := context.Background()

	team := testutil.SeedTeam(t, testDB.DB, 2073, "2025test", true)
	team.Drivetrain = "swerve"
	require.NoError(t, testDB.DB.Save(team).Error)

	_, err := ingest.Ingest(ctx, []map[string]any{
		testutil.NewScanBuilder().WithTeam(2073).WithMatch(5).Build(),
	})
	require.NoError(t, err)

	got, err := repos.Team.GetByNumber(ctx, 2073, "2025test")
	require.NoError(t, err)
	assert.Equal(t, "swerve", got.Drivetrain)
	assert.True(t, got.PitScoutStatus)
}

func TestIngestService_ValidateBatch(t *testing.T) {
	ingest := service.NewIngestService(nil)

	failures := ingest.ValidateBatch([]map[string]any{
		testutil.NewScanBuilder().Build(),
		testutil.NewScanBuilder().Without("name").Build(),
		testutil.NewScanBuilder().With("driverRanking", 9).Build(),
	})

	require.Len(t, failures, 2)
	assert.Equal(t, 1, failures[0].Index)
	assert.Contains(t, failures[0].Messages, "Scout name is required")
	assert.Equal(t, 2, failures[1].Index)
	assert.Contains(t, failures[1].Messages, "driverRanking must be between 1 and 5")
}
