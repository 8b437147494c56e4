package handlers_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/service"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/tba"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/testutil"
)

func TestTeamList_TestingEvent(t *testing.T) {
	ts := testutil.NewTestServer(t)

	testutil.SeedTeam(t, ts.DB.DB, 254, "testing", true)
	testutil.SeedTeam(t, ts.DB.DB, 2073, "testing", false)

	var teams service.EventTeams
	resp := getJSON(t, ts.APIURL("/teams/?comp=testing"), &teams)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []int{254, 2073}, teams.Teams)
	assert.Equal(t, []int{254}, teams.PitScouted)
}

func TestTeamList_RealEventUsesSchedule(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ts.Schedule.Teams = []tba.Team{
		{TeamNumber: 1678, Nickname: "Citrus Circuits"},
		{TeamNumber: 254, Nickname: "The Cheesy Poofs"},
	}

	testutil.SeedTeam(t, ts.DB.DB, 254, "2025cc", true)

	var teams service.EventTeams
	resp := getJSON(t, ts.APIURL("/teams/?comp=2025cc"), &teams)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []int{254, 1678}, teams.Teams)
	assert.Equal(t, []int{254}, teams.PitScouted)
}

func TestTeamGet_CreatesRow(t *testing.T) {
	ts := testutil.NewTestServer(t)

	var page service.TeamPage
	resp := getJSON(t, ts.APIURL("/teams/2073/?comp=2025cc"), &page)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, page.Team)
	assert.Equal(t, 2073, page.Team.TeamNumber)
	assert.Empty(t, page.MatchRecords)

	team, err := ts.Repos.Team.GetByNumber(context.Background(), 2073, "2025cc")
	require.NoError(t, err)
	assert.False(t, team.PitScoutStatus)
}

func TestTeamUpdatePit(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := postJSON(t, ts.APIURL("/teams/2073/pit?comp=2025cc"), map[string]any{
		"drivetrain":  "swerve",
		"weight":      115,
		"algaePicker": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	team, err := ts.Repos.Team.GetByNumber(context.Background(), 2073, "2025cc")
	require.NoError(t, err)
	assert.Equal(t, "swerve", team.Drivetrain)
	assert.Equal(t, 115, team.Weight)
	assert.True(t, team.AlgaePicker)
	assert.True(t, team.PitScoutStatus)
}

func TestTeamAddHumanPlayer(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := postJSON(t, ts.APIURL("/teams/2073/human-player?comp=2025cc"), map[string]any{
		"matchNumber": 5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	records, err := ts.Repos.HumanPlayer.GetByTeam(context.Background(), 2073, "2025cc")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 5, records[0].MatchNumber)
	assert.Equal(t, "None", records[0].Comment)
}

func TestTeamGetPath(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := postJSON(t, ts.APIURL("/scanner/scans"),
		testutil.NewScanBuilder().WithMatch(3).
			With("autoPath", []any{map[string]any{"x": 1, "y": 2}}).Build())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = getJSON(t, ts.APIURL("/teams/2073/path?comp=2025test&match=3"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"x":1,"y":2}]`, string(body))
}

func TestTeamGetPath_NotFound(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := getJSON(t, ts.APIURL("/teams/2073/path?comp=2025test&match=3"), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTeamStats(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := postJSON(t, ts.APIURL("/scanner/scans"), []map[string]any{
		testutil.NewScanBuilder().WithMatch(1).With("autoL1", 2).Build(),
		testutil.NewScanBuilder().WithMatch(2).With("autoL1", 4).Build(),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats service.TeamStats
	resp = getJSON(t, ts.APIURL("/teams/2073/stats?comp=2025test"), &stats)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, stats.MatchCount)
	assert.Equal(t, 3.0, stats.AutoL1)
}

func TestTeamParams_Invalid(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := getJSON(t, ts.APIURL("/teams/abc/?comp=2025cc"), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = getJSON(t, ts.APIURL("/teams/2073/"), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
