// Package tba is a thin client for The Blue Alliance read API, used to pull
// event team lists and match alliances. Scouted data never flows out through
// it; it is read-only schedule context for the strategy views.
package tba

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const DefaultBaseURL = "https://www.thebluealliance.com/api/v3"

type Client struct {
	baseURL string
	authKey string
	client  *http.Client
}

func NewClient(baseURL, authKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		authKey: authKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Team is the subset of TBA's simple team payload the backend cares about.
type Team struct {
	TeamNumber int    `json:"team_number"`
	Nickname   string `json:"nickname"`
}

// MatchAlliances holds the team numbers on each alliance of one match.
type MatchAlliances struct {
	Red  []int `json:"red"`
	Blue []int `json:"blue"`
}

// GetEventTeams returns the teams registered for an event, by number.
func (c *Client) GetEventTeams(ctx context.Context, eventKey string) ([]Team, error) {
	var teams []Team
	if err := c.get(ctx, fmt.Sprintf("/event/%s/teams/simple", eventKey), &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// GetMatch returns the alliances for one match, e.g. matchID "qm12".
func (c *Client) GetMatch(ctx context.Context, eventKey, matchID string) (*MatchAlliances, error) {
	var raw struct {
		Alliances struct {
			Red  struct{ TeamKeys []string `json:"team_keys"` } `json:"red"`
			Blue struct{ TeamKeys []string `json:"team_keys"` } `json:"blue"`
		} `json:"alliances"`
	}
	if err := c.get(ctx, fmt.Sprintf("/match/%s_%s/simple", eventKey, matchID), &raw); err != nil {
		return nil, err
	}

	match := &MatchAlliances{}
	for _, key := range raw.Alliances.Red.TeamKeys {
		match.Red = append(match.Red, teamKeyNumber(key))
	}
	for _, key := range raw.Alliances.Blue.TeamKeys {
		match.Blue = append(match.Blue, teamKeyNumber(key))
	}
	return match, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-TBA-Auth-Key", c.authKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("tba request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tba returned status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse tba response: %w", err)
	}
	return nil
}

// teamKeyNumber strips the "frc" prefix from a TBA team key.
func teamKeyNumber(key string) int {
	n, _ := strconv.Atoi(strings.TrimPrefix(key, "frc"))
	return n
}
