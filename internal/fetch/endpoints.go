package fetch

import (
	"context"
	"fmt"
)

// /leagues-classic/{league_id}/standings/?page_standings={page}
func (c *Client) LeagueStandingsPage(ctx context.Context, leagueID int, page int, force bool) ([]byte, error) {
	return c.FetchRaw(ctx, "standings",
		fmt.Sprintf("/leagues-classic/%d/standings/?page_standings=%d", leagueID, page),
		fmt.Sprintf("league/%d/standings_p%d.json", leagueID, page),
		force,
	)
}

// /entry/{entry_id}/event/{gw}/picks/
func (c *Client) EntryPicks(ctx context.Context, entryID int, gw int, force bool) ([]byte, error) {
	return c.FetchRaw(ctx, "picks",
		fmt.Sprintf("/entry/%d/event/%d/picks/", entryID, gw),
		fmt.Sprintf("entry/%d/gw/%d/picks.json", entryID, gw),
		force,
	)
}

// /entry/{entry_id}/history/
func (c *Client) EntryHistory(ctx context.Context, entryID int, force bool) ([]byte, error) {
	return c.FetchRaw(ctx, "history",
		fmt.Sprintf("/entry/%d/history/", entryID),
		fmt.Sprintf("entry/%d/history.json", entryID),
		force,
	)
}

// /entry/{entry_id}/transfers/
func (c *Client) EntryTransfers(ctx context.Context, entryID int, force bool) ([]byte, error) {
	return c.FetchRaw(ctx, "transfers",
		fmt.Sprintf("/entry/%d/transfers/", entryID),
		fmt.Sprintf("entry/%d/transfers.json", entryID),
		force,
	)
}

// /event/{gw}/live/
func (c *Client) EventLive(ctx context.Context, gw int, force bool) ([]byte, error) {
	return c.FetchRaw(ctx, "live",
		fmt.Sprintf("/event/%d/live/", gw),
		fmt.Sprintf("gw/%d/live.json", gw),
		force,
	)
}

// /bootstrap-static/
func (c *Client) BootstrapStatic(ctx context.Context, force bool) ([]byte, error) {
	return c.FetchRaw(ctx, "bootstrap", "/bootstrap-static/", "bootstrap/bootstrap-static.json", force)
}
