package schema

import (
	"fmt"
	"strings"
)

// SeedRow is one enumerant of a lookup table. IDs are part of the external
// interface: foreign keys elsewhere hardcode them, so they never change and
// rows are never deleted, only soft-disabled.
type SeedRow struct {
	ID           int
	Name         string
	Description  string
	DisplayOrder int
}

// LookupSeeds holds the seed enumerants of every lookup table.
var LookupSeeds = map[string][]SeedRow{
	"event_statuses": {
		{1, "Active", "Event is actively accepting attendees", 1},
		{2, "Full", "Event has reached its attendee limit", 2},
		{3, "Canceled", "Event was canceled", 3},
		{4, "Complete", "Event took place and is closed", 4},
	},
	"event_types": {
		{1, "Park Cleanup", "", 1},
		{2, "School Cleanup", "", 2},
		{3, "Neighborhood Cleanup", "", 3},
		{4, "Beach Cleanup", "", 4},
		{5, "Highway Cleanup", "", 5},
		{6, "Waterway Cleanup", "", 6},
		{7, "Vacant Lot Cleanup", "", 7},
		{8, "Trail Cleanup", "", 8},
		{9, "Other", "", 9},
	},
	"event_visibilities": {
		{1, "Public", "Visible to everyone", 1},
		{2, "Private", "Visible only to invitees", 2},
		{3, "TeamOnly", "Visible to members of the owning team", 3},
	},
	"partner_statuses": {
		{1, "Active", "", 1},
		{2, "Inactive", "", 2},
	},
	"partner_types": {
		{1, "Community", "", 1},
		{2, "Business", "", 2},
		{3, "Government", "", 3},
	},
	"invitation_statuses": {
		{1, "Pending", "", 1},
		{2, "Accepted", "", 2},
		{3, "Declined", "", 3},
		{4, "Canceled", "", 4},
	},
	"team_join_request_statuses": {
		{1, "Pending", "", 1},
		{2, "Approved", "", 2},
		{3, "Rejected", "", 3},
	},
	"team_adoption_statuses": {
		{1, "Pending", "", 1},
		{2, "Approved", "", 2},
		{3, "Rejected", "", 3},
		{4, "Active", "", 4},
	},
	"review_statuses": {
		{1, "Pending", "", 1},
		{2, "Approved", "", 2},
		{3, "Rejected", "", 3},
	},
	"batch_statuses": {
		{1, "Queued", "", 1},
		{2, "Processing", "", 2},
		{3, "Completed", "", 3},
		{4, "Failed", "", 4},
	},
	"moderation_statuses": {
		{1, "None", "No moderation activity", 1},
		{2, "InReview", "Awaiting a moderator decision", 2},
		{3, "Approved", "", 3},
		{4, "Rejected", "", 4},
	},
	"litter_report_statuses": {
		{1, "New", "", 1},
		{2, "Assigned", "", 2},
		{3, "Cleaned", "", 3},
		{4, "Canceled", "", 4},
	},
	"pipeline_stages": {
		{1, "Identified", "", 1},
		{2, "Contacted", "", 2},
		{3, "Engaged", "", 3},
		{4, "Committed", "", 4},
		{5, "Closed", "", 5},
	},
	"weight_units": {
		{1, "Pounds", "", 1},
		{2, "Kilograms", "", 2},
	},
	"achievement_types": {
		{1, "First Event", "Attended a first cleanup event", 1},
		{2, "Five Events", "Attended five cleanup events", 2},
		{3, "Twenty Five Events", "Attended twenty five cleanup events", 3},
		{4, "First Team", "Joined a first team", 4},
		{5, "First Adoption", "Part of a team with an active adoption", 5},
		{6, "Hundred Bags", "Collected one hundred bags of litter", 6},
	},
	"newsletter_statuses": {
		{1, "Draft", "", 1},
		{2, "Scheduled", "", 2},
		{3, "Sent", "", 3},
	},
	"waiver_duration_types": {
		{1, "Indefinite", "Acceptance never expires", 1},
		{2, "Annual", "Acceptance expires one year after signing", 2},
		{3, "Days", "Acceptance expires a fixed number of days after signing", 3},
	},
}

// SeedStatements returns idempotent INSERT statements for every lookup
// table, in LookupTableNames order so reseeding is deterministic.
func SeedStatements() []string {
	statements := make([]string, 0, len(LookupTableNames))
	for _, table := range LookupTableNames {
		rows := LookupSeeds[table]
		if len(rows) == 0 {
			continue
		}
		values := make([]string, 0, len(rows))
		for _, row := range rows {
			values = append(values, fmt.Sprintf("(%d, %s, %s, %d, TRUE)",
				row.ID, quoteLiteral(row.Name), quoteLiteral(row.Description), row.DisplayOrder))
		}
		statements = append(statements, fmt.Sprintf(
			"INSERT INTO %s (id, name, description, display_order, is_active) VALUES %s ON CONFLICT (id) DO NOTHING",
			table, strings.Join(values, ", ")))
	}
	return statements
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
