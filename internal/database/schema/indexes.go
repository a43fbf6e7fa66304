package schema

// Index pairs an index statement with the table owning it, so migrations can
// select the indexes of the tables they create. Dropping a table drops its
// indexes; no separate drop statements are needed.
type Index struct {
	Table     string
	Statement string
}

// Indexes contains every unique and secondary index beyond the primary keys
// declared in tables.go.
//
// The partial unique indexes are deliberate: a team join request pair is
// unique only while a request is outstanding, and a team holds at most one
// live application per area, so resolved rows never block a reapplication.
var Indexes = []Index{
	// identity
	{"users", `CREATE UNIQUE INDEX IF NOT EXISTS ux_users_user_name ON users (user_name)`},
	{"users", `CREATE UNIQUE INDEX IF NOT EXISTS ux_users_email ON users (email)`},

	// organization
	{"teams", `CREATE UNIQUE INDEX IF NOT EXISTS ux_teams_name ON teams (name)`},
	{"team_join_requests", `CREATE UNIQUE INDEX IF NOT EXISTS ux_team_join_requests_pending
		ON team_join_requests (team_id, user_id) WHERE status_id = 1`},
	{"partner_admin_invitations", `CREATE INDEX IF NOT EXISTS ix_partner_admin_invitations_email
		ON partner_admin_invitations (email)`},

	// events
	{"events", `CREATE INDEX IF NOT EXISTS ix_events_status ON events (event_status_id)`},
	{"events", `CREATE INDEX IF NOT EXISTS ix_events_date ON events (event_date)`},
	{"event_attendees", `CREATE INDEX IF NOT EXISTS ix_event_attendees_user ON event_attendees (user_id)`},
	{"event_attendee_metrics", `CREATE UNIQUE INDEX IF NOT EXISTS ux_event_attendee_metrics_event_user
		ON event_attendee_metrics (event_id, user_id)`},
	{"event_attendee_routes", `CREATE UNIQUE INDEX IF NOT EXISTS ux_event_attendee_routes_event_user
		ON event_attendee_routes (event_id, user_id)`},
	{"event_attendee_route_points", `CREATE UNIQUE INDEX IF NOT EXISTS ux_event_attendee_route_points_order
		ON event_attendee_route_points (route_id, sort_order)`},

	// adoptions: one live application per (team, area)
	{"team_adoptions", `CREATE UNIQUE INDEX IF NOT EXISTS ux_team_adoptions_outstanding
		ON team_adoptions (team_id, adoptable_area_id) WHERE status_id IN (1, 2, 4)`},

	// area generation pipeline
	{"staged_adoptable_areas", `CREATE INDEX IF NOT EXISTS ix_staged_adoptable_areas_batch_review
		ON staged_adoptable_areas (batch_id, review_status_id)`},

	// waivers
	{"waiver_versions", `CREATE UNIQUE INDEX IF NOT EXISTS ux_waiver_versions_name_label
		ON waiver_versions (name, version_label)`},
	{"user_waivers", `CREATE INDEX IF NOT EXISTS ix_user_waivers_user ON user_waivers (user_id)`},
	{"community_waivers", `CREATE UNIQUE INDEX IF NOT EXISTS ux_community_waivers_partner_version
		ON community_waivers (partner_id, waiver_version_id)`},

	// moderation: polymorphic references scan by (photo_id, photo_type)
	{"photo_flags", `CREATE INDEX IF NOT EXISTS ix_photo_flags_photo ON photo_flags (photo_id, photo_type)`},
	{"photo_moderation_logs", `CREATE INDEX IF NOT EXISTS ix_photo_moderation_logs_photo
		ON photo_moderation_logs (photo_id, photo_type)`},

	// litter and outreach
	{"litter_reports", `CREATE INDEX IF NOT EXISTS ix_litter_reports_status
		ON litter_reports (litter_report_status_id)`},
	{"community_prospects", `CREATE INDEX IF NOT EXISTS ix_community_prospects_stage
		ON community_prospects (pipeline_stage_id)`},
	{"email_invites", `CREATE UNIQUE INDEX IF NOT EXISTS ux_email_invites_batch_email
		ON email_invites (batch_id, email)`},
	{"prospect_outreach_emails", `CREATE UNIQUE INDEX IF NOT EXISTS ux_prospect_outreach_emails_step
		ON prospect_outreach_emails (prospect_id, cadence_step)`},
}

// IndexDefinitions returns every index statement in declaration order.
func IndexDefinitions() []string {
	statements := make([]string, 0, len(Indexes))
	for _, idx := range Indexes {
		statements = append(statements, idx.Statement)
	}
	return statements
}

// IndexesFor returns the index statements of the named tables.
func IndexesFor(tables ...string) []string {
	want := toSet(tables)
	var statements []string
	for _, idx := range Indexes {
		if want[idx.Table] {
			statements = append(statements, idx.Statement)
		}
	}
	return statements
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}
