// Package schema defines the database schema.
//
// Table definitions carry columns, primary keys and defaults only.
// Foreign keys live in constraints.go and indexes in indexes.go so the
// delete policy of every relation is declared in one reviewable place.
package schema

// LookupTableNames lists every status/reference table. They all share the
// same enumerant shape and are seeded by SeedStatements with fixed IDs.
var LookupTableNames = []string{
	"event_statuses",
	"event_types",
	"event_visibilities",
	"partner_statuses",
	"partner_types",
	"invitation_statuses",
	"team_join_request_statuses",
	"team_adoption_statuses",
	"review_statuses",
	"batch_statuses",
	"moderation_statuses",
	"litter_report_statuses",
	"pipeline_stages",
	"weight_units",
	"achievement_types",
	"newsletter_statuses",
	"waiver_duration_types",
}

// lookupTableDDL is the shared shape of every lookup table.
const lookupTableDDL = ` (
	id INTEGER PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	description VARCHAR(255),
	display_order INTEGER NOT NULL DEFAULT 0,
	is_active BOOLEAN NOT NULL DEFAULT TRUE
)`

// LookupTableDefinitions returns the CREATE TABLE statements for every
// lookup table.
func LookupTableDefinitions() []string {
	statements := make([]string, 0, len(LookupTableNames))
	for _, name := range LookupTableNames {
		statements = append(statements, "CREATE TABLE IF NOT EXISTS "+name+lookupTableDDL)
	}
	return statements
}

// auditColumnsDDL is the audit envelope carried by every mutable entity.
const auditColumnsDDL = `
	created_by_user_id UUID NOT NULL,
	created_date TIMESTAMP NOT NULL,
	last_updated_by_user_id UUID NOT NULL,
	last_updated_date TIMESTAMP NOT NULL`

// TableDefinitions contains the SQL statements to create the entity tables,
// in creation order. No REFERENCES clauses here; see constraints.go.
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS settings (
		key VARCHAR(255) PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		user_name VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL,
		given_name VARCHAR(100),
		surname VARCHAR(100),
		city VARCHAR(100),
		region VARCHAR(100),
		country VARCHAR(100),
		postal_code VARCHAR(20),
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		prefers_metric BOOLEAN NOT NULL DEFAULT FALSE,
		travel_limit_for_local_events INTEGER NOT NULL DEFAULT 10,
		is_opted_out_of_all_emails BOOLEAN NOT NULL DEFAULT FALSE,
		is_site_admin BOOLEAN NOT NULL DEFAULT FALSE,
		date_agreed_to_privacy_policy TIMESTAMP,
		date_agreed_to_terms_of_service TIMESTAMP,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS partners (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		partner_status_id INTEGER NOT NULL,
		partner_type_id INTEGER NOT NULL,
		website VARCHAR(255),
		public_notes TEXT,
		private_notes TEXT,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS partner_locations (
		id UUID PRIMARY KEY,
		partner_id UUID NOT NULL,
		name VARCHAR(255) NOT NULL,
		street_address VARCHAR(255),
		city VARCHAR(100),
		region VARCHAR(100),
		country VARCHAR(100),
		postal_code VARCHAR(20),
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS partner_contacts (
		id UUID PRIMARY KEY,
		partner_id UUID NOT NULL,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255),
		phone VARCHAR(50),
		notes TEXT,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS partner_documents (
		id UUID PRIMARY KEY,
		partner_id UUID NOT NULL,
		name VARCHAR(255) NOT NULL,
		url VARCHAR(2048) NOT NULL,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS partner_social_media_accounts (
		id UUID PRIMARY KEY,
		partner_id UUID NOT NULL,
		platform VARCHAR(50) NOT NULL,
		account_name VARCHAR(255) NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS partner_photos (
		id UUID PRIMARY KEY,
		partner_id UUID NOT NULL,
		image_url VARCHAR(2048) NOT NULL,
		caption VARCHAR(255),` + moderationColumnsDDL + `,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS partner_admins (
		partner_id UUID NOT NULL,
		user_id UUID NOT NULL,` + auditColumnsDDL + `,
		PRIMARY KEY (partner_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS partner_admin_invitations (
		id UUID PRIMARY KEY,
		partner_id UUID NOT NULL,
		email VARCHAR(255) NOT NULL,
		invitation_status_id INTEGER NOT NULL,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS sponsors (
		id UUID PRIMARY KEY,
		partner_id UUID NOT NULL,
		name VARCHAR(255) NOT NULL,
		website VARCHAR(255),
		is_active BOOLEAN NOT NULL DEFAULT TRUE,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS professional_companies (
		id UUID PRIMARY KEY,
		partner_id UUID NOT NULL,
		name VARCHAR(255) NOT NULL,
		phone VARCHAR(50),
		email VARCHAR(255),
		is_active BOOLEAN NOT NULL DEFAULT TRUE,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS teams (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		is_public BOOLEAN NOT NULL DEFAULT TRUE,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS team_members (
		team_id UUID NOT NULL,
		user_id UUID NOT NULL,
		is_team_lead BOOLEAN NOT NULL DEFAULT FALSE,` + auditColumnsDDL + `,
		PRIMARY KEY (team_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS team_join_requests (
		id UUID PRIMARY KEY,
		team_id UUID NOT NULL,
		user_id UUID NOT NULL,
		status_id INTEGER NOT NULL,
		reviewed_by_user_id UUID,
		reviewed_date TIMESTAMP,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		event_date TIMESTAMP NOT NULL,
		duration_hours INTEGER NOT NULL DEFAULT 2,
		duration_minutes INTEGER NOT NULL DEFAULT 0,
		event_status_id INTEGER NOT NULL,
		event_type_id INTEGER NOT NULL,
		event_visibility_id INTEGER NOT NULL,
		team_id UUID,
		street_address VARCHAR(255),
		city VARCHAR(100),
		region VARCHAR(100),
		country VARCHAR(100),
		postal_code VARCHAR(20),
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		max_number_of_participants INTEGER NOT NULL DEFAULT 0,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS team_events (
		team_id UUID NOT NULL,
		event_id UUID NOT NULL,` + auditColumnsDDL + `,
		PRIMARY KEY (team_id, event_id)
	)`,
	`CREATE TABLE IF NOT EXISTS team_photos (
		id UUID PRIMARY KEY,
		team_id UUID NOT NULL,
		image_url VARCHAR(2048) NOT NULL,
		caption VARCHAR(255),` + moderationColumnsDDL + `,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS event_attendees (
		event_id UUID NOT NULL,
		user_id UUID NOT NULL,
		sign_up_date TIMESTAMP NOT NULL,
		canceled_date TIMESTAMP,` + auditColumnsDDL + `,
		PRIMARY KEY (event_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS event_summaries (
		event_id UUID PRIMARY KEY,
		actual_number_of_attendees INTEGER NOT NULL DEFAULT 0,
		number_of_bags INTEGER NOT NULL DEFAULT 0,
		number_of_buckets INTEGER NOT NULL DEFAULT 0,
		duration_in_minutes INTEGER NOT NULL DEFAULT 0,
		notes TEXT,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS pickup_locations (
		id UUID PRIMARY KEY,
		event_id UUID NOT NULL,
		name VARCHAR(255),
		notes TEXT,
		street_address VARCHAR(255),
		city VARCHAR(100),
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		has_been_submitted BOOLEAN NOT NULL DEFAULT FALSE,
		has_been_picked_up BOOLEAN NOT NULL DEFAULT FALSE,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS event_photos (
		id UUID PRIMARY KEY,
		event_id UUID NOT NULL,
		image_url VARCHAR(2048) NOT NULL,
		caption VARCHAR(255),` + moderationColumnsDDL + `,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS event_attendee_metrics (
		id UUID PRIMARY KEY,
		event_id UUID NOT NULL,
		user_id UUID NOT NULL,
		number_of_bags INTEGER NOT NULL DEFAULT 0,
		weight DOUBLE PRECISION,
		weight_unit_id INTEGER,
		distance_in_meters DOUBLE PRECISION,
		duration_in_minutes INTEGER,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS event_attendee_routes (
		id UUID PRIMARY KEY,
		event_id UUID NOT NULL,
		user_id UUID NOT NULL,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS event_attendee_route_points (
		id UUID PRIMARY KEY,
		route_id UUID NOT NULL,
		sort_order INTEGER NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		recorded_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS litter_reports (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		litter_report_status_id INTEGER NOT NULL,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS litter_images (
		id UUID PRIMARY KEY,
		litter_report_id UUID NOT NULL,
		image_url VARCHAR(2048) NOT NULL,
		street_address VARCHAR(255),
		city VARCHAR(100),
		region VARCHAR(100),
		country VARCHAR(100),
		postal_code VARCHAR(20),
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,` + moderationColumnsDDL + `,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS adoptable_areas (
		id UUID PRIMARY KEY,
		partner_id UUID NOT NULL,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		area_type VARCHAR(50),
		requirements TEXT,
		max_teams INTEGER NOT NULL DEFAULT 1,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS team_adoptions (
		id UUID PRIMARY KEY,
		team_id UUID NOT NULL,
		adoptable_area_id UUID NOT NULL,
		status_id INTEGER NOT NULL,
		rejection_reason TEXT,
		event_count INTEGER NOT NULL DEFAULT 0,
		is_compliant BOOLEAN NOT NULL DEFAULT FALSE,
		last_event_date TIMESTAMP,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS team_adoption_events (
		team_adoption_id UUID NOT NULL,
		event_id UUID NOT NULL,
		event_date TIMESTAMP NOT NULL,` + auditColumnsDDL + `,
		PRIMARY KEY (team_adoption_id, event_id)
	)`,
	`CREATE TABLE IF NOT EXISTS sponsored_adoptions (
		id UUID PRIMARY KEY,
		sponsor_id UUID NOT NULL,
		team_adoption_id UUID NOT NULL,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS area_generation_batches (
		id UUID PRIMARY KEY,
		partner_id UUID NOT NULL,
		status_id INTEGER NOT NULL,
		source_name VARCHAR(255),
		discovered_count INTEGER NOT NULL DEFAULT 0,
		processed_count INTEGER NOT NULL DEFAULT 0,
		approved_count INTEGER NOT NULL DEFAULT 0,
		created_count INTEGER NOT NULL DEFAULT 0,
		error_message TEXT,
		started_date TIMESTAMP,
		completed_date TIMESTAMP,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS staged_adoptable_areas (
		id UUID PRIMARY KEY,
		batch_id UUID NOT NULL,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		area_type VARCHAR(50),
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		review_status_id INTEGER NOT NULL,
		reviewed_by_user_id UUID,
		reviewed_date TIMESTAMP,
		is_potential_duplicate BOOLEAN NOT NULL DEFAULT FALSE,
		duplicate_of_name VARCHAR(255),
		promoted_area_id UUID,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS waiver_versions (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		version_label VARCHAR(50) NOT NULL,
		waiver_text TEXT NOT NULL,
		waiver_duration_type_id INTEGER NOT NULL,
		duration_days INTEGER NOT NULL DEFAULT 0,
		effective_date TIMESTAMP NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS user_waivers (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		waiver_version_id UUID NOT NULL,
		accepted_date TIMESTAMP NOT NULL,
		expiry_date TIMESTAMP,
		waiver_text_snapshot TEXT NOT NULL,
		guardian_name VARCHAR(255),
		guardian_email VARCHAR(255),` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS community_waivers (
		id UUID PRIMARY KEY,
		partner_id UUID NOT NULL,
		waiver_version_id UUID NOT NULL,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS photo_flags (
		id UUID PRIMARY KEY,
		photo_id UUID NOT NULL,
		photo_type VARCHAR(20) NOT NULL,
		flagged_by_user_id UUID NOT NULL,
		reason TEXT NOT NULL,
		resolution TEXT,
		resolved_by_user_id UUID,
		resolved_date TIMESTAMP,
		created_date TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS photo_moderation_logs (
		id UUID PRIMARY KEY,
		photo_id UUID NOT NULL,
		photo_type VARCHAR(20) NOT NULL,
		action VARCHAR(50) NOT NULL,
		reason TEXT,
		performed_by_user_id UUID NOT NULL,
		performed_date TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS user_achievements (
		user_id UUID NOT NULL,
		achievement_type_id INTEGER NOT NULL,
		earned_date TIMESTAMP NOT NULL,` + auditColumnsDDL + `,
		PRIMARY KEY (user_id, achievement_type_id)
	)`,
	`CREATE TABLE IF NOT EXISTS leaderboard_cache (
		entity_type VARCHAR(20) NOT NULL,
		leaderboard_type VARCHAR(20) NOT NULL,
		time_range VARCHAR(20) NOT NULL,
		location_scope VARCHAR(20) NOT NULL,
		location_value VARCHAR(100) NOT NULL,
		rank INTEGER NOT NULL,
		entity_id UUID NOT NULL,
		display_name VARCHAR(255) NOT NULL,
		score DOUBLE PRECISION NOT NULL,
		computed_date TIMESTAMP NOT NULL,
		PRIMARY KEY (entity_type, leaderboard_type, time_range, location_scope, location_value, rank)
	)`,
	`CREATE TABLE IF NOT EXISTS newsletters (
		id UUID PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		body TEXT,
		newsletter_status_id INTEGER NOT NULL,
		scheduled_date TIMESTAMP,
		sent_date TIMESTAMP,
		recipient_count INTEGER NOT NULL DEFAULT 0,
		delivered_count INTEGER NOT NULL DEFAULT 0,
		opened_count INTEGER NOT NULL DEFAULT 0,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS email_invite_batches (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		total_count INTEGER NOT NULL DEFAULT 0,
		sent_count INTEGER NOT NULL DEFAULT 0,
		failed_count INTEGER NOT NULL DEFAULT 0,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS email_invites (
		id UUID PRIMARY KEY,
		batch_id UUID NOT NULL,
		email VARCHAR(255) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		sent_date TIMESTAMP,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS community_prospects (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		city VARCHAR(100),
		region VARCHAR(100),
		country VARCHAR(100),
		contact_name VARCHAR(255),
		contact_email VARCHAR(255),
		pipeline_stage_id INTEGER NOT NULL,
		fit_score INTEGER NOT NULL DEFAULT 0,
		notes TEXT,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS prospect_activities (
		id UUID PRIMARY KEY,
		prospect_id UUID NOT NULL,
		activity_type VARCHAR(50) NOT NULL,
		notes TEXT,
		activity_date TIMESTAMP NOT NULL,` + auditColumnsDDL + `
	)`,
	`CREATE TABLE IF NOT EXISTS prospect_outreach_emails (
		id UUID PRIMARY KEY,
		prospect_id UUID NOT NULL,
		cadence_step INTEGER NOT NULL,
		subject VARCHAR(255) NOT NULL,
		sent_date TIMESTAMP,` + auditColumnsDDL + `
	)`,
}

// moderationColumnsDDL is the photo moderation sub-state embedded in the
// four photo-bearing tables.
const moderationColumnsDDL = `
	moderation_status_id INTEGER NOT NULL DEFAULT 1,
	in_review BOOLEAN NOT NULL DEFAULT FALSE,
	review_requested_by_user_id UUID,
	review_requested_date TIMESTAMP,
	moderated_by_user_id UUID,
	moderated_date TIMESTAMP,
	moderation_reason TEXT`

// TableNames returns every entity table name in creation order.
var TableNames = []string{
	"settings",
	"users",
	"partners",
	"partner_locations",
	"partner_contacts",
	"partner_documents",
	"partner_social_media_accounts",
	"partner_photos",
	"partner_admins",
	"partner_admin_invitations",
	"sponsors",
	"professional_companies",
	"teams",
	"team_members",
	"team_join_requests",
	"events",
	"team_events",
	"team_photos",
	"event_attendees",
	"event_summaries",
	"pickup_locations",
	"event_photos",
	"event_attendee_metrics",
	"event_attendee_routes",
	"event_attendee_route_points",
	"litter_reports",
	"litter_images",
	"adoptable_areas",
	"team_adoptions",
	"team_adoption_events",
	"sponsored_adoptions",
	"area_generation_batches",
	"staged_adoptable_areas",
	"waiver_versions",
	"user_waivers",
	"community_waivers",
	"photo_flags",
	"photo_moderation_logs",
	"user_achievements",
	"leaderboard_cache",
	"newsletters",
	"email_invite_batches",
	"email_invites",
	"community_prospects",
	"prospect_activities",
	"prospect_outreach_emails",
}
