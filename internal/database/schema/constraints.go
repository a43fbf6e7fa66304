package schema

import "fmt"

// DeletePolicy is the foreign-key delete behavior of a relation. The choice
// encodes product intent: cascade only where the parent's own deletion is a
// terminal administrative action and the children have no life of their own.
type DeletePolicy string

const (
	// Restrict blocks deletion of a referenced row while dependents exist.
	Restrict DeletePolicy = "RESTRICT"
	// Cascade propagates deletion to dependents.
	Cascade DeletePolicy = "CASCADE"
	// SetNull detaches dependents instead of deleting them.
	SetNull DeletePolicy = "SET NULL"
)

// ForeignKey declares one relation and its delete policy.
type ForeignKey struct {
	Table     string
	Column    string
	RefTable  string
	RefColumn string
	OnDelete  DeletePolicy
}

// Name returns the constraint name, derived so Up and Down agree on it.
func (fk ForeignKey) Name() string {
	return fmt.Sprintf("fk_%s_%s", fk.Table, fk.Column)
}

// AddStatement returns the ALTER TABLE statement creating the constraint.
func (fk ForeignKey) AddStatement() string {
	return fmt.Sprintf(
		"ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (%s) ON DELETE %s",
		fk.Table, fk.Name(), fk.Column, fk.RefTable, fk.RefColumn, fk.OnDelete)
}

// DropStatement returns the ALTER TABLE statement removing the constraint.
func (fk ForeignKey) DropStatement() string {
	return fmt.Sprintf("ALTER TABLE %s DROP CONSTRAINT IF EXISTS %s", fk.Table, fk.Name())
}

// AuditedTables lists every table carrying the audit envelope. Both envelope
// columns of each get a Restrict foreign key to users: identity history is
// never silently orphaned.
var AuditedTables = []string{
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
	"user_achievements",
	"newsletters",
	"email_invite_batches",
	"email_invites",
	"community_prospects",
	"prospect_activities",
	"prospect_outreach_emails",
}

// AuditForeignKeys returns the creator/updater relations for every audited
// table.
func AuditForeignKeys() []ForeignKey {
	fks := make([]ForeignKey, 0, len(AuditedTables)*2)
	for _, table := range AuditedTables {
		fks = append(fks,
			ForeignKey{table, "created_by_user_id", "users", "id", Restrict},
			ForeignKey{table, "last_updated_by_user_id", "users", "id", Restrict},
		)
	}
	return fks
}

// DomainForeignKeys declares every non-audit relation in the schema.
//
// Lookup references are all Restrict. The earlier schema cascaded
// event_statuses into events, which would have deleted business rows on an
// enumerant removal; every lookup here restricts instead.
var DomainForeignKeys = []ForeignKey{
	// partners and their lookups
	{"partners", "partner_status_id", "partner_statuses", "id", Restrict},
	{"partners", "partner_type_id", "partner_types", "id", Restrict},

	// everything a partner owns goes with it
	{"partner_locations", "partner_id", "partners", "id", Cascade},
	{"partner_contacts", "partner_id", "partners", "id", Cascade},
	{"partner_documents", "partner_id", "partners", "id", Cascade},
	{"partner_social_media_accounts", "partner_id", "partners", "id", Cascade},
	{"partner_photos", "partner_id", "partners", "id", Cascade},
	{"partner_admins", "partner_id", "partners", "id", Cascade},
	{"partner_admins", "user_id", "users", "id", Restrict},
	{"partner_admin_invitations", "partner_id", "partners", "id", Cascade},
	{"partner_admin_invitations", "invitation_status_id", "invitation_statuses", "id", Restrict},
	{"sponsors", "partner_id", "partners", "id", Cascade},
	{"professional_companies", "partner_id", "partners", "id", Cascade},

	// teams
	{"team_members", "team_id", "teams", "id", Cascade},
	{"team_members", "user_id", "users", "id", Restrict},
	{"team_join_requests", "team_id", "teams", "id", Cascade},
	{"team_join_requests", "user_id", "users", "id", Restrict},
	{"team_join_requests", "status_id", "team_join_request_statuses", "id", Restrict},
	{"team_join_requests", "reviewed_by_user_id", "users", "id", Restrict},
	{"team_events", "team_id", "teams", "id", Cascade},
	{"team_events", "event_id", "events", "id", Cascade},
	{"team_photos", "team_id", "teams", "id", Cascade},

	// events and their lookups
	{"events", "event_status_id", "event_statuses", "id", Restrict},
	{"events", "event_type_id", "event_types", "id", Restrict},
	{"events", "event_visibility_id", "event_visibilities", "id", Restrict},
	{"events", "team_id", "teams", "id", SetNull},
	{"event_attendees", "event_id", "events", "id", Cascade},
	{"event_attendees", "user_id", "users", "id", Restrict},
	{"event_summaries", "event_id", "events", "id", Cascade},
	{"pickup_locations", "event_id", "events", "id", Cascade},
	{"event_photos", "event_id", "events", "id", Cascade},
	{"event_attendee_metrics", "event_id", "events", "id", Cascade},
	{"event_attendee_metrics", "user_id", "users", "id", Restrict},
	{"event_attendee_metrics", "weight_unit_id", "weight_units", "id", Restrict},
	{"event_attendee_routes", "event_id", "events", "id", Cascade},
	{"event_attendee_routes", "user_id", "users", "id", Restrict},
	{"event_attendee_route_points", "route_id", "event_attendee_routes", "id", Cascade},

	// litter
	{"litter_reports", "litter_report_status_id", "litter_report_statuses", "id", Restrict},
	{"litter_images", "litter_report_id", "litter_reports", "id", Cascade},

	// adoptions
	{"adoptable_areas", "partner_id", "partners", "id", Cascade},
	{"team_adoptions", "team_id", "teams", "id", Restrict},
	{"team_adoptions", "adoptable_area_id", "adoptable_areas", "id", Cascade},
	{"team_adoptions", "status_id", "team_adoption_statuses", "id", Restrict},
	{"team_adoption_events", "team_adoption_id", "team_adoptions", "id", Cascade},
	{"team_adoption_events", "event_id", "events", "id", Restrict},
	{"sponsored_adoptions", "sponsor_id", "sponsors", "id", Cascade},
	{"sponsored_adoptions", "team_adoption_id", "team_adoptions", "id", Cascade},

	// area generation pipeline
	{"area_generation_batches", "partner_id", "partners", "id", Cascade},
	{"area_generation_batches", "status_id", "batch_statuses", "id", Restrict},
	{"staged_adoptable_areas", "batch_id", "area_generation_batches", "id", Cascade},
	{"staged_adoptable_areas", "review_status_id", "review_statuses", "id", Restrict},
	{"staged_adoptable_areas", "reviewed_by_user_id", "users", "id", Restrict},
	{"staged_adoptable_areas", "promoted_area_id", "adoptable_areas", "id", SetNull},

	// photo moderation sub-state lookups
	{"partner_photos", "moderation_status_id", "moderation_statuses", "id", Restrict},
	{"team_photos", "moderation_status_id", "moderation_statuses", "id", Restrict},
	{"event_photos", "moderation_status_id", "moderation_statuses", "id", Restrict},
	{"litter_images", "moderation_status_id", "moderation_statuses", "id", Restrict},
	{"photo_flags", "flagged_by_user_id", "users", "id", Restrict},
	{"photo_flags", "resolved_by_user_id", "users", "id", Restrict},
	{"photo_moderation_logs", "performed_by_user_id", "users", "id", Restrict},

	// waivers
	{"waiver_versions", "waiver_duration_type_id", "waiver_duration_types", "id", Restrict},
	{"user_waivers", "user_id", "users", "id", Restrict},
	{"user_waivers", "waiver_version_id", "waiver_versions", "id", Restrict},
	{"community_waivers", "partner_id", "partners", "id", Cascade},
	{"community_waivers", "waiver_version_id", "waiver_versions", "id", Restrict},

	// engagement and outreach
	{"user_achievements", "user_id", "users", "id", Restrict},
	{"user_achievements", "achievement_type_id", "achievement_types", "id", Restrict},
	{"newsletters", "newsletter_status_id", "newsletter_statuses", "id", Restrict},
	{"email_invites", "batch_id", "email_invite_batches", "id", Cascade},
	{"community_prospects", "pipeline_stage_id", "pipeline_stages", "id", Restrict},
	{"prospect_activities", "prospect_id", "community_prospects", "id", Cascade},
	{"prospect_outreach_emails", "prospect_id", "community_prospects", "id", Cascade},
}

// AllForeignKeys returns every relation, audit envelope first.
func AllForeignKeys() []ForeignKey {
	fks := AuditForeignKeys()
	return append(fks, DomainForeignKeys...)
}

// ConstraintStatements returns all ADD CONSTRAINT statements in order.
func ConstraintStatements() []string {
	fks := AllForeignKeys()
	statements := make([]string, 0, len(fks))
	for _, fk := range fks {
		statements = append(statements, fk.AddStatement())
	}
	return statements
}
