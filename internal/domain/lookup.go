package domain

import "context"

// Lookup is the common shape of every status/reference table. Rows are
// enumerants: seeded at schema-creation time with fixed IDs, referenced by
// foreign key elsewhere, never deleted. Retiring a value flips IsActive to
// false so historical rows keep a valid reference.
type Lookup struct {
	ID           int    `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Description  string `json:"description,omitempty" db:"description"`
	DisplayOrder int    `json:"display_order" db:"display_order"`
	IsActive     bool   `json:"is_active" db:"is_active"`
}

// Event statuses
const (
	EventStatusActive   = 1
	EventStatusFull     = 2
	EventStatusCanceled = 3
	EventStatusComplete = 4
)

// Event types
const (
	EventTypeParkCleanup         = 1
	EventTypeSchoolCleanup       = 2
	EventTypeNeighborhoodCleanup = 3
	EventTypeBeachCleanup        = 4
	EventTypeHighwayCleanup      = 5
	EventTypeWaterwayCleanup     = 6
	EventTypeVacantLotCleanup    = 7
	EventTypeTrailCleanup        = 8
	EventTypeOther               = 9
)

// Event visibilities. These replaced an earlier is_event_public boolean so a
// third state could exist without overloading a flag.
const (
	EventVisibilityPublic   = 1
	EventVisibilityPrivate  = 2
	EventVisibilityTeamOnly = 3
)

// Partner statuses
const (
	PartnerStatusActive   = 1
	PartnerStatusInactive = 2
)

// Partner types
const (
	PartnerTypeCommunity  = 1
	PartnerTypeBusiness   = 2
	PartnerTypeGovernment = 3
)

// Invitation statuses (partner admin invitations)
const (
	InvitationStatusPending  = 1
	InvitationStatusAccepted = 2
	InvitationStatusDeclined = 3
	InvitationStatusCanceled = 4
)

// Team join request statuses
const (
	TeamJoinRequestStatusPending  = 1
	TeamJoinRequestStatusApproved = 2
	TeamJoinRequestStatusRejected = 3
)

// Team adoption statuses
const (
	TeamAdoptionStatusPending  = 1
	TeamAdoptionStatusApproved = 2
	TeamAdoptionStatusRejected = 3
	TeamAdoptionStatusActive   = 4
)

// Review statuses (staged adoptable areas)
const (
	ReviewStatusPending  = 1
	ReviewStatusApproved = 2
	ReviewStatusRejected = 3
)

// Area generation batch statuses
const (
	BatchStatusQueued     = 1
	BatchStatusProcessing = 2
	BatchStatusCompleted  = 3
	BatchStatusFailed     = 4
)

// Photo moderation statuses
const (
	ModerationStatusNone     = 1
	ModerationStatusInReview = 2
	ModerationStatusApproved = 3
	ModerationStatusRejected = 4
)

// Litter report statuses
const (
	LitterReportStatusNew      = 1
	LitterReportStatusAssigned = 2
	LitterReportStatusCleaned  = 3
	LitterReportStatusCanceled = 4
)

// Prospect pipeline stages
const (
	PipelineStageIdentified = 1
	PipelineStageContacted  = 2
	PipelineStageEngaged    = 3
	PipelineStageCommitted  = 4
	PipelineStageClosed     = 5
)

// Weight units
const (
	WeightUnitPounds    = 1
	WeightUnitKilograms = 2
)

// Achievement types
const (
	AchievementTypeFirstEvent      = 1
	AchievementTypeFiveEvents      = 2
	AchievementTypeTwentyFiveEvent = 3
	AchievementTypeFirstTeam       = 4
	AchievementTypeFirstAdoption   = 5
	AchievementTypeHundredBags     = 6
)

// Newsletter statuses
const (
	NewsletterStatusDraft     = 1
	NewsletterStatusScheduled = 2
	NewsletterStatusSent      = 3
)

// Waiver duration types
const (
	WaiverDurationIndefinite = 1
	WaiverDurationAnnual     = 2
	WaiverDurationDays       = 3
)

// LookupRepository provides read access to the status/reference tables.
// Deletion is intentionally absent: enumerants are retired, not removed.
type LookupRepository interface {
	// GetByID retrieves a single enumerant from the named lookup table
	GetByID(ctx context.Context, table string, id int) (*Lookup, error)

	// List retrieves all enumerants of the named lookup table in display order
	List(ctx context.Context, table string) ([]*Lookup, error)

	// Deactivate soft-disables an enumerant so it can no longer be chosen for
	// new rows; existing references stay valid
	Deactivate(ctx context.Context, table string, id int) error
}
