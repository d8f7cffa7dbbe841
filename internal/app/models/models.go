package models

// Role defines the user role type
type Role string

const (
	RoleAlumni Role = "ALUMNI"
	RoleMentor Role = "MENTOR"
	RoleAdmin  Role = "ADMIN"
)

// IsValid reports whether the role is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleAlumni, RoleMentor, RoleAdmin:
		return true
	}
	return false
}

// PrayerEntryType distinguishes prayer requests from testimonies
type PrayerEntryType string

const (
	PrayerTypeRequest   PrayerEntryType = "prayer"
	PrayerTypeTestimony PrayerEntryType = "testimony"
)

// MentorshipStatus tracks the lifecycle of a mentorship registration
type MentorshipStatus string

const (
	MentorshipAvailable MentorshipStatus = "available"
	MentorshipMatched   MentorshipStatus = "matched"
	MentorshipCompleted MentorshipStatus = "completed"
)

// PostType identifies which post table an assignment targets
type PostType string

const (
	PostTypeExecutive  PostType = "executive"
	PostTypeFamilyHead PostType = "family_head"
	PostTypeWorkerUnit PostType = "worker_unit"
	PostTypeOther      PostType = "other"
)

// IsValid reports whether the post type is one of the known kinds
func (p PostType) IsValid() bool {
	switch p {
	case PostTypeExecutive, PostTypeFamilyHead, PostTypeWorkerUnit, PostTypeOther:
		return true
	}
	return false
}

// TimelineEntryType categorizes fellowship history entries
type TimelineEntryType string

const (
	TimelineLeadership TimelineEntryType = "leadership"
	TimelineEvent      TimelineEntryType = "event"
	TimelineMilestone  TimelineEntryType = "milestone"
)
