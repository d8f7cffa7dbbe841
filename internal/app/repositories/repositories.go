package repositories

import (
	"github.com/dayotunde25/bsf/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	MessageRepository      *MessageRepository
	MediaRepository        *MediaRepository
	ResourceRepository     *ResourceRepository
	PrayerRepository       *PrayerRepository
	JobRepository          *JobRepository
	AnnouncementRepository *AnnouncementRepository
	MentorshipRepository   *MentorshipRepository
	PostRepository         *PostRepository
	AuditRepository        *AuditRepository
	FellowshipRepository   *FellowshipRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(database),
		MessageRepository:      NewMessageRepository(database),
		MediaRepository:        NewMediaRepository(database),
		ResourceRepository:     NewResourceRepository(database),
		PrayerRepository:       NewPrayerRepository(database),
		JobRepository:          NewJobRepository(database),
		AnnouncementRepository: NewAnnouncementRepository(database),
		MentorshipRepository:   NewMentorshipRepository(database),
		PostRepository:         NewPostRepository(database),
		AuditRepository:        NewAuditRepository(database),
		FellowshipRepository:   NewFellowshipRepository(database),
	}
}
