package services

import (
	"context"
	"fmt"

	"github.com/dayotunde25/bsf/internal/app/models"
	"github.com/dayotunde25/bsf/internal/pkg/apperrors"
)

// In-memory repository fakes shared by the service tests.

type fakeUserRepo struct {
	users       map[int64]*models.User
	roleUpdates []roleUpdate
	updateErrs  map[int64]error
}

type roleUpdate struct {
	userID    int64
	newRole   models.Role
	changedBy int64
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[int64]*models.User), updateErrs: make(map[int64]error)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = int64(len(r.users) + 1)
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *fakeUserRepo) GetAll(ctx context.Context) ([]*models.User, error) {
	users := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *fakeUserRepo) Search(ctx context.Context, query string) ([]*models.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) GetByRole(ctx context.Context, role models.Role) ([]*models.User, error) {
	var users []*models.User
	for _, u := range r.users {
		if u.Role == role {
			users = append(users, u)
		}
	}
	return users, nil
}

func (r *fakeUserRepo) GetWithoutPosts(ctx context.Context) ([]*models.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) GetBySession(ctx context.Context, session string) ([]*models.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) GetUpcomingBirthdays(ctx context.Context) ([]*models.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) UpdateAcademicInfo(ctx context.Context, userID int64, department, academicLevel *string) error {
	u, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	if department != nil {
		u.Department = department
	}
	if academicLevel != nil {
		u.AcademicLevel = academicLevel
	}
	return nil
}

func (r *fakeUserRepo) UpdateRoleWithHistory(ctx context.Context, userID int64, newRole models.Role, canPostAnnouncements *bool, reason *string, changedBy int64) error {
	if err, ok := r.updateErrs[userID]; ok {
		return err
	}
	u, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.Role = newRole
	if canPostAnnouncements != nil {
		u.CanPostAnnouncements = *canPostAnnouncements
	}
	r.roleUpdates = append(r.roleUpdates, roleUpdate{userID: userID, newRole: newRole, changedBy: changedBy})
	return nil
}

func (r *fakeUserRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type fakeMessageRepo struct {
	messages  []*models.Message
	markCalls [][2]int64
	createErr error
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *models.Message) error {
	if r.createErr != nil {
		return r.createErr
	}
	message.ID = int64(len(r.messages) + 1)
	r.messages = append(r.messages, message)
	return nil
}

func (r *fakeMessageRepo) GetConversation(ctx context.Context, userID, otherUserID int64) ([]*models.Message, error) {
	var out []*models.Message
	for _, m := range r.messages {
		if (m.SenderID == userID && m.ReceiverID == otherUserID) ||
			(m.SenderID == otherUserID && m.ReceiverID == userID) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) GetAllInvolving(ctx context.Context, userID int64) ([]*models.Message, error) {
	// Newest first, mirroring the real query
	var out []*models.Message
	for i := len(r.messages) - 1; i >= 0; i-- {
		m := r.messages[i]
		if m.SenderID == userID || m.ReceiverID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) MarkAsRead(ctx context.Context, receiverID, senderID int64) error {
	r.markCalls = append(r.markCalls, [2]int64{receiverID, senderID})
	for _, m := range r.messages {
		if m.ReceiverID == receiverID && m.SenderID == senderID {
			m.IsRead = true
		}
	}
	return nil
}

type fakePrayerRepo struct {
	entries    map[int64]*models.PrayerEntry
	supports   map[[2]int64]*models.PrayerSupport
	supportErr error
}

func newFakePrayerRepo(entries ...*models.PrayerEntry) *fakePrayerRepo {
	r := &fakePrayerRepo{
		entries:  make(map[int64]*models.PrayerEntry),
		supports: make(map[[2]int64]*models.PrayerSupport),
	}
	for _, e := range entries {
		r.entries[e.ID] = e
	}
	return r
}

func (r *fakePrayerRepo) Create(ctx context.Context, entry *models.PrayerEntry) error {
	entry.ID = int64(len(r.entries) + 1)
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakePrayerRepo) GetByID(ctx context.Context, id int64) (*models.PrayerEntry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return e, nil
}

func (r *fakePrayerRepo) ListApproved(ctx context.Context) ([]*models.PrayerEntry, error) {
	var out []*models.PrayerEntry
	for _, e := range r.entries {
		if e.IsApproved {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakePrayerRepo) ListPending(ctx context.Context) ([]*models.PrayerEntry, error) {
	var out []*models.PrayerEntry
	for _, e := range r.entries {
		if !e.IsApproved {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakePrayerRepo) Approve(ctx context.Context, id, approvedBy int64) error {
	e, ok := r.entries[id]
	if !ok {
		return apperrors.ErrResourceNotFound
	}
	if e.IsApproved {
		return apperrors.ErrAlreadyApproved
	}
	e.IsApproved = true
	return nil
}

func (r *fakePrayerRepo) AddSupport(ctx context.Context, userID, prayerID int64) error {
	if r.supportErr != nil {
		return r.supportErr
	}
	e, ok := r.entries[prayerID]
	if !ok {
		return apperrors.ErrResourceNotFound
	}
	key := [2]int64{userID, prayerID}
	if _, ok := r.supports[key]; ok {
		return apperrors.ErrDuplicateSupport
	}
	r.supports[key] = &models.PrayerSupport{
		ID:           int64(len(r.supports) + 1),
		UserID:       userID,
		PrayerWallID: prayerID,
	}
	e.PrayingCount = 0
	for k := range r.supports {
		if k[1] == prayerID {
			e.PrayingCount++
		}
	}
	return nil
}

func (r *fakePrayerRepo) GetSupport(ctx context.Context, userID, prayerID int64) (*models.PrayerSupport, error) {
	s, ok := r.supports[[2]int64{userID, prayerID}]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return s, nil
}

func (r *fakePrayerRepo) CountSupport(ctx context.Context, prayerID int64) (int, error) {
	n := 0
	for k := range r.supports {
		if k[1] == prayerID {
			n++
		}
	}
	return n, nil
}

type fakeAnnouncementRepo struct {
	announcements map[int64]*models.Announcement
	rsvps         map[[2]int64]*models.Rsvp
}

func newFakeAnnouncementRepo(items ...*models.Announcement) *fakeAnnouncementRepo {
	r := &fakeAnnouncementRepo{
		announcements: make(map[int64]*models.Announcement),
		rsvps:         make(map[[2]int64]*models.Rsvp),
	}
	for _, a := range items {
		r.announcements[a.ID] = a
	}
	return r
}

func (r *fakeAnnouncementRepo) Create(ctx context.Context, announcement *models.Announcement) error {
	announcement.ID = int64(len(r.announcements) + 1)
	r.announcements[announcement.ID] = announcement
	return nil
}

func (r *fakeAnnouncementRepo) GetByID(ctx context.Context, id int64) (*models.Announcement, error) {
	a, ok := r.announcements[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return a, nil
}

func (r *fakeAnnouncementRepo) List(ctx context.Context) ([]*models.Announcement, error) {
	var out []*models.Announcement
	for _, a := range r.announcements {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAnnouncementRepo) Rsvp(ctx context.Context, userID, announcementID int64, response string) error {
	a, ok := r.announcements[announcementID]
	if !ok {
		return apperrors.ErrResourceNotFound
	}
	key := [2]int64{userID, announcementID}
	if _, ok := r.rsvps[key]; ok {
		return apperrors.ErrDuplicateRsvp
	}
	r.rsvps[key] = &models.Rsvp{
		ID:             int64(len(r.rsvps) + 1),
		UserID:         userID,
		AnnouncementID: announcementID,
		Response:       response,
	}
	a.RsvpCount = 0
	for _, v := range r.rsvps {
		if v.AnnouncementID == announcementID && v.Response == "yes" {
			a.RsvpCount++
		}
	}
	return nil
}

func (r *fakeAnnouncementRepo) GetRsvp(ctx context.Context, userID, announcementID int64) (*models.Rsvp, error) {
	v, ok := r.rsvps[[2]int64{userID, announcementID}]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return v, nil
}

func (r *fakeAnnouncementRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(r.announcements)), nil
}

type fakePostRepo struct {
	assignments    []*models.PostAssignment
	executivePosts []*models.ExecutivePost
	workerUnits    []*models.WorkerUnit
	assignErr      error
	users          *fakeUserRepo
}

func (r *fakePostRepo) AssignPost(ctx context.Context, assignment *models.PostAssignment) error {
	if r.assignErr != nil {
		return r.assignErr
	}
	// Mirror the real repository: academic info, post row and log entry
	// land together or not at all.
	if r.users != nil && (assignment.Department != nil || assignment.AcademicLevel != nil) {
		if err := r.users.UpdateAcademicInfo(ctx, assignment.UserID, assignment.Department, assignment.AcademicLevel); err != nil {
			return err
		}
	}
	r.assignments = append(r.assignments, assignment)
	switch assignment.Type {
	case models.PostTypeExecutive:
		r.executivePosts = append(r.executivePosts, &models.ExecutivePost{
			ID: int64(len(r.executivePosts) + 1), UserID: assignment.UserID,
			PostTitle: assignment.Title, Session: assignment.Session,
		})
	case models.PostTypeWorkerUnit:
		r.workerUnits = append(r.workerUnits, &models.WorkerUnit{
			ID: int64(len(r.workerUnits) + 1), UserID: assignment.UserID,
			UnitName: assignment.Title, Session: assignment.Session,
		})
	}
	return nil
}

func (r *fakePostRepo) GetExecutivePostsByUser(ctx context.Context, userID int64) ([]*models.ExecutivePost, error) {
	var out []*models.ExecutivePost
	for _, p := range r.executivePosts {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePostRepo) GetWorkerUnitsByUser(ctx context.Context, userID int64) ([]*models.WorkerUnit, error) {
	var out []*models.WorkerUnit
	for _, w := range r.workerUnits {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	return out, nil
}

type loggedActivity struct {
	userID       int64
	activityType string
	description  string
	metadata     map[string]interface{}
}

type fakeAuditRepo struct {
	activities  []loggedActivity
	roleHistory []*models.RoleHistory
	activityLog []*models.UserActivityLog
	logErr      error
}

func (r *fakeAuditRepo) LogActivity(ctx context.Context, userID int64, activityType, description string, metadata map[string]interface{}) error {
	if r.logErr != nil {
		return r.logErr
	}
	r.activities = append(r.activities, loggedActivity{
		userID: userID, activityType: activityType, description: description, metadata: metadata,
	})
	return nil
}

func (r *fakeAuditRepo) GetRoleHistoryByUser(ctx context.Context, userID int64) ([]*models.RoleHistory, error) {
	return r.roleHistory, nil
}

func (r *fakeAuditRepo) GetActivityLogByUser(ctx context.Context, userID int64) ([]*models.UserActivityLog, error) {
	return r.activityLog, nil
}

type fakeJobRepo struct {
	jobs         map[int64]*models.JobPost
	applications map[[2]int64]*models.JobApplication
}

func newFakeJobRepo(jobs ...*models.JobPost) *fakeJobRepo {
	r := &fakeJobRepo{
		jobs:         make(map[int64]*models.JobPost),
		applications: make(map[[2]int64]*models.JobApplication),
	}
	for _, j := range jobs {
		r.jobs[j.ID] = j
	}
	return r
}

func (r *fakeJobRepo) Create(ctx context.Context, job *models.JobPost) error {
	job.ID = int64(len(r.jobs) + 1)
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id int64) (*models.JobPost, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return j, nil
}

func (r *fakeJobRepo) ListApproved(ctx context.Context) ([]*models.JobPost, error) {
	var out []*models.JobPost
	for _, j := range r.jobs {
		if j.IsApproved {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) ListPending(ctx context.Context) ([]*models.JobPost, error) {
	var out []*models.JobPost
	for _, j := range r.jobs {
		if !j.IsApproved {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) Approve(ctx context.Context, id, approvedBy int64) error {
	j, ok := r.jobs[id]
	if !ok {
		return apperrors.ErrResourceNotFound
	}
	if j.IsApproved {
		return apperrors.ErrAlreadyApproved
	}
	j.IsApproved = true
	return nil
}

func (r *fakeJobRepo) Apply(ctx context.Context, applicantID, jobID int64, coverLetter *string) error {
	j, ok := r.jobs[jobID]
	if !ok {
		return apperrors.ErrResourceNotFound
	}
	key := [2]int64{applicantID, jobID}
	if _, ok := r.applications[key]; ok {
		return apperrors.ErrDuplicateApplication
	}
	r.applications[key] = &models.JobApplication{
		ID:          int64(len(r.applications) + 1),
		ApplicantID: applicantID,
		JobPostID:   jobID,
		CoverLetter: coverLetter,
	}
	j.ApplicationCount = 0
	for _, a := range r.applications {
		if a.JobPostID == jobID {
			j.ApplicationCount++
		}
	}
	return nil
}

func (r *fakeJobRepo) GetApplication(ctx context.Context, applicantID, jobID int64) (*models.JobApplication, error) {
	a, ok := r.applications[[2]int64{applicantID, jobID}]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return a, nil
}

func (r *fakeJobRepo) CountApplications(ctx context.Context, jobID int64) (int, error) {
	n := 0
	for _, a := range r.applications {
		if a.JobPostID == jobID {
			n++
		}
	}
	return n, nil
}

func (r *fakeJobRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(r.jobs)), nil
}

// testUser builds a minimal valid user for tests
func testUser(id int64, role models.Role) *models.User {
	return &models.User{
		ID:        id,
		Email:     fmt.Sprintf("user%d@bsffpi.org", id),
		FirstName: "Test",
		LastName:  fmt.Sprintf("User%d", id),
		Role:      role,
	}
}
