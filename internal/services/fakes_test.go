package services

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"skillbridge_backend/internal/models"
	"skillbridge_backend/internal/repositories"
)

// In-memory repository fakes. They implement the same sentinel-error
// contracts as the gorm implementations so the services cannot tell the
// difference.

type fakeUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) nextID(prefix string) string {
	r.seq++
	return fmt.Sprintf("%s-%d", prefix, r.seq)
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByVerificationToken(token string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if token == "" {
		return nil, repositories.ErrUserNotFound
	}
	for _, user := range r.users {
		if user.VerificationToken == token {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = r.nextID("user")
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) UpdateProfile(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.users[user.ID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	existing.Name = user.Name
	existing.University = user.University
	existing.Skills = user.Skills
	existing.Bio = user.Bio
	existing.BusinessName = user.BusinessName
	existing.Industry = user.Industry
	existing.Website = user.Website
	return nil
}

func (r *fakeUserRepo) VerifyUser(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.IsVerified = true
	user.VerificationToken = ""
	return nil
}

type fakeProjectRepo struct {
	mu       sync.Mutex
	seq      int
	projects map[string]*models.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*models.Project)}
}

func (r *fakeProjectRepo) Create(project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if project.ID == "" {
		r.seq++
		project.ID = fmt.Sprintf("project-%d", r.seq)
	}
	clone := *project
	r.projects[project.ID] = &clone
	return nil
}

func (r *fakeProjectRepo) FindByID(id string) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	project, ok := r.projects[id]
	if !ok {
		return nil, repositories.ErrProjectNotFound
	}
	clone := *project
	return &clone, nil
}

func (r *fakeProjectRepo) Update(project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.projects[project.ID]
	if !ok {
		return repositories.ErrProjectNotFound
	}
	existing.Title = project.Title
	existing.Description = project.Description
	existing.RequiredSkills = project.RequiredSkills
	existing.BudgetMin = project.BudgetMin
	existing.BudgetMax = project.BudgetMax
	existing.Deadline = project.Deadline
	return nil
}

func (r *fakeProjectRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[id]; !ok {
		return repositories.ErrProjectNotFound
	}
	delete(r.projects, id)
	return nil
}

func (r *fakeProjectRepo) List(filter repositories.ProjectFilter) ([]models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Project
	for _, project := range r.projects {
		if filter.Status != "" && project.Status != filter.Status {
			continue
		}
		if filter.Skill != "" && !skillsContain(project.RequiredSkills, filter.Skill) {
			continue
		}
		if filter.Search != "" && !matchesSearch(project, filter.Search) {
			continue
		}
		out = append(out, *project)
	}
	sortProjects(out)
	return out, nil
}

func (r *fakeProjectRepo) ListByBusiness(businessID string) ([]models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Project
	for _, project := range r.projects {
		if project.BusinessID == businessID {
			out = append(out, *project)
		}
	}
	sortProjects(out)
	return out, nil
}

func (r *fakeProjectRepo) ListByAssignedStudent(studentID string) ([]models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Project
	for _, project := range r.projects {
		if project.AssignedStudentID != nil && *project.AssignedStudentID == studentID {
			out = append(out, *project)
		}
	}
	sortProjects(out)
	return out, nil
}

func (r *fakeProjectRepo) UpdateStatusGuarded(id string, from, to models.ProjectStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	project, ok := r.projects[id]
	if !ok {
		return repositories.ErrProjectNotFound
	}
	if project.Status != from {
		return repositories.ErrStatusConflict
	}
	project.Status = to
	return nil
}

func skillsContain(skills models.StringList, needle string) bool {
	needle = strings.ToLower(needle)
	for _, skill := range skills {
		if strings.Contains(strings.ToLower(skill), needle) {
			return true
		}
	}
	return false
}

func matchesSearch(project *models.Project, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(project.Title), term) ||
		strings.Contains(strings.ToLower(project.Description), term)
}

func sortProjects(projects []models.Project) {
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].ID > projects[j].ID
	})
}

type fakeBidRepo struct {
	mu       sync.Mutex
	seq      int
	bids     map[string]*models.Bid
	projects *fakeProjectRepo
	users    *fakeUserRepo
}

func newFakeBidRepo(projects *fakeProjectRepo, users *fakeUserRepo) *fakeBidRepo {
	return &fakeBidRepo{
		bids:     make(map[string]*models.Bid),
		projects: projects,
		users:    users,
	}
}

func (r *fakeBidRepo) Create(bid *models.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.bids {
		if existing.ProjectID == bid.ProjectID && existing.StudentID == bid.StudentID {
			return repositories.ErrDuplicateBid
		}
	}
	if bid.ID == "" {
		r.seq++
		bid.ID = fmt.Sprintf("bid-%d", r.seq)
	}
	clone := *bid
	r.bids[bid.ID] = &clone
	return nil
}

func (r *fakeBidRepo) FindByID(id string) (*models.Bid, error) {
	r.mu.Lock()
	bid, ok := r.bids[id]
	if !ok {
		r.mu.Unlock()
		return nil, repositories.ErrBidNotFound
	}
	clone := *bid
	r.mu.Unlock()

	if project, err := r.projects.FindByID(clone.ProjectID); err == nil {
		clone.Project = project
	}
	if student, err := r.users.FindByID(clone.StudentID); err == nil {
		clone.Student = student
	}
	return &clone, nil
}

func (r *fakeBidRepo) FindByProjectAndStudent(projectID, studentID string) (*models.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, bid := range r.bids {
		if bid.ProjectID == projectID && bid.StudentID == studentID {
			clone := *bid
			return &clone, nil
		}
	}
	return nil, repositories.ErrBidNotFound
}

func (r *fakeBidRepo) ListByProject(projectID string) ([]models.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Bid
	for _, bid := range r.bids {
		if bid.ProjectID == projectID {
			out = append(out, *bid)
		}
	}
	sortBids(out)
	return out, nil
}

func (r *fakeBidRepo) ListByStudent(studentID string) ([]models.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Bid
	for _, bid := range r.bids {
		if bid.StudentID == studentID {
			out = append(out, *bid)
		}
	}
	sortBids(out)
	return out, nil
}

func (r *fakeBidRepo) UpdateStatus(id string, status models.BidStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	bid, ok := r.bids[id]
	if !ok {
		return repositories.ErrBidNotFound
	}
	bid.Status = status
	return nil
}

func (r *fakeBidRepo) AcceptCascade(bid *models.Bid) error {
	r.projects.mu.Lock()
	project, ok := r.projects.projects[bid.ProjectID]
	if !ok || project.Status != models.ProjectStatusOpen {
		r.projects.mu.Unlock()
		return repositories.ErrStatusConflict
	}
	studentID := bid.StudentID
	bidID := bid.ID
	project.Status = models.ProjectStatusInProgress
	project.AssignedStudentID = &studentID
	project.AcceptedBidID = &bidID
	r.projects.mu.Unlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.bids[bid.ID]
	if !ok {
		return repositories.ErrBidNotFound
	}
	stored.Status = models.BidStatusAccepted
	for _, sibling := range r.bids {
		if sibling.ProjectID == bid.ProjectID && sibling.ID != bid.ID {
			sibling.Status = models.BidStatusRejected
		}
	}
	return nil
}

func sortBids(bids []models.Bid) {
	sort.Slice(bids, func(i, j int) bool {
		return bids[i].ID > bids[j].ID
	})
}

type fakeReviewRepo struct {
	mu      sync.Mutex
	seq     int
	reviews map[string]*models.Review
	users   *fakeUserRepo
}

func newFakeReviewRepo(users *fakeUserRepo) *fakeReviewRepo {
	return &fakeReviewRepo{
		reviews: make(map[string]*models.Review),
		users:   users,
	}
}

func (r *fakeReviewRepo) CreateWithAggregate(review *models.Review) error {
	r.users.mu.Lock()
	receiver, ok := r.users.users[review.ReceiverID]
	r.users.mu.Unlock()
	if !ok {
		return repositories.ErrUserNotFound
	}

	r.mu.Lock()
	for _, existing := range r.reviews {
		if existing.ProjectID == review.ProjectID && existing.ReviewerID == review.ReviewerID {
			r.mu.Unlock()
			return repositories.ErrDuplicateReview
		}
	}
	if review.ID == "" {
		r.seq++
		review.ID = fmt.Sprintf("review-%d", r.seq)
	}
	clone := *review
	r.reviews[review.ID] = &clone

	var sum, count float64
	for _, stored := range r.reviews {
		if stored.ReceiverID == review.ReceiverID {
			sum += float64(stored.Rating)
			count++
		}
	}
	r.mu.Unlock()

	r.users.mu.Lock()
	receiver.AverageRating = math.Round(sum/count*10) / 10
	receiver.TotalReviews = int64(count)
	r.users.mu.Unlock()
	return nil
}

func (r *fakeReviewRepo) FindByProjectAndReviewer(projectID, reviewerID string) (*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, review := range r.reviews {
		if review.ProjectID == projectID && review.ReviewerID == reviewerID {
			clone := *review
			return &clone, nil
		}
	}
	return nil, repositories.ErrReviewNotFound
}

func (r *fakeReviewRepo) ListByReceiver(receiverID string) ([]models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Review
	for _, review := range r.reviews {
		if review.ReceiverID == receiverID {
			out = append(out, *review)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) ListByProject(projectID string) ([]models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Review
	for _, review := range r.reviews {
		if review.ProjectID == projectID {
			out = append(out, *review)
		}
	}
	return out, nil
}

// fakeEmailSender records verification sends so tests can wait on the async
// dispatch.
type fakeEmailSender struct {
	sent chan string
}

func newFakeEmailSender() *fakeEmailSender {
	return &fakeEmailSender{sent: make(chan string, 4)}
}

func (s *fakeEmailSender) SendVerification(to, name, token string) error {
	s.sent <- to
	return nil
}
