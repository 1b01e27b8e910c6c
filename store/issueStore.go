package store

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"neighborwatch-be/models"
)

// DefaultPoints is the reward value assigned to every new issue.
const DefaultPoints = 50

// IssueDraft is the reporter-supplied part of an issue. Everything else
// (id, status, points, timestamp) is assigned by the store.
type IssueDraft struct {
	Title       string
	Description string
	Category    models.IssueCategory
	Location    string
	Media       *string
	ReportedBy  string
}

// IssueQuery filters and pages the feed. Zero values mean "no filter";
// Sort is "newest" or "oldest" and defaults to newest.
type IssueQuery struct {
	Category models.IssueCategory
	Status   models.IssueStatus
	Search   string
	Sort     string
	Page     int
	Limit    int
}

// IssueStore holds the ordered issue list, newest first. All state is in
// memory and re-seeded on process start.
type IssueStore struct {
	mu     sync.Mutex
	issues []models.Issue
	now    func() time.Time
}

func NewIssueStore() *IssueStore {
	s := &IssueStore{now: time.Now}
	s.issues = seedIssues(s.now())
	return s
}

// NewEmptyIssueStore returns a store without seed data.
func NewEmptyIssueStore() *IssueStore {
	return &IssueStore{now: time.Now}
}

// List returns the issues newest-first. The returned slice is a copy and
// stays stable regardless of later writes.
func (s *IssueStore) List() []models.Issue {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Issue, len(s.issues))
	copy(out, s.issues)
	return out
}

// Get returns the issue with the given id.
func (s *IssueStore) Get(id string) (models.Issue, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, issue := range s.issues {
		if issue.ID == id {
			return issue, true
		}
	}
	return models.Issue{}, false
}

// Create assigns id, pending status, default points and the creation
// timestamp, then prepends the issue to the list.
func (s *IssueStore) Create(draft IssueDraft) models.Issue {
	s.mu.Lock()
	defer s.mu.Unlock()

	issue := models.Issue{
		ID:          strconv.Itoa(len(s.issues) + 1),
		Title:       draft.Title,
		Description: draft.Description,
		Category:    draft.Category,
		Location:    draft.Location,
		Media:       draft.Media,
		Status:      models.Pending,
		Points:      DefaultPoints,
		ReportedBy:  draft.ReportedBy,
		CreatedAt:   s.now(),
	}
	s.issues = append([]models.Issue{issue}, s.issues...)
	return issue
}

// UpdateStatus replaces only the status field of the matching issue,
// keeping its position. An unknown id leaves the store unchanged and
// returns false.
func (s *IssueStore) UpdateStatus(id string, status models.IssueStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.issues {
		if s.issues[i].ID == id {
			s.issues[i].Status = status
			return true
		}
	}
	return false
}

// Query applies category/status filters, a case-insensitive title and
// description search, sorting and pagination, and returns the page plus
// the total match count.
func (s *IssueStore) Query(q IssueQuery) ([]models.Issue, int) {
	matched := make([]models.Issue, 0)
	for _, issue := range s.List() {
		if q.Category != "" && issue.Category != q.Category {
			continue
		}
		if q.Status != "" && issue.Status != q.Status {
			continue
		}
		if q.Search != "" {
			needle := strings.ToLower(q.Search)
			if !strings.Contains(strings.ToLower(issue.Title), needle) &&
				!strings.Contains(strings.ToLower(issue.Description), needle) {
				continue
			}
		}
		matched = append(matched, issue)
	}

	// List is newest-first already; oldest just reverses it. Sort keeps
	// the comparison explicit in case seed timestamps ever interleave.
	if q.Sort == "oldest" {
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		})
	}

	total := len(matched)
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 || limit > 100 {
		limit = 10
	}
	start := (page - 1) * limit
	if start >= total {
		return []models.Issue{}, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return matched[start:end], total
}

// seedIssues is the mock data the process starts with. Attribution lines
// up with the seeded resident accounts so leaderboard and profile totals
// derive from the store.
func seedIssues(now time.Time) []models.Issue {
	media := "https://placehold.co/600x400"
	seeds := []models.Issue{
		{
			ID:          "6",
			Title:       "Fallen Tree Branch",
			Description: "Large branch blocking sidewalk after storm",
			Category:    models.Hazard,
			Location:    "Pine Street Park",
			Status:      models.Pending,
			Points:      55,
			ReportedBy:  "mike.johnson@example.com",
		},
		{
			ID:          "5",
			Title:       "Clogged Storm Drain",
			Description: "Storm drain is blocked causing water accumulation",
			Category:    models.Drainage,
			Location:    "Maple St & 2nd Ave",
			Status:      models.InProgress,
			Points:      60,
			ReportedBy:  "jane.smith@example.com",
		},
		{
			ID:          "4",
			Title:       "Graffiti on Public Building",
			Description: "New graffiti appeared on the community center wall",
			Category:    models.Vandalism,
			Location:    "Community Center",
			Status:      models.Pending,
			Points:      45,
			ReportedBy:  "jane.smith@example.com",
		},
		{
			ID:          "3",
			Title:       "Overflowing Garbage Bin",
			Description: "Garbage bin hasn't been collected in a week",
			Category:    models.GarbageCollection,
			Location:    "Central Park",
			Status:      models.Resolved,
			Points:      100,
			ReportedBy:  "john.doe@example.com",
		},
		{
			ID:          "2",
			Title:       "Pothole on Oak Avenue",
			Description: "Large pothole causing traffic slowdown",
			Category:    models.Pothole,
			Location:    "Oak Ave & 5th St",
			Status:      models.InProgress,
			Points:      75,
			ReportedBy:  "john.doe@example.com",
		},
		{
			ID:          "1",
			Title:       "Broken Streetlight on Main St",
			Description: "The streetlight near 123 Main St has been out for 3 days",
			Category:    models.Streetlight,
			Location:    "123 Main St",
			Status:      models.Pending,
			Points:      50,
			ReportedBy:  "john.doe@example.com",
			Media:       &media,
		},
	}
	for i := range seeds {
		// Stagger timestamps so newest-first ordering is well defined.
		seeds[i].CreatedAt = now.Add(-time.Duration(i+1) * time.Hour)
	}
	return seeds
}
