package models

import "time"

// IssueCategory enum
type IssueCategory string

const (
	General            IssueCategory = "general"
	StrayAnimal        IssueCategory = "stray-animal"
	SuspiciousActivity IssueCategory = "suspicious-activity"
	DomesticViolence   IssueCategory = "domestic-violence"
	Pothole            IssueCategory = "pothole"
	Streetlight        IssueCategory = "streetlight"
	GarbageCollection  IssueCategory = "garbage-collection"
	Vandalism          IssueCategory = "vandalism"
	Drainage           IssueCategory = "drainage"
	Hazard             IssueCategory = "hazard"
)

// IssueStatus enum
type IssueStatus string

const (
	Pending    IssueStatus = "pending"
	InProgress IssueStatus = "in-progress"
	Resolved   IssueStatus = "resolved"
)

func (s IssueStatus) Valid() bool {
	switch s {
	case Pending, InProgress, Resolved:
		return true
	}
	return false
}

func (c IssueCategory) Valid() bool {
	for _, t := range CategoryTemplates {
		if t.Category == c {
			return true
		}
	}
	return false
}

// Issue represents a neighborhood problem reported by a resident
type Issue struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    IssueCategory `json:"category"`
	Location    string        `json:"location"`
	Media       *string       `json:"media,omitempty"`
	Status      IssueStatus   `json:"status"`
	Points      int           `json:"points"`
	ReportedBy  string        `json:"reportedBy"` // reporter's account email
	CreatedAt   time.Time     `json:"createdAt"`
}

// CategoryTemplate pairs a category with the description pre-filled into
// the report form when that category is selected.
type CategoryTemplate struct {
	Category    IssueCategory `json:"category"`
	Label       string        `json:"label"`
	Description string        `json:"description"`
}

// CategoryTemplates is the fixed category catalog, in display order.
var CategoryTemplates = []CategoryTemplate{
	{General, "General Issue", "Please describe the issue you've observed."},
	{StrayAnimal, "Stray Animals", "I've spotted stray animals that need attention. They appear to be [breed/type] and are located near [specific location]."},
	{SuspiciousActivity, "Suspicious Activity", "I've noticed suspicious activity in the neighborhood. Someone was [description of activity] at approximately [time]."},
	{DomesticViolence, "Domestic Violence", "I'm concerned about a potential domestic violence situation at [address/location]. I heard/saw [description of what was observed]."},
	{Pothole, "Pothole", "There's a dangerous pothole on [street name] that needs repair. It's approximately [size estimate] and is causing traffic issues."},
	{Streetlight, "Streetlight Issue", "The streetlight at [location] is not functioning properly. It has been [flickering/out entirely] for [time period]."},
	{GarbageCollection, "Garbage Collection", "There's uncollected garbage at [location] that has been there for [time period]. It's causing [sanitation issues/attracting pests]."},
	{Vandalism, "Vandalism", "New graffiti or property damage has appeared at [location]. It affects [building/structure]."},
	{Drainage, "Drainage", "The storm drain at [location] is blocked and is causing water accumulation."},
	{Hazard, "Hazard", "There's a hazard at [location] blocking the way. It appeared after [event/time period]."},
}
