package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the singleton record behind the hero/about/contact blocks of
// the public page. It is seeded once and only ever updated in place; the id
// and created_at columns are owned by the store and never writable.
type Profile struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Title          string    `json:"title"`
	Email          string    `json:"email"`
	Location       string    `json:"location"`
	Status         string    `json:"status"`
	Bio            string    `json:"bio"`
	LongBio        string    `json:"long_bio"`
	GithubURL      string    `json:"github_url"`
	LinkedinURL    string    `json:"linkedin_url"`
	TwitterURL     string    `json:"twitter_url"`
	SEOTitle       string    `json:"seo_title"`
	SEODescription string    `json:"seo_description"`
	ResumeURL      string    `json:"resume_url"`
	CreatedAt      time.Time `json:"created_at"`
}

// ProfileFields enumerates the writable profile columns, in the order they
// are bound on update. Keys outside this list are dropped from write
// payloads, which also covers stripping id and created_at.
var ProfileFields = []string{
	"name", "title", "email", "location", "status",
	"bio", "long_bio",
	"github_url", "linkedin_url", "twitter_url",
	"seo_title", "seo_description", "resume_url",
}

type Project struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	GithubURL   string    `json:"github_url"`
	ImageURL    string    `json:"image_url"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

type Experience struct {
	ID          uuid.UUID `json:"id"`
	Role        string    `json:"role"`
	Company     string    `json:"company"`
	Period      string    `json:"period"`
	Description string    `json:"description"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

type SkillCategory struct {
	ID        uuid.UUID `json:"id"`
	Category  string    `json:"category"`
	Items     []string  `json:"items"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

type Certificate struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Issuer    string    `json:"issuer"`
	Date      string    `json:"date"`
	URL       string    `json:"url"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

type JourneyEntry struct {
	ID          uuid.UUID `json:"id"`
	Year        string    `json:"year"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

// Snapshot is the full content state returned by a single read. List
// sections are always non-nil so they marshal as [] rather than null.
type Snapshot struct {
	Profile      Profile         `json:"profile"`
	Projects     []Project       `json:"projects"`
	Experiences  []Experience    `json:"experiences"`
	Skills       []SkillCategory `json:"skills"`
	Certificates []Certificate   `json:"certificates"`
	Journey      []JourneyEntry  `json:"journey"`
}

// Normalize replaces nil list sections with empty slices.
func (s *Snapshot) Normalize() {
	if s.Projects == nil {
		s.Projects = []Project{}
	}
	if s.Experiences == nil {
		s.Experiences = []Experience{}
	}
	if s.Skills == nil {
		s.Skills = []SkillCategory{}
	}
	if s.Certificates == nil {
		s.Certificates = []Certificate{}
	}
	if s.Journey == nil {
		s.Journey = []JourneyEntry{}
	}
}
