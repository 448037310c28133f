package domain

import "time"

// SectionKey names one independently stored site section.
type SectionKey string

const (
	SectionHero             SectionKey = "hero"
	SectionEducation        SectionKey = "education"
	SectionCertifications   SectionKey = "certifications"
	SectionSocialLinks      SectionKey = "social_links"
	SectionRecommendations  SectionKey = "recommendations"
	SectionTechStack        SectionKey = "tech_stack"
	SectionVolunteering     SectionKey = "volunteering"
	SectionWorkExperience   SectionKey = "work_experience"
	SectionStats            SectionKey = "stats"
	SectionMetaTags         SectionKey = "meta_tags"
	SectionPersonalNote     SectionKey = "personal_note"
	SectionSecurityApproach SectionKey = "security_approach"
)

// SectionKeys lists every known section in canonical order.
var SectionKeys = []SectionKey{
	SectionHero,
	SectionEducation,
	SectionCertifications,
	SectionSocialLinks,
	SectionRecommendations,
	SectionTechStack,
	SectionVolunteering,
	SectionWorkExperience,
	SectionStats,
	SectionMetaTags,
	SectionPersonalNote,
	SectionSecurityApproach,
}

// ValidSectionKey reports whether s names a known section.
func ValidSectionKey(s string) bool {
	for _, k := range SectionKeys {
		if string(k) == s {
			return true
		}
	}
	return false
}

// Source tags where a resolved section payload came from.
type Source string

const (
	SourceDatabase Source = "database"
	SourceConfig   Source = "config"
)

// Hero is the landing section payload.
type Hero struct {
	Name        string     `json:"name"`
	Title       string     `json:"title"`
	Bio         string     `json:"bio"`
	Description string     `json:"description"`
	TalksAbout  []string   `json:"talksAbout"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	StartYear   int    `json:"startYear,omitempty"`
	EndYear     int    `json:"endYear,omitempty"`
	Description string `json:"description,omitempty"`
}

type Certification struct {
	Name     string `json:"name"`
	Issuer   string `json:"issuer,omitempty"`
	IssuedAt string `json:"issuedAt,omitempty"`
	URL      string `json:"url,omitempty"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Label    string `json:"label,omitempty"`
}

type Recommendation struct {
	Author string `json:"author"`
	Role   string `json:"role,omitempty"`
	Text   string `json:"text"`
	Date   string `json:"date,omitempty"`
}

type TechStackGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

type VolunteeringEntry struct {
	Organization string `json:"organization"`
	Role         string `json:"role,omitempty"`
	StartYear    int    `json:"startYear,omitempty"`
	EndYear      int    `json:"endYear,omitempty"`
	Description  string `json:"description,omitempty"`
}

type WorkExperienceEntry struct {
	Company    string   `json:"company"`
	Role       string   `json:"role"`
	Start      string   `json:"start,omitempty"`
	End        string   `json:"end,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

// SiteStats carries the headline counters shown on the home page.
type SiteStats struct {
	Projects        int `json:"projects"`
	Publications    int `json:"publications"`
	Citations       int `json:"citations"`
	YearsExperience int `json:"yearsExperience"`
}

type MetaTags struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	OGImage     string   `json:"ogImage,omitempty"`
}

// PersonalNote is a single long-form text section. The text may carry
// markup and is sanitized before it is persisted.
type PersonalNote struct {
	Text      string     `json:"text"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type SecurityApproach struct {
	Text      string     `json:"text"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Setting is one arbitrary key/value pair outside the typed sections.
type Setting struct {
	Key       string     `json:"key"`
	Value     string     `json:"value"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// FallbackContent holds the statically configured payload for every
// section. It is built once at startup from code-level defaults and is
// never mutated at runtime.
type FallbackContent struct {
	Hero             Hero
	Education        []EducationEntry
	Certifications   []Certification
	SocialLinks      []SocialLink
	Recommendations  []Recommendation
	TechStack        []TechStackGroup
	Volunteering     []VolunteeringEntry
	WorkExperience   []WorkExperienceEntry
	Stats            SiteStats
	MetaTags         MetaTags
	PersonalNote     PersonalNote
	SecurityApproach SecurityApproach
	Hobbies          []Hobby
}
