package rest

import (
	"encoding/json"
	"strings"
	"time"

	"folio/domain"
)

// FlexibleStringList accepts either a JSON array of strings or a single
// comma-separated string. Admin UIs send both shapes.
type FlexibleStringList []string

func (f *FlexibleStringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*f = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}

	parts := strings.Split(single, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	*f = result
	return nil
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type sessionResponse struct {
	Subject   string    `json:"subject"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type hobbyRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	ImageURL    string             `json:"imageUrl"`
	Tags        FlexibleStringList `json:"tags"`
}

func (r hobbyRequest) toDomain() domain.Hobby {
	return domain.Hobby{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Tags:        r.Tags,
	}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

type subscribeResponse struct {
	Email   string `json:"email"`
	Created bool   `json:"created"`
}

type visitRequest struct {
	VisitorID string `json:"visitorId"`
	Path      string `json:"path"`
	Referrer  string `json:"referrer"`
}

type visitResponse struct {
	VisitorID string `json:"visitorId"`
}

type pageViewRequest struct {
	VisitorID       string  `json:"visitorId"`
	Path            string  `json:"path"`
	DurationSeconds float64 `json:"durationSeconds"`
	ScrollDepth     float64 `json:"scrollDepth"`
}

type performanceRequest struct {
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
	Path   string  `json:"path"`
}

type settingRequest struct {
	Value string `json:"value"`
}

type hobbiesResponse struct {
	Hobbies []domain.Hobby `json:"hobbies"`
	Source  domain.Source  `json:"_source,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}
