package model

import (
	"encoding/json"
	"strings"
	"time"
)

// SocialLinks holds optional social network URLs, stored normalized.
type SocialLinks struct {
	Youtube   string `json:"youtube"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	Linkedin  string `json:"linkedin"`
	Facebook  string `json:"facebook"`
}

// Experience is a work history entry embedded in a profile, addressed by its
// own generated sub-id.
type Experience struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

// Education is a schooling entry embedded in a profile, addressed by its own
// generated sub-id.
type Education struct {
	ID           int64      `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"field_of_study"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

// Profile represents a user's developer profile. Exactly one exists per user.
// User name/avatar are joined in from the owning user record for display.
type Profile struct {
	ID             int64        `json:"id"`
	UserID         int64        `json:"user_id"`
	UserName       string       `json:"name"`
	UserAvatar     string       `json:"avatar"`
	Company        string       `json:"company"`
	Website        string       `json:"website"`
	Location       string       `json:"location"`
	Bio            string       `json:"bio"`
	Status         string       `json:"status"`
	Skills         []string     `json:"skills"`
	GithubUsername string       `json:"github_username"`
	Social         SocialLinks  `json:"social"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// SkillList accepts either a JSON array of strings or a single
// comma-separated string, normalizing to trimmed entries with empties dropped.
type SkillList []string

func (s *SkillList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = normalizeSkills(list)
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	*s = normalizeSkills(strings.Split(joined, ","))
	return nil
}

func normalizeSkills(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, skill := range raw {
		if trimmed := strings.TrimSpace(skill); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// UpsertProfileRequest represents a profile create-or-replace request.
type UpsertProfileRequest struct {
	Company        string    `json:"company"`
	Website        string    `json:"website"`
	Location       string    `json:"location"`
	Bio            string    `json:"bio"`
	Status         string    `json:"status"`
	Skills         SkillList `json:"skills"`
	GithubUsername string    `json:"github_username"`
	Youtube        string    `json:"youtube"`
	Twitter        string    `json:"twitter"`
	Instagram      string    `json:"instagram"`
	Linkedin       string    `json:"linkedin"`
	Facebook       string    `json:"facebook"`
}

// ExperienceRequest represents a request to add a work history entry.
// Dates are accepted as "2006-01-02" or RFC 3339 strings.
type ExperienceRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// EducationRequest represents a request to add a schooling entry.
type EducationRequest struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}
