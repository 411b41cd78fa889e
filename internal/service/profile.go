package service

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/devconnect/devconnect-go/internal/model"
	"github.com/devconnect/devconnect-go/internal/repository"
)

var ErrProfileNotFound = errors.New("Profile not found")

// ProfileService handles profile business logic: the idempotent upsert,
// embedded experience/education mutation, and full account deletion.
type ProfileService struct {
	profiles ProfileStore
	users    UserStore
	posts    PostStore
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profiles ProfileStore, users UserStore, posts PostStore) *ProfileService {
	return &ProfileService{profiles: profiles, users: users, posts: posts}
}

// GetByUserID retrieves a single user's profile.
func (s *ProfileService) GetByUserID(ctx context.Context, userID int64) (*model.Profile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

// List retrieves every profile. Public, unauthenticated read.
func (s *ProfileService) List(ctx context.Context) ([]model.Profile, error) {
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, err
	}
	if profiles == nil {
		profiles = []model.Profile{}
	}
	return profiles, nil
}

// Upsert creates the caller's profile or replaces it wholesale. Status and
// at least one skill are required. Optional URLs are normalized to absolute
// https form; empty strings stay empty.
func (s *ProfileService) Upsert(ctx context.Context, userID int64, req model.UpsertProfileRequest) (*model.Profile, error) {
	ve := &model.ValidationError{}
	if req.Status == "" {
		ve.Add("status", "Status is required")
	}
	if len(req.Skills) == 0 {
		ve.Add("skills", "Skills is required")
	}
	if ve.HasErrors() {
		return nil, ve
	}

	profile := &model.Profile{
		UserID:         userID,
		Company:        req.Company,
		Website:        NormalizeURL(req.Website),
		Location:       req.Location,
		Bio:            req.Bio,
		Status:         req.Status,
		Skills:         req.Skills,
		GithubUsername: req.GithubUsername,
		Social: model.SocialLinks{
			Youtube:   NormalizeURL(req.Youtube),
			Twitter:   NormalizeURL(req.Twitter),
			Instagram: NormalizeURL(req.Instagram),
			Linkedin:  NormalizeURL(req.Linkedin),
			Facebook:  NormalizeURL(req.Facebook),
		},
	}

	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	return s.GetByUserID(ctx, userID)
}

// AddExperience prepends a work history entry to the caller's profile.
func (s *ProfileService) AddExperience(ctx context.Context, userID int64, req model.ExperienceRequest) (*model.Profile, error) {
	ve := &model.ValidationError{}
	if req.Title == "" {
		ve.Add("title", "Title is required")
	}
	if req.Company == "" {
		ve.Add("company", "Company is required")
	}

	from, to, dateErrs := parseDateRange(req.From, req.To)
	ve.Errors = append(ve.Errors, dateErrs...)
	if ve.HasErrors() {
		return nil, ve
	}

	profile, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	exp := &model.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        from,
		To:          to,
		Current:     req.Current,
		Description: req.Description,
	}

	if _, err := s.profiles.AddExperience(ctx, profile.ID, exp); err != nil {
		return nil, err
	}

	return s.GetByUserID(ctx, userID)
}

// RemoveExperience removes an experience entry by sub-id. Removing an entry
// that does not exist returns the unchanged profile, not an error.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, expID int64) (*model.Profile, error) {
	profile, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.profiles.DeleteExperience(ctx, profile.ID, expID); err != nil {
		return nil, err
	}

	return s.GetByUserID(ctx, userID)
}

// AddEducation prepends a schooling entry to the caller's profile.
func (s *ProfileService) AddEducation(ctx context.Context, userID int64, req model.EducationRequest) (*model.Profile, error) {
	ve := &model.ValidationError{}
	if req.School == "" {
		ve.Add("school", "School is required")
	}
	if req.Degree == "" {
		ve.Add("degree", "Degree is required")
	}
	if req.FieldOfStudy == "" {
		ve.Add("field_of_study", "Field of study is required")
	}

	from, to, dateErrs := parseDateRange(req.From, req.To)
	ve.Errors = append(ve.Errors, dateErrs...)
	if ve.HasErrors() {
		return nil, ve
	}

	profile, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	edu := &model.Education{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         from,
		To:           to,
		Current:      req.Current,
		Description:  req.Description,
	}

	if _, err := s.profiles.AddEducation(ctx, profile.ID, edu); err != nil {
		return nil, err
	}

	return s.GetByUserID(ctx, userID)
}

// RemoveEducation removes an education entry by sub-id. Unknown sub-ids are
// a no-op.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID, eduID int64) (*model.Profile, error) {
	profile, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.profiles.DeleteEducation(ctx, profile.ID, eduID); err != nil {
		return nil, err
	}

	return s.GetByUserID(ctx, userID)
}

// DeleteAccount removes a user's posts, profile, and account, in that order.
// The deletes are sequential with no cross-table transaction; a crash midway
// leaves partial state.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID int64) error {
	if err := s.posts.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	if err := s.profiles.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	return s.users.Delete(ctx, userID)
}

// NormalizeURL rewrites a URL to absolute https form. Empty input is
// preserved as empty rather than normalized.
func NormalizeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	u, err := url.Parse(trimmed)
	if err != nil || u.Host == "" {
		// Bare hosts like "example.com" parse as a path; re-parse with a scheme.
		u, err = url.Parse("https://" + trimmed)
		if err != nil || u.Host == "" {
			return trimmed
		}
	}

	if u.Scheme == "" || u.Scheme == "http" {
		u.Scheme = "https"
	}

	return u.String()
}

const dateLayout = "2006-01-02"

// parseDate accepts "2006-01-02" or RFC 3339 date strings.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// parseDateRange validates the from/to pair shared by experience and
// education entries: from is required and must precede to when to is given.
func parseDateRange(fromRaw, toRaw string) (time.Time, *time.Time, []model.FieldError) {
	var fieldErrs []model.FieldError
	var from time.Time
	var to *time.Time

	if fromRaw == "" {
		fieldErrs = append(fieldErrs, model.FieldError{Param: "from", Msg: "From date is required"})
	} else {
		parsed, err := parseDate(fromRaw)
		if err != nil {
			fieldErrs = append(fieldErrs, model.FieldError{Param: "from", Msg: "From date is invalid"})
		} else {
			from = parsed
		}
	}

	if toRaw != "" {
		parsed, err := parseDate(toRaw)
		if err != nil {
			fieldErrs = append(fieldErrs, model.FieldError{Param: "to", Msg: "To date is invalid"})
		} else {
			to = &parsed
		}
	}

	if len(fieldErrs) == 0 && to != nil && !from.Before(*to) {
		fieldErrs = append(fieldErrs, model.FieldError{Param: "to", Msg: "From date must be before to date"})
	}

	return from, to, fieldErrs
}
