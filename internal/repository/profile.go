package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/devconnect/devconnect-go/internal/model"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository handles profile persistence, including the embedded
// experience and education collections.
type ProfileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// upsertQuery is the shared SQL for create-or-replace keyed on the unique
// user_id. A user can never end up with two profile rows.
const upsertQuery = `
	INSERT INTO profiles (user_id, company, website, location, bio, status, skills,
		github_username, youtube, twitter, instagram, linkedin, facebook)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON DUPLICATE KEY UPDATE
		company         = VALUES(company),
		website         = VALUES(website),
		location        = VALUES(location),
		bio             = VALUES(bio),
		status          = VALUES(status),
		skills          = VALUES(skills),
		github_username = VALUES(github_username),
		youtube         = VALUES(youtube),
		twitter         = VALUES(twitter),
		instagram       = VALUES(instagram),
		linkedin        = VALUES(linkedin),
		facebook        = VALUES(facebook)`

// Upsert creates the profile if absent or replaces its fields if present.
func (r *ProfileRepository) Upsert(ctx context.Context, p *model.Profile) error {
	skills, err := json.Marshal(p.Skills)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, upsertQuery,
		p.UserID, p.Company, p.Website, p.Location, p.Bio, p.Status, string(skills),
		p.GithubUsername,
		p.Social.Youtube, p.Social.Twitter, p.Social.Instagram, p.Social.Linkedin, p.Social.Facebook,
	)
	return err
}

const selectProfile = `
	SELECT p.id, p.user_id, u.name, u.avatar, p.company, p.website, p.location,
		p.bio, p.status, p.skills, p.github_username,
		p.youtube, p.twitter, p.instagram, p.linkedin, p.facebook,
		p.created_at, p.updated_at
	FROM profiles p
	JOIN users u ON u.id = p.user_id`

// GetByUserID retrieves a profile, with its owner's name and avatar joined in
// and its experience and education collections loaded.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*model.Profile, error) {
	row := r.db.QueryRowContext(ctx, selectProfile+` WHERE p.user_id = ?`, userID)

	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if err := r.loadCollections(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// List retrieves all profiles with their embedded collections.
func (r *ProfileRepository) List(ctx context.Context) ([]model.Profile, error) {
	rows, err := r.db.QueryContext(ctx, selectProfile+` ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []model.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range profiles {
		if err := r.loadCollections(ctx, &profiles[i]); err != nil {
			return nil, err
		}
	}

	return profiles, nil
}

// DeleteByUserID removes a user's profile. Experience and education rows go
// with it via foreign key cascade. Deleting an absent profile is not an error.
func (r *ProfileRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE user_id = ?`, userID)
	return err
}

// AddExperience inserts a work history entry and returns its generated sub-id.
func (r *ProfileRepository) AddExperience(ctx context.Context, profileID int64, exp *model.Experience) (int64, error) {
	query := `INSERT INTO experience (profile_id, title, company, location, from_date, to_date, current, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		profileID, exp.Title, exp.Company, exp.Location, exp.From, exp.To, exp.Current, exp.Description,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// DeleteExperience removes an experience entry by sub-id. Removing an entry
// that does not exist is a no-op.
func (r *ProfileRepository) DeleteExperience(ctx context.Context, profileID, expID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM experience WHERE id = ? AND profile_id = ?`, expID, profileID)
	return err
}

// AddEducation inserts a schooling entry and returns its generated sub-id.
func (r *ProfileRepository) AddEducation(ctx context.Context, profileID int64, edu *model.Education) (int64, error) {
	query := `INSERT INTO education (profile_id, school, degree, field_of_study, from_date, to_date, current, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		profileID, edu.School, edu.Degree, edu.FieldOfStudy, edu.From, edu.To, edu.Current, edu.Description,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// DeleteEducation removes an education entry by sub-id. Removing an entry
// that does not exist is a no-op.
func (r *ProfileRepository) DeleteEducation(ctx context.Context, profileID, eduID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM education WHERE id = ? AND profile_id = ?`, eduID, profileID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*model.Profile, error) {
	p := &model.Profile{}
	var skills sql.NullString

	err := row.Scan(
		&p.ID, &p.UserID, &p.UserName, &p.UserAvatar, &p.Company, &p.Website, &p.Location,
		&p.Bio, &p.Status, &skills, &p.GithubUsername,
		&p.Social.Youtube, &p.Social.Twitter, &p.Social.Instagram, &p.Social.Linkedin, &p.Social.Facebook,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Skills = []string{}
	if skills.Valid && skills.String != "" {
		if err := json.Unmarshal([]byte(skills.String), &p.Skills); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// loadCollections populates the experience and education lists, newest entry
// first (descending insertion order).
func (r *ProfileRepository) loadCollections(ctx context.Context, p *model.Profile) error {
	p.Experience = []model.Experience{}
	p.Education = []model.Education{}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, company, location, from_date, to_date, current, description
		FROM experience WHERE profile_id = ? ORDER BY id DESC`, p.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var e model.Experience
		if err := rows.Scan(&e.ID, &e.Title, &e.Company, &e.Location, &e.From, &e.To, &e.Current, &e.Description); err != nil {
			return err
		}
		p.Experience = append(p.Experience, e)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	eduRows, err := r.db.QueryContext(ctx,
		`SELECT id, school, degree, field_of_study, from_date, to_date, current, description
		FROM education WHERE profile_id = ? ORDER BY id DESC`, p.ID)
	if err != nil {
		return err
	}
	defer eduRows.Close()

	for eduRows.Next() {
		var e model.Education
		if err := eduRows.Scan(&e.ID, &e.School, &e.Degree, &e.FieldOfStudy, &e.From, &e.To, &e.Current, &e.Description); err != nil {
			return err
		}
		p.Education = append(p.Education, e)
	}

	return eduRows.Err()
}
