package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// migrations are applied in order at startup. Statements are idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGINT AUTO_INCREMENT PRIMARY KEY,
		name          VARCHAR(255) NOT NULL,
		email         VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		avatar        VARCHAR(512) NOT NULL DEFAULT '',
		created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_users_email (email)
	)`,
	`CREATE TABLE IF NOT EXISTS profiles (
		id              BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id         BIGINT NOT NULL,
		company         VARCHAR(255) NOT NULL DEFAULT '',
		website         VARCHAR(512) NOT NULL DEFAULT '',
		location        VARCHAR(255) NOT NULL DEFAULT '',
		bio             TEXT,
		status          VARCHAR(255) NOT NULL,
		skills          TEXT,
		github_username VARCHAR(255) NOT NULL DEFAULT '',
		youtube         VARCHAR(512) NOT NULL DEFAULT '',
		twitter         VARCHAR(512) NOT NULL DEFAULT '',
		instagram       VARCHAR(512) NOT NULL DEFAULT '',
		linkedin        VARCHAR(512) NOT NULL DEFAULT '',
		facebook        VARCHAR(512) NOT NULL DEFAULT '',
		created_at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_profiles_user (user_id),
		CONSTRAINT fk_profiles_user FOREIGN KEY (user_id) REFERENCES users (id)
	)`,
	`CREATE TABLE IF NOT EXISTS experience (
		id          BIGINT AUTO_INCREMENT PRIMARY KEY,
		profile_id  BIGINT NOT NULL,
		title       VARCHAR(255) NOT NULL,
		company     VARCHAR(255) NOT NULL,
		location    VARCHAR(255) NOT NULL DEFAULT '',
		from_date   DATETIME NOT NULL,
		to_date     DATETIME NULL,
		current     BOOLEAN NOT NULL DEFAULT FALSE,
		description TEXT,
		CONSTRAINT fk_experience_profile FOREIGN KEY (profile_id) REFERENCES profiles (id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS education (
		id             BIGINT AUTO_INCREMENT PRIMARY KEY,
		profile_id     BIGINT NOT NULL,
		school         VARCHAR(255) NOT NULL,
		degree         VARCHAR(255) NOT NULL,
		field_of_study VARCHAR(255) NOT NULL DEFAULT '',
		from_date      DATETIME NOT NULL,
		to_date        DATETIME NULL,
		current        BOOLEAN NOT NULL DEFAULT FALSE,
		description    TEXT,
		CONSTRAINT fk_education_profile FOREIGN KEY (profile_id) REFERENCES profiles (id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS posts (
		id         BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id    BIGINT NOT NULL,
		text       TEXT NOT NULL,
		name       VARCHAR(255) NOT NULL DEFAULT '',
		avatar     VARCHAR(512) NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		KEY idx_posts_user (user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS post_likes (
		post_id BIGINT NOT NULL,
		user_id BIGINT NOT NULL,
		PRIMARY KEY (post_id, user_id),
		CONSTRAINT fk_likes_post FOREIGN KEY (post_id) REFERENCES posts (id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS post_comments (
		id         BIGINT AUTO_INCREMENT PRIMARY KEY,
		post_id    BIGINT NOT NULL,
		user_id    BIGINT NOT NULL,
		text       TEXT NOT NULL,
		name       VARCHAR(255) NOT NULL DEFAULT '',
		avatar     VARCHAR(512) NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT fk_comments_post FOREIGN KEY (post_id) REFERENCES posts (id) ON DELETE CASCADE
	)`,
}

// Migrate applies the schema migrations in order.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return nil
}
