package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/VipulG-code/Mental-health-Analysis-of-Social-Media-Users/internal/types"
)

// Repository handles database operations
type Repository struct {
	db *DB
}

// NewRepository creates a new repository
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// PoolStats exposes the underlying connection pool statistics
func (r *Repository) PoolStats() map[string]interface{} {
	return r.db.GetPoolStats()
}

// GetOrCreateUser gets an existing user or creates a new one based on IP address
func (r *Repository) GetOrCreateUser(ipAddress, userAgent string) (*User, error) {
	var user User
	err := r.db.QueryRow(`
		SELECT id, ip_address, user_agent, created_at, updated_at
		FROM users
		WHERE ip_address = ?
		ORDER BY created_at DESC
		LIMIT 1
	`, ipAddress).Scan(
		&user.ID, &user.IPAddress, &user.UserAgent, &user.CreatedAt, &user.UpdatedAt,
	)

	if err == nil {
		_, err = r.db.Exec(`
			UPDATE users SET updated_at = ?, user_agent = ? WHERE id = ?
		`, time.Now(), userAgent, user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
		return &user, nil
	}

	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	user = *NewUser(ipAddress, userAgent)
	_, err = r.db.Exec(`
		INSERT INTO users (id, ip_address, user_agent, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, user.ID, user.IPAddress, user.UserAgent, user.CreatedAt, user.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// GetUser fetches a user by ID
func (r *Repository) GetUser(userID string) (*User, error) {
	var user User
	err := r.db.QueryRow(`
		SELECT id, ip_address, user_agent, created_at, updated_at
		FROM users WHERE id = ?
	`, userID).Scan(
		&user.ID, &user.IPAddress, &user.UserAgent, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

// AppendResponse adds a completed check-in to the shared corpus. Appends are
// serialized by sqlite itself; the corpus is never updated in place.
func (r *Repository) AppendResponse(rec *types.ResponseRecord) error {
	stmt, err := r.db.GetPreparedStatement("insert_response")
	if err != nil {
		return err
	}

	_, err = stmt.Exec(
		rec.ID, rec.UserID, rec.Timestamp, nullableString(string(rec.Platform)),
		rec.Mood, nullableInt(rec.Sleep), rec.Stress, rec.Anxiety,
		nullableString(rec.PlatformTime), nullableString(string(rec.ContentImpact)),
		nullableString(rec.Notes), rec.DeterministicScore, nullableInt(rec.ModelScore),
	)
	if err != nil {
		return fmt.Errorf("failed to append response: %w", err)
	}

	return nil
}

// History returns a user's check-ins in chronological order.
func (r *Repository) History(userID string) ([]*types.ResponseRecord, error) {
	stmt, err := r.db.GetPreparedStatement("get_history")
	if err != nil {
		return nil, err
	}

	rows, err := stmt.Query(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	return scanResponses(rows)
}

// Corpus returns every check-in across all users, in append order. This is
// the model's training input.
func (r *Repository) Corpus() ([]*types.ResponseRecord, error) {
	stmt, err := r.db.GetPreparedStatement("get_corpus")
	if err != nil {
		return nil, err
	}

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("failed to query corpus: %w", err)
	}
	defer rows.Close()

	return scanResponses(rows)
}

// CountResponses returns the corpus size.
func (r *Repository) CountResponses() (int, error) {
	stmt, err := r.db.GetPreparedStatement("count_responses")
	if err != nil {
		return 0, err
	}

	var count int
	if err := stmt.QueryRow().Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count responses: %w", err)
	}
	return count, nil
}

// scanResponses maps result rows back onto response records, restoring the
// present/absent semantics of the optional columns.
func scanResponses(rows *sql.Rows) ([]*types.ResponseRecord, error) {
	var records []*types.ResponseRecord

	for rows.Next() {
		var (
			rec           types.ResponseRecord
			platform      sql.NullString
			sleep         sql.NullInt64
			platformTime  sql.NullString
			contentImpact sql.NullString
			notes         sql.NullString
			modelScore    sql.NullInt64
		)

		err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Timestamp, &platform,
			&rec.Mood, &sleep, &rec.Stress, &rec.Anxiety,
			&platformTime, &contentImpact, &notes,
			&rec.DeterministicScore, &modelScore,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}

		if platform.Valid {
			rec.Platform = types.Platform(platform.String)
		}
		if sleep.Valid {
			v := int(sleep.Int64)
			rec.Sleep = &v
		}
		if platformTime.Valid {
			rec.PlatformTime = platformTime.String
		}
		if contentImpact.Valid {
			rec.ContentImpact = types.ContentImpact(contentImpact.String)
		}
		if notes.Valid {
			rec.Notes = notes.String
		}
		if modelScore.Valid {
			v := int(modelScore.Int64)
			rec.ModelScore = &v
		}

		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate responses: %w", err)
	}

	return records, nil
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullableInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
