package teams

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new team. A duplicate name maps to ErrAlreadyExists.
func (r *PGRepo) Create(ctx context.Context, team Team) error {
	const query = `
INSERT INTO teams (id, name, type, owner_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		team.ID,
		team.Name,
		team.Type,
		nullableString(team.OwnerID),
		team.CreatedAt,
		team.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return ErrAlreadyExists
	}
	return err
}

// GetByID fetches a team by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Team, error) {
	const query = `
SELECT id, name, type, owner_id, created_at, updated_at
FROM teams
WHERE id = $1
LIMIT 1`
	var team Team
	var ownerID sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&team.ID,
		&team.Name,
		&team.Type,
		&ownerID,
		&team.CreatedAt,
		&team.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Team{}, ErrNotFound
		}
		return Team{}, err
	}
	if ownerID.Valid {
		team.OwnerID = &ownerID.String
	}
	return team, nil
}

// List returns all teams in creation order.
func (r *PGRepo) List(ctx context.Context) ([]Team, error) {
	const query = `
SELECT id, name, type, owner_id, created_at, updated_at
FROM teams
ORDER BY created_at ASC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Team
	for rows.Next() {
		var team Team
		var ownerID sql.NullString
		if err := rows.Scan(
			&team.ID,
			&team.Name,
			&team.Type,
			&ownerID,
			&team.CreatedAt,
			&team.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if ownerID.Valid {
			team.OwnerID = &ownerID.String
		}
		out = append(out, team)
	}
	return out, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func nullableString(value *string) any {
	if value == nil || *value == "" {
		return nil
	}
	return *value
}

var _ Repo = (*PGRepo)(nil)
