package projects

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

// Create inserts a new project. A duplicate normalized name within the team
// maps to ErrAlreadyExists.
func (r *PGRepo) Create(ctx context.Context, project Project) error {
	const query = `
INSERT INTO projects (id, team_id, name, name_normalized, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		project.ID,
		project.TeamID,
		project.Name,
		project.NameNormalized,
		project.CreatedAt,
		project.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return ErrAlreadyExists
	}
	return err
}

// Exists reports whether a project with the given ID exists.
func (r *PGRepo) Exists(ctx context.Context, id string) (bool, error) {
	const query = `SELECT 1 FROM projects WHERE id = $1 LIMIT 1`
	var one int
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListByTeam lists a team's projects with file counts and previews, most
// recently updated first.
func (r *PGRepo) ListByTeam(ctx context.Context, teamID string) ([]Summary, error) {
	const query = `
SELECT p.id, p.team_id, p.name, p.name_normalized, p.created_at, p.updated_at, COUNT(f.id)
FROM projects p
LEFT JOIN files f ON f.project_id = p.id
WHERE p.team_id = $1
GROUP BY p.id
ORDER BY p.updated_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Summary
	index := make(map[string]int)
	for rows.Next() {
		var s Summary
		if err := rows.Scan(
			&s.ID,
			&s.TeamID,
			&s.Name,
			&s.NameNormalized,
			&s.CreatedAt,
			&s.UpdatedAt,
			&s.FileCount,
		); err != nil {
			return nil, err
		}
		index[s.ID] = len(out)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	if err := r.attachPreviews(ctx, teamID, out, index); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PGRepo) attachPreviews(ctx context.Context, teamID string, out []Summary, index map[string]int) error {
	const query = `
SELECT project_id, id, name, template
FROM (
    SELECT f.project_id, f.id, f.name, f.template,
           ROW_NUMBER() OVER (PARTITION BY f.project_id ORDER BY f.updated_at DESC) AS rn
    FROM files f
    JOIN projects p ON p.id = f.project_id
    WHERE p.team_id = $1
) ranked
WHERE rn <= $2`

	rows, err := r.DB.QueryContext(ctx, query, teamID, previewLimit)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var projectID string
		var preview FilePreview
		if err := rows.Scan(&projectID, &preview.ID, &preview.Name, &preview.Template); err != nil {
			return err
		}
		if i, ok := index[projectID]; ok {
			out[i].Previews = append(out[i].Previews, preview)
		}
	}
	return rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ Repo = (*PGRepo)(nil)
