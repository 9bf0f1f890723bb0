package files

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new file at revision 1.
func (r *PGRepo) Create(ctx context.Context, f File) error {
	const query = `
INSERT INTO files (id, project_id, name, template, schema_version, schema_json, revision, updated_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	revision := f.Revision
	if revision == 0 {
		revision = 1
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		f.ID,
		f.ProjectID,
		f.Name,
		f.Template,
		f.SchemaVersion,
		[]byte(f.Schema),
		revision,
		nullableString(f.UpdatedBy),
		f.CreatedAt,
		f.UpdatedAt,
	)
	return err
}

// GetByID fetches a file by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (File, error) {
	const query = `
SELECT id, project_id, name, template, schema_version, schema_json, revision, updated_by, created_at, updated_at
FROM files
WHERE id = $1
LIMIT 1`
	var f File
	var schema []byte
	var updatedBy sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&f.ID,
		&f.ProjectID,
		&f.Name,
		&f.Template,
		&f.SchemaVersion,
		&schema,
		&f.Revision,
		&updatedBy,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return File{}, ErrNotFound
		}
		return File{}, err
	}
	f.Schema = json.RawMessage(schema)
	if updatedBy.Valid {
		f.UpdatedBy = &updatedBy.String
	}
	return f, nil
}

// ListByProject lists files in a project, most recently updated first.
func (r *PGRepo) ListByProject(ctx context.Context, projectID string) ([]File, error) {
	const query = `
SELECT id, project_id, name, template, schema_version, schema_json, revision, updated_by, created_at, updated_at
FROM files
WHERE project_id = $1
ORDER BY updated_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []File
	for rows.Next() {
		var f File
		var schema []byte
		var updatedBy sql.NullString
		if err := rows.Scan(
			&f.ID,
			&f.ProjectID,
			&f.Name,
			&f.Template,
			&f.SchemaVersion,
			&schema,
			&f.Revision,
			&updatedBy,
			&f.CreatedAt,
			&f.UpdatedAt,
		); err != nil {
			return nil, err
		}
		f.Schema = json.RawMessage(schema)
		if updatedBy.Valid {
			f.UpdatedBy = &updatedBy.String
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// UpdateIfRevision performs the conditional write as one statement. The
// revision check and the increment happen inside the same UPDATE, so two
// writers racing on the same expected revision can never both match. Zero
// rows back means the guard failed; no separate read-modify-write window
// exists for it to report stale data.
func (r *PGRepo) UpdateIfRevision(ctx context.Context, id string, expectedRevision int64, schema json.RawMessage, updatedBy *string, updatedAt time.Time) (File, bool, error) {
	const query = `
UPDATE files
SET schema_json = $1, revision = revision + 1, updated_by = $2, updated_at = $3
WHERE id = $4 AND revision = $5
RETURNING revision, updated_at`

	var f File
	err := r.DB.QueryRowContext(
		ctx,
		query,
		[]byte(schema),
		nullableString(updatedBy),
		updatedAt,
		id,
		expectedRevision,
	).Scan(&f.Revision, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return File{}, false, nil
		}
		return File{}, false, err
	}
	f.ID = id
	f.Schema = schema
	f.UpdatedBy = updatedBy
	return f, true, nil
}

func nullableString(value *string) any {
	if value == nil || *value == "" {
		return nil
	}
	return *value
}

var _ Repo = (*PGRepo)(nil)
