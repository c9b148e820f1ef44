package doctors

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// PgxQuerier is the subset of pgxpool.Pool the repository needs.
// pgxmock satisfies it in tests.
type PgxQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository stores the doctor directory in the relational database.
type PostgresRepository struct {
	db PgxQuerier
}

// NewPostgresRepository initializes a repo backed by a pgx pool or mock.
func NewPostgresRepository(db PgxQuerier) *PostgresRepository {
	if db == nil {
		panic("doctors: pgx querier required")
	}
	return &PostgresRepository{db: db}
}

const doctorColumns = `id, name, email, specialization, qualifications, experience,
	hospital, location, rating, review_count, consultation_fee, bio, availability`

// GetByID fetches a doctor profile.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors WHERE id = $1`
	doc, err := scanDoctor(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("doctors: select failed: %w", err)
	}
	return doc, nil
}

// List returns the whole directory ordered by name.
func (r *PostgresRepository) List(ctx context.Context) ([]*Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("doctors: list failed: %w", err)
	}
	defer rows.Close()

	var out []*Doctor
	for rows.Next() {
		doc, err := scanDoctor(rows)
		if err != nil {
			return nil, fmt.Errorf("doctors: scan failed: %w", err)
		}
		out = append(out, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("doctors: list rows: %w", err)
	}
	return out, nil
}

// ReplaceAvailability swaps the slot template wholesale.
func (r *PostgresRepository) ReplaceAvailability(ctx context.Context, id string, slots []string) (*Doctor, error) {
	query := `
		UPDATE doctors SET availability = $2
		WHERE id = $1
		RETURNING ` + doctorColumns
	doc, err := scanDoctor(r.db.QueryRow(ctx, query, id, slots))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("doctors: update availability failed: %w", err)
	}
	return doc, nil
}

func scanDoctor(row pgx.Row) (*Doctor, error) {
	var doc Doctor
	if err := row.Scan(
		&doc.ID,
		&doc.Name,
		&doc.Email,
		&doc.Specialization,
		&doc.Qualifications,
		&doc.Experience,
		&doc.Hospital,
		&doc.Location,
		&doc.Rating,
		&doc.ReviewCount,
		&doc.ConsultationFee,
		&doc.Bio,
		&doc.Availability,
	); err != nil {
		return nil, err
	}
	return &doc, nil
}
