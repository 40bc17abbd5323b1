package postgres

import (
	"context"
	"database/sql"

	"petclinic/internal/domain/visits"
)

type VisitsRepo struct {
	db *sql.DB
}

func NewVisitsRepo(db *sql.DB) *VisitsRepo {
	return &VisitsRepo{db: db}
}

func (r *VisitsRepo) Create(ctx context.Context, v visits.Visit) (int, error) {
	var id int
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO visits (pet_id, visit_date, description)
		VALUES ($1, $2, $3)
		RETURNING id
	`,
		v.PetID,
		dateOnly(v.Date),
		v.Description,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, visits.ErrPetNotFound
		}
		return 0, err
	}
	return id, nil
}

func (r *VisitsRepo) ListByPet(ctx context.Context, petID int) ([]visits.Visit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, visit_date, description
		FROM visits
		WHERE pet_id = $1
		ORDER BY visit_date ASC, id ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]visits.Visit, 0)
	for rows.Next() {
		var v visits.Visit
		if err := rows.Scan(&v.ID, &v.PetID, &v.Date, &v.Description); err != nil {
			return nil, err
		}
		v.Date = dateOnly(v.Date)
		out = append(out, v)
	}

	return out, rows.Err()
}
