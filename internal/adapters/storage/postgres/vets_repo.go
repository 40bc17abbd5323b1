package postgres

import (
	"context"
	"database/sql"

	"petclinic/internal/domain/vets"
)

type VetsRepo struct {
	db *sql.DB
}

func NewVetsRepo(db *sql.DB) *VetsRepo {
	return &VetsRepo{db: db}
}

// List arma cada Vet a partir del LEFT JOIN; las filas llegan agrupadas por vet.
func (r *VetsRepo) List(ctx context.Context) ([]vets.Vet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT v.id, v.first_name, v.last_name, s.id, s.name
		FROM vets v
		LEFT JOIN vet_specialties vs ON vs.vet_id = v.id
		LEFT JOIN specialties s ON s.id = vs.specialty_id
		ORDER BY v.last_name ASC, v.id ASC, s.name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vets.Vet, 0)
	for rows.Next() {
		var (
			v        vets.Vet
			specID   sql.NullInt64
			specName sql.NullString
		)
		if err := rows.Scan(&v.ID, &v.FirstName, &v.LastName, &specID, &specName); err != nil {
			return nil, err
		}

		if n := len(out); n == 0 || out[n-1].ID != v.ID {
			v.Specialties = make([]vets.Specialty, 0)
			out = append(out, v)
		}
		if specID.Valid {
			last := &out[len(out)-1]
			last.Specialties = append(last.Specialties, vets.Specialty{
				ID:   int(specID.Int64),
				Name: specName.String,
			})
		}
	}

	return out, rows.Err()
}
