package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"petclinic/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (int, error) {
	var id int
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO pets (owner_id, name, birth_date, type)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`,
		p.OwnerID,
		p.Name,
		dateOnly(p.BirthDate),
		string(p.Type),
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, pets.ErrOwnerNotFound
		}
		return 0, err
	}
	return id, nil
}

// Update no permite mover la mascota a otro dueño.
func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			birth_date = $3,
			type = $4
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		dateOnly(p.BirthDate),
		string(p.Type),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_id, name, birth_date, type
		FROM pets
		WHERE id = $1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID int) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_id, name, birth_date, type
		FROM pets
		WHERE owner_id = $1
		ORDER BY lower(name) ASC, id ASC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPet(s scanner) (pets.Pet, error) {
	var (
		p       pets.Pet
		petType string
	)
	if err := s.Scan(&p.ID, &p.OwnerID, &p.Name, &p.BirthDate, &petType); err != nil {
		return pets.Pet{}, err
	}
	p.Type = pets.PetType(petType)
	p.BirthDate = dateOnly(p.BirthDate)
	return p, nil
}

// las columnas son DATE; pgx devuelve medianoche UTC y así lo guardamos.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
