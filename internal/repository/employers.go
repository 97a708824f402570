package repository

import (
	"context"
	"time"

	"github.com/f1ction1/GeneratorGrafika/internal/domain"
)

// CreateEmployer inserts the employer and links the owner to it in one
// transaction; a company cannot exist without its owner pointing at it.
func (r *Repository) CreateEmployer(employer *domain.Employer, owner *domain.User) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	insertEmployer := `
		INSERT INTO employers (name, address, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version
	`
	args := []any{employer.Name, employer.Address, owner.ID}
	if err := tx.QueryRowContext(ctx, insertEmployer, args...).Scan(&employer.ID, &employer.CreatedAt, &employer.Version); err != nil {
		return err
	}

	linkOwner := `
		UPDATE users
		SET employer_id = $1, version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`
	if err := tx.QueryRowContext(ctx, linkOwner, employer.ID, owner.ID, owner.Version).Scan(&owner.Version); err != nil {
		return err
	}
	owner.EmployerID = &employer.ID

	return tx.Commit()
}

func (r *Repository) GetEmployerByID(id int64) (*domain.Employer, error) {
	query := `
		SELECT name, address, owner_id, created_at, version
		FROM employers WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	employer := &domain.Employer{
		ID: id,
	}

	dst := []any{&employer.Name, &employer.Address, &employer.OwnerID, &employer.CreatedAt, &employer.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return employer, nil
}

func (r *Repository) UpdateEmployer(employer *domain.Employer) error {
	query := `
		UPDATE employers
		SET name = $1, address = $2, version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{employer.Name, employer.Address, employer.ID, employer.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&employer.CreatedAt, &employer.Version); err != nil {
		return err
	}

	return nil
}
