package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/lib/pq"

	"github.com/gaspartv/api-whatsapp-fake/internal/entity"
)

type GuestRepository struct {
	DB *sql.DB
}

func NewGuestRepository(db *sql.DB) *GuestRepository {
	return &GuestRepository{DB: db}
}

// FindByPhone retorna (nil, nil) quando o telefone não existe.
// É o check de duplicidade do import em massa.
func (r *GuestRepository) FindByPhone(ctx context.Context, phone string) (*entity.Guest, error) {
	query := `
		SELECT id, name, phone, presente, acompanhantes, confirmed, created_at, updated_at
		FROM guests
		WHERE phone = $1
		LIMIT 1
	`

	guest, err := scanGuest(r.DB.QueryRowContext(ctx, query, phone))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return guest, nil
}

func (r *GuestRepository) Create(ctx context.Context, g *entity.Guest) error {
	query := `
		INSERT INTO guests (name, phone, presente, acompanhantes, confirmed)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.DB.QueryRowContext(ctx, query,
		g.Name,
		g.Phone,
		g.Presente,
		g.Acompanhantes,
		g.Confirmed,
	).Scan(&g.ID, &g.CreatedAt)

	if err != nil {
		log.Printf("❌ Erro crítico no banco: %v", err)
		return err
	}

	return nil
}

func (r *GuestRepository) ListAll(ctx context.Context) ([]entity.Guest, error) {
	query := `
		SELECT id, name, phone, presente, acompanhantes, confirmed, created_at, updated_at
		FROM guests
		ORDER BY id
	`
	return r.list(ctx, query)
}

// ListUnconfirmed alimenta o disparo de convites.
func (r *GuestRepository) ListUnconfirmed(ctx context.Context) ([]entity.Guest, error) {
	query := `
		SELECT id, name, phone, presente, acompanhantes, confirmed, created_at, updated_at
		FROM guests
		WHERE confirmed = FALSE
		ORDER BY id
	`
	return r.list(ctx, query)
}

// Confirm vira a flag confirmed e grava updated_at. Retorna (nil, nil)
// quando o telefone não está na lista.
func (r *GuestRepository) Confirm(ctx context.Context, phone, presente string, acompanhantes []string) (*entity.Guest, error) {
	query := `
		UPDATE guests
		SET confirmed = TRUE,
		    presente = $2,
		    acompanhantes = $3,
		    updated_at = NOW()
		WHERE phone = $1
		RETURNING id, name, phone, presente, acompanhantes, confirmed, created_at, updated_at
	`

	if acompanhantes == nil {
		acompanhantes = []string{}
	}

	guest, err := scanGuest(r.DB.QueryRowContext(ctx, query, phone, presente, pq.Array(acompanhantes)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return guest, nil
}

func (r *GuestRepository) list(ctx context.Context, query string) ([]entity.Guest, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	guests := []entity.Guest{}
	for rows.Next() {
		var g entity.Guest
		if err := rows.Scan(
			&g.ID,
			&g.Name,
			&g.Phone,
			&g.Presente,
			&g.Acompanhantes,
			&g.Confirmed,
			&g.CreatedAt,
			&g.UpdatedAt,
		); err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}

	return guests, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGuest(row rowScanner) (*entity.Guest, error) {
	var g entity.Guest
	err := row.Scan(
		&g.ID,
		&g.Name,
		&g.Phone,
		&g.Presente,
		&g.Acompanhantes,
		&g.Confirmed,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}
