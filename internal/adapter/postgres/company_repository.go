package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"hayyakom/internal/core/domain"
	"hayyakom/internal/core/port"
)

// CompanyRepository implements port.CompanyRepository using pgxpool.
type CompanyRepository struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository returns a new repository instance.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

func (r *CompanyRepository) Create(ctx context.Context, c *domain.Company) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO companies (owner_id, name, cr_number) VALUES ($1,$2,$3) RETURNING id`,
		c.OwnerID, c.Name, c.CRNumber).Scan(&c.ID)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return port.ErrCompanyExists
	}
	return err
}

func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	var c domain.Company
	err := r.pool.QueryRow(ctx,
		`SELECT id, owner_id, name, cr_number FROM companies WHERE id = $1`, id).
		Scan(&c.ID, &c.OwnerID, &c.Name, &c.CRNumber)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CompanyRepository) GetByOwner(ctx context.Context, ownerID int64) (*domain.Company, error) {
	var c domain.Company
	err := r.pool.QueryRow(ctx,
		`SELECT id, owner_id, name, cr_number FROM companies WHERE owner_id = $1`, ownerID).
		Scan(&c.ID, &c.OwnerID, &c.Name, &c.CRNumber)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CompanyRepository) HasInvestedFunds(ctx context.Context, companyID int64) (bool, error) {
	var funded bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (
        SELECT 1 FROM investments i
        JOIN campaigns c ON c.id = i.campaign_id
        WHERE c.company_id = $1 AND i.status IN ($2, $3))`,
		companyID, domain.InvestmentPledged, domain.InvestmentCollected).Scan(&funded)
	return funded, err
}

func (r *CompanyRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}
