package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vastram/retail_pos_backend/internal/apperrors"
	"github.com/vastram/retail_pos_backend/internal/core/domain"
	portsrepo "github.com/vastram/retail_pos_backend/internal/core/ports/repositories"
	"github.com/vastram/retail_pos_backend/internal/models"
	"github.com/vastram/retail_pos_backend/internal/utils/mapping"
	"github.com/vastram/retail_pos_backend/internal/utils/pagination"
)

const productColumns = `product_id, code, name, hsn_code, price_mode, unit_price, cost_price, gst_rate, stock_qty, stock_length, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxProductRepository struct {
	pool *pgxpool.Pool
}

// NewPgxProductRepository creates a new repository for catalog and stock data.
func NewPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{pool: pool}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

func scanProduct(row pgx.Row) (*models.Product, error) {
	var p models.Product
	err := row.Scan(
		&p.ProductID,
		&p.Code,
		&p.Name,
		&p.HSNCode,
		&p.PriceMode,
		&p.UnitPrice,
		&p.CostPrice,
		&p.GSTRate,
		&p.StockQty,
		&p.StockLength,
		&p.IsActive,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE product_id = $1`, productColumns)
	p, err := scanProduct(r.pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID %s: %w", productID, err)
	}
	product := mapping.ToDomainProduct(*p)
	return &product, nil
}

func (r *PgxProductRepository) FindProductByCode(ctx context.Context, code string) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE code = $1`, productColumns)
	p, err := scanProduct(r.pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by code %s: %w", code, err)
	}
	product := mapping.ToDomainProduct(*p)
	return &product, nil
}

func (r *PgxProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	if len(productIDs) == 0 {
		return map[string]domain.Product{}, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM products WHERE product_id = ANY($1)`, productColumns)
	rows, err := r.pool.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find products by IDs: %w", err)
	}
	defer rows.Close()

	result := make(map[string]domain.Product, len(productIDs))
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		result[p.ProductID] = mapping.ToDomainProduct(*p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return result, nil
}

func (r *PgxProductRepository) ListProducts(ctx context.Context, limit int, nextToken *string) ([]domain.Product, *string, error) {
	if limit <= 0 {
		limit = 50
	}

	args := []interface{}{limit + 1}
	query := fmt.Sprintf(`SELECT %s FROM products`, productColumns)
	if nextToken != nil && *nextToken != "" {
		after, err := pagination.DecodeDateBasedToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` WHERE created_at > $2`
		args = append(args, after)
	}
	query += ` ORDER BY created_at ASC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var ms []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		ms = append(ms, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating product rows: %w", err)
	}

	var token *string
	if len(ms) > limit {
		ms = ms[:limit]
		t := pagination.EncodeDateBasedToken(ms[len(ms)-1].CreatedAt)
		token = &t
	}
	return mapping.ToDomainProductSlice(ms), token, nil
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	_, err := r.pool.Exec(ctx, `
		INSERT INTO products (product_id, code, name, hsn_code, price_mode, unit_price, cost_price, gst_rate, stock_qty, stock_length, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		m.ProductID, m.Code, m.Name, m.HSNCode, m.PriceMode, m.UnitPrice, m.CostPrice, m.GSTRate,
		m.StockQty, m.StockLength, m.IsActive, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: product code %s", apperrors.ErrDuplicate, product.Code)
		}
		return fmt.Errorf("failed to insert product %s: %w", product.ProductID, err)
	}
	return nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	tag, err := r.pool.Exec(ctx, `
		UPDATE products
		SET name = $1, hsn_code = $2, unit_price = $3, cost_price = $4, gst_rate = $5, is_active = $6, last_updated_at = $7, last_updated_by = $8
		WHERE product_id = $9`,
		m.Name, m.HSNCode, m.UnitPrice, m.CostPrice, m.GSTRate, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy, m.ProductID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", product.ProductID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProductRepository) AdjustStock(ctx context.Context, movement domain.StockMovement, actorID string, notes string) (*domain.StockAdjustment, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	adjustment, err := applyStockMovement(ctx, tx, movement, nil, actorID, notes, time.Now())
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit stock adjustment: %w", err)
	}
	return adjustment, nil
}

func (r *PgxProductRepository) ListAdjustmentsByProduct(ctx context.Context, productID string, limit int, nextToken *string) ([]domain.StockAdjustment, *string, error) {
	if limit <= 0 {
		limit = 50
	}

	args := []interface{}{productID, limit + 1}
	query := `
		SELECT adjustment_id, product_id, change_type, previous_value, new_value, invoice_id, notes, actor_id, created_at
		FROM stock_adjustments
		WHERE product_id = $1`
	if nextToken != nil && *nextToken != "" {
		before, err := pagination.DecodeDateBasedToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND created_at < $3`
		args = append(args, before)
	}
	query += ` ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list stock adjustments for product %s: %w", productID, err)
	}
	defer rows.Close()

	var ms []models.StockAdjustment
	for rows.Next() {
		var m models.StockAdjustment
		err := rows.Scan(&m.AdjustmentID, &m.ProductID, &m.ChangeType, &m.Previous, &m.New, &m.InvoiceID, &m.Notes, &m.ActorID, &m.CreatedAt)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan stock adjustment row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating stock adjustment rows: %w", err)
	}

	var token *string
	if len(ms) > limit {
		ms = ms[:limit]
		t := pagination.EncodeDateBasedToken(ms[len(ms)-1].CreatedAt)
		token = &t
	}

	adjustments := make([]domain.StockAdjustment, len(ms))
	for i, m := range ms {
		adjustments[i] = mapping.ToDomainStockAdjustment(m)
	}
	return adjustments, token, nil
}
