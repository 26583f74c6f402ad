package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/techxchange/internal/core/domain"
	"github.com/MikeRez0/techxchange/internal/core/port"
	"github.com/jackc/pgx/v5"
)

var productColumns = []string{
	"p.id", "p.seller_id", "p.name", "p.description", "p.price", "p.currency", "p.condition",
	"p.stock", "p.status", "p.admin_notes", "p.approved_by", "p.approved_at", "p.created_at", "p.updated_at",
	"s.full_name", "s.email",
}

// productFields match productColumns.
func productFields(product *domain.Product) []any {
	return []any{
		&product.ID,
		&product.SellerID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Currency,
		&product.Condition,
		&product.Stock,
		&product.Status,
		&product.AdminNotes,
		&product.ApprovedBy,
		&product.ApprovedAt,
		&product.CreatedAt,
		&product.UpdatedAt,
		&product.Seller.FullName,
		&product.Seller.Email,
	}
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	product := domain.Product{Seller: &domain.User{}}
	err := row.Scan(productFields(&product)...)
	if err != nil {
		return nil, err
	}
	product.Seller.ID = product.SellerID
	return &product, nil
}

func (r *Repository) selectProducts() sq.SelectBuilder {
	return r.db.QueryBuilder.
		Select(productColumns...).
		From("products p").
		Join("users s ON s.id = p.seller_id")
}

func (r *Repository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Insert("products").
		Columns("id", "seller_id", "name", "description", "price", "currency", "condition",
			"stock", "status", "created_at", "updated_at").
		Values(product.ID, product.SellerID, product.Name, product.Description, product.Price, product.Currency,
			product.Condition, product.Stock, product.Status, product.CreatedAt, product.UpdatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err)
	}

	return r.ReadProduct(ctx, product.ID)
}

func (r *Repository) ReadProduct(ctx context.Context, productID string) (*domain.Product, error) {
	sql, args, err := r.selectProducts().Where(sq.Eq{"p.id": productID}).ToSql()
	if err != nil {
		return nil, err
	}

	product, err := scanProduct(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err)
	}
	return product, nil
}

func (r *Repository) ListProducts(ctx context.Context, filter port.ProductFilter,
	page domain.Page) ([]*domain.Product, int64, error) {
	where := sq.Eq{}
	if filter.SellerID != "" {
		where["p.seller_id"] = filter.SellerID
	}
	if filter.Status != "" {
		where["p.status"] = filter.Status
	}

	countSQL, countArgs, err := r.db.QueryBuilder.
		Select("count(*)").
		From("products p").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total int64
	err = r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	sql, args, err := r.selectProducts().
		Where(where).
		OrderBy("p.created_at DESC", "p.id").
		Limit(uint64(page.Limit)).
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := make([]*domain.Product, 0, page.Limit)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, product)
	}

	err = rows.Err()
	if err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

// UpdateProduct locks the product row, lets updateFn mutate it and writes the moderation fields back.
func (r *Repository) UpdateProduct(ctx context.Context, productID string,
	updateFn port.UpdateProductFn) (*domain.Product, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		sql, args, err := r.selectProducts().
			Where(sq.Eq{"p.id": productID}).
			Suffix("FOR UPDATE OF p").
			ToSql()
		if err != nil {
			return err
		}

		product, err := scanProduct(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			return err
		}

		if err := updateFn(product); err != nil {
			return err
		}

		sql, args, err = r.db.QueryBuilder.
			Update("products").
			Set("status", product.Status).
			Set("admin_notes", product.AdminNotes).
			Set("approved_by", product.ApprovedBy).
			Set("approved_at", product.ApprovedAt).
			Set("stock", product.Stock).
			Set("updated_at", product.UpdatedAt).
			Where(sq.Eq{"id": productID}).
			ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		return err
	})
	if err != nil {
		return nil, mapError(err)
	}

	return r.ReadProduct(ctx, productID)
}
