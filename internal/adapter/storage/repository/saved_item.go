package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/techxchange/internal/core/domain"
	"github.com/MikeRez0/techxchange/internal/core/port"
	"github.com/jackc/pgx/v5"
)

var savedItemColumns = append([]string{
	"si.id", "si.user_id", "si.product_id", "si.notes", "si.created_at", "si.updated_at",
}, productColumns...)

func scanSavedItem(row pgx.Row) (*domain.SavedItem, error) {
	item := domain.SavedItem{
		Product: &domain.Product{Seller: &domain.User{}},
	}
	fields := append([]any{
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.Notes,
		&item.CreatedAt,
		&item.UpdatedAt,
	}, productFields(item.Product)...)
	if err := row.Scan(fields...); err != nil {
		return nil, err
	}
	item.Product.Seller.ID = item.Product.SellerID
	return &item, nil
}

func (r *Repository) selectSavedItems() sq.SelectBuilder {
	return r.db.QueryBuilder.
		Select(savedItemColumns...).
		From("saved_items si").
		Join("products p ON p.id = si.product_id").
		Join("users s ON s.id = p.seller_id")
}

func (r *Repository) CreateSavedItem(ctx context.Context, item *domain.SavedItem) (*domain.SavedItem, error) {
	statement := r.db.QueryBuilder.
		Insert("saved_items").
		Columns("id", "user_id", "product_id", "notes", "created_at", "updated_at").
		Values(item.ID, item.UserID, item.ProductID, item.Notes, item.CreatedAt, item.UpdatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err)
	}

	return r.ReadSavedItem(ctx, item.ID)
}

func (r *Repository) ReadSavedItem(ctx context.Context, savedItemID string) (*domain.SavedItem, error) {
	return r.getSavedItem(ctx, sq.Eq{"si.id": savedItemID})
}

func (r *Repository) FindSavedItem(ctx context.Context, userID string, productID string) (*domain.SavedItem, error) {
	return r.getSavedItem(ctx, sq.Eq{"si.user_id": userID, "si.product_id": productID})
}

func (r *Repository) getSavedItem(ctx context.Context, where sq.Eq) (*domain.SavedItem, error) {
	sql, args, err := r.selectSavedItems().Where(where).ToSql()
	if err != nil {
		return nil, err
	}

	item, err := scanSavedItem(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err)
	}
	return item, nil
}

func (r *Repository) ListSavedItems(ctx context.Context, userID string,
	page domain.Page) ([]*domain.SavedItem, int64, error) {
	where := sq.Eq{"si.user_id": userID}

	countSQL, countArgs, err := r.db.QueryBuilder.
		Select("count(*)").
		From("saved_items si").
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

	sql, args, err := r.selectSavedItems().
		Where(where).
		OrderBy("si.created_at DESC", "si.id").
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

	list := make([]*domain.SavedItem, 0, page.Limit)
	for rows.Next() {
		item, err := scanSavedItem(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, item)
	}

	err = rows.Err()
	if err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *Repository) UpdateSavedItem(ctx context.Context, savedItemID string,
	updateFn port.UpdateSavedItemFn) (*domain.SavedItem, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		sql, args, err := r.selectSavedItems().
			Where(sq.Eq{"si.id": savedItemID}).
			Suffix("FOR UPDATE OF si").
			ToSql()
		if err != nil {
			return err
		}

		item, err := scanSavedItem(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			return err
		}

		if err := updateFn(item); err != nil {
			return err
		}

		sql, args, err = r.db.QueryBuilder.
			Update("saved_items").
			Set("notes", item.Notes).
			Set("updated_at", item.UpdatedAt).
			Where(sq.Eq{"id": savedItemID}).
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

	return r.ReadSavedItem(ctx, savedItemID)
}

func (r *Repository) DeleteSavedItem(ctx context.Context, savedItemID string) error {
	sql, args, err := r.db.QueryBuilder.
		Delete("saved_items").
		Where(sq.Eq{"id": savedItemID}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}
