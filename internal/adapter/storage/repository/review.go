package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/techxchange/internal/core/domain"
	"github.com/MikeRez0/techxchange/internal/core/port"
	"github.com/jackc/pgx/v5"
)

var reviewColumns = []string{
	"r.id", "r.product_id", "r.user_id", "r.rating", "r.comment", "r.is_verified",
	"r.created_at", "r.updated_at",
	"(SELECT count(*) FROM review_helpful_votes v WHERE v.review_id = r.id) AS helpful_count",
	"u.full_name", "p.name",
}

var reviewOrder = map[domain.ReviewSort][]string{
	domain.ReviewSortNewest:  {"r.created_at DESC"},
	domain.ReviewSortOldest:  {"r.created_at ASC"},
	domain.ReviewSortRating:  {"r.rating DESC", "r.created_at DESC"},
	domain.ReviewSortHelpful: {"helpful_count DESC", "r.created_at DESC"},
}

func scanReview(row pgx.Row) (*domain.Review, error) {
	review := domain.Review{
		User:    &domain.User{},
		Product: &domain.Product{},
	}
	err := row.Scan(
		&review.ID,
		&review.ProductID,
		&review.UserID,
		&review.Rating,
		&review.Comment,
		&review.IsVerified,
		&review.CreatedAt,
		&review.UpdatedAt,
		&review.HelpfulCount,
		&review.User.FullName,
		&review.Product.Name,
	)
	if err != nil {
		return nil, err
	}
	review.User.ID = review.UserID
	review.Product.ID = review.ProductID
	return &review, nil
}

func (r *Repository) selectReviews() sq.SelectBuilder {
	return r.db.QueryBuilder.
		Select(reviewColumns...).
		From("reviews r").
		Join("users u ON u.id = r.user_id").
		Join("products p ON p.id = r.product_id")
}

func (r *Repository) CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	statement := r.db.QueryBuilder.
		Insert("reviews").
		Columns("id", "product_id", "user_id", "rating", "comment", "is_verified", "created_at", "updated_at").
		Values(review.ID, review.ProductID, review.UserID, review.Rating, review.Comment, review.IsVerified,
			review.CreatedAt, review.UpdatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err)
	}

	return r.ReadReview(ctx, review.ID)
}

func (r *Repository) ReadReview(ctx context.Context, reviewID string) (*domain.Review, error) {
	sql, args, err := r.selectReviews().Where(sq.Eq{"r.id": reviewID}).ToSql()
	if err != nil {
		return nil, err
	}

	review, err := scanReview(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err)
	}
	return review, nil
}

func (r *Repository) ListReviews(ctx context.Context, filter domain.ReviewFilter,
	page domain.Page) ([]*domain.Review, int64, error) {
	where := sq.Eq{}
	if filter.ProductID != "" {
		where["r.product_id"] = filter.ProductID
	}
	if filter.UserID != "" {
		where["r.user_id"] = filter.UserID
	}
	if filter.Rating != 0 {
		where["r.rating"] = filter.Rating
	}

	countSQL, countArgs, err := r.db.QueryBuilder.
		Select("count(*)").
		From("reviews r").
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

	order, ok := reviewOrder[filter.Sort]
	if !ok {
		order = reviewOrder[domain.ReviewSortNewest]
	}
	sql, args, err := r.selectReviews().
		Where(where).
		OrderBy(append(order, "r.id")...).
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

	list := make([]*domain.Review, 0, page.Limit)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, review)
	}

	err = rows.Err()
	if err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *Repository) UpdateReview(ctx context.Context, reviewID string,
	updateFn port.UpdateReviewFn) (*domain.Review, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		sql, args, err := r.selectReviews().
			Where(sq.Eq{"r.id": reviewID}).
			Suffix("FOR UPDATE OF r").
			ToSql()
		if err != nil {
			return err
		}

		review, err := scanReview(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			return err
		}

		if err := updateFn(review); err != nil {
			return err
		}

		sql, args, err = r.db.QueryBuilder.
			Update("reviews").
			Set("rating", review.Rating).
			Set("comment", review.Comment).
			Set("is_verified", review.IsVerified).
			Set("updated_at", review.UpdatedAt).
			Where(sq.Eq{"id": reviewID}).
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

	return r.ReadReview(ctx, reviewID)
}

func (r *Repository) DeleteReview(ctx context.Context, reviewID string) error {
	sql, args, err := r.db.QueryBuilder.
		Delete("reviews").
		Where(sq.Eq{"id": reviewID}).
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

// ToggleReviewHelpful adds the user's helpful vote, or removes it when one exists.
// The review row is locked so the returned count matches the vote that was written.
func (r *Repository) ToggleReviewHelpful(ctx context.Context, reviewID string,
	userID string) (*domain.HelpfulVote, error) {
	vote := domain.HelpfulVote{}
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		sql, args, err := r.db.QueryBuilder.
			Select("id").
			From("reviews").
			Where(sq.Eq{"id": reviewID}).
			Suffix("FOR UPDATE").
			ToSql()
		if err != nil {
			return err
		}
		var id string
		if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
			return err
		}

		sql, args, err = r.db.QueryBuilder.
			Delete("review_helpful_votes").
			Where(sq.Eq{"review_id": reviewID, "user_id": userID}).
			ToSql()
		if err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			sql, args, err = r.db.QueryBuilder.
				Insert("review_helpful_votes").
				Columns("review_id", "user_id").
				Values(reviewID, userID).
				ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return err
			}
			vote.IsHelpful = true
		}

		sql, args, err = r.db.QueryBuilder.
			Select("count(*)").
			From("review_helpful_votes").
			Where(sq.Eq{"review_id": reviewID}).
			ToSql()
		if err != nil {
			return err
		}
		return tx.QueryRow(ctx, sql, args...).Scan(&vote.HelpfulCount)
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &vote, nil
}

// CountRatings returns the number of reviews per star for a product. Missing stars are absent.
func (r *Repository) CountRatings(ctx context.Context, productID string) (map[int]int64, error) {
	sql, args, err := r.db.QueryBuilder.
		Select("rating", "count(*)").
		From("reviews").
		Where(sq.Eq{"product_id": productID}).
		GroupBy("rating").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int]int64, domain.MaxRating)
	for rows.Next() {
		var rating int
		var count int64
		if err := rows.Scan(&rating, &count); err != nil {
			return nil, err
		}
		counts[rating] = count
	}
	return counts, rows.Err()
}

// HasDeliveredOrder reports whether the buyer received the product at least once.
func (r *Repository) HasDeliveredOrder(ctx context.Context, buyerID string, productID string) (bool, error) {
	sql, args, err := r.db.QueryBuilder.
		Select().
		Column(sq.Expr("EXISTS (SELECT 1 FROM orders WHERE buyer_id = ? AND product_id = ? AND status = ?)",
			buyerID, productID, domain.OrderStatusDelivered)).
		ToSql()
	if err != nil {
		return false, err
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
