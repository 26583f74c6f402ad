package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/techxchange/internal/core/domain"
	"github.com/MikeRez0/techxchange/internal/core/port"
	"github.com/jackc/pgx/v5"
)

var orderColumns = []string{
	"o.id", "o.buyer_id", "o.seller_id", "o.product_id",
	"o.quantity", "o.unit_price", "o.total_amount", "o.currency",
	"o.payment_method", "o.payment_status",
	"o.shipping_street", "o.shipping_city", "o.shipping_state",
	"o.shipping_zip_code", "o.shipping_country", "o.shipping_phone",
	"o.shipping_method", "o.shipping_cost", "o.tracking_number", "o.estimated_delivery", "o.notes",
	"o.status", "o.cancelled_at", "o.cancelled_by", "o.cancellation_reason",
	"o.created_at", "o.updated_at",
}

// orderViewColumns resolve the parties and the product for display.
var orderViewColumns = append(append([]string{}, orderColumns...),
	"b.full_name", "b.email", "s.full_name", "s.email", "p.name", "p.price", "p.currency", "p.condition")

func orderFields(order *domain.Order) []any {
	return []any{
		&order.ID, &order.BuyerID, &order.SellerID, &order.ProductID,
		&order.Quantity, &order.UnitPrice, &order.TotalAmount, &order.Currency,
		&order.PaymentMethod, &order.PaymentStatus,
		&order.ShippingAddress.Street, &order.ShippingAddress.City, &order.ShippingAddress.State,
		&order.ShippingAddress.ZipCode, &order.ShippingAddress.Country, &order.ShippingAddress.Phone,
		&order.ShippingMethod, &order.ShippingCost, &order.TrackingNumber, &order.EstimatedDelivery, &order.Notes,
		&order.Status, &order.CancelledAt, &order.CancelledBy, &order.CancellationReason,
		&order.CreatedAt, &order.UpdatedAt,
	}
}

func scanOrderView(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{
		Buyer:   &domain.User{},
		Seller:  &domain.User{},
		Product: &domain.Product{},
	}
	fields := append(orderFields(&order),
		&order.Buyer.FullName, &order.Buyer.Email,
		&order.Seller.FullName, &order.Seller.Email,
		&order.Product.Name, &order.Product.Price, &order.Product.Currency, &order.Product.Condition,
	)
	if err := row.Scan(fields...); err != nil {
		return nil, err
	}
	order.Buyer.ID = order.BuyerID
	order.Seller.ID = order.SellerID
	order.Product.ID = order.ProductID
	order.Product.SellerID = order.SellerID
	return &order, nil
}

func (r *Repository) selectOrders() sq.SelectBuilder {
	return r.db.QueryBuilder.
		Select(orderViewColumns...).
		From("orders o").
		Join("users b ON b.id = o.buyer_id").
		Join("users s ON s.id = o.seller_id").
		Join("products p ON p.id = o.product_id")
}

// PlaceOrder reserves stock and inserts the order in one transaction. The stock
// decrement is conditional so concurrent buyers can never oversell a product.
func (r *Repository) PlaceOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		sql, args, err := r.db.QueryBuilder.
			Update("products").
			Set("stock", sq.Expr("stock - ?", order.Quantity)).
			Set("updated_at", order.CreatedAt).
			Where(sq.Eq{"id": order.ProductID, "status": domain.ProductStatusApproved}).
			Where(sq.GtOrEq{"stock": order.Quantity}).
			ToSql()
		if err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return r.reservationFailure(ctx, tx, order.ProductID)
		}

		addr := order.ShippingAddress
		sql, args, err = r.db.QueryBuilder.
			Insert("orders").
			Columns(
				"id", "buyer_id", "seller_id", "product_id",
				"quantity", "unit_price", "total_amount", "currency",
				"payment_method", "payment_status",
				"shipping_street", "shipping_city", "shipping_state",
				"shipping_zip_code", "shipping_country", "shipping_phone",
				"shipping_method", "shipping_cost", "notes",
				"status", "created_at", "updated_at",
			).
			Values(
				order.ID, order.BuyerID, order.SellerID, order.ProductID,
				order.Quantity, order.UnitPrice, order.TotalAmount, order.Currency,
				order.PaymentMethod, order.PaymentStatus,
				addr.Street, addr.City, addr.State,
				addr.ZipCode, addr.Country, addr.Phone,
				order.ShippingMethod, order.ShippingCost, order.Notes,
				order.Status, order.CreatedAt, order.UpdatedAt,
			).
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

	return r.ReadOrder(ctx, order.ID)
}

// reservationFailure explains why the conditional stock decrement matched no row.
func (r *Repository) reservationFailure(ctx context.Context, tx pgx.Tx, productID string) error {
	sql, args, err := r.db.QueryBuilder.
		Select("status").
		From("products").
		Where(sq.Eq{"id": productID}).
		ToSql()
	if err != nil {
		return err
	}

	var status domain.ProductStatus
	err = tx.QueryRow(ctx, sql, args...).Scan(&status)
	if err != nil {
		return err
	}
	if status != domain.ProductStatusApproved {
		return domain.ErrProductNotApproved
	}
	return domain.ErrInsufficientStock
}

func (r *Repository) ReadOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	sql, args, err := r.selectOrders().Where(sq.Eq{"o.id": orderID}).ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrderView(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err)
	}
	return order, nil
}

func (r *Repository) ListOrders(ctx context.Context, filter domain.OrderFilter,
	page domain.Page) ([]*domain.Order, int64, error) {
	where := sq.Eq{}
	if filter.BuyerID != "" {
		where["o.buyer_id"] = filter.BuyerID
	}
	if filter.SellerID != "" {
		where["o.seller_id"] = filter.SellerID
	}
	if filter.Status != "" {
		where["o.status"] = filter.Status
	}

	countSQL, countArgs, err := r.db.QueryBuilder.
		Select("count(*)").
		From("orders o").
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

	sql, args, err := r.selectOrders().
		Where(where).
		OrderBy("o.created_at DESC", "o.id").
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

	list := make([]*domain.Order, 0, page.Limit)
	for rows.Next() {
		order, err := scanOrderView(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, order)
	}

	err = rows.Err()
	if err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *Repository) UpdateOrder(ctx context.Context, orderID string,
	updateFn port.UpdateOrderFn) (*domain.Order, error) {
	return r.updateOrder(ctx, orderID, updateFn, false)
}

// CancelOrder behaves like UpdateOrder and also returns the ordered quantity to stock.
func (r *Repository) CancelOrder(ctx context.Context, orderID string,
	updateFn port.UpdateOrderFn) (*domain.Order, error) {
	return r.updateOrder(ctx, orderID, updateFn, true)
}

func (r *Repository) updateOrder(ctx context.Context, orderID string,
	updateFn port.UpdateOrderFn, restoreStock bool) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		sql, args, err := r.db.QueryBuilder.
			Select(orderColumns...).
			From("orders o").
			Where(sq.Eq{"o.id": orderID}).
			Suffix("FOR UPDATE").
			ToSql()
		if err != nil {
			return err
		}

		order := domain.Order{}
		err = tx.QueryRow(ctx, sql, args...).Scan(orderFields(&order)...)
		if err != nil {
			return err
		}

		if err := updateFn(&order); err != nil {
			return err
		}

		sql, args, err = r.db.QueryBuilder.
			Update("orders").
			Set("status", order.Status).
			Set("tracking_number", order.TrackingNumber).
			Set("estimated_delivery", order.EstimatedDelivery).
			Set("cancelled_at", order.CancelledAt).
			Set("cancelled_by", order.CancelledBy).
			Set("cancellation_reason", order.CancellationReason).
			Set("updated_at", order.UpdatedAt).
			Where(sq.Eq{"id": orderID}).
			ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}

		if !restoreStock {
			return nil
		}

		sql, args, err = r.db.QueryBuilder.
			Update("products").
			Set("stock", sq.Expr("stock + ?", order.Quantity)).
			Set("updated_at", order.UpdatedAt).
			Where(sq.Eq{"id": order.ProductID}).
			ToSql()
		if err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return errors.New("cancelled order references a missing product")
		}
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}

	return r.ReadOrder(ctx, orderID)
}
