package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"foodmarket/marketplace-svc/internal/domain"

	"github.com/lib/pq"
)

const orderColumns = `id, restaurant_id, appuser_id, status, total, note, created_on, last_updated`

func scanOrder(row rowScanner) (domain.Order, error) {
	var order domain.Order
	err := row.Scan(&order.ID, &order.RestaurantID, &order.AppUserID, &order.Status,
		&order.Total, &order.Note, &order.CreatedOn, &order.LastUpdated)
	return order, err
}

// CreateOrder writes the order row and every line item in one transaction.
// On any failure nothing is persisted.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO orders (restaurant_id, appuser_id, status, total, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_on, last_updated`,
		order.RestaurantID, order.AppUserID, domain.StatusSubmitted, order.Total, order.Note,
	).Scan(&order.ID, &order.CreatedOn, &order.LastUpdated); err != nil {
		return err
	}
	order.Status = domain.StatusSubmitted

	if err := insertLineItems(ctx, tx, order); err != nil {
		return err
	}

	return tx.Commit()
}

// ReplaceOrderItems swaps every line item of order and rewrites its note and
// total, provided the order is still in expected status. The row is locked
// for the duration so a concurrent accept or cancel cannot interleave.
// On a status mismatch it returns the status it found and ErrStatusMismatch.
func (r *PostgresRepository) ReplaceOrderItems(ctx context.Context, order *domain.Order, expected domain.OrderStatus) (domain.OrderStatus, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	var current domain.OrderStatus
	err = tx.QueryRowContext(ctx, `SELECT status FROM orders WHERE id = $1 FOR UPDATE`, order.ID).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.NotFound("order", order.ID)
	}
	if err != nil {
		return "", err
	}
	if current != expected {
		return current, domain.ErrStatusMismatch
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM order_line_items WHERE order_id = $1`, order.ID); err != nil {
		return current, err
	}
	if err := insertLineItems(ctx, tx, order); err != nil {
		return current, err
	}

	updated, err := scanOrder(tx.QueryRowContext(ctx, `
		UPDATE orders SET note = $1, total = $2, last_updated = NOW()
		WHERE id = $3
		RETURNING `+orderColumns, order.Note, order.Total, order.ID))
	if err != nil {
		return current, err
	}

	if err := tx.Commit(); err != nil {
		return current, err
	}

	updated.LineItems = order.LineItems
	*order = updated
	return current, nil
}

func insertLineItems(ctx context.Context, tx *sql.Tx, order *domain.Order) error {
	for i := range order.LineItems {
		item := &order.LineItems[i]
		item.OrderID = order.ID
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO order_line_items (order_id, menu_item_id, unit_price, quantity, sub_total)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_on`,
			order.ID, item.MenuItemID, item.UnitPrice, item.Quantity, item.SubTotal,
		).Scan(&item.ID, &item.CreatedOn); err != nil {
			return fmt.Errorf("insert line item for menu item %d: %w", item.MenuItemID, err)
		}
	}
	return nil
}

// TransitionStatus moves the order from one status to another with a single
// conditional update. When no row matches, the current status is read back
// so the caller can report why; that path returns ErrStatusMismatch.
func (r *PostgresRepository) TransitionStatus(ctx context.Context, orderID int, from, to domain.OrderStatus) (domain.OrderStatus, error) {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE orders SET status = $1, last_updated = NOW()
		WHERE id = $2 AND status = $3`, to, orderID, from)
	if err != nil {
		return "", err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return "", err
	}
	if affected == 1 {
		return to, nil
	}

	var current domain.OrderStatus
	err = r.DB.QueryRowContext(ctx, `SELECT status FROM orders WHERE id = $1`, orderID).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.NotFound("order", orderID)
	}
	if err != nil {
		return "", err
	}
	return current, domain.ErrStatusMismatch
}

func (r *PostgresRepository) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	order, err := scanOrder(r.DB.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("order", orderID)
	}
	if err != nil {
		return nil, err
	}

	items, err := r.lineItemsByOrder(ctx, []int{order.ID})
	if err != nil {
		return nil, err
	}
	order.LineItems = items[order.ID]
	return &order, nil
}

// ListAppUserOrders returns the customer's orders, newest first.
func (r *PostgresRepository) ListAppUserOrders(ctx context.Context, appuserID int) ([]domain.Order, error) {
	return r.listOrders(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE appuser_id = $1
		ORDER BY created_on DESC, id DESC`, appuserID)
}

// ListPendingOrders returns Submitted orders of the restaurant created at or
// after since, oldest first so the kitchen works through them in order.
func (r *PostgresRepository) ListPendingOrders(ctx context.Context, restaurantID int, since time.Time) ([]domain.Order, error) {
	return r.listOrders(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE restaurant_id = $1 AND status = $2 AND created_on >= $3
		ORDER BY created_on, id`, restaurantID, domain.StatusSubmitted, since)
}

func (r *PostgresRepository) listOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	var ids []int
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	items, err := r.lineItemsByOrder(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].LineItems = items[orders[i].ID]
	}
	return orders, nil
}

func (r *PostgresRepository) lineItemsByOrder(ctx context.Context, orderIDs []int) (map[int][]domain.OrderLineItem, error) {
	ids := make([]int64, len(orderIDs))
	for i, id := range orderIDs {
		ids[i] = int64(id)
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT li.id, li.order_id, li.menu_item_id, mi.name, li.quantity, li.unit_price, li.sub_total, li.created_on
		FROM order_line_items li
		INNER JOIN restaurants_menu_items mi ON mi.id = li.menu_item_id
		WHERE li.order_id = ANY($1)
		ORDER BY li.created_on DESC, li.id DESC`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[int][]domain.OrderLineItem, len(orderIDs))
	for rows.Next() {
		var item domain.OrderLineItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.MenuItemName,
			&item.Quantity, &item.UnitPrice, &item.SubTotal, &item.CreatedOn); err != nil {
			return nil, err
		}
		items[item.OrderID] = append(items[item.OrderID], item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetAppUserCellphone(ctx context.Context, appuserID int) (string, error) {
	var cellphone string
	err := r.DB.QueryRowContext(ctx, `SELECT cellphone FROM appusers WHERE id = $1`, appuserID).Scan(&cellphone)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.NotFound("appuser", appuserID)
	}
	return cellphone, err
}
