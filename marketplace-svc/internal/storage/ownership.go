package storage

import "context"

func (r *PostgresRepository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var ok bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS (`+query+`)`, args...).Scan(&ok)
	return ok, err
}

func (r *PostgresRepository) IsRestaurantAdmin(ctx context.Context, appuserID, restaurantID int) (bool, error) {
	return r.exists(ctx, `
		SELECT 1 FROM restaurants
		WHERE id = $1 AND appuser_id = $2`, restaurantID, appuserID)
}

func (r *PostgresRepository) IsCategoryAdmin(ctx context.Context, appuserID, categoryID int) (bool, error) {
	return r.exists(ctx, `
		SELECT 1
		FROM restaurants_menu_items_categories c
		INNER JOIN restaurants r ON r.id = c.restaurant_id
		WHERE c.id = $1 AND r.appuser_id = $2`, categoryID, appuserID)
}

func (r *PostgresRepository) IsMenuItemAdmin(ctx context.Context, appuserID, menuItemID int) (bool, error) {
	return r.exists(ctx, `
		SELECT 1
		FROM restaurants_menu_items mi
		INNER JOIN restaurants_menu_items_categories c ON c.id = mi.category_id
		INNER JOIN restaurants r ON r.id = c.restaurant_id
		WHERE mi.id = $1 AND r.appuser_id = $2`, menuItemID, appuserID)
}

func (r *PostgresRepository) IsOptionCategoryAdmin(ctx context.Context, appuserID, optionCategoryID int) (bool, error) {
	return r.exists(ctx, `
		SELECT 1
		FROM option_categories oc
		INNER JOIN restaurants r ON r.id = oc.restaurant_id
		WHERE oc.id = $1 AND r.appuser_id = $2`, optionCategoryID, appuserID)
}

func (r *PostgresRepository) IsOrderOwner(ctx context.Context, appuserID, orderID int) (bool, error) {
	return r.exists(ctx, `
		SELECT 1 FROM orders
		WHERE id = $1 AND appuser_id = $2`, orderID, appuserID)
}

// IsOrderMerchant reports whether appuserID owns the restaurant the order was
// placed with.
func (r *PostgresRepository) IsOrderMerchant(ctx context.Context, appuserID, orderID int) (bool, error) {
	return r.exists(ctx, `
		SELECT 1
		FROM orders o
		INNER JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = $1 AND r.appuser_id = $2`, orderID, appuserID)
}
