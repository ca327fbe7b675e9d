package storage

import (
	"context"
	"database/sql"
	"errors"

	"foodmarket/marketplace-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// GetMenu returns the categories of the restaurant with their items, inactive
// items included. The restaurant's own active flag is not checked.
func (r *PostgresRepository) GetMenu(ctx context.Context, restaurantSlug string) ([]domain.MenuCategory, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT c.id, c.restaurant_id, c.name, c.slug, c.created_on,
			mi.id, mi.name, mi.slug, mi.price, mi.active, mi.created_on
		FROM restaurants_menu_items_categories c
		INNER JOIN restaurants r ON r.id = c.restaurant_id
		LEFT JOIN restaurants_menu_items mi ON mi.category_id = c.id
		WHERE r.slug = $1
		ORDER BY c.id, mi.id`, restaurantSlug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menu := []domain.MenuCategory{}
	for rows.Next() {
		var category domain.MenuCategory
		var (
			itemID      sql.NullInt64
			itemName    sql.NullString
			itemSlug    sql.NullString
			itemPrice   decimal.NullDecimal
			itemActive  sql.NullBool
			itemCreated sql.NullTime
		)
		if err := rows.Scan(&category.ID, &category.RestaurantID, &category.Name, &category.Slug, &category.CreatedOn,
			&itemID, &itemName, &itemSlug, &itemPrice, &itemActive, &itemCreated); err != nil {
			return nil, err
		}

		if len(menu) == 0 || menu[len(menu)-1].ID != category.ID {
			category.Items = []domain.MenuItem{}
			menu = append(menu, category)
		}
		if !itemID.Valid {
			continue
		}
		last := &menu[len(menu)-1]
		last.Items = append(last.Items, domain.MenuItem{
			ID:           int(itemID.Int64),
			CategoryID:   category.ID,
			RestaurantID: category.RestaurantID,
			Name:         itemName.String,
			Slug:         itemSlug.String,
			Price:        itemPrice.Decimal,
			Active:       itemActive.Bool,
			CreatedOn:    itemCreated.Time,
		})
	}
	return menu, rows.Err()
}

// ListActiveMenuItems is the orderable catalog of a restaurant.
func (r *PostgresRepository) ListActiveMenuItems(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT mi.id, mi.category_id, c.restaurant_id, mi.name, mi.slug, mi.price, mi.active, mi.created_on
		FROM restaurants_menu_items mi
		INNER JOIN restaurants_menu_items_categories c ON c.id = mi.category_id
		WHERE c.restaurant_id = $1 AND mi.active = TRUE
		ORDER BY mi.id`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanMenuItem(row rowScanner) (domain.MenuItem, error) {
	var item domain.MenuItem
	err := row.Scan(&item.ID, &item.CategoryID, &item.RestaurantID, &item.Name, &item.Slug,
		&item.Price, &item.Active, &item.CreatedOn)
	return item, err
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, category *domain.MenuCategory) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO restaurants_menu_items_categories (restaurant_id, name, slug)
		VALUES ($1, $2, $3)
		RETURNING id, created_on`,
		category.RestaurantID, category.Name, category.Slug,
	).Scan(&category.ID, &category.CreatedOn)
	if isUniqueViolation(err, "menu_categories_restaurant_name_key") {
		return domain.ValidationError{Field: "name", Message: "category already exists for this restaurant"}
	}
	return err
}

func (r *PostgresRepository) GetCategory(ctx context.Context, id int) (*domain.MenuCategory, error) {
	var category domain.MenuCategory
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, restaurant_id, name, slug, created_on
		FROM restaurants_menu_items_categories
		WHERE id = $1`, id).
		Scan(&category.ID, &category.RestaurantID, &category.Name, &category.Slug, &category.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("category", id)
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory renames the category. The slug is kept.
func (r *PostgresRepository) UpdateCategory(ctx context.Context, category *domain.MenuCategory) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE restaurants_menu_items_categories
		SET name = $1
		WHERE id = $2`, category.Name, category.ID)
	if isUniqueViolation(err, "menu_categories_restaurant_name_key") {
		return domain.ValidationError{Field: "name", Message: "category already exists for this restaurant"}
	}
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFound("category", category.ID)
	}
	return nil
}

// CreateMenuItem stores item under its category. item.Slug is the base slug
// and is suffixed until it is unique within the restaurant.
func (r *PostgresRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	slug, err := r.uniqueMenuItemSlug(ctx, item.RestaurantID, item.Slug, 0)
	if err != nil {
		return err
	}
	item.Slug = slug

	return r.DB.QueryRowContext(ctx, `
		INSERT INTO restaurants_menu_items (category_id, name, slug, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, active, created_on`,
		item.CategoryID, item.Name, item.Slug, item.Price,
	).Scan(&item.ID, &item.Active, &item.CreatedOn)
}

func (r *PostgresRepository) uniqueMenuItemSlug(ctx context.Context, restaurantID int, base string, excludeID int) (string, error) {
	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		candidate := domain.NthSlug(base, attempt)
		var taken bool
		if err := r.DB.QueryRowContext(ctx, `
			SELECT EXISTS (
				SELECT 1
				FROM restaurants_menu_items mi
				INNER JOIN restaurants_menu_items_categories c ON c.id = mi.category_id
				WHERE c.restaurant_id = $1 AND mi.slug = $2 AND mi.id <> $3
			)`, restaurantID, candidate, excludeID).Scan(&taken); err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", domain.ValidationError{Field: "name", Message: "could not derive a unique slug"}
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	item, err := scanMenuItem(r.DB.QueryRowContext(ctx, `
		SELECT mi.id, mi.category_id, c.restaurant_id, mi.name, mi.slug, mi.price, mi.active, mi.created_on
		FROM restaurants_menu_items mi
		INNER JOIN restaurants_menu_items_categories c ON c.id = mi.category_id
		WHERE mi.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("menu item", id)
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateMenuItem rewrites name, price and active. The slug is kept.
func (r *PostgresRepository) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE restaurants_menu_items
		SET name = $1, price = $2, active = $3, last_updated = NOW()
		WHERE id = $4`, item.Name, item.Price, item.Active, item.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFound("menu item", item.ID)
	}
	return nil
}

// ListOptions returns the active option categories linked to the menu item,
// each with its options.
func (r *PostgresRepository) ListOptions(ctx context.Context, restaurantSlug, menuItemSlug string) ([]domain.OptionCategory, error) {
	return r.listOptionCategories(ctx, `
		SELECT oc.id, oc.restaurant_id, oc.heading, oc.mandatory, oc.multiple_choice, oc.num_choose, oc.active,
			o.id, o.name, o.price
		FROM restaurant_menuitem_options rmo
		INNER JOIN restaurants r ON r.id = rmo.restaurant_id
		INNER JOIN restaurants_menu_items mi ON mi.id = rmo.menu_item_id
		INNER JOIN option_categories oc ON oc.id = rmo.option_category_id
		LEFT JOIN options o ON o.category_id = oc.id
		WHERE r.slug = $1 AND mi.slug = $2 AND oc.active = TRUE
		ORDER BY oc.id, o.id`, restaurantSlug, menuItemSlug)
}

func (r *PostgresRepository) ListOptionCategoriesByRestaurant(ctx context.Context, restaurantID int) ([]domain.OptionCategory, error) {
	return r.listOptionCategories(ctx, `
		SELECT oc.id, oc.restaurant_id, oc.heading, oc.mandatory, oc.multiple_choice, oc.num_choose, oc.active,
			o.id, o.name, o.price
		FROM option_categories oc
		LEFT JOIN options o ON o.category_id = oc.id
		WHERE oc.restaurant_id = $1
		ORDER BY oc.id, o.id`, restaurantID)
}

func (r *PostgresRepository) listOptionCategories(ctx context.Context, query string, args ...any) ([]domain.OptionCategory, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.OptionCategory{}
	for rows.Next() {
		var category domain.OptionCategory
		var (
			optionID    sql.NullInt64
			optionName  sql.NullString
			optionPrice decimal.NullDecimal
		)
		if err := rows.Scan(&category.ID, &category.RestaurantID, &category.Heading, &category.Mandatory,
			&category.MultipleChoice, &category.NumChoose, &category.Active,
			&optionID, &optionName, &optionPrice); err != nil {
			return nil, err
		}

		if len(categories) == 0 || categories[len(categories)-1].ID != category.ID {
			category.Options = []domain.Option{}
			categories = append(categories, category)
		}
		if !optionID.Valid {
			continue
		}
		last := &categories[len(categories)-1]
		last.Options = append(last.Options, domain.Option{
			ID:         int(optionID.Int64),
			CategoryID: category.ID,
			Name:       optionName.String,
			Price:      optionPrice.Decimal,
		})
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) CreateOptionCategory(ctx context.Context, category *domain.OptionCategory) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO option_categories (restaurant_id, heading, mandatory, multiple_choice, num_choose)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, active`,
		category.RestaurantID, category.Heading, category.Mandatory, category.MultipleChoice, category.NumChoose,
	).Scan(&category.ID, &category.Active)
	if isUniqueViolation(err, "option_categories_restaurant_heading_key") {
		return domain.ValidationError{Field: "heading", Message: "option category already exists for this restaurant"}
	}
	return err
}

func (r *PostgresRepository) GetOptionCategory(ctx context.Context, id int) (*domain.OptionCategory, error) {
	var category domain.OptionCategory
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, restaurant_id, heading, mandatory, multiple_choice, num_choose, active
		FROM option_categories
		WHERE id = $1`, id).
		Scan(&category.ID, &category.RestaurantID, &category.Heading, &category.Mandatory,
			&category.MultipleChoice, &category.NumChoose, &category.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("option category", id)
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *PostgresRepository) UpdateOptionCategory(ctx context.Context, category *domain.OptionCategory) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE option_categories SET heading = $1, active = $2 WHERE id = $3`,
		category.Heading, category.Active, category.ID)
	if isUniqueViolation(err, "option_categories_restaurant_heading_key") {
		return domain.ValidationError{Field: "heading", Message: "option category already exists for this restaurant"}
	}
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFound("option category", category.ID)
	}
	return nil
}

func (r *PostgresRepository) CreateOption(ctx context.Context, option *domain.Option) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO options (category_id, name, price)
		VALUES ($1, $2, $3)
		RETURNING id`, option.CategoryID, option.Name, option.Price).Scan(&option.ID)
}

// AttachOptionCategory links an option category to a menu item. Linking twice
// is a no-op.
func (r *PostgresRepository) AttachOptionCategory(ctx context.Context, restaurantID, menuItemID, optionCategoryID int) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO restaurant_menuitem_options (restaurant_id, menu_item_id, option_category_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (menu_item_id, option_category_id) DO NOTHING`,
		restaurantID, menuItemID, optionCategoryID)
	return err
}

// ListOptionCategoryItems returns every menu item the option category is
// attached to, by slug.
func (r *PostgresRepository) ListOptionCategoryItems(ctx context.Context, optionCategoryID int) ([]domain.MenuItemRef, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT r.slug, mi.slug
		FROM restaurant_menuitem_options rmo
		INNER JOIN restaurants r ON r.id = rmo.restaurant_id
		INNER JOIN restaurants_menu_items mi ON mi.id = rmo.menu_item_id
		WHERE rmo.option_category_id = $1`, optionCategoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []domain.MenuItemRef
	for rows.Next() {
		var ref domain.MenuItemRef
		if err := rows.Scan(&ref.RestaurantSlug, &ref.ItemSlug); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}
