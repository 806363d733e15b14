package repositories

import (
	"context"
	"sort"
	"strings"

	"github.com/huntdavid175/plateraa-storefront/models"
)

type MenuRepository struct{}

func NewMenuRepository() *MenuRepository {
	return &MenuRepository{}
}

func (r *MenuRepository) GetInstitution(ctx context.Context, institutionID string) (*models.Institution, error) {
	query := `SELECT id, name, slug, COALESCE(tagline, ''), COALESCE(cuisine, ''), cover_image,
	          delivery_fee, min_order, is_open, created_at, updated_at
	          FROM institutions WHERE id = $1`

	var inst models.Institution
	err := models.DB.QueryRow(ctx, query, institutionID).Scan(
		&inst.ID, &inst.Name, &inst.Slug, &inst.Tagline, &inst.Cuisine, &inst.CoverImage,
		&inst.DeliveryFee, &inst.MinOrder, &inst.IsOpen, &inst.CreatedAt, &inst.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

func (r *MenuRepository) GetBranches(ctx context.Context, institutionID string) ([]models.Branch, error) {
	query := `SELECT id, name, address, phone FROM branches WHERE institution_id = $1 ORDER BY name`

	rows, err := models.DB.Query(ctx, query, institutionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	branches := []models.Branch{}
	for rows.Next() {
		var b models.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.Address, &b.Phone); err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}
	return branches, rows.Err()
}

func (r *MenuRepository) GetCategories(ctx context.Context, institutionID string) ([]models.MenuCategory, error) {
	query := `SELECT id, name FROM menu_categories
	          WHERE institution_id = $1 AND is_visible = true ORDER BY sort_order`

	rows, err := models.DB.Query(ctx, query, institutionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.MenuCategory{}
	for rows.Next() {
		var cat models.MenuCategory
		if err := rows.Scan(&cat.ID, &cat.Name); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

// GetMenuItems returns the available items for an institution with their
// modification groups already built: variants become the exclusive "variant"
// group priced as deltas from the default variant, addons become the optional
// "addons" group.
func (r *MenuRepository) GetMenuItems(ctx context.Context, institutionID string) ([]models.MenuItem, error) {
	query := `SELECT m.id, m.category_id, COALESCE(c.name, 'Other'), m.name,
	          COALESCE(m.description, ''), m.price, m.image_url, m.is_featured
	          FROM menu_items m
	          LEFT JOIN menu_categories c ON m.category_id = c.id
	          WHERE m.institution_id = $1 AND m.is_available = true
	          ORDER BY m.created_at`

	rows, err := models.DB.Query(ctx, query, institutionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.CategoryID, &item.Category, &item.Name,
			&item.Description, &item.BasePrice, &item.Image, &item.IsPopular); err != nil {
			return nil, err
		}
		item.DietaryTags = []string{}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	variants, err := r.variantsByItem(ctx, institutionID)
	if err != nil {
		return nil, err
	}
	addons, err := r.addonsByItem(ctx, institutionID)
	if err != nil {
		return nil, err
	}
	tags, err := r.tagsByItem(ctx, institutionID)
	if err != nil {
		return nil, err
	}

	for i := range items {
		buildItem(&items[i], variants[items[i].ID], addons[items[i].ID], tags[items[i].ID])
	}
	return items, nil
}

func (r *MenuRepository) GetMenuItem(ctx context.Context, institutionID, itemID string) (*models.MenuItem, error) {
	query := `SELECT m.id, m.category_id, COALESCE(c.name, 'Other'), m.name,
	          COALESCE(m.description, ''), m.price, m.image_url, m.is_featured
	          FROM menu_items m
	          LEFT JOIN menu_categories c ON m.category_id = c.id
	          WHERE m.institution_id = $1 AND m.id = $2 AND m.is_available = true`

	var item models.MenuItem
	err := models.DB.QueryRow(ctx, query, institutionID, itemID).Scan(
		&item.ID, &item.CategoryID, &item.Category, &item.Name,
		&item.Description, &item.BasePrice, &item.Image, &item.IsPopular,
	)
	if err != nil {
		return nil, err
	}
	item.DietaryTags = []string{}

	variants, err := r.variantRows(ctx, itemID)
	if err != nil {
		return nil, err
	}
	addons, err := r.addonRows(ctx, itemID)
	if err != nil {
		return nil, err
	}

	var tagNames []string
	tagQuery := `SELECT t.name FROM menu_item_tags mt
	             JOIN menu_tags t ON mt.tag_id = t.id WHERE mt.menu_item_id = $1`
	tagRows, err := models.DB.Query(ctx, tagQuery, itemID)
	if err != nil {
		return nil, err
	}
	defer tagRows.Close()
	for tagRows.Next() {
		var name string
		if err := tagRows.Scan(&name); err != nil {
			return nil, err
		}
		tagNames = append(tagNames, name)
	}

	buildItem(&item, variants, addons, tagNames)
	return &item, nil
}

type variantRow struct {
	ID        string
	Name      string
	Price     float64
	SortOrder int
	IsDefault bool
}

type addonRow struct {
	ID          string
	Name        string
	Price       float64
	SortOrder   int
	IsAvailable bool
}

func (r *MenuRepository) variantRows(ctx context.Context, itemID string) ([]variantRow, error) {
	rows, err := models.DB.Query(ctx,
		`SELECT id, name, price, sort_order, is_default FROM menu_item_variants WHERE menu_item_id = $1`,
		itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var variants []variantRow
	for rows.Next() {
		var v variantRow
		if err := rows.Scan(&v.ID, &v.Name, &v.Price, &v.SortOrder, &v.IsDefault); err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, rows.Err()
}

func (r *MenuRepository) addonRows(ctx context.Context, itemID string) ([]addonRow, error) {
	rows, err := models.DB.Query(ctx,
		`SELECT id, name, price, sort_order, is_available FROM menu_item_addons WHERE menu_item_id = $1`,
		itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addons []addonRow
	for rows.Next() {
		var a addonRow
		if err := rows.Scan(&a.ID, &a.Name, &a.Price, &a.SortOrder, &a.IsAvailable); err != nil {
			return nil, err
		}
		addons = append(addons, a)
	}
	return addons, rows.Err()
}

func (r *MenuRepository) variantsByItem(ctx context.Context, institutionID string) (map[string][]variantRow, error) {
	rows, err := models.DB.Query(ctx,
		`SELECT v.menu_item_id, v.id, v.name, v.price, v.sort_order, v.is_default
		 FROM menu_item_variants v
		 JOIN menu_items m ON v.menu_item_id = m.id
		 WHERE m.institution_id = $1`, institutionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byItem := map[string][]variantRow{}
	for rows.Next() {
		var itemID string
		var v variantRow
		if err := rows.Scan(&itemID, &v.ID, &v.Name, &v.Price, &v.SortOrder, &v.IsDefault); err != nil {
			return nil, err
		}
		byItem[itemID] = append(byItem[itemID], v)
	}
	return byItem, rows.Err()
}

func (r *MenuRepository) addonsByItem(ctx context.Context, institutionID string) (map[string][]addonRow, error) {
	rows, err := models.DB.Query(ctx,
		`SELECT a.menu_item_id, a.id, a.name, a.price, a.sort_order, a.is_available
		 FROM menu_item_addons a
		 JOIN menu_items m ON a.menu_item_id = m.id
		 WHERE m.institution_id = $1`, institutionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byItem := map[string][]addonRow{}
	for rows.Next() {
		var itemID string
		var a addonRow
		if err := rows.Scan(&itemID, &a.ID, &a.Name, &a.Price, &a.SortOrder, &a.IsAvailable); err != nil {
			return nil, err
		}
		byItem[itemID] = append(byItem[itemID], a)
	}
	return byItem, rows.Err()
}

func (r *MenuRepository) tagsByItem(ctx context.Context, institutionID string) (map[string][]string, error) {
	rows, err := models.DB.Query(ctx,
		`SELECT mt.menu_item_id, t.name
		 FROM menu_item_tags mt
		 JOIN menu_tags t ON mt.tag_id = t.id
		 JOIN menu_items m ON mt.menu_item_id = m.id
		 WHERE m.institution_id = $1`, institutionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byItem := map[string][]string{}
	for rows.Next() {
		var itemID, name string
		if err := rows.Scan(&itemID, &name); err != nil {
			return nil, err
		}
		byItem[itemID] = append(byItem[itemID], name)
	}
	return byItem, rows.Err()
}

// buildItem attaches dietary tags and modification groups to a menu item.
// Variants are priced as the difference from the default variant, which also
// becomes the item's display price.
func buildItem(item *models.MenuItem, variants []variantRow, addons []addonRow, tagNames []string) {
	for _, name := range tagNames {
		lower := strings.ToLower(name)
		if lower == "vegetarian" || lower == "vegan" || lower == "gluten-free" {
			item.DietaryTags = append(item.DietaryTags, lower)
		}
	}

	groups := []models.ModificationGroup{}

	if len(variants) > 0 {
		sort.SliceStable(variants, func(i, j int) bool {
			return variants[i].SortOrder < variants[j].SortOrder
		})

		defaultVariant := variants[0]
		for _, v := range variants {
			if v.IsDefault {
				defaultVariant = v
				break
			}
		}
		item.BasePrice = defaultVariant.Price

		options := make([]models.ModificationOption, 0, len(variants))
		for _, v := range variants {
			options = append(options, models.ModificationOption{
				ID:    v.ID,
				Name:  v.Name,
				Price: models.RoundCents(v.Price - defaultVariant.Price),
			})
		}

		groups = append(groups, models.ModificationGroup{
			ID:        "variant",
			Name:      "Choose size",
			Required:  true,
			MinSelect: 1,
			MaxSelect: 1,
			Options:   options,
		})
	}

	available := addons[:0]
	for _, a := range addons {
		if a.IsAvailable {
			available = append(available, a)
		}
	}
	if len(available) > 0 {
		sort.SliceStable(available, func(i, j int) bool {
			return available[i].SortOrder < available[j].SortOrder
		})

		options := make([]models.ModificationOption, 0, len(available))
		for _, a := range available {
			options = append(options, models.ModificationOption{
				ID:    a.ID,
				Name:  a.Name,
				Price: a.Price,
			})
		}

		groups = append(groups, models.ModificationGroup{
			ID:        "addons",
			Name:      "Add extras",
			Required:  false,
			MinSelect: 0,
			MaxSelect: len(options),
			Options:   options,
		})
	}

	if len(groups) > 0 {
		item.ModificationGroups = groups
	}
}
