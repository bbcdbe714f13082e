package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/billowria/bookshorts/internal/model"
)

var _ model.CategoryStore = (*CategoryRepository)(nil)

type CategoryRepository struct {
	db *Connection
}

func NewCategoryRepository(db *Connection) *CategoryRepository {
	return &CategoryRepository{
		db: db,
	}
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Category, error) {
	query := `SELECT id, name, display_order, status, image_url, click_count, created_at, updated_at
			  FROM categories WHERE id = $1`

	var category model.Category
	err := r.db.QueryRow(ctx, query, id).Scan(
		&category.ID, &category.Name, &category.DisplayOrder, &category.Status,
		&category.ImageURL, &category.ClickCount, &category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Category{}, model.ErrNotFound
		}
		return model.Category{}, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

func (r *CategoryRepository) List(ctx context.Context, activeOnly bool, limit int) ([]model.Category, error) {
	query := `SELECT id, name, display_order, status, image_url, click_count, created_at, updated_at
			  FROM categories
			  WHERE ($1 = false OR status = true)
			  ORDER BY display_order ASC`
	args := []any{activeOnly}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var category model.Category
		err := rows.Scan(
			&category.ID, &category.Name, &category.DisplayOrder, &category.Status,
			&category.ImageURL, &category.ClickCount, &category.CreatedAt, &category.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category model.Category) (model.Category, error) {
	query := `INSERT INTO categories (id, name, display_order, status, image_url)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, name, display_order, status, image_url, click_count, created_at, updated_at`

	var saved model.Category
	err := r.db.QueryRow(ctx, query,
		category.ID, category.Name, category.DisplayOrder, category.Status, category.ImageURL,
	).Scan(
		&saved.ID, &saved.Name, &saved.DisplayOrder, &saved.Status,
		&saved.ImageURL, &saved.ClickCount, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to create category: %w", err)
	}

	return saved, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category model.Category) (model.Category, error) {
	query := `UPDATE categories
			  SET name = $2, display_order = $3, status = $4, image_url = $5, updated_at = NOW()
			  WHERE id = $1
			  RETURNING id, name, display_order, status, image_url, click_count, created_at, updated_at`

	var saved model.Category
	err := r.db.QueryRow(ctx, query,
		category.ID, category.Name, category.DisplayOrder, category.Status, category.ImageURL,
	).Scan(
		&saved.ID, &saved.Name, &saved.DisplayOrder, &saved.Status,
		&saved.ImageURL, &saved.ClickCount, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Category{}, model.ErrNotFound
		}
		return model.Category{}, fmt.Errorf("failed to update category: %w", err)
	}

	return saved, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) IncrementClicks(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `UPDATE categories SET click_count = click_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment category clicks: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
