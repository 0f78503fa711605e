package pgsql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SscSPs/uk_books_app/internal/core/domain"
	portsrepo "github.com/SscSPs/uk_books_app/internal/core/ports/repositories"
	"github.com/SscSPs/uk_books_app/internal/models"
	"github.com/SscSPs/uk_books_app/internal/utils/mapping"
)

type sqlCategoryRepository struct {
	SQLRepository
}

func newSQLCategoryRepository(db *sql.DB) portsrepo.CategoryDirectory {
	return &sqlCategoryRepository{SQLRepository: SQLRepository{DB: db}}
}

var _ portsrepo.CategoryDirectory = (*sqlCategoryRepository)(nil)

// ListCategories returns the user's active categories plus the system-wide ones.
func (r *sqlCategoryRepository) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	query := `
		SELECT category_id, user_id, code, name, name_localized, type
		FROM categories
		WHERE (user_id = $1 OR user_id IS NULL) AND is_active
		ORDER BY code;`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var m models.Category
		if err := rows.Scan(&m.CategoryID, &m.UserID, &m.Code, &m.Name, &m.NameLocalized, &m.Type); err != nil {
			return nil, fmt.Errorf("error scanning category row: %w", err)
		}
		categories = append(categories, mapping.ToDomainCategory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return categories, nil
}
