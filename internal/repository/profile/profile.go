package profile

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"routeplanner/internal/entities"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetDisplayNames resolves profile ids to display names in one query.
// Unknown ids are simply absent from the result.
func (r *Repository) GetDisplayNames(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	builder := qb.
		Select("id", "display_name").
		From("profiles").
		Where(sq.Eq{"id": ids})

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected profile repository get display names error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected profile repository get display names error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var profileEntity entities.Profile
		if err := rows.Scan(&profileEntity.ID, &profileEntity.DisplayName); err != nil {
			return nil, fmt.Errorf("unexpected profile repository scan error: %w", err)
		}
		names[profileEntity.ID] = profileEntity.DisplayName
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected profile repository rows error: %w", err)
	}

	return names, nil
}
