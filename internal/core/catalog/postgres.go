package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"chucklechow/internal/pkg/common"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresProvider reads the recipe catalog from PostgreSQL.
type PostgresProvider struct {
	db *sqlx.DB
}

// NewPostgresProvider connects to the database and ensures the recipes table
// exists.
func NewPostgresProvider(dataSourceName string) (*PostgresProvider, error) {
	db, err := sqlx.Connect("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS recipes (
		id SERIAL PRIMARY KEY,
		title_en TEXT NOT NULL,
		title_es TEXT,
		ingredients TEXT[] NOT NULL,
		steps_en TEXT[] NOT NULL,
		steps_es TEXT[],
		nutrition JSONB,
		cooking_time INT,
		difficulty TEXT,
		equipment TEXT[],
		servings INT,
		tips TEXT
	);
	`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create recipes table: %w", err)
	}

	return &PostgresProvider{db: db}, nil
}

type recordRow struct {
	ID          int64          `db:"id"`
	TitleEN     string         `db:"title_en"`
	TitleES     *string        `db:"title_es"`
	Ingredients pq.StringArray `db:"ingredients"`
	StepsEN     pq.StringArray `db:"steps_en"`
	StepsES     pq.StringArray `db:"steps_es"`
	Nutrition   []byte         `db:"nutrition"`
	CookingTime *int           `db:"cooking_time"`
	Difficulty  *string        `db:"difficulty"`
	Equipment   pq.StringArray `db:"equipment"`
	Servings    *int           `db:"servings"`
	Tips        *string        `db:"tips"`
}

// ListRecipes returns every catalog record in stored order. Rows that fail
// to decode are skipped rather than failing the whole load.
func (p *PostgresProvider) ListRecipes(ctx context.Context) ([]Record, error) {
	var rows []recordRow
	query := `SELECT id, title_en, title_es, ingredients, steps_en, steps_es,
		nutrition, cooking_time, difficulty, equipment, servings, tips
		FROM recipes ORDER BY id`
	if err := p.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec := Record{
			ID:          row.ID,
			Title:       row.TitleEN,
			Ingredients: row.Ingredients,
			Steps:       row.StepsEN,
			StepsES:     row.StepsES,
			CookingTime: 30,
			Difficulty:  "medium",
			Equipment:   row.Equipment,
			Servings:    2,
			Tips:        "Season to taste!",
		}
		if row.TitleES != nil {
			rec.TitleES = *row.TitleES
		}
		if len(row.Nutrition) > 0 {
			var n common.Nutrition
			if err := json.Unmarshal(row.Nutrition, &n); err == nil {
				rec.Nutrition = n
			}
		}
		if row.CookingTime != nil {
			rec.CookingTime = *row.CookingTime
		}
		if row.Difficulty != nil {
			rec.Difficulty = *row.Difficulty
		}
		if row.Servings != nil {
			rec.Servings = *row.Servings
		}
		if row.Tips != nil {
			rec.Tips = *row.Tips
		}
		if len(rec.Equipment) == 0 {
			rec.Equipment = []string{"skillet"}
		}
		records = append(records, rec)
	}

	return records, nil
}

// Close closes the underlying database connection.
func (p *PostgresProvider) Close() error {
	return p.db.Close()
}
