package negotiation

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
)

type repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) Repo {
	return &repo{db: db}
}

// Migrate создаёт таблицу истории, если её нет.
func Migrate(ctx context.Context, db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS negotiations (
			id            CHAR(26) PRIMARY KEY,
			user_id       UUID NOT NULL,
			item_name     TEXT NOT NULL,
			category      TEXT,
			initial_price NUMERIC(14, 2) NOT NULL,
			location      TEXT NOT NULL,
			vibe          TEXT NOT NULL,
			ai_response   JSONB NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS negotiations_user_created_idx
			ON negotiations (user_id, created_at DESC)`,
	}

	for _, q := range queries {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func (r *repo) SavePlan(ctx context.Context, rec *PlanRecord) error {
	body, err := json.Marshal(rec.Plan)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO negotiations (id, user_id, item_name, category, initial_price, location, vibe, ai_response, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		rec.ID,
		rec.UserID,
		rec.ItemName,
		sql.NullString{String: rec.Category, Valid: rec.Category != ""},
		rec.InitialPrice,
		rec.Location,
		rec.Vibe.String(),
		string(body),
		rec.CreatedAt,
	)
	return err
}

type noopRepo struct{}

// NewNoopRepo: история выключена (нет DATABASE_URL).
func NewNoopRepo() Repo {
	return noopRepo{}
}

func (noopRepo) SavePlan(_ context.Context, rec *PlanRecord) error {
	log.Printf("[repo] history disabled, dropping plan %s", rec.ID)
	return nil
}
