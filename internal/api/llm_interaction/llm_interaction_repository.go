package llmInteraction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/FACorreiaa/go-saudi-city-events/internal/types"
)

var (
	_ Repository = (*PostgresLlmInteractionRepo)(nil)
	_ Repository = NoopRepository{}
)

type Repository interface {
	SaveInteraction(ctx context.Context, interaction types.LlmInteraction) (uuid.UUID, error)
	GetRecentInteractions(ctx context.Context, limit int) ([]types.LlmInteraction, error)
}

// Querier is the subset of *pgxpool.Pool the repository needs.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type PostgresLlmInteractionRepo struct {
	logger *slog.Logger
	pgpool Querier
}

func NewPostgresLlmInteractionRepo(pgpool Querier, logger *slog.Logger) *PostgresLlmInteractionRepo {
	return &PostgresLlmInteractionRepo{
		logger: logger,
		pgpool: pgpool,
	}
}

func (r *PostgresLlmInteractionRepo) SaveInteraction(ctx context.Context, interaction types.LlmInteraction) (uuid.UUID, error) {
	query := `
        INSERT INTO llm_interactions (
            city_name, prompt, model_used, latency_ms, event_count, succeeded, error_text
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	var id uuid.UUID
	err := r.pgpool.QueryRow(ctx, query,
		interaction.CityName, interaction.Prompt, interaction.ModelUsed,
		interaction.LatencyMs, interaction.EventCount, interaction.Succeeded, interaction.ErrorText,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert llm interaction: %w", err)
	}
	return id, nil
}

func (r *PostgresLlmInteractionRepo) GetRecentInteractions(ctx context.Context, limit int) ([]types.LlmInteraction, error) {
	query := `
        SELECT id, city_name, prompt, model_used, latency_ms, event_count, succeeded, error_text, created_at
        FROM llm_interactions
        ORDER BY created_at DESC
        LIMIT $1
    `
	rows, err := r.pgpool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query llm interactions: %w", err)
	}
	defer rows.Close()

	interactions := make([]types.LlmInteraction, 0, limit)
	for rows.Next() {
		var i types.LlmInteraction
		if err := rows.Scan(
			&i.ID, &i.CityName, &i.Prompt, &i.ModelUsed, &i.LatencyMs,
			&i.EventCount, &i.Succeeded, &i.ErrorText, &i.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan llm interaction: %w", err)
		}
		interactions = append(interactions, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating llm interactions: %w", err)
	}
	return interactions, nil
}

// NoopRepository is used when no database is configured.
type NoopRepository struct{}

func (NoopRepository) SaveInteraction(context.Context, types.LlmInteraction) (uuid.UUID, error) {
	return uuid.Nil, nil
}

func (NoopRepository) GetRecentInteractions(context.Context, int) ([]types.LlmInteraction, error) {
	return []types.LlmInteraction{}, nil
}
