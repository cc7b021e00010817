package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jtalface/open-government-platform/internal/models"
	"github.com/jtalface/open-government-platform/internal/service"
)

// VoteLedger — журнал голосов на PostgreSQL.
// Каждая мутация выполняется в транзакции с блокировкой строки инцидента
// (SELECT ... FOR UPDATE), поэтому конкурирующие голоса по одному инциденту
// сериализованы, а голоса по разным инцидентам идут параллельно. Вместе с
// мутацией инкрементируется vote_seq — оптимистическая версия журнала для
// последующей записи агрегата.
type VoteLedger struct {
	db *pgxpool.Pool
}

func NewVoteLedger(db *pgxpool.Pool) service.VoteLedger {
	return &VoteLedger{db: db}
}

// UpsertVote создает голос или перезаписывает его значение на месте.
// Снимок района зафиксирован при первом голосе: ON CONFLICT обновляет только
// value, neighborhood_id при повторном голосовании не пересчитывается.
func (l *VoteLedger) UpsertVote(ctx context.Context, vote *models.Vote) ([]models.Vote, int64, error) {
	var snapshot []models.Vote
	var seq int64

	err := l.withIncidentLock(ctx, vote.IncidentID, func(tx pgx.Tx) error {
		query := `
			INSERT INTO votes (incident_id, user_id, value, neighborhood_id)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (incident_id, user_id) DO UPDATE SET value = EXCLUDED.value
			RETURNING id, created_at;
		`
		err := tx.QueryRow(ctx, query,
			vote.IncidentID,
			vote.UserID,
			vote.Value,
			vote.NeighborhoodID,
		).Scan(&vote.ID, &vote.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to upsert vote: %w", err)
		}

		if seq, err = bumpVoteSeq(ctx, tx, vote.IncidentID); err != nil {
			return err
		}

		snapshot, err = selectVotes(ctx, tx, vote.IncidentID)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return snapshot, seq, nil
}

// RemoveVote удаляет голос пользователя; отсутствие голоса — не ошибка,
// повторное снятие идемпотентно
func (l *VoteLedger) RemoveVote(ctx context.Context, incidentID uuid.UUID, userID string) ([]models.Vote, int64, error) {
	var snapshot []models.Vote
	var seq int64

	err := l.withIncidentLock(ctx, incidentID, func(tx pgx.Tx) error {
		query := `DELETE FROM votes WHERE incident_id = $1 AND user_id = $2;`
		if _, err := tx.Exec(ctx, query, incidentID, userID); err != nil {
			return fmt.Errorf("failed to remove vote: %w", err)
		}

		var err error
		if seq, err = bumpVoteSeq(ctx, tx, incidentID); err != nil {
			return err
		}

		snapshot, err = selectVotes(ctx, tx, incidentID)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return snapshot, seq, nil
}

// Snapshot возвращает полный текущий набор голосов по инциденту —
// единственный допустимый вход для пересчета агрегата и важности
func (l *VoteLedger) Snapshot(ctx context.Context, incidentID uuid.UUID) ([]models.Vote, error) {
	return selectVotes(ctx, l.db, incidentID)
}

// withIncidentLock выполняет fn в транзакции, удерживающей блокировку строки
// инцидента до коммита
func (l *VoteLedger) withIncidentLock(ctx context.Context, incidentID uuid.UUID, fn func(tx pgx.Tx) error) error {
	tx, err := l.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin vote transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var id uuid.UUID
	err = tx.QueryRow(ctx, `SELECT id FROM incidents WHERE id = $1 FOR UPDATE;`, incidentID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: id %s", service.ErrNotFound, incidentID)
		}
		return fmt.Errorf("failed to lock incident row: %w", err)
	}

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit vote transaction: %w", err)
	}
	return nil
}

func bumpVoteSeq(ctx context.Context, tx pgx.Tx, incidentID uuid.UUID) (int64, error) {
	var seq int64
	err := tx.QueryRow(ctx,
		`UPDATE incidents SET vote_seq = vote_seq + 1 WHERE id = $1 RETURNING vote_seq;`,
		incidentID,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("failed to bump vote sequence: %w", err)
	}
	return seq, nil
}

// queryer покрывает pgxpool.Pool и pgx.Tx
type queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func selectVotes(ctx context.Context, q queryer, incidentID uuid.UUID) ([]models.Vote, error) {
	query := `
		SELECT id, incident_id, user_id, value, neighborhood_id, created_at
		FROM votes
		WHERE incident_id = $1
		ORDER BY id;
	`
	rows, err := q.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to select votes: %w", err)
	}
	defer rows.Close()

	votes := make([]models.Vote, 0)
	for rows.Next() {
		var v models.Vote
		err := rows.Scan(&v.ID, &v.IncidentID, &v.UserID, &v.Value, &v.NeighborhoodID, &v.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vote row: %w", err)
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error votes iteration: %w", err)
	}
	return votes, nil
}
