package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"svyato-bot/internal/config"
)

// Storage archives users and order leads in PostgreSQL. The dialogue itself
// never reads from here; the tables feed the manager reports.
type Storage struct {
	db         *sqlx.DB
	logger     *zap.Logger
	reportsDir string
}

// User is a bot visitor. Visits counts processed messages.
type User struct {
	ChatID    int64     `db:"chat_id"`
	Username  string    `db:"username"`
	FirstName string    `db:"first_name"`
	Phone     string    `db:"phone"`
	Visits    int64     `db:"visits"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Lead is an order summary sent to the manager.
type Lead struct {
	ID        int64     `db:"id"`
	ChatID    int64     `db:"chat_id"`
	City      string    `db:"city"`
	Summary   string    `db:"summary"`
	Total     int       `db:"total"`
	CreatedAt time.Time `db:"created_at"`
}

// Stats is the counters block behind the /stats command.
type Stats struct {
	Users      int `db:"users"`
	Leads      int `db:"leads"`
	LeadsToday int `db:"leads_today"`
	LeadsWeek  int `db:"leads_week"`
}

func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Storage, error) {
	const operation = "storage.New"

	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
	)

	var db *sqlx.DB
	var err error

	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = 2 * time.Minute
	retryPolicy.MaxInterval = 15 * time.Second

	logger.Info("Connecting to PostgreSQL...")

	err = backoff.RetryNotify(
		func() error {
			db, err = sqlx.ConnectContext(ctx, "postgres", connStr)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			if err = db.PingContext(ctx); err != nil {
				return fmt.Errorf("ping: %w", err)
			}
			return nil
		},
		backoff.WithContext(retryPolicy, ctx),
		func(err error, duration time.Duration) {
			logger.Warn("PostgreSQL connection failed, retrying...",
				zap.Error(err),
				zap.Duration("next_attempt_in", duration))
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect after retries: %w", operation, err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.DBConnMaxIdleTime)

	logger.Info("Successfully connected to PostgreSQL")
	return &Storage{
		db:         db,
		logger:     logger,
		reportsDir: cfg.ReportsDir,
	}, nil
}

// UpsertUser records a visit: first contact inserts the row, every later
// message bumps the visits counter and refreshes the profile fields.
func (s *Storage) UpsertUser(ctx context.Context, user User) error {
	const query = `
        INSERT INTO users (chat_id, username, first_name, visits, created_at, updated_at)
        VALUES ($1, $2, $3, 1, NOW(), NOW())
        ON CONFLICT (chat_id) DO UPDATE SET
            username = EXCLUDED.username,
            first_name = EXCLUDED.first_name,
            visits = users.visits + 1,
            updated_at = NOW()
    `
	if _, err := s.db.ExecContext(ctx, query, user.ChatID, user.Username, user.FirstName); err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

func (s *Storage) SetUserPhone(ctx context.Context, chatID int64, phone string) error {
	const query = `UPDATE users SET phone = $1, updated_at = NOW() WHERE chat_id = $2`
	if _, err := s.db.ExecContext(ctx, query, phone, chatID); err != nil {
		return fmt.Errorf("failed to set user phone: %w", err)
	}
	return nil
}

func (s *Storage) ListUsers(ctx context.Context) ([]User, error) {
	const query = `
        SELECT chat_id, username, first_name, COALESCE(phone, '') AS phone,
               visits, created_at, updated_at
        FROM users ORDER BY created_at
    `
	var users []User
	if err := s.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *Storage) SaveLead(ctx context.Context, lead Lead) (int64, error) {
	const query = `
        INSERT INTO leads (chat_id, city, summary, total, created_at)
        VALUES ($1, $2, $3, $4, NOW())
        RETURNING id
    `
	var leadID int64
	err := s.db.QueryRowContext(ctx, query,
		lead.ChatID, lead.City, lead.Summary, lead.Total,
	).Scan(&leadID)
	if err != nil {
		return 0, fmt.Errorf("failed to save lead: %w", err)
	}
	return leadID, nil
}

func (s *Storage) ListLeads(ctx context.Context) ([]Lead, error) {
	const query = `SELECT id, chat_id, city, summary, total, created_at FROM leads ORDER BY created_at DESC`
	var leads []Lead
	if err := s.db.SelectContext(ctx, &leads, query); err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}

func (s *Storage) LeadStats(ctx context.Context) (*Stats, error) {
	const query = `
        SELECT
            (SELECT COUNT(*) FROM users) AS users,
            (SELECT COUNT(*) FROM leads) AS leads,
            (SELECT COUNT(*) FROM leads WHERE created_at >= CURRENT_DATE) AS leads_today,
            (SELECT COUNT(*) FROM leads WHERE created_at >= CURRENT_DATE - INTERVAL '7 days') AS leads_week
    `
	var stats Stats
	if err := s.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return &stats, nil
}

func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
