package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodshare/internal/core/domain"
)

const entryColumns = `id, user_id, post_id, points, transaction_type, source, description, created_at`

// PointsRepository implements port.PointsRepository on the append-only
// point_history table.
type PointsRepository struct {
	pool *pgxpool.Pool
}

func NewPointsRepository(pool *pgxpool.Pool) *PointsRepository {
	return &PointsRepository{pool: pool}
}

func (r *PointsRepository) AppendEntry(ctx context.Context, e *domain.PointEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	err := db(ctx, r.pool).QueryRow(ctx, `INSERT INTO point_history (`+entryColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,COALESCE($8, now()))
RETURNING created_at`,
		e.ID, e.UserID, e.PostID, e.Points, string(e.TransactionType), string(e.Source), e.Description, nullTime(e.CreatedAt)).
		Scan(&e.CreatedAt)
	if err != nil {
		return storeErr("append point entry", err)
	}
	return nil
}

// FindClaimCredit returns the food_claim credit recorded for a post.
func (r *PointsRepository) FindClaimCredit(ctx context.Context, postID string) (*domain.PointEntry, error) {
	rows, err := db(ctx, r.pool).Query(ctx, `SELECT `+entryColumns+` FROM point_history
WHERE post_id = $1 AND source = $2 AND transaction_type = $3
ORDER BY created_at
LIMIT 1`, postID, string(domain.SourceFoodClaim), string(domain.TransactionCredit))
	if err != nil {
		return nil, storeErr("find claim credit", err)
	}
	e, err := pgx.CollectExactlyOneRow(rows, scanEntry)
	if err != nil {
		return nil, storeErr("claim credit for post "+postID, err)
	}
	return &e, nil
}

func (r *PointsRepository) ListEntries(ctx context.Context, userID string, limit, offset int) ([]domain.PointEntry, int64, error) {
	conn := db(ctx, r.pool)
	var total int64
	if err := conn.QueryRow(ctx, `SELECT count(*) FROM point_history WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, storeErr("count point entries", err)
	}
	rows, err := conn.Query(ctx, `SELECT `+entryColumns+` FROM point_history
WHERE user_id = $1
ORDER BY created_at DESC, id
LIMIT $2 OFFSET $3`, userID, limitOrAll(limit), offset)
	if err != nil {
		return nil, 0, storeErr("list point entries", err)
	}
	entries, err := pgx.CollectRows(rows, scanEntry)
	if err != nil {
		return nil, 0, storeErr("scan point entries", err)
	}
	return entries, total, nil
}

func scanEntry(row pgx.CollectableRow) (domain.PointEntry, error) {
	var e domain.PointEntry
	err := row.Scan(&e.ID, &e.UserID, &e.PostID, &e.Points, &e.TransactionType, &e.Source, &e.Description, &e.CreatedAt)
	return e, err
}

const userColumns = `id, first_name, last_name, email, phone, role, points, is_blocked, token_version, created_at`

// UserRepository implements port.UserRepository. Users are owned by the
// account service; this repository only reads them and maintains the
// cached points balance.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	rows, err := db(ctx, r.pool).Query(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, storeErr("get user", err)
	}
	u, err := pgx.CollectExactlyOneRow(rows, scanUser)
	if err != nil {
		return nil, storeErr("user "+id, err)
	}
	return &u, nil
}

func (r *UserRepository) AddPoints(ctx context.Context, userID string, delta int) error {
	tag, err := db(ctx, r.pool).Exec(ctx, `UPDATE users SET points = points + $2 WHERE id = $1`, userID, delta)
	if err != nil {
		return storeErr("update user points", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: user %s", domain.ErrNotFound, userID)
	}
	return nil
}

// Leaderboard ranks regular users by points.
func (r *UserRepository) Leaderboard(ctx context.Context, limit int) ([]domain.User, error) {
	rows, err := db(ctx, r.pool).Query(ctx, `SELECT `+userColumns+` FROM users
WHERE role = $1
ORDER BY points DESC, id
LIMIT $2`, string(domain.RoleUser), limitOrAll(limit))
	if err != nil {
		return nil, storeErr("leaderboard", err)
	}
	users, err := pgx.CollectRows(rows, scanUser)
	if err != nil {
		return nil, storeErr("scan leaderboard", err)
	}
	return users, nil
}

// ListUsers pages every account except super admins, oldest first.
func (r *UserRepository) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	conn := db(ctx, r.pool)
	var total int64
	if err := conn.QueryRow(ctx, `SELECT count(*) FROM users WHERE role <> $1`, string(domain.RoleSuperAdmin)).Scan(&total); err != nil {
		return nil, 0, storeErr("count users", err)
	}
	rows, err := conn.Query(ctx, `SELECT `+userColumns+` FROM users
WHERE role <> $1
ORDER BY created_at, id
LIMIT $2 OFFSET $3`, string(domain.RoleSuperAdmin), limitOrAll(limit), offset)
	if err != nil {
		return nil, 0, storeErr("list users", err)
	}
	users, err := pgx.CollectRows(rows, scanUser)
	if err != nil {
		return nil, 0, storeErr("scan users", err)
	}
	return users, total, nil
}

// FindUsersByContact matches the exact email or phone number.
func (r *UserRepository) FindUsersByContact(ctx context.Context, query string) ([]domain.User, error) {
	rows, err := db(ctx, r.pool).Query(ctx, `SELECT `+userColumns+` FROM users
WHERE email = $1 OR (phone <> '' AND phone = $1)
ORDER BY id`, query)
	if err != nil {
		return nil, storeErr("search users", err)
	}
	users, err := pgx.CollectRows(rows, scanUser)
	if err != nil {
		return nil, storeErr("scan users", err)
	}
	return users, nil
}

func (r *UserRepository) SetBlocked(ctx context.Context, userID string, blocked bool) error {
	tag, err := db(ctx, r.pool).Exec(ctx, `UPDATE users SET is_blocked = $2 WHERE id = $1`, userID, blocked)
	if err != nil {
		return storeErr("update user block", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: user %s", domain.ErrNotFound, userID)
	}
	return nil
}

func scanUser(row pgx.CollectableRow) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.Role, &u.Points, &u.IsBlocked, &u.TokenVersion, &u.CreatedAt)
	return u, err
}
