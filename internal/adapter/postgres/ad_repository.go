package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodshare/internal/core/domain"
	"foodshare/internal/core/port"
)

const adColumns = `id, content, media_key, web_url, duration, user_id, payment_id, payment_status,
    status, start_date, end_date, total_runtime, last_resumed_at, created_at, updated_at`

var adColumnNames = []string{
	"id", "content", "media_key", "web_url", "duration", "user_id", "payment_id", "payment_status",
	"status", "start_date", "end_date", "total_runtime", "last_resumed_at", "created_at", "updated_at",
}

// AdRepository implements port.AdRepository using pgxpool for PostgreSQL.
// The live collection is the ads table; archived_ads has the same columns.
type AdRepository struct {
	pool *pgxpool.Pool
}

// NewAdRepository returns a new repository instance.
func NewAdRepository(pool *pgxpool.Pool) *AdRepository {
	return &AdRepository{pool: pool}
}

// CreateAd inserts an ad and assigns its ID.
func (r *AdRepository) CreateAd(ctx context.Context, ad *domain.Ad) error {
	if ad.ID == "" {
		ad.ID = uuid.NewString()
	}
	_, err := db(ctx, r.pool).Exec(ctx, `INSERT INTO ads (`+adColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`, adValues(ad)...)
	if err != nil {
		return storeErr("insert ad", err)
	}
	return nil
}

// GetAd returns an ad by id.
func (r *AdRepository) GetAd(ctx context.Context, id string) (*domain.Ad, error) {
	rows, err := db(ctx, r.pool).Query(ctx, `SELECT `+adColumns+` FROM ads WHERE id = $1`, id)
	if err != nil {
		return nil, storeErr("get ad", err)
	}
	ad, err := pgx.CollectExactlyOneRow(rows, scanAd)
	if err != nil {
		return nil, storeErr("ad "+id, err)
	}
	return &ad, nil
}

// GetAdByPaymentID returns the ad linked to a payment.
func (r *AdRepository) GetAdByPaymentID(ctx context.Context, paymentID string) (*domain.Ad, error) {
	rows, err := db(ctx, r.pool).Query(ctx, `SELECT `+adColumns+` FROM ads WHERE payment_id = $1`, paymentID)
	if err != nil {
		return nil, storeErr("get ad by payment", err)
	}
	ad, err := pgx.CollectExactlyOneRow(rows, scanAd)
	if err != nil {
		return nil, storeErr("ad record", err)
	}
	return &ad, nil
}

// TransitionAd writes the runtime fields when the stored status still
// matches from.
func (r *AdRepository) TransitionAd(ctx context.Context, ad *domain.Ad, from domain.AdStatus) error {
	tag, err := db(ctx, r.pool).Exec(ctx, `UPDATE ads
SET status = $3, total_runtime = $4, last_resumed_at = $5, end_date = $6, updated_at = $7
WHERE id = $1 AND status = $2`,
		ad.ID, string(from), string(ad.Status), ad.TotalRuntime, ad.LastResumedAt, ad.EndDate, ad.UpdatedAt)
	if err != nil {
		return storeErr("update ad", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: ad %s changed concurrently", domain.ErrInvalidState, ad.ID)
	}
	return nil
}

// SetAdPaymentStatus mirrors the payment status onto the ad.
func (r *AdRepository) SetAdPaymentStatus(ctx context.Context, adID string, status domain.PaymentStatus) error {
	tag, err := db(ctx, r.pool).Exec(ctx, `UPDATE ads SET payment_status = $2, updated_at = now() WHERE id = $1`, adID, string(status))
	if err != nil {
		return storeErr("update ad payment status", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: ad %s", domain.ErrNotFound, adID)
	}
	return nil
}

// FindExpiredAds returns ads past their end date or over their budget.
func (r *AdRepository) FindExpiredAds(ctx context.Context, userID string, now time.Time) ([]domain.Ad, error) {
	rows, err := db(ctx, r.pool).Query(ctx, `SELECT `+adColumns+` FROM ads
WHERE (end_date < $1 OR total_runtime > duration * $2)
  AND ($3 = '' OR user_id = $3)
FOR UPDATE`, now, domain.MinutesPerDay, userID)
	if err != nil {
		return nil, storeErr("find expired ads", err)
	}
	ads, err := pgx.CollectRows(rows, scanAd)
	if err != nil {
		return nil, storeErr("scan expired ads", err)
	}
	return ads, nil
}

// ArchiveAds bulk copies snapshots into archived_ads.
func (r *AdRepository) ArchiveAds(ctx context.Context, ads []domain.Ad) error {
	if len(ads) == 0 {
		return nil
	}
	_, err := db(ctx, r.pool).CopyFrom(ctx, pgx.Identifier{"archived_ads"}, adColumnNames,
		pgx.CopyFromSlice(len(ads), func(i int) ([]any, error) {
			return adValues(&ads[i]), nil
		}))
	if err != nil {
		return storeErr("archive ads", err)
	}
	return nil
}

// DeleteAds removes ads from the live table.
func (r *AdRepository) DeleteAds(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := db(ctx, r.pool).Exec(ctx, `DELETE FROM ads WHERE id = ANY($1)`, ids); err != nil {
		return storeErr("delete ads", err)
	}
	return nil
}

// ListAds pages the live table.
func (r *AdRepository) ListAds(ctx context.Context, q port.AdQuery) ([]domain.Ad, int64, error) {
	return r.list(ctx, "ads", q)
}

// ListArchivedAds pages the archive table.
func (r *AdRepository) ListArchivedAds(ctx context.Context, q port.AdQuery) ([]domain.Ad, int64, error) {
	return r.list(ctx, "archived_ads", q)
}

func (r *AdRepository) list(ctx context.Context, table string, q port.AdQuery) ([]domain.Ad, int64, error) {
	where := `WHERE ($1 = '' OR user_id = $1) AND ($2 = '' OR status = $2)`
	conn := db(ctx, r.pool)

	var total int64
	if err := conn.QueryRow(ctx, fmt.Sprintf(`SELECT count(*) FROM %s %s`, table, where), q.UserID, string(q.Status)).Scan(&total); err != nil {
		return nil, 0, storeErr("count "+table, err)
	}
	rows, err := conn.Query(ctx, fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY created_at DESC, id LIMIT $3 OFFSET $4`, adColumns, table, where),
		q.UserID, string(q.Status), limitOrAll(q.Limit), q.Offset)
	if err != nil {
		return nil, 0, storeErr("list "+table, err)
	}
	ads, err := pgx.CollectRows(rows, scanAd)
	if err != nil {
		return nil, 0, storeErr("scan "+table, err)
	}
	return ads, total, nil
}

// CountAdsByStatus counts a user's live and paused ads and archived
// expired ads.
func (r *AdRepository) CountAdsByStatus(ctx context.Context, userID string) (port.AdStats, error) {
	var s port.AdStats
	err := db(ctx, r.pool).QueryRow(ctx, `SELECT
    (SELECT count(*) FROM ads WHERE user_id = $1 AND status = 'live'),
    (SELECT count(*) FROM ads WHERE user_id = $1 AND status = 'paused'),
    (SELECT count(*) FROM archived_ads WHERE user_id = $1 AND status = 'expired')`, userID).
		Scan(&s.Live, &s.Paused, &s.Expired)
	if err != nil {
		return s, storeErr("count ads", err)
	}
	return s, nil
}

// RandomServableAd samples one ad that may be shown at now.
func (r *AdRepository) RandomServableAd(ctx context.Context, now time.Time) (*domain.Ad, error) {
	rows, err := db(ctx, r.pool).Query(ctx, `SELECT `+adColumns+` FROM ads
WHERE status = 'live'
  AND payment_status = 'Success'
  AND start_date <= $1 AND end_date >= $1
  AND total_runtime <= duration * $2
ORDER BY random()
LIMIT 1`, now, domain.MinutesPerDay)
	if err != nil {
		return nil, storeErr("random ad", err)
	}
	ad, err := pgx.CollectExactlyOneRow(rows, scanAd)
	if err != nil {
		return nil, storeErr("no active ads available", err)
	}
	return &ad, nil
}

func adValues(a *domain.Ad) []any {
	return []any{
		a.ID, a.Content, a.MediaKey, a.WebURL, a.Duration, a.UserID, a.PaymentID, string(a.PaymentStatus),
		string(a.Status), a.StartDate, a.EndDate, a.TotalRuntime, a.LastResumedAt, a.CreatedAt, a.UpdatedAt,
	}
}

func scanAd(row pgx.CollectableRow) (domain.Ad, error) {
	var a domain.Ad
	err := row.Scan(
		&a.ID,
		&a.Content,
		&a.MediaKey,
		&a.WebURL,
		&a.Duration,
		&a.UserID,
		&a.PaymentID,
		&a.PaymentStatus,
		&a.Status,
		&a.StartDate,
		&a.EndDate,
		&a.TotalRuntime,
		&a.LastResumedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

// limitOrAll turns a non-positive limit into no limit.
func limitOrAll(limit int) any {
	if limit <= 0 {
		return nil
	}
	return limit
}
