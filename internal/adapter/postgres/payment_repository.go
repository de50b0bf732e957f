package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodshare/internal/core/domain"
	"foodshare/internal/core/port"
)

const paymentColumns = `id, order_id, payment_session_id, customer_name, customer_email, customer_phone,
    amount, currency, status, created_at, updated_at`

// PaymentRepository implements port.PaymentRepository.
type PaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

func (r *PaymentRepository) CreatePayment(ctx context.Context, p *domain.Payment) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := db(ctx, r.pool).Exec(ctx, `INSERT INTO payments (`+paymentColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		p.ID, p.OrderID, p.PaymentSessionID, p.CustomerName, p.CustomerEmail, p.CustomerPhone,
		p.Amount, p.Currency, string(p.Status), p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return storeErr("insert payment", err)
	}
	return nil
}

func (r *PaymentRepository) GetPaymentByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	rows, err := db(ctx, r.pool).Query(ctx, `SELECT `+paymentColumns+` FROM payments WHERE order_id = $1`, orderID)
	if err != nil {
		return nil, storeErr("get payment", err)
	}
	p, err := pgx.CollectExactlyOneRow(rows, scanPayment)
	if err != nil {
		return nil, storeErr("payment record "+orderID, err)
	}
	return &p, nil
}

// SetPaymentStatus updates the status and returns the stored payment.
func (r *PaymentRepository) SetPaymentStatus(ctx context.Context, orderID string, status domain.PaymentStatus) (*domain.Payment, error) {
	rows, err := db(ctx, r.pool).Query(ctx, `UPDATE payments SET status = $2, updated_at = now()
WHERE order_id = $1
RETURNING `+paymentColumns, orderID, string(status))
	if err != nil {
		return nil, storeErr("update payment", err)
	}
	p, err := pgx.CollectExactlyOneRow(rows, scanPayment)
	if err != nil {
		return nil, storeErr("payment record "+orderID, err)
	}
	return &p, nil
}

func scanPayment(row pgx.CollectableRow) (domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(&p.ID, &p.OrderID, &p.PaymentSessionID, &p.CustomerName, &p.CustomerEmail, &p.CustomerPhone,
		&p.Amount, &p.Currency, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// PriceRepository reads the services price list.
type PriceRepository struct {
	pool *pgxpool.Pool
}

func NewPriceRepository(pool *pgxpool.Pool) *PriceRepository {
	return &PriceRepository{pool: pool}
}

func (r *PriceRepository) GetService(ctx context.Context, name string) (*domain.Service, error) {
	var s domain.Service
	err := db(ctx, r.pool).QueryRow(ctx, `SELECT name, type, price, duration FROM services WHERE name = $1`, name).
		Scan(&s.Name, &s.Type, &s.Price, &s.Duration)
	if err != nil {
		return nil, storeErr("service "+name, err)
	}
	return &s, nil
}

// AnalyticsRepository aggregates platform totals.
type AnalyticsRepository struct {
	pool *pgxpool.Pool
}

func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{pool: pool}
}

func (r *AnalyticsRepository) Summary(ctx context.Context) (*port.Summary, error) {
	var s port.Summary
	err := db(ctx, r.pool).QueryRow(ctx, `SELECT
    (SELECT count(*) FROM users),
    (SELECT COALESCE(sum(servings), 0) FROM (
        SELECT servings FROM posts WHERE is_claimed
        UNION ALL
        SELECT servings FROM archived_posts WHERE is_claimed) c),
    (SELECT COALESCE(sum(amount), 0) FROM payments WHERE status = 'Success'),
    (SELECT count(*) FROM ads WHERE status = 'live')`).
		Scan(&s.TotalUsers, &s.TotalFoodDonated, &s.TotalPayments, &s.LiveAds)
	if err != nil {
		return nil, storeErr("analytics summary", err)
	}
	return &s, nil
}

// RevenueByDay sums successful payments per local calendar day.
func (r *AnalyticsRepository) RevenueByDay(ctx context.Context, from, to time.Time, loc *time.Location) ([]domain.Sample, error) {
	return r.daily(ctx, "revenue by day", `SELECT (created_at AT TIME ZONE $3)::date AS day, sum(amount)::bigint
FROM payments
WHERE status = 'Success' AND created_at >= $1 AND created_at < $2
GROUP BY day
ORDER BY day`, from, to, loc)
}

// DonationsByDay sums claimed servings per local calendar day across the
// live and archived posts.
func (r *AnalyticsRepository) DonationsByDay(ctx context.Context, from, to time.Time, loc *time.Location) ([]domain.Sample, error) {
	return r.daily(ctx, "donations by day", `SELECT (created_at AT TIME ZONE $3)::date AS day, sum(servings)::bigint
FROM (
    SELECT created_at, servings FROM posts WHERE is_claimed AND created_at >= $1 AND created_at < $2
    UNION ALL
    SELECT created_at, servings FROM archived_posts WHERE is_claimed AND created_at >= $1 AND created_at < $2) c
GROUP BY day
ORDER BY day`, from, to, loc)
}

// daily runs a (day date, total bigint) query and stamps each day at
// midnight in loc.
func (r *AnalyticsRepository) daily(ctx context.Context, op, sql string, from, to time.Time, loc *time.Location) ([]domain.Sample, error) {
	rows, err := db(ctx, r.pool).Query(ctx, sql, from, to, loc.String())
	if err != nil {
		return nil, storeErr(op, err)
	}
	samples, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Sample, error) {
		var (
			day   time.Time
			total int64
		)
		if err := row.Scan(&day, &total); err != nil {
			return domain.Sample{}, err
		}
		return domain.Sample{At: time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc), Value: total}, nil
	})
	if err != nil {
		return nil, storeErr(op, err)
	}
	return samples, nil
}

// nullTime sends the zero time as NULL so the column default applies.
func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
