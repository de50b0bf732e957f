package db

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodshare/internal/core/domain"
)

var seedCities = [][2]string{
	{"Mumbai", "Maharashtra"},
	{"Pune", "Maharashtra"},
	{"Bengaluru", "Karnataka"},
	{"Chennai", "Tamil Nadu"},
}

// Seed inserts demo data: an admin, a handful of donors, the ads price,
// open posts and paid ads. Rows are keyed so running it twice is harmless.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	now := time.Now().UTC()

	_, err := db.Exec(ctx, `INSERT INTO services (name, type, price, duration)
VALUES ('ads', $1, 100, 1) ON CONFLICT DO NOTHING`, string(domain.PricingTimeBased))
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, `INSERT INTO users (id, first_name, last_name, email, phone, role)
VALUES ('admin', 'Site', 'Admin', 'admin@example.com', '9000000000', $1) ON CONFLICT DO NOTHING`, string(domain.RoleAdmin))
	if err != nil {
		return err
	}

	for i := 1; i <= 5; i++ {
		userID := fmt.Sprintf("user-%d", i)
		_, err = db.Exec(ctx, `INSERT INTO users (id, first_name, last_name, email, phone, role)
VALUES ($1, $2, 'Donor', $3, $4, $5) ON CONFLICT DO NOTHING`,
			userID, fmt.Sprintf("Donor%d", i), fmt.Sprintf("donor%d@example.com", i), fmt.Sprintf("90000000%02d", i), string(domain.RoleUser))
		if err != nil {
			return err
		}

		for j := 1; j <= 3; j++ {
			city := seedCities[rand.IntN(len(seedCities))]
			_, err = db.Exec(ctx, `INSERT INTO posts
(id, title, description, servings, expiry_time, street, city, state, posted_by, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,now(),now()) ON CONFLICT DO NOTHING`,
				fmt.Sprintf("post-%d-%d", i, j),
				fmt.Sprintf("Surplus meal %d from donor %d", j, i),
				"Freshly cooked, packed and ready for pickup",
				1+rand.IntN(40),
				now.Add(time.Duration(2+rand.IntN(24))*time.Hour),
				fmt.Sprintf("%d Main Road", 10*j),
				city[0], city[1], userID)
			if err != nil {
				return err
			}
		}

		paymentID := fmt.Sprintf("payment-%d", i)
		days := 1 + rand.IntN(7)
		_, err = db.Exec(ctx, `INSERT INTO payments
(id, order_id, payment_session_id, customer_name, customer_email, customer_phone, amount, currency, status)
VALUES ($1,$2,$3,$4,$5,$6,$7,'INR',$8) ON CONFLICT DO NOTHING`,
			paymentID, fmt.Sprintf("OD-SEED%09d", i), uuid.NewString(),
			fmt.Sprintf("Donor%d Donor", i), fmt.Sprintf("donor%d@example.com", i), fmt.Sprintf("90000000%02d", i),
			int64(100*days), string(domain.PaymentSuccess))
		if err != nil {
			return err
		}
		ad, err := domain.NewAd(fmt.Sprintf("Support donor %d's kitchen", i), fmt.Sprintf("ads/seed-%d.jpg", i),
			"https://example.com", days, userID, paymentID, now)
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx, `INSERT INTO ads
(id, content, media_key, web_url, duration, user_id, payment_id, payment_status, status, start_date, end_date, last_resumed_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12) ON CONFLICT DO NOTHING`,
			fmt.Sprintf("ad-%d", i), ad.Content, ad.MediaKey, ad.WebURL, ad.Duration, userID, paymentID,
			string(domain.PaymentSuccess), string(ad.Status), ad.StartDate, ad.EndDate, ad.LastResumedAt)
		if err != nil {
			return err
		}
	}
	return nil
}
