package memory

import (
	"fmt"
	"time"

	"foodshare/internal/core/domain"
)

// DemoAdminID and the DemoUserIDs are the accounts Seed creates. Tokens
// signed for these ids authenticate against a seeded store.
const DemoAdminID = "admin"

var DemoUserIDs = []string{"user-1", "user-2", "user-3"}

// Seed stores the ads price, an admin and a few donors, matching the ids
// of the postgres demo seed.
func Seed(s *Store, now time.Time, adsService string) {
	s.PutService(domain.Service{Name: adsService, Type: domain.PricingTimeBased, Price: 100, Duration: 1})
	s.PutUser(domain.User{
		ID: DemoAdminID, FirstName: "Site", LastName: "Admin",
		Email: "admin@example.com", Phone: "9000000000",
		Role: domain.RoleAdmin, CreatedAt: now,
	})
	for i, id := range DemoUserIDs {
		s.PutUser(domain.User{
			ID:        id,
			FirstName: fmt.Sprintf("Donor%d", i+1),
			LastName:  "Donor",
			Email:     fmt.Sprintf("donor%d@example.com", i+1),
			Phone:     fmt.Sprintf("90000000%02d", i+1),
			CreatedAt: now.Add(time.Duration(i+1) * time.Second),
		})
	}
}
