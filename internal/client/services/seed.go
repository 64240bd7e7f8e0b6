package services

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/carflow/internal/client/agencies"
	"github.com/dmitrijs2005/carflow/internal/client/models"
)

// agencyPassword is the credential every directory agency signs in with.
const agencyPassword = "admin"

var (
	clientSeedCreatedAt = time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)
	agencySeedCreatedAt = time.Date(2022, time.July, 10, 0, 0, 0, 0, time.UTC)
)

// seedRecords builds the record set used when nothing usable is stored: two
// example accounts followed by one account per directory agency.
func seedRecords(list []agencies.Agency) []models.UserRecord {
	records := []models.UserRecord{
		{
			ID:        "c1",
			Name:      "John Doe",
			Email:     "client@example.com",
			Phone:     "+216 55 123 456",
			Address:   "123 Avenue Habib Bourguiba, Tunis",
			Password:  "password",
			Type:      models.KindClient,
			CreatedAt: clientSeedCreatedAt,
		},
		{
			ID:        "a1",
			Name:      "Car Agency",
			Email:     "agency@example.com",
			Phone:     "+216 71 987 654",
			Address:   "456 Avenue Mohamed V, Sousse",
			Password:  "password",
			Type:      models.KindAgency,
			CreatedAt: agencySeedCreatedAt,
		},
	}

	for _, a := range list {
		records = append(records, agencyRecord(a.ID, a))
	}
	return records
}

func agencyRecord(id string, a agencies.Agency) models.UserRecord {
	return models.UserRecord{
		ID:        id,
		Name:      a.Name,
		Email:     a.Email,
		Phone:     a.Phone,
		Address:   a.Address,
		Password:  agencyPassword,
		Type:      models.KindAgency,
		CreatedAt: agencySeedCreatedAt,
	}
}

// healAgencies appends an agency account for every directory entry whose
// email is not in records yet and returns the healed emails. Emails are
// compared exactly. New ids are "ag<n>" with n = len(records)+i, where the
// length is taken after each append, so the numbers skip: [c1] plus two
// missing agencies gives ag1 and ag3.
func healAgencies(records []models.UserRecord, list []agencies.Agency) ([]models.UserRecord, []string) {
	emails := make(map[string]bool, len(records))
	taken := make(map[string]bool, len(records))
	for _, r := range records {
		emails[r.Email] = true
		taken[r.ID] = true
	}

	var missing []agencies.Agency
	for _, a := range list {
		if !emails[a.Email] {
			missing = append(missing, a)
		}
	}

	healed := make([]string, 0, len(missing))
	for i, a := range missing {
		// len(records) already counts the agencies healed so far.
		id := freeID("ag", int64(len(records)+i), taken)
		taken[id] = true
		records = append(records, agencyRecord(id, a))
		healed = append(healed, a.Email)
	}
	return records, healed
}

// freeID returns prefix+n, bumping n until the id is not taken.
func freeID(prefix string, n int64, taken map[string]bool) string {
	for {
		id := fmt.Sprintf("%s%d", prefix, n)
		if !taken[id] {
			return id
		}
		n++
	}
}

func countKind(records []models.UserRecord, kind models.AccountKind) int {
	n := 0
	for _, r := range records {
		if r.Type == kind {
			n++
		}
	}
	return n
}
