// Package agencies is the read-only directory of rental agencies. The
// account store reads it at start-up to make sure every listed agency can
// sign in.
package agencies

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
)

// Agency describes one rental agency of the marketplace.
type Agency struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Directory lists the known agencies in a stable order.
type Directory interface {
	Agencies() []Agency
}

// Static is a fixed list of agencies.
type Static []Agency

// Agencies returns a copy of the list.
func (s Static) Agencies() []Agency {
	return slices.Clone(s)
}

// Default returns the directory shipped with the application.
func Default() Static {
	return Static{
		{
			ID:      "ag1",
			Name:    "Tunis Auto Location",
			Email:   "contact@tunisauto.tn",
			Phone:   "+216 71 234 567",
			Address: "12 Rue de Marseille, Tunis",
		},
		{
			ID:      "ag2",
			Name:    "Sahel Cars",
			Email:   "reservations@sahelcars.tn",
			Phone:   "+216 73 456 789",
			Address: "45 Boulevard du 7 Novembre, Sousse",
		},
		{
			ID:      "ag3",
			Name:    "Djerba Rent",
			Email:   "info@djerbarent.tn",
			Phone:   "+216 75 654 321",
			Address: "8 Avenue Habib Bourguiba, Houmt Souk",
		},
		{
			ID:      "ag4",
			Name:    "Sfax Mobility",
			Email:   "hello@sfaxmobility.tn",
			Phone:   "+216 74 112 233",
			Address: "23 Route de Tunis, Sfax",
		},
	}
}

// LoadFile reads a JSON array of agencies from path.
func LoadFile(path string) (Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read agency directory: %w", err)
	}

	var list Static
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode agency directory %s: %w", path, err)
	}
	for i, a := range list {
		if a.Email == "" {
			return nil, fmt.Errorf("agency directory %s: entry %d has no email", path, i)
		}
	}
	return list, nil
}
