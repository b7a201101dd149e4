package service

import "github.com/umalmyha/poscustomers/internal/model"

// DemoCustomers returns customers the store is seeded with on startup
func DemoCustomers() []model.CustomerFields {
	return []model.CustomerFields{
		{
			Name:        "Jean Baptiste Uwimana",
			Country:     "Rwanda",
			Amount:      125000,
			Email:       "jean.uwimana@email.rw",
			PhoneNumber: "+250 788 123 456",
			PeriodStart: "2024-01-01",
			PeriodEnd:   "2024-12-31",
			Status:      model.StatusActive,
		},
		{
			Name:        "Marie Claire Mukamana",
			Country:     "Rwanda",
			Amount:      89000,
			Email:       "marie.mukamana@email.rw",
			PhoneNumber: "+250 789 654 321",
			PeriodStart: "2024-02-15",
			PeriodEnd:   "2024-12-31",
			Status:      model.StatusActive,
		},
		{
			Name:        "Eric Nshimiyimana",
			Country:     "Rwanda",
			Amount:      156000,
			Email:       "eric.nshimiyimana@email.rw",
			PhoneNumber: "+250 787 987 654",
			PeriodStart: "2023-12-01",
			PeriodEnd:   "2024-11-30",
			Status:      model.StatusInactive,
		},
		{
			Name:        "Agnes Niyonzima",
			Country:     "Rwanda",
			Amount:      203000,
			Email:       "agnes.niyonzima@email.rw",
			PhoneNumber: "+250 786 456 789",
			PeriodStart: "2024-03-01",
			PeriodEnd:   "2025-02-28",
			Status:      model.StatusActive,
		},
	}
}
