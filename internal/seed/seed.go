package seed

import (
	"log/slog"
	"math/rand"

	"github.com/f1ction1/GeneratorGrafika/internal/domain"
	"github.com/f1ction1/GeneratorGrafika/internal/repository"
	"github.com/f1ction1/GeneratorGrafika/internal/utils"
)

var companyNames = []string{
	"Sklep Pod Lipą", "Kawiarnia Złoty Młyn", "Hotel Bałtyk", "Piekarnia Raz Dwa",
	"Restauracja Stary Rynek", "Apteka Zdrowie", "Serwis AutoMax", "Księgarnia Na Rogu",
}

var streets = []string{
	"ul. Długa", "ul. Polna", "ul. Ogrodowa", "al. Niepodległości", "ul. Słoneczna",
}

// InsertRandomCompanies seeds n demo companies, each with an owner account
// and a small roster of employees. Every account gets the same password so
// manual testing stays simple.
func InsertRandomCompanies(r *repository.Repository, n int, password string, emailDomain string) {
	for i := 0; i < n; i++ {
		owner, err := utils.GenerateRandomUser(password, emailDomain)
		if err != nil {
			slog.Error("failed to generate random owner", "error", err)
			return
		}

		if err := r.CreateUser(owner); err != nil {
			slog.Error("failed to insert owner", "email", owner.Email, "error", err)
			continue
		}

		employer := &domain.Employer{
			Name:    companyNames[rand.Intn(len(companyNames))],
			Address: streets[rand.Intn(len(streets))] + " " + string(rune('1'+rand.Intn(9))),
			OwnerID: owner.ID,
		}
		if err := r.CreateEmployer(employer, owner); err != nil {
			slog.Error("failed to insert employer", "name", employer.Name, "error", err)
			continue
		}

		rosterSize := rand.Intn(6) + 3
		for j := 0; j < rosterSize; j++ {
			employee := utils.GenerateRandomEmployee(employer.ID)
			if err := r.CreateEmployee(employee); err != nil {
				slog.Error("failed to insert employee", "employer", employer.Name, "error", err)
			}
		}

		slog.Info("seeded company", "employer", employer.Name, "owner", owner.Email, "employees", rosterSize)
	}
}
