package storage

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/Premkumar95/UPPTN/internal/models"
	"github.com/Premkumar95/UPPTN/internal/utils"
)

// Demo data per category, mirroring the platform's launch catalog.
var seedKeywords = map[string][]string{
	"Earth Movers":       {"excavator", "jcb", "bulldozer", "earthmoving", "digging"},
	"Packers and Movers": {"packing", "moving", "relocation", "household", "shifting"},
	"Lorry Services":     {"transport", "truck", "lorry", "cargo", "goods"},
	"Bore Well":          {"borewell", "drilling", "water", "well", "pump"},
	"Power Tools":        {"rental", "equipment", "tools", "machinery", "construction"},
}

var seedCompanyNames = map[string][]string{
	"Earth Movers":       {"Sri Lakshmi Excavators", "Murugan JCB Services", "Tamil Nadu Earth Movers", "Selva Digging Works"},
	"Packers and Movers": {"Fast Track Packers", "Safe Move Logistics", "Tamil Relocations", "Express Movers"},
	"Lorry Services":     {"Bharathi Transport", "Speed Cargo Services", "Tamil Nadu Lorry Transport", "Express Logistics"},
	"Bore Well":          {"Deepam Bore Well", "Amman Water Drilling", "Tamil Bore Well Services", "Professional Drillers"},
	"Power Tools":        {"Kumar Equipment Rentals", "Pro Tools Hire", "Construction Equipment Hub", "Power Tools Tamil Nadu"},
}

var seedDescriptions = map[string]string{
	"Earth Movers":       "Professional earth moving services with modern JCB and excavators. Available for construction, land leveling, and excavation works.",
	"Packers and Movers": "Trusted packing and moving services. Safe transportation of household and office goods with insurance coverage.",
	"Lorry Services":     "Reliable lorry transportation services for cargo and goods. Door-to-door delivery across Tamil Nadu.",
	"Bore Well":          "Expert bore well drilling services with advanced equipment. Water testing and pump installation included.",
	"Power Tools":        "Wide range of construction equipment and power tools for rent. Daily and monthly rental options available.",
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Seed populates the store with verified demo providers and listings for
// every district and category. Safe to call only on an empty store.
func Seed(store Store) (providers, services int, err error) {
	// One bcrypt round each, reused across all demo accounts.
	passwordHash, err := utils.HashCredential("Provider@123")
	if err != nil {
		return 0, 0, err
	}
	pinHash, err := utils.HashCredential("1234")
	if err != nil {
		return 0, 0, err
	}

	for _, district := range models.Districts {
		for _, category := range models.Categories {
			numProviders := 2 + rand.Intn(2)
			for i := 0; i < numProviders; i++ {
				company := seedCompanyNames[category][rand.Intn(len(seedCompanyNames[category]))]
				email := fmt.Sprintf("%s_%s_%d@example.com",
					strings.ReplaceAll(strings.ToLower(company), " ", ""),
					strings.ToLower(district), i)
				phone := fmt.Sprintf("+9144%08d", rand.Intn(100000000))

				provider, err := store.CreateUser(&models.User{
					Name:         fmt.Sprintf("%s - %s", company, district),
					Email:        email,
					Phone:        phone,
					District:     district,
					PasswordHash: passwordHash,
					PINHash:      pinHash,
					Role:         models.RoleProvider,
					Verified:     true,
				})
				if err != nil {
					// Duplicate demo contact; skip rather than abort.
					continue
				}
				providers++

				numServices := 1 + rand.Intn(2)
				for j := 0; j < numServices; j++ {
					keywords := seedKeywords[category]
					keyword := keywords[rand.Intn(len(keywords))]

					unit := models.UnitDay
					if category == "Earth Movers" || category == "Power Tools" {
						unit = models.UnitHour
					}

					_, err := store.CreateService(&models.Service{
						ProviderID:  provider.UserID,
						Name:        fmt.Sprintf("%s - %s Service", category, titleCase(keyword)),
						Category:    category,
						District:    district,
						Description: seedDescriptions[category],
						BasePrice:   float64(800 + rand.Intn(4201)),
						Unit:        unit,
						DiscountPct: float64(5 * rand.Intn(5)),
						Rating:      3.8 + rand.Float64()*1.2,
						Seeded:      true,
					})
					if err != nil {
						return providers, services, err
					}
					services++
				}
			}
		}
	}
	return providers, services, nil
}
