// internal/app/system/seed/seed.go
//
// Package seed provisions the curated starter catalog of places. It
// runs at every startup; the upsert keys on the folded place name, so
// re-running never duplicates or overwrites places that already exist
// (including ones edited after seeding).
package seed

import (
	"context"

	placestore "github.com/pasaporteapp/pasaporte/internal/app/store/places"
	"github.com/pasaporteapp/pasaporte/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Places seeds the curated catalog and reports how many were created.
func Places(ctx context.Context, db *mongo.Database, logger *zap.Logger) (int, error) {
	store := placestore.New(db)

	created := 0
	for _, p := range catalog {
		ok, err := store.UpsertByName(ctx, p)
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}

	logger.Info("place catalog seeded",
		zap.Int("created", created),
		zap.Int("total", len(catalog)))
	return created, nil
}

// catalog is the starter set of destinations. Difficulty is 1..3,
// popularity 0..5.
var catalog = []models.Place{
	{
		Name:          "Volcán Barú",
		Description:   "Panama's highest peak. On a clear morning the summit shows both the Pacific and the Caribbean at once.",
		ImageURL:      "https://images.pasaporte.app/places/volcan-baru.jpg",
		StampImageURL: "https://images.pasaporte.app/stamps/volcan-baru.png",
		Activities:    []string{"hiking", "sunrise summit", "birdwatching"},
		HowToGetThere: "From Boquete, take the summit trail from the ranger station; most hikers start around midnight to reach the top for sunrise.",
		Latitude:      8.8080,
		Longitude:     -82.5428,
		Difficulty:    3,
		Popularity:    5,
	},
	{
		Name:          "Bocas del Toro",
		Description:   "Caribbean archipelago of mangroves, starfish beaches and over-the-water restaurants.",
		ImageURL:      "https://images.pasaporte.app/places/bocas-del-toro.jpg",
		StampImageURL: "https://images.pasaporte.app/stamps/bocas-del-toro.png",
		Activities:    []string{"snorkeling", "surfing", "island hopping"},
		HowToGetThere: "Fly from Panama City to Isla Colón, or take the bus to Almirante and the water taxi across.",
		Latitude:      9.3403,
		Longitude:     -82.2420,
		Difficulty:    1,
		Popularity:    5,
	},
	{
		Name:          "Sendero Los Quetzales",
		Description:   "Cloud-forest trail between Boquete and Cerro Punta, one of the best places in the country to spot a resplendent quetzal.",
		ImageURL:      "https://images.pasaporte.app/places/sendero-los-quetzales.jpg",
		StampImageURL: "https://images.pasaporte.app/stamps/sendero-los-quetzales.png",
		Activities:    []string{"hiking", "birdwatching"},
		HowToGetThere: "Start from the Cerro Punta side for a mostly downhill walk to Boquete; arrange a pickup at the far trailhead.",
		Latitude:      8.8167,
		Longitude:     -82.4833,
		Difficulty:    2,
		Popularity:    4,
	},
	{
		Name:          "Guna Yala",
		Description:   "Autonomous comarca of more than 300 coral islands governed by the Guna people. Small-boat sailing at its purest.",
		ImageURL:      "https://images.pasaporte.app/places/guna-yala.jpg",
		StampImageURL: "https://images.pasaporte.app/stamps/guna-yala.png",
		Activities:    []string{"sailing", "snorkeling", "cultural visits"},
		HowToGetThere: "4x4 transfer from Panama City to the Cartí port, then boat to your island. Bring cash; there are no ATMs.",
		Latitude:      9.5614,
		Longitude:     -78.9511,
		Difficulty:    2,
		Popularity:    5,
	},
	{
		Name:          "Valle de Antón",
		Description:   "Town inside the flat crater of an extinct volcano, ringed by forested peaks and waterfalls.",
		ImageURL:      "https://images.pasaporte.app/places/valle-de-anton.jpg",
		StampImageURL: "https://images.pasaporte.app/stamps/valle-de-anton.png",
		Activities:    []string{"hiking", "hot springs", "market"},
		HowToGetThere: "Direct bus from Albrook terminal, about two and a half hours.",
		Latitude:      8.6010,
		Longitude:     -80.1289,
		Difficulty:    1,
		Popularity:    4,
	},
	{
		Name:          "Casco Antiguo",
		Description:   "The colonial quarter of Panama City: plazas, ruins and rooftops looking across the bay to the modern skyline.",
		ImageURL:      "https://images.pasaporte.app/places/casco-antiguo.jpg",
		StampImageURL: "https://images.pasaporte.app/stamps/casco-antiguo.png",
		Activities:    []string{"walking tour", "museums", "food"},
		HowToGetThere: "Ten minutes by taxi from downtown Panama City; walkable once there.",
		Latitude:      8.9514,
		Longitude:     -79.5343,
		Difficulty:    1,
		Popularity:    5,
	},
	{
		Name:          "Esclusas de Miraflores",
		Description:   "Visitor center at the Pacific locks of the Panama Canal, with decks over the chambers as ships pass through.",
		ImageURL:      "https://images.pasaporte.app/places/miraflores.jpg",
		StampImageURL: "https://images.pasaporte.app/stamps/miraflores.png",
		Activities:    []string{"canal viewing", "museum"},
		HowToGetThere: "Metro to Albrook, then a short taxi; transits are most frequent in the morning.",
		Latitude:      8.9969,
		Longitude:     -79.5912,
		Difficulty:    1,
		Popularity:    4,
	},
	{
		Name:          "Santa Catalina",
		Description:   "Fishing village turned surf town, and the jumping-off point for diving at Coiba National Park.",
		ImageURL:      "https://images.pasaporte.app/places/santa-catalina.jpg",
		StampImageURL: "https://images.pasaporte.app/stamps/santa-catalina.png",
		Activities:    []string{"surfing", "diving", "boat trips"},
		HowToGetThere: "Bus to Soná, then a local connection to the coast. The last stretch runs infrequently; check return times.",
		Latitude:      7.6333,
		Longitude:     -81.2667,
		Difficulty:    2,
		Popularity:    4,
	},
}
