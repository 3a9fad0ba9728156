// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	healthfeature "github.com/pasaporteapp/pasaporte/internal/app/features/health"
	identityfeature "github.com/pasaporteapp/pasaporte/internal/app/features/identity"
	leaderboardfeature "github.com/pasaporteapp/pasaporte/internal/app/features/leaderboard"
	passportfeature "github.com/pasaporteapp/pasaporte/internal/app/features/passport"
	placesfeature "github.com/pasaporteapp/pasaporte/internal/app/features/places"
	toursfeature "github.com/pasaporteapp/pasaporte/internal/app/features/tours"
	tripsfeature "github.com/pasaporteapp/pasaporte/internal/app/features/trips"
	commentstore "github.com/pasaporteapp/pasaporte/internal/app/store/comments"
	identitystore "github.com/pasaporteapp/pasaporte/internal/app/store/identities"
	pendingplacestore "github.com/pasaporteapp/pasaporte/internal/app/store/pendingplaces"
	placestore "github.com/pasaporteapp/pasaporte/internal/app/store/places"
	tourstore "github.com/pasaporteapp/pasaporte/internal/app/store/tours"
	tripstore "github.com/pasaporteapp/pasaporte/internal/app/store/trips"
	userstatsstore "github.com/pasaporteapp/pasaporte/internal/app/store/userstats"
	visitstore "github.com/pasaporteapp/pasaporte/internal/app/store/visits"
	"github.com/pasaporteapp/pasaporte/internal/app/system/auth"
	"github.com/pasaporteapp/pasaporte/internal/app/system/ratelimit"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// the Startup hook have completed. Every feature router is mounted behind
// the session middleware, so all handlers can rely on a user id being
// present in the request context.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.MongoDatabase

	places := placestore.New(db)
	pending := pendingplacestore.New(db)
	comments := commentstore.New(db)
	visits := visitstore.New(db)
	stats := userstatsstore.New(db)
	trips := tripstore.New(db)
	tours := tourstore.New(db)
	identities := identitystore.New(db)

	r := chi.NewRouter()

	// Every visitor gets a stable anonymous id on first contact.
	r.Use(auth.EnsureUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, places, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Place catalog, submissions, and comments
	placesHandler := placesfeature.NewHandler(places, pending, comments, logger)
	r.Mount("/places", placesfeature.Routes(placesHandler))

	// Passport stamps
	passportHandler := passportfeature.NewHandler(visits, places, stats, deps.MongoClient, logger)
	r.Mount("/passport", passportfeature.Routes(passportHandler))

	// Leaderboard
	leaderboardHandler := leaderboardfeature.NewHandler(stats, logger)
	r.Mount("/leaderboard", leaderboardfeature.Routes(leaderboardHandler))

	// Group trips and the live trip feed
	tripsHandler := tripsfeature.NewHandler(trips, tripHub, logger)
	r.Mount("/trips", tripsfeature.Routes(tripsHandler))

	// Curated tours
	toursHandler := toursfeature.NewHandler(tours, places, logger)
	r.Mount("/tours", toursfeature.Routes(toursHandler))

	// Identity: profile, upgrade, login
	identityHandler := identityfeature.NewHandler(identities, stats, deps.MongoClient, ratelimit.NewLoginLimiter(), logger)
	r.Mount("/me", identityfeature.Routes(identityHandler))

	return r, nil
}
