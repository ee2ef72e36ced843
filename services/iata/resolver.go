package iata

import (
	"context"
	"strings"

	"maxxtravel/models"

	"go.uber.org/zap"
)

// staticCodes are curated well-known city mappings, checked before anything
// else so the usual suspects never cost a remote call.
var staticCodes = map[string]string{
	"mumbai":    "BOM",
	"delhi":     "DEL",
	"dubai":     "DXB",
	"london":    "LON",
	"new york":  "NYC",
	"paris":     "PAR",
	"tokyo":     "TYO",
	"bangalore": "BLR",
	"singapore": "SIN",
	"chicago":   "CHI",
	"sydney":    "SYD",
	"istanbul":  "IST",
	"frankfurt": "FRA",
}

// acceptedSubTypes are the location subtypes that count as resolvable.
var acceptedSubTypes = map[string]bool{
	"CITY":    true,
	"AIRPORT": true,
}

// LocationClient is the remote lookup the resolver falls back to.
type LocationClient interface {
	ResolveLocation(ctx context.Context, keyword string, subTypes []string) ([]models.Location, error)
}

// Resolver maps free-text place names to 3-letter IATA codes.
type Resolver struct {
	cache     Cache
	locations LocationClient
	logger    *zap.Logger
}

func NewResolver(cache Cache, locations LocationClient, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.L()
	}
	return &Resolver{cache: cache, locations: locations, logger: logger}
}

// Resolve returns the IATA code for a place name, or false when no code could
// be found. Lookup order: static table, cache, remote. Remote failures are
// logged and reported as not-found; they are never cached, so the next call
// for the same place retries.
func (r *Resolver) Resolve(ctx context.Context, place string) (string, bool) {
	name := strings.ToLower(strings.TrimSpace(place))
	if name == "" {
		return "", false
	}

	if code, ok := staticCodes[name]; ok {
		return code, true
	}
	if code, ok := r.cache.Get(ctx, name); ok {
		return code, true
	}

	locations, err := r.locations.ResolveLocation(ctx, name, []string{"CITY", "AIRPORT"})
	if err != nil {
		r.logger.Warn("remote IATA lookup failed",
			zap.String("place", name), zap.Error(err))
		return "", false
	}

	for _, loc := range locations {
		if loc.Code == "" || !acceptedSubTypes[loc.SubType] {
			continue
		}
		r.cache.Set(ctx, name, loc.Code)
		return loc.Code, true
	}

	r.logger.Debug("no IATA code found", zap.String("place", name))
	return "", false
}
