// Package geo resolves free-text addresses to coordinates through the
// Nominatim API, with a Redis read-through cache in front of it.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/core/ports"
	"deliverya/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// DefaultBaseURL is the public Nominatim instance.
const DefaultBaseURL = "https://nominatim.openstreetmap.org"

// minRequestInterval keeps the client inside Nominatim's usage policy of at
// most one request per second.
const minRequestInterval = 1100 * time.Millisecond

// defaultCacheTTL is how long a resolved address stays cached. Geocoding
// results barely change, so a day is conservative.
const defaultCacheTTL = 24 * time.Hour

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

type cachedPlace struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	DisplayName string  `json:"displayName"`
}

// NominatimGeocoder implements Geocoder against the Nominatim HTTP API.
// Requests to the provider are serialized and spaced out; the cache absorbs
// repeated lookups of the same address.
type NominatimGeocoder struct {
	baseURL   string
	userAgent string
	client    *http.Client
	cache     *redis.Client
	cacheTTL  time.Duration
	logger    *slog.Logger

	mu       sync.Mutex
	lastCall time.Time
}

// NewNominatimGeocoder creates a geocoder for the given Nominatim instance.
// The cache client is optional; with nil every lookup goes to the provider.
func NewNominatimGeocoder(baseURL string, userAgent string, cache *redis.Client, logger *slog.Logger) *NominatimGeocoder {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &NominatimGeocoder{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    &http.Client{Timeout: 10 * time.Second},
		cache:     cache,
		cacheTTL:  defaultCacheTTL,
		logger:    logger.With("component", "nominatim_geocoder"),
	}
}

// Resolve looks up an address, serving from cache when possible. A non-empty
// region hint is appended to the free text so the provider ranks matches
// inside the service area first. Returns ObjectNotFoundError when the
// provider knows no such place.
func (g *NominatimGeocoder) Resolve(ctx context.Context, address, regionHint string) (ports.GeocodedPlace, error) {
	if address == "" {
		return ports.GeocodedPlace{}, errs.NewValueIsRequiredError("address")
	}

	query := address
	if regionHint != "" {
		query = address + ", " + regionHint
	}

	if place, ok := g.fromCache(ctx, query); ok {
		return place, nil
	}

	result, err := g.lookup(ctx, query)
	if err != nil {
		return ports.GeocodedPlace{}, err
	}

	g.toCache(ctx, query, result)
	return result, nil
}

func (g *NominatimGeocoder) lookup(ctx context.Context, query string) (ports.GeocodedPlace, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if wait := minRequestInterval - time.Since(g.lastCall); wait > 0 {
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ports.GeocodedPlace{}, ctx.Err()
		}
	}
	g.lastCall = time.Now()

	endpoint := fmt.Sprintf("%s/search?format=json&limit=1&q=%s", g.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ports.GeocodedPlace{}, err
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return ports.GeocodedPlace{}, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.GeocodedPlace{}, fmt.Errorf("geocoding request failed: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ports.GeocodedPlace{}, err
	}

	var results []nominatimResult
	if err := json.Unmarshal(body, &results); err != nil {
		return ports.GeocodedPlace{}, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	if len(results) == 0 {
		return ports.GeocodedPlace{}, errs.NewObjectNotFoundError("address", query)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return ports.GeocodedPlace{}, fmt.Errorf("failed to parse geocoding latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return ports.GeocodedPlace{}, fmt.Errorf("failed to parse geocoding longitude: %w", err)
	}

	position, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return ports.GeocodedPlace{}, err
	}

	return ports.GeocodedPlace{
		Position:    position,
		DisplayName: results[0].DisplayName,
	}, nil
}

func (g *NominatimGeocoder) fromCache(ctx context.Context, query string) (ports.GeocodedPlace, bool) {
	if g.cache == nil {
		return ports.GeocodedPlace{}, false
	}

	raw, err := g.cache.Get(ctx, cacheKey(query)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			g.logger.WarnContext(ctx, "Geocode cache read failed", "error", err)
		}
		return ports.GeocodedPlace{}, false
	}

	var cached cachedPlace
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		return ports.GeocodedPlace{}, false
	}

	position, err := kernel.NewGeoPoint(cached.Lat, cached.Lng)
	if err != nil {
		return ports.GeocodedPlace{}, false
	}

	return ports.GeocodedPlace{
		Position:    position,
		DisplayName: cached.DisplayName,
	}, true
}

func (g *NominatimGeocoder) toCache(ctx context.Context, query string, place ports.GeocodedPlace) {
	if g.cache == nil {
		return
	}

	raw, err := json.Marshal(cachedPlace{
		Lat:         place.Position.Lat(),
		Lng:         place.Position.Lng(),
		DisplayName: place.DisplayName,
	})
	if err != nil {
		return
	}

	if err := g.cache.Set(ctx, cacheKey(query), raw, g.cacheTTL).Err(); err != nil {
		g.logger.WarnContext(ctx, "Geocode cache write failed", "error", err)
	}
}

func cacheKey(query string) string {
	return "geocode:" + query
}
