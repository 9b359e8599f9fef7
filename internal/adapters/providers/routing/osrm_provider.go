package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/providers"
	apperrors "github.com/lifelinecare/hospitalfinder/backend/pkg/errors"
)

const (
	defaultHTTPTimeout = 8 * time.Second
	routeCacheTTL      = 60 * 5
)

// OSRMRouteProvider fetches route summaries from an OSRM instance.
// Summaries are cached briefly; traffic-free OSRM estimates barely
// change between nearby requests.
type OSRMRouteProvider struct {
	baseURL    string
	httpClient *http.Client
	cache      providers.CacheProvider
}

// NewOSRMRouteProvider creates a route provider against an OSRM server.
// cache may be nil.
func NewOSRMRouteProvider(baseURL string, cache providers.CacheProvider) providers.RouteProvider {
	return NewOSRMRouteProviderWithClient(baseURL, cache, nil)
}

// NewOSRMRouteProviderWithClient allows overriding the HTTP client (used for tests)
func NewOSRMRouteProviderWithClient(baseURL string, cache providers.CacheProvider, httpClient *http.Client) providers.RouteProvider {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &OSRMRouteProvider{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		cache:      cache,
	}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// RouteSummary returns distance and duration for the fastest driving route
func (p *OSRMRouteProvider) RouteSummary(ctx context.Context, from, to providers.Coordinates) (*providers.RouteSummary, error) {
	cacheKey := fmt.Sprintf("route:%.4f,%.4f:%.4f,%.4f",
		from.Latitude, from.Longitude, to.Latitude, to.Longitude)
	if p.cache != nil {
		if cached, err := p.cache.Get(ctx, cacheKey); err == nil && len(cached) > 0 {
			var summary providers.RouteSummary
			if err := json.Unmarshal(cached, &summary); err == nil {
				return &summary, nil
			}
		}
	}

	// OSRM takes lng,lat pairs
	reqURL := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false",
		p.baseURL, from.Longitude, from.Latitude, to.Longitude, to.Latitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build route request", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewExternalError("route request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewExternalError(fmt.Sprintf("route request returned status %d", resp.StatusCode), nil)
	}

	var decoded osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, apperrors.NewExternalError("failed to decode route response", err)
	}
	if decoded.Code != "Ok" || len(decoded.Routes) == 0 {
		return nil, apperrors.NewNotFoundError("no route found between points")
	}

	summary := providers.RouteSummary{
		DistanceKm:  decoded.Routes[0].Distance / 1000,
		DurationMin: decoded.Routes[0].Duration / 60,
	}

	if p.cache != nil {
		if payload, err := json.Marshal(summary); err == nil {
			_ = p.cache.Set(ctx, cacheKey, payload, routeCacheTTL)
		}
	}

	return &summary, nil
}
