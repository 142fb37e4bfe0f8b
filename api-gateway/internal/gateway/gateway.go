package gateway

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	ShopSvcURL   string
	ReportSvcURL string
	// TrustIdentityHeaders forwards X-User-ID/X-User-Admin as received. Enable it
	// only when an authenticating proxy in front of the gateway sets them.
	TrustIdentityHeaders bool
}

// IdentityHeaders carry the caller identity the services act on.
var IdentityHeaders = []string{"X-User-ID", "X-User-Admin"}

// route sends every path under prefix to one upstream.
type route struct {
	prefix   string
	upstream func(Config) string
}

// Longest prefixes first; the shop service owns whatever is left under /api/.
var routes = []route{
	{prefix: "/api/dashboard", upstream: func(c Config) string { return c.ReportSvcURL }},
	{prefix: "/api/", upstream: func(c Config) string { return c.ShopSvcURL }},
}

type Gateway struct {
	config Config
	client HTTPClient
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	return &Gateway{
		config: config,
		client: client,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Upstream returns the base URL that serves path, or "" when nothing does.
func (g *Gateway) Upstream(path string) string {
	for _, rt := range routes {
		if path == strings.TrimSuffix(rt.prefix, "/") || strings.HasPrefix(path, rt.prefix) {
			return rt.upstream(g.config)
		}
	}
	return ""
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	log.Printf("[gateway] %s %s -> %s", r.Method, r.URL.Path, targetURL)

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		log.Printf("ERROR: Failed to create request: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	req.Header = r.Header.Clone()
	if !g.config.TrustIdentityHeaders {
		for _, h := range IdentityHeaders {
			req.Header.Del(h)
		}
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("ERROR: Failed to proxy to %s: %v", targetURL, err)
		http.Error(w, "Upstream unavailable", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("ERROR: Failed to copy response: %v", err)
	}
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	target := g.Upstream(r.URL.Path)
	if target == "" {
		log.Printf("WARNING: [gateway] unmatched route %s %s", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
		return
	}
	g.ProxyRequest(w, r, target)
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}
