package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"loyalty-storefront/report-svc/internal/service"

	"github.com/gorilla/mux"
)

// HeaderAdmin carries the caller's admin flag from the authenticating proxy.
const HeaderAdmin = "X-User-Admin"

type Handler struct {
	Dashboard service.DashboardInterface
}

func NewHandler(svc service.DashboardInterface) *Handler {
	return &Handler{Dashboard: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok", "service": "report-svc"})
	}).Methods("GET")
	r.HandleFunc("/api/dashboard", h.getDashboard).Methods("GET")
}

func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	if admin, _ := strconv.ParseBool(r.Header.Get(HeaderAdmin)); !admin {
		http.Error(w, "Admin access required", http.StatusForbidden)
		return
	}

	fetch := h.Dashboard.Dashboard
	if refresh, _ := strconv.ParseBool(r.URL.Query().Get("refresh")); refresh {
		fetch = h.Dashboard.Refresh
	}

	dashboard, err := fetch(r.Context())
	if err != nil {
		log.Printf("ERROR: dashboard: %v", err)
		http.Error(w, "Failed to build dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dashboard)
}
