package httpapi

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func NewRouter(handler *Handler) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return cors.New(cors.Options{
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", HeaderUserID, HeaderAdmin},
	}).Handler(r)
}

func StartServer(addr string, handler http.Handler) {
	log.Printf("Shop Service starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
