package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"loyalty-storefront/shop-svc/internal/domain"
)

// Headers set by the authenticating collaborator in front of this service.
const (
	HeaderUserID = "X-User-ID"
	HeaderAdmin  = "X-User-Admin"
)

// principalFrom reads the caller identity. A missing or malformed user id
// yields an anonymous principal.
func principalFrom(r *http.Request) domain.Principal {
	var p domain.Principal
	if raw := strings.TrimSpace(r.Header.Get(HeaderUserID)); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
			p.UserID = &id
		}
	}
	p.Admin, _ = strconv.ParseBool(r.Header.Get(HeaderAdmin))
	return p
}
