package handler

import (
	"net/http"

	"github.com/campusevents/campus-events/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. The auth
// endpoints are rate limited per client IP; routes that mutate membership
// or the catalog require an authenticated session.
func RegisterRoutes(
	mux *http.ServeMux,
	session *service.SessionService,
	catalog *service.CatalogService,
	favorites *service.FavoriteService,
	mail *MailHandler,
	limiter *service.TokenBucket,
	cookieSecure bool,
) {
	auth := NewAuthHandler(session, cookieSecure)
	events := NewEventHandler(catalog, session)
	favs := NewFavoriteHandler(favorites)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.Handle("POST /api/auth/signup", RateLimit(limiter, http.HandlerFunc(auth.HandleSignup)))
	mux.Handle("POST /api/auth/login", RateLimit(limiter, http.HandlerFunc(auth.HandleLogin)))
	mux.Handle("POST /api/auth/google", RateLimit(limiter, http.HandlerFunc(auth.HandleGoogleLogin)))
	mux.HandleFunc("POST /api/auth/logout", auth.HandleLogout)
	mux.HandleFunc("GET /api/auth/me", auth.HandleMe)

	mux.HandleFunc("GET /api/events", events.HandleList)
	mux.HandleFunc("GET /api/events/{id}", events.HandleGet)
	mux.Handle("POST /api/events", RequireAuth(session, http.HandlerFunc(events.HandleCreate)))
	mux.Handle("POST /api/events/{id}/register", RequireAuth(session, http.HandlerFunc(events.HandleRegister)))
	mux.Handle("DELETE /api/events/{id}/register", RequireAuth(session, http.HandlerFunc(events.HandleUnregister)))
	mux.Handle("GET /api/my-events", RequireAuth(session, http.HandlerFunc(events.HandleMyEvents)))

	mux.HandleFunc("GET /api/favorites", favs.HandleList)
	mux.Handle("POST /api/favorites/{id}/toggle", RequireAuth(session, http.HandlerFunc(favs.HandleToggle)))

	// No method pattern: the sink handles OPTIONS/POST/405 itself.
	mux.HandleFunc("/api/send-email", mail.HandleSendEmail)
}
