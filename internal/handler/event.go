package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/campusevents/campus-events/internal/domain"
	"github.com/campusevents/campus-events/internal/service"
)

// EventHandler handles catalog browsing, event creation, and registration.
type EventHandler struct {
	catalog *service.CatalogService
	session *service.SessionService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(catalog *service.CatalogService, session *service.SessionService) *EventHandler {
	return &EventHandler{catalog: catalog, session: session}
}

// HandleList returns the filtered, sorted event list with its aggregates.
// GET /api/events?q=...&category=...&sort=date|popularity
// Response: {"events":[...],"total":n,"totalAttendees":m}
func (h *EventHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := service.ListQuery{
		Search:   r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
		Sort:     r.URL.Query().Get("sort"),
	}

	if query.Category != "" && query.Category != service.CategoryAll &&
		!domain.Category(query.Category).Valid() {
		writeError(w, http.StatusBadRequest, "Unknown category.")
		return
	}

	catalog, err := h.catalog.List(r.Context())
	if err != nil {
		slog.Error("list events", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	events := service.FilterEvents(catalog, query)
	writeJSON(w, http.StatusOK, map[string]any{
		"events":         toEventDTOs(events),
		"total":          len(events),
		"totalAttendees": service.TotalAttendees(events),
	})
}

// HandleGet returns a single catalog event.
// GET /api/events/{id}
func (h *EventHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	event, err := h.catalog.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Event not found.")
			return
		}
		slog.Error("get event", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"event": toEventDTO(*event)})
}

// HandleCreate creates a user event and records it in the creator's
// created-events relation.
// POST /api/events (authenticated)
// Request:  {"title":...,"description":...,"date":...,"location":...,
//            "category":...,"image":...,"price":...,"tags":[...]}
// Response: {"event": {...}}
func (h *EventHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Date        string   `json:"date"`
		Location    string   `json:"location"`
		Category    string   `json:"category"`
		Image       string   `json:"image"`
		Price       float64  `json:"price"`
		Tags        []string `json:"tags"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	event, err := h.catalog.Create(r.Context(), service.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Category:    req.Category,
		Image:       req.Image,
		Price:       req.Price,
		Tags:        req.Tags,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrInvalidCategory) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("create event", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	if err := h.session.AddCreatedEvent(r.Context(), event.ID); err != nil {
		// The event exists either way; the relation is what failed.
		slog.Error("record created event", "event", event.ID, "error", err)
	}

	writeJSON(w, http.StatusCreated, map[string]any{"event": toEventDTO(*event)})
}

// HandleRegister registers the current user for an event and fires the
// notification to the sink without blocking the response. Registering twice
// is a no-op.
// POST /api/events/{id}/register (authenticated)
func (h *EventHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	event, err := h.catalog.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Event not found.")
			return
		}
		slog.Error("get event", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	if err := h.session.RegisterForEvent(r.Context(), event.ID); err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			writeError(w, http.StatusUnauthorized, "Not authenticated.")
			return
		}
		slog.Error("register for event", "event", event.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	// Fire-and-forget: the notification must never delay or fail the
	// registration, and it outlives the request.
	go func(title, date, location string) {
		_ = h.session.SendRegistrationEmail(context.Background(), title, date, location)
	}(event.Title, event.Date, event.Location)

	writeJSON(w, http.StatusOK, map[string]string{"message": "Registered for event."})
}

// HandleUnregister removes the event from the current user's registered set.
// Unregistering from an event that was never registered is a no-op.
// DELETE /api/events/{id}/register (authenticated)
func (h *EventHandler) HandleUnregister(w http.ResponseWriter, r *http.Request) {
	if err := h.session.UnregisterFromEvent(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			writeError(w, http.StatusUnauthorized, "Not authenticated.")
			return
		}
		slog.Error("unregister from event", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Unregistered from event."})
}

// HandleMyEvents resolves the current user's membership relations to events.
// GET /api/my-events (authenticated)
// Response: {"registered":[...],"created":[...]}
func (h *EventHandler) HandleMyEvents(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	registered, err := h.catalog.EventsByID(r.Context(), user.RegisteredEvents)
	if err != nil {
		slog.Error("resolve registered events", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	created, err := h.catalog.EventsByID(r.Context(), user.CreatedEvents)
	if err != nil {
		slog.Error("resolve created events", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"registered": toEventDTOs(registered),
		"created":    toEventDTOs(created),
	})
}
