package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/campusevents/campus-events/internal/domain"
)

// CatalogService exposes the event catalog: the compiled-in seed events
// concatenated with user-created events from the persisted store, seed
// events first.
type CatalogService struct {
	events domain.EventRepository
}

// NewCatalogService creates a CatalogService.
func NewCatalogService(events domain.EventRepository) *CatalogService {
	return &CatalogService{events: events}
}

// List returns the full catalog.
func (s *CatalogService) List(ctx context.Context) ([]domain.Event, error) {
	userEvents, err := s.events.ListUserEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list user events: %w", err)
	}

	catalog := make([]domain.Event, 0, len(seedEvents)+len(userEvents))
	catalog = append(catalog, seedEvents...)
	catalog = append(catalog, userEvents...)
	return catalog, nil
}

// Get returns the catalog event with the given id, or ErrNotFound.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Event, error) {
	catalog, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range catalog {
		if catalog[i].ID == id {
			ev := catalog[i]
			return &ev, nil
		}
	}
	return nil, domain.ErrNotFound
}

// EventsByID resolves a membership relation to events, preserving the
// relation's order and skipping ids that no longer resolve.
func (s *CatalogService) EventsByID(ctx context.Context, ids []string) ([]domain.Event, error) {
	catalog, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Event, len(catalog))
	for _, ev := range catalog {
		byID[ev.ID] = ev
	}

	events := make([]domain.Event, 0, len(ids))
	for _, id := range ids {
		if ev, ok := byID[id]; ok {
			events = append(events, ev)
		}
	}
	return events, nil
}

// CreateEventInput carries the user-supplied fields for a new event.
type CreateEventInput struct {
	Title       string
	Description string
	Date        string
	Location    string
	Category    string
	Image       string
	Price       float64
	Tags        []string
}

// Create validates the input, assigns a fresh id, and appends the event to
// the persisted user-event collection. The attendee count starts at zero.
// Created events are never mutated or deleted afterwards.
func (s *CatalogService) Create(ctx context.Context, input CreateEventInput) (*domain.Event, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || input.Date == "" || strings.TrimSpace(input.Location) == "" {
		return nil, fmt.Errorf("%w: title, date, and location are required", domain.ErrInvalidInput)
	}

	category := domain.Category(input.Category)
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, input.Category)
	}

	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}

	tags := make([]string, 0, len(input.Tags))
	for _, tag := range input.Tags {
		if t := strings.TrimSpace(tag); t != "" {
			tags = append(tags, t)
		}
	}

	event := &domain.Event{
		ID:          nextID(),
		Title:       title,
		Description: input.Description,
		Date:        input.Date,
		Location:    strings.TrimSpace(input.Location),
		Category:    category,
		Image:       input.Image,
		Attendees:   0,
		Price:       input.Price,
		Tags:        tags,
	}

	if err := s.events.AppendUserEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("append user event: %w", err)
	}
	return event, nil
}
