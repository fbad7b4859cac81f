package handler

import (
	"github.com/campusevents/campus-events/internal/domain"
)

// UserDTO is the JSON representation of a user. Credentials never appear
// here: the DTO is built from session copies that carry no password hash.
type UserDTO struct {
	ID               string   `json:"id"`
	Email            string   `json:"email"`
	Name             string   `json:"name"`
	Avatar           string   `json:"avatar,omitempty"`
	RegisteredEvents []string `json:"registeredEvents"`
	CreatedEvents    []string `json:"createdEvents"`
}

func toUserDTO(u *domain.User) UserDTO {
	dto := UserDTO{
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.Name,
		Avatar:           u.Avatar,
		RegisteredEvents: u.RegisteredEvents,
		CreatedEvents:    u.CreatedEvents,
	}
	if dto.RegisteredEvents == nil {
		dto.RegisteredEvents = []string{}
	}
	if dto.CreatedEvents == nil {
		dto.CreatedEvents = []string{}
	}
	return dto
}

// EventDTO is the JSON representation of a catalog event.
type EventDTO struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Location    string   `json:"location"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Attendees   int      `json:"attendees"`
	Price       float64  `json:"price"`
	Tags        []string `json:"tags"`
}

func toEventDTO(e domain.Event) EventDTO {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return EventDTO{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Location:    e.Location,
		Category:    string(e.Category),
		Image:       e.Image,
		Attendees:   e.Attendees,
		Price:       e.Price,
		Tags:        tags,
	}
}

func toEventDTOs(events []domain.Event) []EventDTO {
	dtos := make([]EventDTO, len(events))
	for i, e := range events {
		dtos[i] = toEventDTO(e)
	}
	return dtos
}
