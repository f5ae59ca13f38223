package service

import (
	"context"
	"mime/multipart"
	"strings"

	"foodieframe/internal/models"
	"foodieframe/internal/repository"
	"foodieframe/internal/validation"
)

// EventService provides culinary event business logic.
type EventService struct {
	eventRepo repository.EventRepository
	media     MediaStorage
}

// NewEventService returns a new EventService.
func NewEventService(eventRepo repository.EventRepository, media MediaStorage) *EventService {
	return &EventService{eventRepo: eventRepo, media: media}
}

// EventInput carries the fields accepted when creating or updating an event.
type EventInput struct {
	UserID      uint
	Title       string
	Description string
	Image       string
	Date        string
	Location    string
	Time        string
}

// applyEventDefaults fills the placeholder image and pads short date/time
// values with a format hint. ValidateEventFields already rejects values under
// six characters on the create and update paths, so the padding branches only
// matter for events written through other means, such as fixtures or rows
// predating validation.
func applyEventDefaults(event *models.Event) {
	if strings.TrimSpace(event.Image) == "" {
		event.Image = models.DefaultEventImage
	}
	if event.Time != "" && len(event.Time) < 6 {
		event.Time = event.Time + " (24-hour format)"
	}
	if event.Date != "" && len(event.Date) < 6 {
		event.Date = event.Date + " (YYYY-MM-DD)"
	}
}

// CreateEvent validates all required fields, accumulating every violation
// into one error, then stores the event.
func (s *EventService) CreateEvent(ctx context.Context, in EventInput) (*models.Event, error) {
	if msg := validation.ValidateEventFields(in.Title, in.Description, in.Date, in.Location, in.Time); msg != "" {
		return nil, models.NewValidationError(msg)
	}

	event := &models.Event{
		UserID:      in.UserID,
		Title:       in.Title,
		Description: in.Description,
		Image:       in.Image,
		Date:        in.Date,
		Location:    in.Location,
		Time:        in.Time,
	}
	applyEventDefaults(event)

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// CreateEventWithUpload stores the uploaded image first, then the event.
func (s *EventService) CreateEventWithUpload(ctx context.Context, in EventInput, image *multipart.FileHeader) (*models.Event, error) {
	if msg := validation.ValidateEventFields(in.Title, in.Description, in.Date, in.Location, in.Time); msg != "" {
		return nil, models.NewValidationError(msg)
	}

	if image != nil {
		url, err := s.media.Save(image)
		if err != nil {
			return nil, err
		}
		in.Image = url
	}

	event := &models.Event{
		UserID:      in.UserID,
		Title:       in.Title,
		Description: in.Description,
		Image:       in.Image,
		Date:        in.Date,
		Location:    in.Location,
		Time:        in.Time,
	}
	applyEventDefaults(event)

	if err := s.eventRepo.Create(ctx, event); err != nil {
		if in.Image != "" && image != nil {
			s.media.Delete(in.Image, "event_create_failed")
		}
		return nil, err
	}
	return event, nil
}

// GetAllEvents returns events, newest first.
func (s *EventService) GetAllEvents(ctx context.Context, limit, offset int) ([]models.Event, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.eventRepo.List(ctx, limit, offset)
}

// GetEventByID returns one event by id.
func (s *EventService) GetEventByID(ctx context.Context, id uint) (*models.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

// GetEventsByUser returns a user's events, newest first.
func (s *EventService) GetEventsByUser(ctx context.Context, userID uint) ([]models.Event, error) {
	return s.eventRepo.GetByUser(ctx, userID)
}

// SearchEvents matches the term against title, description, and location.
// An empty term returns all events.
func (s *EventService) SearchEvents(ctx context.Context, query string) ([]models.Event, error) {
	if strings.TrimSpace(query) == "" {
		return s.eventRepo.List(ctx, 50, 0)
	}
	return s.eventRepo.Search(ctx, query)
}

// UpdateEvent overwrites every mutable field of the event.
func (s *EventService) UpdateEvent(ctx context.Context, id uint, in EventInput) (*models.Event, error) {
	if msg := validation.ValidateEventFields(in.Title, in.Description, in.Date, in.Location, in.Time); msg != "" {
		return nil, models.NewValidationError(msg)
	}

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	event.Title = in.Title
	event.Description = in.Description
	event.Image = in.Image
	event.Date = in.Date
	event.Location = in.Location
	event.Time = in.Time
	applyEventDefaults(event)

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// DeleteEvent removes the event.
func (s *EventService) DeleteEvent(ctx context.Context, id uint) error {
	if _, err := s.eventRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.eventRepo.Delete(ctx, id)
}
