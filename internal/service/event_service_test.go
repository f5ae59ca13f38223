package service

import (
	"context"
	"strings"
	"testing"

	"foodieframe/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEventInput() EventInput {
	return EventInput{
		UserID:      1,
		Title:       "Pasta night",
		Description: "Fresh pasta from scratch",
		Date:        "2026-10-01",
		Location:    "Community kitchen",
		Time:        "18:30 sharp",
	}
}

func TestCreateEventAccumulatesViolations(t *testing.T) {
	svc := NewEventService(noopEventRepo(), &mediaStub{})

	_, err := svc.CreateEvent(context.Background(), EventInput{
		UserID: 1,
		Title:  "BBQ",
		Date:   "2026-10-01",
	})

	requireAppErrorCode(t, err, "VALIDATION_ERROR")
	msg := err.Error()
	assert.Contains(t, msg, "title must be at least 6 characters long")
	assert.Contains(t, msg, "description is required")
	assert.Contains(t, msg, "location is required")
	assert.Contains(t, msg, "time is required")
	assert.NotContains(t, msg, "date")
	assert.Equal(t, 4, strings.Count(msg, ";")+1)
}

func TestCreateEventAppliesDefaultImage(t *testing.T) {
	events := noopEventRepo()
	svc := NewEventService(events, &mediaStub{})

	event, err := svc.CreateEvent(context.Background(), validEventInput())

	require.NoError(t, err)
	assert.Equal(t, models.DefaultEventImage, event.Image)
}

func TestCreateEventKeepsProvidedImage(t *testing.T) {
	svc := NewEventService(noopEventRepo(), &mediaStub{})

	in := validEventInput()
	in.Image = "/uploads/images/abc_cover.jpg"
	event, err := svc.CreateEvent(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "/uploads/images/abc_cover.jpg", event.Image)
}

func TestApplyEventDefaultsPadsShortDateAndTime(t *testing.T) {
	event := &models.Event{Date: "10-01", Time: "18:30"}

	applyEventDefaults(event)

	assert.Equal(t, "10-01 (YYYY-MM-DD)", event.Date)
	assert.Equal(t, "18:30 (24-hour format)", event.Time)
	assert.Equal(t, models.DefaultEventImage, event.Image)
}

func TestCreateEventWithUploadStoresImage(t *testing.T) {
	events := noopEventRepo()
	media := &mediaStub{}
	svc := NewEventService(events, media)

	header := uploadFileHeader(t, "cover.jpg")
	event, err := svc.CreateEventWithUpload(context.Background(), validEventInput(), header)

	require.NoError(t, err)
	assert.Equal(t, "/uploads/images/stub_cover.jpg", event.Image)
}

func TestCreateEventWithUploadCleansUpOnCreateFailure(t *testing.T) {
	events := noopEventRepo()
	events.createFn = func(context.Context, *models.Event) error {
		return models.NewInternalError(assert.AnError)
	}
	media := &mediaStub{}
	svc := NewEventService(events, media)

	header := uploadFileHeader(t, "cover.jpg")
	_, err := svc.CreateEventWithUpload(context.Background(), validEventInput(), header)

	require.Error(t, err)
	assert.Equal(t, []string{"/uploads/images/stub_cover.jpg"}, media.deleted)
}

func TestSearchEventsEmptyTermListsAll(t *testing.T) {
	events := noopEventRepo()
	listed := false
	events.listFn = func(context.Context, int, int) ([]models.Event, error) {
		listed = true
		return nil, nil
	}
	events.searchFn = func(context.Context, string) ([]models.Event, error) {
		t.Fatal("blank query should not hit search")
		return nil, nil
	}
	svc := NewEventService(events, &mediaStub{})

	_, err := svc.SearchEvents(context.Background(), "   ")

	require.NoError(t, err)
	assert.True(t, listed)
}

func TestUpdateEventOverwritesFields(t *testing.T) {
	events := noopEventRepo()
	events.getByIDFn = func(context.Context, uint) (*models.Event, error) {
		return &models.Event{ID: 1, Title: "Old title", Image: "old.jpg"}, nil
	}
	svc := NewEventService(events, &mediaStub{})

	in := validEventInput()
	event, err := svc.UpdateEvent(context.Background(), 1, in)

	require.NoError(t, err)
	assert.Equal(t, in.Title, event.Title)
	assert.Equal(t, models.DefaultEventImage, event.Image)
}
