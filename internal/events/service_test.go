// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

package events_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barcodepapel/api/internal/audit"
	"github.com/barcodepapel/api/internal/events"
	"github.com/barcodepapel/api/internal/platform/apperr"
)

// # Fakes

type fakeRepository struct {
	events map[string]*events.Event

	created      []*events.Event
	updated      []*events.Event
	stateUpdates map[string]int
	deleted      []string
	upcomingFrom time.Time
	upcomingTo   time.Time
}

func newFakeRepository(seed ...*events.Event) *fakeRepository {
	repository := &fakeRepository{
		events:       map[string]*events.Event{},
		stateUpdates: map[string]int{},
	}
	for _, event := range seed {
		repository.events[event.ID] = event
	}
	return repository
}

func (r *fakeRepository) ListEvents(_ context.Context, _, _ int) ([]*events.Event, int, error) {
	var all []*events.Event
	for _, event := range r.events {
		copied := *event
		all = append(all, &copied)
	}
	return all, len(all), nil
}

func (r *fakeRepository) GetEvent(_ context.Context, id string) (*events.Event, error) {
	event, ok := r.events[id]
	if !ok {
		return nil, apperr.NotFound("Event")
	}
	copied := *event
	return &copied, nil
}

func (r *fakeRepository) ListUpcoming(_ context.Context, from, until time.Time, limit int) ([]*events.Event, error) {
	r.upcomingFrom = from
	r.upcomingTo = until

	var matched []*events.Event
	for _, event := range r.events {
		if event.State != events.StateActive {
			continue
		}
		if event.Date.Before(from) || event.Date.After(until) {
			continue
		}
		copied := *event
		matched = append(matched, &copied)
		if limit > 0 && len(matched) == limit {
			break
		}
	}
	return matched, nil
}

func (r *fakeRepository) CreateEvent(_ context.Context, e *events.Event) error {
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	copied := *e
	r.events[e.ID] = &copied
	r.created = append(r.created, &copied)
	return nil
}

func (r *fakeRepository) UpdateEvent(_ context.Context, e *events.Event) error {
	if _, ok := r.events[e.ID]; !ok {
		return apperr.NotFound("Event")
	}
	e.UpdatedAt = time.Now()
	copied := *e
	r.events[e.ID] = &copied
	r.updated = append(r.updated, &copied)
	return nil
}

func (r *fakeRepository) UpdateState(_ context.Context, id string, state int) error {
	event, ok := r.events[id]
	if !ok {
		return apperr.NotFound("Event")
	}
	event.State = state
	r.stateUpdates[id] = state
	return nil
}

func (r *fakeRepository) DeleteEvent(_ context.Context, id string) error {
	if _, ok := r.events[id]; !ok {
		return apperr.NotFound("Event")
	}
	delete(r.events, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeRepository) ListCategories(_ context.Context) ([]*events.Category, error) {
	return []*events.Category{{ID: "cat-1", Name: "Música"}}, nil
}

type fakeRecorder struct {
	records []audit.Record
}

func (r *fakeRecorder) Append(_ context.Context, record audit.Record) error {
	r.records = append(r.records, record)
	return nil
}

// # Fixtures

func seedEvent() *events.Event {
	return &events.Event{
		ID:         "0192b1a0-0000-7000-8000-0000000000e1",
		Name:       "Tertulia de Poesía",
		Slug:       "tertulia-de-poesia",
		Date:       time.Now().UTC().AddDate(0, 0, 7),
		Venue:      "Sede Barco de Papel",
		State:      events.StateActive,
		CategoryID: "0192b1a0-0000-7000-8000-0000000000c1",
	}
}

func newFixture(seed ...*events.Event) (*events.Service, *fakeRepository, *fakeRecorder) {
	repository := newFakeRepository(seed...)
	recorder := &fakeRecorder{}
	service := events.NewService(repository, recorder, slog.Default())
	return service, repository, recorder
}

// # Tests

/*
TestCreateEvent_Validation rejects incomplete payloads before any write.
*/
func TestCreateEvent_Validation(t *testing.T) {
	tests := []struct {
		name  string
		event events.Event
	}{
		{"missing_name", events.Event{Date: time.Now(), CategoryID: "0192b1a0-0000-7000-8000-0000000000c1"}},
		{"missing_category", events.Event{Name: "Recital", Date: time.Now()}},
		{"malformed_category", events.Event{Name: "Recital", Date: time.Now(), CategoryID: "not-a-uuid"}},
		{"missing_date", events.Event{Name: "Recital", CategoryID: "0192b1a0-0000-7000-8000-0000000000c1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repository, recorder := newFixture()

			err := service.CreateEvent(context.Background(), &tt.event)

			require.Error(t, err)
			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
			assert.Empty(t, repository.created)
			assert.Empty(t, recorder.records)
		})
	}
}

/*
TestCreateEvent_Success verifies ID and slug assignment plus the audit record.
*/
func TestCreateEvent_Success(t *testing.T) {
	service, repository, recorder := newFixture()

	event := events.Event{
		Name:       "Feria del Libro Usado",
		Date:       time.Now().UTC().AddDate(0, 0, 14),
		CategoryID: "0192b1a0-0000-7000-8000-0000000000c1",
	}

	err := service.CreateEvent(context.Background(), &event)
	require.NoError(t, err)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "feria-del-libro-usado", event.Slug)
	assert.Equal(t, events.StateActive, event.State)
	require.Len(t, repository.created, 1)

	require.Len(t, recorder.records, 1)
	record := recorder.records[0]
	assert.Equal(t, audit.ActionEventCreate, record.Action)
	assert.Equal(t, audit.EntityEvent, record.Entity)
	assert.Equal(t, event.ID, record.EntityID)
	assert.Equal(t, `Event "Feria del Libro Usado" created`, record.Description)
	assert.Equal(t, event.Name, record.Metadata["name"])
}

/*
TestUpdateEvent_PartialMerge verifies that zero-valued input fields keep the
stored values and that a rename lands in the audit metadata.
*/
func TestUpdateEvent_PartialMerge(t *testing.T) {
	existing := seedEvent()
	service, repository, recorder := newFixture(existing)

	input := events.Event{Name: "Tertulia de Poesía y Cuento"}
	err := service.UpdateEvent(context.Background(), existing.ID, &input)
	require.NoError(t, err)

	// Untouched fields survived the merge.
	assert.Equal(t, "Sede Barco de Papel", input.Venue)
	assert.Equal(t, existing.CategoryID, input.CategoryID)
	assert.Equal(t, "tertulia-de-poesia-y-cuento", input.Slug)
	require.Len(t, repository.updated, 1)

	require.Len(t, recorder.records, 1)
	record := recorder.records[0]
	assert.Equal(t, audit.ActionEventUpdate, record.Action)

	before, ok := record.Metadata["before"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Tertulia de Poesía", before["name"])

	changes, ok := record.Metadata["changes"].(map[string]any)
	require.True(t, ok)
	nameChange, ok := changes["name"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Tertulia de Poesía", nameChange["from"])
	assert.Equal(t, "Tertulia de Poesía y Cuento", nameChange["to"])
}

func TestUpdateEvent_NotFound(t *testing.T) {
	service, repository, recorder := newFixture()

	input := events.Event{Name: "Fantasma"}
	err := service.UpdateEvent(context.Background(), "0192b1a0-dead-7000-8000-000000000000", &input)

	require.Error(t, err)
	assert.Empty(t, repository.updated)
	assert.Empty(t, recorder.records)
}

/*
TestToggleEventState flips both directions and checks message, metadata and
description wording.
*/
func TestToggleEventState(t *testing.T) {
	tests := []struct {
		name            string
		initialState    int
		expectedState   int
		expectedMessage string
		expectedDesc    string
	}{
		{
			"deactivate", events.StateActive, events.StateInactive,
			"Evento desactivado correctamente",
			`Event "Tertulia de Poesía" state changed from Active to Inactive`,
		},
		{
			"activate", events.StateInactive, events.StateActive,
			"Evento activado correctamente",
			`Event "Tertulia de Poesía" state changed from Inactive to Active`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := seedEvent()
			existing.State = tt.initialState
			service, repository, recorder := newFixture(existing)

			result, err := service.ToggleEventState(context.Background(), existing.ID)
			require.NoError(t, err)

			assert.True(t, result.Success)
			assert.Equal(t, tt.expectedState, result.NewState)
			assert.Equal(t, tt.expectedMessage, result.Message)
			assert.Equal(t, tt.expectedState, repository.stateUpdates[existing.ID])

			require.Len(t, recorder.records, 1)
			record := recorder.records[0]
			assert.Equal(t, tt.expectedDesc, record.Description)
			assert.Equal(t, tt.initialState, record.Metadata["previousState"])
			assert.Equal(t, tt.expectedState, record.Metadata["newState"])
		})
	}
}

/*
TestDeleteEvent verifies the row removal and the audit trail entry.
*/
func TestDeleteEvent(t *testing.T) {
	existing := seedEvent()
	service, repository, recorder := newFixture(existing)

	err := service.DeleteEvent(context.Background(), existing.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{existing.ID}, repository.deleted)
	require.Len(t, recorder.records, 1)
	assert.Equal(t, audit.ActionEventDelete, recorder.records[0].Action)
	assert.Equal(t, `Event "Tertulia de Poesía" deleted`, recorder.records[0].Description)
}

/*
TestListUpcoming_WindowAndDefaults verifies the sixty-day query window and
the read-side display defaults for optional columns.
*/
func TestListUpcoming_WindowAndDefaults(t *testing.T) {
	existing := seedEvent()
	existing.Price = ""
	existing.ShowTime = ""
	service, repository, _ := newFixture(existing)

	upcoming, err := service.ListUpcoming(context.Background(), 0)
	require.NoError(t, err)

	require.Len(t, upcoming, 1)
	assert.Equal(t, "Gratis", upcoming[0].Price)
	assert.Equal(t, "Sin hora", upcoming[0].ShowTime)

	// Window starts at midnight today and spans sixty full days.
	now := time.Now().UTC()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	assert.True(t, repository.upcomingFrom.Equal(startOfToday))
	assert.True(t, repository.upcomingTo.After(startOfToday.AddDate(0, 0, 60)))
	assert.True(t, repository.upcomingTo.Before(startOfToday.AddDate(0, 0, 61)))
}

func TestListUpcoming_ExcludesInactive(t *testing.T) {
	inactive := seedEvent()
	inactive.State = events.StateInactive
	service, _, _ := newFixture(inactive)

	upcoming, err := service.ListUpcoming(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, upcoming)
}
