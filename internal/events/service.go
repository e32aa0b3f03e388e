// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/barcodepapel/api/internal/audit"
	"github.com/barcodepapel/api/internal/platform/ctxutil"
	"github.com/barcodepapel/api/internal/platform/validate"
	"github.com/barcodepapel/api/pkg/slice"
	"github.com/barcodepapel/api/pkg/slug"
	"github.com/barcodepapel/api/pkg/uuid"
)

type Service struct {
	repo     Repository
	recorder audit.Recorder
	logger   *slog.Logger
}

func NewService(repo Repository, recorder audit.Recorder, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		recorder: recorder,
		logger:   logger,
	}
}

// normalize fills the read-side display defaults for optional columns.
func normalize(event *Event) *Event {
	if event.Price == "" {
		event.Price = DefaultPrice
	}
	if event.ShowTime == "" {
		event.ShowTime = DefaultShowTime
	}
	return event
}

func (service *Service) ListEvents(context context.Context, limit, offset int) ([]*Event, int, error) {
	events, total, err := service.repo.ListEvents(context, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(events, normalize), total, nil
}

func (service *Service) GetEvent(context context.Context, id string) (*Event, error) {
	event, err := service.repo.GetEvent(context, id)
	if err != nil {
		return nil, err
	}
	return normalize(event), nil
}

/*
ListUpcoming returns the active events in the public calendar window: from
the start of today through the end of the day sixty days out, soonest first.
A limit of zero means no cap.
*/
func (service *Service) ListUpcoming(context context.Context, limit int) ([]*Event, error) {
	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	until := from.AddDate(0, 0, UpcomingWindowDays).Add(24*time.Hour - time.Nanosecond)

	events, err := service.repo.ListUpcoming(context, from, until, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(events, normalize), nil
}

func (service *Service) ListCategories(context context.Context) ([]*Category, error) {
	return service.repo.ListCategories(context)
}

func (service *Service) CreateEvent(context context.Context, event *Event) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, event.Name).MaxLen(FieldName, event.Name, 200)
	validator.Required(FieldCategoryID, event.CategoryID)
	if event.CategoryID != "" {
		validator.UUID(FieldCategoryID, event.CategoryID)
	}
	validator.Custom(FieldDate, event.Date.IsZero(), "This field is required")
	if event.LinkURL != "" {
		validator.URL(FieldLinkURL, event.LinkURL)
	}
	if err := validator.Err(); err != nil {
		return err
	}

	event.ID = uuid.New()
	event.Slug = slug.From(event.Name)
	if event.State != StateActive && event.State != StateInactive {
		event.State = StateActive
	}

	if err := service.repo.CreateEvent(context, event); err != nil {
		return err
	}

	if err := service.appendAudit(context, audit.ActionEventCreate, event.ID,
		fmt.Sprintf("Event %q created", event.Name),
		map[string]any{"eventId": event.ID, "name": event.Name},
	); err != nil {
		return err
	}

	service.logger.Info("event_created", slog.String("event_id", event.ID), slog.String("name", event.Name))
	return nil
}

/*
UpdateEvent applies a partial update: zero-valued input fields keep the
stored value, mirroring how the admin edit form submits unchanged columns.
The category stays mandatory.
*/
func (service *Service) UpdateEvent(context context.Context, id string, input *Event) error {
	current, err := service.repo.GetEvent(context, id)
	if err != nil {
		return err
	}

	merged := mergeEvent(current, input)

	validator := &validate.Validator{}
	validator.Required(FieldName, merged.Name).MaxLen(FieldName, merged.Name, 200)
	validator.Required(FieldCategoryID, merged.CategoryID)
	if merged.CategoryID != "" {
		validator.UUID(FieldCategoryID, merged.CategoryID)
	}
	if err := validator.Err(); err != nil {
		return err
	}

	if merged.Name != current.Name {
		merged.Slug = slug.From(merged.Name)
	}

	if err := service.repo.UpdateEvent(context, merged); err != nil {
		return err
	}

	metadata := map[string]any{
		"before": map[string]any{"name": current.Name},
		"after":  map[string]any{"name": merged.Name},
	}
	if merged.Name != current.Name {
		metadata["changes"] = map[string]any{
			"name": map[string]any{"from": current.Name, "to": merged.Name},
		}
	}

	if err := service.appendAudit(context, audit.ActionEventUpdate, id,
		fmt.Sprintf("Event %q updated", merged.Name), metadata,
	); err != nil {
		return err
	}

	*input = *merged
	service.logger.Info("event_updated", slog.String("event_id", id))
	return nil
}

func (service *Service) DeleteEvent(context context.Context, id string) error {
	current, err := service.repo.GetEvent(context, id)
	if err != nil {
		return err
	}

	if err := service.repo.DeleteEvent(context, id); err != nil {
		return err
	}

	if err := service.appendAudit(context, audit.ActionEventDelete, id,
		fmt.Sprintf("Event %q deleted", current.Name),
		map[string]any{"eventId": id, "name": current.Name},
	); err != nil {
		return err
	}

	service.logger.Warn("event_deleted", slog.String("event_id", id), slog.String("name", current.Name))
	return nil
}

/*
ToggleEventState flips an event between active and inactive and reports the
new state with a user-facing confirmation message.
*/
func (service *Service) ToggleEventState(context context.Context, id string) (*ToggleResult, error) {
	current, err := service.repo.GetEvent(context, id)
	if err != nil {
		return nil, err
	}

	newState := StateActive
	if current.State == StateActive {
		newState = StateInactive
	}

	if err := service.repo.UpdateState(context, id, newState); err != nil {
		return nil, err
	}

	if err := service.appendAudit(context, audit.ActionEventUpdate, id,
		fmt.Sprintf("Event %q state changed from %s to %s", current.Name, stateLabel(current.State), stateLabel(newState)),
		map[string]any{
			"eventId":       id,
			"name":          current.Name,
			"previousState": current.State,
			"newState":      newState,
		},
	); err != nil {
		return nil, err
	}

	message := "Evento desactivado correctamente"
	if newState == StateActive {
		message = "Evento activado correctamente"
	}

	service.logger.Info("event_state_toggled",
		slog.String("event_id", id), slog.Int("new_state", newState))

	return &ToggleResult{Success: true, NewState: newState, Message: message}, nil
}

// appendAudit writes a trail record attributed to the authenticated admin
// carried in the request context.
func (service *Service) appendAudit(context context.Context, action, entityID, description string, metadata map[string]any) error {
	record := audit.Record{
		Action:      action,
		Entity:      audit.EntityEvent,
		EntityID:    entityID,
		Description: description,
		Metadata:    metadata,
	}

	if claims := ctxutil.GetAuthUser(context); claims != nil {
		record.UserID = claims.UserID
		record.UserName = claims.Username
	}

	if err := service.recorder.Append(context, record); err != nil {
		return fmt.Errorf("audit_append_failed: %w", err)
	}
	return nil
}

// mergeEvent overlays the non-zero input fields on the stored event.
func mergeEvent(current *Event, input *Event) *Event {
	merged := *current

	if input.Name != "" {
		merged.Name = input.Name
	}
	if input.Image != "" {
		merged.Image = input.Image
	}
	if !input.Date.IsZero() {
		merged.Date = input.Date
	}
	if input.Venue != "" {
		merged.Venue = input.Venue
	}
	if input.EventDays != "" {
		merged.EventDays = input.EventDays
	}
	if input.ShowTime != "" {
		merged.ShowTime = input.ShowTime
	}
	if input.AudienceType != "" {
		merged.AudienceType = input.AudienceType
	}
	if input.Price != "" {
		merged.Price = input.Price
	}
	if input.State == StateActive || input.State == StateInactive {
		merged.State = input.State
	}
	if input.LinkURL != "" {
		merged.LinkURL = input.LinkURL
	}
	if input.CategoryID != "" {
		merged.CategoryID = input.CategoryID
	}

	return &merged
}
