package calendar

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	domain "github.com/Crow-s-Physiotherapy/physio-booking-api/internal/domain/appointment"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/httperr"
)

// ======================================================
// GOOGLE CALENDAR CLIENT
// ======================================================

type Config struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	CalendarID   string
	Timezone     string
	Timeout      time.Duration
}

// GoogleClient implements domain.CalendarPort against the clinic's Google
// Calendar. Access tokens are refreshed per call; nothing is cached here.
type GoogleClient struct {
	cfg Config
	log *zap.Logger

	// opts lets tests point the client at a stub server.
	opts []option.ClientOption
}

func NewGoogleClient(cfg Config, log *zap.Logger, opts ...option.ClientOption) *GoogleClient {
	if cfg.CalendarID == "" {
		cfg.CalendarID = "primary"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	return &GoogleClient{
		cfg:  cfg,
		log:  log,
		opts: opts,
	}
}

var _ domain.CalendarPort = (*GoogleClient)(nil)

func (c *GoogleClient) service(ctx context.Context) (*gcal.Service, error) {
	if c.cfg.ClientID == "" || c.cfg.ClientSecret == "" || c.cfg.RefreshToken == "" {
		return nil, httperr.NewAuth("calendar credentials are not configured", nil)
	}

	conf := &oauth2.Config{
		ClientID:     c.cfg.ClientID,
		ClientSecret: c.cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gcal.CalendarScope},
	}

	ts := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: c.cfg.RefreshToken})
	tok, err := ts.Token()
	if err != nil {
		return nil, httperr.NewAuth("calendar token refresh failed", err)
	}

	opts := append([]option.ClientOption{option.WithTokenSource(oauth2.StaticTokenSource(tok))}, c.opts...)
	svc, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, normalize(err)
	}
	return svc, nil
}

func (c *GoogleClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.cfg.Timeout)
}

// --------------------------------------------------
// FreeBusy
// --------------------------------------------------

func (c *GoogleClient) FreeBusy(ctx context.Context, timeMin, timeMax time.Time) ([]domain.BusyInterval, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	svc, err := c.service(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := svc.Freebusy.Query(&gcal.FreeBusyRequest{
		TimeMin: timeMin.Format(time.RFC3339),
		TimeMax: timeMax.Format(time.RFC3339),
		Items:   []*gcal.FreeBusyRequestItem{{Id: c.cfg.CalendarID}},
	}).Context(ctx).Do()
	if err != nil {
		return nil, normalize(err)
	}

	cal, ok := resp.Calendars[c.cfg.CalendarID]
	if !ok {
		return nil, nil
	}

	busy := make([]domain.BusyInterval, 0, len(cal.Busy))
	for _, tp := range cal.Busy {
		start, err1 := time.Parse(time.RFC3339, tp.Start)
		end, err2 := time.Parse(time.RFC3339, tp.End)
		if err1 != nil || err2 != nil {
			c.log.Warn("skipping unparseable busy interval",
				zap.String("start", tp.Start),
				zap.String("end", tp.End),
			)
			continue
		}
		busy = append(busy, domain.BusyInterval{Start: start, End: end})
	}

	return busy, nil
}

// --------------------------------------------------
// Events
// --------------------------------------------------

func (c *GoogleClient) CreateEvent(ctx context.Context, in domain.EventInput) (*domain.EventRecord, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	svc, err := c.service(ctx)
	if err != nil {
		return nil, err
	}

	ev := c.toEvent(in)
	if in.WithMeet {
		ev.ConferenceData = &gcal.ConferenceData{
			CreateRequest: &gcal.CreateConferenceRequest{
				RequestId:             uuid.NewString(),
				ConferenceSolutionKey: &gcal.ConferenceSolutionKey{Type: "hangoutsMeet"},
			},
		}
	}

	call := svc.Events.Insert(c.cfg.CalendarID, ev).Context(ctx)
	if in.WithMeet {
		call = call.ConferenceDataVersion(1)
	}

	created, err := call.Do()
	if err != nil {
		return nil, normalize(err)
	}

	return c.toRecord(created), nil
}

func (c *GoogleClient) UpdateEvent(ctx context.Context, eventID string, in domain.EventInput) (*domain.EventRecord, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	svc, err := c.service(ctx)
	if err != nil {
		return nil, err
	}

	updated, err := svc.Events.Patch(c.cfg.CalendarID, eventID, c.toEvent(in)).Context(ctx).Do()
	if err != nil {
		return nil, normalize(err)
	}

	return c.toRecord(updated), nil
}

func (c *GoogleClient) GetEvent(ctx context.Context, eventID string) (*domain.EventRecord, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	svc, err := c.service(ctx)
	if err != nil {
		return nil, err
	}

	ev, err := svc.Events.Get(c.cfg.CalendarID, eventID).Context(ctx).Do()
	if err != nil {
		return nil, normalize(err)
	}

	return c.toRecord(ev), nil
}

func (c *GoogleClient) DeleteEvent(ctx context.Context, eventID string) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	svc, err := c.service(ctx)
	if err != nil {
		return err
	}

	if err := svc.Events.Delete(c.cfg.CalendarID, eventID).Context(ctx).Do(); err != nil {
		return normalize(err)
	}
	return nil
}

// --------------------------------------------------
// Mapping
// --------------------------------------------------

func (c *GoogleClient) toEvent(in domain.EventInput) *gcal.Event {
	ev := &gcal.Event{
		Summary:     in.Summary,
		Description: in.Description,
		Start: &gcal.EventDateTime{
			DateTime: in.Start.Format(time.RFC3339),
			TimeZone: c.cfg.Timezone,
		},
		End: &gcal.EventDateTime{
			DateTime: in.End.Format(time.RFC3339),
			TimeZone: c.cfg.Timezone,
		},
	}

	if in.AttendeeEmail != "" {
		ev.Attendees = []*gcal.EventAttendee{{Email: in.AttendeeEmail}}
	}

	return ev
}

func (c *GoogleClient) toRecord(ev *gcal.Event) *domain.EventRecord {
	rec := &domain.EventRecord{
		ID:          ev.Id,
		Summary:     ev.Summary,
		Description: ev.Description,
		Status:      ev.Status,
		MeetLink:    ev.HangoutLink,
	}

	if ev.Start != nil && ev.Start.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, ev.Start.DateTime); err == nil {
			rec.Start = t
		}
	}
	if ev.End != nil && ev.End.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, ev.End.DateTime); err == nil {
			rec.End = t
		}
	}

	if rec.MeetLink == "" && ev.ConferenceData != nil {
		for _, ep := range ev.ConferenceData.EntryPoints {
			if ep.EntryPointType == "video" {
				rec.MeetLink = ep.Uri
				break
			}
		}
	}

	if len(ev.Attendees) > 0 {
		rec.Attendee = ev.Attendees[0].Email
	}

	return rec
}
