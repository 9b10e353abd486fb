package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"dothis/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestNewClientFromCredentials(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`
	dir := t.TempDir()

	t.Run("Broken config", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), "")
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Installed app with token", func(t *testing.T) {
		tokenPath := filepath.Join(dir, "token.json")
		os.WriteFile(tokenPath, []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0o600)

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath)
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Installed app with bad token", func(t *testing.T) {
		tokenPath := filepath.Join(dir, "bad-token.json")
		os.WriteFile(tokenPath, []byte(`{"broken": true`), 0o600)

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath)
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("Installed app without token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), filepath.Join(dir, "missing.json"))
		if err == nil {
			t.Fatalf("expected missing token error")
		}
	})

	t.Run("From file", func(t *testing.T) {
		path := filepath.Join(dir, "creds.json")
		os.WriteFile(path, []byte(`{"broken":true}`), 0o600)

		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), path, ""); err == nil {
			t.Errorf("expected failure loading broken file")
		}
		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), filepath.Join(dir, "nope.json"), ""); err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestCreateEvent(t *testing.T) {
	t.Run("Timed event", func(t *testing.T) {
		var body map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/calendar/v3/calendars/primary/events" || r.Method != http.MethodPost {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			json.NewDecoder(r.Body).Decode(&body)
			w.Write([]byte(`{"id": "event-123", "htmlLink": "https://calendar.google.com/event-uri"}`))
		})

		start := time.Date(2024, 5, 2, 15, 0, 0, 0, time.UTC)
		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:   "Call mom",
			StartTime: start,
			EndTime:   start.Add(time.Hour),
			Timezone:  "UTC",
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if event.ID != "event-123" || event.HtmlLink != "https://calendar.google.com/event-uri" {
			t.Errorf("unexpected event: %+v", event)
		}
		if event.Recurring {
			t.Errorf("event should not be recurring")
		}

		startBody, _ := body["start"].(map[string]any)
		if startBody["dateTime"] != "2024-05-02T15:00:00Z" {
			t.Errorf("start = %v", body["start"])
		}
	})

	t.Run("All-day recurring event", func(t *testing.T) {
		var body map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/calendar/v3/calendars/team/events" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			json.NewDecoder(r.Body).Decode(&body)
			w.Write([]byte(`{"id": "event-456"}`))
		})

		day := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			CalendarID: "team",
			Summary:    "Standup",
			StartTime:  day,
			EndTime:    day.AddDate(0, 0, 1),
			AllDay:     true,
			Recurrence: []string{"RRULE:FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR"},
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if !event.Recurring {
			t.Errorf("event should be recurring")
		}

		startBody, _ := body["start"].(map[string]any)
		if startBody["date"] != "2024-05-06" {
			t.Errorf("start = %v", body["start"])
		}
		rules, _ := body["recurrence"].([]any)
		if len(rules) != 1 || rules[0] != "RRULE:FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR" {
			t.Errorf("recurrence = %v", body["recurrence"])
		}
	})

	t.Run("API error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{})
		if err == nil {
			t.Fatalf("expected create event error")
		}
	})
}

func TestDeleteEvent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		switch r.URL.Path {
		case "/calendar/v3/calendars/primary/events/ok":
			w.WriteHeader(http.StatusNoContent)
		case "/calendar/v3/calendars/primary/events/gone":
			w.WriteHeader(http.StatusGone)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})

	if err := client.DeleteEvent(context.Background(), "", "ok"); err != nil {
		t.Errorf("DeleteEvent(ok) error = %v", err)
	}
	if err := client.DeleteEvent(context.Background(), "primary", "gone"); err != nil {
		t.Errorf("DeleteEvent(gone) error = %v", err)
	}
	if err := client.DeleteEvent(context.Background(), "primary", "boom"); err == nil {
		t.Errorf("DeleteEvent(boom) expected error")
	}
}
