package webhooks

import (
	"bytes"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
)

// newTestApp wires the dispatcher into a bare fiber app. The pool stays nil
// since dispatch never touches it; out captures the payload rendering.
func newTestApp(out io.Writer) *fiber.App {
	app := fiber.New(fiber.Config{
		StreamRequestBody: true,
	})

	h := NewHandler(nil)
	if out != nil {
		h.Out = out
	}
	Routes(app, h)

	return app
}

// runRequest fires a request against the app and returns status and body.
func runRequest(t *testing.T, app *fiber.App, req *http.Request) (int, []byte) {
	t.Helper()

	res, err := app.Test(req, fiber.TestConfig{Timeout: 30 * time.Second})
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res.StatusCode, body
}

func newEventRequest(t *testing.T, event string, body []byte) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")
	if event != "" {
		req.Header.Set(HeaderEvent, event)
	}

	return req
}

func TestPingEventAcknowledgedWithEmptyBody(t *testing.T) {
	var out bytes.Buffer
	app := newTestApp(&out)

	status, body := runRequest(t, app, newEventRequest(t, "ping", []byte(`{"zen":"Keep it logically awesome."}`)))

	require.Equal(t, http.StatusOK, status)
	require.Empty(t, body)
	require.Zero(t, out.Len(), "ping must not log a payload")
}

func TestPingEventIsIdempotent(t *testing.T) {
	app := newTestApp(nil)

	firstStatus, firstBody := runRequest(t, app, newEventRequest(t, "ping", nil))
	secondStatus, secondBody := runRequest(t, app, newEventRequest(t, "ping", nil))

	require.Equal(t, firstStatus, secondStatus)
	require.Equal(t, firstBody, secondBody)
}

func TestUnknownEventAnswersNotImplemented(t *testing.T) {
	app := newTestApp(nil)

	status, body := runRequest(t, app, newEventRequest(t, "issues", nil))

	require.Equal(t, http.StatusNotImplemented, status)
	require.JSONEq(t, `{"error":"not supported","event":"issues"}`, string(body))
}

func TestMissingEventHeaderAnswersNotImplemented(t *testing.T) {
	app := newTestApp(nil)

	status, body := runRequest(t, app, newEventRequest(t, "", nil))

	require.Equal(t, http.StatusNotImplemented, status)
	require.JSONEq(t, `{"error":"not supported","event":""}`, string(body))
}

func TestParseEvent(t *testing.T) {
	require.Equal(t, Event{Kind: EventPing, Name: "ping"}, ParseEvent("ping"))
	require.Equal(t, Event{Kind: EventPush, Name: "push"}, ParseEvent("push"))
	require.Equal(t, Event{Kind: EventUnknown, Name: "issues"}, ParseEvent("issues"))
	require.Equal(t, Event{Kind: EventUnknown, Name: ""}, ParseEvent(""))
}

func TestHeadersFromRequest(t *testing.T) {
	app := fiber.New()

	var captured WebhookHeaders
	app.All("/*", func(c fiber.Ctx) error {
		captured = HeadersFromRequest(c)
		return c.SendStatus(http.StatusOK)
	})

	req, err := http.NewRequest(http.MethodPost, "/", nil)
	require.NoError(t, err)
	req.Header.Set(HeaderHookID, "12345")
	req.Header.Set(HeaderEvent, "push")
	req.Header.Set(HeaderDelivery, "delivery-123")
	req.Header.Set(HeaderSignature256, "sha256=deadbeef")
	req.Header.Set(HeaderUserAgent, "GitHub-Hookshot/abc123")
	req.Header.Set(HeaderTargetType, "repository")
	req.Header.Set(HeaderTargetID, "67890")

	res, err := app.Test(req)
	require.NoError(t, err)
	res.Body.Close()

	require.Equal(t, "12345", captured.HookID)
	require.Equal(t, "push", captured.Event)
	require.Equal(t, "delivery-123", captured.Delivery)
	require.Nil(t, captured.Signature)
	require.NotNil(t, captured.Signature256)
	require.Equal(t, "sha256=deadbeef", *captured.Signature256)
	require.Equal(t, "GitHub-Hookshot/abc123", captured.UserAgent)
	require.Equal(t, "repository", captured.InstallationTargetType)
	require.Equal(t, "67890", captured.InstallationTargetID)
}
