package webhooks

import "github.com/gofiber/fiber/v3"

// Header names exactly as GitHub sends them on webhook deliveries.
const (
	HeaderHookID       = "X-GitHub-Hook-ID"
	HeaderEvent        = "X-GitHub-Event"
	HeaderDelivery     = "X-GitHub-Delivery"
	HeaderSignature    = "X-Hub-Signature"
	HeaderSignature256 = "X-Hub-Signature-256"
	HeaderUserAgent    = "User-Agent"
	HeaderTargetType   = "X-GitHub-Hook-Installation-Target-Type"
	HeaderTargetID     = "X-GitHub-Hook-Installation-Target-ID"
)

// WebhookHeaders is the fixed set of GitHub delivery headers, copied
// verbatim per request. Absent headers collapse to the empty string; the
// two HMAC signatures stay optional. Nothing here is validated.
type WebhookHeaders struct {
	HookID                 string
	Event                  string
	Delivery               string
	Signature              *string
	Signature256           *string
	UserAgent              string
	InstallationTargetType string
	InstallationTargetID   string
}

// HeadersFromRequest builds a fresh header record for one delivery.
func HeadersFromRequest(c fiber.Ctx) WebhookHeaders {
	return WebhookHeaders{
		HookID:                 c.Get(HeaderHookID),
		Event:                  c.Get(HeaderEvent),
		Delivery:               c.Get(HeaderDelivery),
		Signature:              optionalHeader(c, HeaderSignature),
		Signature256:           optionalHeader(c, HeaderSignature256),
		UserAgent:              c.Get(HeaderUserAgent),
		InstallationTargetType: c.Get(HeaderTargetType),
		InstallationTargetID:   c.Get(HeaderTargetID),
	}
}

func optionalHeader(c fiber.Ctx, name string) *string {
	value := c.Get(name)
	if value == "" {
		return nil
	}

	return &value
}
