package webhooks

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"webhookd/internal/errmsg"
	"webhookd/internal/models"
	"webhookd/internal/utils"

	"github.com/gofiber/fiber/v3"
	"github.com/valyala/fasthttp"
)

// maxPushBody bounds push delivery bodies at 64 KiB. Pushes carrying more
// commit data than that are fetched through the Commits API instead.
const maxPushBody = 64 * 1024

var errBodyTooLarge = errors.New("push body exceeds size limit")

// handlePush guards the body size, strictly parses the push payload and
// pretty-prints it. Read and parse failures collapse to an opaque 500; the
// underlying cause only goes to the error log.
func (h *Handler) handlePush(c fiber.Ctx) error {
	reqCtx, err := requestCtx(c)
	if err != nil {
		log.Printf("push request context unavailable: %v", err)
		return utils.StatusError(c, errmsg.InternalError)
	}

	// Advertised length first: an oversized delivery is rejected before a
	// single body byte is read.
	if length := reqCtx.Request.Header.ContentLength(); length > maxPushBody {
		return rejectTooLarge(c, reqCtx)
	}

	body, err := readBody(reqCtx)
	if err != nil {
		if errors.Is(err, errBodyTooLarge) {
			return rejectTooLarge(c, reqCtx)
		}
		log.Printf("push body read failed: %v", err)
		return utils.StatusError(c, errmsg.InternalError)
	}

	event, err := models.DecodePushEvent(body)
	if err != nil {
		log.Printf("push payload rejected: %v", err)
		return utils.StatusError(c, errmsg.InternalError)
	}

	rendered, err := json.MarshalIndent(event, "", "  ")
	if err != nil {
		log.Printf("push payload render failed: %v", err)
		return utils.StatusError(c, errmsg.InternalError)
	}

	fmt.Fprintln(h.Out, string(rendered))

	return c.Status(fiber.StatusOK).Send(nil)
}

// rejectTooLarge answers 413 and closes the connection: the unread body
// bytes would otherwise be parsed as the next request on a keep-alive
// connection.
func rejectTooLarge(c fiber.Ctx, reqCtx *fasthttp.RequestCtx) error {
	reqCtx.Response.SetConnectionClose()
	return utils.StatusError(c, errmsg.PayloadTooLarge)
}

// requestCtx exposes the underlying fasthttp context for body streaming.
func requestCtx(c fiber.Ctx) (*fasthttp.RequestCtx, error) {
	type requestCtxProvider interface {
		RequestCtx() *fasthttp.RequestCtx
	}

	provider, ok := any(c).(requestCtxProvider)
	if !ok {
		return nil, errors.New("fiber context does not expose the request context")
	}

	return provider.RequestCtx(), nil
}

// readBody drains the streamed request body with a hard cap, so a client
// that omits or understates Content-Length still cannot feed an unbounded
// payload.
func readBody(reqCtx *fasthttp.RequestCtx) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(reqCtx.Request.BodyStream(), maxPushBody+1))
	if err != nil {
		return nil, err
	}

	if len(body) > maxPushBody {
		return nil, errBodyTooLarge
	}

	return body, nil
}
