// Package webhookd provides top-level metadata for the webhook receiver API.
//
// @title Webhookd API
// @version 0.1.0
// @description Minimal GitHub webhook receiver: dispatches deliveries by event name and logs push payloads.
// @BasePath /
package webhookd
