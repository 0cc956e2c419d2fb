package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"webhookd/internal"
	"webhookd/internal/env"
)

func main() {
	portFlag := flag.String("port", "", "port to listen on (overrides PORT)")
	envRoot := flag.String("env-root", "", "directory containing an optional .env file")

	flag.Parse()

	app, err := internal.SetupApp(*envRoot)
	if err != nil {
		log.Fatalf("failed to set up app: %v", err)
	}

	port := env.PORT
	if trimmed := strings.TrimSpace(*portFlag); trimmed != "" {
		parsed, err := strconv.Atoi(trimmed)
		if err != nil {
			log.Fatalf("invalid --port %q: %v", trimmed, err)
		}
		port = parsed
	}

	// Loopback only; deliveries are expected through a local reverse proxy.
	addr := fmt.Sprintf("127.0.0.1:%d", port)
	fmt.Println("listening on: http://" + addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("error listening on %s: %v", addr, err)
	}
}
