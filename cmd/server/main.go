/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the petrol pump management server. Handles
  configuration, dependency construction, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Construct the Station aggregate (inventory, pumps, prices, ledger)
  3. Create API handler with dependencies
  4. Configure HTTP router
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port    HTTP server port (default: 8080)

STATE MODEL:
  All state is in-process and lives for one run: the ledger starts empty
  and is discarded at shutdown. There is no database.

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Exit

SEE ALSO:
  - api/server.go: Router configuration
  - pos/station.go: Station construction
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sufi2801/petrol-pump-management-system/api"
	"github.com/sufi2801/petrol-pump-management-system/pos"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	flag.Parse()

	// Construct the station: inventory, pumps, prices, and an empty ledger.
	st := pos.NewStation()

	// Initialize handler and router
	handler := api.NewHandler(st)
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Petrol pump server starting on http://localhost:%d", *port)
		log.Printf("API available at http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
