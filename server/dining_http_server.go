package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type DiningHttpServer struct {
	router    *Router
	muxRouter *mux.Router
}

func NewDiningHttpServer(router *Router, muxRouter *mux.Router) *DiningHttpServer {
	return &DiningHttpServer{
		router:    router,
		muxRouter: muxRouter,
	}
}

// Start registers routes, serves until SIGINT/SIGTERM, then shuts down
// gracefully.
func (s *DiningHttpServer) Start() {
	s.router.RegisterRoutes()

	handler := handlers.LoggingHandler(os.Stdout, requestIDMiddleware(s.muxRouter))

	srv := &http.Server{
		Addr:    ":8080",
		Handler: handler,
	}

	// Channel to listen for interrupt or termination signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start the server in a goroutine so it doesn't block
	go func() {
		fmt.Println("Starting server on :8080")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	<-stop
	fmt.Println("\nShutting down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	fmt.Println("Server exiting")
}
