package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kushal272003/tourbooking/internal/config"
	router "github.com/kushal272003/tourbooking/internal/http"
	"github.com/kushal272003/tourbooking/internal/http/handlers"
	"github.com/kushal272003/tourbooking/internal/session"
	"github.com/kushal272003/tourbooking/internal/upstream"
	"github.com/kushal272003/tourbooking/internal/wizard"
)

func main() {
	env := config.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	client := upstream.New(env.UpstreamBaseURL, env.UpstreamTimeout)
	client.OnUnauthorized(func(ctx context.Context) {
		// The session cookie itself is cleared in the response path; this
		// hook just records that the upstream invalidated a token.
		log.Println("upstream rejected bearer token, session will be cleared")
	})

	sessions := session.NewManager([]byte(env.SessionSecret), client.Users)
	drafts := wizard.NewDraftStore(env.DraftTTL)

	deps := &handlers.Deps{
		Env:      env,
		Upstream: client,
		Sessions: sessions,
		Drafts:   drafts,
	}

	r := router.NewRouter(env, deps)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Storefront listening on http://localhost%s (upstream %s)", env.AppAddr, env.UpstreamBaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}
