package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/config"
	http_controllers "github.com/mrlokans/library/internal/http"
)

func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run starts the HTTP API and blocks until SIGINT or SIGTERM.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting Library v%s (backend: %s)", version, cfg.Catalog.Backend)

	store, db, err := OpenCatalog(cfg)
	if err != nil {
		log.Fatalf("Failed to open catalog: %v", err)
	}

	routerCfg := http_controllers.RouterConfig{
		Catalog:  store,
		ReadOnly: cfg.HTTP.ReadOnly,
		Version:  version,
	}
	if db != nil {
		defer db.Close()
		routerCfg.Database = db
	}
	if cfg.HTTP.ReadOnly {
		log.Printf("Read-only mode enabled - write operations will be blocked")
	}

	Serve(http_controllers.NewRouter(routerCfg), cfg)
}
