package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"flowdeck/config"
	"flowdeck/handler"
	"flowdeck/logger"
	"flowdeck/middleware"
	"flowdeck/repository"
	"flowdeck/usecase"
	"flowdeck/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// A missing .env is fine; the config layer has defaults for everything.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Log.WithError(err).Warn("Could not load .env file")
	}

	utils.InitValidator()
}

func setupRouter(cfg *config.Config) *gin.Engine {
	// The store lives for the process lifetime; every handler shares the
	// same repositories through explicit injection.
	notesRepo := repository.NewNotesRepo()
	pomodoroRepo := repository.NewPomodoroRepo()
	kaizenRepo := repository.NewKaizenRepo()
	eisenhowerRepo := repository.NewEisenhowerRepo()

	noteHandler := handler.NewNoteHandler(usecase.NewNotesService(notesRepo))
	pomodoroHandler := handler.NewPomodoroHandler(usecase.NewPomodoroService(pomodoroRepo))
	kaizenHandler := handler.NewKaizenHandler(usecase.NewKaizenService(kaizenRepo))
	eisenhowerHandler := handler.NewEisenhowerHandler(usecase.NewEisenhowerService(eisenhowerRepo))
	statsHandler := handler.NewStatsHandler(notesRepo, pomodoroRepo, kaizenRepo, eisenhowerRepo)

	router := gin.New()
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowOrigin))
	router.Use(middleware.MetricsMiddleware())

	router.GET("/health", statsHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/stats", statsHandler.GetStats)

		notes := api.Group("/notes")
		{
			notes.GET("", noteHandler.ListNotes)
			notes.POST("", noteHandler.CreateNote)
			notes.GET("/search/:query", noteHandler.SearchNotes)
			notes.GET("/tag/:tag", noteHandler.NotesByTag)
			notes.GET("/date/:date", noteHandler.NotesByDate)
			notes.GET("/:id", noteHandler.GetNote)
			notes.PATCH("/:id", noteHandler.UpdateNote)
			notes.DELETE("/:id", noteHandler.DeleteNote)
		}

		api.GET("/pomodoro-sessions", pomodoroHandler.ListSessions)
		api.POST("/pomodoro-sessions", pomodoroHandler.CreateSession)

		goals := api.Group("/kaizen-goals")
		{
			goals.GET("", kaizenHandler.ListGoals)
			goals.POST("", kaizenHandler.CreateGoal)
			goals.GET("/range", kaizenHandler.GoalsByDateRange)
			goals.GET("/:id", kaizenHandler.GetGoal)
			goals.PATCH("/:id", kaizenHandler.UpdateGoal)
			goals.DELETE("/:id", kaizenHandler.DeleteGoal)
		}

		tasks := api.Group("/eisenhower-tasks")
		{
			tasks.GET("", eisenhowerHandler.ListTasks)
			tasks.POST("", eisenhowerHandler.CreateTask)
			tasks.GET("/:id", eisenhowerHandler.GetTask)
			tasks.PATCH("/:id", eisenhowerHandler.UpdateTask)
			tasks.DELETE("/:id", eisenhowerHandler.DeleteTask)
		}
	}

	router.NoRoute(spaFallback(cfg.Static.Dir))

	return router
}

// spaFallback serves the built frontend when configured: real files are
// served directly, anything else gets index.html so client-side routing
// works. API paths always get a JSON 404.
func spaFallback(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if staticDir == "" || strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
			return
		}

		requested := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}
		c.File(filepath.Join(staticDir, "index.html"))
	}
}

func main() {
	cfg := config.Load()
	logger.Init(cfg.Log.Level)

	router := setupRouter(cfg)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.WithField("port", cfg.Server.Port).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.WithError(err).Fatal("Failed to start server")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	logger.WithField("signal", sig.String()).Info("Shutting down")

	// The store is volatile; there is nothing to flush, only in-flight
	// requests to drain.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Log.WithError(err).Error("Forced shutdown")
	}
}
