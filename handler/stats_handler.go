package handler

import (
	"net/http"
	"time"

	"flowdeck/model"
	"flowdeck/repository"
	"flowdeck/utils"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	notesRepo      *repository.NotesRepo
	pomodoroRepo   *repository.PomodoroRepo
	kaizenRepo     *repository.KaizenRepo
	eisenhowerRepo *repository.EisenhowerRepo
	startedAt      time.Time
}

func NewStatsHandler(
	notesRepo *repository.NotesRepo,
	pomodoroRepo *repository.PomodoroRepo,
	kaizenRepo *repository.KaizenRepo,
	eisenhowerRepo *repository.EisenhowerRepo,
) *StatsHandler {
	return &StatsHandler{
		notesRepo:      notesRepo,
		pomodoroRepo:   pomodoroRepo,
		kaizenRepo:     kaizenRepo,
		eisenhowerRepo: eisenhowerRepo,
		startedAt:      time.Now(),
	}
}

// Health reports liveness. The store cannot fail, so this is always OK
// while the process is up.
func (h *StatsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(h.startedAt).String(),
	})
}

// GetStats summarizes store contents and host resource usage.
func (h *StatsHandler) GetStats(c *gin.Context) {
	var stats model.AppStats

	stats.NotesStats.Total, stats.NotesStats.Favorites = h.notesRepo.Count()
	stats.PomodoroStats.Total, stats.PomodoroStats.WorkSessions, stats.PomodoroStats.TotalMinutes = h.pomodoroRepo.Count()
	stats.KaizenStats.Total, stats.KaizenStats.Completed = h.kaizenRepo.Count()
	stats.EisenhowerStats.Total, stats.EisenhowerStats.Completed = h.eisenhowerRepo.Count()

	stats.SystemStats.CPUPercent = utils.GetCPUUsage()
	stats.SystemStats.MemoryPercent = utils.GetMemoryUsage()
	stats.SystemStats.UptimeSeconds = int64(time.Since(h.startedAt).Seconds())

	c.JSON(http.StatusOK, stats)
}
