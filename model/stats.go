package model

// AppStats summarizes the contents of the store plus host resource usage.
type AppStats struct {
	NotesStats struct {
		Total     int `json:"total"`
		Favorites int `json:"favorites"`
	} `json:"notes_stats"`
	PomodoroStats struct {
		Total        int `json:"total"`
		WorkSessions int `json:"work_sessions"`
		TotalMinutes int `json:"total_minutes"`
	} `json:"pomodoro_stats"`
	KaizenStats struct {
		Total     int `json:"total"`
		Completed int `json:"completed"`
	} `json:"kaizen_stats"`
	EisenhowerStats struct {
		Total     int `json:"total"`
		Completed int `json:"completed"`
	} `json:"eisenhower_stats"`
	SystemStats struct {
		CPUPercent    float64 `json:"cpu_percent"`
		MemoryPercent float64 `json:"memory_percent"`
		UptimeSeconds int64   `json:"uptime_seconds"`
	} `json:"system_stats"`
}
