package dto

import "time"

type DashboardStatsResponse struct {
	TotalSessions  int64                `json:"total_sessions"`
	LastSubject    string               `json:"last_subject"`
	StudyHours     float64              `json:"study_hours"`
	AvgQuizScore   float64              `json:"avg_quiz_score"`
	RecentActivity []RecentActivityItem `json:"recent_activity"`
}

type RecentActivityItem struct {
	SessionTitle string    `json:"session_title"`
	Timestamp    time.Time `json:"timestamp"`
}

type SyllabusProgressResponse struct {
	SubjectCode   string   `json:"subject_code"`
	SubjectName   string   `json:"subject_name"`
	Topics        []string `json:"topics"`
	CoveredTopics []string `json:"covered_topics"`
	CompletionPct float64  `json:"completion_pct"`
}
