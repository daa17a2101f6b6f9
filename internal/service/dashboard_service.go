package service

import (
	"context"
	"strings"

	"ai-studybuddy-be/internal/constant"
	"ai-studybuddy-be/internal/dto"
	"ai-studybuddy-be/internal/pkg/logger"
	"ai-studybuddy-be/internal/repository/specification"
	"ai-studybuddy-be/internal/repository/unitofwork"
	"ai-studybuddy-be/pkg/chat/subject"

	"github.com/google/uuid"
)

type IDashboardService interface {
	GetStats(ctx context.Context, userId uuid.UUID) (*dto.DashboardStatsResponse, error)
	GetSyllabusProgress(ctx context.Context, userId uuid.UUID, subjectCode string) (*dto.SyllabusProgressResponse, error)
}

type dashboardService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewDashboardService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) IDashboardService {
	return &dashboardService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (s *dashboardService) GetStats(ctx context.Context, userId uuid.UUID) (*dto.DashboardStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	totalSessions, err := uow.ChatSessionRepository().Count(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	recentSessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 5, Offset: 0},
	)
	if err != nil {
		return nil, err
	}

	lastSubject := "N/A"
	if len(recentSessions) > 0 {
		lastMessage, err := uow.ChatMessageRepository().FindOne(ctx,
			specification.ByChatSessionID{ChatSessionID: recentSessions[0].Id},
			specification.BySender{Sender: constant.ChatSenderUser},
			specification.OrderBy{Field: "created_at", Desc: true},
		)
		if err == nil && lastMessage != nil {
			lastSubject = lastMessage.Text
			if len(lastSubject) > 30 {
				lastSubject = lastSubject[:30]
			}
		}
	}

	activity := make([]dto.RecentActivityItem, 0, len(recentSessions))
	for _, sess := range recentSessions {
		activity = append(activity, dto.RecentActivityItem{
			SessionTitle: sess.Title,
			Timestamp:    sess.CreatedAt,
		})
	}

	return &dto.DashboardStatsResponse{
		TotalSessions:  totalSessions,
		LastSubject:    lastSubject,
		StudyHours:     float64(totalSessions) * 0.5,
		AvgQuizScore:   85.0,
		RecentActivity: activity,
	}, nil
}

func (s *dashboardService) GetSyllabusProgress(ctx context.Context, userId uuid.UUID, subjectCode string) (*dto.SyllabusProgressResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(sessions))
	for _, sess := range sessions {
		ids = append(ids, sess.Id)
	}

	var corpus string
	if len(ids) > 0 {
		messages, err := uow.ChatMessageRepository().FindAll(ctx,
			specification.ByChatSessionIDs{ChatSessionIDs: ids},
			specification.OrderBy{Field: "created_at", Desc: true},
			specification.Pagination{Limit: constant.CrossSessionHistory, Offset: 0},
		)
		if err != nil {
			return nil, err
		}

		var b strings.Builder
		for _, m := range messages {
			b.WriteString(strings.ToLower(m.Text))
			b.WriteString(" ")
		}
		corpus = b.String()

		// Infer the subject from the latest user message when not given.
		if subjectCode == "" {
			for _, m := range messages {
				if m.Sender != constant.ChatSenderUser {
					continue
				}
				inferred := subject.Extract(m.Text, "")
				if inferred.SubjectCode != subject.UnknownSubject {
					subjectCode = inferred.SubjectCode
					break
				}
			}
		}
	}

	subjectCode = strings.ToLower(strings.TrimSpace(subjectCode))
	topics := constant.SubjectTopics[subjectCode]
	covered := make([]string, 0, len(topics))
	for _, topic := range topics {
		if strings.Contains(corpus, strings.ToLower(topic)) {
			covered = append(covered, topic)
		}
	}

	pct := 0.0
	if len(topics) > 0 {
		pct = float64(len(covered)) / float64(len(topics)) * 100
	}

	return &dto.SyllabusProgressResponse{
		SubjectCode:   subjectCode,
		SubjectName:   constant.SubjectTitle(subjectCode),
		Topics:        topics,
		CoveredTopics: covered,
		CompletionPct: pct,
	}, nil
}
