package service

import (
	"context"
	"errors"
	"strings"

	"ai-studybuddy-be/internal/dto"
	"ai-studybuddy-be/internal/pkg/logger"
	"ai-studybuddy-be/pkg/chat/exam"
	"ai-studybuddy-be/pkg/chat/reply"
	"ai-studybuddy-be/pkg/llm"
)

var ErrNoQuestions = errors.New("At least one question is required")

type IExamService interface {
	GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) ([]map[string]interface{}, error)
	GenerateExam(ctx context.Context, req *dto.GenerateExamRequest) ([]exam.ExamItem, error)
	GradeSubjective(ctx context.Context, req *dto.GradeSubjectiveRequest) (*exam.Grade, error)
}

type examService struct {
	provider  llm.LLMProvider
	logger    logger.ILogger
	llmLogger logger.ILogger
}

func NewExamService(provider llm.LLMProvider, appLogger logger.ILogger, llmLogger logger.ILogger) IExamService {
	return &examService{
		provider:  provider,
		logger:    appLogger,
		llmLogger: llmLogger,
	}
}

func (s *examService) GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) ([]map[string]interface{}, error) {
	count := exam.ClampCount(req.Count, 1, 50)
	label := exam.SubjectLabel(req.Subject, req.Semester)

	raw, err := s.provider.Generate(ctx,
		exam.QuizPrompt(label, req.Topic, count),
		llm.WithTemperature(0.8), llm.WithMaxTokens(3000),
	)
	if err != nil {
		return nil, err
	}

	items, err := exam.ParseQuiz(raw, count)
	if err != nil {
		s.llmLogger.Warn("exam", "quiz response rejected", map[string]interface{}{"error": err.Error()})
		return nil, errors.New("Could not generate quiz, please try again")
	}
	return items, nil
}

func (s *examService) GenerateExam(ctx context.Context, req *dto.GenerateExamRequest) ([]exam.ExamItem, error) {
	mcqCount := exam.ClampCount(req.McqCount, 0, 60)
	subjectiveCount := exam.ClampCount(req.SubjectiveCount, 0, 60)
	total := mcqCount + subjectiveCount
	if total == 0 {
		return nil, ErrNoQuestions
	}

	raw, err := s.provider.Generate(ctx,
		exam.ExamPrompt(exam.SubjectLabel(req.Subject, req.Semester), mcqCount, subjectiveCount),
		llm.WithTemperature(0.8), llm.WithMaxTokens(4000),
	)
	if err != nil {
		return nil, err
	}

	parsed, err := reply.SafeParse(raw)
	if err != nil {
		return nil, errors.New("Could not generate exam, please try again")
	}

	items, err := exam.CoerceExamItems(parsed, total)
	if err != nil {
		s.llmLogger.Warn("exam", "exam response rejected", map[string]interface{}{"error": err.Error()})
		return nil, errors.New("Could not generate exam, please try again")
	}
	return items, nil
}

func (s *examService) GradeSubjective(ctx context.Context, req *dto.GradeSubjectiveRequest) (*exam.Grade, error) {
	maxMarks := exam.ClampCount(req.MaxMarks, 1, 20)

	if strings.TrimSpace(req.Answer) == "" {
		grade := exam.ZeroGrade(maxMarks)
		return &grade, nil
	}

	raw, err := s.provider.Generate(ctx,
		exam.GradingPrompt(exam.SubjectLabel(req.Subject, req.Semester), req.Question, req.Answer, maxMarks),
		llm.WithTemperature(0.4), llm.WithMaxTokens(1500),
	)
	if err != nil {
		return nil, err
	}

	parsed, err := reply.SafeParse(raw)
	if err != nil {
		return nil, errors.New("Could not grade answer, please try again")
	}

	grade, err := exam.NormalizeGrade(parsed, maxMarks)
	if err != nil {
		return nil, errors.New("Could not grade answer, please try again")
	}

	// Second pass fills the study aids the grader skipped.
	if grade.NeedsEnrichment() {
		enriched, err := s.provider.Generate(ctx,
			exam.EnrichmentPrompt(req.Question),
			llm.WithTemperature(0.3), llm.WithMaxTokens(1000),
		)
		if err == nil {
			if parsedEnrich, perr := reply.SafeParse(enriched); perr == nil {
				grade = grade.MergeEnrichment(parsedEnrich)
			}
		}
	}

	return &grade, nil
}
