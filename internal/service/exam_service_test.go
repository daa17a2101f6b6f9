package service

import (
	"context"
	"testing"

	"ai-studybuddy-be/internal/dto"

	"github.com/stretchr/testify/assert"
)

func TestGenerateExamRequiresAtLeastOneQuestion(t *testing.T) {
	svc := NewExamService(&fakeModel{}, nopLogger{}, nopLogger{})

	reqs := []*dto.GenerateExamRequest{
		{Subject: "Java Programming"},
		{Subject: "Java Programming", McqCount: -5, SubjectiveCount: -1},
	}
	for _, req := range reqs {
		_, err := svc.GenerateExam(context.Background(), req)
		assert.ErrorIs(t, err, ErrNoQuestions)
	}
}
