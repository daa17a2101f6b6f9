package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"ai-studybuddy-be/internal/entity"
	"ai-studybuddy-be/internal/repository/specification"
	"ai-studybuddy-be/internal/repository/unitofwork"
	"ai-studybuddy-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.ChatSessionRepository())
	assert.NotNil(t, uow.ChatMessageRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Transactional Session With Messages", func(t *testing.T) {
		ctx := context.Background()

		userId := uuid.New()
		user := &entity.User{
			Id:           userId,
			Username:     "integration-" + uuid.New().String()[:8],
			PasswordHash: "x",
		}
		err := uow.UserRepository().Create(ctx, user)
		assert.NoError(t, err)

		// Transaction Test
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		sessionId := uuid.New()
		session := &entity.ChatSession{
			Id:     sessionId,
			UserId: userId,
			Title:  "Integration session",
		}
		err = uow.ChatSessionRepository().Create(ctx, session)
		assert.NoError(t, err)

		msg := &entity.ChatMessage{
			Id:            uuid.New(),
			ChatSessionId: sessionId,
			Sender:        "user",
			Text:          "hello from the integration test",
		}
		err = uow.ChatMessageRepository().Create(ctx, msg)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		found, err := uow.ChatMessageRepository().FindAll(ctx,
			specification.ByChatSessionID{ChatSessionID: sessionId},
		)
		assert.NoError(t, err)
		assert.Len(t, found, 1)

		// Cleanup
		err = uow.ChatMessageRepository().DeleteByChatSessionIdUnscoped(ctx, sessionId)
		assert.NoError(t, err)
		err = uow.ChatSessionRepository().DeleteUnscoped(ctx, sessionId)
		assert.NoError(t, err)

		t.Log("Successfully created Session with Message in Transaction")
	})
}
