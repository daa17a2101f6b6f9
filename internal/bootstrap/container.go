package bootstrap

import (
	"log"

	"ai-studybuddy-be/internal/config"
	"ai-studybuddy-be/internal/controller"
	"ai-studybuddy-be/internal/pkg/logger"
	"ai-studybuddy-be/internal/repository/memory"
	"ai-studybuddy-be/internal/repository/unitofwork"
	"ai-studybuddy-be/internal/service"
	"ai-studybuddy-be/pkg/llm/factory"

	"gorm.io/gorm"
)

type Container struct {
	AuthController      controller.IAuthController
	UserController      controller.IUserController
	ChatController      controller.IChatController
	ExamController      controller.IExamController
	DashboardController controller.IDashboardController
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// LLM calls get their own log file so latency digging doesn't
	// mean grepping through request noise.
	llmLogger := logger.NewIsolatedLogger("logs/llm.log")

	// 2. LLM Provider (with model fallback chain)
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.Provider,
		cfg.Keys.Groq,
		cfg.Ai.BaseURL,
		cfg.Ai.Models,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%d models)", cfg.Ai.Provider, len(cfg.Ai.Models))

	// In-memory per-session conversation state
	stateRepo := memory.NewSessionStateRepository()

	// 3. Services
	authService := service.NewAuthService(uowFactory, sysLogger)
	userService := service.NewUserService(uowFactory, sysLogger)
	chatService := service.NewChatService(uowFactory, llmProvider, stateRepo, sysLogger, llmLogger)
	examService := service.NewExamService(llmProvider, sysLogger, llmLogger)
	dashboardService := service.NewDashboardService(uowFactory, sysLogger)

	// 4. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService),
		UserController:      controller.NewUserController(userService),
		ChatController:      controller.NewChatController(chatService),
		ExamController:      controller.NewExamController(examService),
		DashboardController: controller.NewDashboardController(dashboardService),
	}
}
