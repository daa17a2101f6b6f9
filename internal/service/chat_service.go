package service

import (
	"context"
	"errors"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"

	"ai-studybuddy-be/internal/constant"
	"ai-studybuddy-be/internal/dto"
	"ai-studybuddy-be/internal/entity"
	"ai-studybuddy-be/internal/pkg/logger"
	"ai-studybuddy-be/internal/repository/memory"
	"ai-studybuddy-be/internal/repository/specification"
	"ai-studybuddy-be/internal/repository/unitofwork"
	"ai-studybuddy-be/pkg/chat/intent"
	"ai-studybuddy-be/pkg/chat/persona"
	"ai-studybuddy-be/pkg/chat/prompt"
	"ai-studybuddy-be/pkg/chat/reply"
	"ai-studybuddy-be/pkg/chat/subject"
	"ai-studybuddy-be/pkg/llm"
	"ai-studybuddy-be/pkg/store"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("Session not found")

type IChatService interface {
	SendChat(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	GetAllSessions(ctx context.Context, userId uuid.UUID) ([]*dto.SessionResponse, error)
	GetChatHistory(ctx context.Context, userId uuid.UUID, sessionId *uuid.UUID) ([]*dto.ChatHistoryResponse, error)
	RenameSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, req *dto.RenameSessionRequest) (*dto.RenameSessionResponse, error)
	DeleteSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	provider   llm.LLMProvider
	stateRepo  *memory.SessionStateRepository
	logger     logger.ILogger
	llmLogger  logger.ILogger
	now        func() time.Time
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	provider llm.LLMProvider,
	stateRepo *memory.SessionStateRepository,
	appLogger logger.ILogger,
	llmLogger logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		provider:   provider,
		stateRepo:  stateRepo,
		logger:     appLogger,
		llmLogger:  llmLogger,
		now:        time.Now,
	}
}

func (s *chatService) SendChat(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	rawMessage := strings.TrimSpace(req.Message)
	message := subject.NormalizeMessage(rawMessage)

	session, err := s.resolveSession(ctx, uow, userId, req.ChatSessionId, rawMessage)
	if err != nil {
		return nil, err
	}

	state, found := s.stateRepo.Get(session.Id.String())
	if !found {
		state = store.NewSessionState(session.Id.String(), userId.String())
	}

	history, err := s.loadHistoryWindow(ctx, uow, session.Id)
	if err != nil {
		return nil, err
	}

	lastAI, lastUser := lastMessages(history)

	if prompt.IsTopicSwitch(message, lastUser) {
		fresh := store.NewSessionState(session.Id.String(), userId.String())
		fresh.SuggestionStyleIdx = state.SuggestionStyleIdx
		state = fresh
	}

	contextMessages := make([]intent.ContextMessage, 0, len(history))
	for _, m := range history {
		contextMessages = append(contextMessages, intent.ContextMessage{Sender: m.Sender, Text: m.Text})
	}

	intentType := intent.Classify(message, contextMessages)
	style := persona.DetectStyle(message, lastUser, intentType)
	subjCtx := subject.Extract(message, req.SelectedSubject)

	s.updateTopicBuffer(state, message, lastAI, subjCtx)

	vibe := s.detectVibe(style)
	state.LearningPath = &store.LearningPath{
		Subject: subjCtx.SubjectCode,
		Topic:   state.LastTopic(),
		Intent:  intentType,
		Vibe:    vibe,
	}

	userMessage := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		Sender:        constant.ChatSenderUser,
		Text:          rawMessage,
		IntentType:    &intentType,
		CreatedAt:     s.now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, userMessage); err != nil {
		return nil, err
	}

	// Persona and guided-flow short circuits skip the model entirely.
	if payload, handled := s.shortCircuit(message, lastUser, user, style, vibe, state, subjCtx); handled {
		return s.saveAndRespond(ctx, uow, session, state, payload, constant.IntentPersonal, 0.95)
	}
	if overview, handled := s.startFromBeginning(message, subjCtx); handled {
		return s.saveAndRespond(ctx, uow, session, state, overview, intentType, 0.95)
	}

	answer, parsed, err := s.askModel(ctx, user, req, session, state, history, message, rawMessage, lastAI, lastUser, intentType, style, vibe, subjCtx)
	if err != nil {
		errText := "Kuch issue aa gaya, thodi der baad try karo. 🙏"
		aiMessage := &entity.ChatMessage{
			Id:            uuid.New(),
			ChatSessionId: session.Id,
			Sender:        constant.ChatSenderAI,
			Text:          errText,
			CreatedAt:     s.now(),
		}
		_ = uow.ChatMessageRepository().Create(ctx, aiMessage)
		return nil, err
	}

	confidence := 0.70
	if parsed {
		confidence = 0.95
	}

	res, err := s.saveAndRespond(ctx, uow, session, state, answer, intentType, confidence)
	if err != nil {
		return nil, err
	}

	s.maybeRetitle(ctx, uow, session, rawMessage)
	return res, nil
}

// resolveSession loads an owned session or creates one, evicting the
// oldest sessions when the per-user cap is hit.
func (s *chatService) resolveSession(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, sessionId *uuid.UUID, rawMessage string) (*entity.ChatSession, error) {
	if sessionId != nil {
		session, err := uow.ChatSessionRepository().FindOne(ctx,
			specification.ByID{ID: *sessionId},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if session == nil {
			return nil, ErrSessionNotFound
		}
		return session, nil
	}

	count, err := uow.ChatSessionRepository().Count(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if count >= constant.MaxSessionsPerUser {
		evict := int(count) - constant.MaxSessionsPerUser + 1
		oldest, err := uow.ChatSessionRepository().FindAll(ctx,
			specification.UserOwnedBy{UserID: userId},
			specification.OrderBy{Field: "created_at", Desc: false},
			specification.Pagination{Limit: evict, Offset: 0},
		)
		if err != nil {
			return nil, err
		}
		if len(oldest) > 0 {
			if err := uow.Begin(ctx); err != nil {
				return nil, err
			}
			for _, old := range oldest {
				if err := uow.ChatMessageRepository().DeleteByChatSessionIdUnscoped(ctx, old.Id); err != nil {
					uow.Rollback()
					return nil, err
				}
				if err := uow.ChatSessionRepository().DeleteUnscoped(ctx, old.Id); err != nil {
					uow.Rollback()
					return nil, err
				}
			}
			if err := uow.Commit(); err != nil {
				return nil, err
			}
			for _, old := range oldest {
				s.stateRepo.Delete(old.Id.String())
			}
		}
		s.logger.Info("chat", "session cap enforced", map[string]interface{}{
			"user_id": userId.String(),
			"evicted": len(oldest),
		})
	}

	title := rawMessage
	if len(title) > constant.SessionTitleMaxLen {
		title = title[:constant.SessionTitleMaxLen]
	}
	if strings.TrimSpace(title) == "" {
		title = "New chat"
	}

	session := &entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     title,
		CreatedAt: s.now(),
	}
	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// loadHistoryWindow fetches the last turns of a session, oldest first.
func (s *chatService) loadHistoryWindow(ctx context.Context, uow unitofwork.UnitOfWork, sessionId uuid.UUID) ([]*entity.ChatMessage, error) {
	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: constant.HistoryWindow, Offset: 0},
	)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func lastMessages(history []*entity.ChatMessage) (lastAI, lastUser string) {
	for i := len(history) - 1; i >= 0; i-- {
		m := history[i]
		if lastAI == "" && m.Sender == constant.ChatSenderAI {
			lastAI = m.Text
		}
		if lastUser == "" && m.Sender == constant.ChatSenderUser {
			lastUser = m.Text
		}
		if lastAI != "" && lastUser != "" {
			break
		}
	}
	return lastAI, lastUser
}

// updateTopicBuffer records topic candidates unless the message is a
// pure follow-up with no topic signal of its own.
func (s *chatService) updateTopicBuffer(state *store.SessionState, message, lastAI string, subjCtx subject.Context) {
	if prompt.IsFollowup(message, lastAI) && len(subjCtx.TopicKeywords) == 0 && subjCtx.SubjectCode == subject.UnknownSubject {
		return
	}
	if len(subjCtx.TopicKeywords) == 0 && subjCtx.SubjectCode == subject.UnknownSubject {
		snippet := message
		if len(snippet) > 60 {
			snippet = snippet[:60]
		}
		state.TouchTopic(strings.TrimSpace(snippet))
		return
	}
	for _, kw := range subjCtx.TopicKeywords {
		state.TouchTopic(kw)
	}
	if subjCtx.SubjectCode != subject.UnknownSubject {
		state.TouchTopic(subjCtx.SubjectCode)
	}
}

func (s *chatService) detectVibe(style string) string {
	hour := s.now().Hour()
	if hour >= 23 || hour < 5 {
		return store.VibeLateNight
	}
	if style == persona.StyleMotivation {
		return store.VibeSupport
	}
	return store.VibeNormal
}

var scorePattern = regexp.MustCompile(`(\d{1,3})\s*%|\bscore\s*(\d{1,3})\b`)

// shortCircuit answers persona questions without a model call.
func (s *chatService) shortCircuit(message, lastUser string, user *entity.User, style, vibe string, state *store.SessionState, subjCtx subject.Context) (reply.Payload, bool) {
	switch persona.Detect(message) {
	case persona.Saurav:
		return reply.BuildPayload(persona.SauravReply(), []string{"Tell me more", "Back to studies", "Start Unit 1"}), true

	case persona.April19:
		return reply.BuildPayload(persona.April19Reply(), []string{"Back to studies", "Tell me more", "Practice MCQ"}), true

	case persona.Jiya:
		mood := persona.MoodNormal
		if score, ok := extractScore(message); ok && score < 50 {
			mood = persona.MoodScold
		} else if strings.Contains(strings.ToLower(message), "streak") || strings.Contains(strings.ToLower(message), "days") {
			mood = persona.MoodMotivational
		} else if style == persona.StyleAcademic {
			mood = persona.MoodPoetic
		} else if vibe == store.VibeLateNight {
			mood = persona.MoodLateNight
		} else if style == persona.StyleMotivation {
			mood = persona.MoodSupport
		}

		questionType := persona.ClassifyJiyaQuestion(message)
		seed := s.now().UnixNano()
		text := persona.JiyaVariantResponse(questionType, mood, user.IsCreator, seed)
		return reply.BuildPayload(text, []string{"Tell me more", "Back to studies", "Start Unit 1"}), true
	}
	return reply.Payload{}, false
}

func extractScore(message string) (int, bool) {
	m := scorePattern.FindStringSubmatch(strings.ToLower(message))
	if m == nil {
		return 0, false
	}
	raw := m[1]
	if raw == "" {
		raw = m[2]
	}
	score, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	if score > 100 {
		score = 100
	}
	return score, true
}

// startFromBeginning serves the guided Unit 1 overview.
func (s *chatService) startFromBeginning(message string, subjCtx subject.Context) (reply.Payload, bool) {
	if !prompt.IsStartFromBeginning(message) || subjCtx.SubjectCode == subject.UnknownSubject {
		return reply.Payload{}, false
	}
	points := constant.Unit1Points(subjCtx.SubjectCode)
	overview := prompt.Unit1Overview(subjCtx.SubjectName, points)
	return reply.BuildPayload(overview, []string{"1", "2", "Practice quiz on Unit 1"}), true
}

func (s *chatService) askModel(
	ctx context.Context,
	user *entity.User,
	req *dto.SendChatRequest,
	session *entity.ChatSession,
	state *store.SessionState,
	history []*entity.ChatMessage,
	message, rawMessage, lastAI, lastUser, intentType, style, vibe string,
	subjCtx subject.Context,
) (reply.Payload, bool, error) {

	rewritten := prompt.RewriteUserMessage(message, lastAI, lastUser, state.LastTopic())

	var gender string
	if user.Gender != nil {
		gender = *user.Gender
	}
	salutation := prompt.Salutation(user.Username, gender, user.IsCreator)
	greetingPrefix := prompt.MaybeGreetingPrefix(salutation, rand.Float64())
	recentJiya := strings.Contains(strings.ToLower(lastUser), "jiya")

	aiTexts, err := s.recentAITexts(ctx, session.Id)
	if err != nil {
		aiTexts = nil
	}

	mode := req.ResponseMode
	if mode == "" {
		mode = constant.ResponseModeFast
	}

	convHistory := make([]prompt.ConvMessage, 0, len(history))
	for _, m := range history {
		convHistory = append(convHistory, prompt.ConvMessage{Sender: m.Sender, Text: m.Text})
	}

	systemPrompt := prompt.BuildSystemPrompt(prompt.Input{
		Salutation:      salutation,
		GreetingPrefix:  greetingPrefix,
		SelectedSubject: req.SelectedSubject,
		SubjectContext:  subjCtx,
		IntentType:      intentType,
		VibeHint:        vibe,
		History:         convHistory,
		StyleBlock:      persona.StyleInstruction(style, recentJiya, prompt.EasterEggAllowed(aiTexts, 15), user.IsCreator),
		IntentProtocol:  persona.IntentProtocol(intentType),
		ResponseMode:    mode,
		ActiveTool:      req.ActiveTool,
		ChatMode:        req.ChatMode,
		GreetingHint:    prompt.GreetingHint(s.now().Hour(), len(history)),
		BasicQuestion:   prompt.IsBasicQuestion(message),
	})

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: constant.ChatRoleSystem, Content: systemPrompt})
	for _, m := range history {
		role := constant.ChatRoleUser
		if m.Sender == constant.ChatSenderAI {
			role = constant.ChatRoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: m.Text})
	}
	messages = append(messages, llm.Message{Role: constant.ChatRoleUser, Content: rewritten})

	maxTokens, _, delay := prompt.ModeParams(mode)
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return reply.Payload{}, false, ctx.Err()
		}
	}

	started := s.now()
	raw, err := s.provider.Chat(ctx, messages, llm.WithTemperature(0.8), llm.WithMaxTokens(maxTokens))
	s.llmLogger.Info("llm", "chat completion", map[string]interface{}{
		"session_id":  session.Id.String(),
		"mode":        mode,
		"intent":      intentType,
		"duration_ms": time.Since(started).Milliseconds(),
		"failed":      err != nil,
	})
	if err != nil {
		return reply.Payload{}, false, err
	}

	hint := state.LastTopic()
	if hint == "" && subjCtx.SubjectCode != subject.UnknownSubject {
		hint = subjCtx.SubjectName
	}
	res := reply.Normalize(raw, reply.ContextSuggestions(hint))
	return res.Payload, !res.Fallback, nil
}

// recentAITexts loads the newest AI messages for the easter-egg window.
func (s *chatService) recentAITexts(ctx context.Context, sessionId uuid.UUID) ([]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.BySender{Sender: constant.ChatSenderAI},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 15, Offset: 0},
	)
	if err != nil {
		return nil, err
	}
	texts := make([]string, 0, len(messages))
	for i := len(messages) - 1; i >= 0; i-- {
		texts = append(texts, messages[i].Text)
	}
	return texts, nil
}

// saveAndRespond finalizes the payload, persists the AI message and
// session state, and shapes the response.
func (s *chatService) saveAndRespond(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.ChatSession, state *store.SessionState, payload reply.Payload, intentType string, confidence float64) (*dto.SendChatResponse, error) {
	final := reply.Finalize(payload, state.SuggestionStyleIdx)
	state.SuggestionStyleIdx++
	s.stateRepo.Save(state)

	aiMessage := &entity.ChatMessage{
		Id:              uuid.New(),
		ChatSessionId:   session.Id,
		Sender:          constant.ChatSenderAI,
		Text:            final.Answer,
		IntentType:      &intentType,
		ConfidenceScore: &confidence,
		CreatedAt:       s.now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, aiMessage); err != nil {
		return nil, err
	}

	return &dto.SendChatResponse{
		Reply: final.Answer,
		Response: dto.ChatReplyBody{
			Answer:          final.Answer,
			NextSuggestions: final.NextSuggestions,
		},
		ChatSessionId: session.Id,
	}, nil
}

// maybeRetitle asks the model for a short title once a session has its
// first exchange. Failures are ignored.
func (s *chatService) maybeRetitle(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.ChatSession, firstMessage string) {
	count, err := uow.ChatMessageRepository().Count(ctx, specification.ByChatSessionID{ChatSessionID: session.Id})
	if err != nil || count > 2 {
		return
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		title, err := s.provider.Generate(bgCtx,
			"Generate a short 3-4 word title for this chat. No quotes.\n\nFirst message: "+firstMessage,
			llm.WithTemperature(0.3), llm.WithMaxTokens(20),
		)
		if err != nil {
			return
		}
		title = strings.Trim(strings.TrimSpace(title), `"'`)
		if title == "" {
			return
		}
		if len(title) > constant.SessionTitleMaxLen {
			title = title[:constant.SessionTitleMaxLen]
		}

		bgUow := s.uowFactory.NewUnitOfWork(bgCtx)
		stored, err := bgUow.ChatSessionRepository().FindOne(bgCtx, specification.ByID{ID: session.Id})
		if err != nil || stored == nil {
			return
		}
		stored.Title = title
		_ = bgUow.ChatSessionRepository().Update(bgCtx, stored)
	}()
}

func (s *chatService) GetAllSessions(ctx context.Context, userId uuid.UUID) ([]*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.SessionResponse, 0, len(sessions))
	for _, sess := range sessions {
		response = append(response, &dto.SessionResponse{
			Id:        sess.Id,
			Title:     sess.Title,
			CreatedAt: sess.CreatedAt,
			UpdatedAt: sess.UpdatedAt,
		})
	}
	return response, nil
}

func (s *chatService) GetChatHistory(ctx context.Context, userId uuid.UUID, sessionId *uuid.UUID) ([]*dto.ChatHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if sessionId != nil {
		session, err := uow.ChatSessionRepository().FindOne(ctx,
			specification.ByID{ID: *sessionId},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if session == nil {
			return nil, ErrSessionNotFound
		}

		messages, err := uow.ChatMessageRepository().FindAll(ctx,
			specification.ByChatSessionID{ChatSessionID: *sessionId},
			specification.OrderBy{Field: "created_at", Desc: false},
		)
		if err != nil {
			return nil, err
		}
		return toHistoryResponse(messages), nil
	}

	// No session filter: recent messages across all of the user's sessions.
	sessions, err := uow.ChatSessionRepository().FindAll(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return []*dto.ChatHistoryResponse{}, nil
	}

	ids := make([]uuid.UUID, 0, len(sessions))
	for _, sess := range sessions {
		ids = append(ids, sess.Id)
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionIDs{ChatSessionIDs: ids},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: constant.CrossSessionHistory, Offset: 0},
	)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return toHistoryResponse(messages), nil
}

func toHistoryResponse(messages []*entity.ChatMessage) []*dto.ChatHistoryResponse {
	response := make([]*dto.ChatHistoryResponse, 0, len(messages))
	for _, m := range messages {
		item := &dto.ChatHistoryResponse{
			Id:        m.Id,
			Sender:    m.Sender,
			Text:      m.Text,
			CreatedAt: m.CreatedAt,
		}
		if m.IntentType != nil {
			item.IntentType = *m.IntentType
		}
		response = append(response, item)
	}
	return response
}

func (s *chatService) RenameSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, req *dto.RenameSessionRequest) (*dto.RenameSessionResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, errors.New("Title cannot be empty")
	}
	if len(title) > constant.SessionTitleMaxLen {
		title = title[:constant.SessionTitleMaxLen]
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	session.Title = title
	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	return &dto.RenameSessionResponse{
		Message:   "Session renamed",
		SessionId: session.Id,
		NewTitle:  title,
	}, nil
}

func (s *chatService) DeleteSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().DeleteByChatSessionIdUnscoped(ctx, sessionId); err != nil {
		return err
	}
	if err := uow.ChatSessionRepository().DeleteUnscoped(ctx, sessionId); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.stateRepo.Delete(sessionId.String())
	return nil
}
