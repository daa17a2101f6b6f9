package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"ai-studybuddy-be/internal/constant"
	"ai-studybuddy-be/internal/dto"
	"ai-studybuddy-be/internal/entity"
	"ai-studybuddy-be/internal/repository/contract"
	"ai-studybuddy-be/internal/repository/memory"
	"ai-studybuddy-be/internal/repository/specification"
	"ai-studybuddy-be/internal/repository/unitofwork"
	"ai-studybuddy-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore backs the in-memory repositories so service logic can be
// exercised without a database.
type fakeStore struct {
	mu       sync.Mutex
	users    []*entity.User
	sessions []*entity.ChatSession
	messages []*entity.ChatMessage
	commits  int
}

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *user
	r.store.users = append(r.store.users, &copied)
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, u := range r.store.users {
		if u.Id == user.Id {
			copied := *user
			r.store.users[i] = &copied
		}
	}
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, u := range r.store.users {
		if u.Id == id {
			r.store.users = append(r.store.users[:i], r.store.users[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, userId uuid.UUID, hash string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if u.Id == userId {
			u.PasswordHash = hash
		}
	}
	return nil
}

func (r *fakeUserRepo) query(specs []specification.Specification) []*entity.User {
	out := append([]*entity.User{}, r.store.users...)
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByID:
			out = filterUsers(out, func(u *entity.User) bool { return u.Id == sp.ID })
		case specification.ByUsername:
			out = filterUsers(out, func(u *entity.User) bool { return u.Username == sp.Username })
		}
	}
	return out
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := r.query(specs)
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.query(specs), nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.query(specs))), nil
}

func filterUsers(in []*entity.User, keep func(*entity.User) bool) []*entity.User {
	out := in[:0]
	for _, u := range in {
		if keep(u) {
			out = append(out, u)
		}
	}
	return out
}

type fakeSessionRepo struct{ store *fakeStore }

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.ChatSession) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *session
	r.store.sessions = append(r.store.sessions, &copied)
	return nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, session *entity.ChatSession) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, s := range r.store.sessions {
		if s.Id == session.Id {
			copied := *session
			r.store.sessions[i] = &copied
		}
	}
	return nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.DeleteUnscoped(ctx, id)
}

func (r *fakeSessionRepo) DeleteUnscoped(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, s := range r.store.sessions {
		if s.Id == id {
			r.store.sessions = append(r.store.sessions[:i], r.store.sessions[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeSessionRepo) query(specs []specification.Specification) []*entity.ChatSession {
	out := append([]*entity.ChatSession{}, r.store.sessions...)
	limit, offset := -1, 0
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByID:
			out = filterSessions(out, func(s *entity.ChatSession) bool { return s.Id == sp.ID })
		case specification.UserOwnedBy:
			out = filterSessions(out, func(s *entity.ChatSession) bool { return s.UserId == sp.UserID })
		case specification.OrderBy:
			desc := sp.Desc
			sort.SliceStable(out, func(i, j int) bool {
				if desc {
					return out[i].CreatedAt.After(out[j].CreatedAt)
				}
				return out[i].CreatedAt.Before(out[j].CreatedAt)
			})
		case specification.Pagination:
			limit, offset = sp.Limit, sp.Offset
		}
	}
	return paginateSessions(out, limit, offset)
}

func (r *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := r.query(specs)
	if len(out) == 0 {
		return nil, nil
	}
	copied := *out[0]
	return &copied, nil
}

func (r *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.query(specs), nil
}

func (r *fakeSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.query(specs))), nil
}

func filterSessions(in []*entity.ChatSession, keep func(*entity.ChatSession) bool) []*entity.ChatSession {
	out := in[:0]
	for _, s := range in {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func paginateSessions(in []*entity.ChatSession, limit, offset int) []*entity.ChatSession {
	if offset > 0 {
		if offset >= len(in) {
			return nil
		}
		in = in[offset:]
	}
	if limit >= 0 && limit < len(in) {
		in = in[:limit]
	}
	return in
}

type fakeMessageRepo struct{ store *fakeStore }

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.ChatMessage) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *message
	r.store.messages = append(r.store.messages, &copied)
	return nil
}

func (r *fakeMessageRepo) Update(ctx context.Context, message *entity.ChatMessage) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, m := range r.store.messages {
		if m.Id == message.Id {
			copied := *message
			r.store.messages[i] = &copied
		}
	}
	return nil
}

func (r *fakeMessageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, m := range r.store.messages {
		if m.Id == id {
			r.store.messages = append(r.store.messages[:i], r.store.messages[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeMessageRepo) DeleteByChatSessionIdUnscoped(ctx context.Context, sessionId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	kept := r.store.messages[:0]
	for _, m := range r.store.messages {
		if m.ChatSessionId != sessionId {
			kept = append(kept, m)
		}
	}
	r.store.messages = kept
	return nil
}

func (r *fakeMessageRepo) query(specs []specification.Specification) []*entity.ChatMessage {
	out := append([]*entity.ChatMessage{}, r.store.messages...)
	limit, offset := -1, 0
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByChatSessionID:
			id := sp.ChatSessionID
			out = filterMessages(out, func(m *entity.ChatMessage) bool { return m.ChatSessionId == id })
		case specification.ByChatSessionIDs:
			ids := make(map[uuid.UUID]bool, len(sp.ChatSessionIDs))
			for _, id := range sp.ChatSessionIDs {
				ids[id] = true
			}
			out = filterMessages(out, func(m *entity.ChatMessage) bool { return ids[m.ChatSessionId] })
		case specification.BySender:
			sender := sp.Sender
			out = filterMessages(out, func(m *entity.ChatMessage) bool { return m.Sender == sender })
		case specification.OrderBy:
			desc := sp.Desc
			sort.SliceStable(out, func(i, j int) bool {
				if desc {
					return out[i].CreatedAt.After(out[j].CreatedAt)
				}
				return out[i].CreatedAt.Before(out[j].CreatedAt)
			})
		case specification.Pagination:
			limit, offset = sp.Limit, sp.Offset
		}
	}
	if offset > 0 {
		if offset >= len(out) {
			return nil
		}
		out = out[offset:]
	}
	if limit >= 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

func (r *fakeMessageRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatMessage, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := r.query(specs)
	if len(out) == 0 {
		return nil, nil
	}
	copied := *out[0]
	return &copied, nil
}

func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.query(specs), nil
}

func (r *fakeMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.query(specs))), nil
}

func filterMessages(in []*entity.ChatMessage, keep func(*entity.ChatMessage) bool) []*entity.ChatMessage {
	out := in[:0]
	for _, m := range in {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

type fakeUow struct {
	store *fakeStore
	begun bool
}

func (u *fakeUow) Begin(ctx context.Context) error {
	if u.begun {
		return errors.New("transaction already started")
	}
	u.begun = true
	return nil
}

func (u *fakeUow) Commit() error {
	if !u.begun {
		return errors.New("no transaction to commit")
	}
	u.begun = false
	u.store.mu.Lock()
	u.store.commits++
	u.store.mu.Unlock()
	return nil
}

func (u *fakeUow) Rollback() error {
	if !u.begun {
		return errors.New("no transaction to rollback")
	}
	u.begun = false
	return nil
}

func (u *fakeUow) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}

func (u *fakeUow) ChatSessionRepository() contract.ChatSessionRepository {
	return &fakeSessionRepo{store: u.store}
}

func (u *fakeUow) ChatMessageRepository() contract.ChatMessageRepository {
	return &fakeMessageRepo{store: u.store}
}

type fakeFactory struct{ store *fakeStore }

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

// fakeModel is locked because retitling reads it from a goroutine.
type fakeModel struct {
	mu        sync.Mutex
	chatReply string
	chatErr   error
	title     string
}

func (f *fakeModel) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.chatReply, f.chatErr
}

func (f *fakeModel) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.title, nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newChatFixture(t *testing.T) (*fakeStore, *fakeModel, IChatService, uuid.UUID) {
	t.Helper()
	st := &fakeStore{}
	userId := uuid.New()
	st.users = append(st.users, &entity.User{
		Id:        userId,
		Username:  "rahul",
		CreatedAt: time.Now(),
	})
	// Empty title keeps the background retitle from firing; tests that
	// want it set model.title explicitly.
	model := &fakeModel{
		chatReply: `{"answer": "Stacks are LIFO structures.", "next_suggestions": ["Practice MCQ", "Show an example", "Next topic"]}`,
	}
	svc := NewChatService(&fakeFactory{store: st}, model, memory.NewSessionStateRepository(), nopLogger{}, nopLogger{})
	return st, model, svc, userId
}

func seedSession(st *fakeStore, userId uuid.UUID, title string, createdAt time.Time) uuid.UUID {
	id := uuid.New()
	st.sessions = append(st.sessions, &entity.ChatSession{
		Id:        id,
		UserId:    userId,
		Title:     title,
		CreatedAt: createdAt,
	})
	return id
}

func seedMessage(st *fakeStore, sessionId uuid.UUID, sender, text string, createdAt time.Time) {
	st.messages = append(st.messages, &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: sessionId,
		Sender:        sender,
		Text:          text,
		CreatedAt:     createdAt,
	})
}

func TestSendChatCreatesSessionAndPersistsBothTurns(t *testing.T) {
	st, _, svc, userId := newChatFixture(t)

	res, err := svc.SendChat(context.Background(), userId, &dto.SendChatRequest{Message: "explain stacks"})
	require.NoError(t, err)

	assert.Equal(t, "Stacks are LIFO structures.", res.Reply)
	assert.Equal(t, res.Reply, res.Response.Answer)
	assert.Len(t, res.Response.NextSuggestions, 3)

	st.mu.Lock()
	defer st.mu.Unlock()
	require.Len(t, st.sessions, 1)
	assert.Equal(t, res.ChatSessionId, st.sessions[0].Id)
	assert.Equal(t, "explain stacks", st.sessions[0].Title)

	require.Len(t, st.messages, 2)
	assert.Equal(t, constant.ChatSenderUser, st.messages[0].Sender)
	assert.Equal(t, "explain stacks", st.messages[0].Text)
	assert.Equal(t, constant.ChatSenderAI, st.messages[1].Sender)
}

func TestSendChatEvictsOldestSessionAtCap(t *testing.T) {
	st, _, svc, userId := newChatFixture(t)

	base := time.Now().Add(-2 * time.Hour)
	oldest := seedSession(st, userId, "oldest", base)
	seedMessage(st, oldest, constant.ChatSenderUser, "first ever question", base)
	for i := 1; i < constant.MaxSessionsPerUser; i++ {
		seedSession(st, userId, "older", base.Add(time.Duration(i)*time.Minute))
	}

	res, err := svc.SendChat(context.Background(), userId, &dto.SendChatRequest{Message: "explain stacks"})
	require.NoError(t, err)

	st.mu.Lock()
	defer st.mu.Unlock()
	assert.Len(t, st.sessions, constant.MaxSessionsPerUser)
	for _, s := range st.sessions {
		assert.NotEqual(t, oldest, s.Id)
	}
	for _, m := range st.messages {
		assert.NotEqual(t, oldest, m.ChatSessionId, "evicted session messages must go with it")
		assert.Equal(t, res.ChatSessionId, m.ChatSessionId)
	}
	assert.Equal(t, 1, st.commits, "eviction runs in a transaction")
}

func TestSendChatBelowCapEvictsNothing(t *testing.T) {
	st, _, svc, userId := newChatFixture(t)

	base := time.Now().Add(-time.Hour)
	kept := seedSession(st, userId, "kept", base)
	seedMessage(st, kept, constant.ChatSenderUser, "hello", base)

	_, err := svc.SendChat(context.Background(), userId, &dto.SendChatRequest{Message: "explain stacks"})
	require.NoError(t, err)

	st.mu.Lock()
	defer st.mu.Unlock()
	assert.Len(t, st.sessions, 2)
	assert.Equal(t, 0, st.commits)
}

func TestSendChatRejectsForeignSession(t *testing.T) {
	st, _, svc, userId := newChatFixture(t)

	otherSession := seedSession(st, uuid.New(), "not yours", time.Now())

	_, err := svc.SendChat(context.Background(), userId, &dto.SendChatRequest{
		Message:       "explain stacks",
		ChatSessionId: &otherSession,
	})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSendChatSavesApologyWhenModelFails(t *testing.T) {
	st, model, svc, userId := newChatFixture(t)
	model.chatErr = errors.New("groq api error (status 500)")

	_, err := svc.SendChat(context.Background(), userId, &dto.SendChatRequest{Message: "explain stacks"})
	require.Error(t, err)

	st.mu.Lock()
	defer st.mu.Unlock()
	require.Len(t, st.messages, 2)
	assert.Equal(t, constant.ChatSenderAI, st.messages[1].Sender)
	assert.Contains(t, st.messages[1].Text, "Kuch issue aa gaya")
}

func TestSendChatRetitlesNewSessionInBackground(t *testing.T) {
	st, model, svc, userId := newChatFixture(t)
	model.title = "Stacks Basics"

	res, err := svc.SendChat(context.Background(), userId, &dto.SendChatRequest{Message: "explain stacks"})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		st.mu.Lock()
		defer st.mu.Unlock()
		for _, s := range st.sessions {
			if s.Id == res.ChatSessionId && s.Title == "Stacks Basics" {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)
}

func TestGetChatHistoryReturnsOwnedSessionAscending(t *testing.T) {
	st, _, svc, userId := newChatFixture(t)

	base := time.Now().Add(-time.Hour)
	sessionId := seedSession(st, userId, "stacks", base)
	// Inserted out of order on purpose.
	seedMessage(st, sessionId, constant.ChatSenderAI, "second", base.Add(2*time.Minute))
	seedMessage(st, sessionId, constant.ChatSenderUser, "first", base.Add(1*time.Minute))
	seedMessage(st, sessionId, constant.ChatSenderUser, "third", base.Add(3*time.Minute))

	otherSession := seedSession(st, userId, "other", base)
	seedMessage(st, otherSession, constant.ChatSenderUser, "unrelated", base.Add(4*time.Minute))

	history, err := svc.GetChatHistory(context.Background(), userId, &sessionId)
	require.NoError(t, err)

	require.Len(t, history, 3)
	assert.Equal(t, "first", history[0].Text)
	assert.Equal(t, "second", history[1].Text)
	assert.Equal(t, "third", history[2].Text)
}

func TestGetChatHistoryRejectsForeignSession(t *testing.T) {
	st, _, svc, userId := newChatFixture(t)

	otherSession := seedSession(st, uuid.New(), "not yours", time.Now())

	_, err := svc.GetChatHistory(context.Background(), userId, &otherSession)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGetChatHistorySpansSessionsWithoutFilter(t *testing.T) {
	st, _, svc, userId := newChatFixture(t)

	base := time.Now().Add(-time.Hour)
	first := seedSession(st, userId, "first", base)
	second := seedSession(st, userId, "second", base.Add(time.Minute))
	seedMessage(st, first, constant.ChatSenderUser, "from first", base.Add(1*time.Minute))
	seedMessage(st, second, constant.ChatSenderUser, "from second", base.Add(2*time.Minute))

	foreign := seedSession(st, uuid.New(), "foreign", base)
	seedMessage(st, foreign, constant.ChatSenderUser, "never shown", base.Add(3*time.Minute))

	history, err := svc.GetChatHistory(context.Background(), userId, nil)
	require.NoError(t, err)

	require.Len(t, history, 2)
	assert.Equal(t, "from first", history[0].Text)
	assert.Equal(t, "from second", history[1].Text)
}

func TestRenameSessionRejectsEmptyTitle(t *testing.T) {
	st, _, svc, userId := newChatFixture(t)
	sessionId := seedSession(st, userId, "old title", time.Now())

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := svc.RenameSession(context.Background(), userId, sessionId, &dto.RenameSessionRequest{Title: title})
		require.Error(t, err)
		assert.Equal(t, "Title cannot be empty", err.Error())
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	assert.Equal(t, "old title", st.sessions[0].Title)
}

func TestRenameSessionTruncatesAndPersists(t *testing.T) {
	st, _, svc, userId := newChatFixture(t)
	sessionId := seedSession(st, userId, "old title", time.Now())

	long := "  Data Structures and Algorithms complete revision plan for semester three  "
	res, err := svc.RenameSession(context.Background(), userId, sessionId, &dto.RenameSessionRequest{Title: long})
	require.NoError(t, err)

	assert.Equal(t, sessionId, res.SessionId)
	assert.LessOrEqual(t, len(res.NewTitle), constant.SessionTitleMaxLen)

	st.mu.Lock()
	defer st.mu.Unlock()
	assert.Equal(t, res.NewTitle, st.sessions[0].Title)
}

func TestRenameSessionRejectsForeignSession(t *testing.T) {
	st, _, svc, userId := newChatFixture(t)
	otherSession := seedSession(st, uuid.New(), "not yours", time.Now())

	_, err := svc.RenameSession(context.Background(), userId, otherSession, &dto.RenameSessionRequest{Title: "mine now"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDeleteSessionCascadesToMessages(t *testing.T) {
	st, _, svc, userId := newChatFixture(t)

	base := time.Now().Add(-time.Hour)
	sessionId := seedSession(st, userId, "doomed", base)
	seedMessage(st, sessionId, constant.ChatSenderUser, "q", base.Add(time.Minute))
	seedMessage(st, sessionId, constant.ChatSenderAI, "a", base.Add(2*time.Minute))

	survivor := seedSession(st, userId, "survivor", base)
	seedMessage(st, survivor, constant.ChatSenderUser, "still here", base.Add(3*time.Minute))

	err := svc.DeleteSession(context.Background(), userId, sessionId)
	require.NoError(t, err)

	st.mu.Lock()
	require.Len(t, st.sessions, 1)
	assert.Equal(t, survivor, st.sessions[0].Id)
	require.Len(t, st.messages, 1)
	assert.Equal(t, survivor, st.messages[0].ChatSessionId)
	assert.Equal(t, 1, st.commits)
	st.mu.Unlock()

	_, err = svc.GetChatHistory(context.Background(), userId, &sessionId)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDeleteSessionRejectsForeignSession(t *testing.T) {
	st, _, svc, userId := newChatFixture(t)
	otherSession := seedSession(st, uuid.New(), "not yours", time.Now())

	err := svc.DeleteSession(context.Background(), userId, otherSession)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	st.mu.Lock()
	defer st.mu.Unlock()
	assert.Len(t, st.sessions, 1)
}

func TestGetAllSessionsNewestFirst(t *testing.T) {
	st, _, svc, userId := newChatFixture(t)

	base := time.Now().Add(-time.Hour)
	seedSession(st, userId, "older", base)
	seedSession(st, userId, "newer", base.Add(time.Minute))
	seedSession(st, uuid.New(), "foreign", base.Add(2*time.Minute))

	sessions, err := svc.GetAllSessions(context.Background(), userId)
	require.NoError(t, err)

	require.Len(t, sessions, 2)
	assert.Equal(t, "newer", sessions[0].Title)
	assert.Equal(t, "older", sessions[1].Title)
}
