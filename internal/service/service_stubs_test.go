// FILE: internal/service/service_stubs_test.go
package service

import (
	"context"
	"strings"

	"smepro-be/internal/entity"
	"smepro-be/internal/repository/contract"
	"smepro-be/internal/repository/specification"
	"smepro-be/internal/repository/unitofwork"
	"smepro-be/pkg/ai"
	"smepro-be/pkg/entitlement"

	"github.com/google/uuid"
)

// ---- collaborator stub ----

type stubCollaborator struct {
	chatReply     string
	chatErr       error
	generateReply string
	generateErr   error
	jsonReply     string
	jsonErr       error

	chatCalls     int
	generateCalls int
	jsonCalls     int
	lastHistory   []ai.Message
	lastPrompt    string
}

func (s *stubCollaborator) Chat(ctx context.Context, history []ai.Message, options ...ai.Option) (string, error) {
	s.chatCalls++
	s.lastHistory = history
	return s.chatReply, s.chatErr
}

func (s *stubCollaborator) Generate(ctx context.Context, prompt string, options ...ai.Option) (string, error) {
	s.generateCalls++
	s.lastPrompt = prompt
	return s.generateReply, s.generateErr
}

func (s *stubCollaborator) GenerateJSON(ctx context.Context, prompt string, schema *ai.Schema, options ...ai.Option) (string, error) {
	s.jsonCalls++
	s.lastPrompt = prompt
	return s.jsonReply, s.jsonErr
}

func (s *stubCollaborator) GenerateImage(ctx context.Context, prompt, aspectRatio string) (*ai.Asset, error) {
	return &ai.Asset{MimeType: "image/png", Data: []byte("png")}, nil
}

func (s *stubCollaborator) AnalyzeImage(ctx context.Context, prompt, mimeType string, data []byte) (string, error) {
	return s.generateReply, s.generateErr
}

func (s *stubCollaborator) EditImage(ctx context.Context, prompt, mimeType string, data []byte) (*ai.Asset, error) {
	return &ai.Asset{MimeType: "image/png", Data: []byte("png")}, nil
}

func (s *stubCollaborator) AnimateImage(ctx context.Context, prompt, mimeType string, data []byte, aspectRatio string) (*ai.Asset, error) {
	return &ai.Asset{MimeType: "video/mp4", URI: "https://example.com/video"}, nil
}

// ---- audit stub ----

type stubAudit struct {
	registered         int
	planChanges        [][2]string
	quotasExceeded     []string
	sessionsCreated    int
	workshopsStarted   int
	synthesesCompleted int
	capabilitiesOn     []string
}

func (a *stubAudit) PublishUserRegistered(ctx context.Context, userId uuid.UUID, email, fullName string) {
	a.registered++
}

func (a *stubAudit) PublishPlanChanged(ctx context.Context, userId uuid.UUID, oldPlan, newPlan string) {
	a.planChanges = append(a.planChanges, [2]string{oldPlan, newPlan})
}

func (a *stubAudit) PublishQuotaExceeded(ctx context.Context, userId uuid.UUID, quota string, limit, used float64) {
	a.quotasExceeded = append(a.quotasExceeded, quota)
}

func (a *stubAudit) PublishSessionCreated(ctx context.Context, userId uuid.UUID, sessionId, mode string) {
	a.sessionsCreated++
}

func (a *stubAudit) PublishWorkshopStarted(ctx context.Context, userId uuid.UUID, sessionId, objective string) {
	a.workshopsStarted++
}

func (a *stubAudit) PublishSynthesisCompleted(ctx context.Context, userId uuid.UUID, objective string, itemCount int) {
	a.synthesesCompleted++
}

func (a *stubAudit) PublishCapabilityEnabled(ctx context.Context, userId uuid.UUID, sessionId, capabilityName string) {
	a.capabilitiesOn = append(a.capabilitiesOn, capabilityName)
}

// ---- logger stub ----

type nopTestLogger struct{}

func (nopTestLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopTestLogger) Info(module, message string, details map[string]interface{})  {}
func (nopTestLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopTestLogger) Error(module, message string, details map[string]interface{}) {}
func (nopTestLogger) Sync() error                                                  { return nil }

// ---- in-memory repositories ----
//
// The fakes interpret the specification structs the real repositories feed
// to GORM, so service queries behave the same against the map-backed store.

type fakeUserRepo struct {
	users       map[uuid.UUID]*entity.User
	quotaWrites int
}

func (r *fakeUserRepo) matches(u *entity.User, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if u.Id != sp.ID {
				return false
			}
		case specification.ByEmail:
			if u.Email != sp.Email {
				return false
			}
		}
	}
	return true
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	cp := *user
	r.users[user.Id] = &cp
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	cp := *user
	r.users[user.Id] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.users {
		if r.matches(u, specs) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if r.matches(u, specs) {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	found, _ := r.FindAll(ctx, specs...)
	return int64(len(found)), nil
}

func (r *fakeUserRepo) UpdateQuotas(ctx context.Context, userId uuid.UUID, quotas entity.Quotas) error {
	if u, ok := r.users[userId]; ok {
		u.Quotas = quotas
	}
	r.quotaWrites++
	return nil
}

type fakeSubscriptionRepo struct {
	subs map[uuid.UUID]*entity.Subscription
}

func (r *fakeSubscriptionRepo) matches(sub *entity.Subscription, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if sub.Id != sp.ID {
				return false
			}
		case specification.ByUserID:
			if sub.UserId != sp.UserID {
				return false
			}
		}
	}
	return true
}

func (r *fakeSubscriptionRepo) Create(ctx context.Context, subscription *entity.Subscription) error {
	cp := *subscription
	r.subs[subscription.Id] = &cp
	return nil
}

func (r *fakeSubscriptionRepo) Update(ctx context.Context, subscription *entity.Subscription) error {
	cp := *subscription
	r.subs[subscription.Id] = &cp
	return nil
}

func (r *fakeSubscriptionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.subs, id)
	return nil
}

func (r *fakeSubscriptionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error) {
	for _, sub := range r.subs {
		if r.matches(sub, specs) {
			cp := *sub
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSubscriptionRepo) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.Subscription, error) {
	return r.FindOne(ctx, specification.ByUserID{UserID: userId})
}

type fakeChatSessionRepo struct {
	sessions map[uuid.UUID]*entity.ChatSession

	// lastMessageAtUpdate records the trailing message content each time
	// Update lands, so tests can check persistence ordering.
	lastMessageAtUpdate []string
}

func (r *fakeChatSessionRepo) matches(s *entity.ChatSession, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByID:
			if s.Id != sp.ID {
				return false
			}
		case specification.ByUserID:
			if s.UserId != sp.UserID {
				return false
			}
		}
	}
	return true
}

func (r *fakeChatSessionRepo) Create(ctx context.Context, session *entity.ChatSession) error {
	cp := *session
	r.sessions[session.Id] = &cp
	return nil
}

func (r *fakeChatSessionRepo) Update(ctx context.Context, session *entity.ChatSession) error {
	cp := *session
	r.sessions[session.Id] = &cp
	last := ""
	if len(session.Messages) > 0 {
		last = session.Messages[len(session.Messages)-1].Content
	}
	r.lastMessageAtUpdate = append(r.lastMessageAtUpdate, last)
	return nil
}

func (r *fakeChatSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.sessions, id)
	return nil
}

func (r *fakeChatSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	for _, s := range r.sessions {
		if r.matches(s, specs) {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeChatSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	var out []*entity.ChatSession
	for _, s := range r.sessions {
		if r.matches(s, specs) {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeChatSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	found, _ := r.FindAll(ctx, specs...)
	return int64(len(found)), nil
}

type fakeVaultRepo struct {
	items      map[uuid.UUID]*entity.VaultItem
	categories []*entity.VaultCategory
}

func (r *fakeVaultRepo) matches(item *entity.VaultItem, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if item.Id != sp.ID {
				return false
			}
		case specification.ByUserID:
			if item.UserId != sp.UserID {
				return false
			}
		case specification.ByCategory:
			if item.Category != sp.Category {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range sp.IDs {
				if item.Id == id {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case specification.SearchQuery:
			needle := strings.ToLower(sp.Query)
			if !strings.Contains(strings.ToLower(item.Title), needle) &&
				!strings.Contains(strings.ToLower(item.Content), needle) {
				return false
			}
		}
	}
	return true
}

func (r *fakeVaultRepo) CreateItem(ctx context.Context, item *entity.VaultItem) error {
	cp := *item
	r.items[item.Id] = &cp
	return nil
}

func (r *fakeVaultRepo) DeleteItem(ctx context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *fakeVaultRepo) FindOneItem(ctx context.Context, specs ...specification.Specification) (*entity.VaultItem, error) {
	for _, item := range r.items {
		if r.matches(item, specs) {
			cp := *item
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeVaultRepo) FindAllItems(ctx context.Context, specs ...specification.Specification) ([]*entity.VaultItem, error) {
	var out []*entity.VaultItem
	for _, item := range r.items {
		if r.matches(item, specs) {
			cp := *item
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeVaultRepo) CountItems(ctx context.Context, specs ...specification.Specification) (int64, error) {
	found, _ := r.FindAllItems(ctx, specs...)
	return int64(len(found)), nil
}

func (r *fakeVaultRepo) CreateCategory(ctx context.Context, category *entity.VaultCategory) error {
	cp := *category
	r.categories = append(r.categories, &cp)
	return nil
}

func (r *fakeVaultRepo) FindAllCategories(ctx context.Context, specs ...specification.Specification) ([]*entity.VaultCategory, error) {
	var out []*entity.VaultCategory
	for _, c := range r.categories {
		keep := true
		for _, s := range specs {
			if sp, ok := s.(specification.ByUserID); ok && c.UserId != sp.UserID {
				keep = false
				break
			}
		}
		if keep {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ---- unit of work ----

type fakeUnitOfWork struct {
	users    *fakeUserRepo
	subs     *fakeSubscriptionRepo
	sessions *fakeChatSessionRepo
	vault    *fakeVaultRepo

	begins, commits, rollbacks int
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { u.begins++; return nil }
func (u *fakeUnitOfWork) Commit() error                   { u.commits++; return nil }
func (u *fakeUnitOfWork) Rollback() error                 { u.rollbacks++; return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository {
	return u.users
}

func (u *fakeUnitOfWork) SubscriptionRepository() contract.SubscriptionRepository {
	return u.subs
}

func (u *fakeUnitOfWork) ChatSessionRepository() contract.ChatSessionRepository {
	return u.sessions
}

func (u *fakeUnitOfWork) VaultRepository() contract.VaultRepository {
	return u.vault
}

type fakeRepositoryFactory struct {
	uow *fakeUnitOfWork
}

func newFakeRepositoryFactory() *fakeRepositoryFactory {
	return &fakeRepositoryFactory{
		uow: &fakeUnitOfWork{
			users:    &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)},
			subs:     &fakeSubscriptionRepo{subs: make(map[uuid.UUID]*entity.Subscription)},
			sessions: &fakeChatSessionRepo{sessions: make(map[uuid.UUID]*entity.ChatSession)},
			vault:    &fakeVaultRepo{items: make(map[uuid.UUID]*entity.VaultItem)},
		},
	}
}

func (f *fakeRepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// seedAccount registers a user with the given quotas and an active
// subscription resolving to the plan.
func seedAccount(f *fakeRepositoryFactory, plan entity.EffectivePlan, quotas entity.Quotas) *entity.User {
	user := &entity.User{
		Id:     uuid.New(),
		Email:  "owner@example.com",
		Quotas: quotas,
	}
	f.uow.users.users[user.Id] = user

	base, addOn := entitlement.SubscriptionParts(plan)
	sub := &entity.Subscription{
		Id:           uuid.New(),
		UserId:       user.Id,
		PlanType:     base,
		AddOn:        addOn,
		BillingCycle: entity.BillingCycleMonthly,
		Status:       entity.SubscriptionStatusActive,
	}
	f.uow.subs.subs[sub.Id] = sub
	return user
}
