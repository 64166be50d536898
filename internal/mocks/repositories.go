// Package mocks testify/mock实现的仓储与协作者替身，供单元测试使用
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/gpmendes7/bookstoremanager-course/internal/domain/author"
	"github.com/gpmendes7/bookstoremanager-course/internal/domain/event"
	"github.com/gpmendes7/bookstoremanager-course/internal/domain/publisher"
	"github.com/gpmendes7/bookstoremanager-course/internal/domain/user"
)

// AuthorRepository author.Repository替身
type AuthorRepository struct {
	mock.Mock
}

var _ author.Repository = (*AuthorRepository)(nil)

func (m *AuthorRepository) Save(ctx context.Context, a *author.Author) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *AuthorRepository) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	args := m.Called(ctx, id)
	found, _ := args.Get(0).(*author.Author)
	return found, args.Error(1)
}

func (m *AuthorRepository) FindByName(ctx context.Context, name string) (*author.Author, error) {
	args := m.Called(ctx, name)
	found, _ := args.Get(0).(*author.Author)
	return found, args.Error(1)
}

func (m *AuthorRepository) FindAll(ctx context.Context) ([]*author.Author, error) {
	args := m.Called(ctx)
	found, _ := args.Get(0).([]*author.Author)
	return found, args.Error(1)
}

func (m *AuthorRepository) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// PublisherRepository publisher.Repository替身
type PublisherRepository struct {
	mock.Mock
}

var _ publisher.Repository = (*PublisherRepository)(nil)

func (m *PublisherRepository) Save(ctx context.Context, p *publisher.Publisher) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PublisherRepository) FindByID(ctx context.Context, id uint) (*publisher.Publisher, error) {
	args := m.Called(ctx, id)
	found, _ := args.Get(0).(*publisher.Publisher)
	return found, args.Error(1)
}

func (m *PublisherRepository) FindByNameOrCode(ctx context.Context, name, code string) ([]*publisher.Publisher, error) {
	args := m.Called(ctx, name, code)
	found, _ := args.Get(0).([]*publisher.Publisher)
	return found, args.Error(1)
}

func (m *PublisherRepository) FindAll(ctx context.Context) ([]*publisher.Publisher, error) {
	args := m.Called(ctx)
	found, _ := args.Get(0).([]*publisher.Publisher)
	return found, args.Error(1)
}

func (m *PublisherRepository) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// UserRepository user.Repository替身
type UserRepository struct {
	mock.Mock
}

var _ user.Repository = (*UserRepository)(nil)

func (m *UserRepository) Save(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	args := m.Called(ctx, id)
	found, _ := args.Get(0).(*user.User)
	return found, args.Error(1)
}

func (m *UserRepository) FindByEmailOrUsername(ctx context.Context, email, username string) ([]*user.User, error) {
	args := m.Called(ctx, email, username)
	found, _ := args.Get(0).([]*user.User)
	return found, args.Error(1)
}

func (m *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	found, _ := args.Get(0).(*user.User)
	return found, args.Error(1)
}

func (m *UserRepository) FindAll(ctx context.Context) ([]*user.User, error) {
	args := m.Called(ctx)
	found, _ := args.Get(0).([]*user.User)
	return found, args.Error(1)
}

func (m *UserRepository) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// EventPublisher event.Publisher替身
type EventPublisher struct {
	mock.Mock
}

var _ event.Publisher = (*EventPublisher)(nil)

func (m *EventPublisher) Publish(ctx context.Context, e event.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

// SessionStore auth.SessionStore替身
type SessionStore struct {
	mock.Mock
}

func (m *SessionStore) SaveSession(ctx context.Context, userID uint, data map[string]interface{}, ttl time.Duration) error {
	args := m.Called(ctx, userID, data, ttl)
	return args.Error(0)
}

func (m *SessionStore) GetSession(ctx context.Context, userID uint) (map[string]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *SessionStore) DeleteSession(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *SessionStore) AddToBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	args := m.Called(ctx, token, ttl)
	return args.Error(0)
}

func (m *SessionStore) IsInBlacklist(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}
