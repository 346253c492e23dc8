package relay

import (
	"context"
	"sync"

	"github.com/heartmarshall/relaybot/internal/domain"
)

var _ sessionStore = &sessionStoreMock{}

type sessionStoreMock struct {
	GetFunc   func(ctx context.Context, chatID int64) (domain.Session, error)
	PutFunc   func(ctx context.Context, chatID int64, sess domain.Session) error
	ResetFunc func(ctx context.Context, chatID int64) error

	calls struct {
		Get []struct {
			Ctx    context.Context
			ChatID int64
		}
		Put []struct {
			Ctx    context.Context
			ChatID int64
			Sess   domain.Session
		}
		Reset []struct {
			Ctx    context.Context
			ChatID int64
		}
	}
	lockGet   sync.RWMutex
	lockPut   sync.RWMutex
	lockReset sync.RWMutex
}

func (mock *sessionStoreMock) Get(ctx context.Context, chatID int64) (domain.Session, error) {
	if mock.GetFunc == nil {
		panic("sessionStoreMock.GetFunc: method is nil but sessionStore.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ChatID int64
	}{Ctx: ctx, ChatID: chatID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, chatID)
}

func (mock *sessionStoreMock) GetCalls() []struct {
	Ctx    context.Context
	ChatID int64
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *sessionStoreMock) Put(ctx context.Context, chatID int64, sess domain.Session) error {
	if mock.PutFunc == nil {
		panic("sessionStoreMock.PutFunc: method is nil but sessionStore.Put was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ChatID int64
		Sess   domain.Session
	}{Ctx: ctx, ChatID: chatID, Sess: sess}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, chatID, sess)
}

func (mock *sessionStoreMock) PutCalls() []struct {
	Ctx    context.Context
	ChatID int64
	Sess   domain.Session
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}

func (mock *sessionStoreMock) Reset(ctx context.Context, chatID int64) error {
	if mock.ResetFunc == nil {
		panic("sessionStoreMock.ResetFunc: method is nil but sessionStore.Reset was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ChatID int64
	}{Ctx: ctx, ChatID: chatID}
	mock.lockReset.Lock()
	mock.calls.Reset = append(mock.calls.Reset, callInfo)
	mock.lockReset.Unlock()
	return mock.ResetFunc(ctx, chatID)
}

func (mock *sessionStoreMock) ResetCalls() []struct {
	Ctx    context.Context
	ChatID int64
} {
	mock.lockReset.RLock()
	calls := mock.calls.Reset
	mock.lockReset.RUnlock()
	return calls
}
