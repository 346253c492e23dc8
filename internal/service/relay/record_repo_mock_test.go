package relay

import (
	"context"
	"sync"

	"github.com/heartmarshall/relaybot/internal/domain"
)

var _ recordRepo = &recordRepoMock{}

type recordRepoMock struct {
	CreateFunc        func(ctx context.Context, rec *domain.Record) (*domain.Record, error)
	GetSealedFunc     func(ctx context.Context, id int64) (*domain.Record, error)
	AppendMessageFunc func(ctx context.Context, id int64, messageID int) (int64, error)
	SealFunc          func(ctx context.Context, id int64) (*domain.Record, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rec *domain.Record
		}
		GetSealed []struct {
			Ctx context.Context
			ID  int64
		}
		AppendMessage []struct {
			Ctx       context.Context
			ID        int64
			MessageID int
		}
		Seal []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockCreate        sync.RWMutex
	lockGetSealed     sync.RWMutex
	lockAppendMessage sync.RWMutex
	lockSeal          sync.RWMutex
}

func (mock *recordRepoMock) Create(ctx context.Context, rec *domain.Record) (*domain.Record, error) {
	if mock.CreateFunc == nil {
		panic("recordRepoMock.CreateFunc: method is nil but recordRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec *domain.Record
	}{Ctx: ctx, Rec: rec}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *recordRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rec *domain.Record
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *recordRepoMock) GetSealed(ctx context.Context, id int64) (*domain.Record, error) {
	if mock.GetSealedFunc == nil {
		panic("recordRepoMock.GetSealedFunc: method is nil but recordRepo.GetSealed was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetSealed.Lock()
	mock.calls.GetSealed = append(mock.calls.GetSealed, callInfo)
	mock.lockGetSealed.Unlock()
	return mock.GetSealedFunc(ctx, id)
}

func (mock *recordRepoMock) GetSealedCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetSealed.RLock()
	calls := mock.calls.GetSealed
	mock.lockGetSealed.RUnlock()
	return calls
}

func (mock *recordRepoMock) AppendMessage(ctx context.Context, id int64, messageID int) (int64, error) {
	if mock.AppendMessageFunc == nil {
		panic("recordRepoMock.AppendMessageFunc: method is nil but recordRepo.AppendMessage was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        int64
		MessageID int
	}{Ctx: ctx, ID: id, MessageID: messageID}
	mock.lockAppendMessage.Lock()
	mock.calls.AppendMessage = append(mock.calls.AppendMessage, callInfo)
	mock.lockAppendMessage.Unlock()
	return mock.AppendMessageFunc(ctx, id, messageID)
}

func (mock *recordRepoMock) AppendMessageCalls() []struct {
	Ctx       context.Context
	ID        int64
	MessageID int
} {
	mock.lockAppendMessage.RLock()
	calls := mock.calls.AppendMessage
	mock.lockAppendMessage.RUnlock()
	return calls
}

func (mock *recordRepoMock) Seal(ctx context.Context, id int64) (*domain.Record, error) {
	if mock.SealFunc == nil {
		panic("recordRepoMock.SealFunc: method is nil but recordRepo.Seal was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockSeal.Lock()
	mock.calls.Seal = append(mock.calls.Seal, callInfo)
	mock.lockSeal.Unlock()
	return mock.SealFunc(ctx, id)
}

func (mock *recordRepoMock) SealCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockSeal.RLock()
	calls := mock.calls.Seal
	mock.lockSeal.RUnlock()
	return calls
}
