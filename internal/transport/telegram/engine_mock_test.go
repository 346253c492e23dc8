package telegram

import (
	"context"
	"sync"

	"github.com/heartmarshall/relaybot/internal/domain"
	"github.com/heartmarshall/relaybot/internal/service/relay"
)

var _ engine = &engineMock{}

type engineMock struct {
	StartRecordingFunc func(ctx context.Context, chatID int64) (*domain.Record, error)
	AppendMessageFunc  func(ctx context.Context, chatID int64, messageID int) (int64, error)
	SealRecordFunc     func(ctx context.Context, chatID int64) (*domain.Record, error)
	RetrieveFunc       func(ctx context.Context, requesterChatID int64, target domain.Target, enforceSlug bool) (relay.RetrieveResult, error)

	calls struct {
		StartRecording []struct {
			Ctx    context.Context
			ChatID int64
		}
		AppendMessage []struct {
			Ctx       context.Context
			ChatID    int64
			MessageID int
		}
		SealRecord []struct {
			Ctx    context.Context
			ChatID int64
		}
		Retrieve []struct {
			Ctx             context.Context
			RequesterChatID int64
			Target          domain.Target
			EnforceSlug     bool
		}
	}
	lockStartRecording sync.RWMutex
	lockAppendMessage  sync.RWMutex
	lockSealRecord     sync.RWMutex
	lockRetrieve       sync.RWMutex
}

func (mock *engineMock) StartRecording(ctx context.Context, chatID int64) (*domain.Record, error) {
	if mock.StartRecordingFunc == nil {
		panic("engineMock.StartRecordingFunc: method is nil but engine.StartRecording was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ChatID int64
	}{Ctx: ctx, ChatID: chatID}
	mock.lockStartRecording.Lock()
	mock.calls.StartRecording = append(mock.calls.StartRecording, callInfo)
	mock.lockStartRecording.Unlock()
	return mock.StartRecordingFunc(ctx, chatID)
}

func (mock *engineMock) StartRecordingCalls() []struct {
	Ctx    context.Context
	ChatID int64
} {
	mock.lockStartRecording.RLock()
	calls := mock.calls.StartRecording
	mock.lockStartRecording.RUnlock()
	return calls
}

func (mock *engineMock) AppendMessage(ctx context.Context, chatID int64, messageID int) (int64, error) {
	if mock.AppendMessageFunc == nil {
		panic("engineMock.AppendMessageFunc: method is nil but engine.AppendMessage was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ChatID    int64
		MessageID int
	}{Ctx: ctx, ChatID: chatID, MessageID: messageID}
	mock.lockAppendMessage.Lock()
	mock.calls.AppendMessage = append(mock.calls.AppendMessage, callInfo)
	mock.lockAppendMessage.Unlock()
	return mock.AppendMessageFunc(ctx, chatID, messageID)
}

func (mock *engineMock) AppendMessageCalls() []struct {
	Ctx       context.Context
	ChatID    int64
	MessageID int
} {
	mock.lockAppendMessage.RLock()
	calls := mock.calls.AppendMessage
	mock.lockAppendMessage.RUnlock()
	return calls
}

func (mock *engineMock) SealRecord(ctx context.Context, chatID int64) (*domain.Record, error) {
	if mock.SealRecordFunc == nil {
		panic("engineMock.SealRecordFunc: method is nil but engine.SealRecord was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ChatID int64
	}{Ctx: ctx, ChatID: chatID}
	mock.lockSealRecord.Lock()
	mock.calls.SealRecord = append(mock.calls.SealRecord, callInfo)
	mock.lockSealRecord.Unlock()
	return mock.SealRecordFunc(ctx, chatID)
}

func (mock *engineMock) SealRecordCalls() []struct {
	Ctx    context.Context
	ChatID int64
} {
	mock.lockSealRecord.RLock()
	calls := mock.calls.SealRecord
	mock.lockSealRecord.RUnlock()
	return calls
}

func (mock *engineMock) Retrieve(ctx context.Context, requesterChatID int64, target domain.Target, enforceSlug bool) (relay.RetrieveResult, error) {
	if mock.RetrieveFunc == nil {
		panic("engineMock.RetrieveFunc: method is nil but engine.Retrieve was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		RequesterChatID int64
		Target          domain.Target
		EnforceSlug     bool
	}{Ctx: ctx, RequesterChatID: requesterChatID, Target: target, EnforceSlug: enforceSlug}
	mock.lockRetrieve.Lock()
	mock.calls.Retrieve = append(mock.calls.Retrieve, callInfo)
	mock.lockRetrieve.Unlock()
	return mock.RetrieveFunc(ctx, requesterChatID, target, enforceSlug)
}

func (mock *engineMock) RetrieveCalls() []struct {
	Ctx             context.Context
	RequesterChatID int64
	Target          domain.Target
	EnforceSlug     bool
} {
	mock.lockRetrieve.RLock()
	calls := mock.calls.Retrieve
	mock.lockRetrieve.RUnlock()
	return calls
}
