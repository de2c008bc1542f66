package item

import (
	"context"
	"github.com/heartmarshall/itemshelf-backend/internal/domain"
	"sync"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	CreateFunc  func(ctx context.Context, item *domain.Item) (*domain.Item, error)
	DeleteFunc  func(ctx context.Context, id int) (*domain.Item, error)
	GetByIDFunc func(ctx context.Context, id int) (*domain.Item, error)
	ListFunc    func(ctx context.Context) ([]*domain.Item, error)
	UpdateFunc  func(ctx context.Context, id int, params domain.ItemUpdateParams) (*domain.Item, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Item *domain.Item
		}
		Delete []struct {
			Ctx context.Context
			ID  int
		}
		GetByID []struct {
			Ctx context.Context
			ID  int
		}
		List []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx    context.Context
			ID     int
			Params domain.ItemUpdateParams
		}
	}
	lockCreate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *itemRepoMock) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	if mock.CreateFunc == nil {
		panic("itemRepoMock.CreateFunc: method is nil but itemRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item *domain.Item
	}{Ctx: ctx, Item: item}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, item)
}

func (mock *itemRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Item *domain.Item
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *itemRepoMock) Delete(ctx context.Context, id int) (*domain.Item, error) {
	if mock.DeleteFunc == nil {
		panic("itemRepoMock.DeleteFunc: method is nil but itemRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *itemRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *itemRepoMock) GetByID(ctx context.Context, id int) (*domain.Item, error) {
	if mock.GetByIDFunc == nil {
		panic("itemRepoMock.GetByIDFunc: method is nil but itemRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *itemRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *itemRepoMock) List(ctx context.Context) ([]*domain.Item, error) {
	if mock.ListFunc == nil {
		panic("itemRepoMock.ListFunc: method is nil but itemRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *itemRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *itemRepoMock) Update(ctx context.Context, id int, params domain.ItemUpdateParams) (*domain.Item, error) {
	if mock.UpdateFunc == nil {
		panic("itemRepoMock.UpdateFunc: method is nil but itemRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     int
		Params domain.ItemUpdateParams
	}{Ctx: ctx, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *itemRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     int
	Params domain.ItemUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
