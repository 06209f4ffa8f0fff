// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cart_test
//

// Package cart_test is a generated GoMock package.
package cart_test

import (
	context "context"
	reflect "reflect"
	entities "storefront/internal/entities"

	gomock "go.uber.org/mock/gomock"
)

// MockRepository is a mock of Repository interface.
type MockRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRepositoryMockRecorder
	isgomock struct{}
}

// MockRepositoryMockRecorder is the mock recorder for MockRepository.
type MockRepositoryMockRecorder struct {
	mock *MockRepository
}

// NewMockRepository creates a new mock instance.
func NewMockRepository(ctrl *gomock.Controller) *MockRepository {
	mock := &MockRepository{ctrl: ctrl}
	mock.recorder = &MockRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRepository) EXPECT() *MockRepositoryMockRecorder {
	return m.recorder
}

// Clear mocks base method.
func (m *MockRepository) Clear(ctx context.Context, userID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Clear", ctx, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Clear indicates an expected call of Clear.
func (mr *MockRepositoryMockRecorder) Clear(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Clear", reflect.TypeOf((*MockRepository)(nil).Clear), ctx, userID)
}

// GetItems mocks base method.
func (m *MockRepository) GetItems(ctx context.Context, userID int64) ([]entities.CartItem, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetItems", ctx, userID)
	ret0, _ := ret[0].([]entities.CartItem)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetItems indicates an expected call of GetItems.
func (mr *MockRepositoryMockRecorder) GetItems(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetItems", reflect.TypeOf((*MockRepository)(nil).GetItems), ctx, userID)
}

// RemoveItem mocks base method.
func (m *MockRepository) RemoveItem(ctx context.Context, userID, productID, variantID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveItem", ctx, userID, productID, variantID)
	ret0, _ := ret[0].(error)
	return ret0
}

// RemoveItem indicates an expected call of RemoveItem.
func (mr *MockRepositoryMockRecorder) RemoveItem(ctx, userID, productID, variantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveItem", reflect.TypeOf((*MockRepository)(nil).RemoveItem), ctx, userID, productID, variantID)
}

// UpdateQuantity mocks base method.
func (m *MockRepository) UpdateQuantity(ctx context.Context, userID, productID, variantID int64, quantity int32) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateQuantity", ctx, userID, productID, variantID, quantity)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateQuantity indicates an expected call of UpdateQuantity.
func (mr *MockRepositoryMockRecorder) UpdateQuantity(ctx, userID, productID, variantID, quantity any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateQuantity", reflect.TypeOf((*MockRepository)(nil).UpdateQuantity), ctx, userID, productID, variantID, quantity)
}

// UpsertItem mocks base method.
func (m *MockRepository) UpsertItem(ctx context.Context, userID, productID, variantID int64, quantity int32, unitPrice int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertItem", ctx, userID, productID, variantID, quantity, unitPrice)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpsertItem indicates an expected call of UpsertItem.
func (mr *MockRepositoryMockRecorder) UpsertItem(ctx, userID, productID, variantID, quantity, unitPrice any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertItem", reflect.TypeOf((*MockRepository)(nil).UpsertItem), ctx, userID, productID, variantID, quantity, unitPrice)
}

// MockVariantReader is a mock of VariantReader interface.
type MockVariantReader struct {
	ctrl     *gomock.Controller
	recorder *MockVariantReaderMockRecorder
	isgomock struct{}
}

// MockVariantReaderMockRecorder is the mock recorder for MockVariantReader.
type MockVariantReaderMockRecorder struct {
	mock *MockVariantReader
}

// NewMockVariantReader creates a new mock instance.
func NewMockVariantReader(ctrl *gomock.Controller) *MockVariantReader {
	mock := &MockVariantReader{ctrl: ctrl}
	mock.recorder = &MockVariantReaderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockVariantReader) EXPECT() *MockVariantReaderMockRecorder {
	return m.recorder
}

// GetVariant mocks base method.
func (m *MockVariantReader) GetVariant(ctx context.Context, variantID int64) (*entities.Variant, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetVariant", ctx, variantID)
	ret0, _ := ret[0].(*entities.Variant)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetVariant indicates an expected call of GetVariant.
func (mr *MockVariantReaderMockRecorder) GetVariant(ctx, variantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetVariant", reflect.TypeOf((*MockVariantReader)(nil).GetVariant), ctx, variantID)
}

// MockTxManager is a mock of TxManager interface.
type MockTxManager struct {
	ctrl     *gomock.Controller
	recorder *MockTxManagerMockRecorder
	isgomock struct{}
}

// MockTxManagerMockRecorder is the mock recorder for MockTxManager.
type MockTxManagerMockRecorder struct {
	mock *MockTxManager
}

// NewMockTxManager creates a new mock instance.
func NewMockTxManager(ctrl *gomock.Controller) *MockTxManager {
	mock := &MockTxManager{ctrl: ctrl}
	mock.recorder = &MockTxManagerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTxManager) EXPECT() *MockTxManagerMockRecorder {
	return m.recorder
}

// Do mocks base method.
func (m *MockTxManager) Do(ctx context.Context, fn func(context.Context) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Do", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// Do indicates an expected call of Do.
func (mr *MockTxManagerMockRecorder) Do(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Do", reflect.TypeOf((*MockTxManager)(nil).Do), ctx, fn)
}
