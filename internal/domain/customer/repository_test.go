package customer

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (_m *MockCustomerRepository) FindAll(ctx context.Context) ([]*CustomerEntity, error) {
	ret := _m.Called(ctx)

	var r0 []*CustomerEntity
	if rf, ok := ret.Get(0).(func(context.Context) []*CustomerEntity); ok {
		r0 = rf(ctx)
	} else {

		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*CustomerEntity)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockCustomerRepository) FindByID(ctx context.Context, customerID uuid.UUID) (*CustomerEntity, error) {
	ret := _m.Called(ctx, customerID)

	var r0 *CustomerEntity
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *CustomerEntity); ok {
		r0 = rf(ctx, customerID)
	} else {

		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*CustomerEntity)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, customerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockCustomerRepository) FindByEmailAddress(ctx context.Context, emailAddress string) (*CustomerEntity, error) {
	ret := _m.Called(ctx, emailAddress)

	var r0 *CustomerEntity
	if rf, ok := ret.Get(0).(func(context.Context, string) *CustomerEntity); ok {
		r0 = rf(ctx, emailAddress)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*CustomerEntity)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, emailAddress)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockCustomerRepository) Save(ctx context.Context, entity *CustomerEntity) (*CustomerEntity, error) {
	ret := _m.Called(ctx, entity)

	var r0 *CustomerEntity
	if rf, ok := ret.Get(0).(func(context.Context, *CustomerEntity) *CustomerEntity); ok {
		r0 = rf(ctx, entity)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*CustomerEntity)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *CustomerEntity) error); ok {
		r1 = rf(ctx, entity)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockCustomerRepository) DeleteByID(ctx context.Context, customerID uuid.UUID) error {
	ret := _m.Called(ctx, customerID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) error); ok {
		r0 = rf(ctx, customerID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

var _ CustomerRepository = (*MockCustomerRepository)(nil)
