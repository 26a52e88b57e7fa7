package handler

import (
	"context"

	"clinic-agenda/internal/delivery/dto"

	"github.com/stretchr/testify/mock"
)

type mockProfessionalUsecase struct {
	mock.Mock
}

func (m *mockProfessionalUsecase) CreateProfessional(ctx context.Context, req *dto.CreateProfessionalRequest) (*dto.ProfessionalResponse, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*dto.ProfessionalResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfessionalUsecase) GetProfessional(ctx context.Context, id uint) (*dto.ProfessionalResponse, error) {
	args := m.Called(ctx, id)
	if resp := args.Get(0); resp != nil {
		return resp.(*dto.ProfessionalResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfessionalUsecase) ListProfessionals(ctx context.Context, query *dto.ListProfessionalsQuery) (*dto.ProfessionalListResponse, error) {
	args := m.Called(ctx, query)
	if resp := args.Get(0); resp != nil {
		return resp.(*dto.ProfessionalListResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfessionalUsecase) UpdateProfessional(ctx context.Context, id uint, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalResponse, error) {
	args := m.Called(ctx, id, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*dto.ProfessionalResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfessionalUsecase) DeleteProfessional(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockAppointmentUsecase struct {
	mock.Mock
}

func (m *mockAppointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*dto.AppointmentResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAppointmentUsecase) GetAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, id)
	if resp := args.Get(0); resp != nil {
		return resp.(*dto.AppointmentResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAppointmentUsecase) ListAppointments(ctx context.Context, query *dto.ListAppointmentsQuery) (*dto.AppointmentListResponse, error) {
	args := m.Called(ctx, query)
	if resp := args.Get(0); resp != nil {
		return resp.(*dto.AppointmentListResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAppointmentUsecase) UpdateAppointment(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, id, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*dto.AppointmentResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAppointmentUsecase) DeleteAppointment(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
