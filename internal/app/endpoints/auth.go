package endpoints

import (
	"context"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/itinerary-planner-service/internal/app/dto"
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.RegisterResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Logout(ctx context.Context, req dto.LogoutRequest) error
	CurrentUser(ctx context.Context, req dto.CurrentUserRequest) (dto.User, error)
}

type AuthEndpoint struct {
	Register    endpoint.Endpoint
	Login       endpoint.Endpoint
	Logout      endpoint.Endpoint
	CurrentUser endpoint.Endpoint
}

func MakeAuthEndpoint(service AuthService) AuthEndpoint {
	return AuthEndpoint{
		Register:    makeRegisterEndpoint(service),
		Login:       makeLoginEndpoint(service),
		Logout:      makeLogoutEndpoint(service),
		CurrentUser: makeCurrentUserEndpoint(service),
	}
}

func makeRegisterEndpoint(service AuthService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.RegisterRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		resp, err := service.Register(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("auth service: %w", err)
		}

		return resp, nil
	}
}

func makeLoginEndpoint(service AuthService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.LoginRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		resp, err := service.Login(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("auth service: %w", err)
		}

		return resp, nil
	}
}

func makeLogoutEndpoint(service AuthService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.LogoutRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		if err := service.Logout(ctx, *request); err != nil {
			return nil, fmt.Errorf("auth service: %w", err)
		}

		return nil, nil
	}
}

func makeCurrentUserEndpoint(service AuthService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.CurrentUserRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		user, err := service.CurrentUser(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("auth service: %w", err)
		}

		return user, nil
	}
}
