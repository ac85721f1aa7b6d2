package services

import (
	"recruitpro_backend/internal/apperrors"
	"recruitpro_backend/internal/auth"
	"recruitpro_backend/internal/repositories"
	"recruitpro_backend/internal/services/dto"
)

type AuthService interface {
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	ResetPassword(email, newPassword string) error
}

type AuthServiceImpl struct {
	adminRepo repositories.AdminRepository
}

func NewAuthService(adminRepo repositories.AdminRepository) AuthService {
	return &AuthServiceImpl{adminRepo: adminRepo}
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := s.adminRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAdminNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, admin.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(admin.ID, "admin")
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Token:   token,
		Message: "Login successful",
	}, nil
}

func (s *AuthServiceImpl) ResetPassword(email, newPassword string) error {
	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.adminRepo.UpdatePassword(email, hash); err != nil {
		if apperrors.Is(err, repositories.ErrAdminNotFound) {
			return apperrors.ErrAdminNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
