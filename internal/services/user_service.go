package services

import (
	"recruitpro_backend/internal/apperrors"
	"recruitpro_backend/internal/auth"
	"recruitpro_backend/internal/email"
	"recruitpro_backend/internal/logger"
	"recruitpro_backend/internal/models"
	"recruitpro_backend/internal/repositories"
	"recruitpro_backend/internal/services/dto"
)

type UserService interface {
	Create(req *dto.CreateUserRequest) (*models.User, error)
	Search(criteria, value string) (*dto.UserResponse, error)
	Update(recruiterID string, req *dto.UpdateUserRequest) (*models.User, error)
	Delete(recruiterID string) error
	ResetPassword(recruiterID, newPassword string) error
	GetActiveLeads(recruiterID string) ([]models.AssignedLead, error)
	GetInactiveLeads(recruiterID string) ([]models.AssignedLead, error)
	ListRecruiters() ([]models.User, error)
}

type UserServiceImpl struct {
	userRepo     repositories.UserRepository
	assignedRepo repositories.AssignedLeadRepository
	notifier     email.Notifier
}

func NewUserService(
	userRepo repositories.UserRepository,
	assignedRepo repositories.AssignedLeadRepository,
	notifier email.Notifier,
) UserService {
	return &UserServiceImpl{
		userRepo:     userRepo,
		assignedRepo: assignedRepo,
		notifier:     notifier,
	}
}

func (s *UserServiceImpl) Create(req *dto.CreateUserRequest) (*models.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		FullName:      req.FullName,
		MobileNumber:  req.MobileNumber,
		City:          req.City,
		Qualification: req.Qualification,
		Type:          models.UserType(req.Type),
		RecruiterID:   req.RecruiterID,
		PasswordHash:  hash,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrRecruiterExists
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Email != "" {
		if err := s.notifier.SendCredentials(req.Email, user.FullName, user.RecruiterID); err != nil {
			logger.Warn("failed to send credentials email", "recruiter_id", user.RecruiterID, "error", err)
		}
	}

	return user, nil
}

// Search looks up one recruiter by an allow-listed criteria name and
// expands the three lead-reference lists into full records.
func (s *UserServiceImpl) Search(criteria, value string) (*dto.UserResponse, error) {
	column, ok := repositories.UserSearchColumns[criteria]
	if !ok {
		return nil, apperrors.ErrInvalidCriteria.WithDetails(map[string]interface{}{
			"criteria": criteria,
		})
	}

	user, err := s.userRepo.FindByColumn(column, value)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrRecruiterNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return s.buildUserResponse(user)
}

func (s *UserServiceImpl) buildUserResponse(user *models.User) (*dto.UserResponse, error) {
	assigned, err := s.assignedRepo.FindByIDs(user.AssignedLeadIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	active, err := s.assignedRepo.FindByIDs(user.ActiveLeadIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	inactive, err := s.assignedRepo.FindByIDs(user.InactiveLeadIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.UserResponse{
		User:          *user,
		AssignedLeads: assigned,
		ActiveLeads:   active,
		InactiveLeads: inactive,
	}, nil
}

func (s *UserServiceImpl) Update(recruiterID string, req *dto.UpdateUserRequest) (*models.User, error) {
	updates := map[string]interface{}{}
	if req.FullName != "" {
		updates["full_name"] = req.FullName
	}
	if req.MobileNumber != "" {
		updates["mobile_number"] = req.MobileNumber
	}
	if req.City != "" {
		updates["city"] = req.City
	}
	if req.Qualification != "" {
		updates["qualification"] = req.Qualification
	}
	if req.Type != "" {
		updates["type"] = req.Type
	}

	user, err := s.userRepo.UpdateProfile(recruiterID, updates)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrRecruiterNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) Delete(recruiterID string) error {
	if err := s.userRepo.Delete(recruiterID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrRecruiterNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UserServiceImpl) ResetPassword(recruiterID, newPassword string) error {
	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(recruiterID, hash); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrRecruiterNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UserServiceImpl) GetActiveLeads(recruiterID string) ([]models.AssignedLead, error) {
	user, err := s.findRecruiter(recruiterID)
	if err != nil {
		return nil, err
	}
	leads, err := s.assignedRepo.FindByIDs(user.ActiveLeadIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return leads, nil
}

func (s *UserServiceImpl) GetInactiveLeads(recruiterID string) ([]models.AssignedLead, error) {
	user, err := s.findRecruiter(recruiterID)
	if err != nil {
		return nil, err
	}
	leads, err := s.assignedRepo.FindByIDs(user.InactiveLeadIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return leads, nil
}

func (s *UserServiceImpl) ListRecruiters() ([]models.User, error) {
	recruiters, err := s.userRepo.FindRecruiters()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return recruiters, nil
}

func (s *UserServiceImpl) findRecruiter(recruiterID string) (*models.User, error) {
	user, err := s.userRepo.FindByRecruiterID(recruiterID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrRecruiterNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
