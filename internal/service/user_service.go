package service

import (
	"context"
	"errors"

	"ai-studybuddy-be/internal/dto"
	"ai-studybuddy-be/internal/entity"
	"ai-studybuddy-be/internal/pkg/logger"
	"ai-studybuddy-be/internal/repository/specification"
	"ai-studybuddy-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error)
	ChangePassword(ctx context.Context, userId uuid.UUID, req *dto.ChangePasswordRequest) error
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) IUserService {
	return &userService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}
	return toProfileResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	// Only supplied fields change.
	if req.DisplayName != nil {
		user.DisplayName = req.DisplayName
	}
	if req.Gender != nil {
		user.Gender = req.Gender
	}
	if req.MobileNumber != nil {
		user.MobileNumber = req.MobileNumber
	}
	if req.Email != nil {
		user.Email = req.Email
	}
	if req.College != nil {
		user.College = req.College
	}
	if req.EnrollmentId != nil {
		user.EnrollmentId = req.EnrollmentId
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user", "profile updated", map[string]interface{}{"user_id": userId.String()})
	return toProfileResponse(user), nil
}

func (s *userService) ChangePassword(ctx context.Context, userId uuid.UUID, req *dto.ChangePasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return errors.New("Passwords do not match")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return errors.New("Old password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return uow.UserRepository().UpdatePassword(ctx, userId, string(hash))
}

func toProfileResponse(user *entity.User) *dto.UserProfileResponse {
	res := &dto.UserProfileResponse{
		Id:        user.Id,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
	if user.DisplayName != nil {
		res.DisplayName = *user.DisplayName
	}
	if user.Gender != nil {
		res.Gender = *user.Gender
	}
	if user.MobileNumber != nil {
		res.MobileNumber = *user.MobileNumber
	}
	if user.Email != nil {
		res.Email = *user.Email
	}
	if user.College != nil {
		res.College = *user.College
	}
	if user.EnrollmentId != nil {
		res.EnrollmentId = *user.EnrollmentId
	}
	if user.Bio != nil {
		res.Bio = *user.Bio
	}
	if user.AvatarURL != nil {
		res.AvatarURL = *user.AvatarURL
	}
	return res
}
