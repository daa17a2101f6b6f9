package mapper

import (
	"ai-studybuddy-be/internal/entity"
	"ai-studybuddy-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:           u.Id,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		DisplayName:  u.DisplayName,
		Gender:       u.Gender,
		MobileNumber: u.MobileNumber,
		Email:        u.Email,
		College:      u.College,
		EnrollmentId: u.EnrollmentId,
		Bio:          u.Bio,
		AvatarURL:    u.AvatarURL,
		IsCreator:    u.IsCreator,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:           u.Id,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		DisplayName:  u.DisplayName,
		Gender:       u.Gender,
		MobileNumber: u.MobileNumber,
		Email:        u.Email,
		College:      u.College,
		EnrollmentId: u.EnrollmentId,
		Bio:          u.Bio,
		AvatarURL:    u.AvatarURL,
		IsCreator:    u.IsCreator,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}

func (m *UserMapper) ToModels(users []*entity.User) []*model.User {
	models := make([]*model.User, len(users))
	for i, u := range users {
		models[i] = m.ToModel(u)
	}
	return models
}
