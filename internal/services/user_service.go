package services

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"shoply/internal/apperr"
	"shoply/internal/domain"
	"shoply/internal/repos"
	"shoply/internal/validate"
)

type UserService struct {
	Users *repos.UserRepo
}

func NewUserService(users *repos.UserRepo) *UserService {
	return &UserService{Users: users}
}

func (s *UserService) ListUsers(p repos.ListParams) (Page[domain.UserProfile], error) {
	return listPage(s.Users.Count, s.Users.List, p)
}

func (s *UserService) GetUser(id string) (*domain.UserProfile, error) {
	u, err := s.Users.Get(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.New(apperr.Unprocessable, "Unknown user")
	}
	return &domain.UserProfile{ID: u.ID, Name: u.Name, Email: u.Email}, nil
}

func (s *UserService) CreateUser(name, email, password string) (*domain.UserProfile, error) {
	email, ok := validate.Email(email)
	if !ok {
		return nil, apperr.New(apperr.Validation, "invalid email address")
	}
	if !validate.Password(password) {
		return nil, apperr.New(apperr.Validation, "password does not meet the policy")
	}
	if err := s.ensureEmailFree(email, ""); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, err
	}
	u := domain.User{ID: uuid.NewString(), Name: name, Email: email, Hash: string(hash)}
	if err := s.Users.Create(u); err != nil {
		return nil, apperr.New(apperr.Unprocessable, "Failed to create user")
	}
	return &domain.UserProfile{ID: u.ID, Name: u.Name, Email: u.Email}, nil
}

func (s *UserService) UpdateUser(id, name, email string) (*domain.UserProfile, error) {
	email, ok := validate.Email(email)
	if !ok {
		return nil, apperr.New(apperr.Validation, "invalid email address")
	}
	if _, err := s.GetUser(id); err != nil {
		return nil, err
	}
	if err := s.ensureEmailFree(email, id); err != nil {
		return nil, err
	}
	if err := s.Users.Update(id, name, email); err != nil {
		return nil, apperr.New(apperr.Unprocessable, "Failed to update user")
	}
	return &domain.UserProfile{ID: id, Name: name, Email: email}, nil
}

func (s *UserService) ChangePassword(id, oldPassword, newPassword string) error {
	u, err := s.Users.Get(id)
	if err != nil {
		return err
	}
	if u == nil {
		return apperr.New(apperr.Unprocessable, "Unknown user")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(oldPassword)) != nil {
		return apperr.New(apperr.InvalidCredentials, "Wrong password")
	}
	if !validate.Password(newPassword) {
		return apperr.New(apperr.Validation, "password does not meet the policy")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), 12)
	if err != nil {
		return err
	}
	if err := s.Users.UpdatePassword(id, string(hash)); err != nil {
		return apperr.New(apperr.Unprocessable, "Failed to change password")
	}
	return nil
}

func (s *UserService) DeleteUser(id string) error {
	ok, err := s.Users.Delete(id)
	if err != nil || !ok {
		return apperr.New(apperr.Unprocessable, "Failed to delete user")
	}
	return nil
}

func (s *UserService) ensureEmailFree(email, selfID string) error {
	existing, err := s.Users.ByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return apperr.New(apperr.EmailTaken, "Email is already registered")
	}
	return nil
}
