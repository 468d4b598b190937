package service

import (
	"errors"

	"gorm.io/gorm"

	"cureon/internal/models"
	"cureon/internal/repository"
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
	ErrNotADoctor    = errors.New("user is not a doctor")
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) CreateUser(user *models.User) error {
	_, err := s.userRepo.FindByUsername(user.Username)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.userRepo.Create(user)
}

func (s *UserService) GetUserByUsername(username string) (*models.User, error) {
	return s.userRepo.FindByUsername(username)
}

func (s *UserService) GetUser(id uint) (*models.User, error) {
	return s.userRepo.FindByID(id)
}

// GetDoctors lists all doctor accounts for patient-side discovery.
func (s *UserService) GetDoctors() ([]models.User, error) {
	return s.userRepo.FindDoctors()
}

// GetDoctor returns the doctor with the given id, rejecting non-doctor
// accounts so patients cannot probe other users through this endpoint.
func (s *UserService) GetDoctor(id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleDoctor {
		return nil, ErrNotADoctor
	}
	return user, nil
}
