package services

import (
	"errors"
	"fmt"

	"github.com/Katrinaqr/menu-RestApi/internal/models"
	"github.com/Katrinaqr/menu-RestApi/internal/validation"
	"gorm.io/gorm"
)

// UserService manages accounts. Registration collects every validation
// and uniqueness failure for a submission instead of stopping at the
// first one.
type UserService interface {
	Register(name, email, password string) (*models.User, []validation.FieldError, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	// EnsureOwner creates the initial owner account when the users table
	// is empty. Owner and admin roles are only provisioned this way,
	// never through registration.
	EnsureOwner(name, email, password string) error
}

type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) Register(name, email, password string) (*models.User, []validation.FieldError, error) {
	fieldErrs := validation.ValidateRegistration(name, email, password)

	var count int64
	if err := s.db.Model(&models.User{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, nil, err
	}
	if count > 0 {
		fieldErrs = append(fieldErrs, validation.FieldError{
			Message: fmt.Sprintf("%s already exists. Name must be unique.", name),
		})
	}
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, nil, err
	}
	if count > 0 {
		fieldErrs = append(fieldErrs, validation.FieldError{
			Message: fmt.Sprintf("%s already exists. Email must be unique.", email),
		})
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	user := &models.User{Name: name, Email: email, Role: models.RoleUser}
	if err := user.SetPassword(password); err != nil {
		return nil, nil, err
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, nil, err
	}
	return user, nil, nil
}

func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) EnsureOwner(name, email, password string) error {
	var count int64
	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	owner := &models.User{Name: name, Email: email, Role: models.RoleOwner}
	if err := owner.SetPassword(password); err != nil {
		return err
	}
	if err := s.db.Create(owner).Error; err != nil {
		return errors.New("failed to create initial owner account: " + err.Error())
	}
	return nil
}
