package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"regexp"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"wavetags.link/configs/configslog"
	"wavetags.link/models"
	"wavetags.link/repositories"
)

// UserServiceError özel servis hataları
type UserServiceError string

func (e UserServiceError) Error() string { return string(e) }

const (
	ErrUserNotFound       UserServiceError = "User not found"
	ErrUsersNotFound      UserServiceError = "Users not found"
	ErrUserAlreadyExists  UserServiceError = "User already Exists"
	ErrEmailTaken         UserServiceError = "Email already exists"
	ErrUsernameTaken      UserServiceError = "Username already exists"
	ErrUserHashingFailed  UserServiceError = "Password could not be processed"
	ErrUsrInvalidInput    UserServiceError = "Invalid user input"
)

var nonAlnumPattern = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// UserUpdates güncellenebilir kullanıcı alanları; boş alanlar dokunulmaz.
type UserUpdates struct {
	FullName string
	Email    string
	Username string
}

// IUserService kullanıcı işlemleri için arayüz.
type IUserService interface {
	CreateUser(ctx context.Context, email, fullName, password string) (*models.User, error)
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	UpdateUser(ctx context.Context, id uint, updates UserUpdates) (*models.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

// UserService IUserService arayüzünü uygular.
type UserService struct {
	repo repositories.IUserRepository
}

// NewUserService yeni bir UserService örneği oluşturur.
func NewUserService() IUserService {
	return &UserService{repo: repositories.NewUserRepository()}
}

// deriveUsername görünen isimden kullanıcı adı türetir.
// Alfasayısal olmayan karakterler "-" olur, ardışık tireler tekilleşir.
func deriveUsername(fullName string) string {
	return nonAlnumPattern.ReplaceAllString(fullName, "-")
}

func (s *UserService) CreateUser(ctx context.Context, email, fullName, password string) (*models.User, error) {
	if email == "" || fullName == "" || password == "" {
		return nil, ErrUsrInvalidInput
	}

	username := deriveUsername(fullName)

	// Kullanıcı adı çakışıyorsa rastgele sayısal ek alır.
	count, err := s.repo.CountByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		username = fmt.Sprintf("%s%d", username, rand.Intn(5000))
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, ErrUserAlreadyExists
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Parola hashlenemedi", zap.Error(err))
		return nil, ErrUserHashingFailed
	}

	user := models.User{
		Username:     username,
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(hashed),
	}
	if err := s.repo.Create(ctx, &user); err != nil {
		return nil, err
	}

	configslog.SLog.Infof("Kullanıcı oluşturuldu: %s (ID %d)", user.Username, user.ID)
	return &user, nil
}

func (s *UserService) GetUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrUsersNotFound
	}
	return users, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint, updates UserUpdates) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// Benzersiz alan değişiyorsa diğer kayıtlara karşı yeniden kontrol edilir;
	// çakışan alan isimle raporlanır.
	if updates.Email != "" || updates.Username != "" {
		existing, err := s.repo.FindConflicting(ctx, id, updates.Email, updates.Username)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			if updates.Email != "" && existing.Email == updates.Email {
				return nil, ErrEmailTaken
			}
			return nil, ErrUsernameTaken
		}
	}

	if updates.FullName != "" {
		user.FullName = updates.FullName
	}
	if updates.Email != "" {
		user.Email = updates.Email
	}
	if updates.Username != "" {
		user.Username = updates.Username
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

var _ IUserService = (*UserService)(nil)
