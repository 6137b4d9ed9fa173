package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"wavetags.link/configs"
	"wavetags.link/configs/configslog"
	"wavetags.link/models"
	"wavetags.link/repositories"
)

// AuthServiceError özel servis hataları
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrInvalidCredentials AuthServiceError = "Invalid email or password"
	ErrTokenInvalid       AuthServiceError = "Not authorized, token failed"
	ErrTokenMissing       AuthServiceError = "Not authorized, no token"
	ErrTokenRevoked       AuthServiceError = "You must be logged in - Invalid token"
	ErrTokenExpired       AuthServiceError = "Token has already expired. Please log in again."
	ErrAuthUserNotFound   AuthServiceError = "Unauthorized - User not found"
)

// TokenLifetime access token geçerlilik süresi.
const TokenLifetime = time.Hour

// AccessClaims access token içinde taşınan claim'ler.
type AccessClaims struct {
	UserID uint `json:"userId"`
	jwt.RegisteredClaims
}

// IAuthService kimlik doğrulama işlemleri için arayüz.
type IAuthService interface {
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	// Logout token'ı kalan ömrü boyunca geçersiz kılar (denylist).
	Logout(ctx context.Context, token string) error
	// Refresh süresi dolmuş token için yenisini üretir; dolmamışsa aynen döner.
	Refresh(ctx context.Context, token string) (newToken string, refreshed bool, err error)
	GenerateToken(userID uint) (string, error)
	// VerifyToken imzayı, süreyi ve denylist'i kontrol edip kullanıcıyı çözer.
	VerifyToken(ctx context.Context, token string) (*models.User, error)
}

// AuthService IAuthService arayüzünü uygular.
type AuthService struct {
	userRepo repositories.IUserRepository
	secret   []byte
	// revoked logout edilen token'ları kalan ömürleri boyunca tutar.
	revoked *gocache.Cache
}

// NewAuthService yeni bir AuthService örneği oluşturur.
func NewAuthService() IAuthService {
	return &AuthService{
		userRepo: repositories.NewUserRepository(),
		secret:   configs.GetJWTSecret(),
		revoked:  gocache.New(TokenLifetime, 10*time.Minute),
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user.ID)
	if err != nil {
		configslog.Log.Error("Access token üretilemedi", zap.Uint("user_id", user.ID), zap.Error(err))
		return "", nil, err
	}

	configslog.SLog.Infof("Kullanıcı giriş yaptı: %s (ID %d)", user.Username, user.ID)
	return token, user, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return ErrTokenMissing
	}

	claims, err := s.parseClaims(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrTokenExpired
		}
		return ErrTokenRevoked
	}

	// Token kalan ömrü kadar denylist'te tutulur; sonrası zaten geçersiz.
	ttl := TokenLifetime
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl > 0 {
		s.revoked.Set(token, struct{}{}, ttl)
	}

	configslog.SLog.Infof("Kullanıcı çıkış yaptı: ID %d", claims.UserID)
	return nil
}

func (s *AuthService) Refresh(ctx context.Context, token string) (string, bool, error) {
	if token == "" {
		return "", false, ErrTokenMissing
	}

	claims, err := s.parseClaims(token)
	if err == nil {
		// Süresi dolmamış: aynı token geri döner.
		_ = claims
		return token, false, nil
	}
	if !errors.Is(err, jwt.ErrTokenExpired) {
		return "", false, ErrTokenInvalid
	}

	// Süresi dolmuş ama imzası geçerli: claim'leri doğrulamadan çöz ve yenile.
	expiredClaims := &AccessClaims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, parseErr := parser.ParseWithClaims(token, expiredClaims, s.keyFunc); parseErr != nil {
		return "", false, ErrTokenInvalid
	}

	newToken, genErr := s.GenerateToken(expiredClaims.UserID)
	if genErr != nil {
		return "", false, genErr
	}
	return newToken, true, nil
}

func (s *AuthService) GenerateToken(userID uint) (string, error) {
	now := time.Now().UTC()
	claims := AccessClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *AuthService) VerifyToken(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrTokenMissing
	}
	if _, found := s.revoked.Get(token); found {
		return nil, ErrTokenRevoked
	}

	claims, err := s.parseClaims(token)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAuthUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) parseClaims(token string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

func (s *AuthService) keyFunc(_ *jwt.Token) (interface{}, error) {
	return s.secret, nil
}

var _ IAuthService = (*AuthService)(nil)
