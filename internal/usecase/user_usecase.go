package usecase

import (
	"errors"
	"time"

	"storecare-backend/config"
	"storecare-backend/internal/apperror"
	"storecare-backend/internal/model"
	"storecare-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// JWTSecret is shared with the auth middleware so both sides verify against
// the same key.
func JWTSecret() []byte {
	return []byte(config.GetEnv("JWT_SECRET", "dev-only-secret"))
}

func (u *UserService) Register(name, email, password, role string, companyID *uint) error {
	switch role {
	case model.RoleStaff, model.RoleSubcontractIndividual, model.RoleSubcontractCompany,
		model.RoleBusinessOwner, model.RoleStoreManager:
	default:
		return apperror.New(apperror.KindValidation, "Unknown role")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Storage(err, "Failed to hash password")
	}
	user := &model.User{
		Name:      name,
		Email:     email,
		Password:  string(hashed),
		Role:      role,
		CompanyID: companyID,
	}
	if err := u.repo.Create(user); err != nil {
		return apperror.Storage(err, "Failed to create user")
	}
	return nil
}

func (u *UserService) Login(email, password string) (string, *model.User, error) {
	user, err := u.repo.GetByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, apperror.New(apperror.KindUnauthorized, "Invalid email or password")
	}
	if err != nil {
		return "", nil, apperror.Storage(err, "Failed to load user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperror.New(apperror.KindUnauthorized, "Invalid email or password")
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	if user.CompanyID != nil {
		claims["company_id"] = *user.CompanyID
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString(JWTSecret())
	if err != nil {
		return "", nil, apperror.Storage(err, "Failed to sign token")
	}
	return t, user, nil
}
