package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/sneaker-store/internal/cache"
	"github.com/sneaker-store/internal/config"
	"github.com/sneaker-store/internal/logger"
	"github.com/sneaker-store/internal/models"
	"github.com/sneaker-store/internal/repository"
)

// AuthStateCache 用户鉴权快照缓存，*cache.Cache 未启用时读写均为空操作
type AuthStateCache interface {
	GetUserAuthState(ctx context.Context, userID uint) (*cache.UserAuthState, bool, error)
	SetUserAuthState(ctx context.Context, state *cache.UserAuthState) error
}

// UserAuthService 用户认证服务
type UserAuthService struct {
	cfg      *config.Config
	userRepo repository.UserRepository
	hasher   PasswordHasher
	issuer   TokenIssuer
	cache    AuthStateCache

	dummyOnce sync.Once
	dummyHash string
}

// NewUserAuthService 创建用户认证服务
func NewUserAuthService(cfg *config.Config, userRepo repository.UserRepository, hasher PasswordHasher, issuer TokenIssuer, authCache AuthStateCache) *UserAuthService {
	if authCache == nil {
		authCache = cache.New(nil)
	}
	return &UserAuthService{
		cfg:      cfg,
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
		cache:    authCache,
	}
}

// RegisterInput 注册参数
type RegisterInput struct {
	Email     string
	Password  string
	FirstName *string
	LastName  *string
	Phone     *string
}

// ProfilePatch 资料补丁，nil 字段保持不变
type ProfilePatch struct {
	FirstName *string
	LastName  *string
	Phone     *string
}

// AuthResult 注册/登录结果
type AuthResult struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
}

// Register 用户注册
func (s *UserAuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, ErrCredentialsRequired
	}
	if err := validatePassword(s.cfg.Security.PasswordPolicy, input.Password); err != nil {
		return nil, err
	}

	exist, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrEmailExists
	}

	hashedPassword, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hashedPassword,
		FirstName:    normalizeOptional(input.FirstName),
		LastName:     normalizeOptional(input.LastName),
		Phone:        normalizeOptional(input.Phone),
		CreatedAt:    time.Now(),
	}
	if err := s.userRepo.Create(user); err != nil {
		// 并发注册同一邮箱时由唯一索引兜底
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	token, expiresAt, err := s.issuer.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	s.rememberAuthState(ctx, user)

	return &AuthResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// Login 用户登录，未知邮箱与密码错误返回同一错误
func (s *UserAuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrCredentialsRequired
	}
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// 未知邮箱也做一次哈希比对，使两种失败的耗时接近
		_ = s.hasher.Verify(s.dummyPasswordHash(), password)
		return nil, ErrInvalidCredentials
	}
	if err := s.hasher.Verify(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.issuer.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	s.rememberAuthState(ctx, user)

	return &AuthResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// VerifyToken 校验 bearer token 并返回其绑定且仍存在的用户 ID
func (s *UserAuthService) VerifyToken(ctx context.Context, token string) (uint, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, ErrTokenInvalid
	}
	userID, err := s.issuer.Parse(token)
	if err != nil {
		return 0, err
	}

	state, hit, err := s.cache.GetUserAuthState(ctx, userID)
	if err != nil {
		logger.Warnw("auth_state_cache_get_failed", "user_id", userID, "error", err)
	}
	if hit && state != nil {
		return userID, nil
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, ErrTokenInvalid
	}
	s.rememberAuthState(ctx, user)
	return userID, nil
}

// GetProfile 获取用户资料
func (s *UserAuthService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	if userID == 0 {
		return nil, ErrUserNotFound
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile 更新用户资料，仅允许名、姓、电话
func (s *UserAuthService) UpdateProfile(ctx context.Context, userID uint, patch ProfilePatch) (*models.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.FirstName != nil {
		user.FirstName = normalizeOptional(patch.FirstName)
		updates["first_name"] = user.FirstName
	}
	if patch.LastName != nil {
		user.LastName = normalizeOptional(patch.LastName)
		updates["last_name"] = user.LastName
	}
	if patch.Phone != nil {
		user.Phone = normalizeOptional(patch.Phone)
		updates["phone"] = user.Phone
	}
	if err := s.userRepo.UpdateProfile(user.ID, updates); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserAuthService) dummyPasswordHash() string {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash("sneaker-store-dummy-password")
		if err == nil {
			s.dummyHash = hash
		}
	})
	return s.dummyHash
}

func (s *UserAuthService) rememberAuthState(ctx context.Context, user *models.User) {
	if err := s.cache.SetUserAuthState(ctx, cache.BuildUserAuthState(user)); err != nil {
		logger.Warnw("auth_state_cache_set_failed", "user_id", user.ID, "error", err)
	}
}

// normalizeOptional 去除首尾空白，空串视为 NULL
func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
