package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher 密码单向哈希
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}

// TokenIssuer 签发并解析 bearer token
type TokenIssuer interface {
	Issue(userID uint) (string, time.Time, error)
	Parse(token string) (uint, error)
}

// BcryptHasher bcrypt 实现
type BcryptHasher struct {
	Cost int
}

// NewBcryptHasher 创建 bcrypt 哈希器，cost 越界时回退默认值
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{Cost: cost}
}

// Hash 使用 bcrypt 加密密码
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify 验证密码
func (h *BcryptHasher) Verify(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// UserJWTClaims 用户 JWT 声明
type UserJWTClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// JWTIssuer HS256 JWT 实现
type JWTIssuer struct {
	secret      []byte
	expireHours int
	now         func() time.Time
}

// NewJWTIssuer 创建 JWT 签发器
func NewJWTIssuer(secret string, expireHours int) *JWTIssuer {
	if expireHours <= 0 {
		expireHours = 24
	}
	return &JWTIssuer{secret: []byte(secret), expireHours: expireHours, now: time.Now}
}

// Issue 生成用户 JWT Token
func (i *JWTIssuer) Issue(userID uint) (string, time.Time, error) {
	now := i.now()
	expiresAt := now.Add(time.Duration(i.expireHours) * time.Hour)
	claims := UserJWTClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Parse 解析用户 JWT Token，返回用户 ID
func (i *JWTIssuer) Parse(tokenString string) (uint, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
	)
	claims := &UserJWTClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return i.secret, nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !token.Valid || claims.UserID == 0 {
		return 0, ErrTokenInvalid
	}
	return claims.UserID, nil
}
