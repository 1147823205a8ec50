package public

import (
	"time"

	"github.com/sneaker-store/internal/http/response"
	"github.com/sneaker-store/internal/i18n"
	"github.com/sneaker-store/internal/models"
	"github.com/sneaker-store/internal/service"

	"github.com/gin-gonic/gin"
)

// UserRegisterRequest 注册请求
type UserRegisterRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
}

// UserLoginRequest 登录请求
type UserLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest 更新资料请求，其余字段忽略
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
}

// AuthResponse 注册/登录响应
type AuthResponse struct {
	Message     string       `json:"message"`
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        *models.User `json:"user"`
}

// ProfileUpdatedResponse 资料更新响应
type ProfileUpdatedResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

// UserRegister 用户注册
func (h *Handler) UserRegister(c *gin.Context) {
	var req UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	result, err := h.UserAuthService.Register(c.Request.Context(), service.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	requestLog(c).Infow("user_registered", "user_id", result.User.ID)
	response.Created(c, AuthResponse{
		Message:     i18n.T(i18n.ResolveLocale(c), "success.registered"),
		AccessToken: result.Token,
		ExpiresAt:   result.ExpiresAt,
		User:        result.User,
	})
}

// UserLogin 用户登录
func (h *Handler) UserLogin(c *gin.Context) {
	var req UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	result, err := h.UserAuthService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	response.Success(c, AuthResponse{
		Message:     i18n.T(i18n.ResolveLocale(c), "success.logged_in"),
		AccessToken: result.Token,
		ExpiresAt:   result.ExpiresAt,
		User:        result.User,
	})
}

// GetProfile 获取当前用户资料
func (h *Handler) GetProfile(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	user, err := h.UserAuthService.GetProfile(c.Request.Context(), uid)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	response.Success(c, user)
}

// UpdateProfile 更新当前用户资料
func (h *Handler) UpdateProfile(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	user, err := h.UserAuthService.UpdateProfile(c.Request.Context(), uid, service.ProfilePatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	response.Success(c, ProfileUpdatedResponse{
		Message: i18n.T(i18n.ResolveLocale(c), "success.profile_updated"),
		User:    user,
	})
}
