package handlers

import (
	"net/http"
	"strings"
	"time"

	"tourism/internal/auth"
	"tourism/internal/domain"
	"tourism/internal/domain/models"
	"tourism/internal/http/middleware"
	"tourism/internal/repositories"
	"tourism/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.FullName == "" || req.Email == "" || len(req.Password) < 6 {
		RespondError(c, http.StatusBadRequest, "fullName, email and a password of at least 6 characters are required", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to hash password", err)
		return
	}

	repo := repositories.UserRepository{}
	user, err := repo.Insert(models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": publicUser(user)})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.UserRepository{}
	user, err := repo.GetByEmail(req.Email)
	if err != nil {
		if domain.IsNotFound(err) {
			RespondError(c, http.StatusUnauthorized, "incorrect email or password", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		RespondError(c, http.StatusUnauthorized, "incorrect email or password", nil)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   user.ID,
		"full_name": user.FullName,
		"email":     user.Email,
		"role":      user.Role,
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(deps.Env.JWTSecret))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to sign token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tokenString,
		"user":  publicUser(user),
	})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// POST /api/auth/forgot-password
func ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.UserRepository{}
	user, err := repo.GetByEmail(req.Email)
	if err != nil {
		if domain.IsNotFound(err) {
			RespondError(c, http.StatusNotFound, "email not found", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}

	otp := auth.GenerateOTP(6)
	if err := deps.OTPStore.Put(c.Request.Context(), user.Email, otp, auth.OTPTTL); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to store OTP", err)
		return
	}

	d := dispatcher(c)
	go d.PasswordResetOTP(user.Email, otp)

	utils.LogEvent(middleware.GetRequestID(c), "auth", "forgot_password", "otp issued for "+user.Email)
	c.JSON(http.StatusOK, gin.H{"message": "OTP sent to your email"})
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// POST /api/auth/reset-password
func ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if len(req.NewPassword) < 6 {
		RespondError(c, http.StatusBadRequest, "new password must be at least 6 characters", nil)
		return
	}

	stored, err := deps.OTPStore.Get(c.Request.Context(), req.Email)
	switch err {
	case nil:
	case auth.ErrOTPNotFound:
		RespondError(c, http.StatusBadRequest, "no OTP requested", nil)
		return
	case auth.ErrOTPExpired:
		RespondError(c, http.StatusBadRequest, "OTP expired", nil)
		return
	default:
		RespondError(c, http.StatusInternalServerError, "failed to check OTP", err)
		return
	}

	if req.OTP != stored {
		RespondError(c, http.StatusBadRequest, "invalid OTP", nil)
		return
	}

	repo := repositories.UserRepository{}
	user, err := repo.GetByEmail(req.Email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to hash password", err)
		return
	}
	if err := repo.UpdatePasswordHash(user.ID, string(hash)); err != nil {
		RespondDomainError(c, err)
		return
	}

	_ = deps.OTPStore.Delete(c.Request.Context(), req.Email)

	utils.LogEvent(middleware.GetRequestID(c), "auth", "reset_password", "password reset for "+user.Email)
	c.JSON(http.StatusOK, gin.H{"message": "password reset successfully"})
}

func publicUser(u models.User) gin.H {
	return gin.H{
		"id":       u.ID,
		"fullName": u.FullName,
		"email":    u.Email,
		"role":     u.Role,
	}
}
