package handlers

import (
	"net/http"
	"strconv"

	"tourism/internal/domain/models"
	"tourism/internal/http/middleware"
	"tourism/internal/repositories"
	"tourism/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/bookings/my
func GetMyBookings(c *gin.Context) {
	user, ok := middleware.GetAuthUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required", nil)
		return
	}

	bookings, err := repositories.BookingRepository{}.ListByUser(user.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GET /api/admin/bookings?tour=ID
func GetBookingsByTour(c *gin.Context) {
	tourID, err := strconv.ParseInt(c.Query("tour"), 10, 64)
	if err != nil || tourID <= 0 {
		RespondError(c, http.StatusBadRequest, "tour query parameter is required", err)
		return
	}

	bookings, err := repositories.BookingRepository{}.ListByTour(tourID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GET /api/bookings/:id/voucher
func GetBookingVoucher(c *gin.Context) {
	user, ok := middleware.GetAuthUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required", nil)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid booking id", err)
		return
	}

	repo := repositories.BookingRepository{}
	booking, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if booking.UserID != user.UserID && user.Role != models.RoleAdmin {
		RespondError(c, http.StatusForbidden, "this booking belongs to another account", nil)
		return
	}

	svc := services.DocsService{
		BookingRepo: repo,
		QRSecret:    deps.Env.JWTSecret,
		RequestID:   middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.GenerateVoucher(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
