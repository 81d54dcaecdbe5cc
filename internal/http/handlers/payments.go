package handlers

import (
	"net/http"

	"tourism/internal/http/middleware"
	"tourism/internal/payment"
	"tourism/internal/repositories"
	"tourism/internal/services"

	"github.com/gin-gonic/gin"
)

func paymentService(c *gin.Context) services.PaymentService {
	reqID := middleware.GetRequestID(c)
	return services.PaymentService{
		TourRepo:    repositories.TourRepository{},
		BookingRepo: repositories.BookingRepository{},
		Gateway: payment.Client{
			KeyID:     deps.Env.RazorpayKeyID,
			KeySecret: deps.Env.RazorpayKeySecret,
		},
		KeySecret: deps.Env.RazorpayKeySecret,
		Notifier:  dispatcher(c),
		RequestID: reqID,
	}
}

type createOrderRequest struct {
	TourID         int64 `json:"tourId"`
	NumberOfPeople int   `json:"numberOfPeople"`
}

// POST /api/payments/create-order
func CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	quote, err := paymentService(c).CreateOrder(c.Request.Context(), req.TourID, req.NumberOfPeople)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// POST /api/payments/verify
//
// The gateway callback: verify the signature, validate travelers, create the
// booking exactly once per (orderId, paymentId). A retried callback returns
// the original booking with alreadyProcessed=true.
func VerifyPayment(c *gin.Context) {
	user, ok := middleware.GetAuthUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required", nil)
		return
	}

	var cb services.CallbackRequest
	if !BindJSONOrError(c, &cb) {
		return
	}

	booking, created, err := paymentService(c).ConfirmPayment(cb, services.Requester{
		UserID:   user.UserID,
		FullName: user.FullName,
		Email:    user.Email,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	resp := gin.H{
		"success":   true,
		"message":   "Booking confirmed!",
		"bookingId": booking.ID,
	}
	if !created {
		resp["alreadyProcessed"] = true
	}
	c.JSON(http.StatusOK, resp)
}
