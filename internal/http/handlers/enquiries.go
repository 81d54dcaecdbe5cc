package handlers

import (
	"net/http"

	"tourism/internal/domain/models"
	"tourism/internal/http/middleware"
	"tourism/internal/repositories"
	"tourism/internal/services"

	"github.com/gin-gonic/gin"
)

func enquiryService(c *gin.Context) services.EnquiryService {
	return services.EnquiryService{
		Repo:      repositories.EnquiryRepository{},
		Notifier:  dispatcher(c),
		RequestID: middleware.GetRequestID(c),
	}
}

type enquiryRequest struct {
	Phone          string `json:"phone"`
	TourName       string `json:"tourName"`
	NumberOfPeople int    `json:"numberOfPeople"`
	PreferredDate  string `json:"preferredDate"`
	Message        string `json:"message"`
}

// POST /api/enquiries
func CreateEnquiry(c *gin.Context) {
	user, ok := middleware.GetAuthUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required", nil)
		return
	}

	var req enquiryRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	enquiry, err := enquiryService(c).Create(models.Enquiry{
		UserID:         user.UserID,
		FullName:       user.FullName,
		Email:          user.Email,
		Phone:          req.Phone,
		TourName:       req.TourName,
		NumberOfPeople: req.NumberOfPeople,
		PreferredDate:  req.PreferredDate,
		Message:        req.Message,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"enquiry": enquiry})
}

// GET /api/admin/enquiries
func GetEnquiries(c *gin.Context) {
	enquiries, err := enquiryService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enquiries": enquiries})
}
