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

func tourService(c *gin.Context) services.TourService {
	return services.TourService{
		Repo:      repositories.TourRepository{},
		Comments:  repositories.CommentRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/tours
func GetTours(c *gin.Context) {
	tours, err := tourService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tours": tours})
}

// GET /api/tours/:id
func GetTourByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid tour id", err)
		return
	}

	tour, err := tourService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tour": tour})
}

type tourRequest struct {
	Name           string   `json:"name"`
	Location       string   `json:"location"`
	Price          int64    `json:"price"`
	Duration       string   `json:"duration"`
	Overview       string   `json:"overview"`
	CoverImage     string   `json:"coverImage"`
	AvailableDates []string `json:"availableDates"`
}

// POST /api/tours (admin)
func CreateTour(c *gin.Context) {
	var req tourRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	tour, err := tourService(c).Create(models.Tour{
		Name:           req.Name,
		Location:       req.Location,
		Price:          req.Price,
		Duration:       req.Duration,
		Overview:       req.Overview,
		CoverImage:     req.CoverImage,
		AvailableDates: req.AvailableDates,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"tour": tour})
}

// PUT /api/tours/:id (admin)
func UpdateTour(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid tour id", err)
		return
	}

	var req tourRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	tour, err := tourService(c).Update(models.Tour{
		ID:             id,
		Name:           req.Name,
		Location:       req.Location,
		Price:          req.Price,
		Duration:       req.Duration,
		Overview:       req.Overview,
		CoverImage:     req.CoverImage,
		AvailableDates: req.AvailableDates,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tour": tour})
}

// DELETE /api/tours/:id (admin)
func DeleteTour(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid tour id", err)
		return
	}

	if err := tourService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tour deleted"})
}

type addDateRequest struct {
	Date string `json:"date"`
}

// POST /api/tours/:id/dates (admin)
func AddTourDate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid tour id", err)
		return
	}

	var req addDateRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	tour, err := tourService(c).AddAvailableDate(id, req.Date)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tour": tour})
}
