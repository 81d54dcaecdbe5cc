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

func commentService(c *gin.Context) services.CommentService {
	return services.CommentService{
		Repo:      repositories.CommentRepository{},
		TourRepo:  repositories.TourRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/tours/:id/comments
func GetTourComments(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid tour id", err)
		return
	}

	comments, err := commentService(c).ListByTour(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

type commentRequest struct {
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

// POST /api/tours/:id/comments
func CreateComment(c *gin.Context) {
	user, ok := middleware.GetAuthUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required", nil)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid tour id", err)
		return
	}

	var req commentRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	comment, err := commentService(c).Create(models.Comment{
		TourID:   id,
		UserID:   user.UserID,
		FullName: user.FullName,
		Content:  req.Content,
		Rating:   req.Rating,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// DELETE /api/comments/:id
//
// Allowed for the comment's author or an admin.
func DeleteComment(c *gin.Context) {
	user, ok := middleware.GetAuthUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required", nil)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid comment id", err)
		return
	}

	repo := repositories.CommentRepository{}
	comment, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if comment.UserID != user.UserID && user.Role != models.RoleAdmin {
		RespondError(c, http.StatusForbidden, "this comment belongs to another account", nil)
		return
	}

	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}
