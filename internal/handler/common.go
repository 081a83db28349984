package handler

import (
	"net/http"

	"crm/internal/middleware"
	"crm/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// RegisterValidators adds the custom binding tags used by the request types.
// It must run before the router serves requests.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		log.Warn("gin validator engine is not go-playground/validator; custom tags unavailable")
		return
	}
	if err := v.RegisterValidation("stage", validateStage); err != nil {
		log.WithError(err).Fatal("failed to register stage validator")
	}
}

func validateStage(fl validator.FieldLevel) bool {
	return model.Stage(fl.Field().String()).Valid()
}

// currentUserID reads the id set by the auth middleware and answers 401 when absent.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return uuid.Nil, false
	}
	return userID, true
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

func serverError(c *gin.Context, err error, msg string) {
	log.WithError(err).WithField("path", c.FullPath()).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
