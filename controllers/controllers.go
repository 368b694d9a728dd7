package controllers

import (
	"errors"
	"net/http"

	"civicreport-be/models"
	"civicreport-be/notify"
	"civicreport-be/session"
	"civicreport-be/store"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	issueSession *session.Session
	departments  *store.DepartmentStore
	users        *store.UserStore
	feed         *notify.Feed
)

// Setup wires the handler package to its backing state. Called once
// from main and from test setup. Handlers never touch the issue store
// directly; everything goes through the session facade.
func Setup(s *session.Session, d *store.DepartmentStore, u *store.UserStore, f *notify.Feed) {
	issueSession = s
	departments = d
	users = u
	feed = f
}

// RegisterValidations installs the custom binding validations on gin's
// validator engine.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("issuecategory", func(fl validator.FieldLevel) bool {
			return models.IssueCategory(fl.Field().String()).Valid()
		})
	}
}

// writeStoreError maps the typed store errors to HTTP statuses.
func writeStoreError(c *gin.Context, err error) {
	var nf *store.NotFoundError
	var ve *store.ValidationError
	var it *store.InvalidTransitionError
	switch {
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &ve), errors.As(err, &it):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}

func currentUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func currentUserName(c *gin.Context) string {
	if v, exists := c.Get("user_name"); exists {
		if name, ok := v.(string); ok {
			return name
		}
	}
	return ""
}
