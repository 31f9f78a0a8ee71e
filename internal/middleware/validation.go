package middleware

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/yigit/coursehub/internal/app/models/dto"
)

// BindJSON binds and validates the request body into obj.
// On failure it writes a 400 response and returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		abortValidation(c, err)
		return false
	}
	return true
}

// BindOptionalJSON is BindJSON for endpoints whose fields are all optional: an empty body is valid.
func BindOptionalJSON(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(obj)
	}
	if err != nil {
		abortValidation(c, err)
		return false
	}
	return true
}

func abortValidation(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
}
