package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/middleware"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// currentUserID returns the authenticated caller, answering 403 when there is none.
func currentUserID(ctx *gin.Context) (int64, bool) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return 0, false
	}
	return userID, true
}
