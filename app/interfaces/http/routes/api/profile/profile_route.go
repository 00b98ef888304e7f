package profile

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/murayeeto/HornetHelper/app/domain/auth"
	"github.com/murayeeto/HornetHelper/app/domain/common"
	"github.com/murayeeto/HornetHelper/app/domain/user"
	"github.com/murayeeto/HornetHelper/app/interfaces/http/responses"
	"github.com/murayeeto/HornetHelper/app/utils/logger"
)

type ProfileRoute struct {
	profileService *user.ProfileService
}

func NewProfileRoute(profileService *user.ProfileService) *ProfileRoute {
	return &ProfileRoute{
		profileService: profileService,
	}
}

func (profileRoute *ProfileRoute) RegisterRouter(router gin.IRouter) {
	userRouter := router.Group("/user")
	userRouter.GET("/profile", profileRoute.GetProfile)
	userRouter.PUT("/major", profileRoute.UpdateMajor)
}

type ProfileResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Major string `json:"major"`
}

type UpdateMajorRequest struct {
	Major string `json:"major" binding:"required"`
}

// GetProfile
// @Summary Get the caller's profile
// @Description Returns the identity resolved by the auth gate for the current request.
// @Tags Profile API
// @Security BearerAuth
// @Produce json
// @Success 200 {object} ProfileResponse "Resolved identity"
// @Failure 401 {object} responses.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} responses.ErrorResponse "Major not set"
// @Router /api/user/profile [get]
func (profileRoute *ProfileRoute) GetProfile(reqCtx *gin.Context) {
	identity, err := auth.GetIdentityFromRequestContext(reqCtx)
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
			Error: "Invalid token",
		})
		return
	}
	reqCtx.JSON(http.StatusOK, ProfileResponse{
		ID:    identity.SubjectID,
		Email: identity.Email,
		Major: identity.Major,
	})
}

// UpdateMajor
// @Summary Update the caller's major
// @Description Writes the declared field of study on the caller's profile record. The subject is taken from the verified identity, never from the request body.
// @Tags Profile API
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body UpdateMajorRequest true "The new major"
// @Success 200 {object} responses.MessageResponse "Update confirmation"
// @Failure 400 {object} responses.ErrorResponse "Major is missing"
// @Failure 500 {object} responses.ErrorResponse "Store write failed"
// @Router /api/user/major [put]
func (profileRoute *ProfileRoute) UpdateMajor(reqCtx *gin.Context) {
	identity, err := auth.GetIdentityFromRequestContext(reqCtx)
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
			Error: "Invalid token",
		})
		return
	}

	var request UpdateMajorRequest
	if err := reqCtx.ShouldBindJSON(&request); err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:         "Major is required",
			ErrorInstance: err,
		})
		return
	}

	if err := profileRoute.profileService.UpdateMajor(reqCtx.Request.Context(), identity.SubjectID, request.Major); err != nil {
		logger.GetLogger().Errorf("major update failed for subject %s: %v", identity.SubjectID, err)
		response := responses.ErrorResponse{
			Error: "Failed to update major",
		}
		var coded *common.Error
		if errors.As(err, &coded) {
			response.Code = coded.GetCode()
		}
		reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, response)
		return
	}

	reqCtx.JSON(http.StatusOK, responses.MessageResponse{
		Message: "Major updated successfully",
	})
}
