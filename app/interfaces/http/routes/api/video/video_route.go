package video

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/murayeeto/HornetHelper/app/domain/video"
	"github.com/murayeeto/HornetHelper/app/interfaces/http/responses"
)

type VideoRoute struct {
	videoService *video.VideoService
}

func NewVideoRoute(videoService *video.VideoService) *VideoRoute {
	return &VideoRoute{
		videoService: videoService,
	}
}

func (videoRoute *VideoRoute) RegisterRouter(router gin.IRouter) {
	router.POST("/recommend-video", videoRoute.RecommendVideo)
}

type RecommendRequest struct {
	Major string `json:"major" binding:"required"`
}

// RecommendVideo
// @Summary Recommend educational videos
// @Description Searches for embeddable educational videos about the given course or major and returns a compact list. An empty result set and a provider fault both answer 404.
// @Tags Video API
// @Accept json
// @Produce json
// @Param request body RecommendRequest true "Course or major to search for"
// @Success 200 {array} video.Result "Video recommendations"
// @Failure 400 {object} responses.ErrorResponse "Major is missing"
// @Failure 404 {object} responses.ErrorResponse "No recommendations found"
// @Router /api/recommend-video [post]
func (videoRoute *VideoRoute) RecommendVideo(reqCtx *gin.Context) {
	var request RecommendRequest
	if err := reqCtx.ShouldBindJSON(&request); err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:         "Major is required",
			ErrorInstance: err,
		})
		return
	}

	recommendations := videoRoute.videoService.Recommend(reqCtx.Request.Context(), request.Major)
	if len(recommendations) == 0 {
		reqCtx.AbortWithStatusJSON(http.StatusNotFound, responses.ErrorResponse{
			Error: "No video recommendations found",
		})
		return
	}
	reqCtx.JSON(http.StatusOK, recommendations)
}
