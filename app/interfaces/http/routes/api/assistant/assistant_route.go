package assistant

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/murayeeto/HornetHelper/app/domain/assistant"
	"github.com/murayeeto/HornetHelper/app/interfaces/http/responses"
)

type AssistantRoute struct {
	assistantService *assistant.AssistantService
}

func NewAssistantRoute(assistantService *assistant.AssistantService) *AssistantRoute {
	return &AssistantRoute{
		assistantService: assistantService,
	}
}

func (assistantRoute *AssistantRoute) RegisterRouter(router gin.IRouter) {
	router.POST("/ask-ai", assistantRoute.AskAI)
}

type AskRequest struct {
	Message string `json:"message" binding:"required"`
}

type AskResponse struct {
	Response string `json:"response"`
}

// AskAI
// @Summary Ask the study assistant
// @Description Sends the student's question to the chat provider and returns the assistant's reply. Provider faults are absorbed: the endpoint answers 200 with a substitute message rather than surfacing a 5xx.
// @Tags Assistant API
// @Accept json
// @Produce json
// @Param request body AskRequest true "The student's question"
// @Success 200 {object} AskResponse "Assistant reply"
// @Failure 400 {object} responses.ErrorResponse "Message is missing"
// @Router /api/ask-ai [post]
func (assistantRoute *AssistantRoute) AskAI(reqCtx *gin.Context) {
	var request AskRequest
	if err := reqCtx.ShouldBindJSON(&request); err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:         "Message is required",
			ErrorInstance: err,
		})
		return
	}

	response := assistantRoute.assistantService.Ask(reqCtx.Request.Context(), request.Message)
	reqCtx.JSON(http.StatusOK, AskResponse{
		Response: response,
	})
}
