package assistant

import (
	"context"
	"strings"
	"time"

	"github.com/murayeeto/HornetHelper/app/utils/logger"
	"github.com/murayeeto/HornetHelper/config/environment_variables"
	openai "github.com/sashabaranov/go-openai"
)

// systemInstruction pins the assistant to a tutoring register: encourage and
// guide instead of handing out the answer.
const systemInstruction = "You are a kind and supportive teacher who helps students succeed. " +
	"Keep responses concise (3-4 sentences max). Be clear, encouraging, and practical. " +
	"Use simple formatting - no markdown or special characters. " +
	"Focus on giving actionable advice and clear explanations and also try not give the user " +
	"the direct answer they are seeking rather seek to guide them to the correct answer."

const (
	defaultModel        = "gpt-3.5-turbo"
	maxCompletionTokens = 150
	samplingTemperature = 0.7
	requestTimeout      = 10 * time.Second
)

const (
	missingKeyMessage = "OpenAI API key not configured. Please set OPENAI_API_KEY in your environment."
	fallbackMessage   = "I apologize, but I'm having trouble processing your request right now. Please try again later."
)

// CompletionClient is the chat provider boundary.
type CompletionClient interface {
	CreateChatCompletion(ctx context.Context, apiKey string, request openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error)
}

type AssistantService struct {
	client CompletionClient
	apiKey string
	model  string
}

func NewAssistantService(client CompletionClient) *AssistantService {
	env := &environment_variables.EnvironmentVariables
	model := strings.TrimSpace(env.OPENAI_MODEL)
	if model == "" {
		model = defaultModel
	}
	return &AssistantService{
		client: client,
		apiKey: env.OPENAI_API_KEY,
		model:  model,
	}
}

// Ask never fails: a missing credential or a provider fault is absorbed and a
// fixed substitute string returned. The fault itself only reaches the logs.
func (s *AssistantService) Ask(ctx context.Context, prompt string) string {
	if strings.TrimSpace(s.apiKey) == "" {
		logger.GetLogger().Error("OpenAI API key not configured")
		return missingKeyMessage
	}

	callCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	response, err := s.client.CreateChatCompletion(callCtx, s.apiKey, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   maxCompletionTokens,
		Temperature: samplingTemperature,
	})
	if err != nil {
		logger.GetLogger().Errorf("assistant completion failed: %v", err)
		return fallbackMessage
	}
	if len(response.Choices) == 0 {
		logger.GetLogger().Error("assistant completion returned no choices")
		return fallbackMessage
	}
	answer := strings.TrimSpace(response.Choices[0].Message.Content)
	if answer == "" {
		return fallbackMessage
	}
	return answer
}
