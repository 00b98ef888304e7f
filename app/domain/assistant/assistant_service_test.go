package assistant

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

type stubCompletionClient struct {
	lastRequest openai.ChatCompletionRequest
	response    *openai.ChatCompletionResponse
	err         error
	calls       int
}

func (s *stubCompletionClient) CreateChatCompletion(ctx context.Context, apiKey string, request openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
	s.calls++
	s.lastRequest = request
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func completionWith(content string) *openai.ChatCompletionResponse {
	return &openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func TestAskReturnsTrimmedAnswer(t *testing.T) {
	client := &stubCompletionClient{response: completionWith("  Break the problem into smaller steps.  \n")}
	service := &AssistantService{client: client, apiKey: "test-key", model: defaultModel}

	answer := service.Ask(context.Background(), "How do I study for finals?")
	if answer != "Break the problem into smaller steps." {
		t.Fatalf("unexpected answer: %q", answer)
	}
	if client.lastRequest.Model != defaultModel {
		t.Fatalf("unexpected model: %s", client.lastRequest.Model)
	}
	if client.lastRequest.MaxTokens != maxCompletionTokens {
		t.Fatalf("unexpected max tokens: %d", client.lastRequest.MaxTokens)
	}
	if len(client.lastRequest.Messages) != 2 {
		t.Fatalf("expected system + user turns, got %d", len(client.lastRequest.Messages))
	}
	if client.lastRequest.Messages[0].Role != openai.ChatMessageRoleSystem {
		t.Fatalf("expected leading system instruction, got role %s", client.lastRequest.Messages[0].Role)
	}
	if client.lastRequest.Messages[1].Content != "How do I study for finals?" {
		t.Fatalf("prompt not forwarded: %q", client.lastRequest.Messages[1].Content)
	}
}

func TestAskProviderFaultIsAbsorbed(t *testing.T) {
	client := &stubCompletionClient{err: errors.New("connection refused")}
	service := &AssistantService{client: client, apiKey: "test-key", model: defaultModel}

	answer := service.Ask(context.Background(), "What is a pointer?")
	if answer != fallbackMessage {
		t.Fatalf("expected fallback message, got %q", answer)
	}
}

func TestAskEmptyCompletionIsAbsorbed(t *testing.T) {
	client := &stubCompletionClient{response: &openai.ChatCompletionResponse{}}
	service := &AssistantService{client: client, apiKey: "test-key", model: defaultModel}

	if answer := service.Ask(context.Background(), "hello"); answer != fallbackMessage {
		t.Fatalf("expected fallback message, got %q", answer)
	}

	client = &stubCompletionClient{response: completionWith("   ")}
	service = &AssistantService{client: client, apiKey: "test-key", model: defaultModel}
	if answer := service.Ask(context.Background(), "hello"); answer != fallbackMessage {
		t.Fatalf("expected fallback message for blank completion, got %q", answer)
	}
}

func TestAskMissingCredentialShortCircuits(t *testing.T) {
	client := &stubCompletionClient{response: completionWith("never used")}
	service := &AssistantService{client: client, model: defaultModel}

	answer := service.Ask(context.Background(), "hello")
	if answer != missingKeyMessage {
		t.Fatalf("expected configuration message, got %q", answer)
	}
	if client.calls != 0 {
		t.Fatalf("provider must not be called without a credential, got %d calls", client.calls)
	}
}
