package inference

import (
	"strings"

	"github.com/murayeeto/HornetHelper/app/domain/assistant"
	"github.com/murayeeto/HornetHelper/app/domain/video"
	chatclient "github.com/murayeeto/HornetHelper/app/utils/httpclients/chat"
	"github.com/murayeeto/HornetHelper/app/utils/httpclients/youtube"
	"github.com/murayeeto/HornetHelper/config/environment_variables"
)

const defaultChatBaseURL = "https://api.openai.com/v1"

// NewCompletionClient builds the chat provider client from process-wide
// configuration. Called once at startup.
func NewCompletionClient() assistant.CompletionClient {
	baseURL := strings.TrimSpace(environment_variables.EnvironmentVariables.OPENAI_BASE_URL)
	if baseURL == "" {
		baseURL = defaultChatBaseURL
	}
	return chatclient.NewChatCompletionClient("OpenAIClient", baseURL)
}

// NewSearchClient builds the video search provider client.
func NewSearchClient() video.SearchClient {
	return youtube.NewClient(environment_variables.EnvironmentVariables.YOUTUBE_API_KEY)
}
