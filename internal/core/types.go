package core

const (
	AppName       = "ReachOut"
	AppUserAgent  = "ReachOut/0.1"
	RepositoryURL = "https://github.com/sandevgo/reachout"
	AppVersion    = "0.1.0"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatOptions tunes a single completion call.
type ChatOptions struct {
	MaxTokens   int
	Temperature float32
}

// External service names used for usage accounting.
const (
	ServiceNewsAPI    = "NewsAPI"
	ServiceNewsdata   = "Newsdata"
	ServiceGNews      = "GNews"
	ServiceTavily     = "Tavily"
	ServiceGoogleNews = "GoogleNews"
	ServiceLLM        = "LLM"
)
