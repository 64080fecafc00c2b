package config

const (
	envCommentaryBaseURL = "COMMENTARY_BASE_URL"
	envCommentaryToken   = "TWITTER_BEARER_TOKEN"

	defaultCommentaryBaseURL = "https://api.x.com/2"
)

// CommentaryConfig controls the commentary search lookup. Without a bearer
// token the client serves mocked items.
type CommentaryConfig struct {
	BaseURL     string
	BearerToken string
}

func loadCommentary() CommentaryConfig {
	return CommentaryConfig{
		BaseURL:     envOrDefault(envCommentaryBaseURL, defaultCommentaryBaseURL),
		BearerToken: envOrDefault(envCommentaryToken, ""),
	}
}
