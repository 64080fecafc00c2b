package domain

// Sport enumerates the leagues this service follows.
type Sport string

const (
	SportBaseball   Sport = "baseball"
	SportBasketball Sport = "basketball"
	SportSoccer     Sport = "soccer"
	SportFootball   Sport = "football"
)

// GameStatus mirrors the shared contract for game lifecycle states.
// Adapters always derive it through their own mapping; raw upstream
// vocabularies never pass through.
type GameStatus string

const (
	StatusScheduled  GameStatus = "scheduled"
	StatusInProgress GameStatus = "in_progress"
	StatusFinal      GameStatus = "final"
	StatusPostponed  GameStatus = "postponed"
	StatusCanceled   GameStatus = "canceled"
)

// Team represents the normalized team shape. ID is our stable local
// identifier, namespaced by league prefix ("mlb-dodgers"). SourceIDs maps an
// upstream provider name to that provider's native identifier for the team.
type Team struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	ShortName string            `json:"shortName"`
	Sport     Sport             `json:"sport"`
	League    string            `json:"league,omitempty"`
	SourceIDs map[string]string `json:"sourceIds,omitempty"`
}

// SourceID returns the team's native identifier for the named upstream
// provider, if one is registered.
func (t Team) SourceID(provider string) (string, bool) {
	id, ok := t.SourceIDs[provider]
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// ScoreSide pairs a team with its score. A nil score strictly means
// "not yet started or unknown", never zero.
type ScoreSide struct {
	Team  Team `json:"team"`
	Score *int `json:"score"`
}

// LivePlayer identifies the active pitcher with the side he plays for.
type LivePlayer struct {
	Name string `json:"name"`
	Team string `json:"team"`
}

// LiveBatter identifies the active batter together with the count.
type LiveBatter struct {
	Name    string `json:"name"`
	Team    string `json:"team"`
	Inning  string `json:"inning"`
	Outs    int    `json:"outs"`
	Balls   int    `json:"balls"`
	Strikes int    `json:"strikes"`
}

// LiveGameInfo is the in-progress snapshot sourced from a play-by-play feed.
// Any subset of fields may be populated; an empty value is treated as absent.
type LiveGameInfo struct {
	CurrentPitcher *LivePlayer `json:"currentPitcher,omitempty"`
	CurrentBatter  *LiveBatter `json:"currentBatter,omitempty"`
	Inning         string      `json:"inning,omitempty"`
	InningState    string      `json:"inningState,omitempty"`
}

// Empty reports whether no live fields are populated.
func (l LiveGameInfo) Empty() bool {
	return l.CurrentPitcher == nil && l.CurrentBatter == nil && l.Inning == "" && l.InningState == ""
}

// Game is the canonical game shape exposed by the service. LiveInfo is only
// ever set when Status is StatusInProgress.
type Game struct {
	ID       string        `json:"id"`
	Sport    Sport         `json:"sport"`
	StartsAt string        `json:"startsAtISO"`
	Status   GameStatus    `json:"status"`
	Home     ScoreSide     `json:"home"`
	Away     ScoreSide     `json:"away"`
	Venue    string        `json:"venue,omitempty"`
	URL      string        `json:"url,omitempty"`
	LiveInfo *LiveGameInfo `json:"liveInfo,omitempty"`
}

// CommentaryItem is a single entry from the commentary search lookup.
type CommentaryItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Author    string `json:"author"`
	CreatedAt string `json:"createdAtISO"`
	URL       string `json:"url,omitempty"`
	Source    string `json:"source"`
}

// IntPtr is a convenience for building nullable scores.
func IntPtr(v int) *int { return &v }
