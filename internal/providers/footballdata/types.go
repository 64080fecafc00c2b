package footballdata

type matchesResponse struct {
	Matches []matchResponse `json:"matches"`
}

type matchResponse struct {
	ID       int          `json:"id"`
	UTCDate  string       `json:"utcDate"`
	Status   string       `json:"status"`
	HomeTeam upstreamTeam `json:"homeTeam"`
	AwayTeam upstreamTeam `json:"awayTeam"`
	Score    matchScore   `json:"score"`
	Venue    string       `json:"venue"`
}

type upstreamTeam struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	TLA       string `json:"tla"`
}

type matchScore struct {
	FullTime scorePair `json:"fullTime"`
}

type scorePair struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}
