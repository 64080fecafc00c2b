package espn

type scoreboardResponse struct {
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Date         string                `json:"date"`
	Status       eventStatus           `json:"status"`
	Competitions []competitionResponse `json:"competitions"`
}

type eventStatus struct {
	Type eventStatusType `json:"type"`
}

type eventStatusType struct {
	State string `json:"state"`
	Name  string `json:"name"`
}

type competitionResponse struct {
	Venue       venueResponse        `json:"venue"`
	Competitors []competitorResponse `json:"competitors"`
}

type venueResponse struct {
	FullName string `json:"fullName"`
}

type competitorResponse struct {
	HomeAway string       `json:"homeAway"`
	Score    string       `json:"score"`
	Team     upstreamTeam `json:"team"`
}

type upstreamTeam struct {
	ID           string `json:"id"`
	DisplayName  string `json:"displayName"`
	Abbreviation string `json:"abbreviation"`
}
