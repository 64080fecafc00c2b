package mlb

type scheduleResponse struct {
	Dates []scheduleDate `json:"dates"`
}

type scheduleDate struct {
	Date  string         `json:"date"`
	Games []scheduleGame `json:"games"`
}

type scheduleGame struct {
	GamePk   int           `json:"gamePk"`
	GameDate string        `json:"gameDate"`
	Status   gameStatus    `json:"status"`
	Teams    scheduleTeams `json:"teams"`
	Venue    venue         `json:"venue"`
}

type gameStatus struct {
	AbstractGameState string `json:"abstractGameState"`
	CodedGameState    string `json:"codedGameState"`
	DetailedState     string `json:"detailedState"`
}

type scheduleTeams struct {
	Home scheduleSide `json:"home"`
	Away scheduleSide `json:"away"`
}

type scheduleSide struct {
	Score *int         `json:"score"`
	Team  upstreamTeam `json:"team"`
}

type upstreamTeam struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	TeamName string `json:"teamName"`
}

type venue struct {
	Name string `json:"name"`
}

type boxscoreResponse struct {
	Teams boxscoreTeams `json:"teams"`
}

type boxscoreTeams struct {
	Home boxscoreSide `json:"home"`
	Away boxscoreSide `json:"away"`
}

type boxscoreSide struct {
	Team      upstreamTeam  `json:"team"`
	TeamStats boxscoreStats `json:"teamStats"`
}

type boxscoreStats struct {
	Batting struct {
		Runs *int `json:"runs"`
	} `json:"batting"`
}

type feedResponse struct {
	GameData feedGameData `json:"gameData"`
	LiveData feedLiveData `json:"liveData"`
}

type feedGameData struct {
	Status gameStatus `json:"status"`
}

type feedLiveData struct {
	Plays feedPlays `json:"plays"`
}

type feedPlays struct {
	CurrentPlay *currentPlay `json:"currentPlay"`
}

type currentPlay struct {
	Matchup feedMatchup `json:"matchup"`
	Count   feedCount   `json:"count"`
	About   feedAbout   `json:"about"`
}

type feedMatchup struct {
	Pitcher *feedPlayer `json:"pitcher"`
	Batter  *feedPlayer `json:"batter"`
}

type feedPlayer struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
}

type feedCount struct {
	Balls   int `json:"balls"`
	Strikes int `json:"strikes"`
	Outs    int `json:"outs"`
}

type feedAbout struct {
	Inning     int    `json:"inning"`
	InningHalf string `json:"inningHalf"`
}
