package oddsfeed

type oddsEventPayload struct {
	ID           string                 `json:"id"`
	SportKey     string                 `json:"sport_key"`
	SportTitle   string                 `json:"sport_title"`
	CommenceTime string                 `json:"commence_time"`
	HomeTeam     string                 `json:"home_team"`
	AwayTeam     string                 `json:"away_team"`
	Bookmakers   []oddsBookmakerPayload `json:"bookmakers"`
}

type oddsBookmakerPayload struct {
	Key        string              `json:"key"`
	Title      string              `json:"title"`
	LastUpdate string              `json:"last_update"`
	Markets    []oddsMarketPayload `json:"markets"`
}

type oddsMarketPayload struct {
	Key      string               `json:"key"`
	Outcomes []oddsOutcomePayload `json:"outcomes"`
}

type oddsOutcomePayload struct {
	Name  string   `json:"name"`
	Price float64  `json:"price"`
	Point *float64 `json:"point"`
}
