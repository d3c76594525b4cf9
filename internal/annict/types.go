package annict

// Work is one search candidate from the /works endpoint.
type Work struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// Listing is one fetched episode as shown to the user. Number is nil when no
// sequence number could be resolved from either wire field; such entries are
// displayed but excluded from the usable record list.
type Listing struct {
	Number *int
	Title  string
}

// episodePayload mirrors the loose typing of the /episodes endpoint: number
// may be an integer, a float, or null, and both text fields may be null.
type episodePayload struct {
	Number     *float64 `json:"number"`
	NumberText *string  `json:"number_text"`
	Title      *string  `json:"title"`
}

type worksResponse struct {
	Works []Work `json:"works"`
}

type episodesResponse struct {
	Episodes []episodePayload `json:"episodes"`
}
