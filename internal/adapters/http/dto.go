package http

// PuzzleResponse is the JSON shape returned by GET /v1/puzzle.
type PuzzleResponse struct {
	Day   string     `json:"day"`
	Board []string   `json:"board"`
	Sets  [][]string `json:"sets"`
	Meta  MetaResp   `json:"meta"`
}

type MetaResp struct {
	RequestID string `json:"request_id"`
	Attempts  int    `json:"attempts"`
	Fallback  bool   `json:"fallback"`
}

// CheckRequest is the body of POST /v1/puzzle/:day/check.
type CheckRequest struct {
	Cards []string `json:"cards"`
}

type CheckResponse struct {
	Set   []string `json:"set"`
	IsSet bool     `json:"is_set"`
	Found bool     `json:"found"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
