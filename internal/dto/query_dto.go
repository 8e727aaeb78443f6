package dto

// DefaultSessionID is used when the caller omits session_id.
const DefaultSessionID = "default"

type ProcessQueryRequest struct {
	Query     string `json:"query" validate:"required"`
	SessionID string `json:"session_id"`
}

type ReferenceDTO struct {
	Act           string `json:"act"`
	SectionNumber string `json:"section_number"`
	Summary       string `json:"summary"`
	FullText      string `json:"full_text"`
}

type CaseDTO struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type ProcessQueryResponse struct {
	Answer     string         `json:"answer"`
	References []ReferenceDTO `json:"references"`
	Cases      []CaseDTO      `json:"cases"`
	IsFollowUp bool           `json:"is_follow_up"`
	SessionID  string         `json:"session_id"`
}
