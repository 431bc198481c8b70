package types

// TextReq is the body of POST /api/tts/json.
type TextReq struct {
	Text    string `json:"text"`
	Speaker string `json:"speaker"`
}

// StatusResp keeps the response shape of the /api routes.
type StatusResp struct {
	Status string `json:"status"`
	Text   string `json:"text"`
}

// TTSReq is the body of POST /v1/tts. When Time is set the text is the
// time in words and Text is ignored.
type TTSReq struct {
	Text    string `json:"text"`
	Speaker string `json:"speaker"`
	Time    string `json:"time"`
	Style   string `json:"style"`
}

type TTSResp struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	Text       string `json:"text"`
	AudioURL   string `json:"audio_url,omitempty"`
	DurationMs int64  `json:"duration_ms"`
	Cached     bool   `json:"cached"`
}

type TimeResp struct {
	Time    string `json:"time"`
	Style   string `json:"style"`
	Text    string `json:"text"`
	Display string `json:"display"`
}

type UtteranceResp struct {
	ID         string `json:"id"`
	CreatedAt  int64  `json:"created_at"`
	Text       string `json:"text"`
	Speaker    string `json:"speaker"`
	AudioURL   string `json:"audio_url,omitempty"`
	DurationMs int64  `json:"duration_ms"`
	Cached     bool   `json:"cached"`
	Played     bool   `json:"played"`
}

// Event is pushed to websocket subscribers of /v1/events.
type Event struct {
	Type      string         `json:"type"`
	TS        int64          `json:"ts"`
	Utterance *UtteranceResp `json:"utterance,omitempty"`
}
