package model

type AnalyzeRequestBody struct {
	Key   string `json:"key"`
	Notes Notes  `json:"notes"`
}

type SessionResponse struct {
	Id  string `json:"id"`
	Key string `json:"key"`
}

type NoteCommandBody struct {
	Command string `json:"command"` // "on" or "off"
	Note    uint8  `json:"note"`
}

type NoteCommandResponse struct {
	Changed  bool  `json:"changed"`
	Sounding Notes `json:"sounding"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
