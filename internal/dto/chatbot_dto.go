package dto

type ChatRequest struct {
	Question        string `json:"question" validate:"required"`
	ProfileDept     string `json:"profile_dept"`
	SelectedProgram string `json:"selected_program"`
	ProgramName     string `json:"program_name"`
	SessionId       string `json:"session_id"`
}

type ChatResponse struct {
	Answer    string `json:"answer"`
	Label     string `json:"label"`
	Emotion   string `json:"emotion"`
	Success   bool   `json:"success"`
	SessionId string `json:"session_id"`
}

type RouteRequest struct {
	Question        string `json:"question" validate:"required"`
	ProfileDept     string `json:"profile_dept"`
	SelectedProgram string `json:"selected_program"`
}

type RouteResponse struct {
	Label   string `json:"label"`
	Success bool   `json:"success"`
}
