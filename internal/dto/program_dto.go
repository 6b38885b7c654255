package dto

import "dawangi-chatbot-be/pkg/program"

type ProgramInfo struct {
	Id   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type AvailableProgramsResponse struct {
	Programs []ProgramInfo `json:"programs"`
}

type ProgramCatalogResponse struct {
	Programs []program.CatalogEntry `json:"programs"`
}
