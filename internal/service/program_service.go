package service

import (
	"dawangi-chatbot-be/internal/dto"
	"dawangi-chatbot-be/pkg/knowledge"
	"dawangi-chatbot-be/pkg/program"
)

// IProgramService serves the static program listings and the raw
// routing configuration.
type IProgramService interface {
	AvailablePrograms() *dto.AvailableProgramsResponse
	Catalog() (*dto.ProgramCatalogResponse, error)
	RawConfig() map[string]interface{}
}

type programService struct {
	loader      *knowledge.Loader
	catalogPath string
}

func NewProgramService(loader *knowledge.Loader, catalogPath string) IProgramService {
	return &programService{
		loader:      loader,
		catalogPath: catalogPath,
	}
}

// AvailablePrograms lists the programs with a detailed curriculum,
// in routing-table declaration order.
func (ps *programService) AvailablePrograms() *dto.AvailableProgramsResponse {
	ids := ps.loader.AvailablePrograms()
	programs := make([]dto.ProgramInfo, 0, len(ids))
	for _, id := range ids {
		programs = append(programs, dto.ProgramInfo{
			Id:   id,
			Name: program.DisplayName(id),
			Type: program.TypeFusion,
		})
	}
	return &dto.AvailableProgramsResponse{Programs: programs}
}

// Catalog parses the full program listing out of the catalog corpus file.
func (ps *programService) Catalog() (*dto.ProgramCatalogResponse, error) {
	md, err := ps.loader.LoadFile(ps.catalogPath)
	if err != nil {
		return nil, err
	}
	return &dto.ProgramCatalogResponse{Programs: program.ParseCatalog(md)}, nil
}

func (ps *programService) RawConfig() map[string]interface{} {
	return ps.loader.Raw()
}
