package rooms

import (
	"fmt"

	"github.com/Domenick1991/sunshinehotel/internal/domain"
)

type RoomUseCase interface {
	List() []domain.RoomType
	GetByID(id string) (*domain.RoomType, error)
}

// RoomService serves the configured room catalog.
type RoomService struct {
	catalog domain.RoomCatalog
}

func NewRoomService(catalog domain.RoomCatalog) *RoomService {
	return &RoomService{catalog: catalog}
}

func (s *RoomService) List() []domain.RoomType {
	return s.catalog.All()
}

func (s *RoomService) GetByID(id string) (*domain.RoomType, error) {
	room, ok := s.catalog.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrRoomTypeNotFound, id)
	}
	return &room, nil
}

var _ RoomUseCase = (*RoomService)(nil)
