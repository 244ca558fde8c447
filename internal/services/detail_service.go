// internal/services/detail_service.go
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/artesfox/santo-grial-inmobiliaria-free/internal/domain"
	"github.com/artesfox/santo-grial-inmobiliaria-free/internal/feed"
)

// ErrNotFound indica que nenhuma fila do feed tem o ID pedido.
var ErrNotFound = errors.New("propiedad no encontrada")

// DetailService localiza uma única propriedade pelo ID, varrendo o feed
// linha a linha. As colunas vêm do cabeçalho, igual ao catálogo, para que os
// dois caminhos nunca discordem do significado de uma coluna.
type DetailService struct {
	feed FeedSource
}

func NewDetailService(src FeedSource) *DetailService {
	return &DetailService{feed: src}
}

// FindByID devolve a primeira fila cujo campo de ID, sanitizado, é igual ao
// ID pedido (também aparado). ErrNotFound quando nenhuma fila bate.
func (s *DetailService) FindByID(ctx context.Context, id string) (*domain.PropertyDetail, error) {
	id = strings.TrimSpace(id)

	rows, err := s.feed.Rows(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	hdr := feed.ResolveHeader(rows[0])
	idCol := hdr.ID
	if idCol < 0 {
		idCol = 0
	}

	for _, row := range rows {
		if feed.Field(row, idCol) != id {
			continue
		}
		return &domain.PropertyDetail{
			ID:          id,
			Title:       feed.Field(row, hdr.Title),
			Price:       feed.Field(row, hdr.Price),
			Currency:    feed.FieldOr(row, hdr.Currency, "$"),
			Description: feed.Field(row, hdr.Description),
			ImageURL:    feed.Field(row, hdr.Photo),
		}, nil
	}

	return nil, ErrNotFound
}
