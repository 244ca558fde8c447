// internal/services/catalog_service.go
package services

import (
	"context"
	"fmt"

	"github.com/artesfox/santo-grial-inmobiliaria-free/internal/config"
	"github.com/artesfox/santo-grial-inmobiliaria-free/internal/domain"
	"github.com/artesfox/santo-grial-inmobiliaria-free/internal/feed"
)

// FeedSource entrega as filas do feed já separadas em campos.
type FeedSource interface {
	Rows(ctx context.Context) ([][]string, error)
}

// CatalogService monta o catálogo completo a partir do feed: identidade do
// site na fila 1, imóveis nas filas 2 em diante.
type CatalogService struct {
	feed FeedSource
	site config.SiteConfig
}

func NewCatalogService(src FeedSource, site config.SiteConfig) *CatalogService {
	return &CatalogService{feed: src, site: site}
}

// BuildCatalog busca o feed e devolve identidade, imóveis e o total.
// O total conta só as filas mapeadas; filas estruturalmente inválidas
// (menos de 5 campos) são descartadas em silêncio.
func (s *CatalogService) BuildCatalog(ctx context.Context) (*domain.Catalog, error) {
	rows, err := s.feed.Rows(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("feed sem filas")
	}

	hdr := feed.ResolveHeader(rows[0])
	site := s.extractSite(rows, hdr)

	var listings []domain.Listing
	if len(rows) > 2 {
		for _, row := range rows[2:] {
			if len(row) < 5 {
				continue
			}
			listings = append(listings, mapListing(row, hdr))
		}
	}

	return &domain.Catalog{
		Site:     site,
		Listings: listings,
		Total:    len(listings),
	}, nil
}

// extractSite lê a fila de configuração (fila 1). Campo vazio cai no
// fallback configurado; o email só entra quando o site o habilita.
func (s *CatalogService) extractSite(rows [][]string, hdr feed.HeaderIndex) domain.SiteConfig {
	var row []string
	if len(rows) > 1 {
		row = rows[1]
	}

	site := domain.SiteConfig{
		Name:     feed.FieldOr(row, hdr.Title, s.site.FallbackName),
		LogoURL:  feed.FieldOr(row, hdr.Photo, s.site.FallbackLogo),
		WhatsApp: feed.FieldOr(row, hdr.Phone, s.site.FallbackPhone),
		Address:  joinAddress(feed.Field(row, hdr.Address), feed.Field(row, hdr.Zone)),
	}
	if s.site.IncludeEmail {
		site.Email = feed.Field(row, hdr.Email)
	}
	return site
}

func joinAddress(address, zone string) string {
	switch {
	case address == "":
		return zone
	case zone == "":
		return address
	}
	return address + " - " + zone
}

func mapListing(row []string, hdr feed.HeaderIndex) domain.Listing {
	return domain.Listing{
		ID:        feed.Field(row, hdr.ID),
		Type:      feed.Field(row, hdr.Type),
		Operation: feed.Field(row, hdr.Operation),
		Price:     feed.FieldOr(row, hdr.Price, "0"),
		Currency:  feed.FieldOr(row, hdr.Currency, "$"),
		Bedrooms:  feed.FieldOr(row, hdr.Bedrooms, "0"),
		Bathrooms: feed.FieldOr(row, hdr.Bathrooms, "0"),
		Parking:   feed.FieldOr(row, hdr.Parking, "0"),
		Area:      feed.FieldOr(row, hdr.Area, "0"),
		Zone:      feed.Field(row, hdr.Zone),
		Address:   feed.Field(row, hdr.Address),
		PhotoURL:  feed.Field(row, hdr.Photo),
		Title:     feed.Field(row, hdr.Title),
	}
}
