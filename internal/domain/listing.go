// internal/domain/listing.go
package domain

// Listing é um imóvel do catálogo, montado a partir de uma linha do feed.
// Todos os campos são texto cru já sanitizado; a formatação é papel do render.
type Listing struct {
	ID        string
	Type      string // TIPO: Apartamento, Casa, Oficina...
	Operation string // OPERACIÓN: Venta, Alquiler
	Price     string // numérico-como-texto, fallback "0"
	Currency  string // símbolo, fallback "$"
	Bedrooms  string
	Bathrooms string
	Parking   string
	Area      string // área construída, m²
	Zone      string
	Address   string
	PhotoURL  string
	Title     string
}

// SiteConfig é a identidade do site, extraída da segunda fila do feed.
type SiteConfig struct {
	Name     string
	LogoURL  string
	WhatsApp string
	Address  string // "DIRECCIÓN - ZONA"
	Email    string // opcional, vazio quando não configurado
}

// Catalog é o resultado completo de uma requisição do índice.
// Total conta apenas as filas mapeadas com sucesso, não as filas cruas.
type Catalog struct {
	Site     SiteConfig
	Listings []Listing
	Total    int
}

// PropertyDetail é a visão de uma única propriedade na página de detalhe.
type PropertyDetail struct {
	ID          string
	Title       string
	Price       string
	Currency    string
	Description string
	ImageURL    string
}
