// internal/render/render.go
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/artesfox/santo-grial-inmobiliaria-free/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer monta os documentos HTML do catálogo e do detalhe via
// html/template, que escapa cada valor interpolado conforme o contexto.
// O feed é conteúdo de terceiros; nada dele entra cru no markup.
type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("carregando templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Catalog escreve o documento completo do catálogo.
func (r *Renderer) Catalog(w io.Writer, cat *domain.Catalog) error {
	view := catalogView{
		Site:  cat.Site,
		Total: cat.Total,
		Year:  time.Now().Year(),
	}
	for _, l := range cat.Listings {
		view.Cards = append(view.Cards, buildCard(l))
	}
	return r.tmpl.ExecuteTemplate(w, "catalog.html", view)
}

// Card escreve o fragmento de uma única tarjeta. Exposto para testes e para
// quem quiser compor o grid por fora.
func (r *Renderer) Card(w io.Writer, l domain.Listing) error {
	return r.tmpl.ExecuteTemplate(w, "card", buildCard(l))
}

// Detail escreve o documento de uma única propriedade.
func (r *Renderer) Detail(w io.Writer, det *domain.PropertyDetail) error {
	return r.tmpl.ExecuteTemplate(w, "detail.html", buildDetail(det))
}

type catalogView struct {
	Site  domain.SiteConfig
	Cards []cardView
	Total int
	Year  int
}

// cardView carrega o texto de exibição e, separados, os valores crus que a
// tarjeta expõe como atributos data-* para o filtro do lado do cliente.
type cardView struct {
	ID        string
	Type      string
	Operation string
	RawPrice  string
	Search    string // data-ubicacion: direção + zona, para busca textual
	PhotoURL  string
	Title     string
	Location  string
	Bedrooms  string // vazio quando a insígnia não deve aparecer
	Bathrooms string
	Area      string
	Parking   string
	Price     string // já formatado: "$ 1.200.000"
}

type detailView struct {
	ID          string
	Title       string
	Price       string
	Description string
	ImageURL    string
}

func buildCard(l domain.Listing) cardView {
	title := l.Title
	if title == "" {
		title = l.Operation + " en " + l.Zone
	}
	return cardView{
		ID:        l.ID,
		Type:      l.Type,
		Operation: l.Operation,
		RawPrice:  l.Price,
		Search:    l.Address + " " + l.Zone,
		PhotoURL:  l.PhotoURL,
		Title:     title,
		Location:  joinLocation(l.Address, l.Zone),
		Bedrooms:  badge(l.Bedrooms),
		Bathrooms: badge(l.Bathrooms),
		Area:      badge(l.Area),
		Parking:   badge(l.Parking),
		Price:     FormatPrice(l.Currency, l.Price),
	}
}

func buildDetail(det *domain.PropertyDetail) detailView {
	view := detailView{
		ID:          det.ID,
		Title:       det.Title,
		Price:       det.Price,
		Description: det.Description,
		ImageURL:    det.ImageURL,
	}
	if view.Title == "" {
		view.Title = "Sin título"
	}
	if view.Price == "" {
		view.Price = "Consultar precio"
	} else if _, err := strconv.ParseFloat(view.Price, 64); err == nil {
		view.Price = FormatPrice(det.Currency, det.Price)
	}
	if view.Description == "" {
		view.Description = "Sin descripción disponible."
	}
	if view.ImageURL == "" {
		view.ImageURL = "https://via.placeholder.com/800x600?text=Sin+Imagen"
	}
	return view
}

// badge devolve o valor de uma comodidade, ou vazio quando ela não deve ser
// exibida (ausente ou o literal "0").
func badge(v string) string {
	if v == "" || v == "0" {
		return ""
	}
	return v
}

func joinLocation(address, zone string) string {
	switch {
	case address == "":
		return zone
	case zone == "":
		return address
	}
	return address + " - " + zone
}

// Preços são agrupados no padrão es-CO: "1200000" vira "1.200.000".
var esCO = message.NewPrinter(language.MustParse("es-CO"))

// FormatPrice prefixa o símbolo da moeda e agrupa os milhares. Preço não
// numérico rende "NaN", o mesmo artefato da versão original.
func FormatPrice(currency, raw string) string {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return currency + " " + esCO.Sprintf("%v", number.Decimal(n))
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return currency + " " + esCO.Sprintf("%v", number.Decimal(f))
	}
	return currency + " NaN"
}
