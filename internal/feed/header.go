// internal/feed/header.go
package feed

import "strings"

// Textos esperados na primeira fila do feed. A comparação ignora caixa,
// espaços e aspas ao redor de cada célula.
const (
	headerID          = "ID"
	headerType        = "TIPO"
	headerOperation   = "OPERACIÓN"
	headerPrice       = "PRECIO"
	headerCurrency    = "MONEDA"
	headerBedrooms    = "HABITACIONES"
	headerBathrooms   = "BAÑOS"
	headerParking     = "ESTACIONAMIENTO"
	headerArea        = "ÁREA CONSTRUIDA"
	headerZone        = "ZONA"
	headerAddress     = "DIRECCIÓN"
	headerPhoto       = "FOTO URL 1"
	headerTitle       = "TÍTULO"
	headerPhone       = "TELÉFONO"
	headerEmail       = "EMAIL"
	headerDescription = "DESCRIPCIÓN"
)

// HeaderIndex mapeia cada chave semântica do feed para a posição da coluna,
// ou -1 quando o cabeçalho não existe. Leituras via Field toleram o -1.
type HeaderIndex struct {
	ID          int
	Type        int
	Operation   int
	Price       int
	Currency    int
	Bedrooms    int
	Bathrooms   int
	Parking     int
	Area        int
	Zone        int
	Address     int
	Photo       int
	Title       int
	Phone       int
	Email       int
	Description int
}

// ResolveHeader constrói o HeaderIndex a partir da fila 0 do feed.
// Nunca falha: cabeçalho ausente vira posição -1.
func ResolveHeader(row []string) HeaderIndex {
	cells := make([]string, len(row))
	for i, cell := range row {
		cells[i] = strings.ToUpper(Sanitize(cell))
	}

	find := func(name string) int {
		for i, cell := range cells {
			if cell == name {
				return i
			}
		}
		return -1
	}

	return HeaderIndex{
		ID:          find(headerID),
		Type:        find(headerType),
		Operation:   find(headerOperation),
		Price:       find(headerPrice),
		Currency:    find(headerCurrency),
		Bedrooms:    find(headerBedrooms),
		Bathrooms:   find(headerBathrooms),
		Parking:     find(headerParking),
		Area:        find(headerArea),
		Zone:        find(headerZone),
		Address:     find(headerAddress),
		Photo:       find(headerPhoto),
		Title:       find(headerTitle),
		Phone:       find(headerPhone),
		Email:       find(headerEmail),
		Description: find(headerDescription),
	}
}
