// internal/services/detail_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artesfox/santo-grial-inmobiliaria-free/internal/services"
)

// A propriedade buscada está na fila 7 (contando cabeçalho e configuração);
// outras filas carregam texto parecido de propósito.
const detailCSV = `ID,TIPO,OPERACIÓN,PRECIO,MONEDA,ZONA,DIRECCIÓN,FOTO URL 1,TÍTULO,DESCRIPCIÓN
,,,,,Chapinero,"Calle 45 #13-20",logo.png,Casa Azul,
C01,Casa,Venta,1000000,$,Chapinero,Calle 1,c01.jpg,Casa Uno,Primera casa
C02,Casa,Venta,2000000,$,Chapinero,Calle 2,c02.jpg,Casa Dos,Segunda casa
C03,Casa,Venta,3000000,$,Chapinero,Calle 3,c03.jpg,Casa Tres,Tercera casa
C04,Casa,Venta,4000000,$,Chapinero,Calle 4,c04.jpg,Casa Tres,Tercera casa bis
C05,Casa,Venta,5000000,$,Chapinero,Calle 5,c05.jpg,Casa Cinco,Quinta casa
"C07",Apartamento,Alquiler,7500000,$,Bogotá,Calle 7,c07.jpg,Apartamento Siete,"Séptima fila, la buscada"
C08,Casa,Venta,8000000,$,Chapinero,Calle 8,c08.jpg,Casa Ocho,Octava casa
`

func TestFindByID(t *testing.T) {
	svc := services.NewDetailService(stubFeed{body: detailCSV})

	t.Run("FindsExactRow", func(t *testing.T) {
		det, err := svc.FindByID(context.Background(), "C07")
		require.NoError(t, err)

		assert.Equal(t, "Apartamento Siete", det.Title)
		assert.Equal(t, "7500000", det.Price)
		assert.Equal(t, "Séptima fila, la buscada", det.Description)
		assert.Equal(t, "c07.jpg", det.ImageURL)
	})

	t.Run("TrimsRequestedID", func(t *testing.T) {
		det, err := svc.FindByID(context.Background(), "  C07  ")
		require.NoError(t, err)
		assert.Equal(t, "Apartamento Siete", det.Title)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := svc.FindByID(context.Background(), "ZZZ")
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrNotFound))
	})

	t.Run("FeedErrorPropagates", func(t *testing.T) {
		broken := services.NewDetailService(stubFeed{err: errors.New("sin conexión")})
		_, err := broken.FindByID(context.Background(), "C07")
		require.Error(t, err)
		assert.False(t, errors.Is(err, services.ErrNotFound))
	})

	t.Run("EmptyFeedIsNotFound", func(t *testing.T) {
		empty := services.NewDetailService(stubFeed{body: ""})
		_, err := empty.FindByID(context.Background(), "C07")
		assert.True(t, errors.Is(err, services.ErrNotFound))
	})
}
