// internal/feed/client.go
package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/artesfox/santo-grial-inmobiliaria-free/pkg/logger"
)

// Client busca o feed CSV (export da planilha) a cada requisição.
// Sem cache e sem timeout próprio: o contexto da requisição manda.
type Client struct {
	url  string
	http *http.Client
	log  *logger.Logger
}

// NewClient cria um Client apontando para a URL do feed.
func NewClient(url string, log *logger.Logger) *Client {
	return &Client{
		url:  url,
		http: http.DefaultClient,
		log:  log,
	}
}

// Rows baixa o feed e devolve as filas não vazias já separadas em campos.
// Fila 0 é o cabeçalho, fila 1 a configuração do site, filas 2..N os imóveis.
func (c *Client) Rows(ctx context.Context) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("montando requisição do feed: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("buscando feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed respondeu status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("lendo corpo do feed: %w", err)
	}

	rows := SplitLines(string(body))
	c.log.Info("feed carregado:", len(rows), "filas")
	return rows, nil
}
