// internal/feed/csv.go
package feed

import "strings"

// SplitLine separa uma linha do feed em campos, respeitando vírgulas dentro
// de aspas: uma vírgula só é delimitador quando o resto da linha contém um
// número par de aspas. Não trata quebras de linha dentro de aspas nem aspas
// duplicadas ("") — o feed não as produz.
//
// Linha em branco devolve nil; o chamador filtra linhas em branco antes.
// Aspas malformadas produzem uma separação de melhor esforço, nunca erro.
func SplitLine(line string) []string {
	if line == "" {
		return nil
	}

	totalQuotes := strings.Count(line, `"`)

	var fields []string
	seen := 0 // aspas vistas até a posição atual
	start := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			seen++
		case ',':
			// paridade das aspas que restam até o fim da linha
			if (totalQuotes-seen)%2 == 0 {
				fields = append(fields, line[start:i])
				start = i + 1
			}
		}
	}
	return append(fields, line[start:])
}

// SplitLines quebra o corpo do feed em linhas não vazias já separadas em campos.
func SplitLines(body string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, SplitLine(line))
	}
	return rows
}

// Sanitize remove espaços ao redor e um único par de aspas envolvendo o valor.
// Total: qualquer entrada produz um resultado, vazio para valores ausentes.
func Sanitize(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, `"`) {
		s = s[1:]
	}
	if strings.HasSuffix(s, `"`) {
		s = s[:len(s)-1]
	}
	return strings.TrimSpace(s)
}

// Field lê e sanitiza a coluna idx de uma fila. Índices fora do intervalo
// (incluindo o sentinela -1 de cabeçalho ausente) devolvem vazio.
func Field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return Sanitize(row[idx])
}

// FieldOr devolve a coluna sanitizada ou fallback quando ela fica vazia.
func FieldOr(row []string, idx int, fallback string) string {
	if v := Field(row, idx); v != "" {
		return v
	}
	return fallback
}
