package storage

import (
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Buckets lógicos de arquivos da aplicação.
const (
	BucketContratos    = "contratos"
	BucketNotasFiscais = "invoices"
)

// Storage abstrai o armazenamento de arquivos endereçados por caminho.
type Storage interface {
	Upload(bucket, caminho string, conteudo io.Reader) error
	Download(bucket, caminho string) (io.ReadCloser, error)
	Remove(bucket, caminho string) error
}

// NomeArquivoContrato monta o caminho do contrato de um prestador:
// {id}-{timestamp}.{ext}
func NomeArquivoContrato(prestadorID uuid.UUID, nomeOriginal string) string {
	ext := strings.TrimPrefix(path.Ext(nomeOriginal), ".")
	if ext == "" {
		ext = "pdf"
	}
	return fmt.Sprintf("%s-%d.%s", prestadorID, time.Now().UnixMilli(), ext)
}

// CaminhoNotaFiscal monta o caminho da nota fiscal de um pagamento:
// temp/{pagamentoId}_{timestamp}.pdf
func CaminhoNotaFiscal(pagamentoID uuid.UUID) string {
	return fmt.Sprintf("temp/%s_%d.pdf", pagamentoID, time.Now().UnixMilli())
}
