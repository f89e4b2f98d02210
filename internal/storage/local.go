package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Local grava os arquivos em disco sob um diretório base, um subdiretório
// por bucket. Implementa a mesma semântica de upload/download/remove do
// armazenamento hospedado.
type Local struct {
	Base string
}

func NewLocal(base string) *Local {
	return &Local{Base: base}
}

func (l *Local) caminhoCompleto(bucket, caminho string) (string, error) {
	limpo := filepath.Clean(filepath.FromSlash(caminho))
	if limpo == "." || strings.HasPrefix(limpo, "..") || filepath.IsAbs(limpo) {
		return "", fmt.Errorf("caminho inválido: %q", caminho)
	}
	return filepath.Join(l.Base, bucket, limpo), nil
}

func (l *Local) Upload(bucket, caminho string, conteudo io.Reader) error {
	destino, err := l.caminhoCompleto(bucket, caminho)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(destino), 0755); err != nil {
		return err
	}
	f, err := os.Create(destino)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := io.Copy(f, conteudo); err != nil {
		return err
	}
	return f.Sync()
}

func (l *Local) Download(bucket, caminho string) (io.ReadCloser, error) {
	origem, err := l.caminhoCompleto(bucket, caminho)
	if err != nil {
		return nil, err
	}
	return os.Open(origem)
}

func (l *Local) Remove(bucket, caminho string) error {
	alvo, err := l.caminhoCompleto(bucket, caminho)
	if err != nil {
		return err
	}
	return os.Remove(alvo)
}
