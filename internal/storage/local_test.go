package storage

import (
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestLocalUploadDownloadRemove(t *testing.T) {
	st := NewLocal(t.TempDir())

	if err := st.Upload(BucketContratos, "pasta/arquivo.pdf", strings.NewReader("conteudo")); err != nil {
		t.Fatalf("erro no upload: %v", err)
	}

	rc, err := st.Download(BucketContratos, "pasta/arquivo.pdf")
	if err != nil {
		t.Fatalf("erro no download: %v", err)
	}
	corpo, _ := io.ReadAll(rc)
	rc.Close()
	if string(corpo) != "conteudo" {
		t.Fatalf("conteúdo lido: %q", corpo)
	}

	if err := st.Remove(BucketContratos, "pasta/arquivo.pdf"); err != nil {
		t.Fatalf("erro ao remover: %v", err)
	}
	if _, err := st.Download(BucketContratos, "pasta/arquivo.pdf"); err == nil {
		t.Fatal("download após remoção deveria falhar")
	}
}

func TestLocalBucketsSaoIsolados(t *testing.T) {
	st := NewLocal(t.TempDir())

	if err := st.Upload(BucketContratos, "a.pdf", strings.NewReader("contrato")); err != nil {
		t.Fatalf("erro no upload: %v", err)
	}
	if _, err := st.Download(BucketNotasFiscais, "a.pdf"); err == nil {
		t.Fatal("arquivo de um bucket não pode aparecer em outro")
	}
}

func TestLocalRejeitaCaminhoFora(t *testing.T) {
	st := NewLocal(t.TempDir())

	casos := []string{"../fora.pdf", "a/../../fora.pdf", "/etc/passwd", ".."}
	for _, caminho := range casos {
		if err := st.Upload(BucketContratos, caminho, strings.NewReader("x")); err == nil {
			t.Errorf("upload com caminho %q deveria ser rejeitado", caminho)
		}
		if _, err := st.Download(BucketContratos, caminho); err == nil {
			t.Errorf("download com caminho %q deveria ser rejeitado", caminho)
		}
	}
}

func TestNomeArquivoContrato(t *testing.T) {
	id := uuid.New()
	nome := NomeArquivoContrato(id, "contrato assinado.PDF")
	if !strings.HasPrefix(nome, id.String()+"-") {
		t.Fatalf("nome fora do padrão: %q", nome)
	}
	if !strings.HasSuffix(nome, ".PDF") {
		t.Fatalf("extensão original deveria ser mantida: %q", nome)
	}
}

func TestCaminhoNotaFiscal(t *testing.T) {
	id := uuid.New()
	caminho := CaminhoNotaFiscal(id)
	if !strings.HasPrefix(caminho, "temp/"+id.String()+"_") {
		t.Fatalf("caminho fora do padrão: %q", caminho)
	}
	if !strings.HasSuffix(caminho, ".pdf") {
		t.Fatalf("caminho deveria terminar em .pdf: %q", caminho)
	}
}
