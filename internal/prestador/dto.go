package prestador

// criarPrestadorRequest recebe os campos do formulário de cadastro.
// Remuneração chega como texto no formato pt-BR ("1.234,56") e é convertida
// antes da persistência.
type criarPrestadorRequest struct {
	Nome               string `json:"nome"`
	Sobrenome          string `json:"sobrenome"`
	RazaoSocial        string `json:"razaoSocial"`
	CNPJ               string `json:"cnpj"`
	Email              string `json:"email"`
	TelefoneContato    string `json:"telefoneContato"`
	Nascimento         string `json:"nascimento"`
	Funcao             string `json:"funcao"`
	DataInicio         string `json:"dataInicio"`
	Remuneracao        string `json:"remuneracao"`
	EnderecoLogradouro string `json:"enderecoLogradouro"`
	EnderecoCidade     string `json:"enderecoCidade"`
	ChavePix           string `json:"chavePix"`
}

// CriadoResponse devolve o cadastro e o link de convite gerado.
type CriadoResponse struct {
	Prestador  PrestadorPJ `json:"prestador"`
	ConviteURL string      `json:"conviteUrl"`
}
