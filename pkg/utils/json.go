package utils

import "encoding/json"

// PrettyJson serializa um valor com indentação para logs de depuração.
// Falha de serialização não pode derrubar um log, então vira texto.
func PrettyJson(in any) string {
	buffer, err := json.MarshalIndent(in, "", "\t")
	if err != nil {
		return "<json inválido: " + err.Error() + ">"
	}

	return string(buffer)
}
