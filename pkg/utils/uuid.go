package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto e legível para sessões de painel.
// Aparece em todos os logs do ciclo de atualização.
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, 8)
}
