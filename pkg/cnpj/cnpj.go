// Package cnpj valida y formatea el CNPJ (Cadastro Nacional da Pessoa Jurídica).
package cnpj

import (
	"errors"
	"fmt"
	"unicode"
)

// Length cantidad de dígitos de un CNPJ completo (12 base + 2 verificadores).
const Length = 14

// pesos del módulo 11 para el primer y segundo dígito verificador.
var (
	firstWeights  = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	secondWeights = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// ErrInvalid el CNPJ no tiene 14 dígitos o los verificadores no cierran.
var ErrInvalid = errors.New("cnpj: inválido")

// Validate acepta "12.345.678/0001-95" o "12345678000195".
func Validate(s string) error {
	digits := extractDigits(s)
	if len(digits) != Length {
		return fmt.Errorf("%w: se esperaban %d dígitos, se encontraron %d", ErrInvalid, Length, len(digits))
	}
	if allEqual(digits) {
		return fmt.Errorf("%w: dígitos repetidos", ErrInvalid)
	}
	first := checkDigit(digits[:12], firstWeights[:])
	second := checkDigit(append(append([]byte{}, digits[:12]...), first), secondWeights[:])
	if digits[12] != first || digits[13] != second {
		return fmt.Errorf("%w: dígito verificador esperado %c%c, recibido %c%c",
			ErrInvalid, first, second, digits[12], digits[13])
	}
	return nil
}

// CheckDigits calcula los dos verificadores para los 12 primeros dígitos.
func CheckDigits(base string) (string, error) {
	digits := extractDigits(base)
	if len(digits) < 12 {
		return "", fmt.Errorf("%w: se requieren 12 dígitos, se encontraron %d", ErrInvalid, len(digits))
	}
	first := checkDigit(digits[:12], firstWeights[:])
	second := checkDigit(append(append([]byte{}, digits[:12]...), first), secondWeights[:])
	return string([]byte{first, second}), nil
}

// Format devuelve la máscara XX.XXX.XXX/XXXX-XX. Si no hay 14 dígitos devuelve s sin cambios.
func Format(s string) string {
	d := extractDigits(s)
	if len(d) != Length {
		return s
	}
	return fmt.Sprintf("%s.%s.%s/%s-%s", d[0:2], d[2:5], d[5:8], d[8:12], d[12:14])
}

func checkDigit(digits []byte, weights []int) byte {
	var sum int
	for i, d := range digits {
		sum += int(d-'0') * weights[i]
	}
	remainder := sum % 11
	if remainder < 2 {
		return '0'
	}
	return byte('0' + (11 - remainder))
}

func allEqual(digits []byte) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			out = append(out, byte(r))
		}
	}
	return out
}
