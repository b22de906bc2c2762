package customer

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, char := range s {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

// isValidCPF runs the official check-digit algorithm over an 11 digit
// document. Repeated-digit documents (111.111.111-11 and friends) pass
// the arithmetic but are rejected as well.
func isValidCPF(cpf string) bool {
	if len(cpf) != 11 || !isDigits(cpf) {
		return false
	}

	allSame := true
	for i := 1; i < len(cpf); i++ {
		if cpf[i] != cpf[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	for i := 9; i < 11; i++ {
		sum := 0
		for num := 0; num < i; num++ {
			sum += int(cpf[num]-'0') * ((i + 1) - num)
		}
		digit := ((sum * 10) % 11) % 10
		if digit != int(cpf[i]-'0') {
			return false
		}
	}
	return true
}

func isValidRG(rg string) bool {
	return isDigits(rg)
}

func isValidGender(gender string) bool {
	switch gender {
	case "M", "F", "O":
		return true
	default:
		return false
	}
}
