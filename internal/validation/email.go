// Package validation содержит функции валидации входных данных.
package validation

import "strings"

// IsValidEmail выполняет синтаксическую проверку email: одна "собака",
// непустая локальная часть и домен с точкой не на краях.
func IsValidEmail(email string) bool {
	if email == "" {
		return false
	}

	at := strings.IndexByte(email, '@')
	if at <= 0 || at != strings.LastIndexByte(email, '@') {
		return false
	}

	domain := email[at+1:]
	if domain == "" {
		return false
	}

	dot := strings.IndexByte(domain, '.')
	if dot <= 0 || strings.HasSuffix(domain, ".") {
		return false
	}

	for _, ch := range email {
		if ch == ' ' || ch == '\t' || ch == '\n' {
			return false
		}
	}

	return true
}
