package workspace

import (
	"strings"
	"unicode"
)

// PascalCase converts a kebab-case or snake_case string to PascalCase.
// Examples: "my-lib" -> "MyLib", "my_service" -> "MyService"
func PascalCase(s string) string {
	var result strings.Builder
	capitalizeNext := true

	for _, r := range s {
		if r == '-' || r == '_' {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// CamelCase converts a kebab-case or snake_case string to camelCase.
func CamelCase(s string) string {
	pascal := PascalCase(s)
	if pascal == "" {
		return ""
	}
	return strings.ToLower(pascal[:1]) + pascal[1:]
}

// ConstantCase converts a kebab-case or snake_case string to CONSTANT_CASE.
func ConstantCase(s string) string {
	replaced := strings.NewReplacer("-", "_").Replace(s)
	return strings.ToUpper(replaced)
}

// KebabCase converts a PascalCase, camelCase, or snake_case string to
// kebab-case.
func KebabCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		switch {
		case r == '_' || r == '-':
			result.WriteRune('-')
		case unicode.IsUpper(r):
			if i > 0 {
				result.WriteRune('-')
			}
			result.WriteRune(unicode.ToLower(r))
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}
