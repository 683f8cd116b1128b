package domain

import (
	"fmt"

	"golang.org/x/text/language"
)

// Language двухбуквенный код поддерживаемого языка (ISO 639-1).
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHausa   Language = "ha"
	LanguageYoruba  Language = "yo"
	LanguageIgbo    Language = "ig"
	LanguageFrench  Language = "fr"
)

const DefaultLanguage = LanguageEnglish

var supportedLanguages = map[Language]struct{}{
	LanguageEnglish: {},
	LanguageHausa:   {},
	LanguageYoruba:  {},
	LanguageIgbo:    {},
	LanguageFrench:  {},
}

// ParseLanguage разбирает BCP 47 тег ("ha", "ha-NG", "EN") и сводит его к базовому языку.
// Для неподдерживаемых языков возвращает ErrInvalidLanguage.
func ParseLanguage(s string) (Language, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("parse language `%s`: %w", s, ErrInvalidLanguage)
	}
	base, _ := tag.Base()
	lang := Language(base.String())
	if _, ok := supportedLanguages[lang]; !ok {
		return "", fmt.Errorf("language `%s`: %w", s, ErrInvalidLanguage)
	}
	return lang, nil
}

// ParseLanguageOrDefault как ParseLanguage, но пустая строка дает DefaultLanguage.
func ParseLanguageOrDefault(s string) (Language, error) {
	if s == "" {
		return DefaultLanguage, nil
	}
	return ParseLanguage(s)
}
