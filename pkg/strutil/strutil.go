// Package strutil 문자열 처리 유틸리티를 제공합니다.
package strutil

import (
	"strings"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/unicode/norm"
)

// ToSnakeCase "TelegramBot", "telegram-bot", "Telegram Bot"을 모두 "telegram_bot"으로 변환합니다.
func ToSnakeCase(s string) string {
	return strcase.ToSnake(strings.TrimSpace(s))
}

// SplitAndTrim sep으로 나눈 뒤 각 항목의 공백을 제거하고 빈 항목은 버립니다.
// 남는 항목이 없으면 nil을 반환합니다.
//
//	SplitAndTrim("Да, , Нет", ",") // ["Да", "Нет"]
func SplitAndTrim(s, sep string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return CompactTrimmed(strings.Split(s, sep))
}

// CompactTrimmed 각 항목의 앞뒤 공백을 제거하고 빈 항목을 뺀 새 슬라이스를 반환합니다. 결과가 없으면 nil입니다.
func CompactTrimmed(items []string) []string {
	var result []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}

// CharCount NFC 정규화 후의 문자(rune) 수를 반환합니다.
// 조합형으로 입력된 "й"(и + ̆)도 한 글자로 셉니다.
func CharCount(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}

// TruncateChars s를 NFC로 정규화한 뒤 앞에서부터 최대 limit 글자만 남깁니다.
// 길이 검사와 절단은 같은 정규화 문자열 기준이며, 잘리지 않은 경우에도 정규화된 문자열을 반환합니다.
func TruncateChars(s string, limit int) (string, bool) {
	if limit < 0 {
		limit = 0
	}

	normalized := norm.NFC.String(s)
	if utf8.RuneCountInString(normalized) <= limit {
		return normalized, false
	}

	runes := []rune(normalized)
	return string(runes[:limit]), true
}
