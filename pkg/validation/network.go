// Package validation 설정 값과 요청 값 검증에 쓰이는 공통 규칙을 제공합니다.
package validation

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// ValidatePort 1-65535 범위의 포트인지 확인합니다.
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("포트는 1-65535 범위여야 합니다 (port=%d)", port)
	}
	return nil
}

// ValidateHostname localhost, IP 주소, 또는 RFC 1123 호스트명인지 확인합니다.
func ValidateHostname(host string) error {
	if host == "localhost" || net.ParseIP(host) != nil {
		return nil
	}
	if len(host) > 253 {
		return fmt.Errorf("호스트명이 253자를 초과합니다 (len=%d)", len(host))
	}

	labels := strings.Split(host, ".")
	for _, label := range labels {
		if label == "" || len(label) > 63 {
			return fmt.Errorf("호스트명의 레이블 길이가 올바르지 않습니다 (host=%q)", host)
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return fmt.Errorf("레이블은 하이픈으로 시작하거나 끝날 수 없습니다 (label=%q)", label)
		}
		for _, r := range label {
			if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-') {
				return fmt.Errorf("호스트명에 허용되지 않는 문자가 있습니다 (char=%q, host=%q)", r, host)
			}
		}
	}

	if _, err := strconv.Atoi(labels[len(labels)-1]); err == nil {
		return fmt.Errorf("최상위 도메인은 숫자로만 구성될 수 없습니다 (host=%q)", host)
	}

	return nil
}

// ValidateCORSOrigin "*" 또는 경로 없는 "scheme://host[:port]" 형식인지 확인합니다.
func ValidateCORSOrigin(origin string) error {
	origin = strings.TrimSpace(origin)
	switch {
	case origin == "*":
		return nil
	case origin == "":
		return fmt.Errorf("CORS Origin이 비어 있습니다")
	case strings.HasSuffix(origin, "/"):
		return fmt.Errorf("CORS Origin은 '/'로 끝날 수 없습니다 (origin=%q)", origin)
	}

	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("CORS Origin을 해석할 수 없습니다 (origin=%q): %w", origin, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("CORS Origin은 http 또는 https여야 합니다 (origin=%q)", origin)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" || u.User != nil {
		return fmt.Errorf("CORS Origin에는 경로, 쿼리, 프래그먼트, 사용자 정보를 넣을 수 없습니다 (origin=%q)", origin)
	}

	return validateHostPort(u, origin)
}

// ValidateWebhookURL 텔레그램 웹훅으로 등록 가능한 https URL인지 확인합니다.
func ValidateWebhookURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("웹훅 URL이 비어 있습니다")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("웹훅 URL을 해석할 수 없습니다 (url=%q): %w", raw, err)
	}
	if u.Scheme != "https" {
		return fmt.Errorf("웹훅 URL은 https여야 합니다 (url=%q)", raw)
	}

	return validateHostPort(u, raw)
}

func validateHostPort(u *url.URL, raw string) error {
	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("포트가 숫자가 아닙니다 (input=%q)", raw)
		}
		if err := ValidatePort(port); err != nil {
			return err
		}
	}

	host := u.Hostname()
	if host == "" {
		return fmt.Errorf("호스트가 없습니다 (input=%q)", raw)
	}

	return ValidateHostname(host)
}
