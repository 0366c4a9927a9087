// Package handler API 버전과 무관하게 공통으로 사용하는 요청 처리 도구를 제공합니다.
package handler

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// 에러 메시지의 필드명으로 korean 태그를 사용합니다.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if name := fld.Tag.Get("korean"); name != "" {
				return name
			}
			return fld.Name
		})
	})

	return validate
}

// ValidateRequest 구조체의 validate 태그를 기준으로 요청을 검증합니다.
func ValidateRequest(req any) error {
	return getValidator().Struct(req)
}

// FormatValidationError 검증 에러를 사용자에게 보여줄 한국어 메시지로 변환합니다.
// 여러 필드가 실패한 경우 첫 번째 에러만 사용합니다.
func FormatValidationError(err error) string {
	if err == nil {
		return ""
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return err.Error()
	}

	return formatFieldError(validationErrors[0])
}

func formatFieldError(fieldErr validator.FieldError) string {
	fieldName := fieldErr.Field()
	kind := fieldErr.Kind()

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s는 필수입니다", fieldName)
	case "min":
		if kind == reflect.String {
			return fmt.Sprintf("%s는 최소 %s자 이상이어야 합니다", fieldName, fieldErr.Param())
		}
		if kind == reflect.Slice {
			return fmt.Sprintf("%s는 최소 %s개 이상이어야 합니다", fieldName, fieldErr.Param())
		}
		return fmt.Sprintf("%s는 최소 %s 이상이어야 합니다", fieldName, fieldErr.Param())
	case "max":
		if kind == reflect.String {
			return fmt.Sprintf("%s는 최대 %s자까지 입력 가능합니다", fieldName, fieldErr.Param())
		}
		if kind == reflect.Slice {
			return fmt.Sprintf("%s는 최대 %s개까지 지정할 수 있습니다", fieldName, fieldErr.Param())
		}
		return fmt.Sprintf("%s는 최대 %s까지 입력 가능합니다", fieldName, fieldErr.Param())
	case "url":
		return fmt.Sprintf("%s는 올바른 URL 형식이어야 합니다", fieldName)
	case "oneof":
		return fmt.Sprintf("%s는 다음 중 하나여야 합니다: %s", fieldName, fieldErr.Param())
	default:
		return fmt.Sprintf("%s 검증 실패: %s", fieldName, fieldErr.Tag())
	}
}
