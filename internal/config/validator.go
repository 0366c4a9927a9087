package config

import (
	"fmt"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/notice-dispatcher/internal/pkg/errors"
	"github.com/darkkaiser/notice-dispatcher/internal/service/contract"
	"github.com/darkkaiser/notice-dispatcher/pkg/cronx"
	"github.com/darkkaiser/notice-dispatcher/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// newValidator JSON 필드명으로 에러를 보고하고 커스텀 태그가 등록된 Validator를 만듭니다.
//
//   - cors_origin: pkg/validation.ValidateCORSOrigin
//   - cron_spec:   초 필드를 포함한 cron 표현식
//   - channel:     email, sms, telegram (별칭 포함)
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "cors_origin", func(fl validator.FieldLevel) bool {
		return validation.ValidateCORSOrigin(fl.Field().String()) == nil
	})
	mustRegister(v, "cron_spec", func(fl validator.FieldLevel) bool {
		return cronx.Validate(fl.Field().String()) == nil
	})
	mustRegister(v, "channel", func(fl validator.FieldLevel) bool {
		_, err := contract.ParseChannel(fl.Field().String())
		return err == nil
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("커스텀 유효성 검사 태그('%s') 등록에 실패했습니다: %v", tag, err))
	}
}

// checkStruct 구조체를 검증하고 첫 번째 위반 항목을 읽기 쉬운 메시지로 바꿉니다.
func checkStruct(v *validator.Validate, s any, contextName string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !apperrors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return apperrors.Wrapf(err, apperrors.InvalidInput, "%s 검증에 실패했습니다", contextName)
	}

	fe := validationErrors[0]
	field := fe.Field()

	var msg string
	switch fe.Tag() {
	case "required", "required_if":
		msg = fmt.Sprintf("%s의 '%s' 항목은 필수입니다", contextName, field)
	case "min", "max":
		msg = fmt.Sprintf("%s의 '%s' 값이 허용 범위를 벗어났습니다 (조건: %s=%s, 입력: %v)", contextName, field, fe.Tag(), fe.Param(), fe.Value())
	case "file":
		msg = fmt.Sprintf("%s의 '%s'에 지정된 파일을 찾을 수 없습니다: '%v'", contextName, field, fe.Value())
	case "cors_origin":
		msg = fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: scheme://host[:port])", fe.Value())
	case "cron_spec":
		msg = fmt.Sprintf("%s의 실행 주기(time_spec)가 올바르지 않습니다: '%v' (예: \"0 0 9 * * *\", \"@every 1h\")", contextName, fe.Value())
	case "channel":
		msg = fmt.Sprintf("%s에 알 수 없는 채널이 지정되었습니다: '%v' (사용 가능: %s)", contextName, fe.Value(), contract.ChannelNames())
	default:
		msg = fmt.Sprintf("%s의 '%s' 설정이 올바르지 않습니다 (조건: %s)", contextName, field, fe.Tag())
	}

	return apperrors.New(apperrors.InvalidInput, msg)
}

// checkUniqueField 슬라이스 요소들의 fieldName 값이 서로 겹치지 않는지 확인합니다.
func checkUniqueField(v *validator.Validate, data any, fieldName, contextName string) error {
	if err := v.Var(data, "unique="+fieldName); err != nil {
		return apperrors.Wrapf(err, apperrors.InvalidInput, "중복된 %s ID가 존재합니다", contextName)
	}
	return nil
}
