package config

import (
	"fmt"
	"os"
	"strings"

	apperrors "github.com/darkkaiser/notice-dispatcher/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Load 기본 설정 파일(DefaultFilename)을 읽습니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 설정을 다음 순서로 겹쳐 읽은 뒤 검증합니다. 뒤에 오는 값이 우선합니다.
//
//  1. 기본값 (newDefaultConfig)
//  2. JSON 설정 파일
//  3. NOTICE_ 접두어 환경 변수
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "기본 설정을 불러오지 못했습니다")
	}

	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrapf(err, apperrors.System, "설정 파일을 찾을 수 없습니다: '%s'", filename)
		}
		return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "설정 파일을 읽는 중 오류가 발생했습니다: '%s'", filename)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKeyToPath), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수를 불러오지 못했습니다")
	}

	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &appConfig,
			TagName:          "json",
			ErrorUnused:      true,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 값을 해석하지 못했습니다 (알 수 없는 항목이나 잘못된 타입이 있는지 확인하세요)")
	}

	if err := appConfig.validate(newValidator()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}

// envKeyToPath NOTICE_NOTIFY_API__WS__LISTEN_PORT → notify_api.ws.listen_port
func envKeyToPath(key string) string {
	key = strings.TrimPrefix(key, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(key), "__", ".")
}
