package handler

import (
	"net/http"

	"github.com/darkkaiser/notice-dispatcher/internal/service/api/auth"
	"github.com/darkkaiser/notice-dispatcher/internal/service/api/constants"
	apihandler "github.com/darkkaiser/notice-dispatcher/internal/service/api/handler"
	"github.com/darkkaiser/notice-dispatcher/internal/service/api/httputil"
	"github.com/darkkaiser/notice-dispatcher/internal/service/api/v1/model/request"
	"github.com/darkkaiser/notice-dispatcher/internal/service/api/v1/model/response"
	applog "github.com/darkkaiser/notice-dispatcher/pkg/log"
	"github.com/darkkaiser/notice-dispatcher/pkg/strutil"
	"github.com/labstack/echo/v4"
)

// SendNoticeHandler godoc
// @Summary 알림 발송
// @Description 지정한 채널(email, sms, telegram)로 알림을 발송합니다.
// @Description
// @Description 메시지 앞에는 "[HH:MM:SS] " 형식의 발송 시각이 붙고, 채널 최대 길이를 넘으면 잘립니다.
// @Description 첨부 파일은 email, 플래시 모드는 sms, 버튼은 telegram 채널에서만 사용할 수 있습니다.
// @Description
// @Description ```bash
// @Description curl -X POST "http://localhost:2443/api/v1/notices" \
// @Description   -H "Content-Type: application/json" \
// @Description   -H "X-Application-Id: ops-bot" \
// @Description   -H "X-App-Key: your-app-key" \
// @Description   -d '{"channel":"telegram","recipient":"@ops_alerts","message":"배포 완료","buttons":["확인"]}'
// @Description ```
// @Tags Notice
// @Accept json
// @Produce json
// @Param X-Application-Id header string true "Application ID"
// @Param X-App-Key header string true "Application Key"
// @Param notice body request.NoticeRequest true "발송할 알림"
// @Success 200 {object} response.NoticeResponse "발송 결과"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청 (필수 값 누락, 채널에 맞지 않는 옵션 등)"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Failure 403 {object} response.ErrorResponse "허용되지 않은 채널"
// @Failure 404 {object} response.ErrorResponse "지원하지 않는 채널"
// @Failure 503 {object} response.ErrorResponse "채널 비활성 또는 서비스 중지"
// @Security ApiKeyAuth
// @Router /api/v1/notices [post]
func (h *Handler) SendNoticeHandler(c echo.Context) error {
	req := new(request.NoticeRequest)
	if err := c.Bind(req); err != nil {
		return NewErrInvalidBody()
	}

	if err := apihandler.ValidateRequest(req); err != nil {
		return NewErrValidationFailed(apihandler.FormatValidationError(err))
	}

	notice, err := req.ToNoticeRequest()
	if err != nil {
		return httputil.FromAppError(err)
	}

	if err := h.authorizeChannel(c, notice.Channel); err != nil {
		return err
	}

	h.log(c).WithFields(applog.Fields{
		"application_id": auth.MustGetApplication(c).ID,
		"channel":        notice.Channel.String(),
		"message_chars":  strutil.CharCount(notice.Message),
	}).Debug(constants.LogMsgNoticeRequested)

	receipt, err := h.dispatcher.Dispatch(c.Request().Context(), notice)
	if err != nil {
		return httputil.FromAppError(err)
	}

	return c.JSON(http.StatusOK, response.NewNoticeResponse(receipt))
}
