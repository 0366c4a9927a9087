package handler

import (
	"net/http"
	"strconv"

	apihandler "github.com/darkkaiser/notice-dispatcher/internal/service/api/handler"
	"github.com/darkkaiser/notice-dispatcher/internal/service/api/httputil"
	"github.com/darkkaiser/notice-dispatcher/internal/service/api/v1/model/request"
	"github.com/darkkaiser/notice-dispatcher/internal/service/api/v1/model/response"
	"github.com/darkkaiser/notice-dispatcher/internal/service/contract"
	"github.com/labstack/echo/v4"
)

// SetEmailSenderHandler godoc
// @Summary 이메일 발신자 이름 변경
// @Description 이후 발송되는 이메일의 발신자 이름을 바꿉니다.
// @Tags Channel
// @Accept json
// @Produce json
// @Param X-Application-Id header string true "Application ID"
// @Param X-App-Key header string true "Application Key"
// @Param sender body request.SenderIdentityRequest true "발신자 정보"
// @Success 200 {object} response.SuccessResponse "성공"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 403 {object} response.ErrorResponse "허용되지 않은 채널"
// @Failure 503 {object} response.ErrorResponse "채널 비활성 또는 서비스 중지"
// @Security ApiKeyAuth
// @Router /api/v1/channels/email/sender [put]
func (h *Handler) SetEmailSenderHandler(c echo.Context) error {
	if err := h.authorizeChannel(c, contract.ChannelEmail); err != nil {
		return err
	}

	req := new(request.SenderIdentityRequest)
	if err := c.Bind(req); err != nil {
		return NewErrInvalidBody()
	}
	if err := apihandler.ValidateRequest(req); err != nil {
		return NewErrValidationFailed(apihandler.FormatValidationError(err))
	}

	if err := h.operator.SetEmailSenderIdentity(req.Name); err != nil {
		return httputil.FromAppError(err)
	}

	return httputil.Success(c)
}

// CheckSMSBalanceHandler godoc
// @Summary SMS 잔액 조회
// @Description 사용자의 SMS 발송 잔액을 조회합니다.
// @Tags Channel
// @Produce json
// @Param X-Application-Id header string true "Application ID"
// @Param X-App-Key header string true "Application Key"
// @Param user_id path int true "사용자 ID"
// @Success 200 {object} response.BalanceResponse "잔액"
// @Failure 400 {object} response.ErrorResponse "user_id 형식 오류"
// @Failure 403 {object} response.ErrorResponse "허용되지 않은 채널"
// @Failure 503 {object} response.ErrorResponse "채널 비활성 또는 서비스 중지"
// @Security ApiKeyAuth
// @Router /api/v1/channels/sms/balance/{user_id} [get]
func (h *Handler) CheckSMSBalanceHandler(c echo.Context) error {
	if err := h.authorizeChannel(c, contract.ChannelSMS); err != nil {
		return err
	}

	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		return NewErrInvalidUserID()
	}

	balance, err := h.operator.CheckSMSBalance(userID)
	if err != nil {
		return httputil.FromAppError(err)
	}

	return c.JSON(http.StatusOK, response.BalanceResponse{
		ResultCode: 0,
		UserID:     userID,
		Balance:    balance,
	})
}

// UpdateTelegramWebhookHandler godoc
// @Summary 텔레그램 웹훅 갱신
// @Description 텔레그램 봇의 웹훅 주소를 갱신합니다. https 주소만 허용합니다.
// @Tags Channel
// @Accept json
// @Produce json
// @Param X-Application-Id header string true "Application ID"
// @Param X-App-Key header string true "Application Key"
// @Param webhook body request.WebhookRequest true "웹훅 주소"
// @Success 200 {object} response.SuccessResponse "성공"
// @Failure 400 {object} response.ErrorResponse "잘못된 주소"
// @Failure 403 {object} response.ErrorResponse "허용되지 않은 채널"
// @Failure 503 {object} response.ErrorResponse "채널 비활성 또는 서비스 중지"
// @Security ApiKeyAuth
// @Router /api/v1/channels/telegram/webhook [put]
func (h *Handler) UpdateTelegramWebhookHandler(c echo.Context) error {
	if err := h.authorizeChannel(c, contract.ChannelTelegram); err != nil {
		return err
	}

	req := new(request.WebhookRequest)
	if err := c.Bind(req); err != nil {
		return NewErrInvalidBody()
	}
	if err := apihandler.ValidateRequest(req); err != nil {
		return NewErrValidationFailed(apihandler.FormatValidationError(err))
	}

	if err := h.operator.UpdateTelegramWebhook(req.URL); err != nil {
		return httputil.FromAppError(err)
	}

	return httputil.Success(c)
}
