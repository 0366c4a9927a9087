package request

// SenderIdentityRequest 이메일 발신자 이름 변경 요청
type SenderIdentityRequest struct {
	// 새 발신자 이름
	Name string `json:"name" validate:"required,max=128" korean:"발신자 이름" example:"Служба поддержки"`
}

// WebhookRequest 텔레그램 봇 웹훅 갱신 요청
type WebhookRequest struct {
	// https 웹훅 주소
	URL string `json:"url" validate:"required,url" korean:"웹훅 주소" example:"https://bot.example.com/hook"`
}
