package ui

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/mhpenta/sdprompt"
)

// User-facing messages.
const (
	MsgEmptyKeyword = "キーワードを入力してください"
	MsgTimeout      = "応答時間が長すぎます。少し時間をおいて再試行してください。"
	MsgRateLimited  = "使用制限に達しました。しばらくお待ちください。"
	MsgNetwork      = "通信エラーが発生しました。インターネット接続を確認してください。"
	MsgSystem       = "システムに不具合が起きています。時間をおいてお試しください。"
	MsgServer       = "サーバーエラーが発生しました。しばらくお待ちください。"
	MsgGeneric      = "プロンプト生成に失敗しました。もう一度お試しください。"
)

// Message maps an error from Controller.Run to a fixed Japanese message.
// Typed errors are checked first, then the error text.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if msg, ok := typedMessage(err); ok {
		return msg
	}
	return textMessage(err.Error())
}

func typedMessage(err error) (string, bool) {
	var (
		timeoutErr *sdprompt.TimeoutError
		rateErr    *sdprompt.RateLimitedError
		netErr     net.Error
		allErr     *sdprompt.AllProvidersFailedError
		httpErr    *sdprompt.VendorHTTPError
		emptyErr   *sdprompt.EmptyGenerationError
	)

	switch {
	case errors.Is(err, sdprompt.ErrEmptyKeyword):
		return MsgEmptyKeyword, true
	case errors.As(err, &timeoutErr), errors.Is(err, context.DeadlineExceeded):
		return MsgTimeout, true
	case errors.As(err, &rateErr):
		return MsgRateLimited, true
	case errors.As(err, &netErr):
		if netErr.Timeout() {
			return MsgTimeout, true
		}
		return MsgNetwork, true
	case errors.As(err, &allErr), errors.Is(err, sdprompt.ErrNoProviders):
		return MsgSystem, true
	case errors.As(err, &httpErr), errors.As(err, &emptyErr):
		return MsgServer, true
	}
	return "", false
}

func textMessage(text string) string {
	msg := strings.ToLower(text)
	switch {
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "タイムアウト"):
		return MsgTimeout
	case strings.Contains(msg, "rate limit"), strings.Contains(msg, "制限"):
		return MsgRateLimited
	case strings.Contains(msg, "network"), strings.Contains(msg, "fetch"), strings.Contains(msg, "connection"):
		return MsgNetwork
	case strings.Contains(msg, "all providers"):
		return MsgSystem
	case strings.Contains(msg, "api"), strings.Contains(msg, "server"):
		return MsgServer
	}
	return MsgGeneric
}
