package services

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// FailureKind — категория ошибки, остановившей прогон синхронизации.
type FailureKind int

const (
	FailureGeneric FailureKind = iota
	FailureTimeout
	FailureConnection
)

// ClassifyFailure относит ошибку к таймауту, ошибке соединения или прочим.
// Таймаут проверяется первым: url.Error от истёкшего дедлайна одновременно
// является и net.Error, и обёрткой над *net.OpError.
func ClassifyFailure(err error) FailureKind {
	if err == nil {
		return FailureGeneric
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return FailureTimeout
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return FailureConnection
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return FailureConnection
	}
	return FailureGeneric
}

// FailureMessage формирует текст отчёта о прерванном прогоне.
// Тексты сообщений сохранены от прежнего синхронизатора.
func FailureMessage(err error) string {
	switch ClassifyFailure(err) {
	case FailureTimeout:
		return "Превышено время ожидания..."
	case FailureConnection:
		return fmt.Sprintf("%v Ошибка соединения", err)
	default:
		return fmt.Sprintf("%v ERROR_2", err)
	}
}
