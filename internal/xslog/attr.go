package xslog

import (
	"log/slog"
	"net/url"
	"time"
)

func Error(err error) slog.Attr {
	const errorKey = "error"
	return slog.String(errorKey, err.Error())
}

func RequestID(requestID string) slog.Attr {
	const requestIDKey = "request_id"
	return slog.String(requestIDKey, requestID)
}

func Method(method string) slog.Attr {
	const methodKey = "method"
	return slog.String(methodKey, method)
}

func URL(u string) slog.Attr {
	const urlKey = "url"
	return slog.String(urlKey, u)
}

func Query(query url.Values) slog.Attr {
	const queryKey = "query"
	return slog.String(queryKey, query.Encode())
}

func HTTPStatus(status int) slog.Attr {
	const statusKey = "status"
	return slog.Int(statusKey, status)
}

func Reason(reason string) slog.Attr {
	const reasonKey = "reason"
	return slog.String(reasonKey, reason)
}

func Success(ok bool) slog.Attr {
	const successKey = "success"
	return slog.Bool(successKey, ok)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func Resource(resource string) slog.Attr {
	const resourceKey = "resource"
	return slog.String(resourceKey, resource)
}

func StartDate(day string) slog.Attr {
	const startDateKey = "start_date"
	return slog.String(startDateKey, day)
}

func EndDate(day string) slog.Attr {
	const endDateKey = "end_date"
	return slog.String(endDateKey, day)
}

func NextToken(token string) slog.Attr {
	const nextTokenKey = "next_token"
	return slog.String(nextTokenKey, token)
}
