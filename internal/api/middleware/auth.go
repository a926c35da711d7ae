package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SportHub-BookingService/internal/api/handlers"
)

const msgMissingUserID = "отсутствует или некорректен заголовок X-User-ID"

// HeaderUserID заголовок с идентификатором пользователя
// Аутентификацию выполняет API gateway, сервис доверяет заголовку
const HeaderUserID = "X-User-ID"

type ctxKey string

const userIDKey ctxKey = "userID"

// Auth middleware для защищенных маршрутов
// Требует наличие валидного заголовка X-User-ID
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := parseUserID(r)
		if err != nil {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Identity middleware для публичных маршрутов, принимающих и гостей
// Кладет userID в контекст, если заголовок передан, но не требует его
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID, err := parseUserID(r); err == nil {
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID извлекает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

func parseUserID(r *http.Request) (int64, error) {
	raw := r.Header.Get(HeaderUserID)
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if userID <= 0 {
		return 0, strconv.ErrRange
	}
	return userID, nil
}
