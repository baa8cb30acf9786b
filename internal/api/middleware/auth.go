package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
)

// AdminTokenHeader заголовок с админским токеном
const AdminTokenHeader = "X-Admin-Token"

// Auth проверяет, что запрос выполняет аутентифицированный администратор
// Проверка непрозрачна для остального кода: сравнивается только токен,
// никакой модели пользователей у сервиса нет
func Auth(adminToken string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(AdminTokenHeader)

			if token == "" {
				handlers.RespondError(w, http.StatusUnauthorized, "требуется заголовок X-Admin-Token")
				return
			}

			if subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) != 1 {
				handlers.RespondError(w, http.StatusForbidden, "доступ запрещен")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
