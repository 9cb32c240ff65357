package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

const maskedValue = "[MASKED]"

// sensitiveHeaders はログ出力時に値をマスキングするヘッダー名のリスト (小文字で定義)
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"x-api-key":     true,
	"x-csrf-token":  true,
}

// sensitiveFields はJSONボディ内でマスキングするキー (小文字で定義)
var sensitiveFields = map[string]bool{
	"password": true,
	"token":    true,
}

// maxLoggedBodyBytes を超えるボディは読み取らない
const maxLoggedBodyBytes = 64 << 10

// RequestDetailLoggingMiddleware はリクエストヘッダーとBody (エラー時のみ) をログに出力するミドルウェア。
// log.detail が有効なときだけ組み込みます。
func RequestDetailLoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := chimiddleware.GetReqID(r.Context())

			var requestBodyBytes []byte
			if r.Body != nil && r.ContentLength > 0 && r.ContentLength <= maxLoggedBodyBytes {
				b, err := io.ReadAll(r.Body)
				if err != nil {
					logger.ErrorContext(r.Context(), "Failed to read request body in middleware", slog.Any("error", err), slog.String("request_id", requestID))
				} else {
					requestBodyBytes = b
				}
				r.Body = io.NopCloser(bytes.NewBuffer(requestBodyBytes))
			}

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			logAttrs := []slog.Attr{
				slog.String("request_id", requestID),
				slog.String("type", "request_detail_log"),
				slog.String("method", r.Method),
				slog.String("uri", r.RequestURI),
				slog.String("proto", r.Proto),
				slog.Int("status_code", status),
			}

			if headers := maskHeaders(r.Header); len(headers) > 0 {
				headerAttrs := make([]interface{}, 0, len(headers))
				for k, v := range headers {
					headerAttrs = append(headerAttrs, slog.String(k, v))
				}
				logAttrs = append(logAttrs, slog.Group("request_headers", headerAttrs...))
			}

			// エラー時のみボディを出す
			if status >= 400 && len(requestBodyBytes) > 0 {
				logAttrs = append(logAttrs, slog.Any("request_body", bodyForLog(r.Header.Get("Content-Type"), requestBodyBytes)))
			}

			logLevel := slog.LevelDebug
			if status >= 500 {
				logLevel = slog.LevelError
			} else if status >= 400 {
				logLevel = slog.LevelWarn
			}

			logger.LogAttrs(r.Context(), logLevel, "HTTP request detail", logAttrs...)
		})
	}
}

// maskHeaders はヘッダー情報をログ出力用に整形・マスキングします
func maskHeaders(headers http.Header) map[string]string {
	result := make(map[string]string, len(headers))
	for key, values := range headers {
		lowerKey := strings.ToLower(key)
		logKey := strings.ReplaceAll(lowerKey, "-", "_")
		if sensitiveHeaders[lowerKey] {
			result[logKey] = maskedValue
		} else {
			result[logKey] = strings.Join(values, ", ")
		}
	}
	return result
}

func bodyForLog(contentType string, body []byte) interface{} {
	if !strings.HasPrefix(contentType, "application/json") {
		return fmt.Sprintf("[Non-JSON body: %d bytes, Content-Type: %s]", len(body), contentType)
	}
	var data interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return fmt.Sprintf("[Unparseable JSON body: %d bytes]", len(body))
	}
	return maskJSON(data)
}

// maskJSON はネストしたオブジェクトも含めて機密キーの値を置き換えます
func maskJSON(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, val := range t {
			if sensitiveFields[strings.ToLower(k)] {
				t[k] = maskedValue
				continue
			}
			t[k] = maskJSON(val)
		}
		return t
	case []interface{}:
		for i := range t {
			t[i] = maskJSON(t[i])
		}
		return t
	default:
		return v
	}
}
