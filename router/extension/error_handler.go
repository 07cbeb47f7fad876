package extension

import (
	"net/http"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/citrusworks/shopadmin/router/extension/herror"
)

// errorResponse 失敗エンベロープ
type errorResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// ErrorHandler カスタムエラーハンドラ
//
// 全てのエラーを {success, message, errors?} エンベロープに変換します。
// バリデーションエラーはフィールド名からメッセージ一覧へのマップになります。
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(e error, c echo.Context) {
		var code int
		body := errorResponse{Success: false}

		switch err := e.(type) {
		case nil:
			return
		case *echo.HTTPError:
			if err.Internal != nil {
				if herr, ok := err.Internal.(*echo.HTTPError); ok {
					err = herr
				}
			}
			code = err.Code
			switch m := err.Message.(type) {
			case string:
				body.Message = m
			case vd.Errors:
				body.Message = "validation error"
				body.Errors = make(map[string][]string, len(m))
				for field, ferr := range m {
					body.Errors[field] = append(body.Errors[field], ferr.Error())
				}
			case error:
				body.Message = m.Error()
			}
		case *herror.InternalError:
			logger.Error(err.Error(), append(err.Fields, zap.String("requestId", GetRequestID(c)))...)
			code = http.StatusInternalServerError
		default:
			logger.Error(err.Error(), zap.String("requestId", GetRequestID(c)))
			code = http.StatusInternalServerError
		}
		if len(body.Message) == 0 {
			body.Message = http.StatusText(code)
		}

		if !c.Response().Committed {
			if c.Request().Method == http.MethodHead {
				e = c.NoContent(code)
			} else {
				e = JSON(c, code, body)
			}
			if e != nil {
				logger.Warn("failed to send error response", zap.Error(e), zap.String("requestId", GetRequestID(c)))
			}
		}
	}
}

// JSON jsoniterでシリアライズしたJSONレスポンスを返します
func JSON(c echo.Context, code int, i interface{}) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
	c.Response().WriteHeader(code)
	return jsoniter.ConfigFastest.NewEncoder(c.Response()).Encode(i)
}
