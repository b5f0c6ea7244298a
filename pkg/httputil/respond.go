package httputil

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/nattu22/pptgenerator/pkg/errors"
)

// maxRequestBytes caps request bodies. Deck payloads for very large
// presentations stay well under this.
const maxRequestBytes = 4 << 20

// errorEnvelope is the JSON shape written by [RespondError].
type errorEnvelope struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondJSON writes v to w as JSON with the given HTTP status.
//
// The Content-Type header is set to application/json. Encoding failures
// after the header has been written cannot be reported to the client and
// are silently dropped; callers pass values they control, so a marshal
// failure here is a programming error.
func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// RespondError writes err to w as a JSON error envelope.
//
// The HTTP status comes from [StatusCode] and the body carries the
// machine-readable code plus the user-facing message:
//
//	{"error": {"code": "SESSION_EXPIRED", "message": "session abc123 expired"}}
//
// Errors without an application code map to 500 INTERNAL_ERROR.
func RespondError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	if code == "" {
		code = apperrors.ErrCodeInternal
	}
	RespondJSON(w, StatusCode(err), errorEnvelope{
		Error: errorDetail{
			Code:    string(code),
			Message: apperrors.UserMessage(err),
		},
	})
}

// StatusCode maps an application error to its HTTP status.
//
// Validation failures map to 400, missing resources to 404, expired
// sessions to 410, templates with no usable layout to 422, and upstream
// model failures to 502. Everything else, including errors without a
// code, is a 500.
func StatusCode(err error) int {
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeInvalidInput,
		apperrors.ErrCodeInvalidTemplate,
		apperrors.ErrCodeInvalidPayload,
		apperrors.ErrCodeInvalidConfig,
		apperrors.ErrCodeInvalidFormat,
		apperrors.ErrCodeInvalidOptions:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound,
		apperrors.ErrCodeTemplateNotFound,
		apperrors.ErrCodeFileNotFound,
		apperrors.ErrCodeSessionNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeSessionExpired:
		return http.StatusGone
	case apperrors.ErrCodeNoUsableLayout:
		return http.StatusUnprocessableEntity
	case apperrors.ErrCodeGenerationFailed,
		apperrors.ErrCodeBadModelOutput:
		return http.StatusBadGateway
	case apperrors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// DecodeJSON reads the request body into v.
//
// The body is capped at 4 MiB. Malformed JSON or an oversized body
// returns an INVALID_PAYLOAD error suitable for [RespondError]. Unknown
// fields are tolerated so clients can send annotated payloads.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBytes))
	if err := dec.Decode(v); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidPayload, err, "decode request body")
	}
	return nil
}
