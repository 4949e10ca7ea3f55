package types

// PredictionResponse is returned by POST /predict.
type PredictionResponse struct {
	// 0 = not potable, 1 = potable.
	// example: 1
	Potability int `json:"Potability" enums:"0,1" example:"1"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: request body too large
	Error string `json:"error" example:"request body too large"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}

// Validation error types. The codes match the FastAPI-style 422 payloads
// existing clients already parse.
const (
	ErrTypeMissing         = "missing"
	ErrTypeFloatParsing    = "float_parsing"
	ErrTypeFloatType       = "float_type"
	ErrTypeModelAttributes = "model_attributes_type"
	ErrTypeJSONInvalid     = "json_invalid"
)

// ValidationError describes one field that failed schema validation.
type ValidationError struct {
	// Location of the offending value, e.g. ["body","ph"]. For json_invalid
	// the second element is the byte offset of the syntax error.
	Loc []any `json:"loc" swaggertype:"array,string"`
	// Human readable message.
	// example: Field required
	Msg string `json:"msg" example:"Field required"`
	// Machine readable error type.
	// example: missing
	Type string `json:"type" example:"missing"`
	// The rejected input, when there was one.
	Input any `json:"input,omitempty" swaggertype:"object"`
	// Extra context, e.g. the decoder error for json_invalid.
	Ctx map[string]any `json:"ctx,omitempty"`
}

// ValidationErrorResponse is returned with 422 when the request body does not
// match the water sample schema.
type ValidationErrorResponse struct {
	// example: validation failed
	Error string `json:"error" example:"validation failed"`
	// example: 422
	Code   int               `json:"code" example:"422"`
	Detail []ValidationError `json:"detail"`
}

