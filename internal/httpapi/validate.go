package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime"
	"strconv"
	"strings"

	"github.com/Vireya-Hydrocore/hydrocore-api-machine-learning/pkg/types"
)

const (
	msgMissing      = "Field required"
	msgFloatType    = "Input should be a valid number"
	msgFloatParsing = "Input should be a valid number, unable to parse string as a number"
	msgNotAnObject  = "Input should be a valid dictionary or object to extract fields from"
	msgJSONInvalid  = "JSON decode error"
)

// isJSONContentType reports whether a request with this Content-Type header
// has its body decoded as JSON. An absent header counts as JSON, as do
// application/json and any application/*+json type.
func isJSONContentType(ct string) bool {
	if strings.TrimSpace(ct) == "" {
		return true
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	typ, sub, ok := strings.Cut(mt, "/")
	if !ok || typ != "application" {
		return false
	}
	return sub == "json" || strings.HasSuffix(sub, "+json")
}

// rejectNonJSONBody builds the error for a body sent with a non-JSON
// Content-Type: the raw body is not an object, so the schema cannot apply.
func rejectNonJSONBody(body []byte) []types.ValidationError {
	if len(bytes.TrimSpace(body)) == 0 {
		return []types.ValidationError{{Loc: []any{"body"}, Msg: msgMissing, Type: types.ErrTypeMissing}}
	}
	return []types.ValidationError{{Loc: []any{"body"}, Msg: msgNotAnObject, Type: types.ErrTypeModelAttributes, Input: string(body)}}
}

// DecodeWaterSample validates body against the water sample schema and
// returns one ValidationError per failing field in FeatureNames order.
// An empty body is a missing body; malformed JSON is a single json_invalid
// error located at the byte offset of the syntax error.
// Numbers, numeric strings and booleans are accepted; unknown keys are ignored.
func DecodeWaterSample(body []byte) (types.WaterSample, []types.ValidationError) {
	var s types.WaterSample
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return s, []types.ValidationError{{Loc: []any{"body"}, Msg: msgMissing, Type: types.ErrTypeMissing}}
	}
	if !json.Valid(trimmed) {
		var raw json.RawMessage
		return s, []types.ValidationError{jsonInvalid(body, json.Unmarshal(body, &raw))}
	}
	switch trimmed[0] {
	case '{':
	case 'n':
		return s, []types.ValidationError{{Loc: []any{"body"}, Msg: msgMissing, Type: types.ErrTypeMissing}}
	default:
		var input any
		_ = json.Unmarshal(trimmed, &input)
		return s, []types.ValidationError{{Loc: []any{"body"}, Msg: msgNotAnObject, Type: types.ErrTypeModelAttributes, Input: input}}
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return s, []types.ValidationError{jsonInvalid(body, err)}
	}
	var detail []types.ValidationError
	for i, name := range types.FeatureNames {
		raw, ok := fields[name]
		if !ok {
			detail = append(detail, types.ValidationError{Loc: []any{"body", name}, Msg: msgMissing, Type: types.ErrTypeMissing})
			continue
		}
		v, verr := parseFloatField(raw)
		if verr != nil {
			verr.Loc = []any{"body", name}
			detail = append(detail, *verr)
			continue
		}
		s.SetFeature(i, v)
	}
	return s, detail
}

func jsonInvalid(body []byte, err error) types.ValidationError {
	pos := 0
	msg := "invalid JSON"
	if err != nil {
		msg = err.Error()
	}
	var se *json.SyntaxError
	if errors.As(err, &se) {
		// Offset counts the offending byte; a truncated body points past the end.
		pos = int(se.Offset) - 1
		if strings.Contains(se.Error(), "unexpected end") {
			pos = len(body)
		}
		if pos < 0 {
			pos = 0
		}
	}
	return types.ValidationError{
		Loc:   []any{"body", pos},
		Msg:   msgJSONInvalid,
		Type:  types.ErrTypeJSONInvalid,
		Input: map[string]any{},
		Ctx:   map[string]any{"error": msg},
	}
}

// parseFloatField accepts a JSON number, a boolean (as 1 or 0) or a string
// holding a decimal float.
func parseFloatField(raw json.RawMessage) (float64, *types.ValidationError) {
	switch raw[0] {
	case '"':
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return 0, &types.ValidationError{Msg: msgFloatParsing, Type: types.ErrTypeFloatParsing}
		}
		v, ok := parseDecimal(str)
		if !ok {
			return 0, &types.ValidationError{Msg: msgFloatParsing, Type: types.ErrTypeFloatParsing, Input: str}
		}
		return v, nil
	case 't':
		return 1, nil
	case 'f':
		return 0, nil
	case 'n', '{', '[':
		var input any
		_ = json.Unmarshal(raw, &input)
		return 0, &types.ValidationError{Msg: msgFloatType, Type: types.ErrTypeFloatType, Input: input}
	default:
		v, err := strconv.ParseFloat(string(raw), 64)
		if err != nil {
			return 0, &types.ValidationError{Msg: msgFloatParsing, Type: types.ErrTypeFloatParsing, Input: string(raw)}
		}
		return v, nil
	}
}

// parseDecimal parses a trimmed decimal float, including "nan" and "inf".
// Hex floats and digit separators are rejected.
func parseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "xX_") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
