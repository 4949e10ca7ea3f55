package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"":      LevelOff,
		"off":   LevelOff,
		"error": LevelError,
		"info":  LevelInfo,
		"DEBUG": LevelDebug,
		"weird": LevelInfo, // default
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRequestLogLevel_Overrides(t *testing.T) {
	// query param ?log=debug
	r := httptest.NewRequest("POST", "/predict?log=debug", nil)
	if got := requestLogLevel(r); got != LevelDebug {
		t.Fatalf("query override failed: %v", got)
	}
	// shorthand ?log=1
	r = httptest.NewRequest("POST", "/predict?log=1", nil)
	if got := requestLogLevel(r); got != LevelDebug {
		t.Fatalf("shorthand query override failed: %v", got)
	}
	// header X-Log-Level
	r = httptest.NewRequest("POST", "/predict", nil)
	r.Header.Set("X-Log-Level", "error")
	if got := requestLogLevel(r); got != LevelError {
		t.Fatalf("header override failed: %v", got)
	}
}

func TestSetRequestLogLevel(t *testing.T) {
	prev := defaultLogLevel
	defer func() { defaultLogLevel = prev }()
	SetRequestLogLevel("info")
	if got := requestLogLevel(httptest.NewRequest("GET", "/x", nil)); got != LevelInfo {
		t.Fatalf("default level not applied: %v", got)
	}
}

func withBufferLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	t.Cleanup(func() { zlog = nil })
	return &buf
}

func TestPredictSilentByDefault(t *testing.T) {
	buf := withBufferLogger(t)
	prev := defaultLogLevel
	defer func() { defaultLogLevel = prev }()
	SetRequestLogLevel("off")

	w := postPredict(t, NewMux(&mockService{label: 1}), validSample)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no request logs, got %q", buf.String())
	}
}

func TestPredictLogsAtDebugWithRequestID(t *testing.T) {
	buf := withBufferLogger(t)
	req := httptest.NewRequest(http.MethodPost, "/predict?log=debug", strings.NewReader(validSample))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", "req-42")
	w := httptest.NewRecorder()
	NewMux(&mockService{label: 1}).ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	out := buf.String()
	if !strings.Contains(out, `"potability":1`) || !strings.Contains(out, `"request_id":"req-42"`) {
		t.Fatalf("missing fields in log: %q", out)
	}
}

func TestLogEventNilWithoutLogger(t *testing.T) {
	zlog = nil
	r := httptest.NewRequest("GET", "/x?log=debug", nil)
	if e := logEvent(r, LevelError); e != nil {
		t.Fatalf("expected nil event without logger")
	}
}
