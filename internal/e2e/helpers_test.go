package e2e

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Vireya-Hydrocore/hydrocore-api-machine-learning/internal/httpapi"
	"github.com/Vireya-Hydrocore/hydrocore-api-machine-learning/internal/model"
)

const referenceBody = `{"ph": 7.0, "Hardness": 150.0, "Solids": 20000.0, "Chloramines": 7.5, "Sulfate": 330.0, "Conductivity": 420.0, "Organic_carbon": 12.0, "Trihalomethanes": 70.0, "Turbidity": 4.0}`

// newServerForArtifact loads the artifact the same way the binary does and
// serves it behind an httptest.Server.
func newServerForArtifact(t *testing.T, path string) (*httptest.Server, *model.Holder) {
	t.Helper()
	h, err := model.Load(path)
	if err != nil {
		t.Fatalf("load model %s: %v", path, err)
	}
	srv := httptest.NewServer(httpapi.NewMux(h))
	t.Cleanup(srv.Close)
	return srv, h
}

func httpGet(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp, b
}

func httpPostJSON(t *testing.T, url, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp, b
}
