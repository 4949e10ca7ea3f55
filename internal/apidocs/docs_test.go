package apidocs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestDocIsValidJSON(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("read doc: %v", err)
	}
	var parsed struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths       map[string]any `json:"paths"`
		Definitions map[string]struct {
			Required   []string                  `json:"required"`
			Properties map[string]map[string]any `json:"properties"`
		} `json:"definitions"`
	}
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("doc is not JSON: %v\n%s", err, doc)
	}
	if parsed.Info.Title != "hydrocore API" {
		t.Fatalf("title=%q", parsed.Info.Title)
	}
	if _, ok := parsed.Paths["/predict"]; !ok {
		t.Fatalf("missing /predict path")
	}
	if n := len(parsed.Definitions["types.WaterSample"].Required); n != 9 {
		t.Fatalf("expected 9 required sample fields, got %d", n)
	}
	// input holds numbers, bools and objects as well as strings
	input, ok := parsed.Definitions["types.ValidationError"].Properties["input"]
	if !ok {
		t.Fatalf("ValidationError.input not documented")
	}
	if _, typed := input["type"]; typed {
		t.Fatalf("ValidationError.input must be untyped, got %v", input["type"])
	}
}
