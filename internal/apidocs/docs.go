// Package apidocs registers the Swagger 2.0 document for the hydrocore HTTP API
// with swag, in the layout `swag init` produces. Keep it in sync with the
// handler annotations in internal/httpapi.
package apidocs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "hydrocore maintainers"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/predict": {
            "post": {
                "description": "Predicts whether a water sample is potable. All nine measurements are required; numeric strings and booleans are accepted.",
                "consumes": ["application/json", "application/*+json"],
                "produces": ["application/json"],
                "tags": ["prediction"],
                "summary": "Predict potability",
                "parameters": [
                    {
                        "description": "Water sample",
                        "name": "sample",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/types.WaterSample"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.PredictionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/types.ValidationErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/model": {
            "get": {
                "produces": ["application/json"],
                "tags": ["model"],
                "summary": "Loaded model metadata",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.ModelInfo"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "ok"}}
            }
        },
        "/readyz": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {"200": {"description": "ready"}, "503": {"description": "loading"}}
            }
        }
    },
    "definitions": {
        "types.WaterSample": {
            "type": "object",
            "required": ["ph", "Hardness", "Solids", "Chloramines", "Sulfate", "Conductivity", "Organic_carbon", "Trihalomethanes", "Turbidity"],
            "properties": {
                "ph": {"type": "number", "example": 7.0},
                "Hardness": {"type": "number", "example": 150.0},
                "Solids": {"type": "number", "example": 20000.0},
                "Chloramines": {"type": "number", "example": 7.5},
                "Sulfate": {"type": "number", "example": 330.0},
                "Conductivity": {"type": "number", "example": 420.0},
                "Organic_carbon": {"type": "number", "example": 12.0},
                "Trihalomethanes": {"type": "number", "example": 70.0},
                "Turbidity": {"type": "number", "example": 4.0}
            }
        },
        "types.PredictionResponse": {
            "type": "object",
            "properties": {
                "Potability": {"type": "integer", "enum": [0, 1], "example": 1}
            }
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "request body too large"},
                "code": {"type": "integer", "example": 400}
            }
        },
        "types.ValidationError": {
            "type": "object",
            "properties": {
                "loc": {"type": "array", "items": {}, "description": "Path to the offending value; json_invalid errors carry a byte offset"},
                "msg": {"type": "string", "example": "Field required"},
                "type": {"type": "string", "example": "missing"},
                "input": {"description": "The rejected value, of any JSON type"},
                "ctx": {"type": "object", "additionalProperties": true}
            }
        },
        "types.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "validation failed"},
                "code": {"type": "integer", "example": 422},
                "detail": {"type": "array", "items": {"$ref": "#/definitions/types.ValidationError"}}
            }
        },
        "types.ModelInfo": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "water-potability-rf"},
                "version": {"type": "string", "example": "2024-05"},
                "kind": {"type": "string", "example": "random_forest"},
                "features": {"type": "array", "items": {"type": "string"}},
                "path": {"type": "string", "example": "/srv/hydrocore/model.json"},
                "sha256": {"type": "string"},
                "trees": {"type": "integer", "example": 100},
                "loaded_at_unix": {"type": "integer", "example": 1700000000}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "hydrocore API",
	Description:      "Water potability prediction over a pre-trained binary classifier.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
