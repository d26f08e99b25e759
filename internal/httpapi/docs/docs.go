// Package docs holds the OpenAPI definition served at /swagger/doc.json.
// Regenerate with `swag init -g internal/ops/serve.go -o internal/httpapi/docs`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/healthz": {
            "get": {
                "produces": ["text/plain"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/status": {
            "get": {
                "produces": ["application/json"],
                "summary": "Stack health report",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/types.StatusReport"}
                    }
                }
            }
        }
    },
    "definitions": {
        "types.CheckResult": {
            "type": "object",
            "properties": {
                "service": {"type": "string", "example": "ollama"},
                "ok": {"type": "boolean", "example": true},
                "detail": {"type": "string", "example": "3 models cached"},
                "elapsed_ms": {"type": "integer", "example": 12}
            }
        },
        "types.StatusReport": {
            "type": "object",
            "properties": {
                "checks": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/types.CheckResult"}
                },
                "healthy": {"type": "boolean", "example": false},
                "checked_at_unix": {"type": "integer", "example": 1700000000}
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
	Title:            "agnoctl status API",
	Description:      "Health endpoints for the local Agno stack.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
