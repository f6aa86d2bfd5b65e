// Package docs registers the OpenAPI document served under /api/swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/work_entries": {
            "post": {
                "description": "Record hours a worker spent on a project. id and timestamp are assigned by the server.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["work_entries"],
                "summary": "Log a work entry",
                "parameters": [
                    {
                        "description": "Work entry",
                        "name": "entry",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.WorkEntryInput"}
                    }
                ],
                "responses": {
                    "201": {"description": "Work entry logged", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Validation failed", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "Internal server error", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/work_entries/export": {
            "get": {
                "description": "All work entries as gzip-compressed CSV",
                "produces": ["application/gzip"],
                "tags": ["exports"],
                "summary": "Download the work log",
                "responses": {
                    "200": {"description": "csv.gz export", "schema": {"type": "file"}},
                    "500": {"description": "Internal server error", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/work_summary": {
            "get": {
                "description": "Sum of logged hours grouped by project number, ordered by project number",
                "produces": ["application/json"],
                "tags": ["work_entries"],
                "summary": "Work summary by project",
                "responses": {
                    "200": {"description": "Hours per project", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.ProjectSummary"}}},
                    "500": {"description": "Internal server error", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/exports": {
            "post": {
                "description": "Renders the gzip CSV export and uploads it to the configured bucket",
                "produces": ["application/json"],
                "tags": ["exports"],
                "summary": "Upload the work log to object storage",
                "responses": {
                    "201": {"description": "Export stored", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "Internal server error", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Object storage not configured", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/qrcode": {
            "get": {
                "description": "PNG QR code linking to the landing page with project_number or worker_name prefilled",
                "produces": ["image/png"],
                "tags": ["pages"],
                "summary": "QR code for a prefilled form",
                "parameters": [
                    {"type": "string", "description": "Value to prefill", "name": "data", "in": "query", "required": true},
                    {"type": "string", "description": "project_number or worker_name; guessed when empty", "name": "field", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "PNG image", "schema": {"type": "file"}},
                    "400": {"description": "Missing or invalid parameters", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "Internal server error", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        }
    },
    "definitions": {
        "models.ProjectSummary": {
            "type": "object",
            "properties": {
                "project_number": {"type": "string", "example": "P-1001"},
                "total_hours": {"type": "number", "example": 12.5}
            }
        },
        "models.WorkEntryInput": {
            "type": "object",
            "properties": {
                "project_number": {"type": "string", "example": "P-1001"},
                "worker_name": {"type": "string", "example": "Alice"},
                "work_details": {"type": "string", "example": "Wiring on level 2"},
                "work_time_hours": {"type": "number", "example": 3.5}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Work Log API",
	Description:      "Log hours worked per project and read per-project totals.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
