// Package docs provides the generated OpenAPI specification.
// Code generated by swag. Regenerate with:
//
//	swag init -g cmd/server/main.go -o docs
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
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Token pair"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": ["auth"],
                "summary": "Refresh tokens",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.RefreshRequest"}}
                ],
                "responses": {
                    "200": {"description": "Token pair"},
                    "401": {"description": "Invalid or expired refresh token"}
                }
            }
        },
        "/properties": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["properties"],
                "summary": "List properties",
                "responses": {"200": {"description": "List of properties"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["properties"],
                "summary": "Register a property",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreatePropertyRequest"}}
                ],
                "responses": {"201": {"description": "Property created"}}
            }
        },
        "/claims": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["claims"],
                "summary": "List claims",
                "responses": {"200": {"description": "List of claims"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["claims"],
                "summary": "File a claim",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateClaimRequest"}}
                ],
                "responses": {
                    "201": {"description": "Claim created"},
                    "409": {"description": "Claim number already exists"}
                }
            }
        },
        "/claims/{id}/status": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["claims"],
                "summary": "Change claim status",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ChangeClaimStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "Status changed"},
                    "400": {"description": "Invalid transition"},
                    "403": {"description": "Insufficient role"}
                }
            }
        },
        "/documents": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["documents"],
                "summary": "Create a claim document",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateDocumentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Document created, analysis started"},
                    "409": {"description": "Document already exists for this file"}
                }
            }
        },
        "/documents/{id}/analyze": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["documents"],
                "summary": "Analyze a document synchronously",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Analysis completed"},
                    "502": {"description": "No provider returned a usable result"}
                }
            }
        },
        "/documents/{id}/review": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["documents"],
                "summary": "Review a document",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ReviewDocumentRequest"}}
                ],
                "responses": {"200": {"description": "Document reviewed"}}
            }
        },
        "/reports/claims": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["reports"],
                "summary": "Claims register report",
                "responses": {"200": {"description": "Claims register rows"}}
            }
        },
        "/reports/claims/export": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["reports"],
                "summary": "Export claims register as CSV",
                "produces": ["text/csv"],
                "responses": {"200": {"description": "CSV file"}}
            }
        }
    },
    "definitions": {
        "handler.LoginRequest": {
            "type": "object",
            "required": ["tenant_slug", "email", "password"],
            "properties": {
                "tenant_slug": {"type": "string", "example": "coastal-adjusters"},
                "email": {"type": "string", "example": "admin@coastal.com"},
                "password": {"type": "string", "example": "securepassword123"}
            }
        },
        "handler.RefreshRequest": {
            "type": "object",
            "required": ["refresh_token"],
            "properties": {
                "refresh_token": {"type": "string"}
            }
        },
        "handler.CreatePropertyRequest": {
            "type": "object",
            "required": ["address", "city", "state", "zip"],
            "properties": {
                "address": {"type": "string", "example": "120 Gulf Shore Blvd"},
                "city": {"type": "string", "example": "Naples"},
                "state": {"type": "string", "example": "FL"},
                "zip": {"type": "string", "example": "34102"},
                "county": {"type": "string", "example": "Collier"}
            }
        },
        "handler.CreateClaimRequest": {
            "type": "object",
            "required": ["property_id", "claim_number", "peril"],
            "properties": {
                "property_id": {"type": "string"},
                "claim_number": {"type": "string", "example": "CLM-2025-0001"},
                "peril": {"type": "string", "example": "hurricane"},
                "description": {"type": "string"},
                "incident_date": {"type": "string", "format": "date-time"}
            }
        },
        "handler.ChangeClaimStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string", "example": "filed"}
            }
        },
        "handler.CreateDocumentRequest": {
            "type": "object",
            "required": ["file_id", "claim_id", "document_type"],
            "properties": {
                "file_id": {"type": "string"},
                "claim_id": {"type": "string"},
                "document_type": {"type": "string", "example": "damage_report"},
                "name": {"type": "string"}
            }
        },
        "handler.ReviewDocumentRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string", "example": "approved"},
                "notes": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "ClaimGuard API",
	Description:      "Multi-tenant property claim platform with multi-provider AI document analysis.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
