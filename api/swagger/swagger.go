package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Al Huda Academy Admissions API",
        "description": "Admissions and school services backend: enrollment forms, re-enrollment workflow, applications, calendar, gallery and site content.",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "tags": [
        {"name": "auth", "description": "Accounts and sessions"},
        {"name": "forms", "description": "Enrollment form submissions"},
        {"name": "enrollments", "description": "Aggregated enrollment views"},
        {"name": "renroll", "description": "Re-enrollment step workflow"},
        {"name": "calendar", "description": "School calendar events"},
        {"name": "gallery", "description": "Image gallery"},
        {"name": "contact", "description": "Contact messages"},
        {"name": "applications", "description": "Job and volunteer applications"},
        {"name": "surveys", "description": "Feedback surveys"},
        {"name": "content", "description": "Editable site content"},
        {"name": "exports", "description": "Roster exports"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unavailable"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in and receive a session token",
                "responses": {
                    "200": {"description": "Session issued", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/forms/enrollments": {
            "get": {
                "tags": ["enrollments"],
                "summary": "List aggregated enrollments with derived status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/forms/enrollment": {
            "post": {
                "tags": ["enrollments"],
                "summary": "Submit a combined enrollment payload",
                "consumes": ["multipart/form-data"],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/renroll/renroll-form": {
            "post": {
                "tags": ["renroll"],
                "summary": "Submit or advance a re-enrollment form",
                "responses": {
                    "200": {"description": "Draft updated"},
                    "201": {"description": "Draft created"},
                    "400": {"description": "Step validation failed"}
                }
            }
        },
        "/renroll/validate-step": {
            "post": {
                "tags": ["renroll"],
                "summary": "Dry-run validation of one workflow step",
                "responses": {
                    "200": {"description": "Validation result"}
                }
            }
        },
        "/exports": {
            "post": {
                "tags": ["exports"],
                "summary": "Queue an asynchronous roster export",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "202": {"description": "Job queued", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "array", "items": {"type": "string"}},
                "status": {"type": "integer"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "limit": {"type": "integer"},
                "total": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
