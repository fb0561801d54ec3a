// Package docs registers the OpenAPI document served under /v1/swagger.
// Regenerate with `swag init -g cmd/api/main.go`.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/swipes": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["swipes"],
                "summary": "Record a swipe",
                "parameters": [
                    {"description": "Swipe JSON", "name": "swipe", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.SwipeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Response"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/swipes/potential": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["swipes"],
                "summary": "Swipe deck",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/swipes/matches": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["swipes"],
                "summary": "List matches",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/swipes/matches/{matchId}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["swipes"],
                "summary": "Unmatch",
                "parameters": [
                    {"type": "string", "description": "Match ID", "name": "matchId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/messages": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["messages"],
                "summary": "List conversations",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/messages/{matchId}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["messages"],
                "summary": "Message history",
                "parameters": [
                    {"type": "string", "description": "Match ID", "name": "matchId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["messages"],
                "summary": "Send a message",
                "parameters": [
                    {"type": "string", "description": "Match ID", "name": "matchId", "in": "path", "required": true},
                    {"description": "Message JSON", "name": "message", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.SendMessageRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/messages/{matchId}/read": {
            "put": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["messages"],
                "summary": "Mark conversation as read",
                "parameters": [
                    {"type": "string", "description": "Match ID", "name": "matchId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        }
    },
    "definitions": {
        "response.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {},
                "message": {"type": "string"},
                "request_id": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "v1.SendMessageRequest": {
            "type": "object",
            "properties": {
                "content": {"type": "string"}
            }
        },
        "v1.SwipeRequest": {
            "type": "object",
            "properties": {
                "jobOfferId": {"type": "string"},
                "swipeType": {"type": "string", "example": "LIKE"},
                "targetUserId": {"type": "string"}
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

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Swipe Matching API",
	Description:      "Swipe-based job matching between candidates and recruiters, with per-match chat.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
