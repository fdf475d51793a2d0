// Package docs holds the OpenAPI description served under /swagger. Regenerate with
// `swag init -g cmd/fx_backend/main.go -o cmd/docs`.
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
        "/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["root"],
                "summary": "Show the status of the service",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/rates": {
            "get": {
                "produces": ["application/json"],
                "tags": ["rates"],
                "summary": "Get the current exchange rate table",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/rates/refresh": {
            "post": {
                "produces": ["application/json"],
                "tags": ["rates"],
                "summary": "Refresh exchange rates",
                "responses": {"200": {"description": "OK"}, "503": {"description": "Upstream unavailable"}}
            }
        },
        "/currencies": {
            "get": {
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "List currencies",
                "parameters": [{"type": "string", "name": "q", "in": "query"}],
                "responses": {"200": {"description": "OK"}, "503": {"description": "Exchange rates unavailable"}}
            }
        },
        "/currencies/popular": {
            "get": {
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "List popular currencies",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/currencies/{code}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "Get a currency by code",
                "parameters": [{"type": "string", "name": "code", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Currency not found"}}
            }
        },
        "/convert": {
            "get": {
                "produces": ["application/json"],
                "tags": ["conversion"],
                "summary": "Convert an amount between currencies",
                "parameters": [
                    {"type": "string", "name": "amount", "in": "query"},
                    {"type": "string", "name": "from", "in": "query", "required": true},
                    {"type": "string", "name": "to", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid input"}}
            }
        },
        "/assistant/sessions": {
            "post": {
                "produces": ["application/json"],
                "tags": ["assistant"],
                "summary": "Start a help bot session",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/assistant/sessions/{sessionID}/messages": {
            "get": {
                "produces": ["application/json"],
                "tags": ["assistant"],
                "summary": "List session messages",
                "parameters": [{"type": "string", "name": "sessionID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Session not found"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["assistant"],
                "summary": "Send a message to the help bot",
                "parameters": [{"type": "string", "name": "sessionID", "in": "path", "required": true}],
                "responses": {"202": {"description": "Accepted"}, "400": {"description": "Invalid input"}}
            }
        },
        "/assistant/sessions/{sessionID}/stream": {
            "get": {
                "tags": ["assistant"],
                "summary": "Stream session messages over a websocket",
                "parameters": [{"type": "string", "name": "sessionID", "in": "path", "required": true}],
                "responses": {"101": {"description": "Switching Protocols"}}
            }
        },
        "/settings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Get settings",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/settings/{flag}/toggle": {
            "post": {
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Toggle a setting",
                "parameters": [{"type": "string", "name": "flag", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Unknown setting"}}
            }
        },
        "/settings/clear-data": {
            "post": {
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Clear app data",
                "responses": {"200": {"description": "OK"}, "428": {"description": "Confirmation required"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Currency Companion API",
	Description:      "Currency conversion, help bot and settings backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
