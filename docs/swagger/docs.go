// Package swagger holds the OpenAPI 2.0 document registered with swag at
// init and served by http-swagger under /swagger. Keep it in sync with the
// handler annotations when routes change.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "support@stockroom.dev"
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
        "/auth/session": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Get session",
                "description": "Returns the current session and user, or null when not signed in",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/SessionResponse"}
                    }
                }
            }
        },
        "/auth/sign-in": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign in",
                "description": "Verifies email and password and establishes a session",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/SignInRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/UserResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/AccountErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/AccountErrorResponse"}}
                }
            }
        },
        "/auth/sign-out": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign out",
                "description": "Destroys the current session and expires the cookie",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "additionalProperties": {"type": "boolean"}}
                    }
                }
            }
        },
        "/auth/sign-up": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign up",
                "description": "Registers a new user with email and password and establishes a session",
                "parameters": [
                    {
                        "description": "Registration request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/SignUpRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/UserResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/AccountErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/AccountErrorResponse"}}
                }
            }
        },
        "/items": {
            "get": {
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "List items",
                "description": "Returns all items owned by the authenticated user, newest first",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/ItemResponse"}}
                    },
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Create item",
                "description": "Creates a new inventory item owned by the authenticated user",
                "parameters": [
                    {
                        "description": "Item creation request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/CreateItemRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ItemResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/items/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Update item",
                "description": "Partially updates an item; omitted fields keep their stored values",
                "parameters": [
                    {"type": "string", "description": "Item ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Partial item update",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/UpdateItemRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ItemResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Delete item",
                "description": "Permanently removes an item owned by the authenticated user",
                "parameters": [
                    {"type": "string", "description": "Item ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Ping",
                "description": "Liveness probe returning the current server time in Unix milliseconds",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        }
    },
    "definitions": {
        "AccountErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "Invalid email or password"}
            }
        },
        "CreateItemRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Widget"},
                "description": {"type": "string", "example": "A blue widget"},
                "price": {"type": "number", "example": 9.99},
                "quantity": {"type": "integer", "example": 5}
            }
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "Item not found"}
            }
        },
        "ItemResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "123e4567-e89b-12d3-a456-426614174000"},
                "userId": {"type": "string", "example": "550e8400-e29b-41d4-a716-446655440000"},
                "name": {"type": "string", "example": "Widget"},
                "description": {"type": "string", "example": "A blue widget"},
                "price": {"type": "number", "example": 9.99},
                "quantity": {"type": "integer", "example": 5},
                "createdAt": {"type": "string", "example": "2024-01-15T10:30:00Z"},
                "updatedAt": {"type": "string", "example": "2024-01-15T10:30:00Z"}
            }
        },
        "SessionResponse": {
            "type": "object",
            "properties": {
                "session": {
                    "type": "object",
                    "properties": {
                        "id": {"type": "string"},
                        "userId": {"type": "string"}
                    }
                },
                "user": {"$ref": "#/definitions/UserResponse"}
            }
        },
        "SignInRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "kim@example.com"},
                "password": {"type": "string", "example": "correct horse battery"}
            }
        },
        "SignUpRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Kim"},
                "email": {"type": "string", "example": "kim@example.com"},
                "password": {"type": "string", "example": "correct horse battery"}
            }
        },
        "SuccessResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true}
            }
        },
        "UpdateItemRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Widget"},
                "description": {"type": "string", "example": "A blue widget"},
                "price": {"type": "number", "example": 9.99},
                "quantity": {"type": "integer", "example": 10}
            }
        },
        "UserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "550e8400-e29b-41d4-a716-446655440000"},
                "name": {"type": "string", "example": "Kim"},
                "email": {"type": "string", "example": "kim@example.com"},
                "createdAt": {"type": "string", "example": "2024-01-15T10:30:00Z"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "Stockroom API",
	Description:      "Multi-tenant inventory tracker: authenticated users manage a personal list of priced, quantified items.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
