// Package recipes registers the Swagger document served on /swagger/.
package recipes

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Potluck Labs",
            "url": "https://github.com/potlucklabs/potluck"
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
        "/check_session": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Check session",
                "description": "Return the current user for an authenticated session.",
                "responses": {
                    "200": {"description": "current user", "schema": {"$ref": "#/definitions/PublicUser"}},
                    "401": {"description": "no active session", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "session references a missing user", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Log in",
                "description": "Verify credentials and establish an authenticated session.",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "logged-in user", "schema": {"$ref": "#/definitions/PublicUser"}},
                    "401": {"description": "invalid username or password", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/logout": {
            "delete": {
                "tags": ["Auth"],
                "summary": "Log out",
                "description": "Clear the session cookie. Logout is not idempotent.",
                "responses": {
                    "204": {"description": "session cleared"},
                    "401": {"description": "no active session", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/recipes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Recipes"],
                "summary": "List recipes",
                "description": "Return every recipe owned by the current user.",
                "responses": {
                    "200": {"description": "owned recipes", "schema": {"type": "array", "items": {"$ref": "#/definitions/Recipe"}}},
                    "401": {"description": "no active session", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "session references a missing user", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Recipes"],
                "summary": "Create recipe",
                "description": "Create a recipe owned by the current user. Instructions must be at least 50 characters.",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateRecipeRequest"}}
                ],
                "responses": {
                    "201": {"description": "created recipe", "schema": {"$ref": "#/definitions/Recipe"}},
                    "401": {"description": "no active session", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "422": {"description": "invalid recipe data", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Sign up",
                "description": "Create a new user account and establish an authenticated session.",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "created user", "schema": {"$ref": "#/definitions/PublicUser"}},
                    "422": {"description": "missing fields or duplicate username", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "CreateRecipeRequest": {
            "type": "object",
            "required": ["title", "instructions"],
            "properties": {
                "title": {"type": "string"},
                "instructions": {"type": "string", "minLength": 50},
                "minutes_to_complete": {"type": "integer"}
            }
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "PublicUser": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "username": {"type": "string"},
                "bio": {"type": "string"},
                "image_url": {"type": "string"}
            }
        },
        "Recipe": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "instructions": {"type": "string"},
                "minutes_to_complete": {"type": "integer"},
                "user": {"$ref": "#/definitions/PublicUser"}
            }
        },
        "SignupRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "bio": {"type": "string"},
                "image_url": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Potluck Recipe API",
	Description:      "Session-cookie-authenticated recipe sharing backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
