// Package docs registers the Swagger document served under /swagger/.
// Regenerate with: swag init -g cmd/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {"name": "MIT", "url": "https://opensource.org/licenses/MIT"},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/auth/register": {
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded", "multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["authentication"],
                "summary": "Register a new athlete",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterRequest"}}],
                "responses": {
                    "201": {"description": "Athlete created successfully", "schema": {"$ref": "#/definitions/dto.AuthResponse"}},
                    "400": {"description": "Invalid request data or user already exists", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "502": {"description": "Photo upload failed", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["authentication"],
                "summary": "Login athlete",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}],
                "responses": {
                    "200": {"description": "Login successful", "schema": {"$ref": "#/definitions/dto.AuthResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/auth/reset-password": {
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["authentication"],
                "summary": "Reset password",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ResetPasswordRequest"}}],
                "responses": {
                    "200": {"description": "Password updated", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "401": {"description": "Invalid AthleteID", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/athletes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["athletes"],
                "summary": "Search athletes",
                "parameters": [
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "name": "sport", "in": "query"},
                    {"type": "string", "name": "position", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.AthleteResponse"}}}}
            }
        },
        "/api/athletes/stats/public": {
            "get": {
                "produces": ["application/json"],
                "tags": ["athletes"],
                "summary": "Platform stats",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.StatsResponse"}}}
            }
        },
        "/api/athletes/profile/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Get my profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AthleteResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/athletes/profile": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json", "application/x-www-form-urlencoded", "multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Update my profile",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ProfileUpdateRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProfileUpdateResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/athletes/video": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["videos"],
                "summary": "Add a video",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.AddVideoRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Video"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/athletes/video/{videoId}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["videos"],
                "summary": "Remove a video",
                "parameters": [{"type": "string", "name": "videoId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Video"}}}}
            }
        },
        "/api/athletes/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["athletes"],
                "summary": "Get athlete by id",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AthleteResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.RegisterRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"},
                "age": {"type": "integer"}, "sport": {"type": "string"}, "position": {"type": "string"},
                "location": {"type": "string"}, "achievements": {"type": "string"}, "contact": {"type": "string"}
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "dto.ResetPasswordRequest": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "athleteID": {"type": "string"}, "newPassword": {"type": "string"}}
        },
        "dto.ProfileUpdateRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"},
                "age": {"type": "integer"}, "sport": {"type": "string"}, "position": {"type": "string"},
                "location": {"type": "string"}, "achievements": {"type": "string"}, "contact": {"type": "string"}
            }
        },
        "dto.AddVideoRequest": {
            "type": "object",
            "properties": {"url": {"type": "string"}, "platform": {"type": "string", "enum": ["youtube", "google_drive"]}, "title": {"type": "string"}}
        },
        "models.Video": {
            "type": "object",
            "properties": {"_id": {"type": "string"}, "url": {"type": "string"}, "platform": {"type": "string"}, "title": {"type": "string"}}
        },
        "dto.AthleteResponse": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"}, "name": {"type": "string"}, "email": {"type": "string"},
                "athleteID": {"type": "string"}, "age": {"type": "integer"}, "sport": {"type": "string"},
                "position": {"type": "string"}, "location": {"type": "string"}, "achievements": {"type": "string"},
                "contact": {"type": "string"}, "profilePhoto": {"type": "string"},
                "videos": {"type": "array", "items": {"$ref": "#/definitions/models.Video"}},
                "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}
            }
        },
        "dto.AuthResponse": {
            "allOf": [{"$ref": "#/definitions/dto.AthleteResponse"}, {"type": "object", "properties": {"token": {"type": "string"}}}]
        },
        "dto.ProfileUpdateResponse": {
            "allOf": [{"$ref": "#/definitions/dto.AthleteResponse"}, {"type": "object", "properties": {"token": {"type": "string"}}}]
        },
        "dto.StatsResponse": {
            "type": "object",
            "properties": {"athletes": {"type": "integer"}, "videos": {"type": "integer"}}
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}, "message": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Athlete Hub Backend API",
	Description:      "Athlete registration, login and profile management",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
