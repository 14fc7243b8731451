// Package swagger describes the HTTP API for gin-swagger. Keep it in step
// with the godoc annotations in controllers.
package swagger

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
        "/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness check",
                "responses": {"200": {"description": "message: pong", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}}
            }
        },
        "/api/data": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Data"],
                "summary": "Get the whole application state",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Snapshot"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Data"],
                "summary": "Replace the whole application state",
                "parameters": [{"description": "Application state", "name": "data", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.Snapshot"}}],
                "responses": {
                    "200": {"description": "success: true", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "error: Invalid document", "schema": {"$ref": "#/definitions/controllers.errorResponse"}},
                    "409": {"description": "error: Version conflict", "schema": {"$ref": "#/definitions/controllers.errorResponse"}},
                    "503": {"description": "error: Store unavailable", "schema": {"$ref": "#/definitions/controllers.errorResponse"}}
                }
            }
        },
        "/api/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Log in by username",
                "parameters": [{"description": "Username", "name": "body", "in": "body", "required": true, "schema": {"type": "object", "properties": {"name": {"type": "string"}}}}],
                "responses": {
                    "200": {"description": "user, token, created", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "error: name is required", "schema": {"$ref": "#/definitions/controllers.errorResponse"}}
                }
            }
        },
        "/api/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Log out",
                "responses": {
                    "200": {"description": "message: Successfully logged out", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"description": "error: Invalid session token", "schema": {"$ref": "#/definitions/controllers.errorResponse"}}
                }
            }
        },
        "/api/users": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Create or update a user",
                "parameters": [{"description": "User", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.User"}}],
                "responses": {
                    "200": {"description": "success, user", "schema": {"type": "object", "additionalProperties": true}},
                    "409": {"description": "error: Username already exists", "schema": {"$ref": "#/definitions/controllers.errorResponse"}}
                }
            }
        },
        "/api/users/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Get a user by name",
                "parameters": [{"type": "string", "description": "Username", "name": "name", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}},
                    "404": {"description": "error: User not found", "schema": {"$ref": "#/definitions/controllers.errorResponse"}}
                }
            }
        },
        "/api/games": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Games"],
                "summary": "List the game catalog",
                "parameters": [{"type": "string", "description": "Case-insensitive filter on name or category", "name": "q", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Game"}}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Games"],
                "summary": "Add a game to the catalog",
                "parameters": [{"description": "Game", "name": "game", "in": "body", "required": true, "schema": {"$ref": "#/definitions/planner.GameInput"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Game"}},
                    "400": {"description": "error: Invalid game", "schema": {"$ref": "#/definitions/controllers.errorResponse"}}
                }
            }
        },
        "/api/games/{id}": {
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Games"],
                "summary": "Delete a game from the catalog",
                "parameters": [{"type": "string", "description": "Game id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "success: true", "schema": {"type": "object", "additionalProperties": true}},
                    "403": {"description": "error: Forbidden", "schema": {"$ref": "#/definitions/controllers.errorResponse"}},
                    "404": {"description": "error: Game not found", "schema": {"$ref": "#/definitions/controllers.errorResponse"}}
                }
            }
        },
        "/api/signups": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Signups"],
                "summary": "List the signups of a day",
                "parameters": [{"type": "string", "description": "Day as YYYY-MM-DD, today when omitted", "name": "date", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.GameSignup"}}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Signups"],
                "summary": "Sign up for games on a day",
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.GameSignup"}}},
                    "409": {"description": "error: Already signed up", "schema": {"$ref": "#/definitions/controllers.errorResponse"}}
                }
            }
        },
        "/api/plans": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Plans"],
                "summary": "List weekend plans",
                "parameters": [
                    {"type": "string", "description": "Only this user's plans", "name": "userId", "in": "query"},
                    {"type": "boolean", "description": "Drop plans that already ended", "name": "active", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.GamePlan"}}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Plans"],
                "summary": "Create a weekend plan",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.GamePlan"}},
                    "400": {"description": "error: Invalid plan", "schema": {"$ref": "#/definitions/controllers.errorResponse"}}
                }
            }
        },
        "/api/plans/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Plans"],
                "summary": "Update a weekend plan",
                "parameters": [{"type": "string", "description": "Plan id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.GamePlan"}},
                    "403": {"description": "error: Not the owner", "schema": {"$ref": "#/definitions/controllers.errorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Plans"],
                "summary": "Delete a weekend plan",
                "parameters": [{"type": "string", "description": "Plan id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "success: true", "schema": {"type": "object", "additionalProperties": true}},
                    "403": {"description": "error: Not the owner", "schema": {"$ref": "#/definitions/controllers.errorResponse"}}
                }
            }
        },
        "/api/groups": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Groups"],
                "summary": "List the groups of a day",
                "parameters": [
                    {"type": "string", "description": "Day as YYYY-MM-DD, today when omitted", "name": "date", "in": "query"},
                    {"type": "string", "description": "morning, afternoon or evening", "name": "slot", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.GameGroup"}}}}
            }
        },
        "/api/groups/{id}/join": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Groups"],
                "summary": "Join a group",
                "parameters": [{"type": "string", "description": "Group id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.GameGroup"}},
                    "404": {"description": "error: Group not found", "schema": {"$ref": "#/definitions/controllers.errorResponse"}},
                    "409": {"description": "error: Already a member or group full", "schema": {"$ref": "#/definitions/controllers.errorResponse"}}
                }
            }
        },
        "/api/reports/groups": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Reports"],
                "summary": "Group report of a day",
                "parameters": [{"type": "string", "description": "Day as YYYY-MM-DD, today when omitted", "name": "date", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}}}
            }
        },
        "/api/reports/daily": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Reports"],
                "summary": "Signup statistics of a day",
                "parameters": [{"type": "string", "description": "Day as YYYY-MM-DD, today when omitted", "name": "date", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        }
    },
    "definitions": {
        "controllers.errorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "models.Game": {"type": "object", "properties": {
            "id": {"type": "string"}, "name": {"type": "string"}, "category": {"type": "string"},
            "minPlayers": {"type": "integer"}, "maxPlayers": {"type": "integer"},
            "platform": {"type": "array", "items": {"type": "string"}},
            "createdBy": {"type": "string"}, "createdAt": {"type": "string"}}},
        "models.User": {"type": "object", "properties": {
            "id": {"type": "string"}, "name": {"type": "string"},
            "ownedGames": {"type": "array", "items": {"type": "string"}},
            "gamePreferences": {"type": "array", "items": {"type": "object"}},
            "willingToJoinOthers": {"type": "boolean"}}},
        "models.GameSignup": {"type": "object", "properties": {
            "id": {"type": "string"}, "userId": {"type": "string"}, "gameId": {"type": "string"},
            "signupDate": {"type": "string"}, "preference": {"type": "integer"}, "notes": {"type": "string"}}},
        "models.GamePlan": {"type": "object", "properties": {
            "id": {"type": "string"}, "userId": {"type": "string"}, "targetGameId": {"type": "string"},
            "date": {"type": "string"}, "startTime": {"type": "string"}, "endTime": {"type": "string"},
            "willingToJoinOthers": {"type": "boolean"}}},
        "models.GameGroup": {"type": "object", "properties": {
            "id": {"type": "string"}, "gameId": {"type": "string"}, "initiator": {"type": "string"},
            "startTime": {"type": "string"}, "endTime": {"type": "string"},
            "members": {"type": "array", "items": {"type": "string"}},
            "maxMembers": {"type": "integer"}, "isRecruiting": {"type": "boolean"}}},
        "models.Snapshot": {"type": "object", "properties": {
            "users": {"type": "array", "items": {"$ref": "#/definitions/models.User"}},
            "games": {"type": "array", "items": {"$ref": "#/definitions/models.Game"}},
            "dailySignups": {"type": "array", "items": {"$ref": "#/definitions/models.GameSignup"}},
            "weekendPlans": {"type": "array", "items": {"$ref": "#/definitions/models.GamePlan"}},
            "gameGroups": {"type": "array", "items": {"$ref": "#/definitions/models.GameGroup"}},
            "lastUpdated": {"type": "string"}, "version": {"type": "integer"}}},
        "planner.GameInput": {"type": "object", "properties": {
            "name": {"type": "string"}, "category": {"type": "string"},
            "minPlayers": {"type": "integer"}, "maxPlayers": {"type": "integer"},
            "platform": {"type": "array", "items": {"type": "string"}}}}
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Gamehub API",
	Description:      "Gin-Gonic server for the Gamehub group gaming scheduler",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
