// Package docs holds the OpenAPI document served under /swagger/.
// Regenerate with: swag init -g cmd/app/main.go
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
		"/api/v1/auth/login": {
			"post": {
				"summary": "Log in",
				"tags": [
					"auth"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					},
					"400": {
						"description": ""
					},
					"401": {
						"description": ""
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/auth/register": {
			"post": {
				"summary": "Register",
				"tags": [
					"auth"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": ""
					},
					"400": {
						"description": ""
					},
					"401": {
						"description": ""
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/auth/logout": {
			"post": {
				"summary": "Log out",
				"tags": [
					"auth"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/me": {
			"get": {
				"summary": "Current profile",
				"tags": [
					"profile"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					},
					"401": {
						"description": ""
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/me/inventory": {
			"get": {
				"summary": "Inventory",
				"tags": [
					"profile"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					},
					"401": {
						"description": ""
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/admin/login": {
			"post": {
				"summary": "Admin login",
				"tags": [
					"admin"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					},
					"401": {
						"description": ""
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/admin/logout": {
			"post": {
				"summary": "Admin logout",
				"tags": [
					"admin"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/admin/status": {
			"get": {
				"summary": "Admin status",
				"tags": [
					"admin"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/admin/users": {
			"get": {
				"summary": "List users",
				"tags": [
					"admin"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					},
					"401": {
						"description": ""
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/admin/users/{id}/balance": {
			"put": {
				"summary": "Set user balance",
				"tags": [
					"admin"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					},
					"400": {
						"description": ""
					},
					"401": {
						"description": ""
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/admin/users/{id}": {
			"delete": {
				"summary": "Delete user",
				"tags": [
					"admin"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					},
					"401": {
						"description": ""
					},
					"404": {
						"description": ""
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/admin/cases": {
			"get": {
				"summary": "Admin list cases",
				"tags": [
					"admin"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					},
					"401": {
						"description": ""
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			},
			"post": {
				"summary": "Create case",
				"tags": [
					"admin"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": ""
					},
					"400": {
						"description": ""
					},
					"401": {
						"description": ""
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/admin/cases/{id}": {
			"delete": {
				"summary": "Delete case",
				"tags": [
					"admin"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					},
					"401": {
						"description": ""
					},
					"404": {
						"description": ""
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/admin/cache/purge": {
			"post": {
				"summary": "Purge catalog cache",
				"tags": [
					"admin"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					},
					"401": {
						"description": ""
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/battles": {
			"get": {
				"summary": "List battles",
				"tags": [
					"battles"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					},
					"400": {
						"description": ""
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			},
			"post": {
				"summary": "Create battle",
				"tags": [
					"battles"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": ""
					},
					"400": {
						"description": ""
					},
					"401": {
						"description": ""
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/battles/{id}/join": {
			"post": {
				"summary": "Join battle",
				"tags": [
					"battles"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					},
					"401": {
						"description": ""
					},
					"404": {
						"description": ""
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/battles/{id}/start": {
			"post": {
				"summary": "Start battle",
				"tags": [
					"battles"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					},
					"404": {
						"description": ""
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/battles/{id}": {
			"get": {
				"summary": "Get battle",
				"tags": [
					"battles"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					},
					"404": {
						"description": ""
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/battles/{id}/play": {
			"post": {
				"summary": "Play battle",
				"tags": [
					"battles"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"202": {
						"description": ""
					},
					"404": {
						"description": ""
					},
					"409": {
						"description": ""
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/battles/{id}/playback": {
			"get": {
				"summary": "Battle playback",
				"tags": [
					"battles"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					},
					"404": {
						"description": ""
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/cases": {
			"get": {
				"summary": "List cases",
				"tags": [
					"cases"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					},
					"400": {
						"description": ""
					},
					"502": {
						"description": ""
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/cases/home": {
			"get": {
				"summary": "Landing page cases",
				"tags": [
					"cases"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					},
					"502": {
						"description": ""
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/cases/{id}": {
			"get": {
				"summary": "Get case",
				"tags": [
					"cases"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					},
					"404": {
						"description": ""
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/cases/{id}/odds": {
			"get": {
				"summary": "Case odds",
				"tags": [
					"cases"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					},
					"404": {
						"description": ""
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/contracts/rules": {
			"get": {
				"summary": "Contract rules",
				"tags": [
					"contracts"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/contracts/eligible": {
			"get": {
				"summary": "Eligible contract items",
				"tags": [
					"contracts"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					},
					"400": {
						"description": ""
					},
					"401": {
						"description": ""
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/contracts": {
			"post": {
				"summary": "Complete contract",
				"tags": [
					"contracts"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					},
					"400": {
						"description": ""
					},
					"401": {
						"description": ""
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/economy/sell": {
			"post": {
				"summary": "Sell item",
				"tags": [
					"economy"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					},
					"400": {
						"description": ""
					},
					"401": {
						"description": ""
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/economy/bonus": {
			"get": {
				"summary": "Daily bonus status",
				"tags": [
					"economy"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					},
					"401": {
						"description": ""
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/economy/bonus/claim": {
			"post": {
				"summary": "Claim daily bonus",
				"tags": [
					"economy"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					},
					"401": {
						"description": ""
					},
					"429": {
						"description": ""
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/healthz": {
			"get": {
				"summary": "Liveness check",
				"tags": [
					"health"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					}
				}
			}
		},
		"/readyz": {
			"get": {
				"summary": "Readiness check",
				"tags": [
					"health"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					},
					"503": {
						"description": ""
					}
				}
			}
		},
		"/api/v1/openings": {
			"post": {
				"summary": "Open a case",
				"tags": [
					"openings"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": ""
					},
					"400": {
						"description": ""
					},
					"401": {
						"description": ""
					},
					"409": {
						"description": ""
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/openings/{id}/spin": {
			"post": {
				"summary": "Spin a reveal",
				"tags": [
					"openings"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					},
					"404": {
						"description": ""
					},
					"409": {
						"description": ""
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/openings/{id}/complete": {
			"post": {
				"summary": "Complete a reveal",
				"tags": [
					"openings"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					},
					"404": {
						"description": ""
					},
					"409": {
						"description": ""
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/openings/{id}": {
			"get": {
				"summary": "Get a reveal",
				"tags": [
					"openings"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					},
					"404": {
						"description": ""
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/api/v1/openings/active": {
			"get": {
				"summary": "Active reveal",
				"tags": [
					"openings"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					},
					"204": {
						"description": ""
					},
					"401": {
						"description": ""
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/version": {
			"get": {
				"summary": "Build version",
				"tags": [
					"health"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					}
				}
			}
		}
	},
	"securityDefinitions": {
		"ApiKeyAuth": {
			"type": "apiKey",
			"name": "X-API-Key",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Case Opening Gateway API",
	Description:      "Local gateway between the case-opening UI and the game backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
