// Package docs registers the OpenAPI description served under /swagger.
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
		"/healthz": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"health"
				],
				"summary": "Liveness probe",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/readyz": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"health"
				],
				"summary": "Readiness probe",
				"responses": {
					"200": {
						"description": "OK"
					},
					"503": {
						"description": "Database unavailable"
					}
				}
			}
		},
		"/version": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"health"
				],
				"summary": "Build information",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/api/v1/equipment": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"equipment"
				],
				"summary": "List equipment",
				"parameters": [
					{
						"type": "string",
						"description": "Equipment slot",
						"name": "slot",
						"in": "query",
						"required": false
					},
					{
						"type": "string",
						"description": "Rarity",
						"name": "rarity",
						"in": "query",
						"required": false
					},
					{
						"type": "boolean",
						"description": "Only items with a recipe",
						"name": "craftable",
						"in": "query",
						"required": false
					},
					{
						"type": "integer",
						"description": "Page size (1-1000)",
						"name": "limit",
						"in": "query",
						"required": false
					},
					{
						"type": "integer",
						"description": "Rows to skip",
						"name": "offset",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					}
				}
			}
		},
		"/api/v1/equipment/{slug}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"equipment"
				],
				"summary": "Get equipment",
				"parameters": [
					{
						"type": "string",
						"description": "Catalog slug",
						"name": "slug",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found"
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"equipment"
				],
				"summary": "Delete equipment",
				"parameters": [
					{
						"type": "string",
						"description": "Catalog slug",
						"name": "slug",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found"
					}
				}
			}
		},
		"/api/v1/equipment/{slug}/recipe": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"crafting"
				],
				"summary": "Direct recipe",
				"parameters": [
					{
						"type": "string",
						"description": "Catalog slug",
						"name": "slug",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found"
					}
				}
			}
		},
		"/api/v1/equipment/{slug}/raw-cost": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"crafting"
				],
				"summary": "Resolve raw cost",
				"parameters": [
					{
						"type": "string",
						"description": "Catalog slug",
						"name": "slug",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found"
					},
					"504": {
						"description": "Gateway Timeout"
					}
				}
			}
		},
		"/api/v1/equipment/{slug}/final-products": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"crafting"
				],
				"summary": "Find final products",
				"parameters": [
					{
						"type": "string",
						"description": "Catalog slug",
						"name": "slug",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"504": {
						"description": "Gateway Timeout"
					}
				}
			}
		},
		"/api/v1/heroes": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"heroes"
				],
				"summary": "List heroes",
				"parameters": [
					{
						"type": "string",
						"description": "Hero class",
						"name": "class",
						"in": "query",
						"required": false
					},
					{
						"type": "string",
						"description": "Rarity",
						"name": "rarity",
						"in": "query",
						"required": false
					},
					{
						"type": "integer",
						"description": "Page size (1-1000)",
						"name": "limit",
						"in": "query",
						"required": false
					},
					{
						"type": "integer",
						"description": "Rows to skip",
						"name": "offset",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					}
				}
			}
		},
		"/api/v1/heroes/bulk": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"heroes"
				],
				"summary": "Bulk upsert heroes",
				"parameters": [
					{
						"description": "Heroes to write",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					}
				}
			}
		},
		"/api/v1/heroes/{slug}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"heroes"
				],
				"summary": "Get hero",
				"parameters": [
					{
						"type": "string",
						"description": "Catalog slug",
						"name": "slug",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found"
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"heroes"
				],
				"summary": "Delete hero",
				"parameters": [
					{
						"type": "string",
						"description": "Catalog slug",
						"name": "slug",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found"
					}
				}
			}
		},
		"/api/v1/missions": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"missions"
				],
				"summary": "List missions",
				"parameters": [
					{
						"type": "integer",
						"description": "Lowest difficulty",
						"name": "min_difficulty",
						"in": "query",
						"required": false
					},
					{
						"type": "integer",
						"description": "Highest difficulty",
						"name": "max_difficulty",
						"in": "query",
						"required": false
					},
					{
						"type": "integer",
						"description": "Page size (1-1000)",
						"name": "limit",
						"in": "query",
						"required": false
					},
					{
						"type": "integer",
						"description": "Rows to skip",
						"name": "offset",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					}
				}
			}
		},
		"/api/v1/missions/bulk": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"missions"
				],
				"summary": "Bulk upsert missions",
				"parameters": [
					{
						"description": "Missions to write",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					}
				}
			}
		},
		"/api/v1/missions/{slug}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"missions"
				],
				"summary": "Get mission",
				"parameters": [
					{
						"type": "string",
						"description": "Catalog slug",
						"name": "slug",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found"
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"missions"
				],
				"summary": "Delete mission",
				"parameters": [
					{
						"type": "string",
						"description": "Catalog slug",
						"name": "slug",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found"
					}
				}
			}
		},
		"/api/v1/admin/equipment/sync": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"admin"
				],
				"summary": "Re-import the equipment catalog",
				"parameters": [
					{
						"type": "boolean",
						"description": "Import even when unchanged (default true)",
						"name": "force",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"422": {
						"description": "Invalid catalog"
					}
				}
			}
		},
		"/api/v1/admin/events": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"admin"
				],
				"summary": "Query the event log",
				"parameters": [
					{
						"type": "string",
						"description": "Event subject",
						"name": "subject",
						"in": "query",
						"required": false
					},
					{
						"type": "string",
						"description": "Event type",
						"name": "event_type",
						"in": "query",
						"required": false
					},
					{
						"type": "string",
						"description": "RFC3339 lower bound",
						"name": "since",
						"in": "query",
						"required": false
					},
					{
						"type": "string",
						"description": "RFC3339 upper bound",
						"name": "until",
						"in": "query",
						"required": false
					},
					{
						"type": "integer",
						"description": "Max events (1-1000)",
						"name": "limit",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					}
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Armory API",
	Description:      "Equipment catalog and crafting-dependency resolver.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
