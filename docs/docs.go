// Package docs registers the swagger document of the API with swag.
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
				"tags": [
					"System"
				],
				"summary": "Service health",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				}
			}
		},
		"/auth/register": {
			"post": {
				"tags": [
					"Authentication"
				],
				"summary": "Register a staff account",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.RegisterUser"
						}
					}
				]
			}
		},
		"/auth/login": {
			"post": {
				"tags": [
					"Authentication"
				],
				"summary": "Log in",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.LoginRequest"
						}
					}
				]
			}
		},
		"/auth/me": {
			"get": {
				"tags": [
					"Authentication"
				],
				"summary": "Current user",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/staff": {
			"get": {
				"tags": [
					"Staff"
				],
				"summary": "List staff",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"Staff"
				],
				"summary": "Create a staff account with any role",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.RegisterUser"
						}
					}
				]
			}
		},
		"/staff/{id}": {
			"get": {
				"tags": [
					"Staff"
				],
				"summary": "Get a staff member",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"patch": {
				"tags": [
					"Staff"
				],
				"summary": "Update a staff member",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.UpdateUserRequest"
						}
					}
				]
			}
		},
		"/items": {
			"get": {
				"tags": [
					"Inventory"
				],
				"summary": "List inventory items",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "category",
						"in": "query"
					},
					{
						"type": "string",
						"name": "location",
						"in": "query"
					},
					{
						"type": "string",
						"name": "vehicle_id",
						"in": "query"
					},
					{
						"type": "string",
						"name": "search",
						"in": "query"
					},
					{
						"type": "boolean",
						"name": "isLowStock",
						"in": "query"
					},
					{
						"type": "boolean",
						"name": "isExpired",
						"in": "query"
					},
					{
						"type": "boolean",
						"name": "isExpiringSoon",
						"in": "query"
					},
					{
						"type": "integer",
						"name": "page",
						"in": "query",
						"default": 1
					},
					{
						"type": "integer",
						"name": "limit",
						"in": "query",
						"default": 10
					}
				]
			},
			"post": {
				"tags": [
					"Inventory"
				],
				"summary": "Create an inventory item",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.CreateInventoryItemRequest"
						}
					}
				]
			}
		},
		"/items/{id}": {
			"get": {
				"tags": [
					"Inventory"
				],
				"summary": "Get an inventory item",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"put": {
				"tags": [
					"Inventory"
				],
				"summary": "Update an inventory item",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.UpdateInventoryItemRequest"
						}
					}
				]
			},
			"delete": {
				"tags": [
					"Inventory"
				],
				"summary": "Delete an inventory item",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/inventory/bulk-reorder": {
			"post": {
				"tags": [
					"Inventory"
				],
				"summary": "Reorder every selected low-stock item",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.BulkReorderRequest"
						}
					}
				]
			}
		},
		"/inventory/alerts": {
			"get": {
				"tags": [
					"Inventory"
				],
				"summary": "Stock alerts",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/inventory-reorders": {
			"get": {
				"tags": [
					"Reorders"
				],
				"summary": "List reorder requests",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "status",
						"in": "query"
					},
					{
						"type": "string",
						"name": "priority",
						"in": "query"
					},
					{
						"type": "string",
						"name": "inventoryItemId",
						"in": "query"
					}
				]
			},
			"post": {
				"tags": [
					"Reorders"
				],
				"summary": "Create a reorder request",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.CreateReorderRequest"
						}
					}
				]
			}
		},
		"/inventory-reorders/{id}": {
			"get": {
				"tags": [
					"Reorders"
				],
				"summary": "Get a reorder request",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"delete": {
				"tags": [
					"Reorders"
				],
				"summary": "Delete a pending reorder request",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/inventory-reorders/{id}/approve": {
			"patch": {
				"tags": [
					"Reorders"
				],
				"summary": "Approve a pending reorder request",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/inventory-reorders/{id}/ship": {
			"patch": {
				"tags": [
					"Reorders"
				],
				"summary": "Mark an approved reorder as in transit",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/inventory-reorders/{id}/deliver": {
			"patch": {
				"tags": [
					"Reorders"
				],
				"summary": "Record delivery and restock the item",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/inventory-reorders/{id}/cancel": {
			"patch": {
				"tags": [
					"Reorders"
				],
				"summary": "Cancel a pending or approved reorder",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/shift-schedules": {
			"get": {
				"tags": [
					"Shifts"
				],
				"summary": "List shift schedules",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "date",
						"in": "query"
					},
					{
						"type": "string",
						"name": "vehicle",
						"in": "query"
					},
					{
						"type": "string",
						"name": "member_id",
						"in": "query"
					}
				]
			},
			"post": {
				"tags": [
					"Shifts"
				],
				"summary": "Create a shift schedule",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.ShiftScheduleRequest"
						}
					}
				]
			}
		},
		"/shift-schedules/validate": {
			"post": {
				"tags": [
					"Shifts"
				],
				"summary": "Check a schedule without saving it",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "query"
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.ShiftScheduleRequest"
						}
					}
				]
			}
		},
		"/shift-schedules/{id}": {
			"get": {
				"tags": [
					"Shifts"
				],
				"summary": "Get a shift schedule",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"put": {
				"tags": [
					"Shifts"
				],
				"summary": "Update a shift schedule",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.ShiftScheduleRequest"
						}
					}
				]
			},
			"delete": {
				"tags": [
					"Shifts"
				],
				"summary": "Delete a shift schedule",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/vehicles": {
			"get": {
				"tags": [
					"Vehicles"
				],
				"summary": "List vehicles",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"Vehicles"
				],
				"summary": "Add a vehicle",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.CreateVehicleRequest"
						}
					}
				]
			}
		},
		"/vehicles/{id}": {
			"get": {
				"tags": [
					"Vehicles"
				],
				"summary": "Get a vehicle",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"put": {
				"tags": [
					"Vehicles"
				],
				"summary": "Update a vehicle",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.UpdateVehicleRequest"
						}
					}
				]
			},
			"delete": {
				"tags": [
					"Vehicles"
				],
				"summary": "Remove a vehicle",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/supply-requests": {
			"get": {
				"tags": [
					"Procurement"
				],
				"summary": "List supply requests",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "status",
						"in": "query"
					}
				]
			},
			"post": {
				"tags": [
					"Procurement"
				],
				"summary": "Open a supply request for bids",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.CreateSupplyRequest"
						}
					}
				]
			}
		},
		"/supply-requests/{id}": {
			"get": {
				"tags": [
					"Procurement"
				],
				"summary": "Get a supply request",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/supply-requests/{id}/bids": {
			"post": {
				"tags": [
					"Procurement"
				],
				"summary": "Submit a supplier bid",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.SubmitBidRequest"
						}
					}
				]
			}
		},
		"/supply-requests/{id}/bids/compare": {
			"get": {
				"tags": [
					"Procurement"
				],
				"summary": "Compare bids",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/supply-requests/{id}/assign": {
			"post": {
				"tags": [
					"Procurement"
				],
				"summary": "Award a supply request to a bid",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.AssignBidRequest"
						}
					}
				]
			}
		},
		"/budgets": {
			"get": {
				"tags": [
					"Finance"
				],
				"summary": "List budgets",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"name": "fiscal_year",
						"in": "query"
					}
				]
			},
			"post": {
				"tags": [
					"Finance"
				],
				"summary": "Allocate a budget",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.CreateBudgetRequest"
						}
					}
				]
			}
		},
		"/budgets/{id}": {
			"get": {
				"tags": [
					"Finance"
				],
				"summary": "Get a budget",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/budgets/{id}/expenses": {
			"get": {
				"tags": [
					"Finance"
				],
				"summary": "List expenses of a budget",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"post": {
				"tags": [
					"Finance"
				],
				"summary": "Record an expense",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.RecordExpenseRequest"
						}
					}
				]
			}
		}
	},
	"definitions": {
		"models.APIError": {
			"type": "object",
			"properties": {
				"type": {
					"type": "string"
				},
				"details": {
					"type": "string"
				},
				"field": {
					"type": "string"
				}
			}
		},
		"models.Pagination": {
			"type": "object",
			"properties": {
				"page": {
					"type": "integer"
				},
				"limit": {
					"type": "integer"
				},
				"total": {
					"type": "integer"
				},
				"total_pages": {
					"type": "integer"
				},
				"has_next": {
					"type": "boolean"
				},
				"has_previous": {
					"type": "boolean"
				}
			}
		},
		"models.APIResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				},
				"success": {
					"type": "boolean"
				},
				"code": {
					"type": "integer"
				},
				"message": {
					"type": "string"
				},
				"data": {},
				"pagination": {
					"$ref": "#/definitions/models.Pagination"
				},
				"errors": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				},
				"error": {
					"$ref": "#/definitions/models.APIError"
				}
			}
		},
		"models.RegisterUser": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"username": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"first_name": {
					"type": "string"
				},
				"last_name": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"role": {
					"type": "string",
					"enum": [
						"admin",
						"officer",
						"staff"
					]
				}
			},
			"required": [
				"email",
				"username",
				"password",
				"first_name",
				"last_name",
				"title"
			]
		},
		"models.LoginRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"required": [
				"email",
				"password"
			]
		},
		"models.UpdateUserRequest": {
			"type": "object",
			"properties": {
				"first_name": {
					"type": "string"
				},
				"last_name": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"status": {
					"type": "string"
				}
			}
		},
		"models.CreateInventoryItemRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"quantity": {
					"type": "integer"
				},
				"threshold": {
					"type": "integer"
				},
				"expire_date": {
					"type": "string"
				},
				"location": {
					"type": "string"
				},
				"condition": {
					"type": "string"
				},
				"vehicle_id": {
					"type": "string"
				}
			},
			"required": [
				"name",
				"category",
				"quantity",
				"location"
			]
		},
		"models.UpdateInventoryItemRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"quantity": {
					"type": "integer"
				},
				"threshold": {
					"type": "integer"
				},
				"expire_date": {
					"type": "string"
				},
				"location": {
					"type": "string"
				},
				"condition": {
					"type": "string"
				},
				"vehicle_id": {
					"type": "string"
				}
			}
		},
		"models.BulkReorderRequest": {
			"type": "object",
			"properties": {
				"itemIds": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			},
			"required": [
				"itemIds"
			]
		},
		"models.CreateReorderRequest": {
			"type": "object",
			"properties": {
				"inventoryItemId": {
					"type": "string"
				},
				"quantity": {
					"type": "integer"
				},
				"priority": {
					"type": "string",
					"enum": [
						"Low",
						"Medium",
						"High",
						"Urgent"
					]
				},
				"supplier": {
					"type": "string"
				},
				"expectedDate": {
					"type": "string",
					"example": "2025-06-15"
				},
				"notes": {
					"type": "string"
				}
			},
			"required": [
				"inventoryItemId"
			]
		},
		"models.ShiftScheduleRequest": {
			"type": "object",
			"properties": {
				"date": {
					"type": "string",
					"example": "2025-06-01"
				},
				"vehicle": {
					"type": "string"
				},
				"shiftType": {
					"type": "string",
					"enum": [
						"Day",
						"Night",
						"24-Hour",
						"Standby"
					]
				},
				"members": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"notes": {
					"type": "string"
				}
			},
			"required": [
				"date",
				"vehicle",
				"shiftType",
				"members"
			]
		},
		"models.CreateVehicleRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"type": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"plate_number": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				}
			},
			"required": [
				"name",
				"type"
			]
		},
		"models.UpdateVehicleRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"type": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"plate_number": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				}
			}
		},
		"models.SupplyLine": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"quantity": {
					"type": "integer"
				}
			},
			"required": [
				"name",
				"quantity"
			]
		},
		"models.CreateSupplyRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.SupplyLine"
					}
				}
			},
			"required": [
				"title",
				"items"
			]
		},
		"models.SubmitBidRequest": {
			"type": "object",
			"properties": {
				"supplier": {
					"type": "string"
				},
				"amount": {
					"type": "string",
					"example": "125.50"
				},
				"delivery_days": {
					"type": "integer"
				},
				"notes": {
					"type": "string"
				}
			},
			"required": [
				"supplier",
				"amount"
			]
		},
		"models.AssignBidRequest": {
			"type": "object",
			"properties": {
				"bidId": {
					"type": "string"
				}
			},
			"required": [
				"bidId"
			]
		},
		"models.CreateBudgetRequest": {
			"type": "object",
			"properties": {
				"fiscal_year": {
					"type": "integer"
				},
				"category": {
					"type": "string"
				},
				"allocated": {
					"type": "string",
					"example": "125.50"
				}
			},
			"required": [
				"fiscal_year",
				"category",
				"allocated"
			]
		},
		"models.RecordExpenseRequest": {
			"type": "object",
			"properties": {
				"description": {
					"type": "string"
				},
				"amount": {
					"type": "string",
					"example": "125.50"
				},
				"incurred_on": {
					"type": "string",
					"example": "2025-06-01"
				}
			},
			"required": [
				"description",
				"amount",
				"incurred_on"
			]
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Enter 'Bearer' followed by a space and the token from /auth/login.",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Fire Station Administration API",
	Description:      "Inventory, reorders, shift scheduling, vehicles, procurement and budgets for a fire station.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
