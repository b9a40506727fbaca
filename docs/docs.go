// Package docs holds the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/server/main.go
package docs

import "github.com/swaggo/swag/v2"

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
		"/": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"system"
				],
				"summary": "Health check",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.StatusResponse"
						}
					}
				}
			}
		},
		"/menu": {
			"get": {
				"description": "One row per catalog variation. Any catalog failure answers 500; a partial menu is never returned.",
				"produces": [
					"application/json"
				],
				"tags": [
					"menu"
				],
				"summary": "Get menu",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.MenuItemResponse"
							}
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/order": {
			"post": {
				"description": "Places an order from a JSON body, bypassing the voice webhook",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"orders"
				],
				"summary": "Create order",
				"parameters": [
					{
						"description": "Order to place",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreateOrderRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.CreateOrderResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/orders/recent": {
			"get": {
				"description": "Newest orders at the location, newest first",
				"produces": [
					"application/json"
				],
				"tags": [
					"orders"
				],
				"summary": "List recent orders",
				"parameters": [
					{
						"maximum": 500,
						"minimum": 1,
						"type": "integer",
						"default": 3,
						"description": "Maximum orders to return",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.RecentOrdersResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/vapi-webhook": {
			"post": {
				"description": "Receives server messages. tool-calls answers one result per place_order call; other event types are acknowledged. A body that is not a JSON object answers 500.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"vapi"
				],
				"summary": "Voice platform webhook",
				"parameters": [
					{
						"type": "string",
						"description": "Shared webhook secret, required when one is configured",
						"name": "X-Vapi-Secret",
						"in": "header"
					},
					{
						"description": "Server message envelope",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ToolCallsResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.NoValidItemsResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"413": {
						"description": "Request Entity Too Large",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"dto.ErrorResponse": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"detail": {
					"type": "string"
				},
				"details": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.ValidationDetail"
					}
				},
				"request_id": {
					"type": "string"
				}
			}
		},
		"dto.ValidationDetail": {
			"type": "object",
			"properties": {
				"field": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"dto.StatusResponse": {
			"type": "object",
			"properties": {
				"service": {
					"type": "string",
					"example": "Voice AI Restaurant Agent"
				},
				"status": {
					"type": "string",
					"example": "ok"
				}
			}
		},
		"dto.MenuItemResponse": {
			"type": "object",
			"properties": {
				"category": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"price": {
					"type": "number"
				}
			}
		},
		"dto.OrderItemRequest": {
			"type": "object",
			"properties": {
				"catalog_object_id": {
					"type": "string"
				},
				"modifiers": {
					"type": "array",
					"items": {}
				},
				"quantity": {
					"type": "string"
				}
			},
			"required": [
				"catalog_object_id"
			]
		},
		"dto.CreateOrderRequest": {
			"type": "object",
			"properties": {
				"customer_name": {
					"type": "string"
				},
				"items": {
					"type": "array",
					"minItems": 1,
					"items": {
						"$ref": "#/definitions/dto.OrderItemRequest"
					}
				},
				"special_instructions": {
					"type": "string"
				}
			},
			"required": [
				"items"
			]
		},
		"dto.MoneyResponse": {
			"type": "object",
			"properties": {
				"amount": {
					"type": "integer"
				},
				"currency": {
					"type": "string"
				}
			}
		},
		"dto.PlacedOrderResponse": {
			"type": "object",
			"properties": {
				"order_id": {
					"type": "string"
				},
				"state": {
					"type": "string"
				},
				"total_money": {
					"$ref": "#/definitions/dto.MoneyResponse"
				}
			}
		},
		"dto.CreateOrderResponse": {
			"type": "object",
			"properties": {
				"order": {
					"$ref": "#/definitions/dto.PlacedOrderResponse"
				},
				"status": {
					"type": "string"
				}
			}
		},
		"dto.LineItemResponse": {
			"type": "object",
			"properties": {
				"catalog_object_id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"price": {
					"type": "number"
				},
				"quantity": {
					"type": "string"
				}
			}
		},
		"dto.OrderSummaryResponse": {
			"type": "object",
			"properties": {
				"created_at": {
					"type": "string"
				},
				"currency": {
					"type": "string"
				},
				"line_items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.LineItemResponse"
					}
				},
				"note": {
					"type": "string"
				},
				"order_id": {
					"type": "string"
				},
				"reference_id": {
					"type": "string"
				},
				"state": {
					"type": "string"
				},
				"total_amount": {
					"type": "number"
				}
			}
		},
		"dto.RecentOrdersResponse": {
			"type": "object",
			"properties": {
				"count": {
					"type": "integer"
				},
				"orders": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.OrderSummaryResponse"
					}
				},
				"status": {
					"type": "string"
				}
			}
		},
		"dto.ToolCallResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				},
				"result": {
					"type": "string"
				},
				"toolCallId": {
					"type": "string"
				}
			}
		},
		"dto.ToolCallsResponse": {
			"type": "object",
			"properties": {
				"responses": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.ToolCallResponse"
					}
				}
			}
		},
		"dto.NoValidItemsResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				},
				"message": {
					"type": "string"
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
	Title:            "Voice AI Restaurant Agent API",
	Description:      "Bridges voice assistant tool calls to Square orders.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
