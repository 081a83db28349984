// Package docs holds the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go
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
        "/register": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Register a sales team member",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.AuthResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.RegisterRequest"
                        }
                    }
                ]
            }
        },
        "/login": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Sign in",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.AuthResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.LoginRequest"
                        }
                    }
                ]
            }
        },
        "/pipeline": {
            "get": {
                "tags": [
                    "pipeline"
                ],
                "summary": "Current board",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.BoardResponse"
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
        "/pipeline/stages": {
            "get": {
                "tags": [
                    "pipeline"
                ],
                "summary": "Pipeline stages in column order",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/handler.StageResponse"
                            }
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
        "/pipeline/search": {
            "put": {
                "tags": [
                    "pipeline"
                ],
                "summary": "Set the search term",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.BoardResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.SearchRequest"
                        }
                    }
                ]
            }
        },
        "/pipeline/sort": {
            "post": {
                "tags": [
                    "pipeline"
                ],
                "summary": "Toggle sorting by a field",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.BoardResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.SortRequest"
                        }
                    }
                ]
            }
        },
        "/pipeline/view": {
            "post": {
                "tags": [
                    "pipeline"
                ],
                "summary": "Switch between kanban and list views",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.BoardResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/pipeline/drag": {
            "post": {
                "tags": [
                    "pipeline"
                ],
                "summary": "Apply a finished drag",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.BoardResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.DragRequest"
                        }
                    }
                ]
            }
        },
        "/pipeline/deals/{id}": {
            "get": {
                "tags": [
                    "pipeline"
                ],
                "summary": "Open the read-only detail of a deal",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pipeline.DetailView"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
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
                        "description": "Deal ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/pipeline/detail": {
            "delete": {
                "tags": [
                    "pipeline"
                ],
                "summary": "Close the deal detail",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/deals": {
            "get": {
                "tags": [
                    "deals"
                ],
                "summary": "Deals in canonical order",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/handler.DealResponse"
                            }
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
                    "deals"
                ],
                "summary": "Create a deal",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.DealResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.CreateDealRequest"
                        }
                    }
                ]
            }
        },
        "/deals/{id}": {
            "get": {
                "tags": [
                    "deals"
                ],
                "summary": "Get a deal",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.DealResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
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
                        "description": "Deal ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "patch": {
                "tags": [
                    "deals"
                ],
                "summary": "Update deal fields",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.DealResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Deal ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.UpdateDealRequest"
                        }
                    }
                ]
            }
        },
        "/contacts": {
            "get": {
                "tags": [
                    "contacts"
                ],
                "summary": "Contacts",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/handler.ContactResponse"
                            }
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
                        "description": "Name or company contains",
                        "name": "search",
                        "in": "query"
                    }
                ]
            },
            "post": {
                "tags": [
                    "contacts"
                ],
                "summary": "Create a contact",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.ContactResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.CreateContactRequest"
                        }
                    }
                ]
            }
        },
        "/activities": {
            "get": {
                "tags": [
                    "activities"
                ],
                "summary": "Activities grouped by status",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.ActivityListResponse"
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
                    "activities"
                ],
                "summary": "Schedule an activity",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.ActivityResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.CreateActivityRequest"
                        }
                    }
                ]
            }
        },
        "/activities/{id}": {
            "patch": {
                "tags": [
                    "activities"
                ],
                "summary": "Update an activity",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.ActivityResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Activity ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.UpdateActivityRequest"
                        }
                    }
                ]
            }
        },
        "/proposals": {
            "get": {
                "tags": [
                    "proposals"
                ],
                "summary": "Proposals",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/handler.ProposalResponse"
                            }
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
                    "proposals"
                ],
                "summary": "Draft a proposal for a deal",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.ProposalResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.CreateProposalRequest"
                        }
                    }
                ]
            }
        },
        "/proposals/{id}": {
            "patch": {
                "tags": [
                    "proposals"
                ],
                "summary": "Update a proposal",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.ProposalResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Proposal ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.UpdateProposalRequest"
                        }
                    }
                ]
            }
        },
        "/dashboard": {
            "get": {
                "tags": [
                    "metrics"
                ],
                "summary": "Pipeline dashboard",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/report.Dashboard"
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
        "/reports": {
            "get": {
                "tags": [
                    "metrics"
                ],
                "summary": "Stage distribution and monthly values",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/report.Report"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        }
    },
    "definitions": {
        "handler.RegisterRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            },
            "required": [
                "email",
                "name",
                "password"
            ]
        },
        "handler.LoginRequest": {
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
        "handler.UserResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "handler.AuthResponse": {
            "type": "object",
            "properties": {
                "token": {
                    "type": "string"
                },
                "user": {
                    "$ref": "#/definitions/handler.UserResponse"
                }
            }
        },
        "handler.SearchRequest": {
            "type": "object",
            "properties": {
                "term": {
                    "type": "string"
                }
            }
        },
        "handler.SortRequest": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string",
                    "enum": [
                        "title",
                        "company",
                        "value",
                        "stage",
                        "contact"
                    ]
                }
            },
            "required": [
                "field"
            ]
        },
        "handler.DragDestination": {
            "type": "object",
            "properties": {
                "stage": {
                    "type": "string",
                    "enum": [
                        "treasure",
                        "lead",
                        "contact",
                        "proposal",
                        "negotiation",
                        "closed"
                    ]
                },
                "index": {
                    "type": "integer"
                }
            },
            "required": [
                "stage"
            ]
        },
        "handler.DragRequest": {
            "type": "object",
            "properties": {
                "source_index": {
                    "type": "integer"
                },
                "destination": {
                    "$ref": "#/definitions/handler.DragDestination"
                }
            }
        },
        "handler.StageResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "enum": [
                        "treasure",
                        "lead",
                        "contact",
                        "proposal",
                        "negotiation",
                        "closed"
                    ]
                },
                "label": {
                    "type": "string"
                }
            }
        },
        "pipeline.Card": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "company": {
                    "type": "string"
                },
                "value": {
                    "type": "number"
                },
                "formatted_value": {
                    "type": "string"
                },
                "stage": {
                    "type": "string"
                },
                "stage_label": {
                    "type": "string"
                }
            }
        },
        "pipeline.ColumnView": {
            "type": "object",
            "properties": {
                "stage": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "count": {
                    "type": "integer"
                },
                "formatted_total": {
                    "type": "string"
                },
                "cards": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/pipeline.Card"
                    }
                }
            }
        },
        "pipeline.DetailView": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "company": {
                    "type": "string"
                },
                "value": {
                    "type": "string"
                },
                "stage": {
                    "type": "string"
                },
                "probability": {
                    "type": "string"
                },
                "contact": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "last_activity": {
                    "type": "string"
                },
                "expected_close_date": {
                    "type": "string"
                }
            }
        },
        "handler.BoardResponse": {
            "type": "object",
            "properties": {
                "view": {
                    "type": "string",
                    "enum": [
                        "kanban",
                        "list"
                    ]
                },
                "search": {
                    "type": "string"
                },
                "sort_field": {
                    "type": "string"
                },
                "sort_direction": {
                    "type": "string",
                    "enum": [
                        "asc",
                        "desc"
                    ]
                },
                "count": {
                    "type": "integer"
                },
                "formatted_total": {
                    "type": "string"
                },
                "columns": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/pipeline.ColumnView"
                    }
                },
                "rows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/pipeline.Card"
                    }
                },
                "detail": {
                    "$ref": "#/definitions/pipeline.DetailView"
                }
            }
        },
        "handler.CreateDealRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "company": {
                    "type": "string"
                },
                "value": {
                    "type": "number"
                },
                "stage": {
                    "type": "string",
                    "enum": [
                        "treasure",
                        "lead",
                        "contact",
                        "proposal",
                        "negotiation",
                        "closed"
                    ]
                },
                "probability": {
                    "type": "integer"
                },
                "contact": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "expected_close_date": {
                    "type": "string"
                },
                "responsible_name": {
                    "type": "string"
                },
                "industry": {
                    "type": "string"
                },
                "first_contact_date": {
                    "type": "string"
                },
                "follow_up_date": {
                    "type": "string"
                },
                "contact_responsible": {
                    "type": "string"
                },
                "company_responsible": {
                    "type": "string"
                },
                "context_info": {
                    "type": "string"
                },
                "interaction_history": {
                    "type": "string"
                }
            },
            "required": [
                "title",
                "company"
            ]
        },
        "handler.UpdateDealRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "company": {
                    "type": "string"
                },
                "value": {
                    "type": "number"
                },
                "stage": {
                    "type": "string",
                    "enum": [
                        "treasure",
                        "lead",
                        "contact",
                        "proposal",
                        "negotiation",
                        "closed"
                    ]
                },
                "probability": {
                    "type": "integer"
                },
                "contact": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "expected_close_date": {
                    "type": "string"
                },
                "last_activity": {
                    "type": "string"
                },
                "responsible_name": {
                    "type": "string"
                },
                "industry": {
                    "type": "string"
                },
                "first_contact_date": {
                    "type": "string"
                },
                "follow_up_date": {
                    "type": "string"
                },
                "contact_responsible": {
                    "type": "string"
                },
                "company_responsible": {
                    "type": "string"
                },
                "context_info": {
                    "type": "string"
                },
                "interaction_history": {
                    "type": "string"
                }
            }
        },
        "handler.DealResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "company": {
                    "type": "string"
                },
                "value": {
                    "type": "number"
                },
                "stage": {
                    "type": "string",
                    "enum": [
                        "treasure",
                        "lead",
                        "contact",
                        "proposal",
                        "negotiation",
                        "closed"
                    ]
                },
                "position": {
                    "type": "integer"
                },
                "probability": {
                    "type": "integer"
                },
                "contact": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "expected_close_date": {
                    "type": "string"
                },
                "last_activity": {
                    "type": "string"
                },
                "formatted_value": {
                    "type": "string"
                },
                "stage_label": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "handler.CreateContactRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "company": {
                    "type": "string"
                },
                "position": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "active",
                        "inactive"
                    ]
                }
            },
            "required": [
                "name"
            ]
        },
        "handler.ContactResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "company": {
                    "type": "string"
                },
                "position": {
                    "type": "string"
                },
                "last_contact": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "status_label": {
                    "type": "string"
                },
                "formatted_last_contact": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                }
            }
        },
        "handler.CreateActivityRequest": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string",
                    "enum": [
                        "call",
                        "meeting",
                        "email",
                        "task"
                    ]
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "deal_id": {
                    "type": "string"
                },
                "contact_id": {
                    "type": "string"
                }
            },
            "required": [
                "type",
                "title",
                "date"
            ]
        },
        "handler.UpdateActivityRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "pending",
                        "completed"
                    ]
                }
            }
        },
        "model.DisplayMeta": {
            "type": "object",
            "properties": {
                "label": {
                    "type": "string"
                },
                "icon": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                }
            }
        },
        "model.RelatedTo": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "handler.ActivityResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "display": {
                    "$ref": "#/definitions/model.DisplayMeta"
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "formatted_date": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "related_to": {
                    "$ref": "#/definitions/model.RelatedTo"
                }
            }
        },
        "handler.ActivityListResponse": {
            "type": "object",
            "properties": {
                "pending": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/handler.ActivityResponse"
                    }
                },
                "completed": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/handler.ActivityResponse"
                    }
                }
            }
        },
        "handler.CreateProposalRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "deal_id": {
                    "type": "string"
                },
                "value": {
                    "type": "number"
                },
                "valid_until": {
                    "type": "string"
                }
            },
            "required": [
                "title",
                "deal_id"
            ]
        },
        "handler.UpdateProposalRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "value": {
                    "type": "number"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "draft",
                        "sent",
                        "accepted",
                        "rejected"
                    ]
                },
                "valid_until": {
                    "type": "string"
                }
            }
        },
        "handler.ProposalResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "deal_id": {
                    "type": "string"
                },
                "deal_title": {
                    "type": "string"
                },
                "company": {
                    "type": "string"
                },
                "value": {
                    "type": "number"
                },
                "formatted_value": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "display": {
                    "$ref": "#/definitions/model.DisplayMeta"
                },
                "valid_until": {
                    "type": "string"
                },
                "formatted_valid_until": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                }
            }
        },
        "report.StageFigure": {
            "type": "object",
            "properties": {
                "stage": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "count": {
                    "type": "integer"
                },
                "value": {
                    "type": "number"
                },
                "formatted_value": {
                    "type": "string"
                },
                "share": {
                    "type": "number"
                },
                "formatted_share": {
                    "type": "string"
                }
            }
        },
        "report.MonthFigure": {
            "type": "object",
            "properties": {
                "month": {
                    "type": "string"
                },
                "value": {
                    "type": "number"
                },
                "formatted_value": {
                    "type": "string"
                }
            }
        },
        "report.Dashboard": {
            "type": "object",
            "properties": {
                "total_deals": {
                    "type": "integer"
                },
                "total_value": {
                    "type": "number"
                },
                "formatted_total_value": {
                    "type": "string"
                },
                "active_deals": {
                    "type": "integer"
                },
                "won_deals": {
                    "type": "integer"
                },
                "lost_deals": {
                    "type": "integer"
                },
                "conversion_rate": {
                    "type": "number"
                },
                "formatted_conversion_rate": {
                    "type": "string"
                },
                "funnel": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/report.StageFigure"
                    }
                },
                "average_value": {
                    "type": "string"
                },
                "max_value": {
                    "type": "string"
                },
                "min_value": {
                    "type": "string"
                },
                "active_contacts": {
                    "type": "integer"
                },
                "pending_activities": {
                    "type": "integer"
                },
                "proposals_sent": {
                    "type": "integer"
                }
            }
        },
        "report.Report": {
            "type": "object",
            "properties": {
                "total_deals": {
                    "type": "integer"
                },
                "closed_deals": {
                    "type": "integer"
                },
                "treasure_deals": {
                    "type": "integer"
                },
                "conversion_rate": {
                    "type": "number"
                },
                "formatted_conversion_rate": {
                    "type": "string"
                },
                "distribution": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/report.StageFigure"
                    }
                },
                "total_value": {
                    "type": "string"
                },
                "average_value": {
                    "type": "string"
                },
                "monthly": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/report.MonthFigure"
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
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
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Sales CRM API",
	Description:      "Sales pipeline board, deals, contacts, activities, proposals and reports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
