package docs

import "github.com/swaggo/swag"

const docTemplate = `{
  "swagger": "2.0",
  "info": {
    "title": "Customer Journey API",
    "description": "Read-only CRM API backed by a SQL warehouse or canned fixtures",
    "version": "1.0"
  },
  "basePath": "/",
  "paths": {
    "/api/customers": {
      "get": {
        "tags": ["customers"],
        "summary": "List customers",
        "produces": ["application/json"],
        "parameters": [{"$ref": "#/parameters/AccessToken"}],
        "responses": {
          "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Customer"}}},
          "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorBody"}}
        }
      }
    },
    "/api/customers/{id}": {
      "get": {
        "tags": ["customers"],
        "summary": "Get customer",
        "produces": ["application/json"],
        "parameters": [{"$ref": "#/parameters/CustomerID"}, {"$ref": "#/parameters/AccessToken"}],
        "responses": {
          "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Customer"}},
          "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorBody"}}
        }
      }
    },
    "/api/customers/{id}/summary": {
      "get": {
        "tags": ["customers"],
        "summary": "Get customer summary",
        "produces": ["application/json"],
        "parameters": [{"$ref": "#/parameters/CustomerID"}, {"$ref": "#/parameters/AccessToken"}],
        "responses": {
          "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CustomerSummary"}},
          "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorBody"}}
        }
      }
    },
    "/api/customers/{id}/next-action": {
      "get": {
        "tags": ["customers"],
        "summary": "Get next best action",
        "description": "Highest priority pending or in-progress action, or {\"message\":\"No pending actions\"}",
        "produces": ["application/json"],
        "parameters": [{"$ref": "#/parameters/CustomerID"}, {"$ref": "#/parameters/AccessToken"}],
        "responses": {
          "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.NextBestAction"}}
        }
      }
    },
    "/api/journey/{id}": {
      "get": {
        "tags": ["journey"],
        "summary": "Customer journey",
        "produces": ["application/json"],
        "parameters": [{"$ref": "#/parameters/CustomerID"}, {"$ref": "#/parameters/AccessToken"}],
        "responses": {
          "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.JourneyEvent"}}}
        }
      }
    },
    "/api/dashboard/stats": {
      "get": {
        "tags": ["dashboard"],
        "summary": "Dashboard counters",
        "produces": ["application/json"],
        "parameters": [{"$ref": "#/parameters/AccessToken"}],
        "responses": {
          "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.DashboardStats"}}
        }
      }
    },
    "/api/dashboard/trends/hourly": {
      "get": {
        "tags": ["dashboard"],
        "summary": "Calls per hour of day",
        "produces": ["application/json"],
        "parameters": [{"$ref": "#/parameters/AccessToken"}],
        "responses": {
          "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.HourlyTrend"}}}
        }
      }
    },
    "/api/dashboard/trends/daily": {
      "get": {
        "tags": ["dashboard"],
        "summary": "Calls per day",
        "produces": ["application/json"],
        "parameters": [{"$ref": "#/parameters/AccessToken"}],
        "responses": {
          "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.DailyTrend"}}}
        }
      }
    },
    "/api/technicians/visits": {
      "get": {
        "tags": ["technicians"],
        "summary": "Active technician visits",
        "produces": ["application/json"],
        "parameters": [{"$ref": "#/parameters/AccessToken"}],
        "responses": {
          "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.TechnicianVisit"}}}
        }
      }
    },
    "/api/health": {
      "get": {
        "tags": ["health"],
        "summary": "Health check",
        "produces": ["application/json"],
        "responses": {
          "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}}
        }
      }
    }
  },
  "parameters": {
    "CustomerID": {"name": "id", "in": "path", "required": true, "type": "string", "description": "Customer ID"},
    "AccessToken": {"name": "X-Forwarded-Access-Token", "in": "header", "required": false, "type": "string", "description": "Forwarded warehouse token"}
  },
  "definitions": {
    "handlers.ErrorBody": {
      "type": "object",
      "properties": {
        "error": {
          "type": "object",
          "properties": {
            "code": {"type": "string"},
            "message": {"type": "string"},
            "details": {}
          }
        }
      }
    },
    "handlers.HealthResponse": {
      "type": "object",
      "properties": {
        "status": {"type": "string"},
        "timestamp": {"type": "string"},
        "mode": {"type": "string", "enum": ["live", "fixture"]}
      }
    },
    "models.Customer": {
      "type": "object",
      "properties": {
        "customer_id": {"type": "string"},
        "name": {"type": "string"},
        "email": {"type": "string"},
        "phone": {"type": "string"},
        "status": {"type": "string", "enum": ["low", "normal", "urgent"]},
        "main_category": {"type": "string"},
        "ai_summary": {"type": "string"},
        "updated_at": {"type": "string"},
        "summary_generated_at": {"type": "string"}
      }
    },
    "models.CustomerSummary": {
      "type": "object",
      "properties": {
        "summary_text": {"type": "string"},
        "generated_at": {"type": "string"},
        "model_version": {"type": "string"}
      }
    },
    "models.NextBestAction": {
      "type": "object",
      "properties": {
        "customer_id": {"type": "string"},
        "action_type": {"type": "string"},
        "action_description": {"type": "string"},
        "priority": {"type": "string"},
        "recommended_date": {"type": "string"},
        "status": {"type": "string"}
      }
    },
    "models.JourneyEvent": {
      "type": "object",
      "properties": {
        "event_type": {"type": "string", "enum": ["call", "installation", "visit", "website", "digital"]},
        "event_id": {"type": "string"},
        "event_title": {"type": "string"},
        "event_time": {"type": "string"},
        "description": {"type": "string"},
        "status": {"type": "string"},
        "color": {"type": "string"},
        "shape": {"type": "string"},
        "call_duration": {"type": "integer"},
        "call_type": {"type": "string"},
        "product_name": {"type": "string"},
        "visit_purpose": {"type": "string"},
        "technician_name": {"type": "string"},
        "page_url": {"type": "string"},
        "channel": {"type": "string"},
        "sentiment": {"type": "string"}
      }
    },
    "models.DashboardStats": {
      "type": "object",
      "properties": {
        "open_calls": {"type": "integer"},
        "low_customers": {"type": "integer"},
        "normal_customers": {"type": "integer"},
        "urgent_customers": {"type": "integer"}
      }
    },
    "models.HourlyTrend": {
      "type": "object",
      "properties": {
        "hour": {"type": "integer"},
        "call_count": {"type": "integer"}
      }
    },
    "models.DailyTrend": {
      "type": "object",
      "properties": {
        "date": {"type": "string"},
        "call_count": {"type": "integer"}
      }
    },
    "models.TechnicianVisit": {
      "type": "object",
      "properties": {
        "visit_id": {"type": "string"},
        "customer_id": {"type": "string"},
        "customer_name": {"type": "string"},
        "address": {"type": "string"},
        "technician_id": {"type": "string"},
        "technician_name": {"type": "string"},
        "visit_date": {"type": "string"},
        "visit_status": {"type": "string", "enum": ["planned", "underway"]},
        "visit_purpose": {"type": "string"},
        "latitude": {"type": "number", "x-nullable": true},
        "longitude": {"type": "number", "x-nullable": true},
        "estimated_duration": {"type": "integer"},
        "notes": {"type": "string"}
      }
    }
  }
}`

func init() {
	swag.Register(swag.Name, &s{})
}

type s struct{}

func (s *s) ReadDoc() string {
	return docTemplate
}
