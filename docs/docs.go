package docs

import "github.com/swaggo/swag"

const docTemplate = `{
  "swagger": "2.0",
  "info": {
    "title": "AI Calls Platform API",
    "description": "Call recording metadata listing and AI-assisted call analysis",
    "version": "1.0.0"
  },
  "basePath": "/",
  "paths": {
    "/": {
      "get": {
        "tags": ["meta"],
        "summary": "API index",
        "produces": ["application/json"],
        "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.RootResponse"}}}
      }
    },
    "/api/health": {
      "get": {
        "tags": ["meta"],
        "summary": "Health check",
        "produces": ["application/json"],
        "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}}}
      }
    },
    "/api/calls": {
      "get": {
        "tags": ["calls"],
        "summary": "List calls",
        "description": "Summaries of every valid metadata document, newest first",
        "produces": ["application/json"],
        "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.CallsListResponse"}}}
      }
    },
    "/api/calls/stats": {
      "get": {
        "tags": ["calls"],
        "summary": "Call statistics",
        "produces": ["application/json"],
        "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.CallStatsResponse"}}}
      }
    },
    "/api/calls/{recordingId}": {
      "get": {
        "tags": ["calls"],
        "summary": "Call metadata",
        "description": "Returns the stored document as-is, after the space-key repair",
        "produces": ["application/json"],
        "parameters": [{"type": "string", "description": "Recording ID", "name": "recordingId", "in": "path", "required": true}],
        "responses": {
          "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.CallDetailsResponse"}},
          "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
        }
      }
    },
    "/api/calls/{recordingId}/audio": {
      "get": {
        "tags": ["calls"],
        "summary": "Call audio",
        "produces": ["audio/ogg"],
        "parameters": [{"type": "string", "description": "Recording ID", "name": "recordingId", "in": "path", "required": true}],
        "responses": {
          "200": {"description": "OK", "schema": {"type": "file"}},
          "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
        }
      }
    },
    "/api/calls/{recordingId}/analyze": {
      "post": {
        "tags": ["analysis"],
        "summary": "Analyze call",
        "description": "Summarize one call from its metadata. Falls back to a deterministic summary when no model is configured or the model fails.",
        "produces": ["application/json"],
        "parameters": [{"type": "string", "description": "Recording ID", "name": "recordingId", "in": "path", "required": true}],
        "responses": {
          "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.AnalyzeResponse"}},
          "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
        }
      }
    },
    "/api/calls/analyze/batch": {
      "post": {
        "tags": ["analysis"],
        "summary": "Analyze calls in batch",
        "description": "Analyze up to 10 recordings concurrently. Unknown ids are omitted from the result.",
        "consumes": ["application/json"],
        "produces": ["application/json"],
        "parameters": [{"description": "Recording IDs", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.BatchAnalyzeRequest"}}],
        "responses": {
          "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.BatchAnalyzeResponse"}},
          "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
        }
      }
    },
    "/api/schema/metadata": {
      "get": {
        "tags": ["schema"],
        "summary": "Metadata JSON Schema",
        "produces": ["application/json"],
        "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
      }
    }
  },
  "definitions": {
    "handlers.RootResponse": {
      "type": "object",
      "properties": {
        "name": {"type": "string"},
        "version": {"type": "string"},
        "status": {"type": "string"},
        "endpoints": {"type": "object", "additionalProperties": {"type": "string"}}
      }
    },
    "handlers.HealthResponse": {
      "type": "object",
      "properties": {
        "message": {"type": "string"},
        "timestamp": {"type": "string"},
        "status": {"type": "string"},
        "aiConfigured": {"type": "boolean"}
      }
    },
    "handlers.ErrorResponse": {
      "type": "object",
      "properties": {
        "success": {"type": "boolean"},
        "error": {"type": "string"}
      }
    },
    "handlers.CallsListResponse": {
      "type": "object",
      "properties": {
        "success": {"type": "boolean"},
        "data": {"type": "array", "items": {"$ref": "#/definitions/models.CallSummary"}},
        "count": {"type": "integer"}
      }
    },
    "handlers.CallStatsResponse": {
      "type": "object",
      "properties": {
        "success": {"type": "boolean"},
        "data": {"$ref": "#/definitions/models.CallStats"}
      }
    },
    "handlers.CallDetailsResponse": {
      "type": "object",
      "properties": {
        "success": {"type": "boolean"},
        "data": {"type": "object"}
      }
    },
    "handlers.AnalyzeResponse": {
      "type": "object",
      "properties": {
        "success": {"type": "boolean"},
        "data": {"$ref": "#/definitions/models.AIAnalysis"}
      }
    },
    "handlers.BatchAnalyzeRequest": {
      "type": "object",
      "required": ["recordingIds"],
      "properties": {
        "recordingIds": {"type": "array", "minItems": 1, "items": {"type": "string"}}
      }
    },
    "handlers.BatchAnalyzeResponse": {
      "type": "object",
      "properties": {
        "success": {"type": "boolean"},
        "data": {"type": "array", "items": {"$ref": "#/definitions/models.BatchAnalysis"}},
        "count": {"type": "integer"}
      }
    },
    "models.CallSummary": {
      "type": "object",
      "properties": {
        "recordingId": {"type": "string"},
        "subject": {"type": "string"},
        "direction": {"type": "string"},
        "agent": {"type": "string"},
        "duration": {"type": "string"},
        "date": {"type": "string"},
        "queue": {"type": "string"}
      }
    },
    "models.CallStats": {
      "type": "object",
      "properties": {
        "total": {"type": "integer"},
        "byDirection": {
          "type": "object",
          "properties": {"inbound": {"type": "integer"}, "outbound": {"type": "integer"}}
        },
        "byQueue": {"type": "object", "additionalProperties": {"type": "integer"}},
        "byAgent": {"type": "object", "additionalProperties": {"type": "integer"}},
        "avgDuration": {"type": "number"}
      }
    },
    "models.AIAnalysis": {
      "type": "object",
      "properties": {
        "summary": {"type": "string"},
        "keyPoints": {"type": "array", "items": {"type": "string"}},
        "sentiment": {"type": "string"},
        "actionItems": {"type": "array", "items": {"type": "string"}},
        "customerIntent": {"type": "string"}
      }
    },
    "models.BatchAnalysis": {
      "type": "object",
      "properties": {
        "recordingId": {"type": "string"},
        "analysis": {"$ref": "#/definitions/models.AIAnalysis"}
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
