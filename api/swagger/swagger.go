package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Interview Console API",
        "description": "BFF for the mock-interview training console",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Student and admin sign-in"},
        {"name": "Student", "description": "Student dashboard and interview flow"},
        {"name": "Admin", "description": "Admin console tabs"},
        {"name": "Leaderboard", "description": "Ranked student performance"},
        {"name": "Questions", "description": "Question bank management"},
        {"name": "Imports", "description": "Mentor CSV student registration"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/auth/student/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Student login",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/admin/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Admin login",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/student/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Student logout",
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/student/dashboard": {
            "get": {
                "tags": ["Student"],
                "summary": "Student dashboard",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/student/interview/instructions": {
            "get": {
                "tags": ["Student"],
                "summary": "Interview instructions",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/student/interview/start": {
            "post": {
                "tags": ["Student"],
                "summary": "Start a mock interview",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StartInterviewRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/student/interview/{id}/question": {
            "get": {
                "tags": ["Student"],
                "summary": "Current question",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/student/interview/answer": {
            "post": {
                "tags": ["Student"],
                "summary": "Submit answer and advance",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AnswerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/student/interview/{id}/complete": {
            "post": {
                "tags": ["Student"],
                "summary": "Complete interview and fetch feedback",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/dashboard": {
            "get": {
                "tags": ["Admin"],
                "summary": "Admin dashboard tab",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/analytics": {
            "get": {
                "tags": ["Admin"],
                "summary": "Analytics tab",
                "parameters": [
                    {"name": "period", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/students": {
            "get": {
                "tags": ["Admin"],
                "summary": "Students tab",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/profile": {
            "get": {
                "tags": ["Admin"],
                "summary": "Admin profile and active tab",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/tab": {
            "put": {
                "tags": ["Admin"],
                "summary": "Persist active tab",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TabRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/admin/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Admin logout",
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/admin/students/filters": {
            "put": {
                "tags": ["Admin"],
                "summary": "Stage a students filter",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FilterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Admin"],
                "summary": "Clear students filters",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/students/filters/apply": {
            "post": {
                "tags": ["Admin"],
                "summary": "Apply staged students filters",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/students/page": {
            "put": {
                "tags": ["Admin"],
                "summary": "Change students page",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PageRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/sessions": {
            "get": {
                "tags": ["Admin"],
                "summary": "Sessions tab",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/sessions/filters": {
            "put": {
                "tags": ["Admin"],
                "summary": "Stage a sessions filter",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FilterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Admin"],
                "summary": "Clear sessions filters",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/sessions/filters/apply": {
            "post": {
                "tags": ["Admin"],
                "summary": "Apply staged sessions filters",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/sessions/page": {
            "put": {
                "tags": ["Admin"],
                "summary": "Change sessions page",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PageRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/leaderboard": {
            "get": {
                "tags": ["Leaderboard"],
                "summary": "Leaderboard tab",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/leaderboard/filters": {
            "put": {
                "tags": ["Leaderboard"],
                "summary": "Stage a leaderboard filter",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FilterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Leaderboard"],
                "summary": "Clear leaderboard filters",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/leaderboard/filters/apply": {
            "post": {
                "tags": ["Leaderboard"],
                "summary": "Apply staged leaderboard filters",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/leaderboard/page": {
            "put": {
                "tags": ["Leaderboard"],
                "summary": "Change leaderboard page",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PageRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/leaderboard/options": {
            "get": {
                "tags": ["Leaderboard"],
                "summary": "Leaderboard filter options",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/leaderboard/export": {
            "get": {
                "tags": ["Leaderboard"],
                "summary": "Export leaderboard",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"},
                    "403": {"description": "Export disabled", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/questions": {
            "post": {
                "tags": ["Questions"],
                "summary": "Create a question",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/QuestionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/questions/bulk": {
            "post": {
                "tags": ["Questions"],
                "summary": "Bulk upload questions from CSV",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "required": true, "type": "file"},
                    {"name": "industries", "in": "formData", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/questions/sample": {
            "get": {
                "tags": ["Questions"],
                "summary": "Download sample question CSV",
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/admin/questions/options": {
            "get": {
                "tags": ["Questions"],
                "summary": "Option sets for the upload forms",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/imports/students": {
            "post": {
                "tags": ["Imports"],
                "summary": "Register students from CSV",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/imports/students/sample": {
            "get": {
                "tags": ["Imports"],
                "summary": "Download sample student CSV",
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/admin/mapping": {
            "post": {
                "tags": ["Admin"],
                "summary": "Create program-role mapping",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/MappingRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/mapping/universities": {
            "get": {
                "tags": ["Admin"],
                "summary": "University options",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/mapping/programs": {
            "get": {
                "tags": ["Admin"],
                "summary": "Program options for a university",
                "parameters": [
                    {"name": "university", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/mapping/batches": {
            "get": {
                "tags": ["Admin"],
                "summary": "Batch options for a program",
                "parameters": [
                    {"name": "university", "in": "query", "required": true, "type": "string"},
                    {"name": "program", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["email", "password"]
        },
        "StartInterviewRequest": {
            "type": "object",
            "properties": {
                "job_role": {"type": "string"},
                "interview_type": {"type": "string"}
            },
            "required": ["job_role", "interview_type"]
        },
        "AnswerRequest": {
            "type": "object",
            "properties": {
                "question_id": {"type": "string"},
                "answer": {"type": "string"}
            },
            "required": ["question_id", "answer"]
        },
        "FilterRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "value": {"type": "string"}
            },
            "required": ["name"]
        },
        "TabRequest": {
            "type": "object",
            "properties": {
                "tab": {"type": "string"}
            },
            "required": ["tab"]
        },
        "PageRequest": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"}
            },
            "required": ["page"]
        },
        "QuestionRequest": {
            "type": "object",
            "properties": {
                "question": {"type": "string"},
                "interview_type": {"type": "string"},
                "difficulty": {"type": "string"},
                "question_type": {"type": "string"},
                "industries": {
                    "type": "array",
                    "items": {"type": "string"}
                }
            },
            "required": ["question", "interview_type", "difficulty", "question_type", "industries"]
        },
        "MappingRequest": {
            "type": "object",
            "properties": {
                "university": {"type": "string"},
                "program": {"type": "string"},
                "batch": {"type": "string"},
                "work_experience": {"type": "string"},
                "job_roles": {
                    "type": "array",
                    "items": {"type": "string"}
                }
            },
            "required": ["university", "program", "batch", "work_experience", "job_roles"]
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
