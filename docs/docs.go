// Package docs registers the OpenAPI document served at /swagger/*.
// It is kept by hand in swag's registration format; update it alongside
// the godoc annotations on the handlers.
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
        "/student/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new student",
                "parameters": [
                    {
                        "description": "Registration data",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.StudentSignupRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/errors.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.Response"}}
                }
            }
        },
        "/student/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login student",
                "parameters": [
                    {
                        "description": "Login credentials",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/errors.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.Response"}}
                }
            }
        },
        "/student/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Logout the current student",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/errors.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.Response"}}
                }
            }
        },
        "/teacher/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new teacher",
                "parameters": [
                    {
                        "description": "Registration data",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.TeacherSignupRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/errors.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.Response"}}
                }
            }
        },
        "/teacher/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login teacher",
                "parameters": [
                    {
                        "description": "Login credentials",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/errors.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.Response"}}
                }
            }
        },
        "/teacher/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Logout the current teacher",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/errors.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.Response"}}
                }
            }
        },
        "/student/profile/{studentID}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Get a student's profile",
                "parameters": [
                    {"type": "integer", "description": "Student ID", "name": "studentID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/errors.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.Response"}}
                }
            }
        },
        "/student/subjects/{standard}/{division}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "List the subjects offered to a class",
                "parameters": [
                    {"type": "string", "description": "Standard (1-12)", "name": "standard", "in": "path", "required": true},
                    {"type": "string", "description": "Division", "name": "division", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/errors.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.Response"}}
                }
            }
        },
        "/teacher/profile/{teacherID}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["teachers"],
                "summary": "Get a teacher's profile and subjects",
                "parameters": [
                    {"type": "integer", "description": "Teacher ID", "name": "teacherID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/errors.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.Response"}}
                }
            }
        },
        "/class/{standard}/{division}/students": {
            "get": {
                "produces": ["application/json"],
                "tags": ["classes"],
                "summary": "List the students of a class",
                "parameters": [
                    {"type": "string", "description": "Standard (1-12)", "name": "standard", "in": "path", "required": true},
                    {"type": "string", "description": "Division", "name": "division", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/errors.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.Response"}}
                }
            }
        },
        "/subject/{subjectId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["subjects"],
                "summary": "Get a subject with its class size",
                "parameters": [
                    {"type": "integer", "description": "Subject ID", "name": "subjectId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/errors.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.Response"}}
                }
            }
        }
    },
    "definitions": {
        "errors.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "errors.Response": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "data": {},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/errors.FieldError"}},
                "message": {"type": "string"},
                "stack": {"type": "string"},
                "success": {"type": "boolean"},
                "token": {"type": "string"}
            }
        },
        "handler.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.StudentSignupRequest": {
            "type": "object",
            "required": ["division", "email", "fullname", "mobile", "password", "rollnumber", "standard"],
            "properties": {
                "division": {"type": "string", "maxLength": 5, "minLength": 1},
                "email": {"type": "string", "maxLength": 255},
                "fullname": {"type": "string", "maxLength": 255, "minLength": 2},
                "mobile": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "rollnumber": {"type": "string", "maxLength": 20, "minLength": 1},
                "standard": {"type": "string", "enum": ["1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"]}
            }
        },
        "handler.TeacherSignupRequest": {
            "type": "object",
            "required": ["email", "fullname", "mobile", "password"],
            "properties": {
                "email": {"type": "string", "maxLength": 255},
                "fullname": {"type": "string", "maxLength": 255, "minLength": 2},
                "mobile": {"type": "string"},
                "password": {"type": "string", "minLength": 6}
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
	Host:             "localhost:3000",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "DeafSo Backend API",
	Description:      "Student and teacher authentication with class and subject directory lookups.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
