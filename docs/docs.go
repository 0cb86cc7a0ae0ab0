// Package docs registers the OpenAPI document served at /swagger.
// Regenerate with `swag init -g cmd/server/main.go` after changing handler annotations.
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
        "/api/v1/users": {"get": {"tags": ["用户"], "summary": "按姓名查询用户（姓名不唯一，返回列表）", "parameters": [{"type": "string", "name": "fname", "in": "query", "required": true}, {"type": "string", "name": "lname", "in": "query", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/users/{id}": {"get": {"tags": ["用户"], "summary": "按 ID 查询用户", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.User"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/users/{id}/questions": {"get": {"tags": ["用户"], "summary": "用户提出的问题", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/users/{id}/replies": {"get": {"tags": ["用户"], "summary": "用户的回复", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/users/{id}/followed-questions": {"get": {"tags": ["用户"], "summary": "用户关注的问题", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/users/{id}/liked-questions": {"get": {"tags": ["用户"], "summary": "用户点赞的问题", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/questions/{id}": {"get": {"tags": ["问题"], "summary": "按 ID 查询问题", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Question"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/questions/{id}/author": {"get": {"tags": ["问题"], "summary": "问题作者", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.User"}}}}},
        "/api/v1/questions/{id}/replies": {"get": {"tags": ["问题"], "summary": "问题的全部回复", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/questions/{id}/followers": {"get": {"tags": ["问题"], "summary": "关注该问题的用户", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/questions/{id}/likers": {"get": {"tags": ["问题"], "summary": "点赞该问题的用户", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/questions/{id}/likes/count": {"get": {"tags": ["问题"], "summary": "问题点赞数", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/rankings/most-followed": {"get": {"tags": ["排行"], "summary": "关注数最多的问题", "parameters": [{"$ref": "#/parameters/n"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/rankings/most-liked": {"get": {"tags": ["排行"], "summary": "点赞数最多的问题", "parameters": [{"$ref": "#/parameters/n"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/replies/{id}": {"get": {"tags": ["回复"], "summary": "按 ID 查询回复", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Reply"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/replies/{id}/author": {"get": {"tags": ["回复"], "summary": "回复作者", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.User"}}}}},
        "/api/v1/replies/{id}/question": {"get": {"tags": ["回复"], "summary": "回复所属问题", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Question"}}}}},
        "/api/v1/replies/{id}/parent": {"get": {"tags": ["回复"], "summary": "父回复", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Reply"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/replies/{id}/children": {"get": {"tags": ["回复"], "summary": "直接子回复", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/replies/{id}/ancestors": {"get": {"tags": ["回复"], "summary": "祖先链", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/replies/{id}/descendants": {"get": {"tags": ["回复"], "summary": "全部后代", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/follows/{id}": {"get": {"tags": ["关系链"], "summary": "按 ID 查询关注关系", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.QuestionFollow"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/likes/{id}": {"get": {"tags": ["关系链"], "summary": "按 ID 查询点赞", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.QuestionLike"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/health": {"get": {"tags": ["系统"], "summary": "健康检查", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}}
    },
    "parameters": {
        "id": {"type": "integer", "name": "id", "in": "path", "required": true},
        "n": {"type": "integer", "default": 10, "name": "n", "in": "query"}
    },
    "definitions": {
        "model.User": {"type": "object", "properties": {"id": {"type": "integer"}, "fname": {"type": "string"}, "lname": {"type": "string"}}},
        "model.Question": {"type": "object", "properties": {"id": {"type": "integer"}, "title": {"type": "string"}, "body": {"type": "string"}, "author_id": {"type": "integer"}}},
        "model.QuestionFollow": {"type": "object", "properties": {"id": {"type": "integer"}, "user_id": {"type": "integer"}, "question_id": {"type": "integer"}}},
        "model.QuestionLike": {"type": "object", "properties": {"id": {"type": "integer"}, "question_id": {"type": "integer"}, "user_id": {"type": "integer"}}},
        "model.Reply": {"type": "object", "properties": {"id": {"type": "integer"}, "body": {"type": "string"}, "question_id": {"type": "integer"}, "parent_id": {"type": "integer", "x-nullable": true}, "user_id": {"type": "integer"}}},
        "response.Response": {"type": "object", "properties": {"code": {"type": "integer"}, "message": {"type": "string"}, "data": {}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Questions API",
	Description:      "Read-only access to users, questions, replies, follows and likes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
