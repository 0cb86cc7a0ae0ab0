package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/questionsdb/internal/model"
    "github.com/d60-Lab/questionsdb/pkg/response"
)

type findByNameQuery struct {
    FName string `form:"fname" binding:"required"`
    LName string `form:"lname" binding:"required"`
}

// GetUser 查询用户
// @Summary 按 ID 查询用户
// @Tags 用户
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=model.User}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/users/{id} [get]
func (h *Handler) GetUser(c *gin.Context) {
    id, ok := pathID(c, "id")
    if !ok {
        return
    }
    u, err := h.users.FindByID(c.Request.Context(), id)
    one(c, "user", u, err)
}

// FindUsersByName 按姓名查询
// @Summary 按姓名查询用户（姓名不唯一，返回列表）
// @Tags 用户
// @Produce json
// @Param fname query string true "名"
// @Param lname query string true "姓"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Failure 400 {object} response.Response
// @Router /api/v1/users [get]
func (h *Handler) FindUsersByName(c *gin.Context) {
    var q findByNameQuery
    if err := c.ShouldBindQuery(&q); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    users, err := h.users.FindByName(c.Request.Context(), q.FName, q.LName)
    many(c, "users by name", users, err)
}

// withUser loads the path user, answering 404 when it does not exist.
func (h *Handler) withUser(c *gin.Context) (*model.User, bool) {
    id, ok := pathID(c, "id")
    if !ok {
        return nil, false
    }
    u, err := h.users.FindByID(c.Request.Context(), id)
    if err != nil {
        fail(c, "user", err)
        return nil, false
    }
    if u == nil {
        response.NotFound(c, "user not found")
        return nil, false
    }
    return u, true
}

// AuthoredQuestions 用户提出的问题
// @Summary 用户提出的问题
// @Tags 用户
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/users/{id}/questions [get]
func (h *Handler) AuthoredQuestions(c *gin.Context) {
    u, ok := h.withUser(c)
    if !ok {
        return
    }
    qs, err := h.users.AuthoredQuestions(c.Request.Context(), u)
    many(c, "authored questions", qs, err)
}

// AuthoredReplies 用户的回复
// @Summary 用户的回复
// @Tags 用户
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/users/{id}/replies [get]
func (h *Handler) AuthoredReplies(c *gin.Context) {
    u, ok := h.withUser(c)
    if !ok {
        return
    }
    rs, err := h.users.AuthoredReplies(c.Request.Context(), u)
    many(c, "authored replies", rs, err)
}

// FollowedQuestions 用户关注的问题
// @Summary 用户关注的问题
// @Tags 用户
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/users/{id}/followed-questions [get]
func (h *Handler) FollowedQuestions(c *gin.Context) {
    u, ok := h.withUser(c)
    if !ok {
        return
    }
    qs, err := h.users.FollowedQuestions(c.Request.Context(), u)
    many(c, "followed questions", qs, err)
}

// LikedQuestions 用户点赞的问题
// @Summary 用户点赞的问题
// @Tags 用户
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/users/{id}/liked-questions [get]
func (h *Handler) LikedQuestions(c *gin.Context) {
    u, ok := h.withUser(c)
    if !ok {
        return
    }
    qs, err := h.users.LikedQuestions(c.Request.Context(), u)
    many(c, "liked questions", qs, err)
}
