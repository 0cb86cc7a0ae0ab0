package handler

import (
    "errors"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/questionsdb/internal/model"
    "github.com/d60-Lab/questionsdb/internal/service"
    "github.com/d60-Lab/questionsdb/pkg/response"
)

// GetReply 查询回复
// @Summary 按 ID 查询回复
// @Tags 回复
// @Param id path int true "回复ID"
// @Success 200 {object} response.Response{data=model.Reply}
// @Failure 404 {object} response.Response
// @Router /api/v1/replies/{id} [get]
func (h *Handler) GetReply(c *gin.Context) {
    id, ok := pathID(c, "id")
    if !ok {
        return
    }
    r, err := h.replies.FindByID(c.Request.Context(), id)
    one(c, "reply", r, err)
}

func (h *Handler) withReply(c *gin.Context) (*model.Reply, bool) {
    id, ok := pathID(c, "id")
    if !ok {
        return nil, false
    }
    r, err := h.replies.FindByID(c.Request.Context(), id)
    if err != nil {
        fail(c, "reply", err)
        return nil, false
    }
    if r == nil {
        response.NotFound(c, "reply not found")
        return nil, false
    }
    return r, true
}

// ReplyAuthor 回复作者
// @Summary 回复作者
// @Tags 回复
// @Param id path int true "回复ID"
// @Success 200 {object} response.Response{data=model.User}
// @Router /api/v1/replies/{id}/author [get]
func (h *Handler) ReplyAuthor(c *gin.Context) {
    r, ok := h.withReply(c)
    if !ok {
        return
    }
    u, err := h.replies.Author(c.Request.Context(), r)
    one(c, "author", u, err)
}

// ReplyQuestion 回复所属问题
// @Summary 回复所属问题
// @Tags 回复
// @Param id path int true "回复ID"
// @Success 200 {object} response.Response{data=model.Question}
// @Router /api/v1/replies/{id}/question [get]
func (h *Handler) ReplyQuestion(c *gin.Context) {
    r, ok := h.withReply(c)
    if !ok {
        return
    }
    q, err := h.replies.Question(c.Request.Context(), r)
    one(c, "question", q, err)
}

// ReplyParent 父回复；顶层回复返回 404
// @Summary 父回复
// @Tags 回复
// @Param id path int true "回复ID"
// @Success 200 {object} response.Response{data=model.Reply}
// @Failure 404 {object} response.Response
// @Router /api/v1/replies/{id}/parent [get]
func (h *Handler) ReplyParent(c *gin.Context) {
    r, ok := h.withReply(c)
    if !ok {
        return
    }
    p, err := h.replies.ParentReply(c.Request.Context(), r)
    one(c, "parent reply", p, err)
}

// ReplyChildren 直接子回复
// @Summary 直接子回复
// @Tags 回复
// @Param id path int true "回复ID"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/replies/{id}/children [get]
func (h *Handler) ReplyChildren(c *gin.Context) {
    r, ok := h.withReply(c)
    if !ok {
        return
    }
    rs, err := h.replies.ChildReplies(c.Request.Context(), r)
    many(c, "child replies", rs, err)
}

// ReplyAncestors 祖先链，近的在前
// @Summary 祖先链
// @Tags 回复
// @Param id path int true "回复ID"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/replies/{id}/ancestors [get]
func (h *Handler) ReplyAncestors(c *gin.Context) {
    r, ok := h.withReply(c)
    if !ok {
        return
    }
    rs, err := h.replies.Ancestors(c.Request.Context(), r)
    tree(c, "reply ancestors", rs, err)
}

// ReplyDescendants 全部后代（广度优先）
// @Summary 全部后代
// @Tags 回复
// @Param id path int true "回复ID"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/replies/{id}/descendants [get]
func (h *Handler) ReplyDescendants(c *gin.Context) {
    r, ok := h.withReply(c)
    if !ok {
        return
    }
    rs, err := h.replies.Descendants(c.Request.Context(), r)
    tree(c, "reply descendants", rs, err)
}

// tree answers a walk result; a cycle still returns the replies reached before it.
func tree(c *gin.Context, what string, rs []*model.Reply, err error) {
    if errors.Is(err, service.ErrReplyCycle) {
        response.Success(c, gin.H{"list": rs, "total": len(rs), "truncated": true})
        return
    }
    many(c, what, rs, err)
}
