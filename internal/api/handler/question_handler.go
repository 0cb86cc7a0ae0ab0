package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/questionsdb/internal/model"
    "github.com/d60-Lab/questionsdb/pkg/response"
)

// GetQuestion 查询问题
// @Summary 按 ID 查询问题
// @Tags 问题
// @Produce json
// @Param id path int true "问题ID"
// @Success 200 {object} response.Response{data=model.Question}
// @Failure 404 {object} response.Response
// @Router /api/v1/questions/{id} [get]
func (h *Handler) GetQuestion(c *gin.Context) {
    id, ok := pathID(c, "id")
    if !ok {
        return
    }
    q, err := h.questions.FindByID(c.Request.Context(), id)
    one(c, "question", q, err)
}

func (h *Handler) withQuestion(c *gin.Context) (*model.Question, bool) {
    id, ok := pathID(c, "id")
    if !ok {
        return nil, false
    }
    q, err := h.questions.FindByID(c.Request.Context(), id)
    if err != nil {
        fail(c, "question", err)
        return nil, false
    }
    if q == nil {
        response.NotFound(c, "question not found")
        return nil, false
    }
    return q, true
}

// QuestionAuthor 问题作者
// @Summary 问题作者
// @Tags 问题
// @Param id path int true "问题ID"
// @Success 200 {object} response.Response{data=model.User}
// @Router /api/v1/questions/{id}/author [get]
func (h *Handler) QuestionAuthor(c *gin.Context) {
    q, ok := h.withQuestion(c)
    if !ok {
        return
    }
    u, err := h.questions.Author(c.Request.Context(), q)
    one(c, "author", u, err)
}

// QuestionReplies 问题的全部回复
// @Summary 问题的全部回复
// @Tags 问题
// @Param id path int true "问题ID"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/questions/{id}/replies [get]
func (h *Handler) QuestionReplies(c *gin.Context) {
    q, ok := h.withQuestion(c)
    if !ok {
        return
    }
    rs, err := h.questions.Replies(c.Request.Context(), q)
    many(c, "question replies", rs, err)
}

// QuestionFollowers 关注者
// @Summary 关注该问题的用户
// @Tags 问题
// @Param id path int true "问题ID"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/questions/{id}/followers [get]
func (h *Handler) QuestionFollowers(c *gin.Context) {
    q, ok := h.withQuestion(c)
    if !ok {
        return
    }
    us, err := h.questions.Followers(c.Request.Context(), q)
    many(c, "question followers", us, err)
}

// QuestionLikers 点赞者
// @Summary 点赞该问题的用户
// @Tags 问题
// @Param id path int true "问题ID"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/questions/{id}/likers [get]
func (h *Handler) QuestionLikers(c *gin.Context) {
    q, ok := h.withQuestion(c)
    if !ok {
        return
    }
    us, err := h.questions.Likers(c.Request.Context(), q)
    many(c, "question likers", us, err)
}

// QuestionLikeCount 点赞数
// @Summary 问题点赞数
// @Tags 问题
// @Param id path int true "问题ID"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/questions/{id}/likes/count [get]
func (h *Handler) QuestionLikeCount(c *gin.Context) {
    q, ok := h.withQuestion(c)
    if !ok {
        return
    }
    n, err := h.questions.NumLikes(c.Request.Context(), q)
    if err != nil {
        fail(c, "question like count", err)
        return
    }
    response.Success(c, gin.H{"question_id": q.ID, "count": n})
}
