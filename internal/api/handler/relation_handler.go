package handler

import (
    "strconv"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/questionsdb/pkg/response"
)

const (
    defaultRankSize = 10
    maxRankSize     = 100
)

// rankSize reads ?n=, defaulting to 10 and capping at 100. n=0 is allowed and yields an empty list.
func rankSize(c *gin.Context) (int, bool) {
    n, err := strconv.Atoi(c.DefaultQuery("n", strconv.Itoa(defaultRankSize)))
    if err != nil || n < 0 {
        response.BadRequest(c, "n must be a non-negative integer")
        return 0, false
    }
    if n > maxRankSize {
        n = maxRankSize
    }
    return n, true
}

// MostFollowed 关注数排行
// @Summary 关注数最多的问题
// @Tags 排行
// @Param n query int false "数量" default(10)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Failure 400 {object} response.Response
// @Router /api/v1/rankings/most-followed [get]
func (h *Handler) MostFollowed(c *gin.Context) {
    n, ok := rankSize(c)
    if !ok {
        return
    }
    qs, err := h.questions.MostFollowed(c.Request.Context(), n)
    many(c, "most followed", qs, err)
}

// MostLiked 点赞数排行
// @Summary 点赞数最多的问题
// @Tags 排行
// @Param n query int false "数量" default(10)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Failure 400 {object} response.Response
// @Router /api/v1/rankings/most-liked [get]
func (h *Handler) MostLiked(c *gin.Context) {
    n, ok := rankSize(c)
    if !ok {
        return
    }
    qs, err := h.questions.MostLiked(c.Request.Context(), n)
    many(c, "most liked", qs, err)
}

// GetFollow 查询关注关系
// @Summary 按 ID 查询关注关系
// @Tags 关系链
// @Param id path int true "关注ID"
// @Success 200 {object} response.Response{data=model.QuestionFollow}
// @Failure 404 {object} response.Response
// @Router /api/v1/follows/{id} [get]
func (h *Handler) GetFollow(c *gin.Context) {
    id, ok := pathID(c, "id")
    if !ok {
        return
    }
    f, err := h.svc.Follows.FindByID(c.Request.Context(), id)
    one(c, "follow", f, err)
}

// GetLike 查询点赞
// @Summary 按 ID 查询点赞
// @Tags 关系链
// @Param id path int true "点赞ID"
// @Success 200 {object} response.Response{data=model.QuestionLike}
// @Failure 404 {object} response.Response
// @Router /api/v1/likes/{id} [get]
func (h *Handler) GetLike(c *gin.Context) {
    id, ok := pathID(c, "id")
    if !ok {
        return
    }
    l, err := h.svc.Likes.FindByID(c.Request.Context(), id)
    one(c, "like", l, err)
}
