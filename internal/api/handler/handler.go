package handler

import (
    "errors"
    "strconv"

    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "github.com/d60-Lab/questionsdb/internal/service"
    "github.com/d60-Lab/questionsdb/pkg/logger"
    "github.com/d60-Lab/questionsdb/pkg/response"
)

// Handler 只读 HTTP 接口
type Handler struct {
    users     service.UserService
    questions service.QuestionService
    replies   service.ReplyService
    svc       *service.Services
}

func New(svc *service.Services) *Handler {
    return &Handler{users: svc.Users, questions: svc.Questions, replies: svc.Replies, svc: svc}
}

var errBadID = errors.New("id must be a positive integer")

// pathID parses a positive int64 path parameter, answering 400 otherwise.
func pathID(c *gin.Context, name string) (int64, bool) {
    id, err := strconv.ParseInt(c.Param(name), 10, 64)
    if err != nil || id <= 0 {
        response.BadRequest(c, errBadID.Error())
        return 0, false
    }
    return id, true
}

// fail logs a store error and answers 500.
func fail(c *gin.Context, op string, err error) {
    logger.Error(op+" failed", zap.Error(err), zap.String("path", c.FullPath()), zap.String("request_id", c.GetString("request_id")))
    response.InternalError(c, err)
}

// one answers with v, or 404 when v is nil.
func one[T any](c *gin.Context, what string, v *T, err error) {
    if err != nil {
        fail(c, what, err)
        return
    }
    if v == nil {
        response.NotFound(c, what+" not found")
        return
    }
    response.Success(c, v)
}

// many answers with a list payload.
func many[T any](c *gin.Context, what string, vs []*T, err error) {
    if err != nil {
        fail(c, what, err)
        return
    }
    response.Success(c, gin.H{"list": vs, "total": len(vs)})
}
