package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message 仅含 message 字段的响应，错误路径统一走这里
func Message(c *gin.Context, httpCode int, msg string) {
	c.JSON(httpCode, gin.H{"message": msg})
}

// Records 列表响应，空结果返回空数组而不是 404
func Records(c *gin.Context, records interface{}) {
	c.JSON(http.StatusOK, gin.H{"records": records})
}

// OK 200 返回实体本身
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 返回实体本身
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// BadRequest 400 参数缺失或格式错误
func BadRequest(c *gin.Context, msg string) {
	Message(c, http.StatusBadRequest, msg)
}

// Unauthorized 401 未认证
func Unauthorized(c *gin.Context) {
	Message(c, http.StatusUnauthorized, MsgUnauthorized)
}

// NotFound 404 资源不存在
func NotFound(c *gin.Context, msg string) {
	Message(c, http.StatusNotFound, msg)
}

// Unavailable 503 下游写入失败
func Unavailable(c *gin.Context, msg string) {
	Message(c, http.StatusServiceUnavailable, msg)
}

// ServerError 500 未预期错误，对外只给通用文案
func ServerError(c *gin.Context) {
	Message(c, http.StatusInternalServerError, MsgServerError)
}
