package middleware

import (
	"recipe-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware 管理员路由门卫，挂在/api/admin分组上
// 依赖AuthMiddleware先写入的is_staff标记，非员工账户一律403
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsStaff(c) {
			utils.Forbidden(c, "需要管理员权限")
			c.Abort()
			return
		}
		c.Next()
	}
}
