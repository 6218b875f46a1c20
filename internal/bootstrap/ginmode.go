package bootstrap

import "github.com/gin-gonic/gin"

// GinMode maps APP_ENV to a gin mode. Unknown environments run in debug mode.
func GinMode(env string) string {
	switch env {
	case "production", "staging":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func SetGinMode(env string) {
	gin.SetMode(GinMode(env))
}
