package util

import "github.com/gin-gonic/gin"

const UsernameKey = "x-user-name"

func SetJWTContext(c *gin.Context, msg JWTMessage) {
	c.Set(UsernameKey, msg.Username)
}

func GetToken(ctx *gin.Context) JWTMessage {
	var msg JWTMessage
	msg.Username = ctx.GetString(UsernameKey)
	return msg
}
