package http

import (
	"strings"
	"time"

	"github.com/MikeRez0/techxchange/internal/core/domain"
	"github.com/MikeRez0/techxchange/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const authHeaderKey = "Authorization"
const authType = "Bearer"
const userPayloadKey = "user_payload"

func authCheck(tokenService port.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.Request.Header.Get(authHeaderKey)
		if len(header) == 0 {
			abort(ctx, domain.ErrEmptyAuthorizationHeader)
			return
		}

		words := strings.Fields(header)
		if len(words) != 2 {
			abort(ctx, domain.ErrInvalidAuthorizationHeader)
			return
		}
		if words[0] != authType {
			abort(ctx, domain.ErrInvalidAuthorizationType)
			return
		}
		token := words[1]
		payload, err := tokenService.VerifyToken(token)
		if err != nil {
			if err != domain.ErrExpiredToken {
				err = domain.ErrInvalidToken
			}
			abort(ctx, err)
			return
		}

		ctx.Set(userPayloadKey, payload)

		ctx.Next()
	}
}

// requireRole must run after authCheck.
func requireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !getAuthPayload(ctx).Identity().HasRole(roles...) {
			abort(ctx, domain.ErrForbidden)
			return
		}
		ctx.Next()
	}
}

func getAuthPayload(ctx *gin.Context) *port.TokenPayload {
	return ctx.MustGet(userPayloadKey).(*port.TokenPayload)
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		log.Info("request",
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", ctx.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
