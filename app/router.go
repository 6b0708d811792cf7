// Package app wires the HTTP surface together: middleware chain, route
// table and the handler dependency bundle
package app

import (
	"fmt"
	"time"

	"squawker/backend/app/feed"
	"squawker/backend/app/relationship"
	"squawker/backend/app/reset"
	"squawker/backend/app/root"
	"squawker/backend/app/squawk"
	"squawker/backend/app/user"
	"squawker/backend/db"
	"squawker/backend/internal"
	"squawker/backend/pkg/middleware"
	"squawker/backend/pkg/security"

	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	gray       = "\x1b[90m"
	colorReset = "\x1b[0m"
)

func NewRouter() (*gin.Engine, error) {
	d := &internal.Deps{
		Hasher: security.NewHasher(),
	}

	database, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	d.DB = database

	makeLogger()

	router := gin.New()

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     viper.GetStringSlice("host.cors_origins"),
			AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v, ok := c.Get("userID"); ok {
					if id, ok := v.(uint); ok {
						fields = append(fields, zap.Uint("userID", id))
					}
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	jwt := middleware.NewJWTMiddleware(database)

	rateLimit := viper.GetInt("security.rate_limit")
	rateLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: rateLimit,
		Burst:             rateLimit * 2,
		CleanupInterval:   time.Second,
	})

	m := router.Group("/api")
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		m.HEAD("/heartbeat", root.Heartbeat)

		// HEAD /api/validate		-> Validates a JWT token
		m.HEAD("/validate", jwt, root.Validate)
	}

	u := m.Group("/users", middleware.BodySizeLimiter(1<<20))
	{
		// POST /api/users 		-> Registers a new account and signs it in
		u.POST("", rateLimiter, func(c *gin.Context) { user.UserRegister(c, d) })

		// POST /api/users/login 	-> Logs in a user and sets the JWT cookie
		u.POST("/login", rateLimiter, func(c *gin.Context) { user.UserLogin(c, d) })

		// POST /api/users/logout 	-> Clears the session cookies
		u.POST("/logout", user.UserLogout)

		// GET /api/users/:handle	-> Returns a public profile with counts
		u.GET("/:handle", func(c *gin.Context) { user.UserFetch(c, d) })

		// PATCH /api/users/:handle	-> Edits the caller's own profile
		u.PATCH("/:handle", jwt, func(c *gin.Context) { user.UserUpdate(c, d) })

		// DELETE /api/users/:handle 	-> Deletes an account (admin only)
		u.DELETE("/:handle", jwt, func(c *gin.Context) { user.UserDelete(c, d) })

		// GET /api/users/:handle/squawks	-> A user's own squawks, paged
		u.GET("/:handle/squawks", func(c *gin.Context) { user.UserSquawks(c, d) })

		// GET /api/users/:handle/followers	-> Who follows this user, paged
		u.GET("/:handle/followers", func(c *gin.Context) { user.UserFollowers(c, d) })

		// GET /api/users/:handle/following	-> Who this user follows, paged
		u.GET("/:handle/following", func(c *gin.Context) { user.UserFollowing(c, d) })
	}

	r := m.Group("/relationships", jwt)
	{
		// POST /api/relationships/:handle	-> Follow a user
		r.POST("/:handle", func(c *gin.Context) { relationship.Follow(c, d) })

		// DELETE /api/relationships/:handle	-> Unfollow a user
		r.DELETE("/:handle", func(c *gin.Context) { relationship.Unfollow(c, d) })

		// GET /api/relationships/:handle	-> Whether the caller follows a user
		r.GET("/:handle", func(c *gin.Context) { relationship.Status(c, d) })
	}

	s := m.Group("/squawks", middleware.BodySizeLimiter(16<<10))
	{
		// POST /api/squawks		-> Posts a new squawk
		s.POST("", jwt, func(c *gin.Context) { squawk.SquawkCreate(c, d) })

		// GET /api/squawks/:id		-> Returns a single squawk
		s.GET("/:id", func(c *gin.Context) { squawk.SquawkFetch(c, d) })

		// DELETE /api/squawks/:id	-> Deletes a squawk (author or admin)
		s.DELETE("/:id", jwt, func(c *gin.Context) { squawk.SquawkDelete(c, d) })
	}

	// GET /api/feed		-> The caller's aggregated home feed, paged
	m.GET("/feed", jwt, func(c *gin.Context) { feed.HomeFeed(c, d) })

	p := m.Group("/password_resets", middleware.BodySizeLimiter(16<<10))
	{
		// POST /api/password_resets		-> Requests a reset link by email
		p.POST("", rateLimiter, func(c *gin.Context) { reset.ResetRequest(c, d) })

		// POST /api/password_resets/confirm	-> Sets a new password with a valid token
		p.POST("/confirm", func(c *gin.Context) { reset.ResetConfirm(c, d) })
	}

	return router, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + colorReset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + colorReset)
	}

	cfg.DisableStacktrace = true

	if lvl, err := zapcore.ParseLevel(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}
