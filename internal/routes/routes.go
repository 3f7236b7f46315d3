package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"blogserver/internal/handlers"
	"blogserver/internal/middleware"
	"blogserver/internal/repository"
)

type Deps struct {
	DB        *mongo.Database
	JWTSecret string
}

// Register wires every route group onto the app. Handlers receive explicitly
// constructed repositories; nothing here reaches for package-level state.
func Register(app *fiber.App, d Deps) {
	users := repository.NewUserRepository(d.DB)
	posts := repository.NewPostRepository(d.DB)
	comments := repository.NewCommentRepository(d.DB)

	auth := &handlers.AuthHandler{Users: users, JWTSecret: d.JWTSecret}
	user := &handlers.UserHandler{Users: users}
	post := &handlers.PostHandler{Posts: posts}
	comment := &handlers.CommentHandler{Comments: comments, Posts: posts}

	AuthRoutes(app, auth)
	UserRoutes(app, user)
	PostRoutes(app, post)
	CommentRoutes(app, comment)
}

func AuthRoutes(app *fiber.App, h *handlers.AuthHandler) {
	app.Post("/register", h.Register)
	app.Post("/login", h.Login)
	app.Post("/auth", h.CredentialRegister)
	app.Post("/logout", middleware.RequireAuth(), h.Logout)
}

func UserRoutes(app *fiber.App, h *handlers.UserHandler) {
	app.Get("/user/:id", h.Get)
	app.Put("/user/password", middleware.RequireAuth(), h.UpdatePassword)
	app.Put("/user/role", middleware.RequireAuth(), h.UpdateRole)
	app.Put("/user", middleware.RequireAuth(), h.Update)
	app.Delete("/user", middleware.RequireAuth(), h.Delete)
}

func PostRoutes(app *fiber.App, h *handlers.PostHandler) {
	app.Get("/posts", h.List)
	app.Get("/post/:id", h.Get)
	app.Post("/post", middleware.RequireAuth(), h.Create)
	app.Put("/post/:id", middleware.RequireAuth(), h.Update)
	app.Delete("/post/:id", middleware.RequireAuth(), h.Delete)
	app.Post("/post/:id/like", middleware.RequireAuth(), h.Like)
}

func CommentRoutes(app *fiber.App, h *handlers.CommentHandler) {
	app.Get("/post/:postId/comments", h.List)
	app.Post("/post/:postId/comment", middleware.RequireAuth(), h.Create)
	app.Put("/comment/:commentId", middleware.RequireAuth(), h.Update)
	app.Delete("/comment/:commentId", middleware.RequireAuth(), h.Delete)
	app.Post("/comment/:commentId/like", middleware.RequireAuth(), h.Like)
}
