package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/printfood/storefront/internal/session"
	"github.com/printfood/storefront/internal/upstream"
)

// Handler delegates authentication operations to the auth service.
type Handler struct {
	service        *Service
	googleLoginURL string
}

func NewHandler(s *Service, googleLoginURL string) *Handler {
	return &Handler{service: s, googleLoginURL: googleLoginURL}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/user/login", h.login)
	app.Post("/api/v1/user/register", h.register)
	app.Get("/api/v1/user/auth/google/login", h.googleLogin)
	app.Get("/api/v1/auth/callback", h.authCallback)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/user/logout", h.logout)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Email == "" || payload.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "email and password required"})
	}

	token, err := h.service.Login(c.UserContext(), payload.Email, payload.Password)
	if err != nil {
		switch err {
		case ErrInvalidCredentials:
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid email or password"})
		default:
			return upstream.RespondError(c, err)
		}
	}

	return c.JSON(fiber.Map{
		"message":    "Login successful",
		"token":      token,
		"isLoggedIn": true,
	})
}

type registerRequest struct {
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

func (h *Handler) register(c *fiber.Ctx) error {
	payload := new(registerRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Email == "" || payload.Password == "" || payload.FullName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing required fields"})
	}

	created, err := h.service.Register(c.UserContext(), Registration{
		FullName: payload.FullName,
		Email:    payload.Email,
		Password: payload.Password,
		Phone:    payload.Phone,
	})
	if err != nil {
		switch err {
		case ErrEmailExists:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Email already exists"})
		default:
			return upstream.RespondError(c, err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// googleLogin hands the browser to the upstream OAuth entry point; the
// provider redirects back to authCallback with the upstream token.
func (h *Handler) googleLogin(c *fiber.Ctx) error {
	return c.Redirect(h.googleLoginURL, fiber.StatusFound)
}

func (h *Handler) authCallback(c *fiber.Ctx) error {
	accessToken := c.Query("access_token")
	if accessToken == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message":  "Login failed! No token received.",
			"redirect": "/login",
		})
	}

	token, err := h.service.Adopt(c.UserContext(), accessToken)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message":    "Login successful!",
		"token":      token,
		"isLoggedIn": true,
		"redirect":   "/",
	})
}

func (h *Handler) logout(c *fiber.Ctx) error {
	sid := session.SID(c)
	if sid == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	if err := h.service.Logout(c.UserContext(), sid); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Logged out", "isLoggedIn": false})
}
