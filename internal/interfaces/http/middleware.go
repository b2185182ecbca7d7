package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/finanzas-reventa/internal/application/dto"
	"github.com/jhoicas/finanzas-reventa/pkg/logger"
)

// Locals keys.
const (
	LocalUserID = "user_id"
	localError  = "handler_error"
)

// maxUserIDLen límite del identificador de usuario en la ruta.
const maxUserIDLen = 128

// UserScope toma el :userID de la ruta y lo deja en c.Locals. No autentica: solo delimita los datos.
func UserScope() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := strings.TrimSpace(utils.CopyString(c.Params("userID")))
		if userID == "" || len(userID) > maxUserIDLen {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_USER", Message: "userID inválido"})
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// GetUserID devuelve el usuario del contexto (después de UserScope).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// RequestLogger registra método, ruta, estado y latencia de cada petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		ev := log.Info()
		switch {
		case err != nil || status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		if err != nil {
			ev = ev.Err(err)
		} else if handlerErr, ok := c.Locals(localError).(error); ok {
			ev = ev.Err(handlerErr)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("user_id", GetUserID(c)).
			Msg("request")
		return err
	}
}
