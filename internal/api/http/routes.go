package httpapi

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/cityweather/internal/favorites"
	"github.com/i474232898/cityweather/internal/weather"
)

var validate = validator.New()

// ownerHeader carries the caller identity resolved by the auth layer in front
// of this service. The core receives it as an explicit parameter and never
// infers it.
const ownerHeader = "X-User-ID"

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, svc *weather.Service, favs favorites.Store) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather", func(c *fiber.Ctx) error {
		city := strings.TrimSpace(c.Query("city"))
		if city == "" {
			return newError(fiber.StatusBadRequest, KindValidation, "city query parameter is required")
		}

		snapshot, err := svc.Lookup(c.Context(), city)
		if err != nil {
			if errors.Is(err, weather.ErrNotFound) {
				return newError(fiber.StatusNotFound, KindNotFound, "city not found")
			}
			if errors.Is(err, weather.ErrUnavailable) {
				return newError(fiber.StatusBadGateway, KindUpstream, "weather data unavailable")
			}
			return newError(fiber.StatusInternalServerError, KindUpstream, "failed to fetch weather data")
		}

		return c.JSON(snapshot)
	})

	fav := v1.Group("/favorites", requireOwner)

	fav.Get("/", func(c *fiber.Ctx) error {
		list, err := favs.List(c.Context(), ownerID(c))
		if err != nil {
			return newError(fiber.StatusInternalServerError, KindPersistence, "failed to list favorites")
		}
		return c.JSON(list)
	})

	fav.Post("/", func(c *fiber.Ctx) error {
		var req addFavoriteRequest
		if err := c.BodyParser(&req); err != nil {
			return newError(fiber.StatusBadRequest, KindValidation, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return newError(fiber.StatusBadRequest, KindValidation, err.Error())
		}

		f, err := favs.Add(c.Context(), ownerID(c), req.CityName, req.Country, req.Lat, req.Lon, req.Nickname)
		if err != nil {
			switch {
			case errors.Is(err, favorites.ErrDuplicate):
				return newError(fiber.StatusConflict, KindDuplicate, "location already saved")
			case errors.Is(err, favorites.ErrValidation):
				return newError(fiber.StatusBadRequest, KindValidation, err.Error())
			default:
				return newError(fiber.StatusInternalServerError, KindPersistence, "failed to save favorite")
			}
		}
		return c.Status(fiber.StatusCreated).JSON(f)
	})

	fav.Delete("/:id", func(c *fiber.Ctx) error {
		deleted, err := favs.Delete(c.Context(), ownerID(c), c.Params("id"))
		if err != nil {
			return newError(fiber.StatusInternalServerError, KindPersistence, "failed to delete favorite")
		}
		return c.JSON(fiber.Map{"deleted": deleted})
	})
}

// addFavoriteRequest is the body of POST /api/v1/favorites. Coordinates stay
// strings end-to-end; nickname is optional.
type addFavoriteRequest struct {
	CityName string `json:"cityName" validate:"required"`
	Country  string `json:"country" validate:"required"`
	Lat      string `json:"lat" validate:"required"`
	Lon      string `json:"lon" validate:"required"`
	Nickname string `json:"nickname"`
}

func requireOwner(c *fiber.Ctx) error {
	owner := strings.TrimSpace(c.Get(ownerHeader))
	if owner == "" {
		return newError(fiber.StatusUnauthorized, KindNotAuthenticated, "missing "+ownerHeader+" header")
	}
	c.Locals("ownerID", owner)
	return c.Next()
}

func ownerID(c *fiber.Ctx) string {
	owner, _ := c.Locals("ownerID").(string)
	return owner
}
