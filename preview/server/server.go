package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/pixfab/skinforge"
	"github.com/pixfab/skinforge/preview"
	"github.com/pixfab/skinforge/suggest"
	"github.com/pixfab/skinforge/themes"
)

var upgrader = websocket.Upgrader{
	HandshakeTimeout: 5 * time.Second,
}

type variantInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "9777"
	}

	reg := themes.DefaultRegistry()
	mgr := preview.NewManager(reg)

	e := echo.New()

	e.Use(middleware.Logger())

	api := e.Group("/api")

	api.GET("/variants", func(c echo.Context) error {
		var out []variantInfo
		for _, id := range reg.IDs() {
			t, err := reg.Lookup(id)
			if err != nil {
				return err
			}
			out = append(out, variantInfo{
				ID:          id,
				Name:        t.Name(),
				Description: t.Description(),
			})
		}

		return c.JSON(http.StatusOK, out)
	})

	api.POST("/skin/:variant", func(c echo.Context) error {
		var hexPal skinforge.HexPalette
		if err := c.Bind(&hexPal); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		scale, _ := strconv.Atoi(c.QueryParam("scale"))

		frame, err := mgr.Render(preview.Request{
			Variant: c.Param("variant"),
			Palette: hexPal,
			Scale:   scale,
		})
		if err != nil {
			return echo.NewHTTPError(statusFor(err), err.Error())
		}

		return c.Blob(http.StatusOK, "image/png", frame)
	})

	api.GET("/suggest", func(c echo.Context) error {
		return c.JSON(http.StatusOK, suggest.For(c.QueryParam("q")))
	})

	api.GET("/live", func(c echo.Context) error {
		ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			return err
		}

		mgr.HandleConn(ws)

		return nil
	})

	log.Fatal(e.Start(":" + port))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, skinforge.ErrUnknownVariant):
		return http.StatusNotFound
	case errors.Is(err, skinforge.ErrInvalidColor):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
