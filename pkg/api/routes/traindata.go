package routes

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"
	"github.com/travigo/bridgetimes/pkg/crossing"
)

type BoardSource interface {
	ComputeCrossings(ctx context.Context) ([]crossing.Record, error)
}

func TrainDataRouter(router fiber.Router, board BoardSource) {
	router.Get("/train-data", func(c *fiber.Ctx) error {
		return getTrainData(c, board)
	})
}

func getTrainData(c *fiber.Ctx, board BoardSource) error {
	records, err := board.ComputeCrossings(c.UserContext())
	if err != nil {
		return sendBoardError(c, err)
	}

	if len(records) == 0 {
		return c.JSON([]interface{}{})
	}

	groups := []string{"basic"}
	if c.QueryBool("detailed") {
		groups = []string{"basic", "detailed"}
	}

	recordsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, records)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce Records",
		})
	}

	return c.JSON(recordsReduced)
}

func sendBoardError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if crossing.IsUpstreamFailure(err) {
		status = fiber.StatusBadGateway
	} else if errors.Is(err, context.DeadlineExceeded) {
		status = fiber.StatusGatewayTimeout
	}

	log.Error().Err(err).Int("status", status).Msg("Could not compute crossings")

	c.SendStatus(status)
	return c.JSON(fiber.Map{
		"error": err.Error(),
	})
}
