package api

import (
	"errors"

	"timefilter-core/internal/domain/entity"
	"timefilter-core/internal/logger"
	"timefilter-core/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type FilterHandler struct {
	resolver *usecase.Resolver
	searcher *usecase.Searcher // nil when no index is configured
	validate *validator.Validate
}

func NewFilterHandler(resolver *usecase.Resolver, searcher *usecase.Searcher) *FilterHandler {
	return &FilterHandler{resolver: resolver, searcher: searcher, validate: validator.New()}
}

// HandleResolve never fails because of the filter model; a bad answer just means no filter.
func (h *FilterHandler) HandleResolve(c *fiber.Ctx) error {
	var req entity.FilterRequest
	if err := h.bind(c, &req); err != nil {
		return badRequest(c, err)
	}

	decision := h.resolver.Resolve(c.UserContext(), req)
	return c.Status(fiber.StatusOK).JSON(decision)
}

func (h *FilterHandler) HandleSearch(c *fiber.Ctx) error {
	var req entity.SearchRequest
	if err := h.bind(c, &req); err != nil {
		return badRequest(c, err)
	}

	res, err := h.searcher.Search(c.UserContext(), req)
	if err != nil {
		return internalError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *FilterHandler) HandleIndex(c *fiber.Ctx) error {
	var doc entity.Document
	if err := h.bind(c, &doc); err != nil {
		return badRequest(c, err)
	}

	if err := h.searcher.Index(c.UserContext(), doc); err != nil {
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusAccepted)
}

func (h *FilterHandler) bind(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return err
	}
	return h.validate.Struct(dst)
}

func badRequest(c *fiber.Ctx, err error) error {
	logger.C(c.UserContext()).Debug().Err(err).Msg("rejected request")
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": entity.ErrInvalidRequest.Error(), "detail": err.Error()})
}

func internalError(c *fiber.Ctx, err error) error {
	logger.C(c.UserContext()).Error().Err(err).Msg("request failed")
	if errors.Is(err, entity.ErrIndexUnavailable) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": entity.ErrIndexUnavailable.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}
