package emojifyHandler

import (
	"ProjectEmojify/internal/api/emojify"
	contextPkg "ProjectEmojify/pkg/context"
	"ProjectEmojify/pkg/handlerUtil"
	"ProjectEmojify/pkg/log"
	"github.com/gofiber/fiber/v2"
)

func (h *EmojifyHandler) Emojify(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c := contextPkg.FromFiberCtx(ctx)

	errHandler := handlerUtil.New(h.log)

	req := emojify.EmojifyRequest{
		ObjectName: ctx.Query("objectName"),
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	h.log.WithFields(log.Fields{
		"request_id":  requestID,
		"path":        ctx.Path(),
		"object_name": req.ObjectName,
	}).Debug("Processing emojify request")

	result, err := h.emojifyService.Emojify(c, req.ObjectName)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "emojify")
	}

	h.log.WithFields(log.Fields{
		"request_id":  requestID,
		"path":        ctx.Path(),
		"object_path": result.ObjectPath,
	}).Info("Emojify successful")

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, emojify.EmojifyResponse{
		ObjectPath:   result.ObjectPath,
		EmojifiedURL: result.EmojifiedURL,
		StatusCode:   fiber.StatusOK,
	})
}
