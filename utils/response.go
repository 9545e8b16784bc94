package utils

import (
	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

func JSONError(ctx iris.Context, status int, code, message string) {
	ctx.StatusCode(status)
	ctx.JSON(iris.Map{"error": code, "message": message})
}

func CreateValidationError(message string, ctx iris.Context) {
	JSONError(ctx, iris.StatusBadRequest, "validation_error", message)
}

func CreateNotFound(ctx iris.Context) {
	JSONError(ctx, iris.StatusNotFound, "not_found", "Resource not found")
}

func CreateInternalServerError(ctx iris.Context) {
	JSONError(ctx, iris.StatusInternalServerError, "internal_server_error", "An unexpected error occurred")
}

// HandleValidationErrors writes a 400 for a failed ctx.ReadJSON, listing the
// offending fields when the error came from the struct validator.
func HandleValidationErrors(err error, ctx iris.Context) {
	if errs, ok := err.(validator.ValidationErrors); ok {
		fields := make([]iris.Map, 0, len(errs))
		for _, fieldErr := range errs {
			fields = append(fields, iris.Map{
				"field":     fieldErr.Field(),
				"condition": fieldErr.Tag(),
				"param":     fieldErr.Param(),
			})
		}
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{
			"error":   "validation_error",
			"message": "Invalid request payload",
			"fields":  fields,
		})
		return
	}

	ctx.StatusCode(iris.StatusBadRequest)
	ctx.JSON(iris.Map{"error": "validation_error", "message": err.Error()})
}
