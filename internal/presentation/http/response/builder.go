package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jingsu322/fake-rfq-api/pkg/errorbank"
)

// Builder helps construct the flat JSON responses of this API: success
// payloads are emitted as-is (or as {"message": ...}), failures as
// {"error": ...} with the status resolved from the error kind.
type Builder struct {
	ctx     echo.Context
	status  int
	data    any
	message string
	err     error
}

// New instantiates a Builder for the provided request context.
func New(ctx echo.Context) *Builder {
	return &Builder{ctx: ctx, status: http.StatusOK}
}

// WithStatus overrides the response status code.
func (b *Builder) WithStatus(status int) *Builder {
	if status > 0 {
		b.status = status
	}
	return b
}

// WithData attaches a success payload rendered verbatim.
func (b *Builder) WithData(data any) *Builder {
	b.data = data
	return b
}

// WithMessage attaches a success message rendered as {"message": ...}.
func (b *Builder) WithMessage(message string) *Builder {
	b.message = message
	return b
}

// WithError records an error to be rendered.
func (b *Builder) WithError(err error) *Builder {
	b.err = err
	return b
}

// Build finalises and emits the HTTP response.
func (b *Builder) Build() error {
	if b.err != nil {
		return b.buildError()
	}
	return b.buildSuccess()
}

func (b *Builder) buildSuccess() error {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	if b.data != nil {
		return b.ctx.JSON(b.status, b.data)
	}
	payload := struct {
		Message string `json:"message"`
	}{Message: b.message}
	return b.ctx.JSON(b.status, payload)
}

func (b *Builder) buildError() error {
	appErr := errorbank.From(b.err)
	status := b.status
	if status < 400 {
		status = appErr.StatusCode()
	}
	payload := struct {
		Error string `json:"error"`
	}{Error: appErr.Message()}
	return b.ctx.JSON(status, payload)
}
