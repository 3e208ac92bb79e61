package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/obejashaundev/nissan-sales-server/internal/application/dto"
	"github.com/obejashaundev/nissan-sales-server/internal/application/report"
	"github.com/obejashaundev/nissan-sales-server/internal/application/usecase"
)

// CustomerHandler administra los prospectos de venta, sus notas de seguimiento
// y el reporte PDF del listado.
type CustomerHandler struct {
	uc       *usecase.CustomerUseCase
	comments *usecase.CommentUseCase
	reportUC *report.LeadReportUseCase
}

// NewCustomerHandler construye el handler de prospectos.
func NewCustomerHandler(uc *usecase.CustomerUseCase, comments *usecase.CommentUseCase, reportUC *report.LeadReportUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc, comments: comments, reportUC: reportUC}
}

// Create godoc
// @Summary      Registrar prospecto
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateCustomerRequest  true  "datos del prospecto"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	missing := missingCustomerFields(in)
	if missing != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("campos requeridos: " + missing))
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(out, "prospecto registrado"))
}

// List godoc
// @Summary      Listar prospectos activos con referencias expandidas
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Response
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	customers, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(customers, ""))
}

// Delete godoc
// @Summary      Eliminar prospecto (lógico o forzado)
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id        path  string  true  "id del prospecto"
// @Param        isForced  path  string  true  "true = borrado físico tras la baja lógica"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/customers/{id}/{isForced} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id, parseForced(c), GetUserID(c), parseRemovalReason(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(nil, "prospecto eliminado"))
}

// CreateComment godoc
// @Summary      Agregar nota de seguimiento a un prospecto
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                    true  "id del prospecto"
// @Param        body  body  dto.CreateCommentRequest  true  "texto de la nota"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/customers/{id}/comments [post]
func (h *CustomerHandler) CreateComment(c *fiber.Ctx) error {
	var in dto.CreateCommentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	if in.Comment == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("comment es requerido"))
	}
	out, err := h.comments.Create(c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(out, "nota registrada"))
}

// ListComments godoc
// @Summary      Listar notas activas de un prospecto
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id del prospecto"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/customers/{id}/comments [get]
func (h *CustomerHandler) ListComments(c *fiber.Ctx) error {
	comments, err := h.comments.ListByCustomer(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(comments, ""))
}

// Report godoc
// @Summary      Descargar el listado de prospectos activos en PDF
// @Tags         customers
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200
// @Router       /api/customers/report [get]
func (h *CustomerHandler) Report(c *fiber.Ctx) error {
	pdfBytes, err := h.reportUC.Generate(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="prospectos.pdf"`)
	return c.Send(pdfBytes)
}

// missingCustomerFields devuelve la lista de campos obligatorios ausentes,
// separados por coma; vacío si el cuerpo está completo.
func missingCustomerFields(in dto.CreateCustomerRequest) string {
	var missing string
	add := func(field string) {
		if missing != "" {
			missing += ", "
		}
		missing += field
	}
	if in.Name == "" {
		add("name")
	}
	if in.Location == "" {
		add("location")
	}
	if in.AdvertisingMedium == "" {
		add("advertisingMedium")
	}
	if in.SalesAdvisor == "" {
		add("salesAdvisor")
	}
	return missing
}
